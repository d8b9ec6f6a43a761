package style

import (
	"testing"

	"github.com/npillmayer/cssval/core/color"
	"github.com/npillmayer/cssval/core/dimen"
	"github.com/npillmayer/cssval/core/percent"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestKeywordDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	var (
		display   Display
		float     Float
		position  Position
		wrap      Wrap
		direction FlexDirection
		sizing    BoxSizing
		justify   JustifyContent
		items     AlignItems
		content   AlignContent
		overflow  Overflow
		align     TextAlign
		valign    VerticalAlign
		cursor    Cursor
		border    BorderStyle
		repeat    BackgroundRepeat
		backface  BackfaceVisibility
	)
	assert.Equal(t, "block", display.String())
	assert.Equal(t, "left", float.String())
	assert.Equal(t, "static", position.String())
	assert.Equal(t, "wrap", wrap.String())
	assert.Equal(t, "row", direction.String())
	assert.Equal(t, "content-box", sizing.String())
	assert.Equal(t, "flex-start", justify.String())
	assert.Equal(t, "flex-start", items.String())
	assert.Equal(t, "stretch", content.String())
	assert.Equal(t, "auto", overflow.String())
	assert.Equal(t, "left", align.String())
	assert.Equal(t, "top", valign.String())
	assert.Equal(t, "default", cursor.String())
	assert.Equal(t, "solid", border.String())
	assert.Equal(t, "repeat", repeat.String())
	assert.Equal(t, "visible", backface.String())
}

func TestKeywordParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	d, ok := ParseDisplay(" Inline-Block ")
	assert.True(t, ok)
	assert.Equal(t, DisplayInlineBlock, d)
	c, ok := ParseCursor("zoom-out")
	assert.True(t, ok)
	assert.Equal(t, CursorZoomOut, c)
	assert.Equal(t, 30, len(cursorKeywords))
	o, ok := ParseOverflow("HIDDEN")
	assert.True(t, ok)
	assert.Equal(t, OverflowHidden, o)
	_, ok = ParsePosition("sticky")
	assert.False(t, ok, "sticky positioning is not supported")
	b, ok := ParseBorderStyle("dashed")
	assert.True(t, ok)
	assert.Equal(t, BorderDashed, b)
	r, ok := ParseBackgroundRepeat("no-repeat")
	assert.True(t, ok)
	assert.Equal(t, NoRepeat, r)
}

func TestBorderStyleNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	_, ok := BorderNone.Normalize()
	assert.False(t, ok)
	for _, s := range []BorderStyle{BorderSolid, BorderDouble, BorderDotted, BorderDashed,
		BorderHidden, BorderGroove, BorderRidge, BorderInset, BorderOutset} {
		n, ok := s.Normalize()
		assert.True(t, ok)
		assert.Equal(t, s, n.BorderStyle(), "normalizing %s should be reversible", s)
		assert.Equal(t, s.String(), n.String())
	}
}

func TestFlexDirection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	assert.Equal(t, AxisHorizontal, FlexRowReverse.Axis())
	assert.Equal(t, AxisVertical, FlexColumn.Axis())
	assert.True(t, FlexColumnReverse.IsReverse())
	assert.False(t, FlexRow.IsReverse())
}

func TestOverflowScrollbar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	assert.True(t, OverflowScroll.NeedsScrollbar(false))
	assert.True(t, OverflowAuto.NeedsScrollbar(true))
	assert.False(t, OverflowAuto.NeedsScrollbar(false))
	assert.False(t, OverflowHidden.NeedsScrollbar(true))
	assert.False(t, OverflowVisible.NeedsScrollbar(true))
	assert.True(t, OverflowVisible.IsOverflowVisible())
	assert.False(t, OverflowHidden.IsOverflowVisible())
}

func TestDirectionCorners(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	all := []DirectionCorner{DirRight, DirLeft, DirTop, DirBottom, DirTopRight,
		DirTopLeft, DirBottomRight, DirBottomLeft}
	for _, d := range all {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
	}
	c, ok := DirTop.Combine(DirRight)
	assert.True(t, ok)
	assert.Equal(t, DirTopRight, c)
	c, ok = DirLeft.Combine(DirBottom)
	assert.True(t, ok)
	assert.Equal(t, DirBottomLeft, c)
	_, ok = DirLeft.Combine(DirRight)
	assert.False(t, ok)
	_, ok = DirTopLeft.Combine(DirTop)
	assert.False(t, ok)
	//
	r := dimen.R(10, 10, 100, 50)
	assert.Equal(t, dimen.Point{X: 100, Y: 25}, DirRight.ToPoint(r))
	assert.Equal(t, dimen.Point{X: 50, Y: 0}, DirTop.ToPoint(r))
	assert.Equal(t, dimen.Point{X: 0, Y: 50}, DirBottomLeft.ToPoint(r))
}

func TestDirectionToPoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	square := dimen.R(0, 0, 100, 100)
	start, end := AngleDirection(dimen.ConstDeg(0)).ToPoints(square)
	assert.Equal(t, dimen.Point{X: 50, Y: 100}, start)
	assert.Equal(t, dimen.Point{X: 50, Y: 0}, end)
	start, end = AngleDirection(dimen.ConstDeg(90)).ToPoints(square)
	assert.Equal(t, dimen.Point{X: 0, Y: 50}, start)
	assert.Equal(t, dimen.Point{X: 100, Y: 50}, end)
	start, end = AngleDirection(dimen.ConstTurn(0)).ToPoints(square)
	assert.Equal(t, dimen.Point{X: 50, Y: 100}, start)
	assert.Equal(t, dimen.Point{X: 50, Y: 0}, end)
	//
	wide := dimen.R(0, 0, 200, 100)
	start, end = AngleDirection(dimen.ConstDeg(30)).ToPoints(wide)
	assert.Equal(t, dimen.Point{X: 97, Y: 56}, start)
	assert.Equal(t, dimen.Point{X: 103, Y: 44}, end)
	start, end = AngleDirection(dimen.ConstDeg(135)).ToPoints(wide)
	assert.Equal(t, dimen.Point{X: 25, Y: -25}, start)
	assert.Equal(t, dimen.Point{X: 175, Y: 125}, end)
	start, end = AngleDirection(dimen.ConstDeg(300)).ToPoints(wide)
	assert.Equal(t, dimen.Point{X: 197, Y: 106}, start)
	assert.Equal(t, dimen.Point{X: 3, Y: -6}, end)
	//
	start, end = FromToDirection(DirLeft, DirRight).ToPoints(dimen.R(0, 0, 100, 50))
	assert.Equal(t, dimen.Point{X: 0, Y: 25}, start)
	assert.Equal(t, dimen.Point{X: 100, Y: 25}, end)
	//
	start, end = AngleDirection(dimen.ConstDeg(45)).ToPoints(dimen.R(0, 0, 0, 10))
	assert.Equal(t, dimen.Origin, start)
	assert.Equal(t, dimen.Origin, end)
}

func TestBackgroundContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	var bg BackgroundContent
	assert.Equal(t, ContentColor, bg.Kind)
	assert.Equal(t, color.Transparent, bg.Color)
	_, ok := bg.ImageID()
	assert.False(t, ok)
	img := ImageContent("logo.png")
	id, ok := img.ImageID()
	assert.True(t, ok)
	assert.Equal(t, ImageID("logo.png"), id)
	//
	half := percent.Const(50)
	g := LinearGradientContent(LinearGradient{
		Direction: FromToDirection(DirTop, DirBottom),
		Stops: []LinearColorStop{
			{Color: color.Red},
			{Offset: &half, Color: color.Blue},
		},
	})
	assert.Equal(t, "linear-gradient(to bottom, rgba(255, 0, 0, 1), rgba(0, 0, 255, 1) 50%)",
		g.String())
	bgs := BackgroundContents{ColorContent(color.White), img}
	assert.Equal(t, `rgba(255, 255, 255, 1), url("logo.png")`, bgs.String())
}

func TestBackgroundPositionAndSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	var pos BackgroundPosition
	assert.Equal(t, "left top", pos.String())
	pos = ExactBackgroundPosition(dimen.ConstPx(10), dimen.ConstPercent(50))
	assert.Equal(t, "10px 50%", pos.String())
	pos.Horizontal.Keyword = PositionEnd
	assert.Equal(t, "right 50%", pos.String())
	//
	sz := BackgroundSize{Kind: SizeCover}
	assert.Equal(t, "cover", sz.String())
	assert.Equal(t, "1em 2em", ExactBackgroundSize(dimen.ConstEm(1), dimen.ConstEm(2)).String())
}

func TestConicDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	g := NewConicGradient(RadialColorStop{Color: color.Black})
	assert.Equal(t, ExtendClamp, g.ExtendMode)
	assert.Equal(t, dimen.ConstPercent(50), g.CenterX)
	assert.Equal(t, dimen.ZeroAngle(), g.Angle)
	assert.Equal(t, "conic-gradient(from 0deg at 50% 50%, rgba(0, 0, 0, 1))", g.String())
}

func TestPixelWrappers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	w := Px[Width](120)
	assert.Equal(t, Width{dimen.Px(120)}, w)
	assert.Equal(t, "120px", w.String())
	assert.Equal(t, float32(32), Em[FontSize](2).ToPixels(0))
	assert.Equal(t, "12pt", Pt[MarginTop](12).String())
	assert.Equal(t, float32(50), Percent[Left](25).ToPixels(200))
	assert.Equal(t, BorderTopWidth{dimen.ConstPx(1)}, Pixels[BorderTopWidth](dimen.ConstPx(1)))
	//
	lh := LineHeight{percent.New(120)}
	assert.Equal(t, "120%", lh.String())
	op := Opacity{dimen.F(0.5)}
	assert.Equal(t, "0.5", op.String())
	var grow FlexGrow
	assert.Equal(t, "0", grow.String())
}

func TestTransforms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	ts := Transforms{
		TranslateX(dimen.ConstPx(10)),
		Rotate(dimen.ConstDeg(45)),
		Scale(percent.Const(50), percent.Const(150)),
	}
	assert.Equal(t, "translateX(10px) rotate(45deg) scale(50%, 150%)", ts.String())
	assert.Equal(t, "none", Transforms{}.String())
	//
	r := Rotate3DTransform(percent.Const(0), percent.Const(0), percent.Const(1), dimen.ConstTurn(1))
	assert.Equal(t, TransformRotate3D, r.Kind())
	args, ok := TransformArgs[Rotate3D](r)
	assert.True(t, ok)
	assert.Equal(t, dimen.ConstTurn(1), args.Angle)
	_, ok = TransformArgs[dimen.PixelValue](r)
	assert.False(t, ok)
	assert.Equal(t, Rotate(dimen.ConstDeg(45)), Rotate(dimen.Deg(45)))
	assert.Equal(t, 21, len(transformFuncs))
}

func TestDefaultScrollbar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	sb := DefaultScrollbarInfo()
	assert.Equal(t, "17px", sb.Width.String())
	assert.Equal(t, float32(13), sb.InnerWidth())
	assert.Equal(t, color.U{R: 241, G: 241, B: 241, A: 255}, sb.Track.Color)
	assert.Equal(t, color.Transparent, sb.Corner.Color)
	assert.Equal(t, BackgroundContent{}, sb.Resizer)
}

func TestFontFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.style")
	defer teardown()
	//
	ff := NewFontFamily("Webly Sleeky UI", "monospace")
	assert.Equal(t, `"Webly Sleeky UI", monospace`, ff.String())
	first, ok := ff.First()
	assert.True(t, ok)
	assert.Equal(t, "Webly Sleeky UI", first)
	_, ok = FontFamily{}.First()
	assert.False(t, ok)
}
