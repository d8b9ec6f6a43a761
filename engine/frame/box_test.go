package frame

import (
	"testing"

	"github.com/npillmayer/cssval/core/color"
	"github.com/npillmayer/cssval/core/dimen"
	"github.com/npillmayer/cssval/engine/dom/style"
	"github.com/npillmayer/cssval/engine/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBoxNullbox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.frame")
	defer teardown()
	//
	var l RectLayout
	box := l.Resolve(800, 600)
	assert.True(t, box.AutoW)
	assert.True(t, box.AutoH)
	assert.Equal(t, [4]float32{}, box.Padding)
	assert.Equal(t, [4]float32{}, box.Margins)
	_, ok := box.ContentWidth()
	assert.False(t, ok)
	assert.False(t, l.IsHorizontalOverflowVisible())
}

func TestLayoutApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.frame")
	defer teardown()
	//
	var l RectLayout
	n := l.Apply(
		css.SomeWidth(style.Px[style.Width](100)),
		css.SomePaddingLeft(style.Percent[style.PaddingLeft](10)),
		css.SomeMarginTop(style.Pt[style.MarginTop](12)),
		css.AutoOf(css.Height),
		css.SomeOverflowX(style.OverflowVisible),
		css.SomeOverflowY(style.OverflowHidden),
		css.SomeTextColor(style.TextColor{U: color.Red}), // not a layout property
	)
	assert.Equal(t, 6, n)
	assert.True(t, l.Height.IsAuto())
	assert.Equal(t, dimen.Px(100), l.Width.GetOr(dimen.ZeroPixels()))
	assert.True(t, l.IsHorizontalOverflowVisible())
	assert.False(t, l.IsVerticalOverflowVisible())
	//
	box := l.Resolve(400, 300)
	assert.False(t, box.AutoW)
	assert.True(t, box.AutoH)
	assert.Equal(t, float32(40), box.Padding[Left])
	assert.Equal(t, float32(16), box.Margins[Top])
	w, ok := box.BorderBoxWidth()
	assert.True(t, ok)
	assert.Equal(t, float32(140), w)
	t.Log(box.DebugString())
}

func TestBorderBoxSizing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.frame")
	defer teardown()
	//
	var l RectLayout
	l.Apply(
		css.SomeBoxSizing(style.BorderBox),
		css.SomeWidth(style.Px[style.Width](100)),
		css.SomePaddingLeft(style.Px[style.PaddingLeft](10)),
		css.SomePaddingRight(style.Px[style.PaddingRight](10)),
		css.SomeBorderLeftWidth(style.Px[style.BorderLeftWidth](2)),
		css.SomeBorderRightWidth(style.Px[style.BorderRightWidth](-2)), // illegal
	)
	assert.True(t, l.IsBorderBoxSizing())
	box := l.Resolve(500, 500)
	assert.Equal(t, float32(0), box.BorderWidth[Right])
	cw, ok := box.ContentWidth()
	assert.True(t, ok)
	assert.Equal(t, float32(78), cw)
	bw, _ := box.BorderBoxWidth()
	assert.Equal(t, float32(100), bw)
	assert.Equal(t, float32(22), box.DecorationWidth(false))
}

func TestMinMaxClamping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.frame")
	defer teardown()
	//
	var l RectLayout
	l.Apply(
		css.SomeWidth(style.Percent[style.Width](90)),
		css.SomeMaxWidth(style.Px[style.MaxWidth](300)),
		css.SomeHeight(style.Px[style.Height](10)),
		css.SomeMinHeight(style.Em[style.MinHeight](2)),
	)
	box := l.Resolve(1000, 1000)
	assert.Equal(t, float32(300), box.W)
	assert.Equal(t, float32(32), box.H)
}

func TestDistributeMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.frame")
	defer teardown()
	//
	var l RectLayout
	l.Apply(
		css.SomeWidth(style.Px[style.Width](200)),
		css.AutoOf(css.MarginLeft),
		css.AutoOf(css.MarginRight),
	)
	box := l.Resolve(600, 0)
	assert.True(t, box.DistributeHorizontalMargins(600))
	assert.Equal(t, float32(200), box.Margins[Left])
	assert.Equal(t, float32(200), box.Margins[Right])
	tw, _ := box.TotalWidth()
	assert.Equal(t, float32(600), tw)
	assert.False(t, box.DistributeHorizontalMargins(600), "no more auto margins")
	//
	l.Apply(css.SomeMarginRight(style.Px[style.MarginRight](50)))
	box = l.Resolve(600, 0)
	assert.True(t, box.DistributeHorizontalMargins(600))
	assert.Equal(t, float32(350), box.Margins[Left])
}

func TestCollapseMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssval.frame")
	defer teardown()
	//
	b1 := &Box{Margins: [4]float32{0, 0, 20, 0}}
	b2 := &Box{Margins: [4]float32{5, 0, 0, 0}}
	hi, lo := CollapseMargins(b1, b2)
	assert.Equal(t, float32(20), hi)
	assert.Equal(t, float32(5), lo)
	hi, lo = CollapseMargins(nil, b2)
	assert.Equal(t, float32(5), hi)
	assert.Equal(t, float32(0), lo)
	hi, _ = CollapseMargins(nil, nil)
	assert.Equal(t, float32(0), hi)
}
