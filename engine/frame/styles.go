package frame

import (
	"github.com/npillmayer/cssval/core/color"
	"github.com/npillmayer/cssval/core/dimen"
	"github.com/npillmayer/cssval/core/percent"
	"github.com/npillmayer/cssval/engine/dom/style"
	"github.com/npillmayer/cssval/engine/dom/style/css"
)

// RectStyle holds the properties of a frame which determine its rendering,
// i.e. colors, backgrounds, borders, shadows, text styling and transforms.
//
// Some frames may just use a subset of the styling parameters. Most notably
// this holds for text runs: these may have styled their content only.
type RectStyle struct {
	Background         css.Value[style.BackgroundContents]
	BackgroundImage    css.Value[style.BackgroundContents]
	BackgroundColor    css.Value[style.BackgroundContents]
	BackgroundPosition css.Value[style.BackgroundPositions]
	BackgroundSize     css.Value[style.BackgroundSizes]
	BackgroundRepeat   css.Value[style.BackgroundRepeats]
	BorderRadius       [4]css.Value[dimen.PixelValue] // top-left, top-right, bottom-right, bottom-left
	BorderColor        [4]css.Value[color.U]
	BorderStyle        [4]css.Value[style.BorderStyle]
	BoxShadow          [4]css.Value[style.BoxShadow]
	TextColor          css.Value[color.U]
	FontSize           css.Value[dimen.PixelValue]
	FontFamily         css.Value[style.FontFamily]
	TextAlign          css.Value[style.TextAlign]
	LetterSpacing      css.Value[dimen.PixelValue]
	LineHeight         css.Value[percent.Percent]
	WordSpacing        css.Value[dimen.PixelValue]
	TabWidth           css.Value[percent.Percent]
	Cursor             css.Value[style.Cursor]
	Opacity            css.Value[dimen.Float]
	Transform          css.Value[style.Transforms]
	TransformOrigin    css.Value[style.TransformOrigin]
	PerspectiveOrigin  css.Value[style.PerspectiveOrigin]
	BackfaceVisibility css.Value[style.BackfaceVisibility]
	ScrollbarStyle     css.Value[style.ScrollbarStyle]
}

// Corners of a border, clockwise, starting at the top left corner.
const (
	TopLeft int = iota
	TopRight
	BottomRight
	BottomLeft
)

// Apply stores visual properties into their fields. Other properties are
// ignored. Apply returns the number of properties stored.
func (s *RectStyle) Apply(props ...css.Property) int {
	n := 0
	for _, p := range props {
		if s.apply(p) {
			n++
		}
	}
	return n
}

func (s *RectStyle) apply(p css.Property) bool {
	switch p.Type() {
	case css.Background:
		s.Background = plain[style.BackgroundContents](p)
	case css.BackgroundImage:
		s.BackgroundImage = plain[style.BackgroundContents](p)
	case css.BackgroundColor:
		s.BackgroundColor = plain[style.BackgroundContents](p)
	case css.BackgroundPosition:
		s.BackgroundPosition = plain[style.BackgroundPositions](p)
	case css.BackgroundSize:
		s.BackgroundSize = plain[style.BackgroundSizes](p)
	case css.BackgroundRepeat:
		s.BackgroundRepeat = plain[style.BackgroundRepeats](p)
	case css.BorderTopLeftRadius:
		s.BorderRadius[TopLeft] = length[style.BorderTopLeftRadius](p)
	case css.BorderTopRightRadius:
		s.BorderRadius[TopRight] = length[style.BorderTopRightRadius](p)
	case css.BorderBottomRightRadius:
		s.BorderRadius[BottomRight] = length[style.BorderBottomRightRadius](p)
	case css.BorderBottomLeftRadius:
		s.BorderRadius[BottomLeft] = length[style.BorderBottomLeftRadius](p)
	case css.BorderTopColor:
		s.BorderColor[Top] = valueOf(p, func(c style.BorderTopColor) color.U { return c.U })
	case css.BorderRightColor:
		s.BorderColor[Right] = valueOf(p, func(c style.BorderRightColor) color.U { return c.U })
	case css.BorderBottomColor:
		s.BorderColor[Bottom] = valueOf(p, func(c style.BorderBottomColor) color.U { return c.U })
	case css.BorderLeftColor:
		s.BorderColor[Left] = valueOf(p, func(c style.BorderLeftColor) color.U { return c.U })
	case css.BorderTopStyle:
		s.BorderStyle[Top] = valueOf(p, func(b style.BorderTopStyle) style.BorderStyle { return b.BorderStyle })
	case css.BorderRightStyle:
		s.BorderStyle[Right] = valueOf(p, func(b style.BorderRightStyle) style.BorderStyle { return b.BorderStyle })
	case css.BorderBottomStyle:
		s.BorderStyle[Bottom] = valueOf(p, func(b style.BorderBottomStyle) style.BorderStyle { return b.BorderStyle })
	case css.BorderLeftStyle:
		s.BorderStyle[Left] = valueOf(p, func(b style.BorderLeftStyle) style.BorderStyle { return b.BorderStyle })
	case css.BoxShadowTop:
		s.BoxShadow[Top] = plain[style.BoxShadow](p)
	case css.BoxShadowRight:
		s.BoxShadow[Right] = plain[style.BoxShadow](p)
	case css.BoxShadowBottom:
		s.BoxShadow[Bottom] = plain[style.BoxShadow](p)
	case css.BoxShadowLeft:
		s.BoxShadow[Left] = plain[style.BoxShadow](p)
	case css.TextColor:
		s.TextColor = valueOf(p, func(c style.TextColor) color.U { return c.U })
	case css.FontSize:
		s.FontSize = length[style.FontSize](p)
	case css.FontFamily:
		s.FontFamily = plain[style.FontFamily](p)
	case css.TextAlign:
		s.TextAlign = plain[style.TextAlign](p)
	case css.LetterSpacing:
		s.LetterSpacing = length[style.LetterSpacing](p)
	case css.LineHeight:
		s.LineHeight = valueOf(p, func(h style.LineHeight) percent.Percent { return h.Percent })
	case css.WordSpacing:
		s.WordSpacing = length[style.WordSpacing](p)
	case css.TabWidth:
		s.TabWidth = valueOf(p, func(w style.TabWidth) percent.Percent { return w.Percent })
	case css.Cursor:
		s.Cursor = plain[style.Cursor](p)
	case css.Opacity:
		s.Opacity = valueOf(p, func(o style.Opacity) dimen.Float { return o.Float })
	case css.Transform:
		s.Transform = plain[style.Transforms](p)
	case css.TransformOrigin:
		s.TransformOrigin = plain[style.TransformOrigin](p)
	case css.PerspectiveOrigin:
		s.PerspectiveOrigin = plain[style.PerspectiveOrigin](p)
	case css.BackfaceVisibility:
		s.BackfaceVisibility = plain[style.BackfaceVisibility](p)
	case css.ScrollbarStyle:
		s.ScrollbarStyle = plain[style.ScrollbarStyle](p)
	default:
		return false
	}
	return true
}

// HasBoxShadow returns true if a box shadow is set for at least one side.
func (s *RectStyle) HasBoxShadow() bool {
	for _, bs := range s.BoxShadow {
		if bs.IsExact() {
			return true
		}
	}
	return false
}

// HasBorder returns true if at least one side has a border style other
// than `none`.
func (s *RectStyle) HasBorder() bool {
	for _, b := range s.BorderStyle {
		if bs, ok := b.Get(); ok {
			if _, visible := bs.Normalize(); visible {
				return true
			}
		}
	}
	return false
}

// Border returns the border of a frame, if it has one. Sides without a
// color are drawn in the text color, which defaults to black.
func (s *RectStyle) Border() (style.NormalBorder, bool) {
	if !s.HasBorder() {
		return style.NormalBorder{}, false
	}
	fg := s.TextColor.GetOr(color.Default())
	var sides [4]style.BorderSide
	for dir := Top; dir <= Left; dir++ {
		sides[dir] = style.BorderSide{
			Color: s.BorderColor[dir].GetOr(fg),
			Style: s.BorderStyle[dir].GetOr(style.BorderNone),
		}
	}
	border := style.NormalBorder{
		Top:    sides[Top],
		Right:  sides[Right],
		Bottom: sides[Bottom],
		Left:   sides[Left],
	}
	if s.hasRadius() {
		border.Radius = &style.BorderRadii{
			TopLeft:     style.Pixels[style.BorderTopLeftRadius](s.BorderRadius[TopLeft].GetOr(dimen.ZeroPixels())),
			TopRight:    style.Pixels[style.BorderTopRightRadius](s.BorderRadius[TopRight].GetOr(dimen.ZeroPixels())),
			BottomRight: style.Pixels[style.BorderBottomRightRadius](s.BorderRadius[BottomRight].GetOr(dimen.ZeroPixels())),
			BottomLeft:  style.Pixels[style.BorderBottomLeftRadius](s.BorderRadius[BottomLeft].GetOr(dimen.ZeroPixels())),
		}
	}
	return border, true
}

func (s *RectStyle) hasRadius() bool {
	for _, r := range s.BorderRadius {
		if r.IsExact() {
			return true
		}
	}
	return false
}
