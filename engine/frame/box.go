package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/npillmayer/cssval/core/dimen"
	"github.com/npillmayer/cssval/core/option"
	"github.com/npillmayer/cssval/engine/dom/style"
	"github.com/npillmayer/cssval/engine/dom/style/css"
)

// RectLayout holds the properties of a frame which are relevant for layout.
// Lengths are unwrapped from their property types.
type RectLayout struct {
	Display        css.Value[style.Display]
	Float          css.Value[style.Float]
	BoxSizing      css.Value[style.BoxSizing]
	Width          css.Value[dimen.PixelValue]
	Height         css.Value[dimen.PixelValue]
	MinWidth       css.Value[dimen.PixelValue]
	MinHeight      css.Value[dimen.PixelValue]
	MaxWidth       css.Value[dimen.PixelValue]
	MaxHeight      css.Value[dimen.PixelValue]
	Position       css.Value[style.Position]
	Offsets        [4]css.Value[dimen.PixelValue] // top, right, bottom, left
	FlexWrap       css.Value[style.Wrap]
	FlexDirection  css.Value[style.FlexDirection]
	FlexGrow       css.Value[dimen.Float]
	FlexShrink     css.Value[dimen.Float]
	JustifyContent css.Value[style.JustifyContent]
	AlignItems     css.Value[style.AlignItems]
	AlignContent   css.Value[style.AlignContent]
	OverflowX      css.Value[style.Overflow]
	OverflowY      css.Value[style.Overflow]
	Padding        [4]css.Value[dimen.PixelValue] // inside of border
	BorderWidth    [4]css.Value[dimen.PixelValue] // thickness of border
	Margin         [4]css.Value[dimen.PixelValue] // outside of border
}

// Apply stores layout properties into their fields. Other properties are
// ignored. Apply returns the number of properties stored.
func (l *RectLayout) Apply(props ...css.Property) int {
	n := 0
	for _, p := range props {
		if l.apply(p) {
			n++
		}
	}
	return n
}

func (l *RectLayout) apply(p css.Property) bool {
	switch p.Type() {
	case css.Display:
		l.Display = plain[style.Display](p)
	case css.Float:
		l.Float = plain[style.Float](p)
	case css.BoxSizing:
		l.BoxSizing = plain[style.BoxSizing](p)
	case css.Width:
		l.Width = length[style.Width](p)
	case css.Height:
		l.Height = length[style.Height](p)
	case css.MinWidth:
		l.MinWidth = length[style.MinWidth](p)
	case css.MinHeight:
		l.MinHeight = length[style.MinHeight](p)
	case css.MaxWidth:
		l.MaxWidth = length[style.MaxWidth](p)
	case css.MaxHeight:
		l.MaxHeight = length[style.MaxHeight](p)
	case css.Position:
		l.Position = plain[style.Position](p)
	case css.Top:
		l.Offsets[Top] = length[style.Top](p)
	case css.Right:
		l.Offsets[Right] = length[style.Right](p)
	case css.Bottom:
		l.Offsets[Bottom] = length[style.Bottom](p)
	case css.Left:
		l.Offsets[Left] = length[style.Left](p)
	case css.FlexWrap:
		l.FlexWrap = plain[style.Wrap](p)
	case css.FlexDirection:
		l.FlexDirection = plain[style.FlexDirection](p)
	case css.FlexGrow:
		l.FlexGrow = valueOf(p, func(g style.FlexGrow) dimen.Float { return g.Float })
	case css.FlexShrink:
		l.FlexShrink = valueOf(p, func(s style.FlexShrink) dimen.Float { return s.Float })
	case css.JustifyContent:
		l.JustifyContent = plain[style.JustifyContent](p)
	case css.AlignItems:
		l.AlignItems = plain[style.AlignItems](p)
	case css.AlignContent:
		l.AlignContent = plain[style.AlignContent](p)
	case css.OverflowX:
		l.OverflowX = plain[style.Overflow](p)
	case css.OverflowY:
		l.OverflowY = plain[style.Overflow](p)
	case css.PaddingTop:
		l.Padding[Top] = length[style.PaddingTop](p)
	case css.PaddingRight:
		l.Padding[Right] = length[style.PaddingRight](p)
	case css.PaddingBottom:
		l.Padding[Bottom] = length[style.PaddingBottom](p)
	case css.PaddingLeft:
		l.Padding[Left] = length[style.PaddingLeft](p)
	case css.BorderTopWidth:
		l.BorderWidth[Top] = length[style.BorderTopWidth](p)
	case css.BorderRightWidth:
		l.BorderWidth[Right] = length[style.BorderRightWidth](p)
	case css.BorderBottomWidth:
		l.BorderWidth[Bottom] = length[style.BorderBottomWidth](p)
	case css.BorderLeftWidth:
		l.BorderWidth[Left] = length[style.BorderLeftWidth](p)
	case css.MarginTop:
		l.Margin[Top] = length[style.MarginTop](p)
	case css.MarginRight:
		l.Margin[Right] = length[style.MarginRight](p)
	case css.MarginBottom:
		l.Margin[Bottom] = length[style.MarginBottom](p)
	case css.MarginLeft:
		l.Margin[Left] = length[style.MarginLeft](p)
	default:
		return false
	}
	return true
}

func length[T style.PixelWrapper](p css.Property) css.Value[dimen.PixelValue] {
	return valueOf(p, func(x T) dimen.PixelValue {
		return struct{ dimen.PixelValue }(x).PixelValue
	})
}

// IsHorizontalOverflowVisible returns true if overflow-x is set to `visible`.
func (l *RectLayout) IsHorizontalOverflowVisible() bool {
	o, ok := l.OverflowX.Get()
	return ok && o.IsOverflowVisible()
}

// IsVerticalOverflowVisible returns true if overflow-y is set to `visible`.
func (l *RectLayout) IsVerticalOverflowVisible() bool {
	o, ok := l.OverflowY.Get()
	return ok && o.IsOverflowVisible()
}

// IsBorderBoxSizing returns true if box-sizing is set to `border-box`.
func (l *RectLayout) IsBorderBoxSizing() bool {
	return l.BoxSizing.GetOr(style.ContentBox) == style.BorderBox
}

// --- Resolved boxes --------------------------------------------------------

// Box is a box following the CSS box model, with every dimension resolved
// to pixels. If box-sizing is `border-box`, W and H denote the border box,
// otherwise the content box.
type Box struct {
	W, H            float32
	AutoW, AutoH    bool // width or height depend on the content
	BorderBoxSizing bool
	Padding         [4]float32 // inside of border
	BorderWidth     [4]float32 // thickness of border
	Margins         [4]float32 // outside of border
	autoMargins     [4]bool
}

// autoLength is the result of matching a length which is not known before
// layout.
type autoLength struct{}

// resolveLength converts a length to pixels. Percentages are relative to ref.
// Lengths other than exact ones return false.
func resolveLength(v css.Value[dimen.PixelValue], ref float32) (float32, bool) {
	px, err := v.Match(option.Of{
		option.None: autoLength{},
		css.Auto:    autoLength{},
		css.Initial: autoLength{},
		css.Inherit: autoLength{},
		option.Some: func(o any) (any, error) {
			p, _ := o.(css.Value[dimen.PixelValue]).Get()
			return p.ToPixels(ref), nil
		},
	})
	if err != nil {
		tracer().Errorf("resolve length %s: %v", v, err)
		return 0, false
	}
	x, ok := px.(float32)
	return x, ok
}

// Resolve converts the box dimensions of l to pixels, given the size of the
// containing block. Percentages of width, padding, border width and margins
// refer to the width of the containing block, percentages of height to its
// height. Padding and border widths which are not exact resolve to 0, as do
// margins; auto margins may be distributed later with
// DistributeHorizontalMargins. Width and height are clamped to their
// minimum and maximum values.
func (l *RectLayout) Resolve(containerW, containerH float32) Box {
	box := Box{BorderBoxSizing: l.IsBorderBoxSizing()}
	var ok bool
	if box.W, ok = resolveLength(l.Width, containerW); ok {
		box.W = clamp(box.W, l.MinWidth, l.MaxWidth, containerW)
	} else {
		box.AutoW = true
	}
	if box.H, ok = resolveLength(l.Height, containerH); ok {
		box.H = clamp(box.H, l.MinHeight, l.MaxHeight, containerH)
	} else {
		box.AutoH = true
	}
	for dir := Top; dir <= Left; dir++ {
		box.Padding[dir] = nonNegative(resolveLength(l.Padding[dir], containerW))
		box.BorderWidth[dir] = nonNegative(resolveLength(l.BorderWidth[dir], containerW))
		box.Margins[dir], _ = resolveLength(l.Margin[dir], containerW)
		box.autoMargins[dir] = l.Margin[dir].IsAuto()
	}
	tracer().Debugf("resolved %s", box.DebugString())
	return box
}

func clamp(x float32, lower, upper css.Value[dimen.PixelValue], ref float32) float32 {
	if hi, ok := resolveLength(upper, ref); ok && x > hi {
		x = hi
	}
	if lo, ok := resolveLength(lower, ref); ok && x < lo {
		x = lo
	}
	return x
}

// Padding and border width may not be negative.
func nonNegative(x float32, ok bool) float32 {
	if !ok || x < 0 {
		return 0
	}
	return x
}

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (box *Box) DebugString() string {
	s := fmt.Sprintf("box{\n   w=%s, h=%s  (bbox-sz=%v)\n", dimString(box.W, box.AutoW),
		dimString(box.H, box.AutoH), box.BorderBoxSizing)
	s += fmt.Sprintf("   p.top=%g, p.right=%g, p.bottom=%g, p.left=%g\n",
		box.Padding[Top], box.Padding[Right],
		box.Padding[Bottom], box.Padding[Left])
	s += fmt.Sprintf("   b.top=%g, b.right=%g, b.bottom=%g, b.left=%g\n",
		box.BorderWidth[Top], box.BorderWidth[Right],
		box.BorderWidth[Bottom], box.BorderWidth[Left])
	s += fmt.Sprintf("   m.top=%g, m.right=%g, m.bottom=%g, m.left=%g\n",
		box.Margins[Top], box.Margins[Right],
		box.Margins[Bottom], box.Margins[Left])
	s += "}"
	return s
}

func dimString(x float32, auto bool) string {
	if auto {
		return "auto"
	}
	return fmt.Sprintf("%g", x)
}

// ContentWidth returns the width of the content box. It returns false if
// the width is auto.
func (box *Box) ContentWidth() (float32, bool) {
	if box.AutoW {
		return 0, false
	}
	if !box.BorderBoxSizing {
		return box.W, true
	}
	return max(0, box.W-box.innerDecorationWidth()), true
}

// ContentHeight returns the height of the content box. It returns false if
// the height is auto.
func (box *Box) ContentHeight() (float32, bool) {
	if box.AutoH {
		return 0, false
	}
	if !box.BorderBoxSizing {
		return box.H, true
	}
	return max(0, box.H-box.innerDecorationHeight()), true
}

// BorderBoxWidth returns the width of a box, including padding and border.
// It returns false if the width is auto.
func (box *Box) BorderBoxWidth() (float32, bool) {
	if box.AutoW {
		return 0, false
	}
	if box.BorderBoxSizing {
		return box.W, true
	}
	return box.W + box.innerDecorationWidth(), true
}

// BorderBoxHeight returns the height of a box, including padding and border.
// It returns false if the height is auto.
func (box *Box) BorderBoxHeight() (float32, bool) {
	if box.AutoH {
		return 0, false
	}
	if box.BorderBoxSizing {
		return box.H, true
	}
	return box.H + box.innerDecorationHeight(), true
}

// TotalWidth returns the overall width of a box, including margins.
func (box *Box) TotalWidth() (float32, bool) {
	w, ok := box.BorderBoxWidth()
	return w + box.Margins[Left] + box.Margins[Right], ok
}

// DecorationWidth returns the cumulated width of padding and borders, and
// of the horizontal margins if includeMargins is set.
func (box *Box) DecorationWidth(includeMargins bool) float32 {
	w := box.innerDecorationWidth()
	if includeMargins {
		w += box.Margins[Left] + box.Margins[Right]
	}
	return w
}

func (box *Box) innerDecorationWidth() float32 {
	return box.Padding[Left] + box.Padding[Right] + box.BorderWidth[Left] + box.BorderWidth[Right]
}

func (box *Box) innerDecorationHeight() float32 {
	return box.Padding[Top] + box.Padding[Bottom] + box.BorderWidth[Top] + box.BorderWidth[Bottom]
}

// DistributeHorizontalMargins distributes the space left in the containing
// block into auto margins. If both horizontal margins are auto, the box is
// centered. Returns false if the box width is auto or no horizontal margin
// is auto.
func (box *Box) DistributeHorizontalMargins(enclosing float32) bool {
	w, ok := box.BorderBoxWidth()
	if !ok || !(box.autoMargins[Left] || box.autoMargins[Right]) {
		return false
	}
	remaining := enclosing - w
	switch {
	case box.autoMargins[Left] && box.autoMargins[Right]:
		box.Margins[Left] = max(0, remaining/2)
		box.Margins[Right] = max(0, remaining-box.Margins[Left])
	case box.autoMargins[Left]:
		box.Margins[Left] = max(0, remaining-box.Margins[Right])
	default:
		box.Margins[Right] = max(0, remaining-box.Margins[Left])
	}
	box.autoMargins[Left], box.autoMargins[Right] = false, false
	return true
}

// CollapseMargins returns the greater margin between bottom margin of box1 and
// top margin of box2, and the smaller one as the second return value.
// Either box may be nil.
func CollapseMargins(box1, box2 *Box) (float32, float32) {
	if box1 == nil {
		if box2 == nil {
			return 0, 0
		}
		return box2.Margins[Top], 0
	} else if box2 == nil {
		return box1.Margins[Bottom], 0
	}
	return max(box1.Margins[Bottom], box2.Margins[Top]),
		min(box1.Margins[Bottom], box2.Margins[Top])
}
