package style

import (
	"fmt"

	"github.com/npillmayer/cssval/core/color"
)

// ScrollbarInfo holds what is needed for layout and styling of a scroll bar
// (cf. `-webkit-scrollbar`).
type ScrollbarInfo struct {
	Width        Width // total width (height for horizontal scroll bars)
	PaddingLeft  PaddingLeft
	PaddingRight PaddingRight
	Track        BackgroundContent // background of the scroll bar
	Thumb        BackgroundContent // the draggable part
	Button       BackgroundContent // directional buttons
	Corner       BackgroundContent // where two scroll bars meet
	Resizer      BackgroundContent // resizing handle above the corner
}

// DefaultScrollbarInfo returns a 17px wide, light gray scroll bar.
func DefaultScrollbarInfo() ScrollbarInfo {
	return ScrollbarInfo{
		Width:        Px[Width](17),
		PaddingLeft:  Px[PaddingLeft](2),
		PaddingRight: Px[PaddingRight](2),
		Track:        ColorContent(color.U{R: 241, G: 241, B: 241, A: 255}),
		Thumb:        ColorContent(color.U{R: 193, G: 193, B: 193, A: 255}),
		Button:       ColorContent(color.U{R: 163, G: 163, B: 163, A: 255}),
		Corner:       BackgroundContent{},
		Resizer:      BackgroundContent{},
	}
}

// InnerWidth is the width of the thumb, i.e. width minus padding, in pixels.
func (sb ScrollbarInfo) InnerWidth() float32 {
	return sb.Width.ToPixels(0) - sb.PaddingLeft.ToPixels(0) - sb.PaddingRight.ToPixels(0)
}

func (sb ScrollbarInfo) String() string {
	return fmt.Sprintf("%s (padding %s %s) track %s thumb %s", sb.Width, sb.PaddingLeft,
		sb.PaddingRight, sb.Track, sb.Thumb)
}

// ScrollbarStyle is the value of the scrollbar-style property. Horizontal
// and Vertical are nil if the respective scroll bar is not styled.
type ScrollbarStyle struct {
	Horizontal *ScrollbarInfo
	Vertical   *ScrollbarInfo
}

func (s ScrollbarStyle) String() string {
	h, v := "none", "none"
	if s.Horizontal != nil {
		h = s.Horizontal.String()
	}
	if s.Vertical != nil {
		v = s.Vertical.String()
	}
	return fmt.Sprintf("horizontal: %s, vertical: %s", h, v)
}
