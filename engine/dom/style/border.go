package style

import (
	"fmt"

	"github.com/npillmayer/cssval/core/color"
	"github.com/npillmayer/cssval/core/dimen"
)

// BorderStyle is the line style of a border.
type BorderStyle uint8

// Border styles. Solid is the default.
const (
	BorderSolid BorderStyle = iota
	BorderNone
	BorderDouble
	BorderDotted
	BorderDashed
	BorderHidden
	BorderGroove
	BorderRidge
	BorderInset
	BorderOutset
)

var borderStyleKeywords = keywords{"solid", "none", "double", "dotted", "dashed",
	"hidden", "groove", "ridge", "inset", "outset"}

func (s BorderStyle) String() string {
	return borderStyleKeywords.name(uint8(s))
}

// ParseBorderStyle looks up a border style keyword.
func ParseBorderStyle(s string) (BorderStyle, bool) {
	return parseKeyword[BorderStyle](borderStyleKeywords, s)
}

// BorderStyleNoNone is a border style which actually draws something
// (possibly hidden).
type BorderStyleNoNone uint8

// Visible border styles
const (
	BorderNoNoneSolid BorderStyleNoNone = iota
	BorderNoNoneDouble
	BorderNoNoneDotted
	BorderNoNoneDashed
	BorderNoNoneHidden
	BorderNoNoneGroove
	BorderNoNoneRidge
	BorderNoNoneInset
	BorderNoNoneOutset
)

func (s BorderStyleNoNone) String() string {
	return borderStyleKeywords.name(uint8(s.BorderStyle()))
}

// BorderStyle converts s back to a general border style.
func (s BorderStyleNoNone) BorderStyle() BorderStyle {
	if s == BorderNoNoneSolid {
		return BorderSolid
	}
	return BorderStyle(s) + 1
}

// Normalize removes `none` from border styles: for BorderNone it returns
// false, for every other style the equivalent BorderStyleNoNone.
func (s BorderStyle) Normalize() (BorderStyleNoNone, bool) {
	switch s {
	case BorderNone:
		return 0, false
	case BorderSolid:
		return BorderNoNoneSolid, true
	}
	if s > BorderOutset {
		return 0, false
	}
	return BorderStyleNoNone(s - 1), true
}

// BorderSide is the color and style of one side of a border.
type BorderSide struct {
	Color color.U
	Style BorderStyle
}

// BorderRadii are the corner radii of a border.
type BorderRadii struct {
	TopLeft     BorderTopLeftRadius
	TopRight    BorderTopRightRadius
	BottomLeft  BorderBottomLeftRadius
	BottomRight BorderBottomRightRadius
}

// NormalBorder is a border drawn with lines, as opposed to an image border.
// Radius is nil for rectangular corners.
type NormalBorder struct {
	Left, Right, Top, Bottom BorderSide
	Radius                   *BorderRadii
}

// BorderSideStyle is width, style and color of one side of a border, as set
// by shorthands like `border-left`.
type BorderSideStyle struct {
	Width dimen.PixelValue
	Style BorderStyle
	Color color.U
}

func (b BorderSideStyle) String() string {
	return fmt.Sprintf("%s %s %s", b.Width, b.Style, b.Color)
}

// --- Box shadows -----------------------------------------------------------

// BoxShadowClipMode tells if a box shadow is drawn outside or inside of a box.
type BoxShadowClipMode uint8

// Clip modes. Outset is the default.
const (
	ClipOutset BoxShadowClipMode = iota
	ClipInset
)

var clipModeKeywords = keywords{"outset", "inset"}

func (m BoxShadowClipMode) String() string {
	return clipModeKeywords.name(uint8(m))
}

// ParseBoxShadowClipMode looks up a clip mode keyword.
func ParseBoxShadowClipMode(s string) (BoxShadowClipMode, bool) {
	return parseKeyword[BoxShadowClipMode](clipModeKeywords, s)
}

// BoxShadow is the value of one of the box-shadow properties.
type BoxShadow struct {
	Offset       [2]dimen.PixelValueNoPercent
	Color        color.U
	BlurRadius   dimen.PixelValueNoPercent
	SpreadRadius dimen.PixelValueNoPercent
	ClipMode     BoxShadowClipMode
}

func (bs BoxShadow) String() string {
	s := fmt.Sprintf("%s %s %s %s %s", bs.Offset[0], bs.Offset[1], bs.BlurRadius,
		bs.SpreadRadius, bs.Color)
	if bs.ClipMode == ClipInset {
		s += " inset"
	}
	return s
}
