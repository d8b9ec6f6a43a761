package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cssval/core/color"
	"github.com/npillmayer/cssval/core/dimen"
)

// ImageID identifies an image resource, e.g. the argument of `url(…)`.
type ImageID string

// BackgroundContentKind tells what a background layer is painted with.
type BackgroundContentKind uint8

// Kinds of background content. A color is the default.
const (
	ContentColor BackgroundContentKind = iota
	ContentLinearGradient
	ContentRadialGradient
	ContentConicGradient
	ContentImage
)

// BackgroundContent is one layer of a background: a color, an image or a
// gradient. The zero value is a transparent color.
type BackgroundContent struct {
	Kind   BackgroundContentKind
	Color  color.U
	Image  ImageID
	Linear *LinearGradient
	Radial *RadialGradient
	Conic  *ConicGradient
}

// ColorContent creates a background of color c.
func ColorContent(c color.U) BackgroundContent {
	return BackgroundContent{Kind: ContentColor, Color: c}
}

// ImageContent creates a background showing an image.
func ImageContent(id ImageID) BackgroundContent {
	return BackgroundContent{Kind: ContentImage, Image: id}
}

// LinearGradientContent creates a background painted with a linear gradient.
func LinearGradientContent(g LinearGradient) BackgroundContent {
	return BackgroundContent{Kind: ContentLinearGradient, Linear: &g}
}

// RadialGradientContent creates a background painted with a radial gradient.
func RadialGradientContent(g RadialGradient) BackgroundContent {
	return BackgroundContent{Kind: ContentRadialGradient, Radial: &g}
}

// ConicGradientContent creates a background painted with a conic gradient.
func ConicGradientContent(g ConicGradient) BackgroundContent {
	return BackgroundContent{Kind: ContentConicGradient, Conic: &g}
}

// ImageID returns the image of an image background. For other kinds of
// backgrounds it returns false.
func (bg BackgroundContent) ImageID() (ImageID, bool) {
	if bg.Kind != ContentImage {
		return "", false
	}
	return bg.Image, true
}

func (bg BackgroundContent) String() string {
	switch bg.Kind {
	case ContentImage:
		return fmt.Sprintf("url(%q)", string(bg.Image))
	case ContentLinearGradient:
		if bg.Linear != nil {
			return bg.Linear.String()
		}
	case ContentRadialGradient:
		if bg.Radial != nil {
			return bg.Radial.String()
		}
	case ContentConicGradient:
		if bg.Conic != nil {
			return bg.Conic.String()
		}
	case ContentColor:
		return bg.Color.String()
	}
	return "none"
}

// BackgroundContents is the list of background layers of a box, topmost first.
type BackgroundContents []BackgroundContent

func (bgs BackgroundContents) String() string {
	return joinList(bgs)
}

// --- Size, position, repeat ------------------------------------------------

// BackgroundSizeKind tells how the size of a background image is specified.
type BackgroundSizeKind uint8

// Kinds of background sizes
const (
	SizeExact BackgroundSizeKind = iota
	SizeContain
	SizeCover
)

// BackgroundSize is the value of one layer of `background-size`.
// Size is set for SizeExact only.
type BackgroundSize struct {
	Kind BackgroundSizeKind
	Size [2]dimen.PixelValue
}

// ExactBackgroundSize creates a background size of width w and height h.
func ExactBackgroundSize(w, h dimen.PixelValue) BackgroundSize {
	return BackgroundSize{Kind: SizeExact, Size: [2]dimen.PixelValue{w, h}}
}

func (sz BackgroundSize) String() string {
	switch sz.Kind {
	case SizeContain:
		return "contain"
	case SizeCover:
		return "cover"
	}
	return sz.Size[0].String() + " " + sz.Size[1].String()
}

// BackgroundSizes is the list of background sizes, one per layer.
type BackgroundSizes []BackgroundSize

func (s BackgroundSizes) String() string {
	return joinList(s)
}

// PositionKeyword is a keyword position of a background along one axis.
// PositionExact means an explicit offset.
type PositionKeyword uint8

// Position keywords. For the horizontal axis, Start is `left` and End is
// `right`; for the vertical axis, Start is `top` and End is `bottom`.
const (
	PositionStart PositionKeyword = iota
	PositionCenter
	PositionEnd
	PositionExact
)

// BackgroundPositionHorizontal is the horizontal component of a background
// position. Offset is set for PositionExact only.
type BackgroundPositionHorizontal struct {
	Keyword PositionKeyword
	Offset  dimen.PixelValue
}

func (p BackgroundPositionHorizontal) String() string {
	return keywords{"left", "center", "right"}.nameOr(uint8(p.Keyword), p.Offset)
}

// BackgroundPositionVertical is the vertical component of a background
// position. Offset is set for PositionExact only.
type BackgroundPositionVertical struct {
	Keyword PositionKeyword
	Offset  dimen.PixelValue
}

func (p BackgroundPositionVertical) String() string {
	return keywords{"top", "center", "bottom"}.nameOr(uint8(p.Keyword), p.Offset)
}

// nameOr is name, but returns the offset for exact positions.
func (kw keywords) nameOr(i uint8, offset dimen.PixelValue) string {
	if int(i) < len(kw) {
		return kw[i]
	}
	return offset.String()
}

// BackgroundPosition is the value of one layer of `background-position`.
// The zero value is `left top`.
type BackgroundPosition struct {
	Horizontal BackgroundPositionHorizontal
	Vertical   BackgroundPositionVertical
}

// ExactBackgroundPosition creates a background position from two offsets.
func ExactBackgroundPosition(x, y dimen.PixelValue) BackgroundPosition {
	return BackgroundPosition{
		Horizontal: BackgroundPositionHorizontal{Keyword: PositionExact, Offset: x},
		Vertical:   BackgroundPositionVertical{Keyword: PositionExact, Offset: y},
	}
}

func (p BackgroundPosition) String() string {
	return p.Horizontal.String() + " " + p.Vertical.String()
}

// BackgroundPositions is the list of background positions, one per layer.
type BackgroundPositions []BackgroundPosition

func (p BackgroundPositions) String() string {
	return joinList(p)
}

// BackgroundRepeat is the value of one layer of `background-repeat`.
type BackgroundRepeat uint8

// Repeat modes. Repeat is the default.
const (
	Repeat BackgroundRepeat = iota
	NoRepeat
	RepeatX
	RepeatY
)

var repeatKeywords = keywords{"repeat", "no-repeat", "repeat-x", "repeat-y"}

func (r BackgroundRepeat) String() string {
	return repeatKeywords.name(uint8(r))
}

// ParseBackgroundRepeat looks up a repeat keyword.
func ParseBackgroundRepeat(s string) (BackgroundRepeat, bool) {
	return parseKeyword[BackgroundRepeat](repeatKeywords, s)
}

// BackgroundRepeats is the list of repeat modes, one per layer.
type BackgroundRepeats []BackgroundRepeat

func (r BackgroundRepeats) String() string {
	return joinList(r)
}

func joinList[S fmt.Stringer](l []S) string {
	s := make([]string, len(l))
	for i, x := range l {
		s[i] = x.String()
	}
	return strings.Join(s, ", ")
}
