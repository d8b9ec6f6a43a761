package style

import (
	"github.com/npillmayer/cssval/core/color"
	"github.com/npillmayer/cssval/core/dimen"
	"github.com/npillmayer/cssval/core/percent"
)

// Every property whose value is a plain length, number, percentage, color or
// border style has its own named type, such that properties of different
// kinds cannot be mixed up. The value is embedded, i.e. Width{dimen.Px(10)}
// has all the methods of a PixelValue.

// Lengths
type (
	Width                   struct{ dimen.PixelValue }
	Height                  struct{ dimen.PixelValue }
	MinWidth                struct{ dimen.PixelValue }
	MinHeight               struct{ dimen.PixelValue }
	MaxWidth                struct{ dimen.PixelValue }
	MaxHeight               struct{ dimen.PixelValue }
	Top                     struct{ dimen.PixelValue }
	Right                   struct{ dimen.PixelValue }
	Left                    struct{ dimen.PixelValue }
	Bottom                  struct{ dimen.PixelValue }
	PaddingTop              struct{ dimen.PixelValue }
	PaddingLeft             struct{ dimen.PixelValue }
	PaddingRight            struct{ dimen.PixelValue }
	PaddingBottom           struct{ dimen.PixelValue }
	MarginTop               struct{ dimen.PixelValue }
	MarginLeft              struct{ dimen.PixelValue }
	MarginRight             struct{ dimen.PixelValue }
	MarginBottom            struct{ dimen.PixelValue }
	BorderTopWidth          struct{ dimen.PixelValue }
	BorderRightWidth        struct{ dimen.PixelValue }
	BorderLeftWidth         struct{ dimen.PixelValue }
	BorderBottomWidth       struct{ dimen.PixelValue }
	BorderTopLeftRadius     struct{ dimen.PixelValue }
	BorderTopRightRadius    struct{ dimen.PixelValue }
	BorderBottomLeftRadius  struct{ dimen.PixelValue }
	BorderBottomRightRadius struct{ dimen.PixelValue }
	FontSize                struct{ dimen.PixelValue }
	LetterSpacing           struct{ dimen.PixelValue }
	WordSpacing             struct{ dimen.PixelValue }
)

// Numbers. The default is 0.
type (
	FlexGrow   struct{ dimen.Float }
	FlexShrink struct{ dimen.Float }
	Opacity    struct{ dimen.Float }
)

// Percentages
type (
	LineHeight struct{ percent.Percent }
	TabWidth   struct{ percent.Percent }
)

// Colors
type (
	TextColor         struct{ color.U }
	BorderTopColor    struct{ color.U }
	BorderRightColor  struct{ color.U }
	BorderLeftColor   struct{ color.U }
	BorderBottomColor struct{ color.U }
)

// Border styles
type (
	BorderTopStyle    struct{ BorderStyle }
	BorderRightStyle  struct{ BorderStyle }
	BorderLeftStyle   struct{ BorderStyle }
	BorderBottomStyle struct{ BorderStyle }
)

// PixelWrapper is the type set of all length properties.
type PixelWrapper interface {
	~struct{ dimen.PixelValue }
}

// Px creates a length property in pixels, e.g.
//
//	w := style.Px[style.Width](120)
func Px[T PixelWrapper](v float32) T {
	return T(struct{ dimen.PixelValue }{dimen.Px(v)})
}

// Pt creates a length property in points.
func Pt[T PixelWrapper](v float32) T {
	return T(struct{ dimen.PixelValue }{dimen.Pt(v)})
}

// Em creates a length property in ems.
func Em[T PixelWrapper](v float32) T {
	return T(struct{ dimen.PixelValue }{dimen.Em(v)})
}

// Percent creates a length property as a percentage of a reference length.
func Percent[T PixelWrapper](v float32) T {
	return T(struct{ dimen.PixelValue }{dimen.Percent(v)})
}

// Pixels wraps an existing length into a length property.
func Pixels[T PixelWrapper](p dimen.PixelValue) T {
	return T(struct{ dimen.PixelValue }{p})
}
