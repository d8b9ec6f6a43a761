package css

import (
	"fmt"

	"github.com/npillmayer/cssval/engine/dom/style"
)

// Property is a CSS property of a certain type, holding a cascaded value
// of the payload type bound to that property type, e.g.
//
//	Width               Value[style.Width]
//	OverflowX           Value[style.Overflow]
//	Background          Value[style.BackgroundContents]
//
// Properties are created either with one of the keyword constructors
// (NoneOf, AutoOf, InitialOf, InheritOf) or with an exact value, e.g.
// SomeWidth(style.Px[style.Width](100)).
type Property struct {
	kind  PropertyType
	value valueTagger
}

// valueTagger is implemented by every Value[T].
type valueTagger interface {
	Tag() ValueTag
	Equals(any) bool
	String() string
}

// Type returns the property type of p.
func (p Property) Type() PropertyType {
	return p.kind
}

// Tag returns the tag of the value of p.
func (p Property) Tag() ValueTag {
	if p.value == nil {
		return None
	}
	return p.value.Tag()
}

// Equals returns true if p and other are of the same type and hold equal
// values.
func (p Property) Equals(other Property) bool {
	if p.kind != other.kind {
		return false
	}
	if p.value == nil || other.value == nil {
		return p.Tag() == other.Tag()
	}
	return p.value.Equals(other.value)
}

// ValueOf returns the value of p, if its payload is of type T.
//
//	w, ok := css.ValueOf[style.Width](p)
func ValueOf[T any](p Property) (Value[T], bool) {
	v, ok := p.value.(Value[T])
	return v, ok
}

func (p Property) String() string {
	if p.value == nil {
		return fmt.Sprintf("%s: %s", p.kind, None)
	}
	return fmt.Sprintf("%s: %s", p.kind, p.value)
}

// NoneOf creates a property of type t with value `none`.
func NoneOf(t PropertyType) Property { return tagged(t, None) }

// AutoOf creates a property of type t with value `auto`.
func AutoOf(t PropertyType) Property { return tagged(t, Auto) }

// InitialOf creates a property of type t with value `initial`.
func InitialOf(t PropertyType) Property { return tagged(t, Initial) }

// InheritOf creates a property of type t with value `inherit`.
func InheritOf(t PropertyType) Property { return tagged(t, Inherit) }

// tagged creates a property holding a value of the payload type for t.
// Every property type has to be listed here.
func tagged(t PropertyType, tag ValueTag) Property {
	switch t {
	case Display:
		return Property{t, TaggedValue[style.Display](tag)}
	case Float:
		return Property{t, TaggedValue[style.Float](tag)}
	case BoxSizing:
		return Property{t, TaggedValue[style.BoxSizing](tag)}
	case TextColor:
		return Property{t, TaggedValue[style.TextColor](tag)}
	case FontSize:
		return Property{t, TaggedValue[style.FontSize](tag)}
	case FontFamily:
		return Property{t, TaggedValue[style.FontFamily](tag)}
	case TextAlign:
		return Property{t, TaggedValue[style.TextAlign](tag)}
	case LetterSpacing:
		return Property{t, TaggedValue[style.LetterSpacing](tag)}
	case LineHeight:
		return Property{t, TaggedValue[style.LineHeight](tag)}
	case WordSpacing:
		return Property{t, TaggedValue[style.WordSpacing](tag)}
	case TabWidth:
		return Property{t, TaggedValue[style.TabWidth](tag)}
	case Cursor:
		return Property{t, TaggedValue[style.Cursor](tag)}
	case Width:
		return Property{t, TaggedValue[style.Width](tag)}
	case Height:
		return Property{t, TaggedValue[style.Height](tag)}
	case MinWidth:
		return Property{t, TaggedValue[style.MinWidth](tag)}
	case MinHeight:
		return Property{t, TaggedValue[style.MinHeight](tag)}
	case MaxWidth:
		return Property{t, TaggedValue[style.MaxWidth](tag)}
	case MaxHeight:
		return Property{t, TaggedValue[style.MaxHeight](tag)}
	case Position:
		return Property{t, TaggedValue[style.Position](tag)}
	case Top:
		return Property{t, TaggedValue[style.Top](tag)}
	case Right:
		return Property{t, TaggedValue[style.Right](tag)}
	case Left:
		return Property{t, TaggedValue[style.Left](tag)}
	case Bottom:
		return Property{t, TaggedValue[style.Bottom](tag)}
	case FlexWrap:
		return Property{t, TaggedValue[style.Wrap](tag)}
	case FlexDirection:
		return Property{t, TaggedValue[style.FlexDirection](tag)}
	case FlexGrow:
		return Property{t, TaggedValue[style.FlexGrow](tag)}
	case FlexShrink:
		return Property{t, TaggedValue[style.FlexShrink](tag)}
	case JustifyContent:
		return Property{t, TaggedValue[style.JustifyContent](tag)}
	case AlignItems:
		return Property{t, TaggedValue[style.AlignItems](tag)}
	case AlignContent:
		return Property{t, TaggedValue[style.AlignContent](tag)}
	case OverflowX, OverflowY:
		return Property{t, TaggedValue[style.Overflow](tag)}
	case PaddingTop:
		return Property{t, TaggedValue[style.PaddingTop](tag)}
	case PaddingLeft:
		return Property{t, TaggedValue[style.PaddingLeft](tag)}
	case PaddingRight:
		return Property{t, TaggedValue[style.PaddingRight](tag)}
	case PaddingBottom:
		return Property{t, TaggedValue[style.PaddingBottom](tag)}
	case MarginTop:
		return Property{t, TaggedValue[style.MarginTop](tag)}
	case MarginLeft:
		return Property{t, TaggedValue[style.MarginLeft](tag)}
	case MarginRight:
		return Property{t, TaggedValue[style.MarginRight](tag)}
	case MarginBottom:
		return Property{t, TaggedValue[style.MarginBottom](tag)}
	case Background, BackgroundImage, BackgroundColor:
		return Property{t, TaggedValue[style.BackgroundContents](tag)}
	case BackgroundPosition:
		return Property{t, TaggedValue[style.BackgroundPositions](tag)}
	case BackgroundSize:
		return Property{t, TaggedValue[style.BackgroundSizes](tag)}
	case BackgroundRepeat:
		return Property{t, TaggedValue[style.BackgroundRepeats](tag)}
	case BorderTopLeftRadius:
		return Property{t, TaggedValue[style.BorderTopLeftRadius](tag)}
	case BorderTopRightRadius:
		return Property{t, TaggedValue[style.BorderTopRightRadius](tag)}
	case BorderBottomLeftRadius:
		return Property{t, TaggedValue[style.BorderBottomLeftRadius](tag)}
	case BorderBottomRightRadius:
		return Property{t, TaggedValue[style.BorderBottomRightRadius](tag)}
	case BorderTopColor:
		return Property{t, TaggedValue[style.BorderTopColor](tag)}
	case BorderRightColor:
		return Property{t, TaggedValue[style.BorderRightColor](tag)}
	case BorderLeftColor:
		return Property{t, TaggedValue[style.BorderLeftColor](tag)}
	case BorderBottomColor:
		return Property{t, TaggedValue[style.BorderBottomColor](tag)}
	case BorderTopStyle:
		return Property{t, TaggedValue[style.BorderTopStyle](tag)}
	case BorderRightStyle:
		return Property{t, TaggedValue[style.BorderRightStyle](tag)}
	case BorderLeftStyle:
		return Property{t, TaggedValue[style.BorderLeftStyle](tag)}
	case BorderBottomStyle:
		return Property{t, TaggedValue[style.BorderBottomStyle](tag)}
	case BorderTopWidth:
		return Property{t, TaggedValue[style.BorderTopWidth](tag)}
	case BorderRightWidth:
		return Property{t, TaggedValue[style.BorderRightWidth](tag)}
	case BorderLeftWidth:
		return Property{t, TaggedValue[style.BorderLeftWidth](tag)}
	case BorderBottomWidth:
		return Property{t, TaggedValue[style.BorderBottomWidth](tag)}
	case BoxShadowTop, BoxShadowRight, BoxShadowLeft, BoxShadowBottom:
		return Property{t, TaggedValue[style.BoxShadow](tag)}
	case ScrollbarStyle:
		return Property{t, TaggedValue[style.ScrollbarStyle](tag)}
	case Opacity:
		return Property{t, TaggedValue[style.Opacity](tag)}
	case Transform:
		return Property{t, TaggedValue[style.Transforms](tag)}
	case PerspectiveOrigin:
		return Property{t, TaggedValue[style.PerspectiveOrigin](tag)}
	case TransformOrigin:
		return Property{t, TaggedValue[style.TransformOrigin](tag)}
	case BackfaceVisibility:
		return Property{t, TaggedValue[style.BackfaceVisibility](tag)}
	}
	panic(fmt.Sprintf("no payload type for CSS property type %d", t))
}

// Constructors for exact values.

func SomeDisplay(v style.Display) Property     { return Property{Display, Some(v)} }
func SomeFloat(v style.Float) Property         { return Property{Float, Some(v)} }
func SomeBoxSizing(v style.BoxSizing) Property { return Property{BoxSizing, Some(v)} }

func SomeTextColor(v style.TextColor) Property         { return Property{TextColor, Some(v)} }
func SomeFontSize(v style.FontSize) Property           { return Property{FontSize, Some(v)} }
func SomeFontFamily(v style.FontFamily) Property       { return Property{FontFamily, Some(v)} }
func SomeTextAlign(v style.TextAlign) Property         { return Property{TextAlign, Some(v)} }
func SomeLetterSpacing(v style.LetterSpacing) Property { return Property{LetterSpacing, Some(v)} }
func SomeLineHeight(v style.LineHeight) Property       { return Property{LineHeight, Some(v)} }
func SomeWordSpacing(v style.WordSpacing) Property     { return Property{WordSpacing, Some(v)} }
func SomeTabWidth(v style.TabWidth) Property           { return Property{TabWidth, Some(v)} }
func SomeCursor(v style.Cursor) Property               { return Property{Cursor, Some(v)} }

func SomeWidth(v style.Width) Property         { return Property{Width, Some(v)} }
func SomeHeight(v style.Height) Property       { return Property{Height, Some(v)} }
func SomeMinWidth(v style.MinWidth) Property   { return Property{MinWidth, Some(v)} }
func SomeMinHeight(v style.MinHeight) Property { return Property{MinHeight, Some(v)} }
func SomeMaxWidth(v style.MaxWidth) Property   { return Property{MaxWidth, Some(v)} }
func SomeMaxHeight(v style.MaxHeight) Property { return Property{MaxHeight, Some(v)} }

func SomePosition(v style.Position) Property { return Property{Position, Some(v)} }
func SomeTop(v style.Top) Property           { return Property{Top, Some(v)} }
func SomeRight(v style.Right) Property       { return Property{Right, Some(v)} }
func SomeLeft(v style.Left) Property         { return Property{Left, Some(v)} }
func SomeBottom(v style.Bottom) Property     { return Property{Bottom, Some(v)} }

func SomeFlexWrap(v style.Wrap) Property                 { return Property{FlexWrap, Some(v)} }
func SomeFlexDirection(v style.FlexDirection) Property   { return Property{FlexDirection, Some(v)} }
func SomeFlexGrow(v style.FlexGrow) Property             { return Property{FlexGrow, Some(v)} }
func SomeFlexShrink(v style.FlexShrink) Property         { return Property{FlexShrink, Some(v)} }
func SomeJustifyContent(v style.JustifyContent) Property { return Property{JustifyContent, Some(v)} }
func SomeAlignItems(v style.AlignItems) Property         { return Property{AlignItems, Some(v)} }
func SomeAlignContent(v style.AlignContent) Property     { return Property{AlignContent, Some(v)} }

func SomeOverflowX(v style.Overflow) Property { return Property{OverflowX, Some(v)} }
func SomeOverflowY(v style.Overflow) Property { return Property{OverflowY, Some(v)} }

func SomePaddingTop(v style.PaddingTop) Property       { return Property{PaddingTop, Some(v)} }
func SomePaddingLeft(v style.PaddingLeft) Property     { return Property{PaddingLeft, Some(v)} }
func SomePaddingRight(v style.PaddingRight) Property   { return Property{PaddingRight, Some(v)} }
func SomePaddingBottom(v style.PaddingBottom) Property { return Property{PaddingBottom, Some(v)} }

func SomeMarginTop(v style.MarginTop) Property       { return Property{MarginTop, Some(v)} }
func SomeMarginLeft(v style.MarginLeft) Property     { return Property{MarginLeft, Some(v)} }
func SomeMarginRight(v style.MarginRight) Property   { return Property{MarginRight, Some(v)} }
func SomeMarginBottom(v style.MarginBottom) Property { return Property{MarginBottom, Some(v)} }

func SomeBackground(v style.BackgroundContents) Property          { return Property{Background, Some(v)} }
func SomeBackgroundImage(v style.BackgroundContents) Property     { return Property{BackgroundImage, Some(v)} }
func SomeBackgroundColor(v style.BackgroundContents) Property     { return Property{BackgroundColor, Some(v)} }
func SomeBackgroundPosition(v style.BackgroundPositions) Property { return Property{BackgroundPosition, Some(v)} }
func SomeBackgroundSize(v style.BackgroundSizes) Property         { return Property{BackgroundSize, Some(v)} }
func SomeBackgroundRepeat(v style.BackgroundRepeats) Property     { return Property{BackgroundRepeat, Some(v)} }

func SomeBorderTopLeftRadius(v style.BorderTopLeftRadius) Property         { return Property{BorderTopLeftRadius, Some(v)} }
func SomeBorderTopRightRadius(v style.BorderTopRightRadius) Property       { return Property{BorderTopRightRadius, Some(v)} }
func SomeBorderBottomLeftRadius(v style.BorderBottomLeftRadius) Property   { return Property{BorderBottomLeftRadius, Some(v)} }
func SomeBorderBottomRightRadius(v style.BorderBottomRightRadius) Property { return Property{BorderBottomRightRadius, Some(v)} }

func SomeBorderTopColor(v style.BorderTopColor) Property       { return Property{BorderTopColor, Some(v)} }
func SomeBorderRightColor(v style.BorderRightColor) Property   { return Property{BorderRightColor, Some(v)} }
func SomeBorderLeftColor(v style.BorderLeftColor) Property     { return Property{BorderLeftColor, Some(v)} }
func SomeBorderBottomColor(v style.BorderBottomColor) Property { return Property{BorderBottomColor, Some(v)} }

func SomeBorderTopStyle(v style.BorderTopStyle) Property       { return Property{BorderTopStyle, Some(v)} }
func SomeBorderRightStyle(v style.BorderRightStyle) Property   { return Property{BorderRightStyle, Some(v)} }
func SomeBorderLeftStyle(v style.BorderLeftStyle) Property     { return Property{BorderLeftStyle, Some(v)} }
func SomeBorderBottomStyle(v style.BorderBottomStyle) Property { return Property{BorderBottomStyle, Some(v)} }

func SomeBorderTopWidth(v style.BorderTopWidth) Property       { return Property{BorderTopWidth, Some(v)} }
func SomeBorderRightWidth(v style.BorderRightWidth) Property   { return Property{BorderRightWidth, Some(v)} }
func SomeBorderLeftWidth(v style.BorderLeftWidth) Property     { return Property{BorderLeftWidth, Some(v)} }
func SomeBorderBottomWidth(v style.BorderBottomWidth) Property { return Property{BorderBottomWidth, Some(v)} }

func SomeBoxShadowTop(v style.BoxShadow) Property    { return Property{BoxShadowTop, Some(v)} }
func SomeBoxShadowRight(v style.BoxShadow) Property  { return Property{BoxShadowRight, Some(v)} }
func SomeBoxShadowLeft(v style.BoxShadow) Property   { return Property{BoxShadowLeft, Some(v)} }
func SomeBoxShadowBottom(v style.BoxShadow) Property { return Property{BoxShadowBottom, Some(v)} }

func SomeScrollbarStyle(v style.ScrollbarStyle) Property { return Property{ScrollbarStyle, Some(v)} }

func SomeOpacity(v style.Opacity) Property                       { return Property{Opacity, Some(v)} }
func SomeTransform(v style.Transforms) Property                  { return Property{Transform, Some(v)} }
func SomePerspectiveOrigin(v style.PerspectiveOrigin) Property   { return Property{PerspectiveOrigin, Some(v)} }
func SomeTransformOrigin(v style.TransformOrigin) Property       { return Property{TransformOrigin, Some(v)} }
func SomeBackfaceVisibility(v style.BackfaceVisibility) Property { return Property{BackfaceVisibility, Some(v)} }
