package css

/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer

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

// PropertyType is the kind of a (non-shorthand) CSS property, e.g. Width
// for `width`.
type PropertyType uint8

// Property types, in the order of the key table.
const (
	Display PropertyType = iota
	Float
	BoxSizing
	TextColor
	FontSize
	FontFamily
	TextAlign
	LetterSpacing
	LineHeight
	WordSpacing
	TabWidth
	Cursor
	Width
	Height
	MinWidth
	MinHeight
	MaxWidth
	MaxHeight
	Position
	Top
	Right
	Left
	Bottom
	FlexWrap
	FlexDirection
	FlexGrow
	FlexShrink
	JustifyContent
	AlignItems
	AlignContent
	OverflowX
	OverflowY
	PaddingTop
	PaddingLeft
	PaddingRight
	PaddingBottom
	MarginTop
	MarginLeft
	MarginRight
	MarginBottom
	Background
	BackgroundImage
	BackgroundColor
	BackgroundPosition
	BackgroundSize
	BackgroundRepeat
	BorderTopLeftRadius
	BorderTopRightRadius
	BorderBottomLeftRadius
	BorderBottomRightRadius
	BorderTopColor
	BorderRightColor
	BorderLeftColor
	BorderBottomColor
	BorderTopStyle
	BorderRightStyle
	BorderLeftStyle
	BorderBottomStyle
	BorderTopWidth
	BorderRightWidth
	BorderLeftWidth
	BorderBottomWidth
	BoxShadowTop
	BoxShadowRight
	BoxShadowLeft
	BoxShadowBottom
	ScrollbarStyle
	Opacity
	Transform
	PerspectiveOrigin
	TransformOrigin
	BackfaceVisibility

	propertyTypeCount = int(BackfaceVisibility) + 1
)

// propertyKeys is indexed by PropertyType.
var propertyKeys = [propertyTypeCount]string{
	"display", "float", "box-sizing", "color", "font-size", "font-family",
	"text-align", "letter-spacing", "line-height", "word-spacing", "tab-width",
	"cursor",
	"width", "height", "min-width", "min-height", "max-width", "max-height",
	"position", "top", "right", "left", "bottom",
	"flex-wrap", "flex-direction", "flex-grow", "flex-shrink",
	"justify-content", "align-items", "align-content",
	"overflow-x", "overflow-y",
	"padding-top", "padding-left", "padding-right", "padding-bottom",
	"margin-top", "margin-left", "margin-right", "margin-bottom",
	"background", "background-image", "background-color",
	"background-position", "background-size", "background-repeat",
	"border-top-left-radius", "border-top-right-radius",
	"border-bottom-left-radius", "border-bottom-right-radius",
	"border-top-color", "border-right-color", "border-left-color", "border-bottom-color",
	"border-top-style", "border-right-style", "border-left-style", "border-bottom-style",
	"border-top-width", "border-right-width", "border-left-width", "border-bottom-width",
	"box-shadow-top", "box-shadow-right", "box-shadow-left", "box-shadow-bottom",
	"scrollbar-style",
	"opacity", "transform", "perspective-origin", "transform-origin",
	"backface-visibility",
}

// AllPropertyTypes returns every property type in key table order.
func AllPropertyTypes() []PropertyType {
	all := make([]PropertyType, propertyTypeCount)
	for i := range all {
		all[i] = PropertyType(i)
	}
	return all
}

func (t PropertyType) String() string {
	if int(t) >= propertyTypeCount {
		return "?"
	}
	return propertyKeys[t]
}

// IsInheritable returns whether a property is inherited during cascading.
func (t PropertyType) IsInheritable() bool {
	switch t {
	case TextColor, FontFamily, FontSize, LineHeight, TextAlign:
		return true
	}
	return false
}

// CanTriggerRelayout returns whether a change of the property may change
// the layout. Font and spacing properties do, as they affect text layout,
// and borders do, as they may grow larger than the content.
func (t PropertyType) CanTriggerRelayout() bool {
	switch t {
	case TextColor, Cursor,
		Background, BackgroundPosition, BackgroundSize, BackgroundRepeat, BackgroundImage, BackgroundColor,
		BorderTopLeftRadius, BorderTopRightRadius, BorderBottomLeftRadius, BorderBottomRightRadius,
		BorderTopColor, BorderRightColor, BorderLeftColor, BorderBottomColor,
		BorderTopStyle, BorderRightStyle, BorderLeftStyle, BorderBottomStyle,
		BoxShadowLeft, BoxShadowRight, BoxShadowTop, BoxShadowBottom:
		return false
	}
	return true
}

// IsGPUOnly returns whether a property is applied by the compositor alone
// (opacity and transforms).
func (t PropertyType) IsGPUOnly() bool {
	return t == Opacity || t == Transform
}

// ShorthandType is the kind of a shorthand property, which stands for
// several properties of type PropertyType, e.g. `margin`.
type ShorthandType uint8

// Shorthand types, in the order of the key table.
const (
	BorderRadius ShorthandType = iota
	Overflow
	Padding
	Margin
	Border
	BorderLeft
	BorderRight
	BorderTop
	BorderBottom
	BoxShadow

	shorthandTypeCount = int(BoxShadow) + 1
)

var shorthandKeys = [shorthandTypeCount]string{
	"border-radius", "overflow", "padding", "margin", "border",
	"border-left", "border-right", "border-top", "border-bottom",
	"box-shadow",
}

// AllShorthandTypes returns every shorthand type in key table order.
func AllShorthandTypes() []ShorthandType {
	all := make([]ShorthandType, shorthandTypeCount)
	for i := range all {
		all[i] = ShorthandType(i)
	}
	return all
}

func (t ShorthandType) String() string {
	if int(t) >= shorthandTypeCount {
		return "?"
	}
	return shorthandKeys[t]
}
