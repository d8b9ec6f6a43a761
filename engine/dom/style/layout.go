package style

// Display is the value of the `display` property.
type Display uint8

// Display modes. Block is the default.
const (
	DisplayBlock Display = iota
	DisplayFlex
	DisplayInlineBlock
)

var displayKeywords = keywords{"block", "flex", "inline-block"}

func (d Display) String() string {
	return displayKeywords.name(uint8(d))
}

// ParseDisplay looks up a display keyword.
func ParseDisplay(s string) (Display, bool) {
	return parseKeyword[Display](displayKeywords, s)
}

// Float is the value of the `float` property.
type Float uint8

// Float values. Left is the default.
const (
	FloatLeft Float = iota
	FloatRight
)

var floatKeywords = keywords{"left", "right"}

func (f Float) String() string {
	return floatKeywords.name(uint8(f))
}

// ParseFloat looks up a float keyword.
func ParseFloat(s string) (Float, bool) {
	return parseKeyword[Float](floatKeywords, s)
}

// Position is the value of the `position` property. Inline positioning
// (`sticky`) is not supported.
type Position uint8

// Position values. Static is the default.
const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

var positionKeywords = keywords{"static", "relative", "absolute", "fixed"}

func (p Position) String() string {
	return positionKeywords.name(uint8(p))
}

// ParsePosition looks up a position keyword.
func ParsePosition(s string) (Position, bool) {
	return parseKeyword[Position](positionKeywords, s)
}

// IsPositioned is true for every position except static.
func (p Position) IsPositioned() bool {
	return p != PositionStatic
}

// BoxSizing is the value of the `box-sizing` property.
type BoxSizing uint8

// Box sizing values. ContentBox is the default.
const (
	ContentBox BoxSizing = iota
	BorderBox
)

var boxSizingKeywords = keywords{"content-box", "border-box"}

func (b BoxSizing) String() string {
	return boxSizingKeywords.name(uint8(b))
}

// ParseBoxSizing looks up a box-sizing keyword.
func ParseBoxSizing(s string) (BoxSizing, bool) {
	return parseKeyword[BoxSizing](boxSizingKeywords, s)
}

// --- Flex ------------------------------------------------------------------

// Wrap is the value of the `flex-wrap` property.
type Wrap uint8

// Wrap values. Wrap is the default.
const (
	FlexWrap Wrap = iota
	FlexNoWrap
)

var wrapKeywords = keywords{"wrap", "nowrap"}

func (w Wrap) String() string {
	return wrapKeywords.name(uint8(w))
}

// ParseWrap looks up a flex-wrap keyword.
func ParseWrap(s string) (Wrap, bool) {
	return parseKeyword[Wrap](wrapKeywords, s)
}

// Axis is a layout axis. It is the direction of a FlexDirection without
// the reversal.
type Axis uint8

// Axes
const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	return keywords{"horizontal", "vertical"}.name(uint8(a))
}

// FlexDirection is the value of the `flex-direction` property.
type FlexDirection uint8

// Flex directions. Row is the default.
const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

var flexDirectionKeywords = keywords{"row", "row-reverse", "column", "column-reverse"}

func (d FlexDirection) String() string {
	return flexDirectionKeywords.name(uint8(d))
}

// ParseFlexDirection looks up a flex-direction keyword.
func ParseFlexDirection(s string) (FlexDirection, bool) {
	return parseKeyword[FlexDirection](flexDirectionKeywords, s)
}

// Axis returns the main axis of d.
func (d FlexDirection) Axis() Axis {
	if d == FlexColumn || d == FlexColumnReverse {
		return AxisVertical
	}
	return AxisHorizontal
}

// IsReverse is true for `row-reverse` and `column-reverse`.
func (d FlexDirection) IsReverse() bool {
	return d == FlexRowReverse || d == FlexColumnReverse
}

// JustifyContent is the value of the `justify-content` property.
type JustifyContent uint8

// Values for justify-content. Start is the default.
const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

var justifyKeywords = keywords{"flex-start", "flex-end", "center", "space-between",
	"space-around", "space-evenly"}

func (j JustifyContent) String() string {
	return justifyKeywords.name(uint8(j))
}

// ParseJustifyContent looks up a justify-content keyword.
func ParseJustifyContent(s string) (JustifyContent, bool) {
	return parseKeyword[JustifyContent](justifyKeywords, s)
}

// AlignItems is the value of the `align-items` property.
type AlignItems uint8

// Values for align-items. FlexStart is the default.
const (
	AlignItemsFlexStart AlignItems = iota
	AlignItemsStretch
	AlignItemsCenter
	AlignItemsFlexEnd
)

var alignItemsKeywords = keywords{"flex-start", "stretch", "center", "flex-end"}

func (a AlignItems) String() string {
	return alignItemsKeywords.name(uint8(a))
}

// ParseAlignItems looks up an align-items keyword.
func ParseAlignItems(s string) (AlignItems, bool) {
	return parseKeyword[AlignItems](alignItemsKeywords, s)
}

// AlignContent is the value of the `align-content` property.
type AlignContent uint8

// Values for align-content. Stretch is the default.
const (
	AlignContentStretch AlignContent = iota
	AlignContentCenter
	AlignContentStart
	AlignContentEnd
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

var alignContentKeywords = keywords{"stretch", "center", "flex-start", "flex-end",
	"space-between", "space-around"}

func (a AlignContent) String() string {
	return alignContentKeywords.name(uint8(a))
}

// ParseAlignContent looks up an align-content keyword.
func ParseAlignContent(s string) (AlignContent, bool) {
	return parseKeyword[AlignContent](alignContentKeywords, s)
}

// --- Overflow --------------------------------------------------------------

// Overflow is the value of `overflow-x` or `overflow-y`.
type Overflow uint8

// Overflow values. Auto is the default.
const (
	OverflowAuto    Overflow = iota // scroll bar only if content overflows
	OverflowScroll                  // always show a scroll bar
	OverflowHidden                  // clip content, no scroll bar
	OverflowVisible                 // do not clip content
)

var overflowKeywords = keywords{"auto", "scroll", "hidden", "visible"}

func (o Overflow) String() string {
	return overflowKeywords.name(uint8(o))
}

// ParseOverflow looks up an overflow keyword.
func ParseOverflow(s string) (Overflow, bool) {
	return parseKeyword[Overflow](overflowKeywords, s)
}

// NeedsScrollbar tells if a scroll bar has to be displayed, given whether
// the content is currently overflowing.
func (o Overflow) NeedsScrollbar(overflowing bool) bool {
	switch o {
	case OverflowScroll:
		return true
	case OverflowAuto:
		return overflowing
	}
	return false
}

// IsOverflowVisible is true for `visible`, the only overflow mode which
// does not clip children.
func (o Overflow) IsOverflowVisible() bool {
	return o == OverflowVisible
}
