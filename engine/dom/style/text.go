package style

import (
	"strconv"
	"strings"
)

// TextAlign is the value of the `text-align` property.
type TextAlign uint8

// Horizontal text alignments. Left is the default.
const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

var textAlignKeywords = keywords{"left", "center", "right"}

func (a TextAlign) String() string {
	return textAlignKeywords.name(uint8(a))
}

// ParseTextAlign looks up a text-align keyword.
func ParseTextAlign(s string) (TextAlign, bool) {
	return parseKeyword[TextAlign](textAlignKeywords, s)
}

// VerticalAlign is the vertical alignment of text within its box.
type VerticalAlign uint8

// Vertical text alignments. Top is the default.
const (
	VerticalAlignTop VerticalAlign = iota
	VerticalAlignCenter
	VerticalAlignBottom
)

var verticalAlignKeywords = keywords{"top", "center", "bottom"}

func (a VerticalAlign) String() string {
	return verticalAlignKeywords.name(uint8(a))
}

// ParseVerticalAlign looks up a vertical alignment keyword.
func ParseVerticalAlign(s string) (VerticalAlign, bool) {
	return parseKeyword[VerticalAlign](verticalAlignKeywords, s)
}

// Cursor is the value of the `cursor` property.
type Cursor uint8

// Mouse cursors. Default (an arrow) is the default.
const (
	CursorDefault Cursor = iota
	CursorAlias
	CursorAllScroll
	CursorCell
	CursorColResize
	CursorContextMenu
	CursorCopy
	CursorCrosshair
	CursorEResize
	CursorEwResize
	CursorGrab
	CursorGrabbing
	CursorHelp
	CursorMove
	CursorNResize
	CursorNsResize
	CursorNeswResize
	CursorNwseResize
	CursorPointer
	CursorProgress
	CursorRowResize
	CursorSResize
	CursorSeResize
	CursorText
	CursorUnset
	CursorVerticalText
	CursorWResize
	CursorWait
	CursorZoomIn
	CursorZoomOut
)

var cursorKeywords = keywords{"default", "alias", "all-scroll", "cell", "col-resize",
	"context-menu", "copy", "crosshair", "e-resize", "ew-resize", "grab", "grabbing",
	"help", "move", "n-resize", "ns-resize", "nesw-resize", "nwse-resize", "pointer",
	"progress", "row-resize", "s-resize", "se-resize", "text", "unset", "vertical-text",
	"w-resize", "wait", "zoom-in", "zoom-out"}

func (c Cursor) String() string {
	return cursorKeywords.name(uint8(c))
}

// ParseCursor looks up a cursor keyword.
func ParseCursor(s string) (Cursor, bool) {
	return parseKeyword[Cursor](cursorKeywords, s)
}

// FontFamily is the value of `font-family`: font names in order of
// precedence, e.g. "Webly Sleeky UI", "monospace".
type FontFamily struct {
	Fonts []string
}

// NewFontFamily creates a font family from a list of font names.
func NewFontFamily(fonts ...string) FontFamily {
	return FontFamily{Fonts: fonts}
}

// First returns the preferred font. It returns false for an empty family.
func (ff FontFamily) First() (string, bool) {
	if len(ff.Fonts) == 0 {
		return "", false
	}
	return ff.Fonts[0], true
}

func (ff FontFamily) String() string {
	names := make([]string, len(ff.Fonts))
	for i, f := range ff.Fonts {
		if strings.ContainsAny(f, " \t,") {
			names[i] = strconv.Quote(f)
		} else {
			names[i] = f
		}
	}
	return strings.Join(names, ", ")
}
