package dimen

import (
	"regexp"
	"strconv"

	"github.com/npillmayer/cssval/core"
)

// Fixed conversion constants. An em is not font-relative at this layer.
const (
	EmHeight float32 = 16.0
	PtToPx   float32 = 96.0 / 72.0
)

// SizeMetric is the unit of a length.
type SizeMetric uint8

// Units for lengths. PX is the default.
const (
	PX SizeMetric = iota
	PT
	EM
	PERCENT
)

func (m SizeMetric) String() string {
	switch m {
	case PX:
		return "px"
	case PT:
		return "pt"
	case EM:
		return "em"
	case PERCENT:
		return "%"
	}
	return "?"
}

// PixelValue is a length: a quantized number together with its unit.
type PixelValue struct {
	Metric SizeMetric
	Number Float
}

// ZeroPixels is 0px.
func ZeroPixels() PixelValue {
	return ConstPx(0)
}

// FromMetric creates a length from a real value.
func FromMetric(metric SizeMetric, v float32) PixelValue {
	return PixelValue{Metric: metric, Number: F(v)}
}

// ConstFromMetric creates a length from a whole number.
func ConstFromMetric(metric SizeMetric, n int) PixelValue {
	return PixelValue{Metric: metric, Number: Whole(n)}
}

func Px(v float32) PixelValue      { return FromMetric(PX, v) }
func Pt(v float32) PixelValue      { return FromMetric(PT, v) }
func Em(v float32) PixelValue      { return FromMetric(EM, v) }
func Percent(v float32) PixelValue { return FromMetric(PERCENT, v) }

func ConstPx(n int) PixelValue      { return ConstFromMetric(PX, n) }
func ConstPt(n int) PixelValue      { return ConstFromMetric(PT, n) }
func ConstEm(n int) PixelValue      { return ConstFromMetric(EM, n) }
func ConstPercent(n int) PixelValue { return ConstFromMetric(PERCENT, n) }

// ToPixels converts a length to pixels. Percentages are resolved against
// percentRef, which is supplied by the layout engine (e.g., the width of
// the containing block).
func (p PixelValue) ToPixels(percentRef float32) float32 {
	switch p.Metric {
	case PT:
		return p.Number.Get() * PtToPx
	case EM:
		return p.Number.Get() * EmHeight
	case PERCENT:
		return p.Number.Get() / 100.0 * percentRef
	}
	return p.Number.Get()
}

func (p PixelValue) String() string {
	return p.Number.String() + p.Metric.String()
}

// PixelValueNoPercent is a length which may not be a percentage.
type PixelValueNoPercent struct {
	PixelValue
}

// ToPixels converts a length to pixels.
func (p PixelValueNoPercent) ToPixels() float32 {
	return p.PixelValue.ToPixels(0)
}

// PixelSize is a pair of lengths, e.g. for `5px 10px` border radii.
type PixelSize struct {
	Width, Height PixelValue
}

// ZeroSize is 0px × 0px.
func ZeroSize() PixelSize {
	return PixelSize{ConstPx(0), ConstPx(0)}
}

// SideOffsets are quantized offsets for the four sides of a box, e.g.
// resolved border widths.
type SideOffsets struct {
	Top, Right, Bottom, Left Float
}

// ---------------------------------------------------------------------------

var pixelPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(px|pt|em|%)?$`)

// ParsePixelValue parses a single length literal. Valid lengths are
//
//	15px
//	80%
//	-1.5em
//	0
//
// A number without unit is interpreted as pixels.
func ParsePixelValue(s string) (PixelValue, error) {
	d := pixelPattern.FindStringSubmatch(s)
	if d == nil {
		tracer().Debugf("cannot parse length %q", s)
		return ZeroPixels(), core.Error(core.EINVALID, "format error parsing length %q", s)
	}
	n, err := strconv.ParseFloat(d[1], 32)
	if err != nil {
		return ZeroPixels(), core.WrapError(err, core.EINVALID, "format error parsing length %q", s)
	}
	metric := PX
	switch d[2] {
	case "pt":
		metric = PT
	case "em":
		metric = EM
	case "%":
		metric = PERCENT
	}
	return FromMetric(metric, float32(n)), nil
}
