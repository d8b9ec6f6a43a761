package dimen

import (
	"math"
	"regexp"
	"strconv"

	"github.com/npillmayer/cssval/core"
)

// AngleMetric is the unit of an angle.
type AngleMetric uint8

// Units for angles. DEG is the default. ANGLEPERCENT is a percentage of a
// full circle.
const (
	DEG AngleMetric = iota
	RAD
	GRAD
	TURN
	ANGLEPERCENT
)

func (m AngleMetric) String() string {
	switch m {
	case DEG:
		return "deg"
	case RAD:
		return "rad"
	case GRAD:
		return "grad"
	case TURN:
		return "turn"
	case ANGLEPERCENT:
		return "%"
	}
	return "?"
}

// AngleValue is an angle: a quantized number together with its unit.
type AngleValue struct {
	Metric AngleMetric
	Number Float
}

// ZeroAngle is 0deg.
func ZeroAngle() AngleValue {
	return ConstDeg(0)
}

// AngleFromMetric creates an angle from a real value.
func AngleFromMetric(metric AngleMetric, v float32) AngleValue {
	return AngleValue{Metric: metric, Number: F(v)}
}

// ConstAngleFromMetric creates an angle from a whole number.
func ConstAngleFromMetric(metric AngleMetric, n int) AngleValue {
	return AngleValue{Metric: metric, Number: Whole(n)}
}

func Deg(v float32) AngleValue          { return AngleFromMetric(DEG, v) }
func Rad(v float32) AngleValue          { return AngleFromMetric(RAD, v) }
func Grad(v float32) AngleValue         { return AngleFromMetric(GRAD, v) }
func Turn(v float32) AngleValue         { return AngleFromMetric(TURN, v) }
func AnglePercent(v float32) AngleValue { return AngleFromMetric(ANGLEPERCENT, v) }

func ConstDeg(n int) AngleValue          { return ConstAngleFromMetric(DEG, n) }
func ConstRad(n int) AngleValue          { return ConstAngleFromMetric(RAD, n) }
func ConstGrad(n int) AngleValue         { return ConstAngleFromMetric(GRAD, n) }
func ConstTurn(n int) AngleValue         { return ConstAngleFromMetric(TURN, n) }
func ConstAnglePercent(n int) AngleValue { return ConstAngleFromMetric(ANGLEPERCENT, n) }

// ToDegrees converts an angle to degrees.
func (a AngleValue) ToDegrees() float32 {
	v := a.Number.Get()
	switch a.Metric {
	case RAD:
		return v / (2.0 * math.Pi) * 360.0
	case GRAD:
		return v / 400.0 * 360.0
	case TURN:
		return v * 360.0
	case ANGLEPERCENT:
		return v / 100.0 * 360.0
	}
	return v
}

func (a AngleValue) String() string {
	return a.Number.String() + a.Metric.String()
}

var anglePattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(deg|rad|grad|turn|%)?$`)

// ParseAngle parses a single angle literal, e.g. `45deg` or `0.25turn`.
// A number without unit is interpreted as degrees.
func ParseAngle(s string) (AngleValue, error) {
	d := anglePattern.FindStringSubmatch(s)
	if d == nil {
		tracer().Debugf("cannot parse angle %q", s)
		return ZeroAngle(), core.Error(core.EINVALID, "format error parsing angle %q", s)
	}
	n, err := strconv.ParseFloat(d[1], 32)
	if err != nil {
		return ZeroAngle(), core.WrapError(err, core.EINVALID, "format error parsing angle %q", s)
	}
	metric := DEG
	switch d[2] {
	case "rad":
		metric = RAD
	case "grad":
		metric = GRAD
	case "turn":
		metric = TURN
	case "%":
		metric = ANGLEPERCENT
	}
	return AngleFromMetric(metric, float32(n)), nil
}
