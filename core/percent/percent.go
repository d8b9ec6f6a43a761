// Package percent implements a quantized type for percentage values.
package percent

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/cssval/core"
	"github.com/npillmayer/cssval/core/dimen"
)

// Percent is a percentage value, quantized to thousandths of a percent.
// Percent(50 * dimen.One) is 50%. Values are not restricted to 0…100.
type Percent dimen.Float

// New creates a percentage from a real value, e.g. New(12.5) is 12.5%.
func New(v float32) Percent {
	return Percent(dimen.F(v))
}

// Const creates a percentage from a whole number.
func Const(n int) Percent {
	return Percent(dimen.Whole(n))
}

// FromInt creates a percentage from n, clamped to 0…100.
func FromInt(n int) Percent {
	switch {
	case n <= 0:
		return Const(0)
	case n >= 100:
		return Const(100)
	}
	return Const(n)
}

// FromFloat creates a percentage from f, clamped to 0…100.
func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Const(0)
	case f >= 100 || math.IsInf(f, 1):
		return Const(100)
	}
	return New(float32(f))
}

// FromString parses a percentage literal. The percent sign is optional.
//
//	50%
//	12.5
func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return Const(0), core.WrapError(err, core.EINVALID, "format error parsing percentage %q", s)
	}
	return New(float32(f)), nil
}

// Get returns the real value of p, i.e. 50 for 50%.
func (p Percent) Get() float32 {
	return dimen.Float(p).Get()
}

// Quantized returns the underlying quantized number.
func (p Percent) Quantized() dimen.Float {
	return dimen.Float(p)
}

// Of returns p percent of x.
func (p Percent) Of(x float32) float32 {
	return p.Get() / 100.0 * x
}

func (p Percent) String() string {
	return dimen.Float(p).String() + "%"
}
