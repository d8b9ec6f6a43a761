// Package dimen implements quantized numbers, units and layout geometry.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

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
package dimen

import (
	"math"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssval.dimen'.
func tracer() tracing.Trace {
	return tracing.Select("cssval.dimen")
}

// Float is a real number quantized to thousandths.
// Values are in units of 1/1000, i.e. Float(1500) is 1.5.
//
// Two Floats are equal iff their quantized integers are equal, which makes
// them usable as map keys and gives a total order.
type Float int64

// Some pre-defined quantities
const (
	Thousandth Float = 1
	One        Float = 1000
)

// precision is the multiplier between real values and quantized Floats.
const precision = 1000.0

// F quantizes a real value, rounding to the nearest thousandth.
func F(v float32) Float {
	return Float(math.Round(float64(v) * precision))
}

// Whole creates a Float from a whole number without any rounding.
// For compile time constants use n * One.
func Whole(n int) Float {
	return Float(n) * One
}

// Get returns the real value of f.
func (f Float) Get() float32 {
	return float32(float64(f) / precision)
}

// Stringer implementation.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f.Get()), 'f', -1, 32)
}

// Min returns the smaller of two quantities.
func Min(a, b Float) Float {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two quantities.
func Max(a, b Float) Float {
	if a > b {
		return a
	}
	return b
}
