/*
Package color implements the colors of the value model.

U is a color with 8-bit channels, as found in style declarations. F is the
same color with float channels in 0…1, as needed by renderers.

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
package color

import (
	"fmt"
	imgcolor "image/color"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/cssval/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// tracer traces with key 'cssval.color'.
func tracer() tracing.Trace {
	return tracing.Select("cssval.color")
}

// Alpha values
const (
	AlphaTransparent uint8 = 0
	AlphaOpaque      uint8 = 255
)

// U is a color with 8-bit channels and straight (non-premultiplied) alpha.
// The zero value is transparent black.
type U struct {
	R, G, B, A uint8
}

// Pre-defined colors
var (
	Red         = U{255, 0, 0, AlphaOpaque}
	Green       = U{0, 255, 0, AlphaOpaque}
	Blue        = U{0, 0, 255, AlphaOpaque}
	White       = U{255, 255, 255, AlphaOpaque}
	Black       = U{0, 0, 0, AlphaOpaque}
	Transparent = U{0, 0, 0, AlphaTransparent}
)

// Default is the default color of a style, opaque black.
func Default() U {
	return Black
}

// HasAlpha is true if c is not fully opaque.
func (c U) HasAlpha() bool {
	return c.A != AlphaOpaque
}

// ToF converts c to float channels.
func (c U) ToF() F {
	return F{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// Hash returns c as a hex string. Channels are not zero-padded, i.e. white
// is "#ffffffff", but opaque black is "#000ff".
func (c U) Hash() string {
	var b strings.Builder
	c.WriteHash(&b)
	return b.String()
}

// WriteHash writes the hex form of c (see Hash) to w.
func (c U) WriteHash(w io.Writer) (int, error) {
	return fmt.Fprintf(w, "#%x%x%x%x", c.R, c.G, c.B, c.A)
}

func (c U) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, ftoa(float32(c.A)/255.0))
}

// RGBA makes U an image/color.Color.
func (c U) RGBA() (r, g, b, a uint32) {
	return imgcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts any image color to U.
func FromColor(c imgcolor.Color) U {
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return U{n.R, n.G, n.B, n.A}
}

// Named looks up a color by its SVG/CSS color keyword, e.g. "teal" or
// "RebeccaPurple". "transparent" is recognized, too.
func Named(name string) (U, bool) {
	key := cases.Fold().String(strings.TrimSpace(name))
	if key == "transparent" {
		return Transparent, true
	}
	if rgba, ok := colornames.Map[key]; ok {
		return U{rgba.R, rgba.G, rgba.B, rgba.A}, true
	}
	tracer().Debugf("unknown color name %q", name)
	return Transparent, false
}

// ParseHex parses a hex color of the forms #rgb, #rgba, #rrggbb or #rrggbbaa.
func ParseHex(s string) (U, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	var digits []uint8
	for _, r := range h {
		d, ok := hexDigit(r)
		if !ok {
			return Transparent, core.Error(core.EINVALID, "illegal hex color %q", s)
		}
		digits = append(digits, d)
	}
	c := U{A: AlphaOpaque}
	switch len(digits) {
	case 3, 4:
		c.R, c.G, c.B = digits[0]*17, digits[1]*17, digits[2]*17
		if len(digits) == 4 {
			c.A = digits[3] * 17
		}
	case 6, 8:
		c.R = digits[0]<<4 | digits[1]
		c.G = digits[2]<<4 | digits[3]
		c.B = digits[4]<<4 | digits[5]
		if len(digits) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
	default:
		return Transparent, core.Error(core.EINVALID, "illegal hex color %q", s)
	}
	return c, nil
}

func hexDigit(r rune) (uint8, bool) {
	switch {
	case '0' <= r && r <= '9':
		return uint8(r - '0'), true
	case 'a' <= r && r <= 'f':
		return uint8(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return uint8(r-'A') + 10, true
	}
	return 0, false
}

// --- Float colors ----------------------------------------------------------

// F is a color with float channels, nominally in 0…1.
type F struct {
	R, G, B, A float32
}

// Pre-defined float colors
var (
	WhiteF       = F{1, 1, 1, 1}
	BlackF       = F{0, 0, 0, 1}
	TransparentF = F{0, 0, 0, 0}
)

// ToU converts c to 8-bit channels. Channels are clamped to 0…1 and
// truncated after scaling.
func (c F) ToU() U {
	return U{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(v float32) uint8 {
	if v > 1 {
		tracer().Debugf("color channel %g clamped to 1", v)
		v = 1
	} else if v < 0 || v != v {
		v = 0
	}
	return uint8(v * 255.0)
}

func (c F) String() string {
	return fmt.Sprintf("rgba(%s, %s, %s, %s)", ftoa(c.R*255.0), ftoa(c.G*255.0),
		ftoa(c.B*255.0), ftoa(c.A))
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
