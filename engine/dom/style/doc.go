/*
Package style holds the typed values of style properties.

Every property of a stylesheet has a value type in this package: keyword
enums like Display or BorderStyle, composite values like BoxShadow or
LinearGradient, and one named wrapper type per property for values which are
plain lengths, numbers, percentages or colors (Width, Opacity, LineHeight,
TextColor, …).

Keyword enums are defined such that their zero value is the default of the
respective property. Their String method returns the keyword and every enum
has a Parse function to look up a keyword.

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
package style

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
)

// tracer traces with key 'cssval.style'.
func tracer() tracing.Trace {
	return tracing.Select("cssval.style")
}

// keywords maps enum values to their keywords. Index i holds the keyword for
// the enum value i.
type keywords []string

func (kw keywords) name(i uint8) string {
	if int(i) < len(kw) {
		return kw[i]
	}
	return "?"
}

// foldKeyword normalizes a keyword for lookup.
func foldKeyword(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// parseKeyword finds s in kw. s is trimmed and case-folded first.
func parseKeyword[E ~uint8](kw keywords, s string) (E, bool) {
	key := foldKeyword(s)
	for i, k := range kw {
		if k == key {
			return E(i), true
		}
	}
	tracer().Debugf("unknown keyword %q", s)
	return E(0), false
}
