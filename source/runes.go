// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"strings"
	"unicode/utf8"
)

// SplitRunes splits s into its runes. Every byte that is not part of a valid UTF-8 encoding
// becomes an element of its own, so concatenating the elements always reproduces s.
func SplitRunes(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for len(s) > 0 {
		_, n := utf8.DecodeRuneInString(s)
		out = append(out, s[:n])
		s = s[n:]
	}
	return out
}

// Elements maps the elements of two strings, as split by [SplitRunes], to runes.
//
// Libraries that compare characters decode their input as UTF-8 and turn every invalid byte into
// U+FFFD. Comparing the encoded strings instead keeps distinct bytes distinct, [Elements.Decode]
// restores the original text.
type Elements struct {
	elems []string
	index map[string]rune
}

// EncodeRunes encodes x and y as valid UTF-8 strings with one rune per element. Equal elements
// are encoded as the same rune.
func EncodeRunes(x, y string) (ex, ey string, e *Elements) {
	e = &Elements{index: make(map[string]rune)}
	return e.encode(x), e.encode(y), e
}

func (e *Elements) encode(s string) string {
	var b strings.Builder
	for _, elem := range SplitRunes(s) {
		r, ok := e.index[elem]
		if !ok {
			r = indexRune(len(e.elems))
			e.elems = append(e.elems, elem)
			e.index[elem] = r
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Decode returns the original text of a string made of encoded runes.
func (e *Elements) Decode(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(e.elems[runeIndex(r)])
	}
	return b.String()
}

// DecodeSegments decodes the text of all segments in place and returns segs.
func (e *Elements) DecodeSegments(segs []Segment) []Segment {
	for i := range segs {
		segs[i].Text = e.Decode(segs[i].Text)
	}
	return segs
}

const (
	surrogateMin = 0xd800
	surrogateLen = 0xe000 - surrogateMin
)

// indexRune maps i to a rune that survives a round trip through a string, it skips the surrogate
// range.
func indexRune(i int) rune {
	if i >= surrogateMin {
		i += surrogateLen
	}
	return rune(i)
}

func runeIndex(r rune) int {
	i := int(r)
	if i >= surrogateMin {
		i -= surrogateLen
	}
	return i
}
