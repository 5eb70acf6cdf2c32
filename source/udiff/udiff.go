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

// Package udiff provides a character source backed by [github.com/aymanbagabas/go-udiff].
package udiff

import (
	"sort"
	"unicode/utf8"

	"github.com/aymanbagabas/go-udiff"
	"znkr.io/sidebyside/source"
)

// Chars returns a character source.
func Chars() source.CharDiffer {
	return source.Chars(diffChars)
}

func diffChars(x, y string) []source.Segment {
	if utf8.ValidString(x) && utf8.ValidString(y) {
		return source.Normalize(segments(x, udiff.Strings(x, y)))
	}
	// The edits of invalid input refer to the text with U+FFFD in place of invalid bytes.
	ex, ey, elems := source.EncodeRunes(x, y)
	segs := segments(ex, udiff.Strings(ex, ey))
	return source.Normalize(elems.DecodeSegments(segs))
}

// segments converts edits of x into segments.
func segments(x string, edits []udiff.Edit) []source.Segment {
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].Start < edits[j].Start })

	// Edits replace the byte range x[Start:End] with New, everything between edits matches.
	segs := make([]source.Segment, 0, 3*len(edits)+1)
	pos := 0
	for _, e := range edits {
		segs = append(segs,
			source.Segment{Op: source.Match, Text: x[pos:e.Start]},
			source.Segment{Op: source.Delete, Text: x[e.Start:e.End]},
			source.Segment{Op: source.Insert, Text: e.New},
		)
		pos = e.End
	}
	segs = append(segs, source.Segment{Op: source.Match, Text: x[pos:]})
	return segs
}
