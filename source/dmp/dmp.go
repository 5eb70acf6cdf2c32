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

// Package dmp provides diff sources backed by [diffmatchpatch].
//
// These are the default sources used by [znkr.io/sidebyside.Compute].
//
// [diffmatchpatch]: https://pkg.go.dev/github.com/sergi/go-diff/diffmatchpatch
// [znkr.io/sidebyside.Compute]: https://pkg.go.dev/znkr.io/sidebyside#Compute
package dmp

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/sidebyside/source"
)

// Lines returns a line source. Lines are compared including their newline character.
func Lines() source.LineDiffer {
	return source.Lines(diffLines)
}

// Chars returns a character source that compares runes. Bytes that are not valid UTF-8 are
// compared one by one.
func Chars() source.CharDiffer {
	return source.Chars(diffChars)
}

func newDMP() *diffmatchpatch.DiffMatchPatch {
	dmp := diffmatchpatch.New()
	// The diff must not depend on how fast the machine is.
	dmp.DiffTimeout = 0
	return dmp
}

func diffLines(x, y string) []source.Segment {
	if x == y {
		return matchAll(x)
	}
	dmp := newDMP()
	rx, ry, lines := dmp.DiffLinesToRunes(x, y)
	diffs := dmp.DiffMainRunes(rx, ry, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	return source.Normalize(convert(diffs))
}

func diffChars(x, y string) []source.Segment {
	if x == y {
		return matchAll(x)
	}
	dmp := newDMP()
	if utf8.ValidString(x) && utf8.ValidString(y) {
		return source.Normalize(convert(dmp.DiffMain(x, y, false)))
	}
	// DiffMain would replace invalid bytes with U+FFFD.
	ex, ey, elems := source.EncodeRunes(x, y)
	diffs := dmp.DiffMain(ex, ey, false)
	return source.Normalize(elems.DecodeSegments(convert(diffs)))
}

func matchAll(s string) []source.Segment {
	if s == "" {
		return nil
	}
	return []source.Segment{{Op: source.Match, Text: s}}
}

func convert(diffs []diffmatchpatch.Diff) []source.Segment {
	segs := make([]source.Segment, 0, len(diffs))
	for _, d := range diffs {
		var op source.Op
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op = source.Match
		case diffmatchpatch.DiffDelete:
			op = source.Delete
		case diffmatchpatch.DiffInsert:
			op = source.Insert
		default:
			// Let the caller's contract check reject the result.
			op = source.Delete | source.Insert
		}
		segs = append(segs, source.Segment{Op: op, Text: d.Text})
	}
	return segs
}
