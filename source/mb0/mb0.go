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

// Package mb0 provides line and character sources backed by [github.com/mb0/diff].
package mb0

import (
	"strings"

	"github.com/mb0/diff"
	"znkr.io/sidebyside/source"
)

// Lines returns a line source.
func Lines() source.LineDiffer {
	return source.Lines(func(x, y string) []source.Segment {
		return compare(source.SplitLines(x), source.SplitLines(y))
	})
}

// Chars returns a character source that compares runes.
func Chars() source.CharDiffer {
	return source.Chars(func(x, y string) []source.Segment {
		return compare(source.SplitRunes(x), source.SplitRunes(y))
	})
}

// elems implements [diff.Data] for two slices of text.
type elems struct{ x, y []string }

func (d elems) Equal(i, j int) bool { return d.x[i] == d.y[j] }

func compare(x, y []string) []source.Segment {
	return segments(x, y, diff.Diff(len(x), len(y), elems{x, y}))
}

// segments converts changes into segments. Every element of x and y is a piece of text.
func segments(x, y []string, changes []diff.Change) []source.Segment {
	var segs []source.Segment
	join := func(op source.Op, text []string) {
		if len(text) > 0 {
			segs = append(segs, source.Segment{Op: op, Text: strings.Join(text, "")})
		}
	}
	a := 0
	for _, ch := range changes {
		join(source.Match, x[a:ch.A])
		join(source.Delete, x[ch.A:ch.A+ch.Del])
		join(source.Insert, y[ch.B:ch.B+ch.Ins])
		a = ch.A + ch.Del
	}
	join(source.Match, x[a:])
	return source.Normalize(segs)
}
