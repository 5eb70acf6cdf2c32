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

// Package godebug provides a line source backed by [github.com/kylelemons/godebug/diff].
//
// The library keeps a copy of its search state for every edit step, memory use grows with the
// number of lines times the number of changed lines. Large inputs with many changes can exhaust
// memory, use [znkr.io/sidebyside/source/dmp] for those.
package godebug

import (
	"strings"

	"github.com/kylelemons/godebug/diff"
	"znkr.io/sidebyside/source"
)

// Lines returns a line source.
func Lines() source.LineDiffer {
	return source.Lines(diffLines)
}

func diffLines(x, y string) []source.Segment {
	chunks := diff.DiffChunks(source.SplitLines(x), source.SplitLines(y))
	segs := make([]source.Segment, 0, 3*len(chunks))
	for _, c := range chunks {
		// A chunk lists its deleted and added lines before the lines that are equal.
		segs = append(segs,
			source.Segment{Op: source.Delete, Text: strings.Join(c.Deleted, "")},
			source.Segment{Op: source.Insert, Text: strings.Join(c.Added, "")},
			source.Segment{Op: source.Match, Text: strings.Join(c.Equal, "")},
		)
	}
	return source.Normalize(segs)
}
