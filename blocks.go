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

package sidebyside

import (
	"strings"

	"znkr.io/sidebyside/source"
)

// block is a run of lines that share one operation.
type block struct {
	op    source.Op
	lines []string
}

// segment splits every segment into lines and counts the added and removed lines.
//
// Segments carry the newline of their last line, splitting on '\n' leaves an empty element after
// it that is not a line and is dropped. Empty lines within a segment are kept.
func segment(segs []source.Segment) (blocks []block, additions, removals int) {
	blocks = make([]block, 0, len(segs))
	for _, seg := range segs {
		var lines []string
		if seg.Text != "" {
			lines = strings.Split(seg.Text, "\n")
			if lines[len(lines)-1] == "" {
				lines = lines[:len(lines)-1]
			}
		}
		switch seg.Op {
		case source.Insert:
			additions += len(lines)
		case source.Delete:
			removals += len(lines)
		}
		blocks = append(blocks, block{op: seg.Op, lines: lines})
	}
	return blocks, additions, removals
}
