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
	"znkr.io/sidebyside/internal/config"
	"znkr.io/sidebyside/source"
)

// aligner turns blocks into two columns of rows.
//
// Both columns grow in lockstep: every call to emit appends one row to each column.
type aligner struct {
	cfg         config.Config
	left, right []Row
	lnx, lny    int // last line number used in x (left) and y (right)
}

var emptyRow = Row{Class: Empty}

func (a *aligner) align(blocks []block) error {
	n := 0
	for _, b := range blocks {
		n += len(b.lines)
	}
	a.left = make([]Row, 0, n)
	a.right = make([]Row, 0, n)

	for i := 0; i < len(blocks); {
		b := blocks[i]
		switch {
		case b.op == source.Delete && i+1 < len(blocks) && blocks[i+1].op == source.Insert:
			// A deletion directly followed by an insertion is shown as a replacement. The
			// opposite order is not.
			if err := a.pair(b.lines, blocks[i+1].lines); err != nil {
				return err
			}
			i += 2
			continue
		case b.op == source.Delete:
			for _, line := range b.lines {
				a.emit(a.removed(line), emptyRow)
			}
		case b.op == source.Insert:
			for _, line := range b.lines {
				a.emit(emptyRow, a.added(line))
			}
		default:
			for _, line := range b.lines {
				a.lnx++
				a.lny++
				a.emit(
					Row{Line: a.lnx, Class: Unchanged, Text: line},
					Row{Line: a.lny, Class: Unchanged, Text: line},
				)
			}
		}
		i++
	}
	return nil
}

// pair aligns removed and added lines next to each other, the shorter side is padded with empty
// rows.
func (a *aligner) pair(removed, added []string) error {
	for j := range max(len(removed), len(added)) {
		l, r := emptyRow, emptyRow
		if j < len(removed) {
			l = a.removed(removed[j])
		}
		if j < len(added) {
			r = a.added(added[j])
		}
		if l.Class == Removed && r.Class == Added && !a.cfg.NoCharDiff {
			var err error
			l.Spans, r.Spans, err = emphasize(a.cfg.Chars, l.Text, r.Text)
			if err != nil {
				return err
			}
		}
		a.emit(l, r)
	}
	return nil
}

func (a *aligner) removed(line string) Row {
	a.lnx++
	return Row{Line: a.lnx, Class: Removed, Text: line}
}

func (a *aligner) added(line string) Row {
	a.lny++
	return Row{Line: a.lny, Class: Added, Text: line}
}

func (a *aligner) emit(l, r Row) {
	a.left = append(a.left, l)
	a.right = append(a.right, r)
}
