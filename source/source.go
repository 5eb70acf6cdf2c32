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

// Package source defines the contract between the side-by-side aligner and the diff algorithms
// it is built on.
//
// A diff source turns two strings into an ordered list of [Segment] values. Line sources
// ([LineDiffer]) report whole lines, including their trailing newline. Character sources
// ([CharDiffer]) report runs of characters. In both cases:
//
//   - concatenating the text of every segment that is not an [Insert] reproduces x,
//   - concatenating the text of every segment that is not a [Delete] reproduces y,
//   - every segment has exactly one of the operations [Match], [Delete], or [Insert].
//
// Implementations backed by third-party libraries live in the sub packages of this package.
package source

import (
	"fmt"
	"strings"
)

// Op is the operation of a [Segment].
//
// Op is a set of flags to make it possible to represent the invalid combination Delete|Insert.
// Sources must never produce it, [Check] reports it as a contract violation.
type Op uint8

const (
	Match  Op = 0      // Text that appears in x and y.
	Delete Op = 1 << 0 // Text that only appears in x.
	Insert Op = 1 << 1 // Text that only appears in y.
)

func (op Op) String() string {
	switch op {
	case Match:
		return "match"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case Delete | Insert:
		return "delete|insert"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Valid reports whether op is one of Match, Delete, or Insert.
func (op Op) Valid() bool {
	return op == Match || op == Delete || op == Insert
}

// Segment is a maximal run of text that shares one operation.
type Segment struct {
	Op   Op
	Text string
}

// LineDiffer computes a line by line diff.
type LineDiffer interface {
	DiffLines(x, y string) []Segment
}

// CharDiffer computes a character by character diff.
type CharDiffer interface {
	DiffChars(x, y string) []Segment
}

// Lines adapts a function to a [LineDiffer].
type Lines func(x, y string) []Segment

// DiffLines calls f(x, y).
func (f Lines) DiffLines(x, y string) []Segment { return f(x, y) }

// Chars adapts a function to a [CharDiffer].
type Chars func(x, y string) []Segment

// DiffChars calls f(x, y).
func (f Chars) DiffChars(x, y string) []Segment { return f(x, y) }

// SplitLines splits s after every '\n'. The last line is missing the newline if s doesn't end in
// one. An empty s has no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Normalize merges adjacent segments with the same operation, drops empty segments and moves all
// deletions in a run of changes in front of the insertions of the same run.
//
// The result describes the same edit as segs. Sources use it to bring the output of a library
// into the shape the aligner expects, the aligner itself never normalizes.
func Normalize(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	var del, ins strings.Builder
	flush := func() {
		if del.Len() > 0 {
			out = append(out, Segment{Delete, del.String()})
			del.Reset()
		}
		if ins.Len() > 0 {
			out = append(out, Segment{Insert, ins.String()})
			ins.Reset()
		}
	}
	for _, seg := range segs {
		if seg.Text == "" {
			continue
		}
		switch seg.Op {
		case Delete:
			del.WriteString(seg.Text)
		case Insert:
			ins.WriteString(seg.Text)
		default:
			flush()
			if n := len(out); n > 0 && out[n-1].Op == seg.Op {
				out[n-1].Text += seg.Text
				continue
			}
			out = append(out, seg)
		}
	}
	flush()
	if len(out) == 0 {
		return nil
	}
	return out
}
