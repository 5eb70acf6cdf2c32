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
	"fmt"
	"iter"

	"znkr.io/sidebyside/internal/config"
	"znkr.io/sidebyside/source"
	"znkr.io/sidebyside/source/dmp"
)

// Class classifies a row.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Class,Emphasis
type Class int

const (
	Unchanged Class = iota // The line appears on both sides.
	Removed                // The line only appears on the left side.
	Added                  // The line only appears on the right side.
	Empty                  // Placeholder opposite of a removed or added line.
)

// Emphasis marks a part of a line that differs from its counterpart.
type Emphasis int

const (
	EmphasisNone    Emphasis = iota // Text shared by both lines of a pair.
	EmphasisRemoved                 // Text only in the removed line.
	EmphasisAdded                   // Text only in the added line.
)

// Span is a piece of a line with a uniform emphasis.
type Span struct {
	Text     string
	Emphasis Emphasis
}

// Row is one line position in one column of a side-by-side comparison.
//
//   - For Unchanged, Removed, and Added rows, Line is the 1-based line number in the input of this
//     side and Text is the content of the line without its newline character.
//   - For Empty rows, Line is 0 and Text is empty.
//
// Spans is only set for the rows of a matched line pair, that is a removed and an added line that
// are shown next to each other. Concatenating the spans results in Text. Rows without spans are
// rendered as plain Text.
type Row struct {
	Line  int
	Class Class
	Text  string
	Spans []Span
}

// Result is a side-by-side comparison.
//
// Left and Right always have the same length, Left[i] and Right[i] occupy the same visual line.
type Result struct {
	Left, Right []Row
	Additions   int // Number of added lines.
	Removals    int // Number of removed lines.
}

// Len returns the number of rows in each column.
func (r *Result) Len() int { return len(r.Left) }

// Equal reports whether the inputs of the comparison were identical.
func (r *Result) Equal() bool { return r.Additions == 0 && r.Removals == 0 }

// Pairs iterates over the rows that occupy the same visual line.
func (r *Result) Pairs() iter.Seq2[Row, Row] {
	return func(yield func(Row, Row) bool) {
		for i := range r.Left {
			if !yield(r.Left[i], r.Right[i]) {
				return
			}
		}
	}
}

// Compute compares x and y line by line and aligns the result into two columns.
//
// The line diff is computed with the source configured by [LineSource], the character diff that
// highlights changes in matched line pairs with the source configured by [CharSource]. If a
// source doesn't satisfy the contract described in package [source], Compute returns an error
// matching [source.ErrContractViolation].
//
// The following options are supported: [LineSource], [CharSource], [NoCharDiff]
func Compute(x, y string, opts ...Option) (*Result, error) {
	return compute(x, y, opts)
}

// ComputeBytes compares x and y line by line and aligns the result into two columns.
//
// The rows of the result don't share memory with x and y.
//
// The following options are supported: [LineSource], [CharSource], [NoCharDiff]
func ComputeBytes(x, y []byte, opts ...Option) (*Result, error) {
	return compute(string(x), string(y), opts)
}

func compute(x, y string, opts []Option) (*Result, error) {
	cfg := config.FromOptions(opts, config.LineSource|config.CharSource|config.NoCharDiff, dmp.Lines(), dmp.Chars())

	segs := cfg.Lines.DiffLines(x, y)
	if err := source.Check(x, y, segs); err != nil {
		return nil, fmt.Errorf("line diff: %w", err)
	}

	blocks, additions, removals := segment(segs)
	a := aligner{cfg: cfg}
	if err := a.align(blocks); err != nil {
		return nil, err
	}
	return &Result{
		Left:      a.left,
		Right:     a.right,
		Additions: additions,
		Removals:  removals,
	}, nil
}
