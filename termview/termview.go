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


// Package termview renders side-by-side comparisons for terminals.
//
// Every row of a [sidebyside.Result] becomes one output line with two columns of fixed width:
//
//	1 foo bar    | 1 foo baz
//	2 shared       2 shared
//	             > 3 new
//	3 old        <
//
// The marker between the columns follows sdiff(1): "|" for a replaced line, "<" for a removed
// line, ">" for an added line, and a blank for an unchanged line. Lines that don't fit into a
// column are truncated with "…".
package termview

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"znkr.io/sidebyside"
	"znkr.io/sidebyside/internal/config"
	"znkr.io/sidebyside/termview/color"
)

// DefaultWidth is the column width used when no [sidebyside.Width] option is provided.
const DefaultWidth = 60

const (
	tabWidth = 4
	ellipsis = "…"
	reset    = "\033[0m"
)

// Colors enables ANSI colors. Without options, a default color scheme is used; options replace
// individual colors of the default scheme.
func Colors(opts ...color.Option) sidebyside.Option {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		cfg.Colors = &cc
		return config.Colors
	}
}

// Write writes r in two columns to w.
//
// The following options are supported: [sidebyside.Context], [sidebyside.Width], [Colors]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Write(w io.Writer, r *sidebyside.Result, opts ...sidebyside.Option) error {
	cfg := config.FromOptions(opts, config.Context|config.Width|config.Colors, nil, nil)
	bw := bufio.NewWriter(w)
	p := newPrinter(bw, r, cfg)
	if cfg.Context < 0 {
		for i := range r.Len() {
			p.row(r.Left[i], r.Right[i])
		}
		return bw.Flush()
	}

	pos := 0
	lnx, lny := 0, 0 // number of lines before pos
	for h := range r.Hunks(cfg.Context) {
		for ; pos < h.Start; pos++ {
			lnx, lny = advance(lnx, lny, r.Left[pos], r.Right[pos])
		}
		nx, ny := lnx, lny
		for i := h.Start; i < h.End; i++ {
			nx, ny = advance(nx, ny, r.Left[i], r.Right[i])
		}
		p.colored(fmt.Sprintf("@@ -%d,%d +%d,%d @@", hunkStart(lnx, nx-lnx), nx-lnx, hunkStart(lny, ny-lny), ny-lny), p.colors.Fold)
		p.w.WriteByte('\n')
		for ; pos < h.End; pos++ {
			p.row(r.Left[pos], r.Right[pos])
		}
		lnx, lny = nx, ny
	}
	return bw.Flush()
}

// String returns the output of [Write] as a string.
func String(r *sidebyside.Result, opts ...sidebyside.Option) string {
	var sb strings.Builder
	Write(&sb, r, opts...) // strings.Builder never fails
	return sb.String()
}

func advance(lnx, lny int, l, r sidebyside.Row) (int, int) {
	if l.Class != sidebyside.Empty {
		lnx++
	}
	if r.Class != sidebyside.Empty {
		lny++
	}
	return lnx, lny
}

// hunkStart returns the start line of a hunk in unified diff notation: An empty hunk starts at the
// line before it.
func hunkStart(before, n int) int {
	if n == 0 {
		return before
	}
	return before + 1
}

type printer struct {
	w      *bufio.Writer
	width  int
	digits int
	colors config.ColorConfig
}

func newPrinter(w *bufio.Writer, r *sidebyside.Result, cfg config.Config) *printer {
	p := &printer{w: w, width: DefaultWidth}
	if cfg.Width > 0 {
		p.width = cfg.Width
	}
	if cfg.Colors != nil {
		p.colors = *cfg.Colors
	}
	lines := 0
	for lrow, rrow := range r.Pairs() {
		lines = max(lines, lrow.Line, rrow.Line)
	}
	p.digits = len(strconv.Itoa(lines))
	return p
}

func (p *printer) row(l, r sidebyside.Row) {
	p.lineNumber(l)
	p.cell(l, true)
	switch {
	case l.Class == sidebyside.Removed && r.Class == sidebyside.Added:
		p.w.WriteString(" | ")
	case l.Class == sidebyside.Removed:
		p.w.WriteString(" <\n")
		return
	case r.Class == sidebyside.Added:
		p.w.WriteString(" > ")
	default:
		p.w.WriteString("   ")
	}
	p.lineNumber(r)
	p.cell(r, false)
	p.w.WriteByte('\n')
}

func (p *printer) lineNumber(row sidebyside.Row) {
	if row.Class == sidebyside.Empty {
		p.w.WriteString(strings.Repeat(" ", p.digits+1))
		return
	}
	p.colored(fmt.Sprintf("%*d", p.digits, row.Line), p.colors.LineNumber)
	p.w.WriteByte(' ')
}

type piece struct {
	text  string
	color string
}

// cell writes the text of row truncated to the column width. If pad is set, the cell is padded
// with spaces to the column width.
func (p *printer) cell(row sidebyside.Row, pad bool) {
	var pieces []piece
	col := 0
	add := func(text, color string) {
		text, col = expand(text, col)
		pieces = append(pieces, piece{text, color})
	}
	base := p.colors.Unchanged
	emphasis := ""
	switch row.Class {
	case sidebyside.Removed:
		base, emphasis = p.colors.Removed, p.colors.RemovedEmphasis
	case sidebyside.Added:
		base, emphasis = p.colors.Added, p.colors.AddedEmphasis
	}
	if row.Spans == nil {
		add(row.Text, base)
	}
	for _, s := range row.Spans {
		if s.Emphasis == sidebyside.EmphasisNone {
			add(s.Text, base)
		} else {
			add(s.Text, emphasis)
		}
	}

	limit := p.width
	if col > p.width {
		limit = p.width - runewidth.StringWidth(ellipsis)
	}
	used := 0
	for _, pc := range pieces {
		n := 0 // number of bytes of pc.text that fit
		for n < len(pc.text) {
			r, size := utf8.DecodeRuneInString(pc.text[n:])
			w := runewidth.RuneWidth(r)
			if used+w > limit {
				break
			}
			used += w
			n += size
		}
		p.colored(pc.text[:n], pc.color)
		if n < len(pc.text) {
			break
		}
	}
	if col > p.width {
		p.w.WriteString(ellipsis)
		used += runewidth.StringWidth(ellipsis)
	}
	if pad && used < p.width {
		p.w.WriteString(strings.Repeat(" ", p.width-used))
	}
}

func (p *printer) colored(s, color string) {
	if s == "" {
		return
	}
	if color == "" {
		p.w.WriteString(s)
		return
	}
	p.w.WriteString(color)
	p.w.WriteString(s)
	p.w.WriteString(reset)
}

// expand replaces tabs with spaces up to the next tab stop and control characters with their
// visible symbols. It returns the expanded text and the terminal column after it.
func expand(s string, col int) (string, int) {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r == '\t':
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		case r < 0x20:
			r += 0x2400 // Control Pictures block
		case r == 0x7f:
			r = 0x2421
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String(), col
}
