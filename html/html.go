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


// Package html renders side-by-side comparisons as HTML.
//
// [Render] turns a [sidebyside.Result] into two HTML fragments, one per column, that are meant to
// be placed in two panes next to each other. Every row becomes one element:
//
//	<div class="line removed-line"><span class="line-number">3</span><span class="line-content">foo ba<span class="char-removed">r</span></span></div>
//
// The classes of a row are "line" for unchanged rows, "line removed-line", "line added-line", and
// "line empty-line". Changed characters are wrapped in spans with the classes "char-removed" and
// "char-added". [Page] returns a complete page with styles for all of these classes.
package html

import (
	"fmt"
	"strconv"
	"strings"

	"znkr.io/sidebyside"
	"znkr.io/sidebyside/internal/config"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape escapes the characters &, <, >, ", and ' in s.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Render returns the HTML for the left and the right column of r.
//
// The following options are supported: [sidebyside.Context]
//
// With [sidebyside.Context], unchanged rows that are not within the context of a change are
// replaced by a single row with the class "line fold-line" in both columns.
func Render(r *sidebyside.Result, opts ...sidebyside.Option) (left, right string) {
	cfg := config.FromOptions(opts, config.Context, nil, nil)

	var lb, rb strings.Builder
	if cfg.Context < 0 {
		for i := range r.Len() {
			writeRow(&lb, r.Left[i])
			writeRow(&rb, r.Right[i])
		}
		return lb.String(), rb.String()
	}

	pos := 0
	for h := range r.Hunks(cfg.Context) {
		if h.Start > pos {
			writeFold(&lb, h.Start-pos)
			writeFold(&rb, h.Start-pos)
		}
		for i := h.Start; i < h.End; i++ {
			writeRow(&lb, r.Left[i])
			writeRow(&rb, r.Right[i])
		}
		pos = h.End
	}
	if n := r.Len(); n > pos {
		writeFold(&lb, n-pos)
		writeFold(&rb, n-pos)
	}
	return lb.String(), rb.String()
}

func writeRow(sb *strings.Builder, row sidebyside.Row) {
	var class string
	switch row.Class {
	case sidebyside.Unchanged:
		class = "line"
	case sidebyside.Removed:
		class = "line removed-line"
	case sidebyside.Added:
		class = "line added-line"
	case sidebyside.Empty:
		sb.WriteString(`<div class="line empty-line"><span class="line-number"></span><span class="line-content"></span></div>`)
		return
	default:
		panic(fmt.Sprintf("unknown row class %v", row.Class))
	}

	sb.WriteString(`<div class="`)
	sb.WriteString(class)
	sb.WriteString(`"><span class="line-number">`)
	sb.WriteString(strconv.Itoa(row.Line))
	sb.WriteString(`</span><span class="line-content">`)
	if row.Spans == nil {
		escaper.WriteString(sb, row.Text)
	}
	for _, s := range row.Spans {
		switch s.Emphasis {
		case sidebyside.EmphasisRemoved:
			sb.WriteString(`<span class="char-removed">`)
			escaper.WriteString(sb, s.Text)
			sb.WriteString(`</span>`)
		case sidebyside.EmphasisAdded:
			sb.WriteString(`<span class="char-added">`)
			escaper.WriteString(sb, s.Text)
			sb.WriteString(`</span>`)
		default:
			escaper.WriteString(sb, s.Text)
		}
	}
	sb.WriteString(`</span></div>`)
}

func writeFold(sb *strings.Builder, n int) {
	fmt.Fprintf(sb, `<div class="line fold-line"><span class="line-number"></span><span class="line-content">%d unchanged line(s)</span></div>`, n)
}
