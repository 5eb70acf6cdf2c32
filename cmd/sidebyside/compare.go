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


package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rogpeppe/go-internal/diff"
	"golang.org/x/term"
	"znkr.io/sidebyside"
	"znkr.io/sidebyside/html"
	"znkr.io/sidebyside/source/dmp"
	"znkr.io/sidebyside/source/godebug"
	"znkr.io/sidebyside/source/mb0"
	"znkr.io/sidebyside/source/udiff"
	"znkr.io/sidebyside/termview"
)

// runCompare compares the files oldName and newName and writes the result to stdout.
func (a *app) runCompare(oldName, newName string) error {
	if oldName == "-" && newName == "-" {
		return errors.New("only one input can be read from stdin")
	}
	old, err := a.readInput(oldName)
	if err != nil {
		return err
	}
	cur, err := a.readInput(newName)
	if err != nil {
		return err
	}
	equal, err := a.write(a.stdout, a.cfg.Format, oldName, old, newName, cur)
	if err != nil {
		return err
	}
	if !equal {
		return errDiffer
	}
	return nil
}

func (a *app) readInput(name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

// compareOptions returns the options for [sidebyside.Compute] selected by the settings.
func (a *app) compareOptions() ([]sidebyside.Option, error) {
	var opts []sidebyside.Option
	switch a.cfg.Source {
	case "", "dmp":
		opts = append(opts, sidebyside.LineSource(dmp.Lines()))
	case "godebug":
		opts = append(opts, sidebyside.LineSource(godebug.Lines()))
	case "mb0":
		opts = append(opts, sidebyside.LineSource(mb0.Lines()))
	default:
		return nil, fmt.Errorf("unknown line diff algorithm %q", a.cfg.Source)
	}
	switch a.cfg.Chars {
	case "", "dmp":
		opts = append(opts, sidebyside.CharSource(dmp.Chars()))
	case "mb0":
		opts = append(opts, sidebyside.CharSource(mb0.Chars()))
	case "udiff":
		opts = append(opts, sidebyside.CharSource(udiff.Chars()))
	case "none":
		opts = append(opts, sidebyside.NoCharDiff())
	default:
		return nil, fmt.Errorf("unknown character diff algorithm %q", a.cfg.Chars)
	}
	return opts, nil
}

// write compares old and cur and writes the result to w in the given format. It reports whether
// the inputs are equal.
func (a *app) write(w io.Writer, format, oldName string, old []byte, newName string, cur []byte) (equal bool, err error) {
	opts, err := a.compareOptions()
	if err != nil {
		return false, err
	}
	r, err := sidebyside.ComputeBytes(old, cur, opts...)
	if err != nil {
		return false, fmt.Errorf("comparing %s and %s: %w", oldName, newName, err)
	}
	a.log.Debug("compared inputs", "old", oldName, "new", newName, "rows", r.Len(), "additions", r.Additions, "removals", r.Removals)

	var renderOpts []sidebyside.Option
	if a.cfg.Context >= 0 {
		renderOpts = append(renderOpts, sidebyside.Context(a.cfg.Context))
	}

	switch format {
	case "", "term":
		topts, err := a.termOptions(w, r)
		if err != nil {
			return false, err
		}
		err = termview.Write(w, r, append(renderOpts, topts...)...)
		if err != nil {
			return false, fmt.Errorf("writing output: %w", err)
		}
	case "html":
		doc := html.Document(oldName+" vs "+newName, r, renderOpts...)
		if _, err := io.WriteString(w, doc); err != nil {
			return false, fmt.Errorf("writing output: %w", err)
		}
	case "unified":
		if _, err := w.Write(diff.Diff(oldName, old, newName, cur)); err != nil {
			return false, fmt.Errorf("writing output: %w", err)
		}
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toJSON(r)); err != nil {
			return false, fmt.Errorf("writing output: %w", err)
		}
	default:
		return false, fmt.Errorf("unknown output format %q", format)
	}
	return r.Equal(), nil
}

// termOptions returns the width and color options for terminal output to w.
func (a *app) termOptions(w io.Writer, r *sidebyside.Result) ([]sidebyside.Option, error) {
	var opts []sidebyside.Option
	fd, tty := terminal(w)
	switch {
	case a.cfg.Width > 0:
		opts = append(opts, sidebyside.Width(a.cfg.Width))
	case tty:
		cols, _, err := term.GetSize(fd)
		if err != nil {
			a.log.Debug("can't determine terminal size", "err", err)
			break
		}
		lines := 0
		for lrow, rrow := range r.Pairs() {
			lines = max(lines, lrow.Line, rrow.Line)
		}
		gutter := len(strconv.Itoa(lines)) + 1
		opts = append(opts, sidebyside.Width(max(10, (cols-3)/2-gutter)))
	}

	switch a.cfg.Color {
	case "always":
		opts = append(opts, termview.Colors())
	case "", "auto":
		if tty && os.Getenv("NO_COLOR") == "" {
			opts = append(opts, termview.Colors())
		}
	case "never":
	default:
		return nil, fmt.Errorf("invalid color mode %q", a.cfg.Color)
	}
	return opts, nil
}

// terminal returns the file descriptor of w and whether it's a terminal.
func terminal(w io.Writer) (int, bool) {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

type jsonResult struct {
	Additions int       `json:"additions"`
	Removals  int       `json:"removals"`
	Rows      []jsonRow `json:"rows"`
}

type jsonRow struct {
	Left  jsonCell `json:"left"`
	Right jsonCell `json:"right"`
}

type jsonCell struct {
	Line  int        `json:"line,omitempty"`
	Class string     `json:"class"`
	Text  string     `json:"text,omitempty"`
	Spans []jsonSpan `json:"spans,omitempty"`
}

type jsonSpan struct {
	Text     string `json:"text"`
	Emphasis string `json:"emphasis,omitempty"`
}

func toJSON(r *sidebyside.Result) jsonResult {
	out := jsonResult{
		Additions: r.Additions,
		Removals:  r.Removals,
		Rows:      make([]jsonRow, 0, r.Len()),
	}
	cell := func(row sidebyside.Row) jsonCell {
		c := jsonCell{Line: row.Line, Class: row.Class.String(), Text: row.Text}
		for _, s := range row.Spans {
			js := jsonSpan{Text: s.Text}
			switch s.Emphasis {
			case sidebyside.EmphasisRemoved:
				js.Emphasis = "removed"
			case sidebyside.EmphasisAdded:
				js.Emphasis = "added"
			}
			c.Spans = append(c.Spans, js)
		}
		return c
	}
	for lrow, rrow := range r.Pairs() {
		out.Rows = append(out.Rows, jsonRow{cell(lrow), cell(rrow)})
	}
	return out
}
