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


package panel

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/sidebyside"
	"znkr.io/sidebyside/html"
	"znkr.io/sidebyside/source"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newPanel(t *testing.T, opts ...sidebyside.Option) *Panel {
	t.Helper()
	p, err := New(Config{Logger: discard, Options: opts})
	if err != nil {
		t.Fatalf("New(...) failed: %v", err)
	}
	return p
}

func TestHandle(t *testing.T) {
	left, right := "foo bar\nshared\n", "foo baz\nshared\nnew\n"
	r, err := sidebyside.Compute(left, right)
	if err != nil {
		t.Fatalf("Compute(...) failed: %v", err)
	}
	lhtml, rhtml := html.Render(r)

	tests := []struct {
		name string
		req  Request
		want Response
	}{
		{
			name: "compute-diff",
			req:  Request{Command: CommandComputeDiff, LeftText: left, RightText: right},
			want: Response{
				Command:   CommandDisplayDiff,
				LeftHTML:  lhtml,
				RightHTML: rhtml,
				Additions: 2,
				Removals:  1,
			},
		},
		{
			name: "compute-diff-empty",
			req:  Request{Command: CommandComputeDiff},
			want: Response{Command: CommandDisplayDiff},
		},
		{
			name: "clear-all",
			req:  Request{Command: CommandClearAll, LeftText: "ignored"},
			want: Response{Command: CommandCleared},
		},
	}

	p := newPanel(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Handle(tt.req)
			if err != nil {
				t.Fatalf("Handle(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Handle(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestHandleErrors(t *testing.T) {
	broken := sidebyside.LineSource(source.Lines(func(x, y string) []source.Segment {
		return []source.Segment{{Op: source.Delete | source.Insert, Text: x}}
	}))

	tests := []struct {
		name  string
		opts  []sidebyside.Option
		req   Request
		error error
	}{
		{
			name:  "unknown-command",
			req:   Request{Command: "showDiff"},
			error: ErrUnknownCommand,
		},
		{
			name:  "missing-command",
			req:   Request{},
			error: ErrUnknownCommand,
		},
		{
			name:  "contract-violation",
			opts:  []sidebyside.Option{broken},
			req:   Request{Command: CommandComputeDiff, LeftText: "a\n", RightText: "a\n"},
			error: source.ErrContractViolation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPanel(t, tt.opts...)
			got, err := p.Handle(tt.req)
			if !errors.Is(err, tt.error) {
				t.Errorf("Handle(...) = %+v, %v, want error %v", got, err, tt.error)
			}
		})
	}
}

func TestHandleCache(t *testing.T) {
	calls := 0
	counting := sidebyside.LineSource(source.Lines(func(x, y string) []source.Segment {
		calls++
		return []source.Segment{{Op: source.Delete, Text: x}, {Op: source.Insert, Text: y}}
	}))
	p := newPanel(t, counting, sidebyside.NoCharDiff())

	req := Request{Command: CommandComputeDiff, LeftText: "a\n", RightText: "b\n"}
	first, err := p.Handle(req)
	if err != nil {
		t.Fatalf("Handle(...) failed: %v", err)
	}
	second, err := p.Handle(req)
	if err != nil {
		t.Fatalf("Handle(...) failed: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached response is different [-first,+second]:\n%s", diff)
	}
	if calls != 1 {
		t.Errorf("line source called %d times, want 1", calls)
	}

	if _, err := p.Handle(Request{Command: CommandComputeDiff, LeftText: "b\n", RightText: "a\n"}); err != nil {
		t.Fatalf("Handle(...) failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("line source called %d times, want 2", calls)
	}
}

func TestNewInvalidCacheSize(t *testing.T) {
	if _, err := New(Config{CacheSize: -1}); err == nil {
		t.Errorf("New(Config{CacheSize: -1}) succeeded, want error")
	}
}

func TestResponseJSON(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want string
	}{
		{
			name: "display-diff",
			resp: Response{Command: CommandDisplayDiff, LeftHTML: "<l>", RightHTML: "r"},
			want: `{"command":"displayDiff","leftHtml":"\u003cl\u003e","rightHtml":"r","additions":0,"removals":0}`,
		},
		{
			name: "cleared",
			resp: Response{Command: CommandCleared, Additions: 3},
			want: `{"command":"cleared"}`,
		},
		{
			name: "error",
			resp: Response{Command: CommandError, Error: "boom"},
			want: `{"command":"error","error":"boom"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.resp)
			if err != nil {
				t.Fatalf("json.Marshal(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("json.Marshal(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}
