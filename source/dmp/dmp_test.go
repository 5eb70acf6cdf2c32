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

package dmp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/sidebyside/source"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want []source.Segment
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name: "identical",
			x:    "a\nb\n",
			y:    "a\nb\n",
			want: []source.Segment{{source.Match, "a\nb\n"}},
		},
		{
			name: "insertion",
			x:    "a\nb",
			y:    "a\nx\nb",
			want: []source.Segment{
				{source.Match, "a\n"},
				{source.Insert, "x\n"},
				{source.Match, "b"},
			},
		},
		{
			name: "deletion",
			x:    "a\nx\nb",
			y:    "a\nb",
			want: []source.Segment{
				{source.Match, "a\n"},
				{source.Delete, "x\n"},
				{source.Match, "b"},
			},
		},
		{
			name: "replacement",
			x:    "a\nb\nc",
			y:    "x\ny",
			want: []source.Segment{
				{source.Delete, "a\nb\nc"},
				{source.Insert, "x\ny"},
			},
		},
		{
			name: "missing-newline",
			x:    "a\n",
			y:    "a",
			want: []source.Segment{
				{source.Delete, "a\n"},
				{source.Insert, "a"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines().DiffLines(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DiffLines(...) result is different [-want,+got]:\n%s", diff)
			}
			if err := source.Check(tt.x, tt.y, got); err != nil {
				t.Errorf("DiffLines(...) violates contract: %v", err)
			}
		})
	}
}

func TestChars(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want []source.Segment
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name: "suffix",
			x:    "foo bar",
			y:    "foo baz",
			want: []source.Segment{
				{source.Match, "foo ba"},
				{source.Delete, "r"},
				{source.Insert, "z"},
			},
		},
		{
			name: "multibyte",
			x:    "Hello, World",
			y:    "Hello, 世界",
			want: []source.Segment{
				{source.Match, "Hello, "},
				{source.Delete, "World"},
				{source.Insert, "世界"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chars().DiffChars(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DiffChars(...) result is different [-want,+got]:\n%s", diff)
			}
			if err := source.Check(tt.x, tt.y, got); err != nil {
				t.Errorf("DiffChars(...) violates contract: %v", err)
			}
		})
	}
}
