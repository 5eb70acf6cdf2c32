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

	"znkr.io/sidebyside/source"
)

// emphasize diffs a matched line pair character by character.
//
// Each side only shows its own changes: insertions are left out of the removed line and deletions
// are left out of the added line.
func emphasize(chars source.CharDiffer, removed, added string) (left, right []Span, err error) {
	segs := chars.DiffChars(removed, added)
	if err := source.Check(removed, added, segs); err != nil {
		return nil, nil, fmt.Errorf("character diff of %q and %q: %w", removed, added, err)
	}
	left = make([]Span, 0, len(segs))
	right = make([]Span, 0, len(segs))
	for _, seg := range segs {
		switch seg.Op {
		case source.Match:
			left = appendSpan(left, seg.Text, EmphasisNone)
			right = appendSpan(right, seg.Text, EmphasisNone)
		case source.Delete:
			left = appendSpan(left, seg.Text, EmphasisRemoved)
		case source.Insert:
			right = appendSpan(right, seg.Text, EmphasisAdded)
		}
	}
	return left, right, nil
}

// appendSpan appends text to spans, merging it with the last span if the emphasis is the same.
func appendSpan(spans []Span, text string, e Emphasis) []Span {
	switch n := len(spans); {
	case text == "":
		return spans
	case n > 0 && spans[n-1].Emphasis == e:
		spans[n-1].Text += text
		return spans
	default:
		return append(spans, Span{Text: text, Emphasis: e})
	}
}
