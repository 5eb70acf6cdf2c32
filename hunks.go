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

import "iter"

// Hunk is a range of rows, Left[Start:End] and Right[Start:End], that contains changed rows and
// the unchanged rows surrounding them.
type Hunk struct {
	Start, End int
}

// Hunks returns the ranges of rows that contain changes with up to context unchanged rows before
// and after them. Two hunks that are separated by at most 2*context unchanged rows are merged.
//
// If the result has no changes, there are no hunks.
func (r *Result) Hunks(context int) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		context := max(0, context)
		n := r.Len()
		start := -1 // start of the current hunk
		run := 0    // number of consecutive unchanged rows
		for i := range n {
			if r.Left[i].Class != Unchanged {
				if start < 0 {
					start = max(0, i-context)
				}
				run = 0
				continue
			}
			run++
			// Active in-progress hunk and we've seen more matches than both contexts can cover,
			// finish the hunk.
			if start >= 0 && run > 2*context {
				if !yield(Hunk{start, i - run + 1 + context}) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(Hunk{start, min(n, n-run+context)})
		}
	}
}
