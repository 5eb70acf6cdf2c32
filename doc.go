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

// Package sidebyside compares two texts and aligns them into two columns for a side-by-side view.
//
// The main function is [Compute]. It computes a line diff, splits it into runs of unchanged,
// removed, and added lines and aligns them into two columns of [Row] values with equal length:
//
//   - Unchanged lines appear in both columns.
//   - Removed lines appear in the left column, opposite of an [Empty] row.
//   - Added lines appear in the right column, opposite of an [Empty] row.
//   - A run of removed lines that is directly followed by a run of added lines is shown as a
//     replacement: the lines are placed next to each other and the shorter run is padded with
//     [Empty] rows. Each removed line that ends up next to an added line is compared character by
//     character to highlight the exact change as [Span] values.
//
// The diff algorithms are not part of this package. Line and character diffs are computed by
// implementations of the interfaces in [znkr.io/sidebyside/source], by default using
// [znkr.io/sidebyside/source/dmp].
//
// Rendering is left to the caller. Package [znkr.io/sidebyside/html] renders HTML and package
// [znkr.io/sidebyside/termview] renders for terminals.
//
// Compute is a pure function, it's safe to call it concurrently.
package sidebyside
