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


// Package color provides options to customize the colors used by [termview.Colors].
//
// Every option takes SGR parameters, e.g. color.Removed(1, 31) for bold red text. Calling an
// option without parameters resets the element to the terminal's default color.
//
// [termview.Colors]: https://pkg.go.dev/znkr.io/sidebyside/termview#Colors
package color

import (
	"fmt"
	"strings"

	"znkr.io/sidebyside/internal/config"
)

// A Option makes it possible to configure custom colors in [termview.Colors].
//
// [termview.Colors]: https://pkg.go.dev/znkr.io/sidebyside/termview#Colors
type Option func(*config.ColorConfig)

// LineNumbers colors line numbers.
func LineNumbers(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.LineNumber = code
	}
}

// Unchanged colors unchanged lines.
func Unchanged(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Unchanged = code
	}
}

// Removed colors removed lines.
func Removed(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Removed = code
	}
}

// Added colors added lines.
func Added(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Added = code
	}
}

// RemovedEmphasis colors the changed characters of a removed line.
func RemovedEmphasis(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.RemovedEmphasis = code
	}
}

// AddedEmphasis colors the changed characters of an added line.
func AddedEmphasis(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.AddedEmphasis = code
	}
}

// Folds colors the "@@ ... @@" headers in front of hunks when unchanged rows are folded.
func Folds(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Fold = code
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
