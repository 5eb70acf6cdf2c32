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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// sidebyside.Option.
package config

import "znkr.io/sidebyside/source"

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Lines computes the line diff that is aligned into rows.
	Lines source.LineDiffer

	// Chars computes the character diff for matched line pairs.
	Chars source.CharDiffer

	// If set, matched line pairs are not diffed character by character.
	NoCharDiff bool

	// Context is the number of unchanged rows to show around changed rows when rendering. A
	// negative value shows all rows.
	Context int

	// Width is the width of a rendered column in terminal cells, 0 selects a default.
	Width int

	// Colors configures ANSI colors for terminal output, nil disables colors.
	Colors *ColorConfig
}

// ColorConfig contains the SGR escape sequences used for the elements of a terminal rendering.
// An empty string leaves the element uncolored. Fold colors the headers in front of hunks.
type ColorConfig struct {
	LineNumber      string
	Unchanged       string
	Removed         string
	Added           string
	RemovedEmphasis string
	AddedEmphasis   string
	Fold            string
}

// DefaultColors is the color scheme used when colors are enabled without customizations.
var DefaultColors = ColorConfig{
	LineNumber:      "\033[2m",
	Unchanged:       "",
	Removed:         "\033[31m",
	Added:           "\033[32m",
	RemovedEmphasis: "\033[1;41m",
	AddedEmphasis:   "\033[1;42m",
	Fold:            "\033[36m",
}

// Default is the default configuration.
//
// Lines and Chars are nil, [FromOptions] fills them with the defaults provided by the caller. This
// keeps this package free of dependencies on diff implementations.
var Default = Config{
	Lines:      nil,
	Chars:      nil,
	NoCharDiff: false,
	Context:    -1,
	Width:      0,
	Colors:     nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	LineSource Flag = 1 << iota
	CharSource
	NoCharDiff
	Context
	Width
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options. Sources that are still unset after
// applying all options are set to lines and chars.
func FromOptions(opts []Option, allowed Flag, lines source.LineDiffer, chars source.CharDiffer) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.Lines == nil {
		cfg.Lines = lines
	}
	if cfg.Chars == nil {
		cfg.Chars = chars
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case LineSource:
		return "sidebyside.LineSource"
	case CharSource:
		return "sidebyside.CharSource"
	case NoCharDiff:
		return "sidebyside.NoCharDiff"
	case Context:
		return "sidebyside.Context"
	case Width:
		return "sidebyside.Width"
	case Colors:
		return "termview.Colors"
	default:
		panic("never reached")
	}
}
