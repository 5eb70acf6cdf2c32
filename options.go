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
	"znkr.io/sidebyside/internal/config"
	"znkr.io/sidebyside/source"
)

// Option configures the behavior of comparison and rendering functions.
type Option = config.Option

// LineSource sets the algorithm used to compare the inputs line by line. The default is
// [znkr.io/sidebyside/source/dmp.Lines].
func LineSource(src source.LineDiffer) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Lines = src
		return config.LineSource
	}
}

// CharSource sets the algorithm used to compare matched line pairs character by character. The
// default is [znkr.io/sidebyside/source/dmp.Chars].
func CharSource(src source.CharDiffer) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Chars = src
		return config.CharSource
	}
}

// NoCharDiff disables highlighting of changes within matched line pairs.
func NoCharDiff() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.NoCharDiff = true
		return config.NoCharDiff
	}
}

// Context limits rendered output to changed rows and n unchanged rows before and after them.
// Unchanged rows outside of that are folded. By default, all rows are rendered.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Width sets the width of a rendered column in terminal cells.
func Width(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Width = max(0, n)
		return config.Width
	}
}
