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

// Package benchmarks compares the line and character sources that can back a side-by-side
// comparison.
package benchmarks

import (
	"znkr.io/sidebyside"
	"znkr.io/sidebyside/source/dmp"
	"znkr.io/sidebyside/source/godebug"
	"znkr.io/sidebyside/source/mb0"
	"znkr.io/sidebyside/source/udiff"
)

type Impl struct {
	Name    string
	Options []sidebyside.Option
}

var Impls = []Impl{
	{
		Name: "dmp",
		Options: []sidebyside.Option{
			sidebyside.LineSource(dmp.Lines()),
			sidebyside.CharSource(dmp.Chars()),
		},
	},
	{
		Name: "dmp-udiff",
		Options: []sidebyside.Option{
			sidebyside.LineSource(dmp.Lines()),
			sidebyside.CharSource(udiff.Chars()),
		},
	},
	{
		Name: "dmp-nochars",
		Options: []sidebyside.Option{
			sidebyside.LineSource(dmp.Lines()),
			sidebyside.NoCharDiff(),
		},
	},
	{
		Name: "godebug",
		Options: []sidebyside.Option{
			sidebyside.LineSource(godebug.Lines()),
			sidebyside.CharSource(dmp.Chars()),
		},
	},
	{
		Name: "mb0",
		Options: []sidebyside.Option{
			sidebyside.LineSource(mb0.Lines()),
			sidebyside.CharSource(mb0.Chars()),
		},
	},
}

