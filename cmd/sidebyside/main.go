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


// Command sidebyside compares two files and shows them next to each other.
//
// Usage:
//
//	sidebyside [flags] OLD NEW
//	sidebyside serve [--addr host:port]
//	sidebyside gitdiff PATH OLD-FILE OLD-HEX OLD-MODE NEW-FILE NEW-HEX NEW-MODE
//
// The exit status is 0 if the inputs are equal, 1 if they differ, and 2 if an error occurred.
//
// Defaults for all flags can be set in $XDG_CONFIG_HOME/sidebyside/config.yaml, in
// ./sidebyside.yaml, or with SIDEBYSIDE_* environment variables, e.g. SIDEBYSIDE_CONTEXT=3.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// errDiffer is returned by a command to signal that the inputs are different.
var errDiffer = errors.New("inputs differ")

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(&app{stdin: stdin, stdout: stdout, stderr: stderr})
	cmd.SetArgs(args)
	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errDiffer):
		return 1
	default:
		fmt.Fprintf(stderr, "sidebyside: %v\n", err)
		return 2
	}
}
