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


package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newGitDiffCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitdiff PATH OLD-FILE OLD-HEX OLD-MODE NEW-FILE NEW-HEX NEW-MODE",
		Short: "Show changes side by side from git",
		Long: `gitdiff is meant to be used as an external diff driver for git:

  GIT_EXTERNAL_DIFF="sidebyside gitdiff" git diff

Git passes the path of the changed file, the old and the new version, and their hashes and modes.
The output is the side-by-side view of each changed file, preceded by a git style header.`,
		Args: cobra.MinimumNArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGitDiff(args)
		},
	}
	cmd.Flags().StringP("format", "f", "term", "output format: term, html, unified, or json")
	return cmd
}

func (a *app) runGitDiff(args []string) error {
	path, oldFile, oldHex, _, newFile, newHex, newMode := args[0], args[1], args[2], args[3], args[4], args[5], args[6]

	var old []byte
	if oldFile != "/dev/null" {
		var err error
		old, err = os.ReadFile(oldFile)
		if err != nil {
			return fmt.Errorf("reading old file: %w", err)
		}
	}

	var new []byte
	if newFile != "/dev/null" {
		var err error
		new, err = os.ReadFile(newFile)
		if err != nil {
			return fmt.Errorf("reading new file: %w", err)
		}
	}

	fmt.Fprintf(a.stdout, "diff --git a/%s b/%s\n", path, path)
	fmt.Fprintf(a.stdout, "index %s..%s %s\n", short(oldHex), short(newHex), newMode)
	// Git treats a non-zero exit status of an external diff as a failure, differences are not
	// reported.
	_, err := a.write(a.stdout, a.cfg.Format, "a/"+path, old, "b/"+path, new)
	return err
}

// short abbreviates a git object hash.
func short(hex string) string {
	if len(hex) > 10 {
		return hex[:10]
	}
	return hex
}
