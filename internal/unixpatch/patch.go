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

// Package unixpatch applies unified diffs with the patch(1) tool.
//
// This package is only for testing.
package unixpatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotInstalled is returned by [Apply] if there's no patch tool in PATH.
var ErrNotInstalled = errors.New("patch tool not installed")

// Apply applies the unified diff to orig and returns the result.
func Apply(ctx context.Context, orig, diff []byte) ([]byte, error) {
	// Using patch with an empty diff will not create an output file.
	if len(diff) == 0 {
		return orig, nil
	}
	patch, err := exec.LookPath("patch")
	if err != nil {
		return nil, ErrNotInstalled
	}

	dir, err := os.MkdirTemp("", "patch-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary directory: %w", err)
	}
	defer os.RemoveAll(dir)

	patchfile := filepath.Join(dir, "patch")
	origfile := filepath.Join(dir, "orig")
	outfile := filepath.Join(dir, "out")
	if err := os.WriteFile(patchfile, diff, 0o644); err != nil {
		return nil, fmt.Errorf("writing patch file: %w", err)
	}
	if err := os.WriteFile(origfile, orig, 0o644); err != nil {
		return nil, fmt.Errorf("writing orig file: %w", err)
	}

	cmd := exec.CommandContext(ctx, patch, "-s", "-u", "-i", patchfile, "-o", outfile, origfile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("running %s: %w\n%s", strings.Join(cmd.Args, " "), err, out)
	}
	out, err := os.ReadFile(outfile)
	if err != nil {
		return nil, fmt.Errorf("reading patched file: %w", err)
	}
	return out, nil
}
