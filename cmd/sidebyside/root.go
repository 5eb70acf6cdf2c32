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
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settings are the values of all flags after merging the config file and the environment.
type settings struct {
	Source  string `mapstructure:"source"`
	Chars   string `mapstructure:"chars"`
	Format  string `mapstructure:"format"`
	Context int    `mapstructure:"context"`
	Width   int    `mapstructure:"width"`
	Color   string `mapstructure:"color"`
	Addr    string `mapstructure:"addr"`
	Verbose bool   `mapstructure:"verbose"`
}

type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	v   *viper.Viper
	cfg settings
	log *slog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "sidebyside [flags] OLD NEW",
		Short: "Compare two files side by side",
		Long: `sidebyside compares two files line by line and shows them next to each other. Changes
within replaced lines are highlighted character by character. Use "-" to read a file from stdin.

The exit status is 0 if the inputs are equal, 1 if they differ, and 2 if an error occurred.

Examples:
  sidebyside old.txt new.txt
  sidebyside --context 3 --width 50 old.txt new.txt
  git show HEAD:main.go | sidebyside - main.go
  sidebyside --format html old.txt new.txt > diff.html
  sidebyside serve --addr localhost:8080`,
		Args:              cobra.ExactArgs(2),
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(args[0], args[1])
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default $XDG_CONFIG_HOME/sidebyside/config.yaml or ./sidebyside.yaml)")
	pf.String("source", "dmp", "line diff algorithm: dmp, godebug, or mb0 (godebug needs memory proportional to lines times changed lines, avoid it for large inputs)")
	pf.String("chars", "dmp", "character diff algorithm: dmp, mb0, udiff, or none")
	pf.IntP("context", "C", -1, "number of unchanged lines around changes, -1 shows all lines")
	pf.IntP("width", "W", 0, "column width for terminal output, 0 fits the terminal")
	pf.String("color", "auto", "color terminal output: auto, always, or never")
	pf.BoolP("verbose", "v", false, "log debug output to stderr")
	root.Flags().StringP("format", "f", "term", "output format: term, html, unified, or json")

	root.AddCommand(newServeCmd(a), newGitDiffCmd(a))
	return root
}

// load merges flags, environment, and the config file into a.cfg and sets up logging.
func (a *app) load(cmd *cobra.Command) error {
	a.v = viper.New()
	a.v.SetEnvPrefix("sidebyside")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	file := a.v.GetString("config")
	if file == "" {
		file = findConfig()
	}
	if file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	level := slog.LevelInfo
	if a.cfg.Verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.log.Debug("loaded settings", "config", file, "settings", fmt.Sprintf("%+v", a.cfg))
	return nil
}

// findConfig returns the first config file that exists or "" if there is none.
func findConfig() string {
	var candidates []string
	if dir, err := configDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}
	candidates = append(candidates, "sidebyside.yaml")
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func configDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "sidebyside"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "sidebyside"), nil
}
