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
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"znkr.io/sidebyside/internal/panel"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a page to compare texts in the browser",
		Long: `serve starts an HTTP server with a page that compares two texts pasted into the browser.
Only one page can be connected at a time, opening the page again disconnects the previous one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.compareOptions()
			if err != nil {
				return err
			}
			srv, err := panel.NewServer(panel.Config{Options: opts, Logger: a.log})
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, a.cfg.Addr)
		},
	}
	cmd.Flags().String("addr", "localhost:8080", "address to listen on")
	return cmd
}
