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


// Package panel implements the comparison panel: a page with two text inputs that is served over
// HTTP and talks to the server over a websocket.
//
// Every message is a JSON object with a "command" field. The page sends [Request] values and the
// server answers each of them with one [Response].
package panel

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"znkr.io/sidebyside"
	"znkr.io/sidebyside/html"
)

// Commands of requests and responses.
const (
	CommandComputeDiff = "computeDiff" // request: compare LeftText and RightText
	CommandClearAll    = "clearAll"    // request: reset the panel
	CommandDisplayDiff = "displayDiff" // response to computeDiff
	CommandCleared     = "cleared"     // response to clearAll
	CommandError       = "error"       // response to a failed request
)

// DefaultCacheSize is the number of responses a panel caches by default.
const DefaultCacheSize = 64

// ErrUnknownCommand is returned by [Panel.Handle] for requests with an unsupported command.
var ErrUnknownCommand = errors.New("unknown command")

// Request is a message from the page.
type Request struct {
	Command   string `json:"command"`
	LeftText  string `json:"leftText,omitempty"`
	RightText string `json:"rightText,omitempty"`
}

// Response is a message to the page.
type Response struct {
	Command   string `json:"command"`
	LeftHTML  string `json:"leftHtml,omitempty"`
	RightHTML string `json:"rightHtml,omitempty"`
	Additions int    `json:"additions,omitempty"`
	Removals  int    `json:"removals,omitempty"`
	Error     string `json:"error,omitempty"`
}

// MarshalJSON encodes only the fields that belong to the command of r. The counts of a
// displayDiff response are always present, even if they are zero.
func (r Response) MarshalJSON() ([]byte, error) {
	switch r.Command {
	case CommandDisplayDiff:
		return json.Marshal(struct {
			Command   string `json:"command"`
			LeftHTML  string `json:"leftHtml"`
			RightHTML string `json:"rightHtml"`
			Additions int    `json:"additions"`
			Removals  int    `json:"removals"`
		}{r.Command, r.LeftHTML, r.RightHTML, r.Additions, r.Removals})
	case CommandError:
		return json.Marshal(struct {
			Command string `json:"command"`
			Error   string `json:"error"`
		}{r.Command, r.Error})
	default:
		return json.Marshal(struct {
			Command string `json:"command"`
		}{r.Command})
	}
}

// Config configures a [Panel] or a [Server].
type Config struct {
	// CacheSize is the number of responses to cache, 0 selects [DefaultCacheSize].
	CacheSize int

	// Options are passed to [sidebyside.Compute].
	Options []sidebyside.Option

	// Logger receives log output, nil selects [slog.Default].
	Logger *slog.Logger
}

type cacheKey struct {
	left, right string
}

// Panel handles the requests of one page.
type Panel struct {
	opts  []sidebyside.Option
	cache *lru.Cache[cacheKey, Response]
	log   *slog.Logger
}

// New creates a new panel.
func New(cfg Config) (*Panel, error) {
	size := cfg.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, Response](size)
	if err != nil {
		return nil, fmt.Errorf("creating response cache: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Panel{
		opts:  cfg.Options,
		cache: cache,
		log:   logger,
	}, nil
}

// Handle returns the response to req.
func (p *Panel) Handle(req Request) (Response, error) {
	switch req.Command {
	case CommandComputeDiff:
		return p.computeDiff(req.LeftText, req.RightText)
	case CommandClearAll:
		return Response{Command: CommandCleared}, nil
	default:
		return Response{}, fmt.Errorf("%w %q", ErrUnknownCommand, req.Command)
	}
}

func (p *Panel) computeDiff(left, right string) (Response, error) {
	key := cacheKey{left, right}
	if resp, ok := p.cache.Get(key); ok {
		p.log.Debug("serving cached diff", "left_bytes", len(left), "right_bytes", len(right))
		return resp, nil
	}

	r, err := sidebyside.Compute(left, right, p.opts...)
	if err != nil {
		return Response{}, fmt.Errorf("comparing texts: %w", err)
	}
	lhtml, rhtml := html.Render(r)
	resp := Response{
		Command:   CommandDisplayDiff,
		LeftHTML:  lhtml,
		RightHTML: rhtml,
		Additions: r.Additions,
		Removals:  r.Removals,
	}
	p.cache.Add(key, resp)
	p.log.Debug("computed diff", "rows", r.Len(), "additions", r.Additions, "removals", r.Removals)
	return resp, nil
}
