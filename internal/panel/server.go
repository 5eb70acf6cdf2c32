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


package panel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"znkr.io/sidebyside/html"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Server serves the panel page at "/" and the panel protocol at "/ws".
//
// At most one page is connected at any time: a new connection closes the previous one. The live
// connection is available via [Server.Current].
type Server struct {
	panel    *Panel
	log      *slog.Logger
	mux      *http.ServeMux
	upgrader websocket.Upgrader

	mu      sync.Mutex
	current *Session
}

// NewServer creates a new server.
func NewServer(cfg Config) (*Server, error) {
	p, err := New(cfg)
	if err != nil {
		return nil, err
	}
	s := &Server{
		panel: p,
		log:   p.log,
		mux:   http.NewServeMux(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.mux.HandleFunc("GET /{$}", s.handlePage)
	s.mux.HandleFunc("GET /ws", s.handleWS)
	return s, nil
}

// ServeHTTP implements [http.Handler].
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe listens on addr and serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("serving panel", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving panel: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	if cur := s.Current(); cur != nil {
		cur.Close()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Current returns the connected page or nil if there is none.
func (s *Server) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// replace makes sess the current session and closes the previous one.
func (s *Server) replace(sess *Session) {
	s.mu.Lock()
	prev := s.current
	s.current = sess
	s.mu.Unlock()
	if prev != nil {
		s.log.Info("replacing panel", "prev", prev.remote, "next", sess.remote)
		prev.Close()
	}
}

// release clears the current session if it's still sess.
func (s *Server) release(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == sess {
		s.current = nil
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, html.Page())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an error.
		s.log.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sess := &Session{
		remote: r.RemoteAddr,
		cancel: cancel,
		out:    make(chan Response, 32),
	}
	s.replace(sess)
	defer s.release(sess)
	s.log.Info("panel connected", "remote", sess.remote)
	defer s.log.Info("panel disconnected", "remote", sess.remote)

	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		s.log.Error("setting read deadline failed", "err", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.write(ctx, conn, sess.out)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && ctx.Err() == nil {
				s.log.Warn("reading message failed", "remote", sess.remote, "err", err)
			}
			cancel()
			<-writerDone
			return
		}
		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			sess.push(Response{Command: CommandError, Error: fmt.Sprintf("malformed request: %v", err)})
			continue
		}
		s.log.Debug("request", "remote", sess.remote, "command", req.Command)
		resp, err := s.panel.Handle(req)
		if err != nil {
			s.log.Error("request failed", "remote", sess.remote, "command", req.Command, "err", err)
			resp = Response{Command: CommandError, Error: err.Error()}
		}
		sess.push(resp)
	}
}

// write sends responses and pings to conn until ctx is canceled or a write fails. It closes conn
// before returning, which unblocks the reader.
func (s *Server) write(ctx context.Context, conn *websocket.Conn, out <-chan Response) {
	defer conn.Close()
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return
		case resp := <-out:
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := conn.WriteJSON(resp); err != nil {
				s.log.Warn("writing response failed", "err", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// Session is a page connected to a [Server].
type Session struct {
	remote string
	cancel context.CancelFunc
	out    chan Response
}

// RemoteAddr returns the network address of the page.
func (s *Session) RemoteAddr() string { return s.remote }

// Close disconnects the page.
func (s *Session) Close() { s.cancel() }

// push queues resp for sending. If the queue is full, the oldest response is dropped.
func (s *Session) push(resp Response) {
	select {
	case s.out <- resp:
		return
	default:
	}
	select {
	case <-s.out:
	default:
	}
	select {
	case s.out <- resp:
	default:
	}
}
