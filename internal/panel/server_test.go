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
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv, err := NewServer(Config{Logger: discard})
	if err != nil {
		t.Fatalf("NewServer(...) failed: %v", err)
	}
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return srv, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial(%q) failed: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, req any) Response {
	t.Helper()
	conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("WriteJSON(...) failed: %v", err)
	}
	var resp Response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("ReadJSON(...) failed: %v", err)
	}
	return resp
}

func TestServerPage(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET / failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET / = %v, want %v", resp.StatusCode, http.StatusOK)
	}
	if got := resp.Header.Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("GET / has content type %q, want text/html", got)
	}
	if !strings.Contains(string(body), "computeDiff") {
		t.Errorf("GET / doesn't serve the panel page")
	}

	resp, err = http.Get(ts.URL + "/missing")
	if err != nil {
		t.Fatalf("GET /missing failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /missing = %v, want %v", resp.StatusCode, http.StatusNotFound)
	}
}

func TestServerProtocol(t *testing.T) {
	srv, ts := newTestServer(t)
	conn := dial(t, ts)

	got := roundTrip(t, conn, Request{Command: CommandComputeDiff, LeftText: "a\nb\n", RightText: "a\nc\n"})
	want, err := srv.panel.Handle(Request{Command: CommandComputeDiff, LeftText: "a\nb\n", RightText: "a\nc\n"})
	if err != nil {
		t.Fatalf("Handle(...) failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("computeDiff response is different [-want,+got]:\n%s", diff)
	}

	got = roundTrip(t, conn, Request{Command: CommandClearAll})
	if diff := cmp.Diff(Response{Command: CommandCleared}, got); diff != "" {
		t.Errorf("clearAll response is different [-want,+got]:\n%s", diff)
	}

	got = roundTrip(t, conn, Request{Command: "bogus"})
	if got.Command != CommandError || !strings.Contains(got.Error, "bogus") {
		t.Errorf("bogus command response = %+v, want error", got)
	}

	got = roundTrip(t, conn, "not an object")
	if got.Command != CommandError {
		t.Errorf("malformed request response = %+v, want error", got)
	}

	if cur := srv.Current(); cur == nil {
		t.Errorf("Current() = nil, want connected session")
	}
}

func TestServerReplacesPanel(t *testing.T) {
	srv, ts := newTestServer(t)

	first := dial(t, ts)
	roundTrip(t, first, Request{Command: CommandClearAll})
	firstSession := srv.Current()

	second := dial(t, ts)
	roundTrip(t, second, Request{Command: CommandClearAll})
	if cur := srv.Current(); cur == nil || cur == firstSession {
		t.Errorf("Current() = %v, want the second session", cur)
	}

	// The first connection is closed by the server.
	first.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err := first.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("ReadMessage() on replaced connection = %v, want normal close", err)
	}

	// The second connection is still usable.
	got := roundTrip(t, second, Request{Command: CommandClearAll})
	if got.Command != CommandCleared {
		t.Errorf("clearAll response = %+v, want cleared", got)
	}
}

func TestServerReleasesPanel(t *testing.T) {
	srv, ts := newTestServer(t)
	conn := dial(t, ts)
	roundTrip(t, conn, Request{Command: CommandClearAll})

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
		t.Fatalf("WriteControl(...) failed: %v", err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for srv.Current() != nil {
		if time.Now().After(deadline) {
			t.Fatalf("Current() is still set after the page disconnected")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestListenAndServe(t *testing.T) {
	srv, err := NewServer(Config{Logger: discard})
	if err != nil {
		t.Fatalf("NewServer(...) failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe(...) = %v, want nil", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("ListenAndServe(...) didn't return after cancellation")
	}
}
