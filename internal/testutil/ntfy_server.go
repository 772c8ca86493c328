// Package testutil provides test utilities and helpers for cmdntfy tests.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// NtfyRequest is one request received by NtfyServer.
type NtfyRequest struct {
	Method string
	Header http.Header
	Body   string
}

// NtfyServer is a local stand-in for an ntfy topic that records every request.
type NtfyServer struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	requests []NtfyRequest
}

// NewNtfyServer starts a recording server replying 200 OK. It is closed on
// test cleanup.
func NewNtfyServer(t *testing.T) *NtfyServer {
	t.Helper()
	return NewNtfyServerWithStatus(t, http.StatusOK)
}

// NewNtfyServerWithStatus starts a recording server replying with status.
func NewNtfyServerWithStatus(t *testing.T, status int) *NtfyServer {
	t.Helper()

	s := &NtfyServer{status: status}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *NtfyServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, NtfyRequest{
		Method: r.Method,
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	s.mu.Unlock()

	w.WriteHeader(s.status)
}

// Requests returns a copy of every request received so far.
func (s *NtfyServer) Requests() []NtfyRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]NtfyRequest(nil), s.requests...)
}

// ClosedURL returns the URL of a server that has already been shut down,
// giving a guaranteed connection failure.
func ClosedURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return srv.URL
}
