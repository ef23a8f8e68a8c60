package testutil

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/hasib2k/portfolio/internal/config"
	"github.com/hasib2k/portfolio/internal/server"
)

// TestServer provides a running portfolio server on a random port.
type TestServer struct {
	t        *testing.T
	Endpoint string
	BaseURL  string

	listener net.Listener
	server   *server.Server
}

// NewTestServer creates and starts a test server on a random port.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	return newTestServer(t, "")
}

// NewTestServerWithBaseURL creates a test server that emits canonical
// links for baseURL.
func NewTestServerWithBaseURL(t *testing.T, baseURL string) *TestServer {
	t.Helper()
	return newTestServer(t, baseURL)
}

func newTestServer(t *testing.T, baseURL string) *TestServer {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Site.BaseURL = baseURL

	// Find available port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find available port: %v", err)
	}

	srv := server.New(cfg)

	ts := &TestServer{
		t:        t,
		Endpoint: fmt.Sprintf("http://%s", listener.Addr().String()),
		BaseURL:  baseURL,
		listener: listener,
		server:   srv,
	}

	// Start server in background
	go func() {
		if err := srv.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	ts.waitForReady()

	return ts
}

// waitForReady waits for the server to be ready.
func (ts *TestServer) waitForReady() {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(ts.Endpoint + "/health")
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	ts.t.Fatalf("server did not become ready")
}

// Cleanup stops the server.
func (ts *TestServer) Cleanup() {
	if ts.server != nil {
		if err := ts.server.Shutdown(); err != nil {
			ts.t.Logf("shutdown error: %v", err)
		}
	}
}
