package client_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blueswitch/blueswitch/internal/client"
)

// backend is a fake API keyed by path. Each call body is recorded.
type backend struct {
	t      *testing.T
	srv    *httptest.Server
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	bodies map[string][]map[string]any
	header map[string]http.Header
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{
		t:      t,
		routes: make(map[string]http.HandlerFunc),
		bodies: make(map[string][]map[string]any),
		header: make(map[string]http.Header),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backend) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	b.mu.Lock()
	b.bodies[r.URL.Path] = append(b.bodies[r.URL.Path], body)
	b.header[r.URL.Path] = r.Header.Clone()
	h, ok := b.routes[r.URL.Path]
	b.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func (b *backend) handle(path string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[path] = h
}

func (b *backend) json(path string, status int, v any) {
	b.handle(path, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, v)
	})
}

func (b *backend) calls(path string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[path]
}

func (b *backend) lastHeader(path string) http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header[path]
}

func (b *backend) client(opts ...func(*client.Config)) *client.Client {
	b.t.Helper()
	cfg := client.Config{
		BaseURL:  b.srv.URL,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Language: "es",
		DevEmail: "ana@example.com",
	}
	for _, o := range opts {
		o(&cfg)
	}
	c, err := client.New(cfg)
	require.NoError(b.t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func apiError(code, message string) map[string]any {
	return map[string]any{"error": map[string]string{"code": code, "message": message}}
}
