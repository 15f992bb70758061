package logging

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*Logger, string) {
	t.Helper()
	dir := t.TempDir()
	log, err := New(dir, "production") // no console sink in tests
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log, dir
}

func readSink(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}

func sampleEntry() Entry {
	return Entry{
		LogID:       "test-log-id",
		Message:     "POST /usuarios - 201 (12ms)",
		Level:       "info",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Method:      http.MethodPost,
		URL:         "/usuarios",
		Status:      http.StatusCreated,
		Duration:    12,
		IP:          "203.0.113.7",
		UserAgent:   "curl/8.0",
		Environment: "test",
	}
}

func TestForwarder_SendsBearerAuthorizedJSON(t *testing.T) {
	log, _ := newTestLogger(t)

	var got Entry
	var auth, contentType, userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		userAgent = r.Header.Get("User-Agent")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	fwd := NewForwarder(server.URL, "secret-token", log)
	fwd.Forward(sampleEntry())

	assert.Equal(t, "Bearer secret-token", auth)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, forwardUserAgent, userAgent)
	assert.Equal(t, "POST /usuarios - 201 (12ms)", got.Message)
	assert.Equal(t, http.StatusCreated, got.Status)
	assert.Equal(t, "203.0.113.7", got.IP)
	assert.Equal(t, "info", got.Level)
}

func TestForwarder_SkipsWhenUnconfigured(t *testing.T) {
	log, dir := newTestLogger(t)

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	for _, fwd := range []*Forwarder{
		NewForwarder("", "secret-token", log),
		NewForwarder(server.URL, "", log),
	} {
		assert.False(t, fwd.Enabled())
		fwd.Forward(sampleEntry())
	}

	assert.Zero(t, atomic.LoadInt32(&calls))
	// skipping is a warning, not an error
	assert.Contains(t, readSink(t, dir, "combined.log"), "log forwarding not configured")
	assert.NotContains(t, readSink(t, dir, "error.log"), "log forwarding not configured")
}

func TestForwarder_SwallowsCollectorRejection(t *testing.T) {
	log, dir := newTestLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	fwd := NewForwarder(server.URL, "secret-token", log)
	fwd.Forward(sampleEntry())

	assert.Contains(t, readSink(t, dir, "error.log"), "log collector rejected entry")
}

func TestForwarder_SwallowsNetworkError(t *testing.T) {
	log, dir := newTestLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	fwd := NewForwarder(server.URL, "secret-token", log)
	fwd.Forward(sampleEntry()) // must not panic or block

	assert.Contains(t, readSink(t, dir, "error.log"), "forward log entry")
}
