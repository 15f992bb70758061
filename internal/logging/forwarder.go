package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const forwardUserAgent = "usuarios-api-logger"

// Entry describes one completed HTTP request. The JSON layout is the wire
// contract with the external log collector.
type Entry struct {
	LogID       string `json:"log_id"`
	Message     string `json:"message"`
	Level       string `json:"level"`
	Timestamp   string `json:"timestamp"`
	Method      string `json:"method"`
	URL         string `json:"url"`
	Status      int    `json:"status"`
	Duration    int64  `json:"duration"`
	IP          string `json:"ip"`
	UserAgent   string `json:"userAgent"`
	Environment string `json:"environment"`
}

// Forwarder ships log entries to an external HTTP collector. Delivery is
// best-effort and at-most-once: a failed send is logged locally and dropped,
// never retried and never surfaced to the request that produced the entry.
type Forwarder struct {
	url    string
	token  string
	client *http.Client
	log    *Logger
}

// NewForwarder builds a Forwarder. An empty url or token leaves it disabled.
func NewForwarder(url, token string, log *Logger) *Forwarder {
	return &Forwarder{
		url:   url,
		token: token,
		// the transport timeout bounds how long a forward can stay suspended
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// Enabled reports whether both the collector URL and token are configured.
func (f *Forwarder) Enabled() bool {
	return f.url != "" && f.token != ""
}

// Forward sends one entry to the collector. Runs on its own goroutine when
// called from the middleware; the originating response has already been
// written by then.
func (f *Forwarder) Forward(entry Entry) {
	if !f.Enabled() {
		f.log.Warn("log forwarding not configured, entry not sent")
		return
	}

	body, err := json.Marshal(entry)
	if err != nil {
		f.log.Error("marshal log entry", "error", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		f.log.Error("build log forward request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("User-Agent", forwardUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Error("forward log entry", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		f.log.Error("log collector rejected entry",
			"status", resp.StatusCode,
			"response", string(detail))
	}
}

// message renders the human-readable summary line for an entry.
func message(method, path string, status int, duration time.Duration) string {
	return fmt.Sprintf("%s %s - %d (%dms)", method, path, status, duration.Milliseconds())
}
