package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Logger is the application logger. It fans every record out to two
// append-only JSON file sinks (error.log for error level only, combined.log
// for everything) and, outside production, a human-readable console sink.
// Built once at startup and closed at shutdown.
type Logger struct {
	*slog.Logger
	errorFile    *os.File
	combinedFile *os.File
}

// New opens the file sinks under dir and assembles the logger. env selects
// whether the console sink is attached.
func New(dir, env string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	errorFile, err := openSink(filepath.Join(dir, "error.log"))
	if err != nil {
		return nil, err
	}
	combinedFile, err := openSink(filepath.Join(dir, "combined.log"))
	if err != nil {
		errorFile.Close()
		return nil, err
	}

	handlers := []slog.Handler{
		slog.NewJSONHandler(newSyncWriter(errorFile), &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewJSONHandler(newSyncWriter(combinedFile), &slog.HandlerOptions{Level: slog.LevelInfo}),
	}
	if env != "production" {
		handlers = append(handlers, slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	logger := slog.New(newFanoutHandler(handlers...)).With("service", "usuarios-api")
	return &Logger{Logger: logger, errorFile: errorFile, combinedFile: combinedFile}, nil
}

// Close flushes and closes both file sinks.
func (l *Logger) Close() error {
	err := l.errorFile.Close()
	if cerr := l.combinedFile.Close(); err == nil {
		err = cerr
	}
	return err
}

func openSink(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

// syncWriter serializes writes so concurrent requests never interleave
// partial lines in a sink. slog's JSONHandler emits each record as a single
// Write, so one mutex per sink is enough.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func newSyncWriter(w io.Writer) *syncWriter {
	return &syncWriter{w: w}
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// fanoutHandler dispatches one record to every child handler that is enabled
// for its level.
type fanoutHandler struct {
	handlers []slog.Handler
}

func newFanoutHandler(handlers ...slog.Handler) slog.Handler {
	return &fanoutHandler{handlers: handlers}
}

func (f *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: next}
}

func (f *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		next[i] = h.WithGroup(name)
	}
	return &fanoutHandler{handlers: next}
}
