package logging

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Middleware observes every request/response pair. After the response is
// written it builds exactly one Entry, records it on the local sinks (error
// level when the status is 400 or above) and hands a copy to the forwarder
// on a detached goroutine. The forward can never touch the response.
func Middleware(log *Logger, forwarder *Forwarder, env string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			duration := time.Since(start)
			status := c.Response().Status

			entry := Entry{
				LogID:       uuid.NewString(),
				Message:     message(c.Request().Method, c.Request().RequestURI, status, duration),
				Level:       "info",
				Timestamp:   start.UTC().Format(time.RFC3339),
				Method:      c.Request().Method,
				URL:         c.Request().RequestURI,
				Status:      status,
				Duration:    duration.Milliseconds(),
				IP:          c.RealIP(),
				UserAgent:   c.Request().UserAgent(),
				Environment: env,
			}

			level := slog.LevelInfo
			if status >= 400 {
				level = slog.LevelError
				entry.Level = "error"
			}

			log.LogAttrs(c.Request().Context(), level, entry.Message,
				slog.String("log_id", entry.LogID),
				slog.String("method", entry.Method),
				slog.String("url", entry.URL),
				slog.Int("status", entry.Status),
				slog.Int64("duration_ms", entry.Duration),
				slog.String("ip", entry.IP),
				slog.String("user_agent", entry.UserAgent),
			)

			go forwarder.Forward(entry)

			return nil
		}
	}
}
