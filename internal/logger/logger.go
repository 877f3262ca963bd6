// Package logger provides structured logging functionality for imagebot.
// It uses Go's slog package with configurable levels and formats, optional
// rotated file output, and an HTTP request logging middleware.
package logger

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/natefinch/lumberjack"

	"github.com/edgard/imagebot/internal/config"
)

// NewLogger creates a new slog Logger from the log configuration.
// If cfg.File is set, records are also written to a size-rotated file.
// The returned closer releases the file and is safe to call when no file is used.
func NewLogger(cfg config.LogConfig) (*slog.Logger, io.Closer) {
	var out io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		out = io.MultiWriter(os.Stdout, rotator)
		closer = rotator
	}

	return New(out, cfg.Level, cfg.Format == "json"), closer
}

// New creates a logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, levelStr string, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(levelStr),
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a configuration level name to a slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Middleware creates a logging middleware for the HTTP router.
// It logs information about every request once the response is written.
func Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log.InfoContext(r.Context(), "Handled request",
				"method", r.Method,
				"path", truncateString(r.URL.Path, 120),
				"status", status,
				"bytes", ww.BytesWritten(),
				"remote_addr", r.RemoteAddr,
				"request_id", middleware.GetReqID(r.Context()),
				"duration", time.Since(startTime),
			)
		})
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// truncateString shortens s to at most maxLen runes, ellipsis included.
func truncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}
