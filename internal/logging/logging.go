package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init creates and sets the package-level default slog logger and returns it.
// When reportIsJSON is true, uses JSONHandler on stderr so log records stay
// machine-readable next to a JSON report on stdout.
// Otherwise uses TextHandler on stderr for human readability.
func Init(reportIsJSON bool, level slog.Level) *slog.Logger {
	l := New(os.Stderr, reportIsJSON, level)
	slog.SetDefault(l)
	return l
}

// New returns a logger writing to w without touching the default logger.
// The engine takes loggers built here so tests can capture progress records.
func New(w io.Writer, json bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
