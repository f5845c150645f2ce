package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a thin wrapper around slog.Logger that adds field helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a logger writing to stderr. Development mode uses a
// human-readable text handler at debug level; otherwise JSON at info level.
func NewLogger(isDevelopment bool) *Logger {
	return New(os.Stderr, isDevelopment, "")
}

// New creates a logger writing to w. An empty level keeps the mode default.
func New(w io.Writer, isDevelopment bool, level string) *Logger {
	lvl := slog.LevelInfo
	if isDevelopment {
		lvl = slog.LevelDebug
	}
	if level != "" {
		lvl = ParseLevel(level, lvl)
	}

	opts := &slog.HandlerOptions{
		AddSource: isDevelopment,
		Level:     lvl,
	}

	var handler slog.Handler
	if isDevelopment {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// WithFields returns a child logger with the given fields attached.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{Logger: l.With(args...)}
}

// ParseLevel maps a level name to a slog level, falling back to def.
func ParseLevel(level string, def slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return def
	}
}
