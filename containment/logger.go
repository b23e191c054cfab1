// SPDX-License-Identifier: MIT

package containment

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with containment-specific field helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithOrders tags records with the orders of both inputs.
func (l *Logger) WithOrders(nA, nB int) *Logger {
	return &Logger{Logger: l.Logger.With("nA", nA, "nB", nB)}
}

// WithDirection tags records with a containment direction ("A⊆B" or "B⊆A").
func (l *Logger) WithDirection(dir string) *Logger {
	return &Logger{Logger: l.Logger.With("direction", dir)}
}
