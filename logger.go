package labelgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with labelgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithVariable adds the variable name to the logger.
func (l *Logger) WithVariable(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("variable", name),
	}
}

// LogTransform logs one label transform.
func (l *Logger) LogTransform(ctx context.Context, op string, entriesBefore, entriesAfter int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "transform failed",
			"op", op,
			"entries", entriesBefore,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "transform completed",
			"op", op,
			"entries_before", entriesBefore,
			"entries_after", entriesAfter,
		)
	}
}

// LogSnapshot logs a snapshot encode/decode.
func (l *Logger) LogSnapshot(ctx context.Context, codecName string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"codec", codecName,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "snapshot completed",
			"codec", codecName,
			"bytes", size,
		)
	}
}
