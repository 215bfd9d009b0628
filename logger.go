package bitmatch

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with bitmatch-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBitLen adds a bit-length field to the logger.
func (l *Logger) WithBitLen(bits int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", bits),
	}
}

// WithSource adds a haystack source name field to the logger.
func (l *Logger) WithSource(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", name),
	}
}

// LogCompile logs a pattern compilation.
func (l *Logger) LogCompile(bits int, err error) {
	if err != nil {
		l.Error("pattern compilation failed",
			"bits", bits,
			"error", err,
		)
	} else {
		l.Debug("pattern compiled",
			"bits", bits,
		)
	}
}

// LogScan logs a completed scan.
func (l *Logger) LogScan(ctx context.Context, bits, windows, collisions, offset int, found bool, duration time.Duration) {
	l.DebugContext(ctx, "scan completed",
		"bits", bits,
		"windows", windows,
		"collisions", collisions,
		"offset", offset,
		"found", found,
		"duration", duration,
	)
}
