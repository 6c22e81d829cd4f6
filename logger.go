package fmgo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with fmgo-specific helpers.
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

// WithPatternLen adds a pattern length field to the logger.
func (l *Logger) WithPatternLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("pattern_len", n),
	}
}

// LogBuild logs an index construction.
func (l *Logger) LogBuild(backend string, textLen int, alphabetSize uint64, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("build failed",
			"backend", backend,
			"text_len", textLen,
			"error", err,
		)
	} else {
		l.Info("build completed",
			"backend", backend,
			"text_len", textLen,
			"alphabet_size", alphabetSize,
			"elapsed", elapsed,
		)
	}
}

// LogSearch logs a backward search.
func (l *Logger) LogSearch(patternLen, count int) {
	l.Debug("search completed",
		"pattern_len", patternLen,
		"count", count,
	)
}

// LogLocate logs a locate operation.
func (l *Logger) LogLocate(count int, err error) {
	if err != nil {
		l.Error("locate failed",
			"error", err,
		)
	} else {
		l.Debug("locate completed",
			"count", count,
		)
	}
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(op string, err error) {
	if err != nil {
		l.Error("snapshot failed",
			"op", op,
			"error", err,
		)
	} else {
		l.Info("snapshot completed",
			"op", op,
		)
	}
}
