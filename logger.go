package lemis

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with lemis-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithArtifact adds an artifact name field to the logger.
func (l *Logger) WithArtifact(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("artifact", name),
	}
}

// LogCompile logs the outcome of an artifact build.
func (l *Logger) LogCompile(ctx context.Context, stats *BuildStats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compile failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "compile completed",
		"rows", stats.Rows,
		"skipped", stats.Skipped,
		"lemmas", stats.LemmaCount,
		"words", stats.WordCount,
		"entries", stats.EntryCount,
		"bigrams", stats.BigramCount,
		"bytes", stats.TotalBytes,
	)
}
