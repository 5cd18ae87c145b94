package axistable

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with axistable-specific context.
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

// WithAxis adds an axis field to the logger.
func (l *Logger) WithAxis(axis Axis) *Logger {
	return &Logger{
		Logger: l.Logger.With("axis", axis.String()),
	}
}

// WithCells adds a cell count field to the logger.
func (l *Logger) WithCells(cells int) *Logger {
	return &Logger{
		Logger: l.Logger.With("cells", cells),
	}
}

// LogBulkRemove logs the removal of a whole row or column.
func (l *Logger) LogBulkRemove(axis Axis, key uint64, removed int) {
	l.Debug("bulk remove completed",
		"axis", axis.String(),
		"key", key,
		"removed", removed,
	)
}

// LogRebuild logs an inverse table rebuild.
func (l *Logger) LogRebuild(cells, workers int) {
	l.Debug("inverse rebuild completed",
		"cells", cells,
		"workers", workers,
	)
}
