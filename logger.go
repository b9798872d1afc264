package rowview

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rowview-specific context.
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
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // above every level rowview logs at
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithStrategy adds the mapping strategy name to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// LogDelete logs a delete by logical position.
func (l *Logger) LogDelete(ctx context.Context, pos, physical int, err error) {
	if err != nil {
		l.WarnContext(ctx, "delete ignored",
			"position", pos,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "delete completed",
			"position", pos,
			"physical", physical,
		)
	}
}

// LogOutOfRange logs navigation to a position outside the logical view.
func (l *Logger) LogOutOfRange(ctx context.Context, op string, pos, count int) {
	l.WarnContext(ctx, "position out of range",
		"op", op,
		"position", pos,
		"count", count,
	)
}

// LogSourceTooLarge logs a source whose row count exceeds what the view can
// address. Only the first limit rows are visible.
func (l *Logger) LogSourceTooLarge(ctx context.Context, count, limit int) {
	l.WarnContext(ctx, "source truncated",
		"count", count,
		"limit", limit,
	)
}

// LogSeed logs pre-seeded deletions that fell outside the physical sequence.
func (l *Logger) LogSeed(ctx context.Context, seeded int, rejected []int) {
	if len(rejected) > 0 {
		l.WarnContext(ctx, "initial deletions out of range",
			"seeded", seeded,
			"rejected", rejected,
		)
	} else {
		l.DebugContext(ctx, "initial deletions applied",
			"seeded", seeded,
		)
	}
}

// LogClear logs a reset of the deletion set.
func (l *Logger) LogClear(ctx context.Context, dropped, count int) {
	l.DebugContext(ctx, "deletions cleared",
		"dropped", dropped,
		"count", count,
	)
}

// LogTraversal logs the end of a ForEach or RemoveIf pass.
func (l *Logger) LogTraversal(ctx context.Context, op string, visited, removed int, err error) {
	if err != nil {
		l.WarnContext(ctx, "traversal stopped",
			"op", op,
			"visited", visited,
			"removed", removed,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "traversal completed",
			"op", op,
			"visited", visited,
			"removed", removed,
		)
	}
}
