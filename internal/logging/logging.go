// Package logging wraps log/slog with the field names used by the matvec
// command-line tools.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Logger is a slog.Logger with transform-specific helpers.
type Logger struct {
	*slog.Logger
}

// New returns a Logger writing to w in the given format ("text" or "json")
// at the given level ("debug", "info", "warn", "error").
func New(w io.Writer, format, level string) (*Logger, error) {
	if level == "" {
		level = "info"
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
	return &Logger{Logger: slog.New(h)}, nil
}

// Noop returns a Logger that discards everything.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithShape tags every record with a matrix shape and pack width.
func (l *Logger) WithShape(rows, cols, lanes int) *Logger {
	return &Logger{Logger: l.With("rows", rows, "cols", cols, "lanes", lanes)}
}

// LogTransform logs one timed run of a kernel.
func (l *Logger) LogTransform(ctx context.Context, mode string, iterations int, elapsed time.Duration) {
	perOp := time.Duration(0)
	if iterations > 0 {
		perOp = elapsed / time.Duration(iterations)
	}
	l.InfoContext(ctx, "transform completed",
		"mode", mode,
		"iterations", iterations,
		"elapsed", elapsed,
		"per_op", perOp,
	)
}

// LogVerify logs the outcome of a kernel cross-check.
func (l *Logger) LogVerify(ctx context.Context, reference string, tolerance float32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "verification failed",
			"reference", reference,
			"tolerance", tolerance,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "verification passed",
		"reference", reference,
		"tolerance", tolerance,
	)
}
