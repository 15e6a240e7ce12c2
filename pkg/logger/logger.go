package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a text-formatted logger writing to stderr. Stdout is
// reserved for the checker's diagnostics, which CI pipelines consume.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
