// Package logger constructs the slog loggers the tool uses for advisory
// messages. Diagnostics go to stdout and are the tool's product; logs go
// to stderr so the two streams can be consumed independently.
package logger
