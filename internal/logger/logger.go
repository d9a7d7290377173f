// Package logger provides structured logging for the pipeline.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger provides structured logging functionality.
type Logger struct {
	internal *slog.Logger
	file     *os.File
}

// New creates a new logger writing to stderr at the specified level.
func New(level string) *Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	return &Logger{
		internal: slog.New(slog.NewTextHandler(os.Stderr, opts)),
	}
}

// NewWithFile creates a logger that writes to stderr and tees every record
// into the given log file. An empty path disables the file tee.
func NewWithFile(level, path string) (*Logger, error) {
	if path == "" {
		return New(level), nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	out := io.MultiWriter(os.Stderr, file)

	return &Logger{
		internal: slog.New(slog.NewTextHandler(out, opts)),
		file:     file,
	}, nil
}

// NewWithHandler creates a logger backed by a custom handler. Tests use this
// to capture emitted diagnostics.
func NewWithHandler(handler slog.Handler) *Logger {
	return &Logger{
		internal: slog.New(handler),
	}
}

// Close releases the log file if one is attached.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	return l.file.Close()
}

// Info logs an info level message.
func (l *Logger) Info(msg string, args ...any) {
	l.internal.Info(msg, args...)
}

// Error logs an error level message.
func (l *Logger) Error(msg string, args ...any) {
	l.internal.Error(msg, args...)
}

// Debug logs a debug level message.
func (l *Logger) Debug(msg string, args ...any) {
	l.internal.Debug(msg, args...)
}

// Warn logs a warning level message.
func (l *Logger) Warn(msg string, args ...any) {
	l.internal.Warn(msg, args...)
}

// With creates a child logger with the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		internal: l.internal.With(args...),
		file:     l.file,
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
