// Package logging builds the structured logger used by charcount.
//
// The TUI owns stdout and stderr while it runs, so log records go to a file
// or nowhere at all.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Level returns the log level selected by the LOG_LEVEL environment
// variable. Supported levels: debug, info, warn, error. Default: info.
func Level() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
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

// New creates a text logger writing to w.
func New(w io.Writer) *slog.Logger {
	level := Level()
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OpenFile creates a logger appending to path. The returned close function
// must be called when the program exits. An empty path yields a discarding
// logger and a no-op close.
func OpenFile(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	return New(f), f.Close, nil
}
