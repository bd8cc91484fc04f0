// Package logging configures the process-wide slog logger used by the CLI and
// hands library code a logr view of the same handler.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-logr/logr"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Configure installs a process-wide slog default logger writing to stderr.
//
// Supported levels: debug, info, warn, error.
func Configure(level string) error {
	return ConfigureWriter(os.Stderr, level)
}

// ConfigureWriter is Configure with an explicit destination.
func ConfigureWriter(w io.Writer, level string) error {
	parsed, err := ParseLevel(level)
	if err != nil {
		return err
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parsed})
	slog.SetDefault(slog.New(h))
	return nil
}

// Logr bridges the current slog default handler to logr so sessions and the
// generator log through the same sink.
func Logr() logr.Logger {
	return logr.FromSlogHandler(slog.Default().Handler())
}

// ParseLevel maps a level name to its slog level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", LevelInfo:
		return slog.LevelInfo, nil
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", level)
	}
}
