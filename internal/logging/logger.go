// Package logging builds the slog loggers used for diagnostics.
//
// Diagnostics always go to their own writer (stderr in the binaries) so they
// never mix with site map output on stdout.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config configures a diagnostics logger.
// A zero-value Config writes Info+ text lines to stderr.
type Config struct {
	Level  string    // debug, info, warn or error
	JSON   bool      // JSON lines instead of key=value text
	Output io.Writer // Defaults to os.Stderr
	// Timestamps adds the time attribute, which text output omits by default
	// to keep diagnostic lines short.
	Timestamps bool
}

// New creates a logger from cfg. An unknown level falls back to info.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if !cfg.Timestamps {
		opts.ReplaceAttr = dropTime
	}

	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel converts a level name to a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", name)
	}
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
