// Package logging builds slog loggers from file and environment
// configuration. Output is line-delimited text or JSON on stdout.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New returns a logger configured by cfg, writing to stdout.
func New(cfg *Config) *slog.Logger {
	return slog.New(newHandler(cfg, os.Stdout))
}

func newHandler(cfg *Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.Level.slogLevel()}
	if cfg.Format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Level is a named severity threshold.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var slogLevels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

// Validate reports whether the level names a known severity.
func (l Level) Validate() error {
	if _, ok := slogLevels[l]; !ok {
		return fmt.Errorf("unknown log level %q", l)
	}
	return nil
}

// slogLevel maps the level onto slog, defaulting unknown values to info.
func (l Level) slogLevel() slog.Level {
	if lvl, ok := slogLevels[l]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// Format selects the handler encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Validate reports whether the format names a known encoding.
func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown log format %q", f)
	}
}
