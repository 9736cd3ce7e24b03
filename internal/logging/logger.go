// Package logging builds the charmbracelet/log loggers used by swcrawl.
//
// The TUI owns the terminal, so interactive sessions log to a file; the
// headless commands log to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string    // text (default), json or logfmt
	Path   string    // when set, output is appended to this file
	Output io.Writer // used when Path is empty; defaults to os.Stderr
}

// New constructs a logger. The returned close function releases the log
// file, if one was opened, and is always safe to call.
func New(opts Options) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	formatter, err := parseFormat(opts.Format)
	if err != nil {
		return nil, noop, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	closeFn := noop
	if path := strings.TrimSpace(opts.Path); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, noop, fmt.Errorf("ensure log directory: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		out = file
		closeFn = file.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "swcrawl",
	})
	return logger, closeFn, nil
}

// ParseLevel maps a config level to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func parseFormat(format string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text", "console":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("log format: unsupported value %q", format)
	}
}
