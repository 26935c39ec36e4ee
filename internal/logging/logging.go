// Package logging builds the charmbracelet/log loggers used by the CLI, the
// game and the SSH server.
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

// New creates a logger writing to w with timestamps and the given level.
// An empty level means info.
func New(w io.Writer, prefix, level string) (*log.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// Open creates a logger appending to the file at path. The returned close func
// must be called when done. An empty path discards all output.
func Open(path, prefix, level string) (*log.Logger, func() error, error) {
	if path == "" {
		logger, err := New(io.Discard, prefix, level)
		return logger, func() error { return nil }, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	logger, err := New(f, prefix, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
