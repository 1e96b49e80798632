// Package logging builds the structured logger shared by the CLI and the
// terminal platform.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/config"
)

// Options controls logger construction.
type Options struct {
	Level string // debug, info, warn, error; empty means info
	File  string // Append to this file instead of Writer when set
	// Writer is used when File is empty. Defaults to stderr.
	Writer io.Writer
}

// New creates a logger with the bricks prefix and timestamps.
// The returned closer releases the log file, if any.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var (
		w                = opts.Writer
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" {
		path, err := config.ExpandHome(opts.File)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bricks",
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
