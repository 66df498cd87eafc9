// Package logging sets up the charmbracelet/log logger used by the TUI.
//
// The terminal belongs to bubbletea while the app runs, so log output goes
// to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the logger.
type Options struct {
	Level  string // debug, info, warn, error
	File   string // empty discards all output
	Prefix string
}

// New creates a logger for opts. The returned closer releases the log
// file and is never nil.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything. Used by tests and as
// the App default.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
