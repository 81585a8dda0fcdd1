package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// newLogger returns a structured logger writing to w at the given level.
// Records are rendered by charmbracelet/log as text, or as JSON when json
// is set.
func newLogger(w io.Writer, level string, json bool) (*slog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           lvl,
	}
	if json {
		opts.Formatter = charmlog.JSONFormatter
	}

	return slog.New(charmlog.NewWithOptions(w, opts)), nil
}
