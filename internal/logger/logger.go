// Package logger builds the process logger.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a leveled logger. Production output is JSON;
// development output is human readable.
func New(w io.Writer, level string, stage string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := log.Options{
		Level:           lvl,
		Prefix:          "battleship",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}
	if stage == "prod" {
		opts.Formatter = log.JSONFormatter
		opts.TimeFormat = time.RFC3339
	}
	return log.NewWithOptions(w, opts), nil
}
