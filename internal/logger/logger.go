// Package logger wraps charmbracelet/log with a file-backed default
// logger. The TUI owns stdout, so everything logs to a file instead.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Log is the shared default logger. It discards output until Init runs.
var Log = log.NewWithOptions(io.Discard, log.Options{
	ReportTimestamp: true,
	Formatter:       log.TextFormatter,
})

var output io.Writer = io.Discard

// Init points the default logger at the given file. Returns a close
// function for the caller to defer.
func Init(path string, level log.Level) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return func() {}, err
	}
	output = f
	Log = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           level,
	})
	return func() { _ = f.Close() }, nil
}

// New creates a prefixed logger sharing the default output and level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(output, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           Log.GetLevel(),
	})
}
