// Package logger configures the process-wide structured logger
package logger

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// Options configures New.
type Options struct {
	// Path is the log file. Old files are rotated next to it.
	Path  string
	Debug bool
}

// New returns a logfmt logger writing to a size-rotated file together with
// the closer of that file. The terminal belongs to the TUI so nothing is
// written to stderr.
func New(opts Options) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	return slog.New(NewHandler(w, opts.Debug)), w
}

// NewHandler returns a charm log handler that writes logfmt records to w.
func NewHandler(w io.Writer, debug bool) slog.Handler {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		ReportCaller:    debug,
		Prefix:          "tempus",
	})
}

// Init installs a file logger as the slog default and returns its closer.
func Init(opts Options) io.Closer {
	l, closer := New(opts)

	slog.SetDefault(l)

	return closer
}
