// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/log"
)

// LevelForMonitor maps the --monitor verbosity onto a log level:
// 0 warnings only, 1 info, 2 and above debug.
func LevelForMonitor(monitor int) log.Level {
	switch {
	case monitor >= 2:
		return log.DebugLevel
	case monitor == 1:
		return log.InfoLevel
	default:
		return log.WarnLevel
	}
}

// NewLogger returns a diagnostics logger writing to dst.
func NewLogger(dst io.Writer, monitor int) *log.Logger {
	logger := log.NewWithOptions(dst, log.Options{
		Prefix:          "fasta2debruijn",
		ReportTimestamp: monitor > 0,
	})
	logger.SetLevel(LevelForMonitor(monitor))
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
