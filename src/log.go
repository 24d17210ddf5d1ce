package s2proj

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger is what the command line tools log through.  Debug output only
// with verbose.  The library itself never logs.
func NewLogger(w io.Writer, prefix string, verbose bool) *log.Logger {
	var logger = log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  log.InfoLevel,
	})

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}
