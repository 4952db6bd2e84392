// Package logging configures the diagnostics logger. User-facing output
// goes to stdout through fmt; the logger writes to stderr.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w at the named level. Unknown level
// names fall back to warn.
func New(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// Default returns a warn-level logger on stderr.
func Default() *logrus.Logger {
	return New(os.Stderr, "warn")
}
