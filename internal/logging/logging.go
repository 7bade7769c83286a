// Package logging constructs loggers for command-line tools.
package logging

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing plain text to stderr. Debug level is
// enabled when the TABULI_DEBUG environment variable parses as true.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	debug, err := strconv.ParseBool(os.Getenv("TABULI_DEBUG"))
	if err == nil && debug {
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}
