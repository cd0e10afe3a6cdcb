package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// The shared loggers are usable before InitLogger runs so library code
// never has to nil-check them. Info goes to stdout, errors to stderr,
// both with full timestamps.
var (
	InfoLogger  = newLogger(os.Stdout)
	ErrorLogger = newLogger(os.Stderr)
)

func newLogger(out *os.File) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// InitLogger applies the configured level to the info logger.
func InitLogger(level string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		InfoLogger.SetLevel(lvl)
	} else {
		InfoLogger.SetLevel(logrus.InfoLevel)
	}
}
