package utils

import (
	"io"

	"github.com/sirupsen/logrus"
)

var (
	debugMode bool
	logger    = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return l
}

// SetDebuggingMode sets the debugging mode to a certain status.
// If the status is on, the debug print function can be used.
func SetDebuggingMode(status bool) {
	debugMode = status
}

// SetOutput redirects the log output, mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Logger returns the shared logger.
func Logger() *logrus.Logger {
	return logger
}

// PrintDebug checks if the debugging mode is turned on and then prints the contents
func PrintDebug(format string, args ...interface{}) {
	if debugMode {
		logger.Debugf(format, args...)
	}
}

// PrintDebugWhen prints like PrintDebug, and also when enabled is set even if
// the global debugging mode is off. Components with their own debug switch
// use it so they do not have to flip the global one.
func PrintDebugWhen(enabled bool, format string, args ...interface{}) {
	if enabled || debugMode {
		logger.Debugf(format, args...)
	}
}
