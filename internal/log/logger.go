// Package log provides the application-wide logging facade, backed by
// logrus. Interactive rendering never goes through here; this is for
// diagnostics, warnings during the combine pass, and debug traces.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// SetDebug enables or disables debug-level logging
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Info logs a formatted informational message
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a formatted message at debug level
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a formatted warning message
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs a formatted error message
func Error(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// WithField returns an entry with a single structured field attached
func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}
