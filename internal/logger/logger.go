package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Fields carries structured context for a log entry
type Fields map[string]interface{}

// Init initializes the logger with the specified level
func Init(level string) error {
	// Set formatter
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Parse and set log level
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	return nil
}

// SetFormat switches between "text" and "json" output
func SetFormat(format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func entry(fields []Fields) *logrus.Entry {
	e := logrus.NewEntry(log)
	for _, f := range fields {
		if f != nil {
			e = e.WithFields(logrus.Fields(f))
		}
	}
	return e
}

// Debug logs a debug message
func Debug(msg string, fields ...Fields) {
	entry(fields).Debug(msg)
}

// Info logs an info message
func Info(msg string, fields ...Fields) {
	entry(fields).Info(msg)
}

// Warn logs a warning
func Warn(msg string, fields ...Fields) {
	entry(fields).Warn(msg)
}

// Error logs an error message
func Error(msg string, err error, fields ...Fields) {
	entry(fields).WithError(err).Error(msg)
}
