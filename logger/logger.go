// Package logger defines the logging interface used by this module and two
// small implementations: a no-op logger and a leveled logger over the
// standard library.
package logger

import (
	"io"
	"log"
	"os"
)

// Ensure implementations satisfy the interface.
var (
	_ Logger = (*nopLogger)(nil)
	_ Logger = (*standardLogger)(nil)
)

// Logger represents an interface for a shared logger.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// NopLogger is a Logger that discards everything.
var NopLogger Logger = &nopLogger{}

type nopLogger struct{}

func (n *nopLogger) Debugf(format string, v ...interface{}) {}
func (n *nopLogger) Infof(format string, v ...interface{})  {}
func (n *nopLogger) Warnf(format string, v ...interface{})  {}
func (n *nopLogger) Errorf(format string, v ...interface{}) {}

var stderrLogger = NewStandardLogger(os.Stderr)

// Default returns the process-wide default logger, which writes to stderr.
func Default() Logger {
	return stderrLogger
}

// NewStandardLogger returns a Logger writing level-prefixed lines to w.
func NewStandardLogger(w io.Writer) Logger {
	return &standardLogger{logger: log.New(w, "", log.LstdFlags)}
}

// standardLogger is a basic implementation of Logger based on log.Logger.
type standardLogger struct {
	logger *log.Logger
}

func (s *standardLogger) Debugf(format string, v ...interface{}) {
	s.logger.Printf("DEBUG: "+format, v...)
}

func (s *standardLogger) Infof(format string, v ...interface{}) {
	s.logger.Printf("INFO:  "+format, v...)
}

func (s *standardLogger) Warnf(format string, v ...interface{}) {
	s.logger.Printf("WARN:  "+format, v...)
}

func (s *standardLogger) Errorf(format string, v ...interface{}) {
	s.logger.Printf("ERROR: "+format, v...)
}
