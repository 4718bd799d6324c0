// The package logger defines a simple logger with INFO, WARN and ERROR prints.
// Only the command line layer logs; the estimators stay silent.
package logger

import (
	"io"
	"log"
)

type Aggregate struct {
	InfoLogger  *log.Logger
	WarnLogger  *log.Logger
	ErrorLogger *log.Logger
}

// New() returns an initialized Logger printing to out.
func New(out io.Writer) *Aggregate {
	return &Aggregate{
		InfoLogger:  log.New(out, "INFO: ", log.LstdFlags),
		WarnLogger:  log.New(out, "WARN: ", log.LstdFlags),
		ErrorLogger: log.New(out, "ERROR: ", log.LstdFlags),
	}
}

// Discard() returns a Logger that prints nothing, for non-verbose runs.
func Discard() *Aggregate {
	return New(io.Discard)
}

// Info() prints an INFO log
func (l *Aggregate) Info(s string, v ...interface{}) {
	l.InfoLogger.Printf(s, v...)
}

// Warn() prints a WARN log
func (l *Aggregate) Warn(s string, v ...interface{}) {
	l.WarnLogger.Printf(s, v...)
}

// Error() prints an ERROR log
func (l *Aggregate) Error(s string, v ...interface{}) {
	l.ErrorLogger.Printf(s, v...)
}
