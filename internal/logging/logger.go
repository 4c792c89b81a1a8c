package logging

import (
	"io"
	"log"
	"os"
)

// Logger provides leveled logging on top of the standard logger
type Logger struct {
	verbose bool
	out     *log.Logger
}

// NewLogger creates a logger writing to stderr
func NewLogger(verbose bool) *Logger {
	return NewLoggerWithWriter(os.Stderr, verbose)
}

func NewLoggerWithWriter(w io.Writer, verbose bool) *Logger {
	return &Logger{
		verbose: verbose,
		out:     log.New(w, "", log.LstdFlags),
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewLoggerWithWriter(io.Discard, false)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	if l.verbose {
		l.out.Printf("[INFO] "+format, args...)
	}
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.out.Printf("[ERROR] "+format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbose {
		l.out.Printf("[DEBUG] "+format, args...)
	}
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.out.Printf("[WARNING] "+format, args...)
}
