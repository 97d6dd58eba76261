// Package logger provides logging functionality for jiractl.
package logger

import (
	"fmt"
	"io"
	"sync"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger is a thread-safe logger that writes one line per message.
type writerLogger struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
}

// NewDefaultLogger creates a logger writing plain lines to w.
func NewDefaultLogger(w io.Writer) Logger {
	return &writerLogger{w: w}
}

// NewVerboseLogger creates a logger writing lines prefixed with [verbose] to w.
func NewVerboseLogger(w io.Writer) Logger {
	return &writerLogger{w: w, prefix: "[verbose] "}
}

// Logf writes a formatted message with thread safety.
func (l *writerLogger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, l.prefix+format+"\n", args...)
}
