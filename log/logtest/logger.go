// Package logtest implements support for testing code that logs.
package logtest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jacobpatterson1549/fetch-happen/log"
)

// DiscardLogger is a Logger that writes nothing.
var DiscardLogger log.Logger = discardLogger{}

// discardLogger drops every message.
type discardLogger struct{}

// Printf implements the log.Logger interface
func (discardLogger) Printf(format string, v ...interface{}) {
	// NOOP
}

// Logger records each message so tests can inspect what was logged.
// It is safe for concurrent requests to log to it.
type Logger struct {
	mu    sync.RWMutex
	lines []string
}

// Logger implements the log.Logger interface.
var _ log.Logger = NewLogger()

// NewLogger creates a Logger that has recorded nothing.
func NewLogger() *Logger {
	return new(Logger)
}

// Printf records the formatted message as a line.
func (l *Logger) Printf(format string, v ...interface{}) {
	line := strings.TrimSuffix(fmt.Sprintf(format, v...), "\n")
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

// Lines returns the recorded messages in the order they were logged.
func (l *Logger) Lines() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	lines := make([]string, len(l.lines))
	copy(lines, l.lines)
	return lines
}

// String returns the recorded messages, one per line.
func (l *Logger) String() string {
	return strings.Join(l.Lines(), "\n")
}

// Empty determines whether nothing has been logged.
func (l *Logger) Empty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.lines) == 0
}

// Reset forgets the recorded messages.
func (l *Logger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
}
