package mocks

import (
	"fmt"
	"sync"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/logging"
)

// LogEntry is a single message recorded by the Logger mock.
type LogEntry struct {
	Level      string
	Message    string
	Escalation logging.Escalation
}

// Logger is a mocked implementation of 'logging.Logger' that records every message it receives.
type Logger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

func (l *Logger) record(level string, escalation logging.Escalation, format string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.Entries = append(l.Entries, LogEntry{
		Level:      level,
		Message:    fmt.Sprintf(format, a...),
		Escalation: escalation,
	})
}

// Debugf implements logging.Logger
func (l *Logger) Debugf(format string, a ...any) {
	l.record("debug", logging.KeepRunning, format, a...)
}

// Progressf implements logging.Logger
func (l *Logger) Progressf(format string, a ...any) {
	l.record("progress", logging.KeepRunning, format, a...)
}

// Infof implements logging.Logger
func (l *Logger) Infof(format string, a ...any) {
	l.record("info", logging.KeepRunning, format, a...)
}

// Warnf implements logging.Logger
func (l *Logger) Warnf(format string, a ...any) {
	l.record("warn", logging.KeepRunning, format, a...)
}

// Errorf implements logging.Logger
func (l *Logger) Errorf(format string, a ...any) {
	l.record("error", logging.EscalateFailure, format, a...)
}

// Failuref implements logging.Logger
func (l *Logger) Failuref(escalation logging.Escalation, format string, a ...any) {
	l.record("failure", escalation, format, a...)
}

// Levels returns the levels of all recorded entries, in order.
func (l *Logger) Levels() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	levels := make([]string, len(l.Entries))
	for i, entry := range l.Entries {
		levels[i] = entry.Level
	}

	return levels
}

// Messages returns the messages of all recorded entries, in order.
func (l *Logger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	messages := make([]string, len(l.Entries))
	for i, entry := range l.Entries {
		messages[i] = entry.Message
	}

	return messages
}
