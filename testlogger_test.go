package headers

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is one call captured by TestLogger.
type LogEntry struct {
	Level   slog.Level
	Message string
	Args    []any
}

// TestLogger is a LogBackend that records every call for later inspection.
type TestLogger struct {
	mu      sync.Mutex
	entries []LogEntry
	next    int
}

func NewTestLogger() *TestLogger {
	return &TestLogger{}
}

func (l *TestLogger) Debug(msg string, args ...any) { l.Log(context.Background(), slog.LevelDebug, msg, args...) }
func (l *TestLogger) Info(msg string, args ...any)  { l.Log(context.Background(), slog.LevelInfo, msg, args...) }
func (l *TestLogger) Warn(msg string, args ...any)  { l.Log(context.Background(), slog.LevelWarn, msg, args...) }
func (l *TestLogger) Error(msg string, args ...any) { l.Log(context.Background(), slog.LevelError, msg, args...) }

func (l *TestLogger) Log(_ context.Context, level slog.Level, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: msg, Args: append([]any(nil), args...)})
}

// Next returns the oldest entry not yet consumed, or nil.
func (l *TestLogger) Next() *LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.next >= len(l.entries) {
		return nil
	}
	e := l.entries[l.next]
	l.next++
	return &e
}

// Count returns the number of entries not yet consumed.
func (l *TestLogger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries) - l.next
}

func (l *TestLogger) HasLevel(level slog.Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries[l.next:] {
		if e.Level == level {
			return true
		}
	}
	return false
}

func (l *TestLogger) FindByMessage(msg string) []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var found []LogEntry
	for _, e := range l.entries[l.next:] {
		if e.Message == msg {
			found = append(found, e)
		}
	}
	return found
}

// Entries returns a copy of the entries not yet consumed.
func (l *TestLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries)-l.next)
	copy(out, l.entries[l.next:])
	return out
}

func (l *TestLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.next = 0
}
