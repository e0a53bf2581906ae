// Package testutil provides test doubles shared by use-case and handler tests.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"ispdesk/internal/shared/logger"
)

// NewMockLogger returns a no-op logger.Interface for tests.
func NewMockLogger() logger.Interface {
	return &mockLogger{}
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) WithContext(context.Context) logger.Interface     { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// RecordingLogger captures messages so tests can assert on what was logged.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (r *RecordingLogger) record(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, fmt.Sprintf("%s: %s", level, msg))
}

// Entries returns the recorded "level: message" lines in order.
func (r *RecordingLogger) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *RecordingLogger) Debug(msg string, args ...any)                   { r.record("debug", msg) }
func (r *RecordingLogger) Info(msg string, args ...any)                    { r.record("info", msg) }
func (r *RecordingLogger) Warn(msg string, args ...any)                    { r.record("warn", msg) }
func (r *RecordingLogger) Error(msg string, args ...any)                   { r.record("error", msg) }
func (r *RecordingLogger) With(args ...any) logger.Interface               { return r }
func (r *RecordingLogger) Named(name string) logger.Interface              { return r }
func (r *RecordingLogger) WithContext(context.Context) logger.Interface     { return r }
func (r *RecordingLogger) Debugw(msg string, keysAndValues ...interface{}) { r.record("debug", msg) }
func (r *RecordingLogger) Infow(msg string, keysAndValues ...interface{})  { r.record("info", msg) }
func (r *RecordingLogger) Warnw(msg string, keysAndValues ...interface{})  { r.record("warn", msg) }
func (r *RecordingLogger) Errorw(msg string, keysAndValues ...interface{}) { r.record("error", msg) }
