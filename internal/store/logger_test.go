package store

import (
	"context"
	"sync"

	"github.com/goliatone/go-contentstore/pkg/interfaces"
)

// recordingLogger captures log messages so tests can assert on the listing
// skip policy without a real provider.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func recordLogger() *recordingLogger {
	return &recordingLogger{}
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) count(msg string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, m := range l.messages {
		if m == msg {
			n++
		}
	}
	return n
}

func (l *recordingLogger) Trace(msg string, _ ...any) { l.record(msg) }
func (l *recordingLogger) Debug(msg string, _ ...any) { l.record(msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.record(msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.record(msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.record(msg) }
func (l *recordingLogger) Fatal(msg string, _ ...any) { l.record(msg) }

func (l *recordingLogger) WithFields(map[string]any) interfaces.Logger { return l }
func (l *recordingLogger) WithContext(context.Context) interfaces.Logger {
	return l
}
