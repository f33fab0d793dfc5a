package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-contentstore/pkg/interfaces"
)

type stubProvider struct {
	logger interfaces.Logger
	names  []string
}

func (p *stubProvider) GetLogger(name string) interfaces.Logger {
	p.names = append(p.names, name)
	return p.logger
}

type fieldsLogger struct {
	fields map[string]any
}

func newFieldsLogger() *fieldsLogger {
	return &fieldsLogger{}
}

func (l *fieldsLogger) Trace(msg string, args ...any) {}
func (l *fieldsLogger) Debug(msg string, args ...any) {}
func (l *fieldsLogger) Info(msg string, args ...any)  {}
func (l *fieldsLogger) Warn(msg string, args ...any)  {}
func (l *fieldsLogger) Error(msg string, args ...any) {}
func (l *fieldsLogger) Fatal(msg string, args ...any) {}

func (l *fieldsLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := map[string]any{}
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &fieldsLogger{fields: merged}
}

func (l *fieldsLogger) WithContext(context.Context) interfaces.Logger { return l }

func TestModuleLoggerScopesName(t *testing.T) {
	provider := &stubProvider{logger: newFieldsLogger()}

	logger := ModuleLogger(provider, "store.content")

	if len(provider.names) != 1 || provider.names[0] != "store.content" {
		t.Fatalf("expected the provider to be asked for store.content, got %v", provider.names)
	}
	scoped, ok := logger.(*fieldsLogger)
	if !ok {
		t.Fatalf("expected the provider logger to be used, got %T", logger)
	}
	if scoped.fields["module"] != "store.content" {
		t.Fatalf("expected the module field to be attached, got %v", scoped.fields)
	}
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "store.content")
	if logger == nil {
		t.Fatalf("expected a usable logger without a provider")
	}
	// Must not panic.
	logger.Info("noop")
}

func TestWithFieldsSkipsEmptyInput(t *testing.T) {
	base := newFieldsLogger()
	if got := WithFields(base, nil); got != base {
		t.Fatalf("expected the same logger for empty fields")
	}
}

func TestWithDocumentContext(t *testing.T) {
	logger := WithDocumentContext(newFieldsLogger(), "posts/a.md", "list")

	scoped, ok := logger.(*fieldsLogger)
	if !ok {
		t.Fatalf("expected a fields logger, got %T", logger)
	}
	if scoped.fields["document_path"] != "posts/a.md" || scoped.fields["operation"] != "list" {
		t.Fatalf("unexpected fields %v", scoped.fields)
	}
}
