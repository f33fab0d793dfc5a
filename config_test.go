package contentstore

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidateRequiresContentDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = "  "

	if err := cfg.Validate(); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestValidateRejectsUnknownLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"

	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestValidateRequiresOutputDirWhenGeneratorEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.OutputDir = ""

	if err := cfg.Validate(); !errors.Is(err, ErrGeneratorOutputRequired) {
		t.Fatalf("expected ErrGeneratorOutputRequired, got %v", err)
	}

	cfg.Generator.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled generator must not need an output dir: %v", err)
	}
}
