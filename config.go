package contentstore

import (
	"errors"
	"strings"
)

var (
	// ErrContentDirRequired indicates no content directory was configured.
	ErrContentDirRequired = errors.New("config: content directory is required")
	// ErrLoggingProviderUnknown indicates an unrecognised logging provider name.
	ErrLoggingProviderUnknown = errors.New("config: unknown logging provider")
	// ErrLoggingFormatInvalid indicates an unrecognised logging format.
	ErrLoggingFormatInvalid = errors.New("config: invalid logging format")
	// ErrLoggingLevelInvalid indicates an unrecognised logging level.
	ErrLoggingLevelInvalid = errors.New("config: invalid logging level")
	// ErrGeneratorOutputRequired indicates the generator is enabled without an output directory.
	ErrGeneratorOutputRequired = errors.New("config: generator output directory is required when the generator is enabled")
)

// Config captures the runtime configuration for the content store facade.
type Config struct {
	Content   ContentConfig
	Markdown  MarkdownConfig
	Generator GeneratorConfig
	Logging   LoggingConfig
}

// ContentConfig locates and scopes the Markdown content tree.
type ContentConfig struct {
	// Dir is the root directory holding Markdown documents.
	Dir string
	// Pattern limits discovery to matching files (defaults to "*.md").
	Pattern string
	// Recursive controls whether nested directories are scanned.
	Recursive bool
}

// MarkdownConfig carries default parse options for HTML rendering.
type MarkdownConfig struct {
	Extensions []string
	HardWraps  bool
	Sanitize   bool
	SafeMode   bool
}

// GeneratorConfig controls the static build surface.
type GeneratorConfig struct {
	Enabled       bool
	OutputDir     string
	BaseURL       string
	CleanBuild    bool
	WriteManifest bool
}

// LoggingConfig selects and tunes the logging provider.
type LoggingConfig struct {
	// Provider is "gologger" (default) or "noop".
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns a configuration suitable for a conventional layout:
// content under ./content, output under ./public, JSON logs at info level.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:       "content",
			Pattern:   "*.md",
			Recursive: true,
		},
		Generator: GeneratorConfig{
			Enabled:       true,
			OutputDir:     "public",
			WriteManifest: true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
	}
}

// Validate reports the first configuration problem encountered.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Content.Dir) == "" {
		return ErrContentDirRequired
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Provider)) {
	case "", "gologger", "noop":
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	if c.Generator.Enabled && strings.TrimSpace(c.Generator.OutputDir) == "" {
		return ErrGeneratorOutputRequired
	}

	return nil
}
