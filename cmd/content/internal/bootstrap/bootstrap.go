// Package bootstrap assembles the content store runtime for the CLI tools so
// each main stays a thin flag wrapper.
package bootstrap

import (
	"strings"

	contentstore "github.com/goliatone/go-contentstore"
)

// Options collects the flag values shared across the CLI tools.
type Options struct {
	ContentDir    string
	Pattern       string
	Recursive     bool
	OutputDir     string
	BaseURL       string
	CleanBuild    bool
	WriteManifest bool
	LogLevel      string
	LogFormat     string
	Quiet         bool
}

// BuildStore wires a content store from CLI options.
func BuildStore(opts Options) (*contentstore.Store, error) {
	cfg := contentstore.DefaultConfig()

	cfg.Content.Dir = opts.ContentDir
	if strings.TrimSpace(opts.Pattern) != "" {
		cfg.Content.Pattern = opts.Pattern
	}
	cfg.Content.Recursive = opts.Recursive

	cfg.Generator.Enabled = strings.TrimSpace(opts.OutputDir) != ""
	cfg.Generator.OutputDir = opts.OutputDir
	cfg.Generator.BaseURL = opts.BaseURL
	cfg.Generator.CleanBuild = opts.CleanBuild
	cfg.Generator.WriteManifest = opts.WriteManifest

	if opts.Quiet {
		cfg.Logging.Provider = "noop"
	}
	if strings.TrimSpace(opts.LogLevel) != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if strings.TrimSpace(opts.LogFormat) != "" {
		cfg.Logging.Format = opts.LogFormat
	}

	return contentstore.New(cfg)
}
