// Package contentstore exposes a filesystem-backed Markdown content store
// for static sites: front-matter parsing, draft-aware date-ordered listings,
// path-addressed lookups, and an optional static build surface. The files on
// disk stay authoritative; nothing is cached or persisted elsewhere.
package contentstore

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-contentstore/internal/generator"
	"github.com/goliatone/go-contentstore/internal/logging"
	"github.com/goliatone/go-contentstore/internal/logging/gologger"
	"github.com/goliatone/go-contentstore/internal/markdown"
	"github.com/goliatone/go-contentstore/internal/store"
	"github.com/goliatone/go-contentstore/pkg/interfaces"
)

// ErrGeneratorDisabled is returned by Build when the generator feature is off.
var ErrGeneratorDisabled = errors.New("contentstore: generator is disabled")

// IsNotFound reports whether err represents a missing document path.
func IsNotFound(err error) bool { return store.IsNotFound(err) }

// IsParseError reports whether err represents malformed front matter.
func IsParseError(err error) bool { return store.IsParseError(err) }

// Option customises facade construction.
type Option func(*Store)

// WithLoggerProvider overrides the provider derived from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *Store) {
		s.provider = provider
	}
}

// WithMarkdownParser swaps the goldmark-backed parser for a custom one.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(s *Store) {
		s.parser = parser
	}
}

// Store wires the markdown pipeline, the content store, and the generator
// behind a single facade.
type Store struct {
	cfg      Config
	provider interfaces.LoggerProvider
	parser   interfaces.MarkdownParser

	markdown  *markdown.Service
	content   *store.Service
	generator generator.Service
}

// New validates cfg and assembles the content store runtime.
func New(cfg Config, opts ...Option) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Store{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.provider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		s.provider = provider
	}

	markdownSvc, err := markdown.NewService(markdown.Config{
		BasePath:  cfg.Content.Dir,
		Pattern:   cfg.Content.Pattern,
		Recursive: cfg.Content.Recursive,
		Parser: interfaces.ParseOptions{
			Extensions: cfg.Markdown.Extensions,
			HardWraps:  cfg.Markdown.HardWraps,
			Sanitize:   cfg.Markdown.Sanitize,
			SafeMode:   cfg.Markdown.SafeMode,
		},
	}, s.parser)
	if err != nil {
		return nil, err
	}
	s.markdown = markdownSvc

	s.content = store.NewService(markdownSvc.Loader(), logging.ContentLogger(s.provider))

	if cfg.Generator.Enabled {
		gen, err := generator.NewService(generator.Config{
			OutputDir:     cfg.Generator.OutputDir,
			BaseURL:       cfg.Generator.BaseURL,
			CleanBuild:    cfg.Generator.CleanBuild,
			WriteManifest: cfg.Generator.WriteManifest,
		}, generator.Dependencies{
			Store:    s.content,
			Markdown: markdownSvc,
			Logger:   logging.GeneratorLogger(s.provider),
		})
		if err != nil {
			return nil, err
		}
		s.generator = gen
	}

	return s, nil
}

// List returns documents ordered by date descending. Drafts are excluded
// unless opts.IncludeDrafts is set; malformed files are skipped with a
// warning.
func (s *Store) List(ctx context.Context, opts interfaces.ListOptions) ([]*interfaces.Document, error) {
	return s.content.List(ctx, opts)
}

// Get loads a single document by its path relative to the content directory.
func (s *Store) Get(ctx context.Context, path string) (*interfaces.Document, error) {
	return s.content.Get(ctx, path)
}

// Lint reports the documents a published listing would skip.
func (s *Store) Lint(ctx context.Context, dir string) ([]store.Issue, error) {
	return s.content.Lint(ctx, dir)
}

// Render converts a document's Markdown body into HTML in place.
func (s *Store) Render(ctx context.Context, doc *interfaces.Document) ([]byte, error) {
	return s.markdown.RenderDocument(ctx, doc, interfaces.ParseOptions{})
}

// Build runs a static build when the generator feature is enabled.
func (s *Store) Build(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
	if s.generator == nil {
		return nil, ErrGeneratorDisabled
	}
	return s.generator.Build(ctx, opts)
}

// Markdown exposes the underlying markdown service.
func (s *Store) Markdown() interfaces.MarkdownService { return s.markdown }

// Content exposes the underlying content store service.
func (s *Store) Content() *store.Service { return s.content }

// Generator exposes the static build service; nil when disabled.
func (s *Store) Generator() generator.Service { return s.generator }

// LoggerProvider exposes the configured logging provider so hosts can scope
// additional module loggers.
func (s *Store) LoggerProvider() interfaces.LoggerProvider { return s.provider }

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "noop":
		return nil, nil
	case "", "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, ErrLoggingProviderUnknown
	}
}
