// Package generator turns the content store into a static site: one HTML
// page per published document, a date-ordered index, and a build manifest.
// Theming, navigation, and feeds are intentionally absent; the page shell is
// a fixed minimal template.
package generator

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-contentstore/internal/logging"
	"github.com/goliatone/go-contentstore/pkg/interfaces"
)

var (
	// ErrStoreRequired indicates the generator was constructed without a content store.
	ErrStoreRequired = errors.New("generator: content store is required")
	// ErrMarkdownRequired indicates the generator was constructed without a markdown service.
	ErrMarkdownRequired = errors.New("generator: markdown service is required")
	// ErrOutputDirRequired indicates no output directory was configured.
	ErrOutputDirRequired = errors.New("generator: output directory is required")
)

// Service describes the static site generator contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	Clean(ctx context.Context) error
}

// Config captures runtime behaviour toggles for the generator.
type Config struct {
	OutputDir     string
	BaseURL       string
	CleanBuild    bool
	WriteManifest bool
}

// Dependencies carries the collaborators a generator needs.
type Dependencies struct {
	Store    interfaces.ContentStore
	Markdown interfaces.MarkdownService
	Logger   interfaces.Logger
}

// BuildOptions narrows the scope of a generator run.
type BuildOptions struct {
	// IncludeDrafts renders documents flagged draft = true, for previews.
	IncludeDrafts bool
	// DryRun renders everything but writes nothing.
	DryRun bool
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	BuildID      uuid.UUID
	PagesBuilt   int
	PagesSkipped int
	Duration     time.Duration
	Rendered     []RenderedPage
}

// RenderedPage records where a document landed in the output tree.
type RenderedPage struct {
	Source   string
	Slug     string
	Output   string
	Checksum string
	Title    string
	Date     time.Time
}

type service struct {
	cfg      Config
	store    interfaces.ContentStore
	markdown interfaces.MarkdownService
	logger   interfaces.Logger

	pageTmpl  *template.Template
	indexTmpl *template.Template
}

// NewService wires a static site generator with the supplied configuration
// and dependencies.
func NewService(cfg Config, deps Dependencies) (Service, error) {
	if deps.Store == nil {
		return nil, ErrStoreRequired
	}
	if deps.Markdown == nil {
		return nil, ErrMarkdownRequired
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, ErrOutputDirRequired
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &service{
		cfg:       cfg,
		store:     deps.Store,
		markdown:  deps.Markdown,
		logger:    logger,
		pageTmpl:  template.Must(template.New("page").Parse(pageTemplate)),
		indexTmpl: template.Must(template.New("index").Parse(indexTemplate)),
	}, nil
}

// Build renders every listed document into OutputDir. Listing order (date
// descending) carries through to the generated index.
func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	started := time.Now()

	result := &BuildResult{
		BuildID: uuid.New(),
	}
	logger := logging.WithFields(s.logger, map[string]any{
		"build_id": result.BuildID.String(),
	})

	if s.cfg.CleanBuild && !opts.DryRun {
		if err := s.Clean(ctx); err != nil {
			return nil, err
		}
	}

	docs, err := s.store.List(ctx, interfaces.ListOptions{IncludeDrafts: opts.IncludeDrafts})
	if err != nil {
		return nil, fmt.Errorf("generator: list documents: %w", err)
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := s.buildPage(ctx, doc, opts.DryRun)
		if err != nil {
			return nil, err
		}
		result.Rendered = append(result.Rendered, *page)
		result.PagesBuilt++
	}

	if !opts.DryRun {
		if err := s.writeIndex(docs); err != nil {
			return nil, err
		}
		if s.cfg.WriteManifest {
			if err := s.writeManifest(result); err != nil {
				return nil, err
			}
		}
	}

	result.Duration = time.Since(started)
	logger.Info("generator.build.completed",
		"pages_built", result.PagesBuilt,
		"duration_ms", result.Duration.Milliseconds(),
		"dry_run", opts.DryRun,
	)
	return result, nil
}

// Clean removes the configured output directory.
func (s *service) Clean(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.RemoveAll(s.cfg.OutputDir); err != nil {
		return fmt.Errorf("generator: clean %s: %w", s.cfg.OutputDir, err)
	}
	return nil
}

func (s *service) buildPage(ctx context.Context, doc *interfaces.Document, dryRun bool) (*RenderedPage, error) {
	if len(doc.BodyHTML) == 0 {
		if _, err := s.markdown.RenderDocument(ctx, doc, interfaces.ParseOptions{}); err != nil {
			return nil, fmt.Errorf("generator: render %s: %w", doc.Path, err)
		}
	}

	pageSlug := slugFor(doc)
	output := pagePath(pageSlug)

	page := &RenderedPage{
		Source:   doc.Path,
		Slug:     pageSlug,
		Output:   output,
		Checksum: hex.EncodeToString(doc.Checksum),
		Title:    doc.FrontMatter.Title,
		Date:     doc.FrontMatter.Date,
	}

	if dryRun {
		return page, nil
	}

	data := pageData{
		Title:       doc.FrontMatter.Title,
		Description: doc.FrontMatter.Description,
		Date:        doc.FrontMatter.Date,
		Updated:     doc.FrontMatter.Updated,
		Body:        template.HTML(doc.BodyHTML),
	}

	target := filepath.Join(s.cfg.OutputDir, filepath.FromSlash(output))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, fmt.Errorf("generator: create output dir for %s: %w", output, err)
	}

	file, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("generator: create %s: %w", target, err)
	}
	defer file.Close()

	if err := s.pageTmpl.Execute(file, data); err != nil {
		return nil, fmt.Errorf("generator: render template for %s: %w", output, err)
	}

	logging.WithDocumentContext(s.logger, doc.Path, "build").
		Debug("generator.page.written", "output", output)
	return page, nil
}

func (s *service) writeIndex(docs []*interfaces.Document) error {
	entries := make([]indexEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, indexEntry{
			Title:       doc.FrontMatter.Title,
			Description: doc.FrontMatter.Description,
			Date:        doc.FrontMatter.Date,
			Href:        "./" + slugFor(doc) + "/",
		})
	}

	target := filepath.Join(s.cfg.OutputDir, "index.html")
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("generator: create output dir: %w", err)
	}

	file, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("generator: create index: %w", err)
	}
	defer file.Close()

	if err := s.indexTmpl.Execute(file, indexData{Entries: entries}); err != nil {
		return fmt.Errorf("generator: render index: %w", err)
	}
	return nil
}

type pageData struct {
	Title       string
	Description string
	Date        time.Time
	Updated     time.Time
	Body        template.HTML
}

type indexData struct {
	Entries []indexEntry
}

type indexEntry struct {
	Title       string
	Description string
	Date        time.Time
	Href        string
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{- if .Description}}
<meta name="description" content="{{.Description}}">
{{- end}}
</head>
<body>
<article>
<h1>{{.Title}}</h1>
<time datetime="{{.Date.Format "2006-01-02"}}">{{.Date.Format "2006-01-02"}}</time>
{{.Body}}
</article>
</body>
</html>
`

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Index</title>
</head>
<body>
<ul>
{{- range .Entries}}
<li><a href="{{.Href}}">{{.Title}}</a> <time datetime="{{.Date.Format "2006-01-02"}}">{{.Date.Format "2006-01-02"}}</time></li>
{{- end}}
</ul>
</body>
</html>
`
