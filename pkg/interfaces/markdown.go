package interfaces

import (
	"context"
	"time"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across calls so hosts can share a
// single parser instance without additional locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// MarkdownService exposes the file workflows used by the content store:
// loading Markdown documents from disk and converting their bodies to HTML.
type MarkdownService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
}

// ContentStore exposes the published-content contract consumed by the
// generator and the CLI tools. Listings order documents by front-matter
// date descending; drafts are excluded unless explicitly requested.
type ContentStore interface {
	List(ctx context.Context, opts ListOptions) ([]*Document, error)
	Get(ctx context.Context, path string) (*Document, error)
}

// ListOptions controls directory listings.
type ListOptions struct {
	// IncludeDrafts keeps documents flagged draft = true in the result.
	IncludeDrafts bool
	// Pattern overrides the store's configured file glob (defaults to "*.md").
	Pattern string
	// Recursive overrides the store's configured directory traversal.
	Recursive *bool
}

// Document represents a Markdown file with parsed metadata and content. The
// struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	Path        string
	FrontMatter FrontMatter
	Body        []byte
	BodyHTML    []byte
	// LastModified is the filesystem mtime, distinct from FrontMatter.Updated
	// which is author-declared.
	LastModified time.Time
	// Checksum stores a SHA-256 digest of the original file content so build
	// manifests can detect changes without re-reading unchanged files.
	Checksum []byte
}

// FrontMatter models the TOML metadata header of a document. Title and Date
// are required; Updated falls back to Date when the author omits it. The
// Custom map keeps unrecognised keys available to templates, and Raw records
// every key present in the source header so serialization can round-trip.
type FrontMatter struct {
	Title       string         `toml:"title" json:"title"`
	Date        time.Time      `toml:"date" json:"date"`
	Updated     time.Time      `toml:"updated" json:"updated"`
	Description string         `toml:"description" json:"description"`
	Draft       bool           `toml:"draft" json:"draft"`
	Custom      map[string]any `toml:"-" json:"custom,omitempty"`
	Raw         map[string]any `toml:"-" json:"-"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Parser    ParseOptions
}
