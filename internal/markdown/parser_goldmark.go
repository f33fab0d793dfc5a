package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-contentstore/pkg/interfaces"
)

// GoldmarkParser renders Markdown bodies to HTML through goldmark. It holds
// no mutable state, so a single instance can serve every document in a build
// without locking.
type GoldmarkParser struct {
	defaults interfaces.ParseOptions
}

// NewGoldmarkParser returns a parser whose defaults apply to plain Parse
// calls. With no extensions named, rendering enables GFM, autolinking, and
// task lists; raw HTML passes through unless a safety flag is set.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{defaults: defaults}
}

// Parse renders markdown with the parser's default options.
func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	return p.ParseWithOptions(markdown, p.defaults)
}

// ParseWithOptions renders markdown with opts in place of the defaults.
func (p *GoldmarkParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := buildEngine(opts).Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown parse: %w", err)
	}
	return buf.Bytes(), nil
}

func buildEngine(opts interfaces.ParseOptions) goldmark.Markdown {
	options := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}

	var render []renderer.Option
	if opts.HardWraps {
		render = append(render, html.WithHardWraps())
	}
	// Raw HTML is emitted only when neither SafeMode nor Sanitize is set.
	if !opts.SafeMode && !opts.Sanitize {
		render = append(render, html.WithUnsafe())
	}
	if len(render) > 0 {
		options = append(options, goldmark.WithRendererOptions(render...))
	}

	if exts := resolveExtensions(opts.Extensions); len(exts) > 0 {
		options = append(options, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(options...)
}

// extensionsByName maps configuration names to goldmark extenders. Names
// without an entry are dropped silently so a stale config value cannot take
// down rendering.
var extensionsByName = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

var defaultExtensions = []goldmark.Extender{
	extension.GFM,
	extension.Linkify,
	extension.TaskList,
}

func resolveExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return defaultExtensions
	}

	seen := make(map[string]struct{}, len(names))
	exts := make([]goldmark.Extender, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		ext, known := extensionsByName[key]
		if !known {
			continue
		}
		exts = append(exts, ext)
	}
	return exts
}
