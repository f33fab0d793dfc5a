package generator

import (
	"path"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-contentstore/pkg/interfaces"
)

// slugFor derives the output slug for a document from its title, falling
// back to the file stem when the title does not normalise to anything.
func slugFor(doc *interfaces.Document) string {
	if normalized, err := slug.Normalize(doc.FrontMatter.Title); err == nil && normalized != "" {
		return normalized
	}

	stem := strings.TrimSuffix(path.Base(doc.Path), path.Ext(doc.Path))
	if normalized, err := slug.Normalize(stem); err == nil && normalized != "" {
		return normalized
	}
	return stem
}

// pagePath maps a slug to its location in the output tree. Every page is a
// directory index so URLs stay extension-free.
func pagePath(pageSlug string) string {
	return path.Join(pageSlug, "index.html")
}
