package store

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-contentstore/internal/markdown"
)

const documentNotFoundCode = "DOCUMENT_NOT_FOUND"

// notFoundError tags a missing-path failure so callers can branch on
// category instead of matching fs error strings.
func notFoundError(err error, path string) error {
	return goerrors.Wrap(err, goerrors.CategoryNotFound, fmt.Sprintf("document %s not found", path)).
		WithTextCode(documentNotFoundCode)
}

// IsNotFound reports whether err represents a missing document path.
func IsNotFound(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryNotFound)
}

// IsParseError reports whether err represents malformed front matter. Kept
// here as well so store consumers need a single import for both predicates.
func IsParseError(err error) bool {
	return markdown.IsParseError(err)
}
