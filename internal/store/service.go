// Package store implements the content store contract: date-ordered
// listings with draft filtering and partial-failure tolerance, and
// path-addressed lookups.
package store

import (
	"context"
	"errors"
	"io/fs"
	"sort"

	"github.com/goliatone/go-contentstore/internal/logging"
	"github.com/goliatone/go-contentstore/internal/markdown"
	"github.com/goliatone/go-contentstore/pkg/interfaces"
)

// Service lists and fetches Markdown documents through the markdown loader.
type Service struct {
	loader *markdown.Loader
	logger interfaces.Logger
}

var _ interfaces.ContentStore = (*Service)(nil)

// NewService constructs a content store over the supplied loader. A nil
// logger falls back to the no-op implementation.
func NewService(loader *markdown.Loader, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{
		loader: loader,
		logger: logger,
	}
}

// List scans the content directory and returns documents ordered by
// front-matter date descending (path ascending on equal dates). Documents
// flagged draft = true are excluded unless opts.IncludeDrafts is set. A file
// whose front matter is malformed is skipped with a warning so one bad file
// does not take down the whole listing; filesystem failures abort.
func (s *Service) List(ctx context.Context, opts interfaces.ListOptions) ([]*interfaces.Document, error) {
	params := markdown.LoadParams{
		Pattern:   opts.Pattern,
		Recursive: opts.Recursive,
	}

	paths, err := s.loader.Discover(ctx, ".", params)
	if err != nil {
		return nil, err
	}

	docs := make([]*interfaces.Document, 0, len(paths))
	for _, path := range paths {
		result, err := s.loader.LoadFile(ctx, path, params)
		if err != nil {
			if markdown.IsParseError(err) {
				logging.WithDocumentContext(s.logger, path, "list").
					Warn("content.list.document_skipped", "error", err)
				continue
			}
			return nil, err
		}

		if result.Document.FrontMatter.Draft && !opts.IncludeDrafts {
			continue
		}
		docs = append(docs, result.Document)
	}

	sort.SliceStable(docs, func(i, j int) bool {
		di, dj := docs[i].FrontMatter.Date, docs[j].FrontMatter.Date
		if di.Equal(dj) {
			return docs[i].Path < docs[j].Path
		}
		return di.After(dj)
	})

	return docs, nil
}

// Issue describes a document rejected while linting a directory.
type Issue struct {
	Path string
	Err  error
}

// Lint parses every document under dir (relative to the content root, "."
// for the whole tree) and collects the files a listing would skip, so
// authors can fix them instead of silently losing posts.
func (s *Service) Lint(ctx context.Context, dir string) ([]Issue, error) {
	if dir == "" {
		dir = "."
	}

	paths, err := s.loader.Discover(ctx, dir, markdown.LoadParams{})
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, path := range paths {
		if _, err := s.loader.LoadFile(ctx, path, markdown.LoadParams{}); err != nil {
			if markdown.IsParseError(err) {
				issues = append(issues, Issue{Path: path, Err: err})
				continue
			}
			return nil, err
		}
	}
	return issues, nil
}

// Get loads a single document by path. A missing path fails with a
// not-found error immediately; the filesystem is not expected to change
// mid-build, so there is no retry.
func (s *Service) Get(ctx context.Context, path string) (*interfaces.Document, error) {
	result, err := s.loader.LoadFile(ctx, path, markdown.LoadParams{})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFoundError(err, path)
		}
		return nil, err
	}
	return result.Document, nil
}
