package store

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-contentstore/internal/markdown"
	"github.com/goliatone/go-contentstore/pkg/interfaces"
)

func post(title, date string, extra ...string) *fstest.MapFile {
	header := "+++\ntitle = \"" + title + "\"\ndate = " + date + "\n"
	for _, line := range extra {
		header += line + "\n"
	}
	return &fstest.MapFile{
		Data:    []byte(header + "+++\n\nBody of " + title + ".\n"),
		ModTime: time.Now(),
	}
}

func contentFS() fstest.MapFS {
	return fstest.MapFS{
		"hello-world.md":    post("Hello World", "2025-01-01"),
		"arrow-columnar.md": post("Arrow Columnar Format", "2025-06-15", "updated = 2025-07-01"),
		"wip-zig-notes.md":  post("Zig Notes", "2025-09-07", "draft = true"),
		"broken.md":         {Data: []byte("+++\ndate = 2025-05-05\n+++\n\nNo title.\n")},
	}
}

func newTestStore(fsys fstest.MapFS) *Service {
	loader := markdown.NewLoader(fsys, markdown.LoaderConfig{Recursive: true})
	return NewService(loader, recordLogger())
}

func TestListExcludesDrafts(t *testing.T) {
	svc := newTestStore(contentFS())

	docs, err := svc.List(context.Background(), interfaces.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("expected 2 published documents, got %d", len(docs))
	}
	for _, doc := range docs {
		if doc.FrontMatter.Draft {
			t.Fatalf("draft document %s leaked into a published listing", doc.Path)
		}
	}
}

func TestListIncludeDraftsIsSuperset(t *testing.T) {
	svc := newTestStore(contentFS())
	ctx := context.Background()

	published, err := svc.List(ctx, interfaces.ListOptions{})
	if err != nil {
		t.Fatalf("List published: %v", err)
	}
	all, err := svc.List(ctx, interfaces.ListOptions{IncludeDrafts: true})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}

	// Three parseable documents in the fixture; broken.md never counts.
	if len(all) != 3 {
		t.Fatalf("expected every parseable document, got %d", len(all))
	}
	if len(all) < len(published) {
		t.Fatalf("draft listing must be a superset: %d < %d", len(all), len(published))
	}
	for _, pub := range published {
		found := false
		for _, doc := range all {
			if doc.Path == pub.Path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("published document %s missing from draft listing", pub.Path)
		}
	}
}

func TestListOrderedByDateDescending(t *testing.T) {
	svc := newTestStore(contentFS())

	docs, err := svc.List(context.Background(), interfaces.ListOptions{IncludeDrafts: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	for i := 1; i < len(docs); i++ {
		prev, cur := docs[i-1].FrontMatter.Date, docs[i].FrontMatter.Date
		if cur.After(prev) {
			t.Fatalf("listing not ordered by date descending: %s before %s",
				docs[i-1].Path, docs[i].Path)
		}
	}
}

func TestListSkipsMalformedDocuments(t *testing.T) {
	logger := recordLogger()
	loader := markdown.NewLoader(contentFS(), markdown.LoaderConfig{Recursive: true})
	svc := NewService(loader, logger)

	docs, err := svc.List(context.Background(), interfaces.ListOptions{IncludeDrafts: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	for _, doc := range docs {
		if doc.Path == "broken.md" {
			t.Fatalf("malformed document must be skipped")
		}
	}
	if logger.count("content.list.document_skipped") != 1 {
		t.Fatalf("expected a skip warning, got %v", logger.messages)
	}
}

// The canonical two-file example: one draft dated 2025-09-07, one published
// dated 2025-01-01.
func TestListTwoFileExample(t *testing.T) {
	fsys := fstest.MapFS{
		"draft-post.md":     post("Draft Post", "2025-09-07", "draft = true"),
		"published-post.md": post("Published Post", "2025-01-01"),
	}
	svc := newTestStore(fsys)
	ctx := context.Background()

	published, err := svc.List(ctx, interfaces.ListOptions{})
	if err != nil {
		t.Fatalf("List published: %v", err)
	}
	if len(published) != 1 || published[0].Path != "published-post.md" {
		t.Fatalf("expected exactly the published document, got %+v", published)
	}

	all, err := svc.List(ctx, interfaces.ListOptions{IncludeDrafts: true})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both documents, got %d", len(all))
	}
	if all[0].Path != "draft-post.md" || all[1].Path != "published-post.md" {
		t.Fatalf("expected [draft-post.md published-post.md], got [%s %s]",
			all[0].Path, all[1].Path)
	}
}

func TestGet(t *testing.T) {
	svc := newTestStore(contentFS())

	doc, err := svc.Get(context.Background(), "hello-world.md")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if doc.FrontMatter.Title != "Hello World" {
		t.Fatalf("unexpected title %q", doc.FrontMatter.Title)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := newTestStore(contentFS())

	_, err := svc.Get(context.Background(), "missing.md")
	if err == nil {
		t.Fatalf("expected an error for a missing path")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected a not-found error, got %v", err)
	}
}

func TestGetReturnsDrafts(t *testing.T) {
	svc := newTestStore(contentFS())

	doc, err := svc.Get(context.Background(), "wip-zig-notes.md")
	if err != nil {
		t.Fatalf("Get draft: %v", err)
	}
	if !doc.FrontMatter.Draft {
		t.Fatalf("expected the draft flag to survive Get")
	}
}

func TestLint(t *testing.T) {
	svc := newTestStore(contentFS())

	issues, err := svc.Lint(context.Background(), ".")
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}

	if len(issues) != 1 || issues[0].Path != "broken.md" {
		t.Fatalf("expected a single issue for broken.md, got %+v", issues)
	}
	if !IsParseError(issues[0].Err) {
		t.Fatalf("lint issues must carry parse errors, got %v", issues[0].Err)
	}
}
