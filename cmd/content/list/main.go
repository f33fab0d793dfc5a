package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/goliatone/go-contentstore/cmd/content/internal/bootstrap"
	"github.com/goliatone/go-contentstore/pkg/interfaces"
)

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the markdown content root")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
		recursive  = flag.Bool("recursive", true, "Traverse nested directories")
		drafts     = flag.Bool("drafts", false, "Include documents flagged draft = true")
		asJSON     = flag.Bool("json", false, "Emit the listing as JSON")
	)

	flag.Parse()

	store, err := bootstrap.BuildStore(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  *recursive,
		Quiet:      true,
	})
	if err != nil {
		log.Fatalf("bootstrap store: %v", err)
	}

	docs, err := store.List(context.Background(), interfaces.ListOptions{
		IncludeDrafts: *drafts,
	})
	if err != nil {
		log.Fatalf("list documents: %v", err)
	}

	if *asJSON {
		payload := make([]map[string]any, 0, len(docs))
		for _, doc := range docs {
			payload = append(payload, map[string]any{
				"path":        doc.Path,
				"title":       doc.FrontMatter.Title,
				"date":        doc.FrontMatter.Date.Format("2006-01-02"),
				"updated":     doc.FrontMatter.Updated.Format("2006-01-02"),
				"description": doc.FrontMatter.Description,
				"draft":       doc.FrontMatter.Draft,
			})
		}
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			log.Fatalf("marshal listing: %v", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tUPDATED\tDRAFT\tTITLE\tPATH")
	for _, doc := range docs {
		fmt.Fprintf(w, "%s\t%s\t%v\t%s\t%s\n",
			doc.FrontMatter.Date.Format("2006-01-02"),
			doc.FrontMatter.Updated.Format("2006-01-02"),
			doc.FrontMatter.Draft,
			doc.FrontMatter.Title,
			doc.Path,
		)
	}
	w.Flush()
}
