package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-contentstore/cmd/content/internal/bootstrap"
)

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the markdown content root")
		filePath   = flag.String("file", "", "Markdown file to preview (relative to the content root)")
		renderHTML = flag.Bool("render-html", true, "Render markdown body into HTML as part of the preview")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	store, err := bootstrap.BuildStore(bootstrap.Options{
		ContentDir: *contentDir,
		Recursive:  true,
		Quiet:      true,
	})
	if err != nil {
		log.Fatalf("bootstrap store: %v", err)
	}

	ctx := context.Background()

	doc, err := store.Get(ctx, *filePath)
	if err != nil {
		log.Fatalf("load document: %v", err)
	}

	if *renderHTML {
		if _, err := store.Render(ctx, doc); err != nil {
			log.Fatalf("render markdown: %v", err)
		}
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nChecksum: %x\n\n", doc.Path, doc.Checksum)

	if doc.FrontMatter.Raw != nil {
		header, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", header)
		}
	}

	if *renderHTML {
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(doc.BodyHTML))
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(doc.Body))
	}
}
