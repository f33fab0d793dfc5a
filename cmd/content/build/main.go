package main

import (
	"context"
	"flag"
	"log"

	"github.com/goliatone/go-contentstore/cmd/content/internal/bootstrap"
	"github.com/goliatone/go-contentstore/internal/commands"
	"github.com/goliatone/go-contentstore/internal/commands/site"
)

func main() {
	var (
		contentDir    = flag.String("content-dir", "content", "Path to the markdown content root")
		pattern       = flag.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
		outputDir     = flag.String("output-dir", "public", "Directory the generated site is written to")
		baseURL       = flag.String("base-url", "", "Base URL recorded in the build manifest")
		drafts        = flag.Bool("drafts", false, "Render documents flagged draft = true")
		dryRun        = flag.Bool("dry-run", false, "Render without writing output")
		cleanBuild    = flag.Bool("clean", false, "Remove the output directory before building")
		manifest      = flag.Bool("manifest", true, "Write manifest.json alongside the output")
		validateFirst = flag.Bool("validate", false, "Lint the content tree before building")
		logLevel      = flag.String("log-level", "info", "Logging level")
		logFormat     = flag.String("log-format", "console", "Logging format (json, console, pretty)")
	)

	flag.Parse()

	store, err := bootstrap.BuildStore(bootstrap.Options{
		ContentDir:    *contentDir,
		Pattern:       *pattern,
		Recursive:     true,
		OutputDir:     *outputDir,
		BaseURL:       *baseURL,
		CleanBuild:    *cleanBuild,
		WriteManifest: *manifest,
		LogLevel:      *logLevel,
		LogFormat:     *logFormat,
	})
	if err != nil {
		log.Fatalf("bootstrap store: %v", err)
	}

	ctx := context.Background()

	if *validateFirst {
		validate := site.NewValidateContentHandler(
			store.Content(),
			commands.CommandLogger(store.LoggerProvider(), "site"),
		)
		if err := validate.Execute(ctx, site.ValidateContentCommand{Directory: "."}); err != nil {
			log.Fatalf("validate content: %v", err)
		}
	}

	build := site.NewBuildSiteHandler(
		store.Generator(),
		commands.CommandLogger(store.LoggerProvider(), "site"),
	)
	if err := build.Execute(ctx, site.BuildSiteCommand{
		IncludeDrafts: *drafts,
		DryRun:        *dryRun,
	}); err != nil {
		log.Fatalf("build site: %v", err)
	}
}
