package site

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-contentstore/internal/commands"
	"github.com/goliatone/go-contentstore/internal/generator"
	"github.com/goliatone/go-contentstore/internal/logging"
	"github.com/goliatone/go-contentstore/internal/store"
	"github.com/goliatone/go-contentstore/pkg/interfaces"
)

const (
	buildOperation    = "site.build"
	validateOperation = "site.validate_content"
)

var (
	// ErrGeneratorRequired is returned when the build handler lacks a generator service.
	ErrGeneratorRequired = errors.New("site command: generator service is required")
	// ErrStoreRequired is returned when the validate handler lacks a content store.
	ErrStoreRequired = errors.New("site command: content store is required")
)

var (
	_ command.Commander[BuildSiteCommand]       = (*BuildSiteHandler)(nil)
	_ command.Commander[ValidateContentCommand] = (*ValidateContentHandler)(nil)
)

// BuildSiteHandler orchestrates static builds via the shared command handler
// foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler creates a handler bound to the supplied generator.
func NewBuildSiteHandler(gen generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		if gen == nil {
			return ErrGeneratorRequired
		}

		result, err := gen.Build(ctx, generator.BuildOptions{
			IncludeDrafts: msg.IncludeDrafts,
			DryRun:        msg.DryRun,
		})
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"build_id":    result.BuildID.String(),
			"pages_built": result.PagesBuilt,
			"duration_ms": result.Duration.Milliseconds(),
			"dry_run":     msg.DryRun,
		}).Info("site.command.build.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand](buildOperation),
		commands.WithMessageFields(func(msg BuildSiteCommand) map[string]any {
			fields := map[string]any{}
			if msg.IncludeDrafts {
				fields["include_drafts"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildSiteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ValidateContentHandler lints a content subtree via the shared command
// handler foundation.
type ValidateContentHandler struct {
	inner *commands.Handler[ValidateContentCommand]
}

// NewValidateContentHandler creates a handler bound to the supplied store.
func NewValidateContentHandler(contentStore *store.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ValidateContentCommand]) *ValidateContentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ValidateContentCommand) error {
		if contentStore == nil {
			return ErrStoreRequired
		}

		issues, err := contentStore.Lint(ctx, msg.Directory)
		if err != nil {
			return err
		}

		for _, issue := range issues {
			logging.WithDocumentContext(baseLogger, issue.Path, validateOperation).
				Warn("site.command.validate.document_invalid", "error", issue.Err)
		}
		logging.WithFields(baseLogger, map[string]any{
			"directory":   msg.Directory,
			"issue_count": len(issues),
		}).Info("site.command.validate.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ValidateContentCommand]{
		commands.WithLogger[ValidateContentCommand](baseLogger),
		commands.WithOperation[ValidateContentCommand](validateOperation),
		commands.WithMessageFields(func(msg ValidateContentCommand) map[string]any {
			return map[string]any{
				"directory": msg.Directory,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ValidateContentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateContentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ValidateContentCommand].
func (h *ValidateContentHandler) Execute(ctx context.Context, msg ValidateContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
