// Package site exposes the content store's automation surface as go-command
// messages: static builds and content linting.
package site

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	buildSiteMessageType       = "store.site.build"
	validateContentMessageType = "store.site.validate_content"
)

// BuildSiteCommand triggers a static build of the content directory into the
// configured output directory.
type BuildSiteCommand struct {
	// IncludeDrafts renders draft documents, for staging previews.
	IncludeDrafts bool `json:"include_drafts,omitempty"`
	// DryRun renders every page without writing output.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// ValidateContentCommand lints every document under Directory, reporting the
// files a published listing would skip.
type ValidateContentCommand struct {
	// Directory selects the content subtree to lint, relative to the content root.
	Directory string `json:"directory"`
}

// Type implements command.Message.
func (ValidateContentCommand) Type() string { return validateContentMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ValidateContentCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("store.site.validate_content.directory_required", "directory is required")
			}
			return nil
		})),
	)
	if err != nil {
		return err
	}
	return nil
}
