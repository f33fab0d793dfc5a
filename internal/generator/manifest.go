package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const manifestFilename = "manifest.json"

// Manifest summarises a build for downstream tooling (deploy diffing,
// cache busting). Checksums are SHA-256 of the source Markdown, so an
// unchanged document keeps its manifest entry stable across builds.
type Manifest struct {
	BuildID     string         `json:"build_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	BaseURL     string         `json:"base_url,omitempty"`
	Pages       []ManifestPage `json:"pages"`
}

// ManifestPage records a single rendered document.
type ManifestPage struct {
	Source   string `json:"source"`
	Output   string `json:"output"`
	Checksum string `json:"checksum"`
	Title    string `json:"title"`
	Date     string `json:"date"`
}

func (s *service) writeManifest(result *BuildResult) error {
	manifest := Manifest{
		BuildID:     result.BuildID.String(),
		GeneratedAt: time.Now().UTC(),
		BaseURL:     s.cfg.BaseURL,
		Pages:       make([]ManifestPage, 0, len(result.Rendered)),
	}

	for _, page := range result.Rendered {
		manifest.Pages = append(manifest.Pages, ManifestPage{
			Source:   page.Source,
			Output:   page.Output,
			Checksum: page.Checksum,
			Title:    page.Title,
			Date:     page.Date.Format("2006-01-02"),
		})
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("generator: marshal manifest: %w", err)
	}

	target := filepath.Join(s.cfg.OutputDir, manifestFilename)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("generator: write manifest: %w", err)
	}
	return nil
}
