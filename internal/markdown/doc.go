// Package markdown implements the parsing half of the content store: TOML
// front matter extraction and validation, filesystem discovery of Markdown
// documents, and goldmark-backed HTML rendering. Listing policy (draft
// filtering, ordering) lives in internal/store.
package markdown
