package markdown

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-contentstore/pkg/interfaces"
)

const frontMatterInvalidCode = "FRONTMATTER_INVALID"

const frontMatterDelimiter = "+++"

const dateLayout = "2006-01-02"

// knownKeys are the schema fields; everything else lands in Custom.
var knownKeys = map[string]struct{}{
	"title":       {},
	"date":        {},
	"updated":     {},
	"description": {},
	"draft":       {},
}

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured front matter, the Markdown
// body without delimiters, and any error encountered. Schema violations
// (missing title or date, updated earlier than date, malformed TOML) are
// wrapped as validation errors so listings can skip the offending file.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, wrapParseError(err, "malformed front matter")
	}

	var raw map[string]any
	if _, err := frontmatter.Parse(bytes.NewReader(source), &raw); err != nil {
		return interfaces.FrontMatter{}, nil, wrapParseError(err, "malformed front matter")
	}

	if err := meta.validate(); err != nil {
		return interfaces.FrontMatter{}, nil, wrapParseError(err, "invalid front matter")
	}

	return envelopeToFrontMatter(meta, raw), body, nil
}

// MarshalFrontMatter re-serializes a parsed header, emitting only the keys
// that were present in the source (tracked through Raw) so a parse/serialize
// cycle yields an equivalent header. Schema keys come first in schema order,
// custom keys follow sorted by name.
func MarshalFrontMatter(fm interfaces.FrontMatter) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')

	has := func(key string) bool {
		_, ok := fm.Raw[key]
		return ok
	}

	if err := encodeKey(&buf, "title", fm.Title); err != nil {
		return nil, err
	}
	if err := encodeDateKey(&buf, "date", fm.Raw["date"], fm.Date); err != nil {
		return nil, err
	}
	if has("updated") {
		if err := encodeDateKey(&buf, "updated", fm.Raw["updated"], fm.Updated); err != nil {
			return nil, err
		}
	}
	if has("description") {
		if err := encodeKey(&buf, "description", fm.Description); err != nil {
			return nil, err
		}
	}
	if has("draft") {
		if err := encodeKey(&buf, "draft", fm.Draft); err != nil {
			return nil, err
		}
	}

	custom := make([]string, 0, len(fm.Custom))
	for key := range fm.Custom {
		custom = append(custom, key)
	}
	sort.Strings(custom)
	for _, key := range custom {
		if err := encodeKey(&buf, key, fm.Custom[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. BodyHTML is intentionally left empty so
// callers can render lazily.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		Path:         path,
		FrontMatter:  fm,
		Body:         body,
		LastModified: modified,
	}, nil
}

// IsParseError reports whether err is a front-matter schema or syntax
// failure, the kind listings tolerate by skipping the file.
func IsParseError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}

type frontMatterEnvelope struct {
	Title       string     `toml:"title"`
	Date        headerDate `toml:"date"`
	Updated     headerDate `toml:"updated"`
	Description string     `toml:"description"`
	Draft       bool       `toml:"draft"`
}

// headerDate carries a front-matter date. Authors may write either a bare
// TOML local date (date = 2025-09-07) or a quoted YYYY-MM-DD string
// (date = "2025-09-07"); both decode to the same calendar day.
type headerDate struct {
	time.Time
}

// UnmarshalTOML implements toml.Unmarshaler for both accepted date forms.
func (d *headerDate) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			return fmt.Errorf("date %q is not in YYYY-MM-DD form: %w", v, err)
		}
		d.Time = parsed
		return nil
	default:
		return fmt.Errorf("unsupported date value of type %T", value)
	}
}

func (env frontMatterEnvelope) validate() error {
	return validation.ValidateStruct(&env,
		validation.Field(&env.Title, validation.Required.Error("title is required")),
		validation.Field(&env.Date, validation.By(func(any) error {
			if env.Date.IsZero() {
				return validation.NewError(
					"content.frontmatter.date_required",
					"date is required",
				)
			}
			return nil
		})),
		validation.Field(&env.Updated, validation.By(func(any) error {
			if env.Updated.IsZero() || env.Date.IsZero() {
				return nil
			}
			if env.Updated.Before(env.Date.Time) {
				return validation.NewError(
					"content.frontmatter.updated_before_date",
					"updated must not be earlier than date",
				)
			}
			return nil
		})),
	)
}

func envelopeToFrontMatter(env frontMatterEnvelope, raw map[string]any) interfaces.FrontMatter {
	if raw == nil {
		raw = map[string]any{}
	}

	custom := map[string]any{}
	for key, value := range raw {
		if _, ok := knownKeys[key]; ok {
			continue
		}
		custom[key] = value
	}

	updated := env.Updated.Time
	if updated.IsZero() {
		updated = env.Date.Time
	}

	return interfaces.FrontMatter{
		Title:       env.Title,
		Date:        env.Date.Time,
		Updated:     updated,
		Description: env.Description,
		Draft:       env.Draft,
		Custom:      custom,
		Raw:         raw,
	}
}

func encodeKey(buf *bytes.Buffer, key string, value any) error {
	if err := toml.NewEncoder(buf).Encode(map[string]any{key: value}); err != nil {
		return fmt.Errorf("marshal front matter key %s: %w", key, err)
	}
	return nil
}

// encodeDateKey re-emits a date key in its source form: quoted headers stay
// quoted strings, bare TOML dates come back in calendar form instead of the
// encoder's RFC 3339 timestamp.
func encodeDateKey(buf *bytes.Buffer, key string, raw any, value time.Time) error {
	if s, ok := raw.(string); ok {
		return encodeKey(buf, key, s)
	}
	fmt.Fprintf(buf, "%s = %s\n", key, value.Format(dateLayout))
	return nil
}

func wrapParseError(err error, msg string) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, msg).
		WithTextCode(frontMatterInvalidCode)
}
