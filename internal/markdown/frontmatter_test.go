package markdown

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Building a Columnar File Reader" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if got := fm.Date.Format("2006-01-02"); got != "2025-06-15" {
		t.Fatalf("FrontMatter Date mismatch, got %q", got)
	}
	if got := fm.Updated.Format("2006-01-02"); got != "2025-07-01" {
		t.Fatalf("FrontMatter Updated mismatch, got %q", got)
	}
	if fm.Description != "Notes on the Arrow memory layout" {
		t.Fatalf("FrontMatter Description mismatch, got %q", fm.Description)
	}
	if fm.Draft {
		t.Fatalf("expected Draft to be false")
	}
	if _, ok := fm.Raw["updated"]; !ok {
		t.Fatalf("FrontMatter Raw should record the updated key: %#v", fm.Raw)
	}
	if len(body) == 0 || !strings.Contains(string(body), "# Building a Columnar File Reader") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatterUpdatedDefaultsToDate(t *testing.T) {
	data := readFixture(t, "testdata/minimal.md")

	fm, _, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if !fm.Updated.Equal(fm.Date) {
		t.Fatalf("expected Updated to default to Date, got %v and %v", fm.Updated, fm.Date)
	}
	if _, ok := fm.Raw["updated"]; ok {
		t.Fatalf("Raw should not invent an updated key: %#v", fm.Raw)
	}
}

func TestParseFrontMatterMissingTitle(t *testing.T) {
	data := readFixture(t, "testdata/missing-title.md")

	_, _, err := ParseFrontMatter(data)
	if err == nil {
		t.Fatalf("expected an error for a header without title")
	}
	if !IsParseError(err) {
		t.Fatalf("expected a parse error, got %v", err)
	}
}

func TestParseFrontMatterUpdatedBeforeDate(t *testing.T) {
	data := readFixture(t, "testdata/updated-before-date.md")

	_, _, err := ParseFrontMatter(data)
	if err == nil {
		t.Fatalf("expected an error when updated precedes date")
	}
	if !IsParseError(err) {
		t.Fatalf("expected a parse error, got %v", err)
	}
}

func TestParseFrontMatterCustomKeys(t *testing.T) {
	data := readFixture(t, "testdata/custom-keys.md")

	fm, _, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Custom["series"] != "internals" {
		t.Fatalf("expected custom series key, got %#v", fm.Custom)
	}
	if _, ok := fm.Custom["title"]; ok {
		t.Fatalf("schema keys must not leak into Custom: %#v", fm.Custom)
	}
}

func TestMarshalFrontMatterRoundTrip(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, _, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	header, err := MarshalFrontMatter(fm)
	if err != nil {
		t.Fatalf("MarshalFrontMatter: %v", err)
	}

	want := headerOf(t, data)
	if !bytes.Equal(header, want) {
		t.Fatalf("round trip mismatch:\ngot:\n%s\nwant:\n%s", header, want)
	}
}

func TestMarshalFrontMatterKeepsCalendarDates(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, _, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	header, err := MarshalFrontMatter(fm)
	if err != nil {
		t.Fatalf("MarshalFrontMatter: %v", err)
	}

	got := string(header)
	if !strings.Contains(got, "date = 2025-06-15\n") {
		t.Fatalf("expected a bare calendar date:\n%s", got)
	}
	if strings.Contains(got, "T00:00:00") {
		t.Fatalf("dates must not serialize as timestamps:\n%s", got)
	}
}

func TestParseFrontMatterQuotedDates(t *testing.T) {
	source := []byte("+++\ntitle = \"Quoted Dates\"\ndate = \"2025-06-15\"\nupdated = \"2025-07-01\"\n+++\n\nBody.\n")

	fm, _, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if got := fm.Date.Format("2006-01-02"); got != "2025-06-15" {
		t.Fatalf("quoted date mismatch, got %q", got)
	}
	if got := fm.Updated.Format("2006-01-02"); got != "2025-07-01" {
		t.Fatalf("quoted updated mismatch, got %q", got)
	}
}

func TestParseFrontMatterRejectsMalformedQuotedDate(t *testing.T) {
	source := []byte("+++\ntitle = \"Bad Date\"\ndate = \"June 15th\"\n+++\n\nBody.\n")

	_, _, err := ParseFrontMatter(source)
	if err == nil {
		t.Fatalf("expected an error for a non-calendar date string")
	}
	if !IsParseError(err) {
		t.Fatalf("expected a parse error, got %v", err)
	}
}

func TestMarshalFrontMatterQuotedDatesRoundTrip(t *testing.T) {
	source := []byte("+++\ntitle = \"Quoted Dates\"\ndate = \"2025-06-15\"\nupdated = \"2025-07-01\"\n+++\n\nBody.\n")

	fm, _, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	header, err := MarshalFrontMatter(fm)
	if err != nil {
		t.Fatalf("MarshalFrontMatter: %v", err)
	}

	want := headerOf(t, source)
	if !bytes.Equal(header, want) {
		t.Fatalf("round trip mismatch:\ngot:\n%s\nwant:\n%s", header, want)
	}
}

func TestMarshalFrontMatterOmitsAbsentKeys(t *testing.T) {
	data := readFixture(t, "testdata/minimal.md")

	fm, _, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	header, err := MarshalFrontMatter(fm)
	if err != nil {
		t.Fatalf("MarshalFrontMatter: %v", err)
	}

	got := string(header)
	if strings.Contains(got, "updated") || strings.Contains(got, "draft") {
		t.Fatalf("absent keys must stay absent after serialization:\n%s", got)
	}
}

func TestBuildDocument(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")
	modified := time.Now().UTC()

	doc, err := BuildDocument("testdata/basic.md", data, modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if doc.Path != "testdata/basic.md" {
		t.Fatalf("expected Path to be set, got %q", doc.Path)
	}
	if doc.LastModified != modified {
		t.Fatalf("expected LastModified to equal the provided timestamp")
	}
	if len(doc.Body) == 0 {
		t.Fatalf("expected Body to contain markdown content")
	}
	if len(doc.BodyHTML) != 0 {
		t.Fatalf("BuildDocument should not render HTML eagerly")
	}
}

// headerOf extracts the delimited front-matter block, including both
// delimiter lines, from a fixture.
func headerOf(tb testing.TB, source []byte) []byte {
	tb.Helper()
	parts := bytes.SplitN(source, []byte("+++\n"), 3)
	if len(parts) != 3 {
		tb.Fatalf("fixture does not contain a delimited header")
	}
	var buf bytes.Buffer
	buf.WriteString("+++\n")
	buf.Write(parts[1])
	buf.WriteString("+++\n")
	return buf.Bytes()
}

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
