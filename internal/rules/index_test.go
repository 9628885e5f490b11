// ABOUTME: Tests for rule index lookup and keyword search semantics
// ABOUTME: Verifies tiered lookup fallbacks and substring search behavior
package rules

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const ruleSevenYAML = `rule: "LCvR 7"
title: "Motions"
chunks:
  - id: page_limits
    section: "LCvR 7(n)"
    title: "Page Limits"
    content: "A memorandum must not exceed 45 pages; a reply must not exceed 25 pages."
    requirements:
      max_pages_motion: 45
      max_pages_reply: 25
    keywords: [page limit, reply]
  - id: typography
    section: "LCvR 7(o)"
    title: "Typeface and Spacing"
    content: "Memoranda must be typed in 12-point Times New Roman, double-spaced."
    requirements:
      font_size: 12
    keywords: [font, typeface]
`

const ruleFiveYAML = `rule: "LCvR 5.1"
title: "General Format of Papers"
chunks:
  - id: paper_format
    section: "LCvR 5.1(d)"
    title: "Form of Papers"
    content: "Margins of at least one inch on all four sides."
    keywords: [margins]
`

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func loadCorpus(t *testing.T) *Index {
	t.Helper()
	dir := writeCorpus(t, map[string]string{
		"lcvr-5.1.yaml": ruleFiveYAML,
		"lcvr-7.yaml":   ruleSevenYAML,
	})
	ix, report := Load(dir)
	if report.Status() != StatusComplete {
		t.Fatalf("load status = %s, want complete (errors: %v)", report.Status(), report.Errors)
	}
	return ix
}

func TestLoad_RoundTrip(t *testing.T) {
	ix := loadCorpus(t)

	if ix.Documents() != 2 {
		t.Fatalf("Documents() = %d, want 2", ix.Documents())
	}
	if ix.Chunks() != 3 {
		t.Fatalf("Chunks() = %d, want 3", ix.Chunks())
	}

	result := ix.Lookup("LCvR 7")
	if result.Kind != LookupDocument {
		t.Fatalf("Lookup kind = %v, want LookupDocument", result.Kind)
	}
	doc := result.Document
	if doc.Title != "Motions" {
		t.Errorf("Title = %q, want Motions", doc.Title)
	}
	if len(doc.Chunks) != 2 {
		t.Fatalf("len(Chunks) = %d, want 2", len(doc.Chunks))
	}
	// Chunk order follows document order
	if doc.Chunks[0].ID != "page_limits" || doc.Chunks[1].ID != "typography" {
		t.Errorf("chunk order = [%s, %s], want [page_limits, typography]",
			doc.Chunks[0].ID, doc.Chunks[1].ID)
	}
	if got := doc.Chunks[0].Requirements["max_pages_motion"]; got != 45 {
		t.Errorf("max_pages_motion = %v (%T), want 45", got, got)
	}
}

func TestLoad_SkipsMalformedFiles(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"good.yaml":    ruleSevenYAML,
		"broken.yaml":  "rule: [unclosed",
		"no-id.yaml":   "title: Nameless\nchunks: []\n",
		"ignored.json": `{"rule": "not yaml"}`,
	})

	ix, report := Load(dir)
	if report.Loaded != 1 {
		t.Errorf("Loaded = %d, want 1", report.Loaded)
	}
	if report.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", report.Skipped)
	}
	if report.Status() != StatusPartial {
		t.Errorf("Status() = %s, want partial", report.Status())
	}
	if ix.Documents() != 1 {
		t.Errorf("Documents() = %d, want 1", ix.Documents())
	}
}

func TestLoad_MissingDirIsEmptyNotFatal(t *testing.T) {
	ix, report := Load(filepath.Join(t.TempDir(), "does-not-exist"))

	if report.Status() != StatusEmpty {
		t.Errorf("Status() = %s, want empty", report.Status())
	}
	if got := ix.Search("anything"); len(got) != 0 {
		t.Errorf("Search on empty index returned %d results", len(got))
	}
	result := ix.Lookup("LCvR 7")
	if result.Kind != LookupMiss {
		t.Errorf("Lookup kind = %v, want LookupMiss", result.Kind)
	}
	if len(result.KnownRules) != 0 {
		t.Errorf("KnownRules = %v, want empty", result.KnownRules)
	}
}

func TestLoad_DuplicateRuleSkipped(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.yaml": ruleSevenYAML,
		"b.yaml": ruleSevenYAML,
	})

	ix, report := Load(dir)
	if report.Loaded != 1 || report.Skipped != 1 {
		t.Errorf("Loaded/Skipped = %d/%d, want 1/1", report.Loaded, report.Skipped)
	}
	// Flattened chunks must not be duplicated by the skipped file.
	if ix.Chunks() != 2 {
		t.Errorf("Chunks() = %d, want 2", ix.Chunks())
	}
}

func TestLookup_Fallbacks(t *testing.T) {
	ix := loadCorpus(t)

	tests := []struct {
		name     string
		query    string
		wantKind LookupKind
		wantRule string
	}{
		{"exact match", "LCvR 7", LookupDocument, "LCvR 7"},
		{"query contained in key", "5.1", LookupDocument, "LCvR 5.1"},
		{"key contained in query", "LCvR 5.1 formatting requirements", LookupDocument, "LCvR 5.1"},
		{"case-insensitive", "lcvr 7", LookupDocument, "LCvR 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ix.Lookup(tt.query)
			if result.Kind != tt.wantKind {
				t.Fatalf("Lookup(%q) kind = %v, want %v", tt.query, result.Kind, tt.wantKind)
			}
			if result.Document.Rule != tt.wantRule {
				t.Errorf("Lookup(%q) rule = %q, want %q", tt.query, result.Document.Rule, tt.wantRule)
			}
		})
	}
}

func TestLookup_ChunkLevelFallback(t *testing.T) {
	ix := loadCorpus(t)

	// "page limits" can't match a document key ("limits" isn't in any key
	// and no key is inside it), but normalizes to the page_limits chunk id.
	result := ix.Lookup("page limits")
	if result.Kind != LookupChunks {
		t.Fatalf("Lookup kind = %v, want LookupChunks", result.Kind)
	}
	if len(result.Chunks) != 1 || result.Chunks[0].ID != "page_limits" {
		t.Errorf("Chunks = %+v, want the page_limits chunk", result.Chunks)
	}

	// Section labels match too.
	result = ix.Lookup("7(o)")
	if result.Kind != LookupChunks {
		t.Fatalf("Lookup(7(o)) kind = %v, want LookupChunks", result.Kind)
	}
	if len(result.Chunks) != 1 || result.Chunks[0].Section != "LCvR 7(o)" {
		t.Errorf("Chunks = %+v, want the LCvR 7(o) chunk", result.Chunks)
	}
}

func TestLookup_MissListsKnownRules(t *testing.T) {
	ix := loadCorpus(t)

	result := ix.Lookup("LCrR 57")
	if result.Kind != LookupMiss {
		t.Fatalf("Lookup kind = %v, want LookupMiss", result.Kind)
	}
	// Known identifiers in load (file name) order.
	want := []string{"LCvR 5.1", "LCvR 7"}
	if len(result.KnownRules) != len(want) {
		t.Fatalf("KnownRules = %v, want %v", result.KnownRules, want)
	}
	for i, rule := range want {
		if result.KnownRules[i] != rule {
			t.Errorf("KnownRules[%d] = %q, want %q", i, result.KnownRules[i], rule)
		}
	}
}

func TestSearch_EmptyQueryReturnsEverything(t *testing.T) {
	ix := loadCorpus(t)

	results := ix.Search("")
	if len(results) != ix.Chunks() {
		t.Errorf("Search(\"\") returned %d results, want all %d chunks", len(results), ix.Chunks())
	}
}

func TestSearch_Matching(t *testing.T) {
	ix := loadCorpus(t)

	tests := []struct {
		name      string
		query     string
		wantTitle string
	}{
		{"content substring", "45 pages", "Page Limits"},
		{"case-insensitive content", "TIMES NEW ROMAN", "Typeface and Spacing"},
		{"keyword match", "margins", "Form of Papers"},
		{"title match", "typeface", "Typeface and Spacing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := ix.Search(tt.query)
			if len(results) == 0 {
				t.Fatalf("Search(%q) returned nothing", tt.query)
			}
			found := false
			for _, r := range results {
				if r.Title == tt.wantTitle {
					found = true
				}
			}
			if !found {
				t.Errorf("Search(%q) missing chunk titled %q", tt.query, tt.wantTitle)
			}
		})
	}
}

func TestSearch_ExcludesNonMatches(t *testing.T) {
	ix := loadCorpus(t)

	results := ix.Search("subpoena")
	if len(results) != 0 {
		t.Errorf("Search(subpoena) = %d results, want 0", len(results))
	}
}

func TestSearch_ProjectionOmitsIDAndKeywords(t *testing.T) {
	ix := loadCorpus(t)

	results := ix.Search("45 pages")
	if len(results) != 1 {
		t.Fatalf("Search returned %d results, want 1", len(results))
	}
	r := results[0]
	if r.Section != "LCvR 7(n)" || r.Title != "Page Limits" {
		t.Errorf("projection = %+v", r)
	}
	if !strings.Contains(r.Content, "45 pages") {
		t.Errorf("Content = %q, want the matched text", r.Content)
	}
	if r.Requirements["max_pages_reply"] != 25 {
		t.Errorf("Requirements carried over wrong: %v", r.Requirements)
	}
}

func TestIndex_ConcurrentReaders(t *testing.T) {
	ix := loadCorpus(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				ix.Lookup("LCvR 7")
				ix.Search("pages")
			}
		}()
	}
	wg.Wait()
}
