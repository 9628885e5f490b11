// ABOUTME: Loads the rule corpus from YAML files into a fresh Index
// ABOUTME: Best-effort: malformed documents are skipped and reported, never fatal
package rules

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/openclerk/dccourt/internal/models"
	"gopkg.in/yaml.v3"
)

// LoadStatus summarizes how a corpus load went.
type LoadStatus string

const (
	StatusComplete LoadStatus = "complete"
	StatusPartial  LoadStatus = "partial"
	StatusEmpty    LoadStatus = "empty"
)

// LoadReport records the outcome of a Load call so callers and tests can
// assert on load health without scraping log output.
type LoadReport struct {
	Loaded  int
	Skipped int
	Errors  []error
}

// Status classifies the report: empty if nothing loaded, partial if
// anything was skipped, complete otherwise.
func (r LoadReport) Status() LoadStatus {
	switch {
	case r.Loaded == 0:
		return StatusEmpty
	case r.Skipped > 0:
		return StatusPartial
	default:
		return StatusComplete
	}
}

// Load reads every .yaml/.yml rule document under dir into a new Index.
// Files are read in name order so document insertion order is stable.
// Unreadable or malformed files are skipped and logged; an empty index
// (lookups miss, searches return nothing) is always usable. Each call
// builds a fresh Index, so loading twice can never duplicate chunks.
func Load(dir string) (*Index, LoadReport) {
	ix := &Index{docs: make(map[string]*models.RuleDocument)}
	var report LoadReport

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("rules: cannot read corpus dir %s: %v", dir, err)
		report.Errors = append(report.Errors, err)
		return ix, report
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := loadFile(ix, path); err != nil {
			log.Printf("rules: skipping %s: %v", name, err)
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Errorf("%s: %w", name, err))
			continue
		}
		report.Loaded++
	}

	return ix, report
}

func loadFile(ix *Index, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc models.RuleDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing: %w", err)
	}
	if doc.Rule == "" {
		return fmt.Errorf("missing rule identifier")
	}
	if _, exists := ix.docs[doc.Rule]; exists {
		return fmt.Errorf("duplicate rule identifier %q", doc.Rule)
	}

	ix.docs[doc.Rule] = &doc
	ix.order = append(ix.order, doc.Rule)
	ix.chunks = append(ix.chunks, doc.Chunks...)
	return nil
}
