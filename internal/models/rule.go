// ABOUTME: RuleChunk and RuleDocument represent fragments of DC local civil rules
// ABOUTME: Loaded once at startup and kept immutable for lookup and keyword search
package models

// RuleChunk is a titled, searchable fragment of a procedural rule document.
// Requirements holds structured constraint values (e.g. font_size: 12) when
// the fragment encodes a formatting requirement.
type RuleChunk struct {
	ID           string         `yaml:"id" json:"id"`
	Section      string         `yaml:"section" json:"section"`
	Title        string         `yaml:"title" json:"title"`
	Content      string         `yaml:"content" json:"content"`
	Requirements map[string]any `yaml:"requirements,omitempty" json:"requirements,omitempty"`
	Keywords     []string       `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

// RuleDocument is one rule (e.g. "LCvR 5.1") with its chunks in document order.
type RuleDocument struct {
	Rule   string      `yaml:"rule" json:"rule"`
	Title  string      `yaml:"title" json:"title"`
	Chunks []RuleChunk `yaml:"chunks" json:"chunks"`
}

// RuleSearchResult is the projection of a chunk returned by keyword search.
// The chunk id and keywords are load-time plumbing and stay internal.
type RuleSearchResult struct {
	Section      string         `json:"section"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	Requirements map[string]any `json:"requirements,omitempty"`
}
