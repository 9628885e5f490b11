// ABOUTME: In-memory index of DC local rule documents for lookup and search
// ABOUTME: Built once at startup, immutable afterwards, safe for concurrent readers
package rules

import (
	"strings"

	"github.com/openclerk/dccourt/internal/models"
)

// LookupKind tags the outcome of a rule lookup.
type LookupKind int

const (
	// LookupDocument means a whole rule document matched.
	LookupDocument LookupKind = iota
	// LookupChunks means no document matched but individual chunks did.
	LookupChunks
	// LookupMiss means nothing matched; KnownRules lists what is loaded.
	LookupMiss
)

// LookupResult is the tagged result of Index.Lookup. Exactly one of
// Document, Chunks, or KnownRules is populated, according to Kind.
type LookupResult struct {
	Kind       LookupKind
	Document   *models.RuleDocument
	Chunks     []models.RuleChunk
	KnownRules []string
}

// Index holds the loaded rule corpus. It is never mutated after Load
// returns, so concurrent readers need no locking.
type Index struct {
	docs   map[string]*models.RuleDocument
	order  []string           // document keys in load order
	chunks []models.RuleChunk // flattened across documents, load order
}

// Documents returns the number of loaded rule documents.
func (ix *Index) Documents() int {
	return len(ix.order)
}

// Chunks returns the number of chunks across all loaded documents.
func (ix *Index) Chunks() int {
	return len(ix.chunks)
}

// Lookup resolves a rule identifier. Resolution is tiered: an exact key
// match wins; otherwise a case-insensitive substring match over document
// keys (in either direction, first loaded wins); otherwise a substring
// match over chunk sections and chunk ids, returning every matching
// chunk; otherwise a miss carrying the known identifiers.
func (ix *Index) Lookup(id string) LookupResult {
	if doc, ok := ix.docs[id]; ok {
		return LookupResult{Kind: LookupDocument, Document: doc}
	}

	lower := strings.ToLower(id)
	for _, key := range ix.order {
		keyLower := strings.ToLower(key)
		if strings.Contains(keyLower, lower) || strings.Contains(lower, keyLower) {
			return LookupResult{Kind: LookupDocument, Document: ix.docs[key]}
		}
	}

	// Chunk ids use underscores where a query would use spaces.
	idQuery := strings.ToLower(strings.ReplaceAll(id, " ", "_"))
	var matched []models.RuleChunk
	for _, chunk := range ix.chunks {
		if strings.Contains(strings.ToLower(chunk.Section), lower) ||
			strings.Contains(strings.ToLower(chunk.ID), idQuery) {
			matched = append(matched, chunk)
		}
	}
	if len(matched) > 0 {
		return LookupResult{Kind: LookupChunks, Chunks: matched}
	}

	known := make([]string, len(ix.order))
	copy(known, ix.order)
	return LookupResult{Kind: LookupMiss, KnownRules: known}
}

// Search returns every chunk whose title, content, or keywords contain
// the query, case-insensitively, in load order. An empty query matches
// everything; that is the documented way to list the full corpus.
func (ix *Index) Search(query string) []models.RuleSearchResult {
	lower := strings.ToLower(query)

	results := make([]models.RuleSearchResult, 0)
	for _, chunk := range ix.chunks {
		haystack := strings.ToLower(chunk.Title + " " + chunk.Content + " " + strings.Join(chunk.Keywords, " "))
		if strings.Contains(haystack, lower) {
			results = append(results, models.RuleSearchResult{
				Section:      chunk.Section,
				Title:        chunk.Title,
				Content:      chunk.Content,
				Requirements: chunk.Requirements,
			})
		}
	}
	return results
}
