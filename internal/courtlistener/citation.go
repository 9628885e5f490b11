// ABOUTME: Citation string parsing and lookup against the citations endpoint
// ABOUTME: Irregular citations fall back to a quoted full-text search
package courtlistener

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// citationPattern matches "<volume> <reporter> <page>", e.g. "550 U.S. 544".
// The reporter token is non-greedy so the trailing integer is the page.
var citationPattern = regexp.MustCompile(`^(\d+)\s+([A-Za-z0-9.\s]+?)\s+(\d+)$`)

// ParsedCitation is the (volume, reporter, page) triple of a citation.
type ParsedCitation struct {
	Volume   int
	Reporter string
	Page     string
}

// ParseCitation parses a citation string of the shape
// "<volume> <reporter> <page>". It reports false for irregular formats.
func ParseCitation(citation string) (ParsedCitation, bool) {
	m := citationPattern.FindStringSubmatch(strings.TrimSpace(citation))
	if m == nil {
		return ParsedCitation{}, false
	}
	volume, err := strconv.Atoi(m[1])
	if err != nil {
		return ParsedCitation{}, false
	}
	return ParsedCitation{
		Volume:   volume,
		Reporter: strings.TrimSpace(m[2]),
		Page:     m[3],
	}, true
}

// LookupCitation resolves a citation string. Well-formed citations query
// the citations endpoint directly with the parsed triple. Irregular ones
// fall back to a quoted full-text search over opinions and return only
// the match count with empty results; the fallback does not hydrate
// cluster records for its matches.
func (c *Client) LookupCitation(ctx context.Context, citation string) (*CitationList, error) {
	if parsed, ok := ParseCitation(citation); ok {
		params := map[string]string{
			"volume":   strconv.Itoa(parsed.Volume),
			"reporter": parsed.Reporter,
			"page":     parsed.Page,
		}
		var out CitationList
		if err := c.get(ctx, "/citations/", params, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}

	resp, err := c.FullTextSearch(ctx, fmt.Sprintf("%q", citation), SearchOpinionsType, SearchOptions{})
	if err != nil {
		return nil, err
	}
	return &CitationList{Count: resp.Count, Results: []Citation{}}, nil
}
