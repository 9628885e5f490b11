// ABOUTME: Pure display formatters for CourtListener entities
// ABOUTME: Tolerate missing optionals and strip highlight markup from snippets
package courtlistener

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// snippetPolicy strips every HTML tag, leaving only text content. Search
// snippets arrive with <mark> highlight markup that must not reach users.
var snippetPolicy = bluemonday.StrictPolicy()

const maxSummaryLen = 500

// FormatDocket renders a docket for display. Optional fields render
// nothing when absent.
func FormatDocket(d *Docket) string {
	caseName := d.CaseName
	if caseName == "" {
		caseName = "Unknown"
	}
	docketNumber := d.DocketNumber
	if docketNumber == "" {
		docketNumber = "N/A"
	}

	lines := []string{
		fmt.Sprintf("**%s**", caseName),
		fmt.Sprintf("Case No: %s", docketNumber),
		fmt.Sprintf("Court: %s", strings.ToUpper(d.CourtID)),
	}
	if d.DateFiled != "" {
		lines = append(lines, fmt.Sprintf("Filed: %s", d.DateFiled))
	}
	if d.DateTerminated != "" {
		lines = append(lines, fmt.Sprintf("Terminated: %s", d.DateTerminated))
	}
	if d.AssignedToStr != "" {
		lines = append(lines, fmt.Sprintf("Judge: %s", d.AssignedToStr))
	}
	if d.NatureOfSuit != "" {
		lines = append(lines, fmt.Sprintf("Nature of Suit: %s", d.NatureOfSuit))
	}
	if d.Cause != "" {
		lines = append(lines, fmt.Sprintf("Cause: %s", d.Cause))
	}
	return strings.Join(lines, "\n")
}

// FormatOpinionCluster renders an opinion cluster for display.
func FormatOpinionCluster(cluster *OpinionCluster) string {
	caseName := cluster.CaseName
	if caseName == "" {
		caseName = "Unknown"
	}
	dateFiled := cluster.DateFiled
	if dateFiled == "" {
		dateFiled = "N/A"
	}

	lines := []string{
		fmt.Sprintf("**%s**", caseName),
		fmt.Sprintf("Date: %s", dateFiled),
	}

	if len(cluster.Citations) > 0 {
		cites := make([]string, 0, len(cluster.Citations))
		for _, c := range cluster.Citations {
			cites = append(cites, fmt.Sprintf("%d %s %s", c.Volume, c.Reporter, c.Page))
		}
		lines = append(lines, fmt.Sprintf("Citation: %s", strings.Join(cites, ", ")))
	}
	if cluster.Judges != "" {
		lines = append(lines, fmt.Sprintf("Judges: %s", cluster.Judges))
	}

	lines = append(lines, fmt.Sprintf("Citation Count: %d", cluster.CitationCount))

	status := cluster.PrecedentialStatus
	if status == "" {
		status = "N/A"
	}
	lines = append(lines, fmt.Sprintf("Status: %s", status))

	if cluster.Summary != "" {
		summary := cluster.Summary
		if len(summary) > maxSummaryLen {
			summary = summary[:maxSummaryLen] + "..."
		}
		lines = append(lines, "", "Summary:", summary)
	}

	return strings.Join(lines, "\n")
}

// FormatSearchResult renders one full-text search result. The snippet is
// stripped of HTML highlight markup before display.
func FormatSearchResult(result *SearchResult) string {
	caseName := result.CaseName
	if caseName == "" {
		caseName = "Unknown"
	}
	court := result.Court
	if court == "" {
		court = "N/A"
	}
	dateFiled := result.DateFiled
	if dateFiled == "" {
		dateFiled = "N/A"
	}

	lines := []string{
		fmt.Sprintf("**%s**", caseName),
		fmt.Sprintf("Court: %s", court),
		fmt.Sprintf("Date Filed: %s", dateFiled),
	}

	if len(result.Citation) > 0 {
		lines = append(lines, fmt.Sprintf("Citations: %s", strings.Join(result.Citation, ", ")))
	}
	if result.Judge != "" {
		lines = append(lines, fmt.Sprintf("Judge: %s", result.Judge))
	}
	if result.CiteCount > 0 {
		lines = append(lines, fmt.Sprintf("Cited %d times", result.CiteCount))
	}
	if result.Snippet != "" {
		snippet := html.UnescapeString(snippetPolicy.Sanitize(result.Snippet))
		lines = append(lines, "", "Snippet:", snippet)
	}

	lines = append(lines, fmt.Sprintf("URL: https://www.courtlistener.com%s", result.AbsoluteURL))
	return strings.Join(lines, "\n")
}

// FormatDocketEntries renders a list of docket entries, one per line.
func FormatDocketEntries(entries []DocketEntry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		numStr := ""
		if entry.EntryNumber != nil {
			numStr = fmt.Sprintf("#%d ", *entry.EntryNumber)
		}
		dateStr := entry.DateFiled
		if dateStr == "" {
			dateStr = "No date"
		}
		description := entry.Description
		if description == "" {
			description = "N/A"
		}
		docCount := len(entry.RecapDocuments)
		plural := "s"
		if docCount == 1 {
			plural = ""
		}
		lines = append(lines, fmt.Sprintf("%s%s: %s (%d doc%s)", numStr, dateStr, description, docCount, plural))
	}
	return strings.Join(lines, "\n")
}

// FormatParties renders parties grouped by party type, with each party's
// attorneys nested beneath it. Grouping preserves first-seen order.
func FormatParties(parties []Party) string {
	grouped := make(map[string][]Party)
	var typeOrder []string

	for _, party := range parties {
		typeName := party.TypeName
		if typeName == "" {
			typeName = "Unknown"
		}
		if _, seen := grouped[typeName]; !seen {
			typeOrder = append(typeOrder, typeName)
		}
		grouped[typeName] = append(grouped[typeName], party)
	}

	var lines []string
	for _, typeName := range typeOrder {
		lines = append(lines, fmt.Sprintf("**%s:**", typeName))
		for _, party := range grouped[typeName] {
			name := party.Name
			if name == "" {
				name = "Unknown"
			}
			lines = append(lines, fmt.Sprintf("  - %s", name))
			for _, atty := range party.Attorneys {
				attyName := atty.Name
				if attyName == "" {
					attyName = "Unknown"
				}
				lines = append(lines, fmt.Sprintf("    Attorney: %s", attyName))
				if atty.Email != "" {
					lines = append(lines, fmt.Sprintf("    Email: %s", atty.Email))
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}
