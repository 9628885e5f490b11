// ABOUTME: CLI command for full-text case-law search via CourtListener
// ABOUTME: Supports type, court, judge, and date filters with paged output
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclerk/dccourt/internal/courtlistener"
)

var (
	searchResultType string
	searchCourt      string
	searchJudge      string
	searchAfter      string
	searchBefore     string
	searchPage       int
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search case law on CourtListener",
		Long: `Full-text search of case law, dockets, and filings on CourtListener.

Searches opinions by default. Use --type to search RECAP filings (r),
dockets (d), or people (p) instead.

Examples:
  dccourt search "motion to dismiss judicial review"
  dccourt search --court dcd --judge Boasberg "preliminary injunction"
  dccourt search --type d --filed-after 2024-01-01 "APA challenge"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringVar(&searchResultType, "type", "o", "Result type: o, r, d, p")
	cmd.Flags().StringVar(&searchCourt, "court", "", "Court identifier (e.g. dcd, cadc)")
	cmd.Flags().StringVar(&searchJudge, "judge", "", "Judge name")
	cmd.Flags().StringVar(&searchAfter, "filed-after", "", "Filed on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&searchBefore, "filed-before", "", "Filed on or before (YYYY-MM-DD)")
	cmd.Flags().IntVar(&searchPage, "page", 0, "Result page to fetch")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	query := args[0]
	if searchJudge != "" {
		// Initials like "JEB" resolve to the full roster name.
		judge := searchJudge
		if j, ok := courtlistener.LookupJudge(searchJudge); ok {
			judge = j.Name
		}
		query = fmt.Sprintf("%s judge:%q", query, judge)
	}

	opts := courtlistener.SearchOptions{Page: searchPage}
	if searchCourt != "" {
		opts.Court = courtlistener.String(searchCourt)
	}
	if searchAfter != "" {
		opts.FiledAfter = courtlistener.String(searchAfter)
	}
	if searchBefore != "" {
		opts.FiledBefore = courtlistener.String(searchBefore)
	}

	resp, err := client.FullTextSearch(cmd.Context(), query, courtlistener.SearchType(searchResultType), opts)
	if err != nil {
		return fmt.Errorf("searching case law: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if len(resp.Results) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No results for query: %s\n", query)
		}
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Found %d results:\n", resp.Count)
	for i := range resp.Results {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", courtlistener.FormatSearchResult(&resp.Results[i]))
	}
	if resp.Next != nil && !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nMore results available; use --page to fetch the next page.\n")
	}
	return nil
}
