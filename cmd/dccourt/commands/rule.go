// ABOUTME: CLI command to look up and search DC local civil rules
// ABOUTME: Works offline against the bundled rule corpus
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclerk/dccourt/internal/rules"
)

var (
	ruleSearch bool
)

// NewRuleCmd creates the rule command
func NewRuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rule <identifier>",
		Short: "Look up a DC local civil rule",
		Long: `Look up a DC local civil rule by identifier, or search the rule
corpus by keyword.

Lookup is forgiving: an exact rule number wins, otherwise partial
matches over rule numbers and section names are returned.

Examples:
  dccourt rule "LCvR 5.1"
  dccourt rule 7
  dccourt rule --search "page limit"
  dccourt rule --search "font" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runRule,
	}

	cmd.Flags().BoolVar(&ruleSearch, "search", false, "Treat the argument as a keyword query")

	return cmd
}

func runRule(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	index, report := rules.Load(cfg.RulesDir)
	if report.Status() == rules.StatusEmpty && !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: no rule documents loaded from %s\n", cfg.RulesDir)
	}

	if ruleSearch {
		return printRuleSearch(cmd, index, args[0])
	}
	return printRuleLookup(cmd, index, args[0])
}

func printRuleLookup(cmd *cobra.Command, index *rules.Index, id string) error {
	result := index.Lookup(id)

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	switch result.Kind {
	case rules.LookupDocument:
		doc := result.Document
		fmt.Fprintf(cmd.OutOrStdout(), "%s - %s\n", doc.Rule, doc.Title)
		for _, chunk := range doc.Chunks {
			fmt.Fprintf(cmd.OutOrStdout(), "\n[%s] %s\n%s\n", chunk.Section, chunk.Title, chunk.Content)
		}
	case rules.LookupChunks:
		fmt.Fprintf(cmd.OutOrStdout(), "%d matching sections:\n", len(result.Chunks))
		for _, chunk := range result.Chunks {
			fmt.Fprintf(cmd.OutOrStdout(), "\n[%s] %s\n%s\n", chunk.Section, chunk.Title, chunk.Content)
		}
	case rules.LookupMiss:
		fmt.Fprintf(cmd.OutOrStdout(), "No rule matching %q. Known rules:\n", id)
		for _, known := range result.KnownRules {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", known)
		}
	}
	return nil
}

func printRuleSearch(cmd *cobra.Command, index *rules.Index, query string) error {
	results := index.Search(query)

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if len(results) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No rule fragments match: %s\n", query)
		}
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n  %s\n", r.Section, r.Title, truncate(r.Content, 200))
	}
	return nil
}
