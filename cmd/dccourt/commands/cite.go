// ABOUTME: CLI command to resolve a citation string against CourtListener
// ABOUTME: Irregular citations fall back to a full-text search count
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclerk/dccourt/internal/courtlistener"
)

// NewCiteCmd creates the cite command
func NewCiteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cite <citation>",
		Short: "Look up a citation",
		Long: `Look up a citation like "550 U.S. 544" against CourtListener.

Well-formed citations (volume reporter page) query the citation index
directly. Anything else falls back to a quoted full-text search and
reports only how many opinions matched.

Examples:
  dccourt cite "550 U.S. 544"
  dccourt cite "347 U.S. 483" --format json
  dccourt cite "Twombly"`,
		Args: cobra.ExactArgs(1),
		RunE: runCite,
	}

	return cmd
}

func runCite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	citation := args[0]
	list, err := client.LookupCitation(cmd.Context(), citation)
	if err != nil {
		return fmt.Errorf("looking up citation: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if parsed, ok := courtlistener.ParseCitation(citation); ok {
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "Parsed: volume=%d reporter=%s page=%s\n",
				parsed.Volume, parsed.Reporter, parsed.Page)
		}
		if len(list.Results) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No citation records for %s\n", citation)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d citation records:\n", list.Count)
		for _, c := range list.Results {
			fmt.Fprintf(cmd.OutOrStdout(), "  %d %s %s\n", c.Volume, c.Reporter, c.Page)
		}
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%q is not a standard citation; full-text search matched %d opinions.\n",
		citation, list.Count)
	return nil
}
