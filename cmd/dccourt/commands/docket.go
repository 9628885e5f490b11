// ABOUTME: CLI command to fetch a docket with its entries and parties
// ABOUTME: Renders the docket header plus optional entry and party listings
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclerk/dccourt/internal/courtlistener"
)

var (
	docketEntries  bool
	docketParties  bool
	docketPage     int
	docketPageSize int
)

// NewDocketCmd creates the docket command
func NewDocketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docket <id>",
		Short: "Fetch a PACER docket from CourtListener",
		Long: `Fetch a docket by its CourtListener id, optionally with its filing
entries and parties.

Examples:
  dccourt docket 65748821
  dccourt docket 65748821 --entries
  dccourt docket 65748821 --parties --page-size 10`,
		Args: cobra.ExactArgs(1),
		RunE: runDocket,
	}

	cmd.Flags().BoolVar(&docketEntries, "entries", false, "Also list filing entries")
	cmd.Flags().BoolVar(&docketParties, "parties", false, "Also list parties and attorneys")
	cmd.Flags().IntVar(&docketPage, "page", 0, "Page of entries/parties to fetch")
	cmd.Flags().IntVar(&docketPageSize, "page-size", 20, "Entries/parties per page (max 50)")

	return cmd
}

func runDocket(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	var docketID int64
	if _, err := fmt.Sscanf(args[0], "%d", &docketID); err != nil || docketID <= 0 {
		return fmt.Errorf("docket id must be a positive integer, got %q", args[0])
	}
	if err := validatePositiveInt(docketPageSize, "page-size"); err != nil {
		return err
	}

	docket, err := client.GetDocket(cmd.Context(), docketID)
	if err != nil {
		return fmt.Errorf("fetching docket: %w", err)
	}

	opts := courtlistener.PageOptions{
		Page:     docketPage,
		PageSize: clampPageSize(docketPageSize, cfg.MaxPageSize),
	}

	if outputFormat == "json" {
		response := map[string]interface{}{"docket": docket}
		if docketEntries {
			entries, err := client.GetDocketEntries(cmd.Context(), docketID, opts)
			if err != nil {
				return fmt.Errorf("fetching docket entries: %w", err)
			}
			response["entries"] = entries
		}
		if docketParties {
			parties, err := client.GetParties(cmd.Context(), docketID, opts)
			if err != nil {
				return fmt.Errorf("fetching parties: %w", err)
			}
			response["parties"] = parties
		}
		jsonData, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", courtlistener.FormatDocket(docket))
	if verbose && courtlistener.IsImmigrationNOS(docket.NatureOfSuit) {
		fmt.Fprintln(cmd.OutOrStdout(), "Note: immigration nature-of-suit code")
	}

	if docketEntries {
		entries, err := client.GetDocketEntries(cmd.Context(), docketID, opts)
		if err != nil {
			return fmt.Errorf("fetching docket entries: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nEntries (%d total):\n%s\n", entries.Count,
			courtlistener.FormatDocketEntries(entries.Results))
	}

	if docketParties {
		parties, err := client.GetParties(cmd.Context(), docketID, opts)
		if err != nil {
			return fmt.Errorf("fetching parties: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", courtlistener.FormatParties(parties.Results))
	}

	return nil
}
