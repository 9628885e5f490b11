// ABOUTME: Root CLI command with global flags shared by all subcommands
// ABOUTME: Wires up rule, search, docket, cite, mcp, and version commands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dccourt",
		Short: "DC District Court research tools",
		Long: `dccourt - research tools for DC District Court filings

Look up DC local civil rules, search case law and dockets on
CourtListener, and resolve citations, from the command line or as an
MCP server for LLM agents.

Case-law commands need COURTLISTENER_API_TOKEN (free at
courtlistener.com). Rule commands work offline against the bundled
corpus.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, text, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewRuleCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewDocketCmd())
	cmd.AddCommand(NewCiteCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
