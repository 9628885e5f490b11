// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents like Claude to use the research tools via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/openclerk/dccourt/internal/courtlistener"
	"github.com/openclerk/dccourt/internal/mcp"
	"github.com/openclerk/dccourt/internal/research"
	"github.com/openclerk/dccourt/internal/rules"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the research tools as an MCP (Model Context Protocol) server,
exposing rule lookup, case-law search, docket, and citation tools to
LLM agents via stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  dccourt mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "dccourt": {
  #       "command": "dccourt",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	index, report := rules.Load(cfg.RulesDir)
	if !quiet {
		log.Printf("Rule corpus: %s (%d documents, %d chunks)", report.Status(), index.Documents(), index.Chunks())
	}

	var client *courtlistener.Client
	if cfg.HasCourtListener() {
		client, err = newClient(cfg)
		if err != nil {
			return err
		}
	} else {
		log.Println("Warning: COURTLISTENER_API_TOKEN not set - case-law tools will be unavailable")
	}

	var researcher *research.PerplexityClient
	if cfg.HasPerplexity() {
		researchCfg := research.DefaultConfig(cfg.PerplexityKey)
		researchCfg.MaxRetries = cfg.MaxRetries
		researchCfg.RetryDelay = cfg.RetryDelay
		researcher, err = research.NewPerplexityClientWithConfig(researchCfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize Perplexity client: %v", err)
		} else if verbose {
			log.Println("Perplexity research fallback initialized")
		}
	}

	server := mcpserver.NewMCPServer(
		"DC Court Research",
		"0.1.0",
	)
	mcp.RegisterTools(server, index, client, researcher, cfg.MaxPageSize)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("DC court research MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
