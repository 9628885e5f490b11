// ABOUTME: Main entry point for the DC court research MCP server with stdio transport
// ABOUTME: Loads the rule corpus, builds API clients, and registers all tools
package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/openclerk/dccourt/internal/config"
	"github.com/openclerk/dccourt/internal/courtlistener"
	"github.com/openclerk/dccourt/internal/mcp"
	"github.com/openclerk/dccourt/internal/research"
	"github.com/openclerk/dccourt/internal/rules"
)

func main() {
	// Load .env file if it exists (for API tokens)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Load the rule corpus before serving anything. A partial or empty
	// index is still served; load problems are only logged.
	index, report := rules.Load(cfg.RulesDir)
	log.Printf("Rule corpus: %s (%d documents, %d chunks)", report.Status(), index.Documents(), index.Chunks())

	// The CourtListener client is only constructed with a token; without
	// one the tools answer with a not-configured message.
	var client *courtlistener.Client
	if cfg.HasCourtListener() {
		client = courtlistener.NewClient(cfg.CourtListenerToken,
			courtlistener.WithBaseURL(cfg.CourtListenerURL),
			courtlistener.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))
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
		}
	}

	server := mcpserver.NewMCPServer(
		"DC Court Research",
		"0.1.0",
	)

	mcp.RegisterTools(server, index, client, researcher, cfg.MaxPageSize)

	log.Println("DC court research MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
