// ABOUTME: MCP tool definitions and registration for the DC court research server
// ABOUTME: Defines JSON schemas for rule lookup, case-law search, and docket tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/openclerk/dccourt/internal/courtlistener"
	"github.com/openclerk/dccourt/internal/research"
	"github.com/openclerk/dccourt/internal/rules"
)

// RegisterTools registers all MCP tools with the server. client and
// researcher may be nil when the corresponding API token is not
// configured; the handlers answer with a not-configured message instead.
func RegisterTools(server *mcpserver.MCPServer, index *rules.Index, client *courtlistener.Client, researcher *research.PerplexityClient, maxPageSize int) *Handlers {
	handlers := &Handlers{
		rules:       index,
		client:      client,
		researcher:  researcher,
		maxPageSize: maxPageSize,
	}

	// 1. get_court_rule - Look up a DC local rule by identifier
	server.AddTool(mcp.Tool{
		Name:        "get_court_rule",
		Description: "Look up a DC District Court local civil rule by identifier (e.g. 'LCvR 5.1'). Falls back to fuzzy matching over rule numbers and sections.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"rule": map[string]interface{}{
					"type":        "string",
					"description": "Rule identifier or section name",
				},
			},
			Required: []string{"rule"},
		},
	}, handlers.GetCourtRule)

	// 2. search_court_rules - Keyword search across the rule corpus
	server.AddTool(mcp.Tool{
		Name:        "search_court_rules",
		Description: "Search the DC local civil rules by keyword. An empty query lists every rule fragment.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Keyword or phrase to search for",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchCourtRules)

	// 3. search_case_law - Full-text search over CourtListener
	server.AddTool(mcp.Tool{
		Name:        "search_case_law",
		Description: "Full-text search of case law via CourtListener. Searches opinions by default; use type to search RECAP filings, dockets, or people.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query",
				},
				"type": map[string]interface{}{
					"type":        "string",
					"description": "Result type: o (opinions), r (recap filings), d (dockets), p (people)",
					"default":     "o",
				},
				"court": map[string]interface{}{
					"type":        "string",
					"description": "Court identifier (e.g. dcd, cadc). Defaults to all courts.",
				},
				"filed_after": map[string]interface{}{
					"type":        "string",
					"description": "Only results filed on or after this date (YYYY-MM-DD)",
				},
				"filed_before": map[string]interface{}{
					"type":        "string",
					"description": "Only results filed on or before this date (YYYY-MM-DD)",
				},
				"judge": map[string]interface{}{
					"type":        "string",
					"description": "Judge name to scope the search to",
				},
				"page": map[string]interface{}{
					"type":        "number",
					"description": "Result page to fetch (default: 1)",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchCaseLaw)

	// 4. get_docket - Fetch one docket by id
	server.AddTool(mcp.Tool{
		Name:        "get_docket",
		Description: "Fetch a PACER docket by its CourtListener id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"docket_id": map[string]interface{}{
					"type":        "number",
					"description": "CourtListener docket id",
				},
			},
			Required: []string{"docket_id"},
		},
	}, handlers.GetDocket)

	// 5. get_docket_entries - Fetch filing entries for a docket
	server.AddTool(mcp.Tool{
		Name:        "get_docket_entries",
		Description: "Fetch the filing entries of a docket, with attached document counts.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"docket_id": map[string]interface{}{
					"type":        "number",
					"description": "CourtListener docket id",
				},
				"page": map[string]interface{}{
					"type":        "number",
					"description": "Page number (default: 1)",
				},
				"page_size": map[string]interface{}{
					"type":        "number",
					"description": "Entries per page (default: 20, max: 50)",
				},
			},
			Required: []string{"docket_id"},
		},
	}, handlers.GetDocketEntries)

	// 6. get_parties - Fetch parties and attorneys for a docket
	server.AddTool(mcp.Tool{
		Name:        "get_parties",
		Description: "Fetch the parties of a docket with their attorneys, grouped by party type.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"docket_id": map[string]interface{}{
					"type":        "number",
					"description": "CourtListener docket id",
				},
				"page": map[string]interface{}{
					"type":        "number",
					"description": "Page number (default: 1)",
				},
				"page_size": map[string]interface{}{
					"type":        "number",
					"description": "Parties per page (default: 20, max: 50)",
				},
			},
			Required: []string{"docket_id"},
		},
	}, handlers.GetParties)

	// 7. get_opinion_cluster - Fetch one opinion cluster by id
	server.AddTool(mcp.Tool{
		Name:        "get_opinion_cluster",
		Description: "Fetch a judicial opinion cluster by its CourtListener id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"cluster_id": map[string]interface{}{
					"type":        "number",
					"description": "CourtListener opinion cluster id",
				},
			},
			Required: []string{"cluster_id"},
		},
	}, handlers.GetOpinionCluster)

	// 8. get_citing_opinions - Fetch clusters citing a given cluster
	server.AddTool(mcp.Tool{
		Name:        "get_citing_opinions",
		Description: "Fetch opinions that cite a given opinion cluster.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"cluster_id": map[string]interface{}{
					"type":        "number",
					"description": "CourtListener opinion cluster id",
				},
				"page": map[string]interface{}{
					"type":        "number",
					"description": "Page number (default: 1)",
				},
				"page_size": map[string]interface{}{
					"type":        "number",
					"description": "Results per page (default: 20, max: 50)",
				},
			},
			Required: []string{"cluster_id"},
		},
	}, handlers.GetCitingOpinions)

	// 9. lookup_citation - Resolve a citation string
	server.AddTool(mcp.Tool{
		Name:        "lookup_citation",
		Description: "Look up a citation like '550 U.S. 544'. Irregular citations fall back to a full-text search and return only a match count.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"citation": map[string]interface{}{
					"type":        "string",
					"description": "Citation text, e.g. '550 U.S. 544'",
				},
			},
			Required: []string{"citation"},
		},
	}, handlers.LookupCitation)

	// 10. deep_research - Perplexity research fallback
	server.AddTool(mcp.Tool{
		Name:        "deep_research",
		Description: "Research court cases via Perplexity when CourtListener is unavailable or returns nothing. Best-effort, AI-generated.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Research question or case description",
				},
				"type": map[string]interface{}{
					"type":        "string",
					"description": "Focus: o (opinions), d (dockets), r (filed documents)",
					"default":     "o",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.DeepResearch)

	return handlers
}
