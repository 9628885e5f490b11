// ABOUTME: MCP tool handler implementations for the DC court research server
// ABOUTME: Enforces caller-side pagination policy and not-configured responses
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openclerk/dccourt/internal/courtlistener"
	"github.com/openclerk/dccourt/internal/research"
	"github.com/openclerk/dccourt/internal/rules"
)

const notConfiguredMsg = "CourtListener is not configured. Set COURTLISTENER_API_TOKEN to enable case-law tools."

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	rules       *rules.Index
	client      *courtlistener.Client
	researcher  *research.PerplexityClient
	maxPageSize int
}

// pageOptions reads page/page_size arguments and applies the dispatcher's
// page-size ceiling. The client itself stays cap-free; the cap is caller
// policy.
func (h *Handlers) pageOptions(request mcp.CallToolRequest) courtlistener.PageOptions {
	opts := courtlistener.PageOptions{
		Page:     request.GetInt("page", 0),
		PageSize: request.GetInt("page_size", 0),
	}
	if h.maxPageSize > 0 && opts.PageSize > h.maxPageSize {
		opts.PageSize = h.maxPageSize
	}
	return opts
}

// GetCourtRule handles the get_court_rule tool.
func (h *Handlers) GetCourtRule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ruleID, err := request.RequireString("rule")
	if err != nil {
		return mcp.NewToolResultError("rule argument is required and must be a string"), nil
	}

	result := h.rules.Lookup(ruleID)

	var response map[string]interface{}
	switch result.Kind {
	case rules.LookupDocument:
		response = map[string]interface{}{
			"found":  true,
			"rule":   result.Document.Rule,
			"title":  result.Document.Title,
			"chunks": result.Document.Chunks,
		}
	case rules.LookupChunks:
		response = map[string]interface{}{
			"found":   true,
			"matches": result.Chunks,
		}
	case rules.LookupMiss:
		response = map[string]interface{}{
			"found":       false,
			"known_rules": result.KnownRules,
		}
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SearchCourtRules handles the search_court_rules tool.
func (h *Handlers) SearchCourtRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	results := h.rules.Search(query)

	response := map[string]interface{}{
		"count":   len(results),
		"results": results,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SearchCaseLaw handles the search_case_law tool.
func (h *Handlers) SearchCaseLaw(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.client == nil {
		return mcp.NewToolResultError(notConfiguredMsg), nil
	}

	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	searchType := courtlistener.SearchType(request.GetString("type", "o"))
	if judge := request.GetString("judge", ""); judge != "" {
		if j, ok := courtlistener.LookupJudge(judge); ok {
			judge = j.Name
		}
		query = fmt.Sprintf("%s judge:%q", query, judge)
	}

	opts := courtlistener.SearchOptions{
		Page: request.GetInt("page", 0),
	}
	if court := request.GetString("court", ""); court != "" {
		opts.Court = courtlistener.String(court)
	}
	if after := request.GetString("filed_after", ""); after != "" {
		opts.FiledAfter = courtlistener.String(after)
	}
	if before := request.GetString("filed_before", ""); before != "" {
		opts.FiledBefore = courtlistener.String(before)
	}

	resp, err := h.client.FullTextSearch(ctx, query, searchType, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if len(resp.Results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No results found for query: %s", query)), nil
	}

	sections := make([]string, 0, len(resp.Results)+1)
	sections = append(sections, fmt.Sprintf("Found %d results:", resp.Count))
	for i := range resp.Results {
		sections = append(sections, courtlistener.FormatSearchResult(&resp.Results[i]))
	}
	return mcp.NewToolResultText(strings.Join(sections, "\n\n---\n\n")), nil
}

// GetDocket handles the get_docket tool.
func (h *Handlers) GetDocket(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.client == nil {
		return mcp.NewToolResultError(notConfiguredMsg), nil
	}

	docketID := request.GetInt("docket_id", 0)
	if docketID <= 0 {
		return mcp.NewToolResultError("docket_id argument is required and must be a positive number"), nil
	}

	docket, err := h.client.GetDocket(ctx, int64(docketID))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch docket: %v", err)), nil
	}
	return mcp.NewToolResultText(courtlistener.FormatDocket(docket)), nil
}

// GetDocketEntries handles the get_docket_entries tool.
func (h *Handlers) GetDocketEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.client == nil {
		return mcp.NewToolResultError(notConfiguredMsg), nil
	}

	docketID := request.GetInt("docket_id", 0)
	if docketID <= 0 {
		return mcp.NewToolResultError("docket_id argument is required and must be a positive number"), nil
	}

	entries, err := h.client.GetDocketEntries(ctx, int64(docketID), h.pageOptions(request))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch docket entries: %v", err)), nil
	}

	if len(entries.Results) == 0 {
		return mcp.NewToolResultText("No docket entries found."), nil
	}

	header := fmt.Sprintf("%d entries total:\n\n", entries.Count)
	return mcp.NewToolResultText(header + courtlistener.FormatDocketEntries(entries.Results)), nil
}

// GetParties handles the get_parties tool.
func (h *Handlers) GetParties(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.client == nil {
		return mcp.NewToolResultError(notConfiguredMsg), nil
	}

	docketID := request.GetInt("docket_id", 0)
	if docketID <= 0 {
		return mcp.NewToolResultError("docket_id argument is required and must be a positive number"), nil
	}

	parties, err := h.client.GetParties(ctx, int64(docketID), h.pageOptions(request))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch parties: %v", err)), nil
	}

	if len(parties.Results) == 0 {
		return mcp.NewToolResultText("No parties found."), nil
	}
	return mcp.NewToolResultText(courtlistener.FormatParties(parties.Results)), nil
}

// GetOpinionCluster handles the get_opinion_cluster tool.
func (h *Handlers) GetOpinionCluster(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.client == nil {
		return mcp.NewToolResultError(notConfiguredMsg), nil
	}

	clusterID := request.GetInt("cluster_id", 0)
	if clusterID <= 0 {
		return mcp.NewToolResultError("cluster_id argument is required and must be a positive number"), nil
	}

	cluster, err := h.client.GetOpinionCluster(ctx, int64(clusterID))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch opinion cluster: %v", err)), nil
	}
	return mcp.NewToolResultText(courtlistener.FormatOpinionCluster(cluster)), nil
}

// GetCitingOpinions handles the get_citing_opinions tool.
func (h *Handlers) GetCitingOpinions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.client == nil {
		return mcp.NewToolResultError(notConfiguredMsg), nil
	}

	clusterID := request.GetInt("cluster_id", 0)
	if clusterID <= 0 {
		return mcp.NewToolResultError("cluster_id argument is required and must be a positive number"), nil
	}

	citing, err := h.client.GetCitingOpinions(ctx, int64(clusterID), h.pageOptions(request))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch citing opinions: %v", err)), nil
	}

	if len(citing.Results) == 0 {
		return mcp.NewToolResultText("No citing opinions found."), nil
	}

	sections := make([]string, 0, len(citing.Results)+1)
	sections = append(sections, fmt.Sprintf("Cited by %d opinions:", citing.Count))
	for i := range citing.Results {
		sections = append(sections, courtlistener.FormatOpinionCluster(&citing.Results[i]))
	}
	return mcp.NewToolResultText(strings.Join(sections, "\n\n---\n\n")), nil
}

// LookupCitation handles the lookup_citation tool.
func (h *Handlers) LookupCitation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.client == nil {
		return mcp.NewToolResultError(notConfiguredMsg), nil
	}

	citation, err := request.RequireString("citation")
	if err != nil {
		return mcp.NewToolResultError("citation argument is required and must be a string"), nil
	}

	list, err := h.client.LookupCitation(ctx, citation)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("citation lookup failed: %v", err)), nil
	}

	responseJSON, err := json.Marshal(list)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// DeepResearch handles the deep_research tool.
func (h *Handlers) DeepResearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.researcher == nil {
		return mcp.NewToolResultError("Perplexity research is not configured. Set PERPLEXITY_API_KEY to enable deep research."), nil
	}

	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	searchType := request.GetString("type", "o")
	content, err := h.researcher.SearchCases(ctx, query, searchType)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("research failed: %v", err)), nil
	}
	return mcp.NewToolResultText(content), nil
}
