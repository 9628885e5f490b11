// ABOUTME: Thin typed client for the CourtListener REST API v4
// ABOUTME: Composes query parameters, attaches token auth, surfaces raw errors
package courtlistener

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the public CourtListener API root.
const DefaultBaseURL = "https://www.courtlistener.com/api/rest/v4"

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx response from the API. The body is kept verbatim
// because the service returns HTML, plain text, or JSON depending on the
// failure; downstream consumers decide whether to parse it.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("courtlistener: status %d: %s", e.StatusCode, e.Body)
}

// Client wraps the CourtListener API. Its fields are fixed at
// construction and never reassigned, so concurrent calls are safe and
// fully independent. The token is not validated until a request is made.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a client for the given API token. Callers are
// responsible for checking token availability before construction; the
// client itself has no unconfigured state.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:      token,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get is the request primitive all endpoint bindings go through. A key
// absent from params is omitted from the query string; a key mapped to
// "" is sent as an empty value, which some filters treat as meaningful.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	target := c.baseURL + endpoint
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("courtlistener: building request for %s: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("courtlistener: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("courtlistener: reading response from %s: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("courtlistener: decoding response from %s: %w", endpoint, err)
	}
	return nil
}

// PageOptions selects a page of a list endpoint. Zero values are omitted
// from the request, leaving server defaults in effect.
type PageOptions struct {
	Page     int
	PageSize int
}

func (o PageOptions) apply(params map[string]string) {
	if o.Page > 0 {
		params["page"] = strconv.Itoa(o.Page)
	}
	if o.PageSize > 0 {
		params["page_size"] = strconv.Itoa(o.PageSize)
	}
}

func setStr(params map[string]string, key string, v *string) {
	if v != nil {
		params[key] = *v
	}
}

func setInt(params map[string]string, key string, v *int) {
	if v != nil {
		params[key] = strconv.Itoa(*v)
	}
}

// DocketSearchOptions filters a docket search. Nil fields are omitted
// from the request.
type DocketSearchOptions struct {
	Court                *string // court id, e.g. "dcd"
	CourtIn              *string // comma-separated court ids
	CaseName             *string
	CaseNameContains     *string
	DocketNumber         *string
	DocketNumberContains *string
	NatureOfSuit         *string
	FiledAfter           *string // YYYY-MM-DD
	FiledBefore          *string
	OpenOnly             *bool // restrict to cases with no termination date
	Judge                *string
	OrderBy              *string
	Page                 int
	PageSize             int
}

// SearchDockets searches PACER case records.
func (c *Client) SearchDockets(ctx context.Context, opts DocketSearchOptions) (*DocketList, error) {
	params := map[string]string{}
	setStr(params, "court", opts.Court)
	setStr(params, "court__in", opts.CourtIn)
	setStr(params, "case_name", opts.CaseName)
	setStr(params, "case_name__icontains", opts.CaseNameContains)
	setStr(params, "docket_number", opts.DocketNumber)
	setStr(params, "docket_number__icontains", opts.DocketNumberContains)
	setStr(params, "nature_of_suit", opts.NatureOfSuit)
	setStr(params, "date_filed__gte", opts.FiledAfter)
	setStr(params, "date_filed__lte", opts.FiledBefore)
	if opts.OpenOnly != nil && *opts.OpenOnly {
		params["date_terminated__isnull"] = "True"
	}
	setStr(params, "assigned_to_str__icontains", opts.Judge)
	setStr(params, "order_by", opts.OrderBy)
	PageOptions{Page: opts.Page, PageSize: opts.PageSize}.apply(params)

	var out DocketList
	if err := c.get(ctx, "/dockets/", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDocket fetches a single docket by its numeric id.
func (c *Client) GetDocket(ctx context.Context, docketID int64) (*Docket, error) {
	var out Docket
	if err := c.get(ctx, fmt.Sprintf("/dockets/%d/", docketID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDocketEntries fetches the filing entries of a docket.
func (c *Client) GetDocketEntries(ctx context.Context, docketID int64, opts PageOptions) (*DocketEntryList, error) {
	params := map[string]string{"docket": strconv.FormatInt(docketID, 10)}
	opts.apply(params)

	var out DocketEntryList
	if err := c.get(ctx, "/docket-entries/", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDocument fetches a single RECAP document by id.
func (c *Client) GetDocument(ctx context.Context, documentID int64) (*RecapDocument, error) {
	var out RecapDocument
	if err := c.get(ctx, fmt.Sprintf("/recap-documents/%d/", documentID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetParties fetches the parties of a docket with their attorneys.
func (c *Client) GetParties(ctx context.Context, docketID int64, opts PageOptions) (*PartyList, error) {
	params := map[string]string{"docket": strconv.FormatInt(docketID, 10)}
	opts.apply(params)

	var out PartyList
	if err := c.get(ctx, "/parties/", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAttorneys fetches the attorneys on a docket.
func (c *Client) GetAttorneys(ctx context.Context, docketID int64, opts PageOptions) (*AttorneyList, error) {
	params := map[string]string{"docket": strconv.FormatInt(docketID, 10)}
	opts.apply(params)

	var out AttorneyList
	if err := c.get(ctx, "/attorneys/", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OpinionSearchOptions filters an opinion cluster search.
type OpinionSearchOptions struct {
	Court              *string
	CourtIn            *string
	CaseName           *string
	CaseNameContains   *string
	Judge              *string
	FiledAfter         *string
	FiledBefore        *string
	MinCitationCount   *int
	PrecedentialStatus *string // "Published" or "Unpublished"
	OrderBy            *string
	Page               int
	PageSize           int
}

// SearchOpinions searches opinion clusters.
func (c *Client) SearchOpinions(ctx context.Context, opts OpinionSearchOptions) (*ClusterList, error) {
	params := map[string]string{}
	setStr(params, "court", opts.Court)
	setStr(params, "court__in", opts.CourtIn)
	setStr(params, "case_name", opts.CaseName)
	setStr(params, "case_name__icontains", opts.CaseNameContains)
	setStr(params, "judge", opts.Judge)
	setStr(params, "date_filed__gte", opts.FiledAfter)
	setStr(params, "date_filed__lte", opts.FiledBefore)
	setInt(params, "citation_count__gte", opts.MinCitationCount)
	setStr(params, "precedential_status", opts.PrecedentialStatus)
	setStr(params, "order_by", opts.OrderBy)
	PageOptions{Page: opts.Page, PageSize: opts.PageSize}.apply(params)

	var out ClusterList
	if err := c.get(ctx, "/clusters/", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOpinionCluster fetches a single opinion cluster by id.
func (c *Client) GetOpinionCluster(ctx context.Context, clusterID int64) (*OpinionCluster, error) {
	var out OpinionCluster
	if err := c.get(ctx, fmt.Sprintf("/clusters/%d/", clusterID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCitingOpinions fetches clusters that cite the given cluster. The
// API reuses the clusters endpoint with a "cites" filter, so the result
// has the same shape as a normal cluster search.
func (c *Client) GetCitingOpinions(ctx context.Context, clusterID int64, opts PageOptions) (*ClusterList, error) {
	params := map[string]string{"cites": strconv.FormatInt(clusterID, 10)}
	opts.apply(params)

	var out ClusterList
	if err := c.get(ctx, "/clusters/", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchType selects the remote search index to query.
type SearchType string

const (
	SearchOpinionsType SearchType = "o"
	SearchRecapType    SearchType = "r"
	SearchDocketsType  SearchType = "d"
	SearchPeopleType   SearchType = "p"
)

// SearchOptions filters a full-text search. Nil fields are omitted.
type SearchOptions struct {
	Court            *string
	FiledAfter       *string
	FiledBefore      *string
	CitedGreaterThan *int
	CitedLessThan    *int
	OrderBy          *string
	Precedential     *bool // stat_Precedential=on
	NonPrecedential  *bool // stat_Non_Precedential=on
	Page             int
}

// FullTextSearch queries the remote search index across opinions, RECAP
// filings, dockets, or people.
func (c *Client) FullTextSearch(ctx context.Context, query string, searchType SearchType, opts SearchOptions) (*SearchResponse, error) {
	params := map[string]string{
		"q":    query,
		"type": string(searchType),
	}
	setStr(params, "court", opts.Court)
	setStr(params, "filed_after", opts.FiledAfter)
	setStr(params, "filed_before", opts.FiledBefore)
	setInt(params, "cited_gt", opts.CitedGreaterThan)
	setInt(params, "cited_lt", opts.CitedLessThan)
	setStr(params, "order_by", opts.OrderBy)
	if opts.Precedential != nil && *opts.Precedential {
		params["stat_Precedential"] = "on"
	}
	if opts.NonPrecedential != nil && *opts.NonPrecedential {
		params["stat_Non_Precedential"] = "on"
	}
	if opts.Page > 0 {
		params["page"] = strconv.Itoa(opts.Page)
	}

	var out SearchResponse
	if err := c.get(ctx, "/search/", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchDCCases is a convenience wrapper that scopes a full-text search
// to the DC District Court, with an optional judge qualifier folded into
// the query the way the search index expects.
func (c *Client) SearchDCCases(ctx context.Context, query string, searchType SearchType, opts DCSearchOptions) (*SearchResponse, error) {
	q := query
	if opts.Judge != "" {
		q = fmt.Sprintf("%s judge:%s", query, opts.Judge)
	}
	return c.FullTextSearch(ctx, q, searchType, SearchOptions{
		Court:       String(DCDistrictCourtID),
		FiledAfter:  opts.FiledAfter,
		FiledBefore: opts.FiledBefore,
		Page:        opts.Page,
	})
}

// DCSearchOptions narrows a DC case search.
type DCSearchOptions struct {
	FiledAfter  *string
	FiledBefore *string
	Judge       string
	Page        int
}
