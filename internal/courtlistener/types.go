// ABOUTME: Typed shapes for CourtListener REST API v4 entities and list envelopes
// ABOUTME: Transient per-request copies only; the remote system owns the records
package courtlistener

// Docket is one PACER case record.
type Docket struct {
	ID             int64  `json:"id"`
	DocketNumber   string `json:"docket_number"`
	CaseName       string `json:"case_name"`
	CaseNameFull   string `json:"case_name_full"`
	CourtID        string `json:"court_id"`
	DateFiled      string `json:"date_filed"`
	DateTerminated string `json:"date_terminated"`
	AssignedToStr  string `json:"assigned_to_str"`
	NatureOfSuit   string `json:"nature_of_suit"`
	Cause          string `json:"cause"`
}

// RecapDocument is a single filed document within a docket entry.
// PageCount is nil until the document has been processed upstream.
type RecapDocument struct {
	ID               int64  `json:"id"`
	DocumentNumber   string `json:"document_number"`
	AttachmentNumber *int   `json:"attachment_number"`
	Description      string `json:"description"`
	IsAvailable      bool   `json:"is_available"`
	PageCount        *int   `json:"page_count"`
	PlainText        string `json:"plain_text"`
}

// DocketEntry is one filing event on a docket. EntryNumber is nil for
// unnumbered entries (minute orders and the like).
type DocketEntry struct {
	ID             int64           `json:"id"`
	EntryNumber    *int64          `json:"entry_number"`
	DateFiled      string          `json:"date_filed"`
	Description    string          `json:"description"`
	RecapDocuments []RecapDocument `json:"recap_documents"`
}

// Attorney is counsel of record as nested under a party.
type Attorney struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Party is a litigant on a docket with its attorneys for that case.
type Party struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	TypeName  string     `json:"type_name"`
	Attorneys []Attorney `json:"attorneys"`
}

// Citation identifies where an opinion is published. Identity is the
// (volume, reporter, page) triple; Page stays a string because some
// reporters use non-numeric page tokens.
type Citation struct {
	Volume   int    `json:"volume"`
	Reporter string `json:"reporter"`
	Page     string `json:"page"`
	Cluster  string `json:"cluster,omitempty"`
}

// OpinionCluster is a published decision, possibly composed of several
// sub-opinions (majority, dissent, concurrence). SubOpinions carries the
// API resource URLs of the constituent opinion texts.
type OpinionCluster struct {
	ID                 int64      `json:"id"`
	CaseName           string     `json:"case_name"`
	CaseNameFull       string     `json:"case_name_full"`
	DateFiled          string     `json:"date_filed"`
	Judges             string     `json:"judges"`
	Citations          []Citation `json:"citations"`
	CitationCount      int        `json:"citation_count"`
	PrecedentialStatus string     `json:"precedential_status"`
	Summary            string     `json:"summary"`
	SubOpinions        []string   `json:"sub_opinions"`
}

// SearchResult is the denormalized projection returned by the remote
// search index. It deliberately mirrors the index fields rather than the
// canonical entity records; Snippet may carry HTML highlight markup.
type SearchResult struct {
	CaseName     string   `json:"caseName"`
	Court        string   `json:"court"`
	DateFiled    string   `json:"dateFiled"`
	DocketNumber string   `json:"docketNumber"`
	Citation     []string `json:"citation"`
	Judge        string   `json:"judge"`
	CiteCount    int      `json:"citeCount"`
	Snippet      string   `json:"snippet"`
	AbsoluteURL  string   `json:"absolute_url"`
}

// List envelopes share the API's pagination shape: Count is the
// server-side total, Next/Previous are opaque cursor URLs (nil at the
// ends), Results is one page. Callers follow Next themselves; the
// client never auto-paginates.

// DocketList is a page of dockets.
type DocketList struct {
	Count    int      `json:"count"`
	Next     *string  `json:"next"`
	Previous *string  `json:"previous"`
	Results  []Docket `json:"results"`
}

// DocketEntryList is a page of docket entries.
type DocketEntryList struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []DocketEntry `json:"results"`
}

// PartyList is a page of parties with nested attorneys.
type PartyList struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Party `json:"results"`
}

// AttorneyList is a page of attorneys.
type AttorneyList struct {
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []Attorney `json:"results"`
}

// ClusterList is a page of opinion clusters.
type ClusterList struct {
	Count    int              `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  []OpinionCluster `json:"results"`
}

// CitationList is a page of citation records. The lookup fallback path
// returns only Count with empty Results.
type CitationList struct {
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []Citation `json:"results"`
}

// SearchResponse is a page of full-text search results.
type SearchResponse struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []SearchResult `json:"results"`
}

// String returns a pointer to v, for optional request parameters. An
// empty string is a valid filter value and is distinct from nil (omitted).
func String(v string) *string { return &v }

// Int returns a pointer to v, for optional request parameters.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for optional request parameters.
func Bool(v bool) *bool { return &v }
