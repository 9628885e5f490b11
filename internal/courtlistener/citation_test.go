// ABOUTME: Tests for citation parsing and the two-path citation lookup
// ABOUTME: Covers standard reporter triples and the irregular-citation fallback
package courtlistener

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseCitation(t *testing.T) {
	tests := []struct {
		input    string
		volume   int
		reporter string
		page     string
	}{
		{"550 U.S. 544", 550, "U.S.", "544"},
		{"128 S. Ct. 2783", 128, "S. Ct.", "2783"},
		{"456 F. Supp. 3d 200", 456, "F. Supp. 3d", "200"},
		{"987 F.2d 65", 987, "F.2d", "65"},
		{"  550 U.S. 544  ", 550, "U.S.", "544"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, ok := ParseCitation(tt.input)
			if !ok {
				t.Fatalf("ParseCitation(%q) not recognized", tt.input)
			}
			if parsed.Volume != tt.volume {
				t.Errorf("Volume = %d, want %d", parsed.Volume, tt.volume)
			}
			if parsed.Reporter != tt.reporter {
				t.Errorf("Reporter = %q, want %q", parsed.Reporter, tt.reporter)
			}
			if parsed.Page != tt.page {
				t.Errorf("Page = %q, want %q", parsed.Page, tt.page)
			}
		})
	}
}

func TestParseCitation_Irregular(t *testing.T) {
	for _, input := range []string{
		"Twombly",
		"Bell Atlantic Corp. v. Twombly",
		"550 U.S.",
		"U.S. 544",
		"550 U.S. 544 (2007)",
		"",
	} {
		if _, ok := ParseCitation(input); ok {
			t.Errorf("ParseCitation(%q) recognized; want irregular", input)
		}
	}
}

func TestLookupCitation_WellFormed(t *testing.T) {
	srv, captured := recordingServer(t, http.StatusOK,
		`{"count": 1, "results": [{"volume": 550, "reporter": "U.S.", "page": "544", "cluster": "https://example.com/clusters/108713/"}]}`)
	client := NewClient("tok", WithBaseURL(srv.URL))

	list, err := client.LookupCitation(context.Background(), "550 U.S. 544")
	if err != nil {
		t.Fatalf("LookupCitation() error = %v", err)
	}

	if captured.URL.Path != "/citations/" {
		t.Errorf("Path = %q, want /citations/", captured.URL.Path)
	}
	query := captured.URL.Query()
	if got := query.Get("volume"); got != "550" {
		t.Errorf("volume = %q, want 550", got)
	}
	if got := query.Get("reporter"); got != "U.S." {
		t.Errorf("reporter = %q, want U.S.", got)
	}
	if got := query.Get("page"); got != "544" {
		t.Errorf("page = %q, want 544", got)
	}

	if list.Count != 1 || len(list.Results) != 1 {
		t.Fatalf("Count = %d, len(Results) = %d, want 1 and 1", list.Count, len(list.Results))
	}
	if list.Results[0].Cluster != "https://example.com/clusters/108713/" {
		t.Errorf("Cluster = %q, want cluster URL", list.Results[0].Cluster)
	}
}

func TestLookupCitation_IrregularFallsBackToSearch(t *testing.T) {
	srv, captured := recordingServer(t, http.StatusOK, `{"count": 37, "results": [{"caseName": "Bell Atlantic Corp. v. Twombly"}]}`)
	client := NewClient("tok", WithBaseURL(srv.URL))

	list, err := client.LookupCitation(context.Background(), "Twombly")
	if err != nil {
		t.Fatalf("LookupCitation() error = %v", err)
	}

	if captured.URL.Path != "/search/" {
		t.Errorf("Path = %q, want /search/", captured.URL.Path)
	}
	query := captured.URL.Query()
	if got := query.Get("q"); got != `"Twombly"` {
		t.Errorf("q = %q, want quoted citation", got)
	}
	if got := query.Get("type"); got != "o" {
		t.Errorf("type = %q, want o", got)
	}

	// The fallback carries only the match count; results stay empty.
	if list.Count != 37 {
		t.Errorf("Count = %d, want 37", list.Count)
	}
	if len(list.Results) != 0 {
		t.Errorf("len(Results) = %d, want 0", len(list.Results))
	}
}

func TestLookupCitation_FallbackErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "search index offline")
	}))
	t.Cleanup(srv.Close)
	client := NewClient("tok", WithBaseURL(srv.URL))

	if _, err := client.LookupCitation(context.Background(), "Twombly"); err == nil {
		t.Fatal("expected error from failed fallback search")
	}
}
