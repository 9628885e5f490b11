// ABOUTME: Tests for the Perplexity research fallback client
// ABOUTME: Uses an httptest server speaking the OpenAI chat completions shape
package research

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const completionBody = `{
	"id": "cmpl-1",
	"object": "chat.completion",
	"choices": [
		{"index": 0, "message": {"role": "assistant", "content": "Smith v. Jones, No. 1:23-cv-00001 (D.D.C.)"}, "finish_reason": "stop"}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, maxRetries int) *PerplexityClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewPerplexityClientWithConfig(&ClientConfig{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		MaxRetries: maxRetries,
		RetryDelay: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewPerplexityClientWithConfig() error = %v", err)
	}
	return client
}

func TestNewPerplexityClient_RequiresKey(t *testing.T) {
	if _, err := NewPerplexityClient(""); err == nil {
		t.Error("expected error for empty API key")
	}
	if _, err := NewPerplexityClient("pk-test"); err != nil {
		t.Errorf("unexpected error for valid key: %v", err)
	}
}

func TestSearchCases(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want Bearer test-key", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody)
	}, 0)

	got, err := client.SearchCases(context.Background(), "FOIA exemption 5", "o")
	if err != nil {
		t.Fatalf("SearchCases() error = %v", err)
	}
	if !strings.Contains(got, "Smith v. Jones") {
		t.Errorf("SearchCases() = %q, want assistant content", got)
	}
}

func TestSearchCases_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody)
	}, 3)

	got, err := client.SearchCases(context.Background(), "habeas", "d")
	if err != nil {
		t.Fatalf("SearchCases() error after retries = %v", err)
	}
	if got == "" {
		t.Error("SearchCases() returned empty content after retry success")
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("server calls = %d, want 3", n)
	}
}

func TestSearchCases_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, 2)

	_, err := client.SearchCases(context.Background(), "habeas", "o")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Errorf("error = %v, want attempt count", err)
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("server calls = %d, want 3 (initial + 2 retries)", n)
	}
}

func TestSearchCases_NoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "cmpl-2", "object": "chat.completion", "choices": []}`)
	}, 0)

	_, err := client.SearchCases(context.Background(), "habeas", "o")
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
	if !strings.Contains(err.Error(), "no completion choices") {
		t.Errorf("error = %v, want no-choices cause", err)
	}
}
