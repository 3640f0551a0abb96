package drugsfda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func TestSearchANDA_Paginates(t *testing.T) {
	fixtures := []map[string]any{andaFixture(), andaFixture()}
	var gotSearches []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotSearches = append(gotSearches, q.Get("search"))
		skip, _ := strconv.Atoi(q.Get("skip"))

		page := map[string]any{
			"meta": map[string]any{
				"results": map[string]any{"skip": skip, "limit": 1, "total": len(fixtures)},
			},
			"results": []any{fixtures[skip]},
		}
		json.NewEncoder(w).Encode(page)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithPageSize(1))
	results, err := client.SearchANDA(context.Background(), "090639", true)
	if err != nil {
		t.Fatalf("SearchANDA: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2 across pages", len(results))
	}
	if results[0].Products[0].DosageForm != "tablet" {
		t.Errorf("DosageForm = %q, want tablet", results[0].Products[0].DosageForm)
	}
	for _, s := range gotSearches {
		if s != "openfda.application_number:ANDA090639" {
			t.Errorf("search expression = %q", s)
		}
	}
}

func TestSearch_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	results, err := client.Search(context.Background(), "sponsor_name:NOBODY", true)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}

func TestSearch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	if _, err := client.Search(context.Background(), "x", true); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestSearchNDA_Query(t *testing.T) {
	var gotSearch string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSearch = r.URL.Query().Get("search")
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	if _, err := client.SearchNDA(context.Background(), "017031", true); err != nil {
		t.Fatalf("SearchNDA: %v", err)
	}
	if gotSearch != "openfda.application_number:NDA017031" {
		t.Errorf("search expression = %q", gotSearch)
	}
}
