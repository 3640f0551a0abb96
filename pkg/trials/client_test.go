package trials

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchIntervention_Paginates(t *testing.T) {
	var gotQueries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQueries = append(gotQueries, q.Get("query.intr"))

		page := map[string]any{"studies": []any{studyFixture()}}
		if q.Get("pageToken") == "" {
			page["nextPageToken"] = "tok-2"
		}
		json.NewEncoder(w).Encode(page)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	studies, err := client.SearchIntervention(context.Background(), "imatinib", true)
	if err != nil {
		t.Fatalf("SearchIntervention: %v", err)
	}

	if len(studies) != 2 {
		t.Fatalf("studies = %d, want 2 across pages", len(studies))
	}
	if studies[0].Protocol.Identification.NCTID != "NCT00769782" {
		t.Errorf("NCTID = %q", studies[0].Protocol.Identification.NCTID)
	}
	if len(gotQueries) != 2 || gotQueries[0] != "imatinib" {
		t.Errorf("queries = %v", gotQueries)
	}
}

func TestSearchIntervention_EmptyQuery(t *testing.T) {
	client := NewClient()
	if _, err := client.SearchIntervention(context.Background(), "", true); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("err = %v, want ErrEmptyQuery", err)
	}
}

func TestSearchIntervention_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	if _, err := client.SearchIntervention(context.Background(), "imatinib", true); err == nil {
		t.Error("expected error for non-200 status")
	}
}
