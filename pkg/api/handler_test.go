package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hazyhaar/drugreg/pkg/drugsfda"
	"github.com/hazyhaar/drugreg/pkg/rxclass"
	"github.com/hazyhaar/drugreg/pkg/trials"
	"github.com/hazyhaar/drugreg/pkg/vocab"
)

// testServices points every client at a stub upstream and loads the built-in
// vocabularies.
func testServices(t *testing.T, upstream string) *Services {
	t.Helper()
	reg := vocab.NewRegistry()
	reg.Add(drugsfda.Vocabularies()...)
	reg.Add(trials.Vocabularies()...)
	reg.Add(rxclass.Vocabularies()...)
	return &Services{
		Drugs:   drugsfda.NewClient(drugsfda.WithBaseURL(upstream)),
		Trials:  trials.NewClient(trials.WithBaseURL(upstream)),
		RxClass: rxclass.NewClient(rxclass.WithBaseURL(upstream)),
		Vocab:   reg,
	}
}

func TestRouter_Health(t *testing.T) {
	router := NewRouter(testServices(t, "http://unused.invalid"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" || resp.Vocabularies != 24 {
		t.Errorf("health = %+v, want ok with 24 vocabularies", resp)
	}
}

func TestRouter_Vocabularies(t *testing.T) {
	router := NewRouter(testServices(t, "http://unused.invalid"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/vocabularies", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp vocabulariesResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Vocabularies) != 24 {
		t.Errorf("vocabularies = %d, want 24", len(resp.Vocabularies))
	}
}

func TestRouter_AuditTagsTransport(t *testing.T) {
	var buf bytes.Buffer
	s := testServices(t, "http://unused.invalid")
	s.Log = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	router := NewRouter(s)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/vocabularies", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	logged := buf.String()
	if !strings.Contains(logged, "endpoint=list_vocabularies") {
		t.Errorf("audit log = %q, want endpoint name", logged)
	}
	if !strings.Contains(logged, "transport=http") {
		t.Errorf("audit log = %q, want transport tag", logged)
	}
	if !strings.Contains(logged, "request_id=") {
		t.Errorf("audit log = %q, want assigned request ID", logged)
	}
}

func TestRouter_ANDA(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []any{map[string]any{
				"application_number": "ANDA090639",
				"sponsor_name":       "AUROBINDO PHARMA",
				"products": []any{map[string]any{
					"product_number":   "001",
					"reference_drug":   "No",
					"brand_name":       "AMLODIPINE BESYLATE",
					"dosage_form":      "TABLET",
					"marketing_status": "Prescription",
					"active_ingredients": []any{
						map[string]any{"name": "AMLODIPINE BESYLATE", "strength": "5MG"},
					},
				}},
			}},
		})
	}))
	defer upstream.Close()

	router := NewRouter(testServices(t, upstream.URL))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/applications/anda/090639", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var resp drugApplicationsResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(resp.Results))
	}
	if resp.Results[0].Products[0].DosageForm != "tablet" {
		t.Errorf("DosageForm = %q, want normalized tablet", resp.Results[0].Products[0].DosageForm)
	}
}

func TestRouter_SearchRequiresExpression(t *testing.T) {
	router := NewRouter(testServices(t, "http://unused.invalid"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/applications", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRouter_TrialsRequiresDrug(t *testing.T) {
	router := NewRouter(testServices(t, "http://unused.invalid"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/trials", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRouter_ClassesRawMode(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"rxclassDrugInfoList": map[string]any{
				"rxclassDrugInfo": []any{map[string]any{
					"minConcept": map[string]any{
						"rxcui": "6809", "name": "metformin", "tty": "IN",
					},
					"rxclassMinConceptItem": map[string]any{
						"classId": "A10BA", "className": "Biguanides", "classType": "ATC1-4",
					},
					"relaSource": "ATC",
				}},
			},
		})
	}))
	defer upstream.Close()

	router := NewRouter(testServices(t, upstream.URL))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/classes?drug=metformin&normalize=false", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var resp drugClassesResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(resp.Entries))
	}
	if resp.Entries[0].Concept.TermType != "IN" {
		t.Errorf("TermType = %q, want original spelling with normalize=false", resp.Entries[0].Concept.TermType)
	}
}
