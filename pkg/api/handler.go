package api

import (
	"encoding/json"
	"net/http"

	"github.com/hazyhaar/drugreg/pkg/kit"
)

// NewRouter returns an http.Handler with all drugreg API routes.
func NewRouter(s *Services) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		drugApplications: s.instrument("drug_applications", drugApplicationsEndpoint(s)),
		clinicalTrials:   s.instrument("clinical_trials", clinicalTrialsEndpoint(s)),
		drugClasses:      s.instrument("drug_classes", drugClassesEndpoint(s)),
		vocabularies:     s.instrument("list_vocabularies", vocabulariesEndpoint(s)),
		services:         s,
	}

	mux.HandleFunc("GET /v1/applications/anda/{number}", h.handleANDA)
	mux.HandleFunc("GET /v1/applications/nda/{number}", h.handleNDA)
	mux.HandleFunc("GET /v1/applications", h.handleSearch)
	mux.HandleFunc("GET /v1/trials", h.handleTrials)
	mux.HandleFunc("GET /v1/classes", h.handleClasses)
	mux.HandleFunc("GET /v1/vocabularies", h.handleVocabularies)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	drugApplications kit.Endpoint
	clinicalTrials   kit.Endpoint
	drugClasses      kit.Endpoint
	vocabularies     kit.Endpoint
	services         *Services
}

// --- drug applications ---

func (h *handler) handleANDA(w http.ResponseWriter, r *http.Request) {
	h.applications(w, r, &drugApplicationsReq{
		ANDA:      r.PathValue("number"),
		Normalize: wantNormalize(r),
	})
}

func (h *handler) handleNDA(w http.ResponseWriter, r *http.Request) {
	h.applications(w, r, &drugApplicationsReq{
		NDA:       r.PathValue("number"),
		Normalize: wantNormalize(r),
	})
}

func (h *handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	if search == "" {
		writeError(w, http.StatusBadRequest, "missing search expression")
		return
	}
	h.applications(w, r, &drugApplicationsReq{
		Search:    search,
		Normalize: wantNormalize(r),
	})
}

func (h *handler) applications(w http.ResponseWriter, r *http.Request, req *drugApplicationsReq) {
	resp, err := h.drugApplications(kit.WithTransport(r.Context(), "http"), req)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- clinical trials ---

func (h *handler) handleTrials(w http.ResponseWriter, r *http.Request) {
	drug := r.URL.Query().Get("drug")
	if drug == "" {
		writeError(w, http.StatusBadRequest, "missing drug name")
		return
	}
	resp, err := h.clinicalTrials(kit.WithTransport(r.Context(), "http"), &clinicalTrialsReq{
		Drug:      drug,
		Normalize: wantNormalize(r),
	})
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- drug classes ---

func (h *handler) handleClasses(w http.ResponseWriter, r *http.Request) {
	drug := r.URL.Query().Get("drug")
	if drug == "" {
		writeError(w, http.StatusBadRequest, "missing drug name")
		return
	}
	resp, err := h.drugClasses(kit.WithTransport(r.Context(), "http"), &drugClassesReq{
		Drug:      drug,
		Normalize: wantNormalize(r),
	})
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- vocabularies ---

func (h *handler) handleVocabularies(w http.ResponseWriter, r *http.Request) {
	resp, err := h.vocabularies(kit.WithTransport(r.Context(), "http"), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status       string `json:"status"`
	Vocabularies int    `json:"vocabularies"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "ok",
		Vocabularies: h.services.Vocab.Count(),
	})
}

// --- helpers ---

// wantNormalize reads the normalize query flag; normalization defaults on for
// the HTTP surface, pass normalize=false to see original spellings.
func wantNormalize(r *http.Request) bool {
	return r.URL.Query().Get("normalize") != "false"
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
