package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fortuna/scorefeed/internal/crawl"
	"github.com/fortuna/scorefeed/internal/dataset"
	"github.com/fortuna/scorefeed/internal/store"
	"github.com/fortuna/scorefeed/internal/store/repository"
)

// maxJobBody caps crawl submissions at 1 MiB.
const maxJobBody = 1 << 20

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db      *store.Database
	results *repository.ResultRepository
	runner  *crawl.Runner
}

// NewHandler creates a new handler
func NewHandler(db *store.Database, runner *crawl.Runner) *Handler {
	return &Handler{
		db:      db,
		results: repository.NewResultRepository(db),
		runner:  runner,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(); err != nil {
		respondError(w, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "scorefeed",
		"version": "1.0.0",
	})
}

// SubmitJob accepts a crawl submission and starts a run when none is active
func (h *Handler) SubmitJob(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxJobBody))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	in, err := crawl.ParseInput(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid crawl input", err)
		return
	}

	if err := h.runner.Submit(r.Context(), in); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to submit crawl", err)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"message": "Crawl submitted",
		"jobs":    len(in.Jobs),
	})
}

// JobStatus reports the runner and queue state
func (h *Handler) JobStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.runner.Status(r.Context()))
}

// GetResults returns the most recently updated results of one type
func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	resultType, ok := parseResultType(mux.Vars(r)["resultType"])
	if !ok {
		respondError(w, http.StatusBadRequest, "Unknown result type", nil)
		return
	}

	limit := 50 // default
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 500 {
			limit = l
		}
	}

	results, err := h.results.RecentByType(r.Context(), string(resultType), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch results", err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// GetResult returns one result by type and source id
func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resultType, ok := parseResultType(vars["resultType"])
	if !ok {
		respondError(w, http.StatusBadRequest, "Unknown result type", nil)
		return
	}

	result, err := h.results.GetBySourceID(r.Context(), string(resultType), vars["sourceID"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Result not found", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func parseResultType(s string) (dataset.ResultType, bool) {
	switch t := dataset.ResultType(s); t {
	case dataset.ResultMatchList, dataset.ResultMatchDetail, dataset.ResultArticle:
		return t, true
	}
	return "", false
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
