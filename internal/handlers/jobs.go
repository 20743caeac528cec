package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/career-navigator/apiserver/internal/services"
	"github.com/go-chi/chi/v5"
)

// JobsHandler provides owner-scoped job-application endpoints.
type JobsHandler struct {
	records *services.RecordsService
}

func NewJobsHandler(records *services.RecordsService) *JobsHandler {
	return &JobsHandler{records: records}
}

// JobsRouter registers job routes; every route requires authentication.
func JobsRouter(r chi.Router, records *services.RecordsService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewJobsHandler(records)

	r.Use(authMiddleware)
	r.Get("/", handler.ListJobs)
	r.Post("/", handler.CreateJob)
}

func (h *JobsHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	acct, err := accountFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	jobs, err := h.records.ListJobs(r.Context(), acct.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgStorageFailed)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

func (h *JobsHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	acct, err := accountFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req JobCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Company) == "" ||
		strings.TrimSpace(req.Status) == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	job, err := h.records.AddJob(r.Context(), acct.ID, services.JobParams{
		Title:   req.Title,
		Company: req.Company,
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, msgStorageFailed)
		return
	}

	writeJSON(w, http.StatusCreated, job)
}

type JobCreateRequest struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}
