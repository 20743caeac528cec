package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/career-navigator/apiserver/internal/services"
	"github.com/go-chi/chi/v5"
)

// ProgressHandler provides owner-scoped competency-progress endpoints.
type ProgressHandler struct {
	records *services.RecordsService
}

func NewProgressHandler(records *services.RecordsService) *ProgressHandler {
	return &ProgressHandler{records: records}
}

// ProgressRouter registers progress routes; every route requires
// authentication.
func ProgressRouter(r chi.Router, records *services.RecordsService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewProgressHandler(records)

	r.Use(authMiddleware)
	r.Get("/", handler.ListProgress)
	r.Post("/", handler.CreateProgress)
}

func (h *ProgressHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	acct, err := accountFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	items, err := h.records.ListProgress(r.Context(), acct.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgStorageFailed)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *ProgressHandler) CreateProgress(w http.ResponseWriter, r *http.Request) {
	acct, err := accountFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req ProgressCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if strings.TrimSpace(req.Competency) == "" || strings.TrimSpace(req.Level) == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	item, err := h.records.AddProgress(r.Context(), acct.ID, services.ProgressParams{
		Competency:  req.Competency,
		Level:       req.Level,
		EvidenceURL: req.EvidenceURL,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, msgStorageFailed)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

type ProgressCreateRequest struct {
	Competency  string `json:"competency"`
	Level       string `json:"level"`
	EvidenceURL string `json:"evidence_url"`
}
