package handlers

import (
	"errors"
	"net/http"

	"github.com/career-navigator/apiserver/internal/catalog"
	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves the read-only reference datasets.
type CatalogHandler struct {
	catalog *catalog.Provider
}

func NewCatalogHandler(provider *catalog.Provider) *CatalogHandler {
	return &CatalogHandler{catalog: provider}
}

// CatalogRouter registers the catalog routes on the root router.
func CatalogRouter(r chi.Router, provider *catalog.Provider) {
	handler := NewCatalogHandler(provider)

	r.Route("/datasets", func(r chi.Router) {
		r.Get("/", handler.ListDatasets)
		r.Get("/{name}", handler.GetDataset)
	})
	r.Route("/roles", func(r chi.Router) {
		r.Get("/", handler.ListRoles)
	})
	r.Route("/competencies", func(r chi.Router) {
		r.Get("/", handler.ListCompetencies)
		r.Get("/matrix", handler.CompetencyMatrix)
	})
	r.Route("/adjacency", func(r chi.Router) {
		r.Get("/", handler.Adjacency)
	})
	r.Route("/resources", func(r chi.Router) {
		r.Get("/", handler.ListResources)
	})
}

func (h *CatalogHandler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	names, err := h.catalog.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list datasets")
		return
	}
	writeJSON(w, http.StatusOK, DatasetListResponse{Datasets: names})
}

func (h *CatalogHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	raw, err := h.catalog.Load(chi.URLParam(r, "name"))
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (h *CatalogHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.catalog.Roles()
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roles)
}

func (h *CatalogHandler) ListCompetencies(w http.ResponseWriter, r *http.Request) {
	defs, err := h.catalog.CompetencyDefinitions()
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, defs)
}

func (h *CatalogHandler) CompetencyMatrix(w http.ResponseWriter, r *http.Request) {
	matrix, err := h.catalog.CompetencyMatrix()
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matrix)
}

func (h *CatalogHandler) Adjacency(w http.ResponseWriter, r *http.Request) {
	entries, err := h.catalog.Adjacency()
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *CatalogHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Resources())
}

type DatasetListResponse struct {
	Datasets []string `json:"datasets"`
}

func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidName):
		writeError(w, http.StatusBadRequest, "invalid dataset name")
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "dataset not found")
	case errors.Is(err, catalog.ErrMalformed):
		writeError(w, http.StatusInternalServerError, "dataset parse error")
	default:
		writeError(w, http.StatusInternalServerError, "failed to load dataset")
	}
}
