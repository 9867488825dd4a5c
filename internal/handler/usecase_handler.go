package handler

import (
	"net/http"

	"usecase-market/internal/service"

	"github.com/rs/zerolog"
)

// UseCaseHandler handles catalog browse HTTP requests.
type UseCaseHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewUseCaseHandler creates a new use case handler.
func NewUseCaseHandler(service service.CatalogService, logger zerolog.Logger) *UseCaseHandler {
	return &UseCaseHandler{
		service: service,
		logger:  logger.With().Str("handler", "usecase").Logger(),
	}
}

// Browse handles GET /api/use-cases requests with category, query, and sort
// parameters.
func (h *UseCaseHandler) Browse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	params := r.URL.Query()
	categoryID := params.Get("category")
	query := params.Get("q")
	sortKey := params.Get("sort")

	useCases := h.service.Browse(r.Context(), categoryID, query, sortKey)

	writeJSON(w, http.StatusOK, useCases)
}

// Featured handles GET /api/use-cases/featured requests.
func (h *UseCaseHandler) Featured(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Featured(r.Context()))
}

// GetByID handles GET /api/use-cases/{id} requests.
func (h *UseCaseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/use-cases/{id}
	path := r.URL.Path
	if len(path) <= len("/api/use-cases/") {
		writeError(w, http.StatusBadRequest, "use case ID is required", h.logger)
		return
	}
	useCaseID := path[len("/api/use-cases/"):]

	useCase, err := h.service.Get(r.Context(), useCaseID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, useCase)
}

// Categories handles GET /api/categories requests.
func (h *UseCaseHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Categories(r.Context()))
}
