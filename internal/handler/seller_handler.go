package handler

import (
	"encoding/json"
	"net/http"

	"usecase-market/internal/auth"
	"usecase-market/internal/model"
	"usecase-market/internal/service"

	"github.com/rs/zerolog"
)

// SellerHandler handles seller submission and dashboard HTTP requests.
type SellerHandler struct {
	submissions service.SubmissionService
	dashboard   service.SellerService
	logger      zerolog.Logger
}

// NewSellerHandler creates a new seller handler.
func NewSellerHandler(submissions service.SubmissionService, dashboard service.SellerService, logger zerolog.Logger) *SellerHandler {
	return &SellerHandler{
		submissions: submissions,
		dashboard:   dashboard,
		logger:      logger.With().Str("handler", "seller").Logger(),
	}
}

// Submit handles POST /api/seller/use-cases requests.
func (h *SellerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeDomainError(w, model.ErrAuthRequired, h.logger)
		return
	}

	var req model.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	useCase, err := h.submissions.Submit(r.Context(), session.UserID, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, useCase)
}

// Listings handles GET /api/seller/use-cases requests.
func (h *SellerHandler) Listings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeDomainError(w, model.ErrAuthRequired, h.logger)
		return
	}

	useCases, err := h.dashboard.Listings(r.Context(), session.UserID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if useCases == nil {
		useCases = []model.UseCase{}
	}

	writeJSON(w, http.StatusOK, useCases)
}

// Stats handles GET /api/seller/stats requests.
func (h *SellerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeDomainError(w, model.ErrAuthRequired, h.logger)
		return
	}

	stats, err := h.dashboard.Stats(r.Context(), session.UserID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
