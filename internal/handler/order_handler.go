package handler

import (
	"encoding/json"
	"net/http"

	"usecase-market/internal/auth"
	"usecase-market/internal/model"
	"usecase-market/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles purchase HTTP requests.
type OrderHandler struct {
	service service.PurchaseService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.PurchaseService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.UseCaseID == "" {
		writeError(w, http.StatusBadRequest, "use case ID is required", h.logger)
		return
	}

	session, _ := auth.SessionFrom(r.Context())

	order, err := h.service.Purchase(r.Context(), session.UserID, req.UseCaseID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeDomainError(w, model.ErrAuthRequired, h.logger)
		return
	}

	// Expecting path: /api/orders/{id}
	path := r.URL.Path
	if len(path) <= len("/api/orders/") {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}
	orderIDStr := path[len("/api/orders/"):]

	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return
	}

	order, err := h.service.GetOrder(r.Context(), session.UserID, orderID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
