package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"usecase-market/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a service error to an HTTP status. Domain errors
// surface their message verbatim; anything else becomes a generic 500.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, "internal server error", logger)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case model.ErrCodeInvalidJSON, model.ErrCodeMissingField, model.ErrCodeInvalidPrice:
		status = http.StatusBadRequest
	case model.ErrCodeAuthRequired, model.ErrCodeBadCredentials:
		status = http.StatusUnauthorized
	case model.ErrCodeSelfPurchase:
		status = http.StatusForbidden
	case model.ErrCodeUseCaseNotFound, model.ErrCodeOrderNotFound:
		status = http.StatusNotFound
	case model.ErrCodeEmailExists:
		status = http.StatusConflict
	case model.ErrCodePaymentFailed:
		status = http.StatusPaymentRequired
	}

	logger.Warn().
		Str("code", domainErr.Code).
		Str("error", domainErr.Message).
		Int("status", status).
		Msg("request rejected")

	writeJSON(w, status, model.ErrorResponse{Error: domainErr.Code, Message: domainErr.Message})
}
