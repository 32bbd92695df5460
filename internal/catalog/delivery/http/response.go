package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/pkg/logger"
)

// Response is the envelope of every JSON response
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Total   *int64 `json:"total,omitempty"`
}

// nullData keeps "data": null in the body where clients expect the key
type nullData struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, Response{Success: true, Data: data})
}

func respondPage(w http.ResponseWriter, data any, total int64) {
	respondJSON(w, http.StatusOK, Response{Success: true, Data: data, Total: &total})
}

func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, Response{Success: true, Message: message})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{Success: false, Error: message})
}

// statusFor maps an error kind to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondErr is the single place use case errors become status codes.
// Unexpected errors are logged and hidden behind a generic message.
func respondErr(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(ctx).Err(err).Msg("Request failed")
		respondError(w, status, "internal server error")
		return
	}
	logger.Debug(ctx).Err(err).Int("status", status).Msg("Request rejected")
	respondError(w, status, err.Error())
}
