package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository"
	"motorent-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps engine errors to HTTP status codes. Unknown errors are
// logged and hidden behind a 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrMotorcycleUnavailable),
		errors.Is(err, service.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrIneligibleDriver),
		errors.Is(err, service.ErrPlanInactive):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidLicenseType),
		errors.Is(err, errInvalidDateRange):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
