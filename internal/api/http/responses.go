package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
)

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps domain error kinds to HTTP statuses: missing entities to
// 404, unavailable items to 400, rights violations to 403, email conflicts
// to 409, anything unexpected to 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error(), Description: "entity not found"})
	case errors.Is(err, domain.ErrItemNotAvailable):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Description: "incorrect input data"})
	case errors.Is(err, domain.ErrNotEnoughRights):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: err.Error(), Description: "not enough rights"})
	case errors.Is(err, domain.ErrEmailExists):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error(), Description: "email already exists"})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Description: "internal server error"})
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Description: "incorrect input data"})
}
