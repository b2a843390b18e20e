package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/luxtime/backend/internal/domain"
	"github.com/luxtime/backend/internal/repository"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError maps the error taxonomy onto HTTP statuses: missing
// records to 404 with a message naming the resource kind, validation
// failures to 400 with field detail, an unconfigured store to 500.
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *domain.ValidationError
	switch {
	case errors.Is(err, repository.ErrWatchNotFound):
		respondError(w, http.StatusNotFound, "not_found", "Watch not found")
	case errors.Is(err, repository.ErrPostNotFound):
		respondError(w, http.StatusNotFound, "not_found", "Post not found")
	case errors.Is(err, repository.ErrUnavailable):
		respondError(w, http.StatusInternalServerError, "database_not_configured", "Database not configured")
	case errors.As(err, &valErr):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Code:    "validation_error",
			Details: valErr.Error(),
		})
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
