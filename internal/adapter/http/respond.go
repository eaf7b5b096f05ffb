package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, message string, statusCode int, validationErrors []ValidationError) {
	respondJSON(w, statusCode, ErrorResponse{
		Error:  message,
		Errors: validationErrors,
	})
}

// respondDomainError maps the error taxonomy onto status codes. Storage
// failures surface as a generic message; details stay in the logs.
func respondDomainError(w http.ResponseWriter, err error) {
	var (
		unknownSize  *domain.UnknownSizeError
		validation   *domain.ValidationError
		refIntegrity *domain.ReferentialIntegrityError
	)
	switch {
	case errors.As(err, &unknownSize), errors.As(err, &validation), errors.As(err, &refIntegrity):
		respondError(w, err.Error(), http.StatusBadRequest, nil)
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, "not found", http.StatusNotFound, nil)
	default:
		respondError(w, "internal server error", http.StatusInternalServerError, nil)
	}
}

// parsePeriodBound accepts RFC 3339 timestamps or plain dates. A date-only
// end bound covers the whole day so the range stays inclusive.
func parsePeriodBound(value string, isEnd bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if isEnd {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, nil
}
