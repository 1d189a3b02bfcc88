package handler

import (
	"encoding/json"
	"net/http"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, domain.ErrorResponse{Error: message})
}

// writeAppError maps err onto its status code and JSON body. Anything that
// is not an AppError is reported as an internal error.
func writeAppError(w http.ResponseWriter, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.NewInternalError("Internal server error", err)
	}
	writeJSON(w, appErr.StatusCode, domain.ErrorResponse{
		Error:   appErr.Message,
		Details: appErr.Details,
	})
}
