package utils

import (
	"encoding/json"
	"net/http"

	"trace-backend/internal/apperrors"
)

// JSON writes data as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error writes an error response, mapping the taxonomy to HTTP status codes.
func Error(w http.ResponseWriter, err error) {
	JSON(w, apperrors.StatusCode(err), map[string]string{"error": err.Error()})
}
