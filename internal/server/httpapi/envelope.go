package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/mediavault/mediavault/internal/server/services"
)

// ErrorResponse is the envelope for every error case. Errors is always
// present, itemizing field-level problems; for authentication failures it
// holds a single "general" entry so responses never reveal which check
// failed.
type ErrorResponse struct {
	Status  int                   `json:"status"`
	Message string                `json:"message"`
	Errors  []services.FieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, fieldErrs []services.FieldError) {
	if fieldErrs == nil {
		fieldErrs = []services.FieldError{}
	}
	writeJSON(w, status, ErrorResponse{Status: status, Message: message, Errors: fieldErrs})
}

// Canned error bodies. Client-facing messages stay generic; detail goes to
// the server log only.

func writeValidationError(w http.ResponseWriter, fieldErrs services.ValidationErrors) {
	writeError(w, http.StatusBadRequest, "Validation failed", fieldErrs)
}

func writeInvalidCredentials(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "Invalid email or password", []services.FieldError{
		{Field: "general", Message: "Invalid email or password"},
	})
}

func writeServerError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "Internal server error", nil)
}
