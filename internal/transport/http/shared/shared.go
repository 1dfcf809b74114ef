// Package shared holds response helpers used by every HTTP handler so
// JSON envelopes stay consistent across the API.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "chaincheck/pkg/domain-errors"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the standard error envelope.
// Non-domain errors map to a generic internal error so nothing leaks.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	message := "internal error"

	var de *dErrors.DomainError
	if errors.As(err, &de) {
		code = de.Code
		message = de.Message
	}

	WriteJSON(w, dErrors.ToHTTPStatus(code), map[string]string{
		"error":   string(code),
		"message": message,
	})
}
