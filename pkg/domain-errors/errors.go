// Package domainerrors defines coded errors shared across services and the
// HTTP layer. Handlers translate codes to status codes in one place so error
// envelopes stay consistent.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code classifies a domain error for transport mapping and tests.
type Code string

const (
	CodeBadRequest Code = "bad_request"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal"
)

// DomainError carries a code plus a human-readable message.
type DomainError struct {
	Code    Code
	Message string
}

func (e *DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// New builds a DomainError with the given code and message.
func New(code Code, message string) error {
	return &DomainError{Code: code, Message: message}
}

// Is reports whether err (or anything it wraps) is a DomainError with code.
func Is(err error, code Code) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ToHTTPStatus maps a domain error code to an HTTP status code.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
