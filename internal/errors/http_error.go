package errors

import (
	"fmt"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// MissingField reports a required form field that was absent from the input.
func MissingField(field string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Missing required field: %s", field))
}

// InvalidStatus reports a status value outside the entity's enum.
func InvalidStatus(status string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid status: %s", status))
}

// NotFound reports an unknown record id.
func NotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

// Storage wraps a persistence failure. The underlying error stays internal;
// callers only see an opaque message.
func Storage(err error) *HTTPError {
	return &HTTPError{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Err:     err,
	}
}
