package errors

import "net/http"

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ErrInternalServerError hides the cause of an unexpected failure from the client.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
