package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when nome or email is empty or absent.
	ErrMissingFields = errors.New("nome and email are required")
	// ErrUserNotFound is returned when no user matches the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError carries the HTTP status and caller-facing message for a failure.
// Internal holds the underlying error for server-side logging only; it is
// never serialized.
type HTTPError struct {
	StatusCode int
	Message    string
	Internal   error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Internal
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy becomes a 500 carrying internalMsg, with the original error kept
// for logging but never echoed to the caller.
func MapErrorToHTTP(err error, internalMsg string) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, "Nome e email são obrigatórios")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, "Usuário não encontrado")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, "Email já cadastrado")
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: internalMsg, Internal: err}
	}
}
