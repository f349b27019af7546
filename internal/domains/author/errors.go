package author

import (
	"errors"
	"net/http"
)

var (
	// Validation Errors
	ErrInvalidName = errors.New("author name is required")
	ErrNameTooLong = errors.New("author name exceeds maximum length")

	// Business Rule Errors
	ErrAuthorNotFound = errors.New("author not found")

	// ErrCascadeFailed reports an author deletion that was rolled back.
	// The underlying cause is wrapped for logging and must not reach clients.
	ErrCascadeFailed = errors.New("author cascade deletion failed")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrNameTooLong):
		return "INVALID_NAME"
	case errors.Is(err, ErrCascadeFailed):
		return "CASCADE_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrNameTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
