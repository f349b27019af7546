package recipe

import (
	"errors"
	"net/http"
)

var (
	// Validation Errors
	ErrInvalidTitle       = errors.New("recipe title is required")
	ErrTitleTooLong       = errors.New("recipe title exceeds maximum length")
	ErrDescriptionTooLong = errors.New("recipe description exceeds maximum length")

	// Business Rule Errors
	ErrRecipeNotFound          = errors.New("recipe not found")
	ErrAuthorReferenceNotFound = errors.New("referenced author does not exist")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		return "RECIPE_NOT_FOUND"
	case errors.Is(err, ErrAuthorReferenceNotFound):
		return "INVALID_AUTHOR_REFERENCE"
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrTitleTooLong):
		return "INVALID_TITLE"
	case errors.Is(err, ErrDescriptionTooLong):
		return "INVALID_DESCRIPTION"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuthorReferenceNotFound),
		errors.Is(err, ErrInvalidTitle),
		errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrDescriptionTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
