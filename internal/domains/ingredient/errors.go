package ingredient

import (
	"errors"
	"net/http"

	"recipe-backend/internal/domains/recipe"
)

var (
	// Validation Errors
	ErrInvalidName      = errors.New("ingredient name is required")
	ErrNameTooLong      = errors.New("ingredient name exceeds maximum length")
	ErrUnitTooLong      = errors.New("ingredient unit exceeds maximum length")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrQuantityTooLarge = errors.New("quantity exceeds maximum value")

	// Business Rule Errors
	ErrIngredientNotFound = errors.New("ingredient not found")
)

// IsValidationError reports whether err is a client input error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrNameTooLong) ||
		errors.Is(err, ErrUnitTooLong) ||
		errors.Is(err, ErrNegativeQuantity) ||
		errors.Is(err, ErrQuantityTooLarge)
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrIngredientNotFound):
		return "INGREDIENT_NOT_FOUND"
	case errors.Is(err, recipe.ErrRecipeNotFound):
		return "RECIPE_NOT_FOUND"
	case errors.Is(err, ErrNegativeQuantity), errors.Is(err, ErrQuantityTooLarge):
		return "INVALID_QUANTITY"
	case IsValidationError(err):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrIngredientNotFound), errors.Is(err, recipe.ErrRecipeNotFound):
		return http.StatusNotFound
	case IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
