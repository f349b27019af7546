package recipe

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Constants for validation
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000

	cacheKeyPrefix = "recipe:"
)

// Recipe is a dish with its preparation text. AuthorID is optional.
type Recipe struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	Description  string     `json:"description" db:"description"`
	Instructions string     `json:"instructions" db:"instructions"`
	AuthorID     *uuid.UUID `json:"author_id" db:"author_id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// IsValid validates the Recipe entity
func (r *Recipe) IsValid() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrInvalidTitle
	}
	if utf8.RuneCountInString(r.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(r.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// HasAuthor reports whether the recipe is credited to an author.
func (r *Recipe) HasAuthor() bool {
	return r.AuthorID != nil && *r.AuthorID != uuid.Nil
}

// CacheKey is the read-through cache key of a recipe.
func CacheKey(id uuid.UUID) string {
	return cacheKeyPrefix + id.String()
}
