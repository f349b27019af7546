package author

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxNameLength = 255

	cacheKeyPrefix = "author:"
)

// Author is a person credited with recipes.
type Author struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsValid validates the Author entity
func (a *Author) IsValid() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrInvalidName
	}
	if utf8.RuneCountInString(a.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// CacheKey is the read-through cache key of an author.
func CacheKey(id uuid.UUID) string {
	return cacheKeyPrefix + id.String()
}
