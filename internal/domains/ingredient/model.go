package ingredient

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxNameLength = 255
	MaxUnitLength = 50
)

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Name      string          `json:"name" db:"name"`
	Quantity  decimal.Decimal `json:"quantity" db:"quantity"`
	Unit      string          `json:"unit" db:"unit"`
	RecipeID  uuid.UUID       `json:"recipe_id" db:"recipe_id"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// IsValid validates the Ingredient entity
func (i *Ingredient) IsValid() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrInvalidName
	}
	if utf8.RuneCountInString(i.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if utf8.RuneCountInString(i.Unit) > MaxUnitLength {
		return ErrUnitTooLong
	}
	return ValidateQuantity(i.Quantity)
}

// BelongsTo reports whether the ingredient is part of the given recipe.
func (i *Ingredient) BelongsTo(recipeID uuid.UUID) bool {
	return i.RecipeID == recipeID
}
