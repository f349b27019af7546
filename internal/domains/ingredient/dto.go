package ingredient

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateIngredientRequest - POST /api/v1/recipes/:id/ingredients
type CreateIngredientRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

func (r CreateIngredientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Quantity, NonNegativeQuantity),
		validation.Field(&r.Unit, validation.Length(0, MaxUnitLength)),
	)
}

// ToEntity converts CreateIngredientRequest to Ingredient entity
func (r *CreateIngredientRequest) ToEntity(recipeID uuid.UUID) *Ingredient {
	return &Ingredient{
		Name:     strings.TrimSpace(r.Name),
		Quantity: r.Quantity,
		Unit:     strings.TrimSpace(r.Unit),
		RecipeID: recipeID,
	}
}

// UpdateIngredientRequest - PUT /api/v1/recipes/:id/ingredients/:ingredientId
// Replaces name, quantity and unit.
type UpdateIngredientRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

func (r UpdateIngredientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Quantity, NonNegativeQuantity),
		validation.Field(&r.Unit, validation.Length(0, MaxUnitLength)),
	)
}

// ApplyToEntity applies UpdateIngredientRequest to existing Ingredient entity
func (r *UpdateIngredientRequest) ApplyToEntity(i *Ingredient) {
	i.Name = strings.TrimSpace(r.Name)
	i.Quantity = r.Quantity
	i.Unit = strings.TrimSpace(r.Unit)
}

type IngredientResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	RecipeID  uuid.UUID       `json:"recipe_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (i Ingredient) ToResponse() IngredientResponse {
	return IngredientResponse{
		ID:        i.ID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Unit:      i.Unit,
		RecipeID:  i.RecipeID,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func ToResponses(ingredients []Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, len(ingredients))
	for i, ing := range ingredients {
		out[i] = ing.ToResponse()
	}
	return out
}
