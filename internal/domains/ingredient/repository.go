package ingredient

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Ingredient data access operations.
// Create and Update refuse a negative quantity before touching the store.
type Repository interface {
	// Create inserts a new ingredient
	// Errors: ErrNegativeQuantity, recipe.ErrRecipeNotFound if recipe_id is dangling
	Create(ctx context.Context, ingredient *Ingredient) (*Ingredient, error)

	// GetByID retrieves ingredient by UUID
	// Returns: ErrIngredientNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*Ingredient, error)

	// List returns every ingredient ordered by creation time
	List(ctx context.Context) ([]Ingredient, error)

	// ListByRecipe returns the ingredients of a recipe ordered by creation time
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]Ingredient, error)

	// Update replaces name, quantity and unit
	// Errors: ErrIngredientNotFound, ErrNegativeQuantity
	Update(ctx context.Context, ingredient *Ingredient) (*Ingredient, error)

	// Delete removes one ingredient
	// Errors: ErrIngredientNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
