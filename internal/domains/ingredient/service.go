package ingredient

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the ingredients of a recipe.
// Every operation is scoped by recipe: an ingredient of another recipe is
// reported as ErrIngredientNotFound.
type Service interface {
	// ListByRecipe
	// Errors: recipe.ErrRecipeNotFound
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]Ingredient, error)

	// Create adds an ingredient to a recipe
	// Errors: ErrNegativeQuantity and other validation errors, recipe.ErrRecipeNotFound
	Create(ctx context.Context, recipeID uuid.UUID, req *CreateIngredientRequest) (*Ingredient, error)

	// Get
	// Errors: recipe.ErrRecipeNotFound, ErrIngredientNotFound
	Get(ctx context.Context, recipeID, ingredientID uuid.UUID) (*Ingredient, error)

	// Update replaces name, quantity and unit
	// Errors: ErrNegativeQuantity and other validation errors,
	// recipe.ErrRecipeNotFound, ErrIngredientNotFound
	Update(ctx context.Context, recipeID, ingredientID uuid.UUID, req *UpdateIngredientRequest) (*Ingredient, error)

	// Delete
	// Errors: recipe.ErrRecipeNotFound, ErrIngredientNotFound
	Delete(ctx context.Context, recipeID, ingredientID uuid.UUID) error
}
