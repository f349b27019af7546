package recipe

import (
	"context"

	"github.com/google/uuid"

	"recipe-backend/internal/domains/recipe/search"
)

// Repository defines the interface for Recipe data access operations
type Repository interface {
	// Create inserts a new recipe
	// Errors: ErrAuthorReferenceNotFound if author_id is dangling
	Create(ctx context.Context, recipe *Recipe) (*Recipe, error)

	// GetByID retrieves recipe by UUID
	// Returns: ErrRecipeNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*Recipe, error)

	// List returns every recipe ordered by creation time
	List(ctx context.Context) ([]Recipe, error)

	// ListByAuthor returns the recipes credited to an author
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]Recipe, error)

	// Search returns the recipes matching a compiled search expression,
	// each recipe at most once
	Search(ctx context.Context, expr search.Expr) ([]Recipe, error)

	// Update replaces the mutable fields of a recipe
	// Errors: ErrRecipeNotFound, ErrAuthorReferenceNotFound
	Update(ctx context.Context, recipe *Recipe) (*Recipe, error)

	// Delete removes the recipe and its ingredients in one transaction
	// Errors: ErrRecipeNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
