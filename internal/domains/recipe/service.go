package recipe

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for Recipe domain
type Service interface {
	// Create creates a recipe, optionally credited to an existing author
	// Errors: ErrInvalidTitle, ErrTitleTooLong, ErrDescriptionTooLong,
	// ErrAuthorReferenceNotFound
	Create(ctx context.Context, req *CreateRecipeRequest) (*Recipe, error)

	// GetByID retrieves recipe by UUID
	// Errors: ErrRecipeNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Recipe, error)

	List(ctx context.Context) ([]Recipe, error)

	// ListByAuthor returns the recipes of an author
	// Errors: author.ErrAuthorNotFound
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]Recipe, error)

	// Search returns the recipes matching every keyword in at least one of
	// title, description, instructions, author name or an ingredient name,
	// ignoring case. No usable keyword yields an empty result.
	Search(ctx context.Context, keywords []string) ([]Recipe, error)

	// Update replaces the mutable fields of a recipe
	// Errors: ErrRecipeNotFound plus the Create errors
	Update(ctx context.Context, id uuid.UUID, req *UpdateRecipeRequest) (*Recipe, error)

	// Delete removes a recipe with its ingredients
	// Errors: ErrRecipeNotFound
	Delete(ctx context.Context, id uuid.UUID) error
}
