package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Author data access operations
type Repository interface {
	// Create inserts a new author
	// Returns: created author with ID and timestamps
	Create(ctx context.Context, author *Author) (*Author, error)

	// GetByID retrieves author by UUID
	// Returns: ErrAuthorNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List returns every author ordered by creation time
	List(ctx context.Context) ([]Author, error)

	// Update replaces the mutable fields of an author
	// Errors: ErrAuthorNotFound if not exists
	Update(ctx context.Context, author *Author) (*Author, error)

	// ExistsByID checks if author exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
