package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for Author domain
type Service interface {
	// Create creates a new author
	// Errors: ErrInvalidName, ErrNameTooLong
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID retrieves author by UUID
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	List(ctx context.Context) ([]Author, error)

	// Update renames an existing author
	// Errors: ErrAuthorNotFound, ErrInvalidName, ErrNameTooLong
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// DeleteCascade removes the author together with every recipe it owns and
	// every ingredient of those recipes, atomically.
	// Errors: ErrAuthorNotFound (nothing changed), ErrCascadeFailed (rolled back)
	DeleteCascade(ctx context.Context, id uuid.UUID) (*CascadeResult, error)
}
