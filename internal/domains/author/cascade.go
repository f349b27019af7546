package author

import (
	"context"

	"github.com/google/uuid"
)

// CascadeState tracks an author deletion through its lifecycle.
type CascadeState string

const (
	CascadeRequested CascadeState = "requested"
	CascadeValidated CascadeState = "validated"
	CascadeResolved  CascadeState = "cascade_resolved"
	CascadeCommitted CascadeState = "committed"
	CascadeRejected  CascadeState = "rejected"
)

// CascadeResult summarizes a cascade deletion. Counts are zero unless State
// is CascadeCommitted. Path lists every state entered, in order.
type CascadeResult struct {
	AuthorID           uuid.UUID      `json:"author_id"`
	RecipesDeleted     int            `json:"recipes_deleted"`
	IngredientsDeleted int            `json:"ingredients_deleted"`
	State              CascadeState   `json:"state"`
	Path               []CascadeState `json:"path"`
}

// CascadeTx is the store view available inside one cascade transaction.
// Every method runs on the same transaction.
type CascadeTx interface {
	// LockAuthor takes a write lock on the author row.
	// Returns false when the author does not exist.
	LockAuthor(ctx context.Context, id uuid.UUID) (bool, error)

	// LockRecipeIDs returns (and locks) the IDs of the author's recipes.
	LockRecipeIDs(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error)

	// IngredientIDs returns the IDs of every ingredient of the given recipes.
	IngredientIDs(ctx context.Context, recipeIDs []uuid.UUID) ([]uuid.UUID, error)

	DeleteIngredients(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteRecipes(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteAuthor(ctx context.Context, id uuid.UUID) (int64, error)
}

// CascadeRepository runs fn inside a single store transaction.
// The transaction commits only if fn returns nil and is rolled back otherwise,
// including when fn panics. fn receives the context bounding the transaction
// and must issue every statement with it. Cached entries of deleted rows are
// evicted after a successful commit.
type CascadeRepository interface {
	WithinCascade(ctx context.Context, fn func(ctx context.Context, tx CascadeTx) error) error
}
