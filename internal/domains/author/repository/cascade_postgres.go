package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipe-backend/internal/domains/author"
	"recipe-backend/pkg/cache"
	"recipe-backend/pkg/database"
)

type postgresCascadeRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresCascadeRepository returns the transactional store used by
// author cascade deletion. Rows are locked with SELECT ... FOR UPDATE so a
// concurrent cascade of the same author waits and then observes it gone.
func NewPostgresCascadeRepository(pool *pgxpool.Pool, c cache.Cache) author.CascadeRepository {
	return &postgresCascadeRepository{pool: pool, cache: c}
}

func (r *postgresCascadeRepository) WithinCascade(ctx context.Context, fn func(context.Context, author.CascadeTx) error) error {
	ctx, cancel := context.WithTimeout(ctx, cascadeTimeout)
	defer cancel()

	cascade := &pgCascadeTx{}
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		cascade.tx = tx
		return fn(ctx, cascade)
	})
	if err != nil {
		return err
	}

	evictDeleted(context.WithoutCancel(ctx), r.cache, &cascade.deleted)
	return nil
}

type pgCascadeTx struct {
	tx      pgx.Tx
	deleted deletedRows
}

func (t *pgCascadeTx) LockAuthor(ctx context.Context, id uuid.UUID) (bool, error) {
	var locked uuid.UUID
	err := t.tx.QueryRow(ctx, `SELECT id FROM authors WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock author: %w", err)
	}
	return true, nil
}

func (t *pgCascadeTx) LockRecipeIDs(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error) {
	query := `
        SELECT id FROM recipes
        WHERE author_id = $1
        ORDER BY id
        FOR UPDATE
    `
	return t.collectIDs(ctx, "recipe", query, authorID)
}

func (t *pgCascadeTx) IngredientIDs(ctx context.Context, recipeIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}
	query := `
        SELECT id FROM ingredients
        WHERE recipe_id = ANY($1::uuid[])
        ORDER BY id
        FOR UPDATE
    `
	return t.collectIDs(ctx, "ingredient", query, recipeIDs)
}

func (t *pgCascadeTx) DeleteIngredients(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := t.tx.Exec(ctx, `DELETE FROM ingredients WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete ingredients: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (t *pgCascadeTx) DeleteRecipes(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := t.tx.Exec(ctx, `DELETE FROM recipes WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete recipes: %w", err)
	}
	t.deleted.recipes = append(t.deleted.recipes, ids...)
	return tag.RowsAffected(), nil
}

func (t *pgCascadeTx) DeleteAuthor(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := t.tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete author: %w", err)
	}
	t.deleted.authors = append(t.deleted.authors, id)
	return tag.RowsAffected(), nil
}

func (t *pgCascadeTx) collectIDs(ctx context.Context, entity, query string, arg any) ([]uuid.UUID, error) {
	rows, err := t.tx.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s ids: %w", entity, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s id: %w", entity, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s ids: %w", entity, err)
	}
	return ids, nil
}
