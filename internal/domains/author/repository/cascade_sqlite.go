package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"recipe-backend/internal/domains/author"
	"recipe-backend/internal/shared/utils"
	"recipe-backend/pkg/cache"
	"recipe-backend/pkg/database"
)

type sqliteCascadeRepository struct {
	db    *sql.DB
	cache cache.Cache
}

// NewSQLiteCascadeRepository returns the cascade store for sqlite. The store
// runs on a single connection, so one cascade transaction excludes every
// other writer until it finishes.
func NewSQLiteCascadeRepository(db *sql.DB, c cache.Cache) author.CascadeRepository {
	return &sqliteCascadeRepository{db: db, cache: c}
}

func (r *sqliteCascadeRepository) WithinCascade(ctx context.Context, fn func(context.Context, author.CascadeTx) error) error {
	ctx, cancel := context.WithTimeout(ctx, cascadeTimeout)
	defer cancel()

	cascade := &sqliteCascadeTx{}
	err := database.WithSQLTransaction(ctx, r.db, func(tx *sql.Tx) error {
		cascade.tx = tx
		return fn(ctx, cascade)
	})
	if err != nil {
		return err
	}

	evictDeleted(context.WithoutCancel(ctx), r.cache, &cascade.deleted)
	return nil
}

type sqliteCascadeTx struct {
	tx      *sql.Tx
	deleted deletedRows
}

func (t *sqliteCascadeTx) LockAuthor(ctx context.Context, id uuid.UUID) (bool, error) {
	var found uuid.UUID
	err := t.tx.QueryRowContext(ctx, `SELECT id FROM authors WHERE id = ?`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock author: %w", err)
	}
	return true, nil
}

func (t *sqliteCascadeTx) LockRecipeIDs(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error) {
	return t.collectIDs(ctx, "recipe",
		`SELECT id FROM recipes WHERE author_id = ? ORDER BY id`, authorID)
}

func (t *sqliteCascadeTx) IngredientIDs(ctx context.Context, recipeIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT id FROM ingredients WHERE recipe_id IN (%s) ORDER BY id`,
		utils.Placeholders(len(recipeIDs)))
	return t.collectIDs(ctx, "ingredient", query, utils.UUIDArgs(recipeIDs)...)
}

func (t *sqliteCascadeTx) DeleteIngredients(ctx context.Context, ids []uuid.UUID) (int64, error) {
	n, err := t.deleteIn(ctx, "ingredients", ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete ingredients: %w", err)
	}
	return n, nil
}

func (t *sqliteCascadeTx) DeleteRecipes(ctx context.Context, ids []uuid.UUID) (int64, error) {
	n, err := t.deleteIn(ctx, "recipes", ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete recipes: %w", err)
	}
	t.deleted.recipes = append(t.deleted.recipes, ids...)
	return n, nil
}

func (t *sqliteCascadeTx) DeleteAuthor(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := t.deleteIn(ctx, "authors", []uuid.UUID{id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete author: %w", err)
	}
	t.deleted.authors = append(t.deleted.authors, id)
	return n, nil
}

// deleteIn deletes rows of table by id. table is always a literal from this file.
func (t *sqliteCascadeTx) deleteIn(ctx context.Context, table string, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE id IN (%s)`, table, utils.Placeholders(len(ids)))
	res, err := t.tx.ExecContext(ctx, query, utils.UUIDArgs(ids)...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t *sqliteCascadeTx) collectIDs(ctx context.Context, entity, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
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
