package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"recipe-backend/internal/domains/ingredient"
	"recipe-backend/internal/domains/recipe"
)

// sqliteRepository implements ingredient.Repository on database/sql + go-sqlite3.
// Quantities are stored as decimal text.
type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) ingredient.Repository {
	return &sqliteRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteIngredient(row rowScanner) (*ingredient.Ingredient, error) {
	var i ingredient.Ingredient
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Quantity,
		&i.Unit,
		&i.RecipeID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *sqliteRepository) Create(ctx context.Context, i *ingredient.Ingredient) (*ingredient.Ingredient, error) {
	if err := ingredient.ValidateQuantity(i.Quantity); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *i
	created.ID = uuid.New()
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO ingredients (id, name, quantity, unit, recipe_id, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		created.ID, created.Name, created.Quantity, created.Unit, created.RecipeID,
		created.CreatedAt, created.UpdatedAt,
	)
	if err != nil {
		return nil, mapSQLiteError("create", err)
	}
	return &created, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE id = ?`, id)

	i, err := scanSQLiteIngredient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ingredient.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient by id: %w", err)
	}
	return i, nil
}

func (r *sqliteRepository) List(ctx context.Context) ([]ingredient.Ingredient, error) {
	return r.query(ctx, "list",
		`SELECT `+ingredientColumns+` FROM ingredients ORDER BY created_at, id`)
}

func (r *sqliteRepository) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]ingredient.Ingredient, error) {
	return r.query(ctx, "list by recipe",
		`SELECT `+ingredientColumns+` FROM ingredients WHERE recipe_id = ? ORDER BY created_at, id`,
		recipeID)
}

func (r *sqliteRepository) Update(ctx context.Context, i *ingredient.Ingredient) (*ingredient.Ingredient, error) {
	if err := ingredient.ValidateQuantity(i.Quantity); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE ingredients SET name = ?, quantity = ?, unit = ?, updated_at = ? WHERE id = ?`,
		i.Name, i.Quantity, i.Unit, time.Now().UTC(), i.ID,
	)
	if err != nil {
		return nil, mapSQLiteError("update", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ingredient.ErrIngredientNotFound
	}

	return r.GetByID(ctx, i.ID)
}

func (r *sqliteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ingredients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	if n == 0 {
		return ingredient.ErrIngredientNotFound
	}
	return nil
}

func (r *sqliteRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM ingredients WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ingredient existence: %w", err)
	}
	return exists, nil
}

func (r *sqliteRepository) query(ctx context.Context, op, query string, args ...any) ([]ingredient.Ingredient, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s ingredients: %w", op, err)
	}
	defer rows.Close()

	ingredients := make([]ingredient.Ingredient, 0)
	for rows.Next() {
		i, err := scanSQLiteIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ingredients: %w", err)
	}
	return ingredients, nil
}

func mapSQLiteError(op string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return recipe.ErrRecipeNotFound
		case sqlite3.ErrConstraintCheck:
			return ingredient.ErrNegativeQuantity
		}
	}
	return fmt.Errorf("failed to %s ingredient: %w", op, err)
}
