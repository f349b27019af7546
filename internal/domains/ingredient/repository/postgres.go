package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipe-backend/internal/domains/ingredient"
	"recipe-backend/internal/domains/recipe"
)

const ingredientColumns = `id, name, quantity, unit, recipe_id, created_at, updated_at`

// postgresRepository implements ingredient.Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) ingredient.Repository {
	return &postgresRepository{pool: pool}
}

func scanPgIngredient(row pgx.Row) (*ingredient.Ingredient, error) {
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

func (r *postgresRepository) Create(ctx context.Context, i *ingredient.Ingredient) (*ingredient.Ingredient, error) {
	if err := ingredient.ValidateQuantity(i.Quantity); err != nil {
		return nil, err
	}

	query := `
        INSERT INTO ingredients (name, quantity, unit, recipe_id)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + ingredientColumns

	created, err := scanPgIngredient(r.pool.QueryRow(ctx, query, i.Name, i.Quantity, i.Unit, i.RecipeID))
	if err != nil {
		return nil, mapPgError("create", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`

	i, err := scanPgIngredient(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ingredient.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient by id: %w", err)
	}
	return i, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]ingredient.Ingredient, error) {
	return r.query(ctx, "list",
		`SELECT `+ingredientColumns+` FROM ingredients ORDER BY created_at, id`)
}

func (r *postgresRepository) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]ingredient.Ingredient, error) {
	return r.query(ctx, "list by recipe",
		`SELECT `+ingredientColumns+` FROM ingredients WHERE recipe_id = $1 ORDER BY created_at, id`,
		recipeID)
}

func (r *postgresRepository) Update(ctx context.Context, i *ingredient.Ingredient) (*ingredient.Ingredient, error) {
	if err := ingredient.ValidateQuantity(i.Quantity); err != nil {
		return nil, err
	}

	query := `
        UPDATE ingredients
        SET name = $2, quantity = $3, unit = $4, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + ingredientColumns

	updated, err := scanPgIngredient(r.pool.QueryRow(ctx, query, i.ID, i.Name, i.Quantity, i.Unit))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ingredient.ErrIngredientNotFound
		}
		return nil, mapPgError("update", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ingredient.ErrIngredientNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ingredients WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ingredient existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) query(ctx context.Context, op, query string, args ...any) ([]ingredient.Ingredient, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s ingredients: %w", op, err)
	}
	defer rows.Close()

	ingredients := make([]ingredient.Ingredient, 0)
	for rows.Next() {
		i, err := scanPgIngredient(rows)
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

// mapPgError translates constraint violations into domain errors.
func mapPgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			return recipe.ErrRecipeNotFound
		case "23514": // check_violation
			return ingredient.ErrNegativeQuantity
		case "22003": // numeric_value_out_of_range
			return ingredient.ErrQuantityTooLarge
		}
	}
	return fmt.Errorf("failed to %s ingredient: %w", op, err)
}
