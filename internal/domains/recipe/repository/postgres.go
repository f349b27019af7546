package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"recipe-backend/internal/domains/recipe"
	"recipe-backend/internal/domains/recipe/search"
	"recipe-backend/pkg/cache"
	"recipe-backend/pkg/database"
)

const cacheTTL = 15 * time.Minute

// Column list shared by every recipe SELECT. Qualified with the r alias so it
// can be used together with the author join of search queries.
const recipeColumns = `r.id, r.title, r.description, r.instructions, r.author_id, r.created_at, r.updated_at`

// postgresRepository implements recipe.Repository
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) recipe.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: c,
	}
}

func scanPgRecipe(row pgx.Row) (*recipe.Recipe, error) {
	var rec recipe.Recipe
	err := row.Scan(
		&rec.ID,
		&rec.Title,
		&rec.Description,
		&rec.Instructions,
		&rec.AuthorID,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *postgresRepository) Create(ctx context.Context, rec *recipe.Recipe) (*recipe.Recipe, error) {
	query := `
        INSERT INTO recipes AS r (title, description, instructions, author_id)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + recipeColumns

	created, err := scanPgRecipe(r.pool.QueryRow(ctx, query,
		rec.Title, rec.Description, rec.Instructions, rec.AuthorID))
	if err != nil {
		return nil, mapPgError("create", err)
	}

	return created, nil
}

// GetByID retrieves recipe by UUID with caching
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	cacheKey := recipe.CacheKey(id)

	var cachedRecipe recipe.Recipe
	if cached, err := r.cache.Get(ctx, cacheKey, &cachedRecipe); err == nil && cached {
		return &cachedRecipe, nil
	}

	query := `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.id = $1`

	rec, err := scanPgRecipe(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recipe.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe by id: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, rec, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("[RECIPE] cache set failed")
	}

	return rec, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]recipe.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes r ORDER BY r.created_at, r.id`
	return r.query(ctx, "list", query)
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]recipe.Recipe, error) {
	query := `
        SELECT ` + recipeColumns + `
        FROM recipes r
        WHERE r.author_id = $1
        ORDER BY r.created_at, r.id
    `
	return r.query(ctx, "list by author", query, authorID)
}

func (r *postgresRepository) Search(ctx context.Context, expr search.Expr) ([]recipe.Recipe, error) {
	where, args, err := search.NewSQLTranslator(search.Postgres).Translate(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to translate search: %w", err)
	}
	return r.query(ctx, "search", searchQuery(where), args...)
}

func (r *postgresRepository) Update(ctx context.Context, rec *recipe.Recipe) (*recipe.Recipe, error) {
	query := `
        UPDATE recipes AS r
        SET title = $2, description = $3, instructions = $4, author_id = $5, updated_at = NOW()
        WHERE r.id = $1
        RETURNING ` + recipeColumns

	updated, err := scanPgRecipe(r.pool.QueryRow(ctx, query,
		rec.ID, rec.Title, rec.Description, rec.Instructions, rec.AuthorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recipe.ErrRecipeNotFound
		}
		return nil, mapPgError("update", err)
	}

	r.invalidate(ctx, updated.ID)
	return updated, nil
}

// Delete locks the recipe row first so no ingredient can be attached to it
// while its ingredients are being removed.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		var locked uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM recipes WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, recipe.ErrRecipeNotFound
			}
			return 0, fmt.Errorf("failed to lock recipe: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM ingredients WHERE recipe_id = $1`, id)
		if err != nil {
			return 0, fmt.Errorf("failed to delete recipe ingredients: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id); err != nil {
			return 0, fmt.Errorf("failed to delete recipe: %w", err)
		}
		return tag.RowsAffected(), nil
	})
	if err != nil {
		return err
	}

	log.Debug().Str("recipe_id", id.String()).Int64("ingredients_deleted", removed).Msg("[RECIPE] deleted")
	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM recipes WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check recipe existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) query(ctx context.Context, op, query string, args ...any) ([]recipe.Recipe, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s recipes: %w", op, err)
	}
	defer rows.Close()

	recipes := make([]recipe.Recipe, 0)
	for rows.Next() {
		rec, err := scanPgRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return recipes, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, recipe.CacheKey(id)); err != nil {
		log.Warn().Err(err).Str("recipe_id", id.String()).Msg("[RECIPE] cache invalidation failed")
	}
}

// mapPgError translates constraint violations into domain errors.
func mapPgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
		return recipe.ErrAuthorReferenceNotFound
	}
	return fmt.Errorf("failed to %s recipe: %w", op, err)
}
