package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"recipe-backend/internal/domains/recipe"
	"recipe-backend/internal/domains/recipe/search"
	"recipe-backend/pkg/database"
)

// sqliteRepository implements recipe.Repository on database/sql + go-sqlite3.
type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) recipe.Repository {
	return &sqliteRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteRecipe(row rowScanner) (*recipe.Recipe, error) {
	var (
		rec      recipe.Recipe
		authorID uuid.NullUUID
	)
	err := row.Scan(
		&rec.ID,
		&rec.Title,
		&rec.Description,
		&rec.Instructions,
		&authorID,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if authorID.Valid {
		id := authorID.UUID
		rec.AuthorID = &id
	}
	return &rec, nil
}

func nullableID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func (r *sqliteRepository) Create(ctx context.Context, rec *recipe.Recipe) (*recipe.Recipe, error) {
	now := time.Now().UTC()
	created := *rec
	created.ID = uuid.New()
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO recipes (id, title, description, instructions, author_id, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		created.ID, created.Title, created.Description, created.Instructions,
		nullableID(created.AuthorID), created.CreatedAt, created.UpdatedAt,
	)
	if err != nil {
		return nil, mapSQLiteError("create", err)
	}

	return &created, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recipeColumns+` FROM recipes r WHERE r.id = ?`, id)

	rec, err := scanSQLiteRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recipe.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe by id: %w", err)
	}
	return rec, nil
}

func (r *sqliteRepository) List(ctx context.Context) ([]recipe.Recipe, error) {
	return r.query(ctx, "list",
		`SELECT `+recipeColumns+` FROM recipes r ORDER BY r.created_at, r.id`)
}

func (r *sqliteRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]recipe.Recipe, error) {
	return r.query(ctx, "list by author",
		`SELECT `+recipeColumns+` FROM recipes r WHERE r.author_id = ? ORDER BY r.created_at, r.id`,
		authorID)
}

func (r *sqliteRepository) Search(ctx context.Context, expr search.Expr) ([]recipe.Recipe, error) {
	where, args, err := search.NewSQLTranslator(search.SQLite).Translate(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to translate search: %w", err)
	}
	return r.query(ctx, "search", searchQuery(where), args...)
}

func (r *sqliteRepository) Update(ctx context.Context, rec *recipe.Recipe) (*recipe.Recipe, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE recipes
        SET title = ?, description = ?, instructions = ?, author_id = ?, updated_at = ?
        WHERE id = ?`,
		rec.Title, rec.Description, rec.Instructions, nullableID(rec.AuthorID), time.Now().UTC(), rec.ID,
	)
	if err != nil {
		return nil, mapSQLiteError("update", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, recipe.ErrRecipeNotFound
	}

	return r.GetByID(ctx, rec.ID)
}

func (r *sqliteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithSQLTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM ingredients WHERE recipe_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete recipe ingredients: %w", err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete recipe: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to delete recipe: %w", err)
		}
		if n == 0 {
			return recipe.ErrRecipeNotFound
		}
		return nil
	})
}

func (r *sqliteRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM recipes WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check recipe existence: %w", err)
	}
	return exists, nil
}

func (r *sqliteRepository) query(ctx context.Context, op, query string, args ...any) ([]recipe.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s recipes: %w", op, err)
	}
	defer rows.Close()

	recipes := make([]recipe.Recipe, 0)
	for rows.Next() {
		rec, err := scanSQLiteRecipe(rows)
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

func mapSQLiteError(op string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
		return recipe.ErrAuthorReferenceNotFound
	}
	return fmt.Errorf("failed to %s recipe: %w", op, err)
}
