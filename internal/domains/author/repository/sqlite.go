package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"recipe-backend/internal/domains/author"
)

// sqliteRepository implements author.Repository on database/sql + go-sqlite3.
// Used by the embedded store driver and by tests. It does not cache.
type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) author.Repository {
	return &sqliteRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthor(row rowScanner) (*author.Author, error) {
	var a author.Author
	if err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *sqliteRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	now := time.Now().UTC()
	created := author.Author{
		ID:        uuid.New(),
		Name:      a.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO authors (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		created.ID, created.Name, created.CreatedAt, created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM authors WHERE id = ?`, id)

	a, err := scanAuthor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

func (r *sqliteRepository) List(ctx context.Context) ([]author.Author, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM authors ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}
	return authors, nil
}

func (r *sqliteRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE authors SET name = ?, updated_at = ? WHERE id = ?`,
		a.Name, time.Now().UTC(), a.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, author.ErrAuthorNotFound
	}

	return r.GetByID(ctx, a.ID)
}

func (r *sqliteRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}
