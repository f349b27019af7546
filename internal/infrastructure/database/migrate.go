package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/rs/zerolog/log"
)

//go:embed migrations/schema.sql
var schemaSQL string

// Migrate applies the schema. Every statement is idempotent.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	// No arguments: pgx sends this over the simple protocol, which accepts
	// multiple statements.
	if _, err := db.Pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info().Msg("[DATABASE] schema applied")
	return nil
}
