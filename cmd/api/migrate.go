package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"recipe-backend/internal/config"
	"recipe-backend/internal/infrastructure/database"
	"recipe-backend/internal/infrastructure/sqlite"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long: `Create the authors, recipes and ingredients tables if they do not exist.

Every statement is idempotent, so running migrate twice is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return Migrate(cmd.Context(), cfg)
		},
	}
}

// Migrate applies the schema of the configured store.
func Migrate(ctx context.Context, cfg *config.Config) error {
	if cfg.Store.Driver == config.DriverSQLite {
		// Open applies the embedded schema.
		store, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return err
		}
		return store.Close()
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	log.Info().Str("driver", cfg.Store.Driver).Msg("Migration completed")
	return nil
}
