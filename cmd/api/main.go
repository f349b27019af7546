package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"recipe-backend/internal/config"
	"recipe-backend/pkg/logger"
)

func main() {
	// .env is optional; production uses real environment variables.
	_ = godotenv.Load()

	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand creates the root command of the recipe API binary.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "recipe-api",
		Short:         "Recipe catalog HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewMigrateCommand())

	return cmd
}

// loadConfig loads and validates the configuration and initializes logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	return cfg, nil
}
