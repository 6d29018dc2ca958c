package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neuralink-ai/site-backend/internal/config"
	"github.com/neuralink-ai/site-backend/internal/observability"
	"github.com/neuralink-ai/site-backend/internal/persistence"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.Postgres.DSN == "" {
			return fmt.Errorf("migrate requires POSTGRES_DSN")
		}

		logger, err := observability.NewLogger(cfg.Logger, zap.String("service", cfg.App.Name))
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		files, err := persistence.MigrationFiles()
		if err != nil {
			return err
		}
		logger.Info("embedded migrations", zap.Strings("files", files))

		return persistence.RunMigrations(cmd.Context(), cfg.Postgres.DSN, logger)
	},
}
