package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/radio-billing/backend/internal/infra/db"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			database, err := db.NewConnection(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer func() { _ = database.Close() }()

			slog.Info("Running database migrations", "driver", cfg.Database.Driver)
			if err := database.Migrate(); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			slog.Info("Database migrations completed successfully")
			return nil
		},
	}
}
