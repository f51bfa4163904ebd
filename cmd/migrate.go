package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jekabolt/affiliate-dashboard/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		n, err := store.Migrate(cmd.Context(), cfg.DB)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		slog.Default().InfoContext(cmd.Context(), "migrations applied",
			slog.Int("count", n),
			slog.String("driver", cfg.DB.Driver),
		)
		return nil
	},
}
