package main

import (
	"errors"

	"github.com/saulo-duarte/h2owise/internal/config"
	"github.com/saulo-duarte/h2owise/internal/container"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the questions and user_scores tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		config.InitLogger(cfg)

		if cfg.DatabaseDSN == "" {
			return errors.New("DATABASE_DSN is required")
		}

		db, err := config.Connect(cmd.Context(), cfg.DatabaseDSN)
		if err != nil {
			return err
		}

		if err := container.Migrate(cmd.Context(), db); err != nil {
			config.Logger.WithError(err).Error("Migration failed")
			return err
		}

		config.Logger.Info("Migration completed")
		return nil
	},
}
