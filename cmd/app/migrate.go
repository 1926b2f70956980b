package main

import (
	"github.com/spf13/cobra"

	"cityinfo/internal/config"
	"cityinfo/internal/infra"
	"cityinfo/pkg/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			lggr, err := logger.New(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return err
			}
			defer func() { _ = lggr.Sync() }()

			db, err := infra.OpenDatabase(cfg.Database, lggr)
			if err != nil {
				return err
			}
			defer infra.CloseDatabase(db, lggr)

			if err := infra.Migrate(db, cfg.Database.Driver); err != nil {
				return err
			}

			lggr.Infow("Migrations complete", "driver", cfg.Database.Driver)
			return nil
		},
	}
}
