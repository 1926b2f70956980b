package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cityinfo/internal/config"
	"cityinfo/internal/infra"
)

// Module opens the database and brings its schema up to date before the
// server starts.
var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(runMigrations))

func provideDB(lc fx.Lifecycle, cfg config.DatabaseConfig, lggr *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := infra.OpenDatabase(cfg, lggr)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db, lggr)
			return nil
		},
	})
	return db, nil
}

func runMigrations(db *gorm.DB, cfg config.DatabaseConfig, lggr *zap.SugaredLogger) error {
	if err := infra.Migrate(db, cfg.Driver); err != nil {
		return err
	}
	lggr.Infow("Database migrated", "driver", cfg.Driver)
	return nil
}
