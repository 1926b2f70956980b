package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"cityinfo/internal/config"
	"cityinfo/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.WithLogger(provideEventLogger))

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.SugaredLogger, error) {
	lggr, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(lggr.Desugar())

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync fails on stdout/stderr on some platforms; nothing to act on.
			_ = lggr.Sync()
			return nil
		},
	})
	return lggr, nil
}

func provideEventLogger(lggr *zap.SugaredLogger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: lggr.Named("fx").Desugar()}
}
