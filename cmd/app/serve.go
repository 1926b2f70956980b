package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"cityinfo/cmd/fx/account_fx"
	"cityinfo/cmd/fx/cities_fx"
	"cityinfo/cmd/fx/config_fx"
	"cityinfo/cmd/fx/controllers_fx"
	"cityinfo/cmd/fx/db_fx"
	"cityinfo/cmd/fx/logger_fx"
	"cityinfo/cmd/fx/mail_fx"
	"cityinfo/cmd/fx/pois_fx"
	"cityinfo/internal/api"
	"cityinfo/internal/api/controllers"
	"cityinfo/internal/config"
	"cityinfo/pkg/utils"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			app := fx.New(appOptions(cfg)...)

			app.Run()
			return app.Err()
		},
	}
}

// appOptions wires every feature module with the HTTP server.
func appOptions(cfg *config.Config) []fx.Option {
	return []fx.Option{
		fx.Supply(cfg),
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		mail_fx.Module,
		cities_fx.Module,
		pois_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	}
}

type routerParams struct {
	fx.In

	Server config.ServerConfig
	Auth   config.AuthConfig
	Logger *zap.SugaredLogger
	Tokens *utils.TokenService

	Cities   *controllers.CitiesController
	POIs     *controllers.POIsController
	Accounts *controllers.AccountController
}

func ProvideRouter(p routerParams) *gin.Engine {
	return api.NewRouter(api.RouterParams{
		Mode:       p.Server.Mode,
		PolicyCity: p.Auth.PolicyCity,
		Logger:     p.Logger,
		Tokens:     p.Tokens,
		Cities:     p.Cities,
		POIs:       p.POIs,
		Accounts:   p.Accounts,
	})
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, cfg config.ServerConfig, lggr *zap.SugaredLogger) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			lggr.Infow("Starting HTTP server", "addr", srv.Addr)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					lggr.Errorw("HTTP server stopped", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			lggr.Infow("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
