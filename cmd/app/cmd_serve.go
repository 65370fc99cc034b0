package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"datewise/cmd/fx/config_fx"
	"datewise/cmd/fx/controllers_fx"
	"datewise/cmd/fx/httpclient_fx"
	"datewise/cmd/fx/itinerary_fx"
	"datewise/cmd/fx/memcache_fx"
	"datewise/cmd/fx/places_fx"
	"datewise/cmd/fx/tagsfx"
	"datewise/internal/infra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	app := fx.New(
		fx.Supply(config_fx.ConfigPath(configPath)),
		config_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		memcache_fx.Module,
		httpclient_fx.Module,
		tagsfx.Module,
		places_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

func StartServer(lc fx.Lifecycle, cfg *infra.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
