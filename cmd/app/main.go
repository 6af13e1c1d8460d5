package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"traveldesigner/cmd/fx/config_fx"
	"traveldesigner/cmd/fx/llm_fx"
	"traveldesigner/cmd/fx/logger_fx"
	"traveldesigner/cmd/fx/metrics_fx"
	"traveldesigner/cmd/fx/planner_fx"
	"traveldesigner/internal/api"
	"traveldesigner/internal/infra"
)

func main() {
	envErr := infra.LoadDotEnv()

	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		metrics_fx.Module,
		llm_fx.Module,
		planner_fx.Module,

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Invoke(func(logger *zap.Logger) {
			if envErr != nil {
				logger.Warn("could not read .env", zap.Error(envErr))
			}
		}),
		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *infra.AppConfig, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start server", zap.Error(err))
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
