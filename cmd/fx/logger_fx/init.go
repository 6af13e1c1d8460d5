package logger_fx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"traveldesigner/internal/infra"
)

var Module = fx.Provide(ProvideLogger)

// ProvideLogger builds the process logger and makes it the zap global.
func ProvideLogger(lc fx.Lifecycle, cfg *infra.AppConfig) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.GinMode == gin.DebugMode {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}
