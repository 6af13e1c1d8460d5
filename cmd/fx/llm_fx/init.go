package llm_fx

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"traveldesigner/internal/infra"
	"traveldesigner/pkg/metrics"
	"traveldesigner/pkg/utils"
)

var Module = fx.Provide(ProvideModelClient)

// ProvideModelClient creates the model client selected by LLM_PROVIDER
func ProvideModelClient(
	lc fx.Lifecycle,
	cfg *infra.AppConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) (utils.ModelClient, error) {
	logger.Info("initializing llm client",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
		zap.Bool("debug_trace", cfg.LLM.DebugTrace))

	client, err := utils.NewModelClient(cfg.LLM)
	if err != nil {
		return nil, err
	}

	if closer, ok := client.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}

	return utils.NewInstrumentedClient(client, m, logger), nil
}
