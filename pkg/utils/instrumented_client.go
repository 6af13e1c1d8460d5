package utils

import (
	"context"
	"time"

	"go.uber.org/zap"

	"traveldesigner/internal/agents"
	"traveldesigner/internal/models/response_models"
	"traveldesigner/pkg/metrics"
)

// InstrumentedClient logs and measures every call made through next.
type InstrumentedClient struct {
	next    ModelClient
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewInstrumentedClient(next ModelClient, m *metrics.Metrics, logger *zap.Logger) *InstrumentedClient {
	return &InstrumentedClient{next: next, metrics: m, logger: logger}
}

func (c *InstrumentedClient) Invoke(ctx context.Context, agent agents.Agent, prompt string) (response_models.RunResult, error) {
	start := time.Now()
	result, err := c.next.Invoke(ctx, agent, prompt)
	elapsed := time.Since(start)

	c.metrics.ObserveInvocation(agent.Name, elapsed.Seconds(), err)

	if err != nil {
		c.logger.Warn("agent run failed",
			zap.String("agent", agent.Name),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return result, err
	}

	c.logger.Debug("agent run finished",
		zap.String("agent", agent.Name),
		zap.String("prompt", prompt),
		zap.Duration("elapsed", elapsed))
	return result, nil
}
