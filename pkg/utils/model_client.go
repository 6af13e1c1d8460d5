package utils

import (
	"context"
	"fmt"
	"strings"

	"traveldesigner/internal/agents"
	"traveldesigner/internal/infra"
	"traveldesigner/internal/models/response_models"
)

// ModelClient runs one agent against one prompt and returns the result of
// that run, including any tool calls the model made on the way.
type ModelClient interface {
	Invoke(ctx context.Context, agent agents.Agent, prompt string) (response_models.RunResult, error)
}

// NewModelClient Factory function to create the client selected by cfg.Provider
func NewModelClient(cfg infra.LLMConfig) (ModelClient, error) {
	provider := strings.ToLower(cfg.Provider)
	if provider != "mock" && cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: %w", provider, ErrMissingAPIKey)
	}

	switch provider {
	case "openai":
		return NewOpenAIChatClient(cfg), nil
	case "gemini":
		return NewGeminiChatClient(context.Background(), cfg)
	case "mock":
		return NewMockChatClient(cfg.DebugTrace), nil
	default:
		return nil, fmt.Errorf("%q: %w. Use 'openai', 'gemini' or 'mock'", cfg.Provider, ErrUnsupportedProvider)
	}
}

func maxTurns(n int) int {
	if n <= 0 {
		return infra.DefaultMaxTurns
	}
	return n
}
