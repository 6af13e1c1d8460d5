package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"traveldesigner/internal/agents"
	"traveldesigner/internal/infra"
	"traveldesigner/internal/models/response_models"
)

// GeminiChatClient implements ModelClient using Google's Gemini models
type GeminiChatClient struct {
	client   *genai.Client
	model    string
	maxTurns int
	debug    bool
}

// NewGeminiChatClient creates a new Gemini client
func NewGeminiChatClient(ctx context.Context, cfg infra.LLMConfig) (*GeminiChatClient, error) {
	model := cfg.Model
	if model == "" {
		model = infra.DefaultLLMModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiChatClient{
		client:   client,
		model:    model,
		maxTurns: maxTurns(cfg.MaxTurns),
		debug:    cfg.DebugTrace,
	}, nil
}

func (c *GeminiChatClient) Invoke(ctx context.Context, agent agents.Agent, prompt string) (response_models.RunResult, error) {
	m := c.client.GenerativeModel(c.model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(agent.Instructions)}}
	if len(agent.Tools) > 0 {
		m.Tools = []*genai.Tool{{FunctionDeclarations: geminiFunctions(agent.Tools)}}
	}

	cs := m.StartChat()
	trace := response_models.RunTrace{LastAgent: agent.Name}
	parts := []genai.Part{genai.Text(prompt)}

	for turn := 0; turn < c.maxTurns; turn++ {
		resp, err := cs.SendMessage(ctx, parts...)
		if err != nil {
			return response_models.RunResult{}, fmt.Errorf("%w: %s: %v", ErrModelInvocation, agent.Name, err)
		}
		trace.RawResponses++
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return response_models.RunResult{}, fmt.Errorf("%s: %w", agent.Name, ErrNoCompletion)
		}
		trace.NewItems++

		text, calls := splitGeminiParts(resp.Candidates[0].Content.Parts)
		if len(calls) == 0 {
			trace.FinalOutput = text
			return trace.Result(c.debug), nil
		}

		parts = make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			tool, ok := agent.Tool(call.Name)
			if !ok {
				return response_models.RunResult{}, fmt.Errorf("%s asked for %q: %w", agent.Name, call.Name, ErrUnknownTool)
			}
			out, err := tool.Invoke(call.Args)
			if err != nil {
				out = "Error invoking function: " + err.Error()
			}
			parts = append(parts, genai.FunctionResponse{
				Name:     call.Name,
				Response: map[string]any{"result": out},
			})
			trace.NewItems += 2
		}
	}

	return response_models.RunResult{}, fmt.Errorf("%s after %d turns: %w", agent.Name, c.maxTurns, ErrMaxTurnsExceeded)
}

// Close closes the Gemini client
func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}

func splitGeminiParts(parts []genai.Part) (string, []genai.FunctionCall) {
	var text strings.Builder
	var calls []genai.FunctionCall
	for _, p := range parts {
		switch v := p.(type) {
		case genai.Text:
			text.WriteString(string(v))
		case genai.FunctionCall:
			calls = append(calls, v)
		case *genai.FunctionCall:
			calls = append(calls, *v)
		}
	}
	return text.String(), calls
}

func geminiFunctions(tools []agents.Tool) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		schema := &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		}
		for _, p := range t.Params {
			schema.Properties[p.Name] = &genai.Schema{
				Type:        genai.TypeString,
				Description: p.Description,
			}
			if p.Required {
				schema.Required = append(schema.Required, p.Name)
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  schema,
		})
	}
	return decls
}
