package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"traveldesigner/internal/agents"
	"traveldesigner/internal/infra"
	"traveldesigner/internal/models/response_models"
)

// OpenAIChatClient talks to any OpenAI compatible chat completions endpoint.
type OpenAIChatClient struct {
	client   *openai.Client
	model    string
	maxTurns int
	debug    bool
}

func NewOpenAIChatClient(cfg infra.LLMConfig) *OpenAIChatClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIChatClient{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		maxTurns: maxTurns(cfg.MaxTurns),
		debug:    cfg.DebugTrace,
	}
}

func (c *OpenAIChatClient) Invoke(ctx context.Context, agent agents.Agent, prompt string) (response_models.RunResult, error) {
	dialogue := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: agent.Instructions},
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}

	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: dialogue,
	}
	if len(agent.Tools) > 0 {
		req.Tools = openAITools(agent.Tools)
		req.ToolChoice = "auto"
	}

	trace := response_models.RunTrace{LastAgent: agent.Name}

	for turn := 0; turn < c.maxTurns; turn++ {
		req.Messages = dialogue
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return response_models.RunResult{}, fmt.Errorf("%w: %s: %v", ErrModelInvocation, agent.Name, err)
		}
		trace.RawResponses++
		if len(resp.Choices) == 0 {
			return response_models.RunResult{}, fmt.Errorf("%s: %w", agent.Name, ErrNoCompletion)
		}

		msg := resp.Choices[0].Message
		dialogue = append(dialogue, msg)
		trace.NewItems++

		if len(msg.ToolCalls) == 0 {
			trace.FinalOutput = msg.Content
			return trace.Result(c.debug), nil
		}

		for _, tc := range msg.ToolCalls {
			toolMsg, err := execOpenAITool(agent, tc)
			if err != nil {
				return response_models.RunResult{}, err
			}
			dialogue = append(dialogue, toolMsg)
			trace.NewItems += 2
		}
	}

	return response_models.RunResult{}, fmt.Errorf("%s after %d turns: %w", agent.Name, c.maxTurns, ErrMaxTurnsExceeded)
}

func execOpenAITool(agent agents.Agent, tc openai.ToolCall) (openai.ChatCompletionMessage, error) {
	tool, ok := agent.Tool(tc.Function.Name)
	if !ok {
		return openai.ChatCompletionMessage{}, fmt.Errorf("%s asked for %q: %w", agent.Name, tc.Function.Name, ErrUnknownTool)
	}

	content, err := tool.Call(tc.Function.Arguments)
	if err != nil {
		// the model gets to see the failure and may correct its call
		content = "Error invoking function: " + err.Error()
	}

	return openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		Content:    content,
		Name:       tool.Name,
		ToolCallID: tc.ID,
	}, nil
}

func openAITools(tools []agents.Tool) []openai.Tool {
	out := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		params := jsonschema.Definition{
			Type:       jsonschema.Object,
			Properties: map[string]jsonschema.Definition{},
		}
		for _, p := range t.Params {
			params.Properties[p.Name] = jsonschema.Definition{
				Type:        jsonschema.String,
				Description: p.Description,
			}
			if p.Required {
				params.Required = append(params.Required, p.Name)
			}
		}

		f := openai.FunctionDefinition{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  params,
		}
		out = append(out, openai.Tool{
			Type:     openai.ToolTypeFunction,
			Function: &f,
		})
	}
	return out
}
