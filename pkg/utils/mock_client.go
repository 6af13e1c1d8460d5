package utils

import (
	"context"
	"fmt"
	"strings"

	"traveldesigner/internal/agents"
	"traveldesigner/internal/models/response_models"
)

// MockChatClient answers every agent with canned text so the app can run
// without credentials. Booking prompts go through the agent's real tools.
type MockChatClient struct {
	debug bool
}

func NewMockChatClient(debug bool) *MockChatClient {
	return &MockChatClient{debug: debug}
}

var moodKeywords = []struct {
	keywords    []string
	destination string
	reason      string
}{
	{[]string{"city", "nightlife", "shopping", "broadway", "museum"}, "New York", "its energy, shows and food scene"},
	{[]string{"relax", "temple", "sushi", "anime", "calm", "garden"}, "Tokyo", "a relaxing mix of gardens, temples and great food"},
	{[]string{"romantic", "art", "wine", "cafe"}, "Paris", "art, cafes and romantic walks along the Seine"},
}

var mockAttractions = map[string]string{
	"Paris":    "Visit the Louvre, Montmartre and the Eiffel Tower.\nTry croissants, steak frites and macarons.",
	"Tokyo":    "Visit Senso-ji, Shinjuku Gyoen and Shibuya Crossing.\nTry sushi at Tsukiji, ramen and izakaya small plates.",
	"New York": "Visit Central Park, the Met and the Brooklyn Bridge.\nTry a bagel, pizza by the slice and a deli sandwich.",
}

func (c *MockChatClient) Invoke(ctx context.Context, agent agents.Agent, prompt string) (response_models.RunResult, error) {
	if err := ctx.Err(); err != nil {
		return response_models.RunResult{}, fmt.Errorf("%w: %s: %v", ErrModelInvocation, agent.Name, err)
	}

	trace := response_models.RunTrace{LastAgent: agent.Name, NewItems: 1, RawResponses: 1}

	switch {
	case strings.HasPrefix(prompt, "Flights to "):
		out, err := c.callTool(agent, "get_flights", strings.TrimPrefix(prompt, "Flights to "))
		if err != nil {
			return response_models.RunResult{}, err
		}
		trace.FinalOutput = "Here are some flight options:\n" + out
		trace.NewItems, trace.RawResponses = 3, 2
	case strings.HasPrefix(prompt, "Hotels in "):
		out, err := c.callTool(agent, "suggest_hotels", strings.TrimPrefix(prompt, "Hotels in "))
		if err != nil {
			return response_models.RunResult{}, err
		}
		trace.FinalOutput = "Here are some places to stay:\n" + out
		trace.NewItems, trace.RawResponses = 3, 2
	case strings.HasPrefix(prompt, "Attractions and food in "):
		dest := strings.TrimPrefix(prompt, "Attractions and food in ")
		text, ok := mockAttractions[dest]
		if !ok {
			text = fmt.Sprintf("Walk the old town of %s and try the local street food.", dest)
		}
		trace.FinalOutput = text
	default:
		trace.FinalOutput = suggestDestination(prompt)
	}

	return trace.Result(c.debug), nil
}

func (c *MockChatClient) callTool(agent agents.Agent, name, destination string) (string, error) {
	tool, ok := agent.Tool(name)
	if !ok {
		return "", fmt.Errorf("%s asked for %q: %w", agent.Name, name, ErrUnknownTool)
	}
	return tool.Invoke(map[string]any{"destination": destination})
}

func suggestDestination(mood string) string {
	lower := strings.ToLower(mood)
	for _, m := range moodKeywords {
		for _, kw := range m.keywords {
			if strings.Contains(lower, kw) {
				return fmt.Sprintf("I suggest %s for %s.", m.destination, m.reason)
			}
		}
	}
	return "I suggest Paris for a classic first trip: art, cafes and walkable streets."
}
