package utils

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traveldesigner/internal/agents"
)

func TestGeminiFunctions(t *testing.T) {
	tools := []agents.Tool{
		agents.GetFlightsTool(),
		{
			Name:        "weather",
			Description: "Weather for a city",
			Params: []agents.ToolParam{
				{Name: "city", Description: "City name", Required: true},
				{Name: "unit", Description: "celsius or fahrenheit"},
			},
		},
	}

	decls := geminiFunctions(tools)
	require.Len(t, decls, 2)

	assert.Equal(t, "get_flights", decls[0].Name)
	assert.Equal(t, genai.TypeObject, decls[0].Parameters.Type)
	assert.Equal(t, []string{"destination"}, decls[0].Parameters.Required)
	assert.Equal(t, genai.TypeString, decls[0].Parameters.Properties["destination"].Type)

	assert.Equal(t, "weather", decls[1].Name)
	assert.Equal(t, []string{"city"}, decls[1].Parameters.Required)
	assert.Len(t, decls[1].Parameters.Properties, 2)
	assert.Equal(t, "celsius or fahrenheit", decls[1].Parameters.Properties["unit"].Description)

	assert.Empty(t, geminiFunctions(nil))
}

func TestSplitGeminiParts(t *testing.T) {
	tests := []struct {
		name      string
		parts     []genai.Part
		wantText  string
		wantCalls []genai.FunctionCall
	}{
		{
			name:     "text only",
			parts:    []genai.Part{genai.Text("I suggest "), genai.Text("Tokyo.")},
			wantText: "I suggest Tokyo.",
		},
		{
			name: "value and pointer calls",
			parts: []genai.Part{
				genai.FunctionCall{Name: "get_flights", Args: map[string]any{"destination": "Tokyo"}},
				&genai.FunctionCall{Name: "suggest_hotels", Args: map[string]any{"destination": "Tokyo"}},
			},
			wantCalls: []genai.FunctionCall{
				{Name: "get_flights", Args: map[string]any{"destination": "Tokyo"}},
				{Name: "suggest_hotels", Args: map[string]any{"destination": "Tokyo"}},
			},
		},
		{
			name: "text beside a call and other parts ignored",
			parts: []genai.Part{
				genai.Text("Checking flights"),
				genai.Blob{MIMEType: "image/png", Data: []byte{1}},
				genai.FunctionCall{Name: "get_flights", Args: map[string]any{"destination": "Paris"}},
			},
			wantText:  "Checking flights",
			wantCalls: []genai.FunctionCall{{Name: "get_flights", Args: map[string]any{"destination": "Paris"}}},
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, calls := splitGeminiParts(tt.parts)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}
