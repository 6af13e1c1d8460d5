package agents

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Agent is one role of model invocation: instructions plus the tools the
// model may ask to run.
type Agent struct {
	Name         string
	Instructions string
	Tools        []Tool
}

// Tool looks up a tool by name.
func (a Agent) Tool(name string) (Tool, bool) {
	for _, t := range a.Tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

type ToolParam struct {
	Name        string
	Description string
	Required    bool
}

type Tool struct {
	Name        string
	Description string
	Params      []ToolParam
	Handler     func(args map[string]any) (string, error)
}

// Call decodes JSON encoded arguments and runs the handler.
func (t Tool) Call(argsJSON string) (string, error) {
	args := map[string]any{}
	if strings.TrimSpace(argsJSON) != "" {
		if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
			return "", fmt.Errorf("tool %s: decode arguments: %w", t.Name, err)
		}
	}
	return t.Invoke(args)
}

// Invoke runs the handler with already decoded arguments.
func (t Tool) Invoke(args map[string]any) (string, error) {
	for _, p := range t.Params {
		if !p.Required {
			continue
		}
		if _, ok := args[p.Name]; !ok {
			return "", fmt.Errorf("tool %s: missing argument %q", t.Name, p.Name)
		}
	}
	if t.Handler == nil {
		return "", fmt.Errorf("tool %s has no handler", t.Name)
	}
	return t.Handler(args)
}

// Catalog holds the three agents the planner chains together.
type Catalog struct {
	Destination Agent
	Booking     Agent
	Explore     Agent
}

func NewCatalog() *Catalog {
	return &Catalog{
		Destination: Agent{
			Name:         "DestinationAgent",
			Instructions: "Suggest a travel destination based on the user's mood or interests.",
		},
		Booking: Agent{
			Name:         "BookingAgent",
			Instructions: "Provide flight and hotel options based on destination.",
			Tools:        []Tool{GetFlightsTool(), SuggestHotelsTool()},
		},
		Explore: Agent{
			Name:         "ExploreAgent",
			Instructions: "Suggest attractions and food places for a given destination.",
		},
	}
}
