package services

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"traveldesigner/internal/agents"
	"traveldesigner/internal/models/response_models"
	"traveldesigner/pkg/metrics"
	"traveldesigner/pkg/utils"
)

type invocation struct {
	agent  string
	prompt string
}

// scriptedClient answers the n-th call with results[n] and records prompts.
type scriptedClient struct {
	results []response_models.RunResult
	failAt  int
	err     error
	calls   []invocation
}

func (s *scriptedClient) Invoke(ctx context.Context, agent agents.Agent, prompt string) (response_models.RunResult, error) {
	s.calls = append(s.calls, invocation{agent: agent.Name, prompt: prompt})
	n := len(s.calls) - 1
	if s.err != nil && n == s.failAt {
		return response_models.RunResult{}, s.err
	}
	if n < len(s.results) {
		return s.results[n], nil
	}
	return response_models.NewTextResult(""), nil
}

func newTestPlanner(client utils.ModelClient) (TravelPlannerInterface, *metrics.Metrics) {
	m := metrics.New(prometheus.NewRegistry())
	return NewTravelPlanner(client, agents.NewCatalog(), m, zap.NewNop()), m
}

func TestPlanTripSequence(t *testing.T) {
	client := &scriptedClient{
		results: []response_models.RunResult{
			response_models.NewOpaqueResult(response_models.RunTrace{
				LastAgent:   "DestinationAgent",
				FinalOutput: "I suggest Tokyo for a relaxing trip",
			}),
			response_models.NewTextResult("Flights to Tokyo from your city: Flight A, Flight B, Flight C."),
			response_models.NewTextResult("Recommended hotels in Tokyo: Hotel X, Hotel Y, Hotel Z."),
			response_models.NewTextResult("  Senso-ji and ramen.  "),
		},
	}
	planner, m := newTestPlanner(client)

	report, err := planner.PlanTrip(context.Background(), "  I want a calm trip  ")
	require.NoError(t, err)

	assert.Equal(t, []invocation{
		{"DestinationAgent", "I want a calm trip"},
		{"BookingAgent", "Flights to Tokyo"},
		{"BookingAgent", "Hotels in Tokyo"},
		{"ExploreAgent", "Attractions and food in Tokyo"},
	}, client.calls)

	assert.Equal(t, &response_models.ItineraryReport{
		Destination:     "Tokyo",
		DestinationText: "I suggest Tokyo for a relaxing trip",
		Flights:         "Flights to Tokyo from your city: Flight A, Flight B, Flight C.",
		Hotels:          "Recommended hotels in Tokyo: Hotel X, Hotel Y, Hotel Z.",
		Attractions:     "Senso-ji and ramen.",
	}, report)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PlanRequests.WithLabelValues("success")))
}

func TestPlanTripFallsBackToParis(t *testing.T) {
	client := &scriptedClient{
		results: []response_models.RunResult{response_models.NewTextResult("")},
	}
	planner, _ := newTestPlanner(client)

	report, err := planner.PlanTrip(context.Background(), "surprise me")
	require.NoError(t, err)

	assert.Equal(t, "Paris", report.Destination)
	assert.Equal(t, "", report.DestinationText)
	assert.Equal(t, "Flights to Paris", client.calls[1].prompt)
	assert.Contains(t, report.Markdown(), "### 🌍 Suggested Destination:\n\n\n### ✈️ Flight Options:")
}

func TestPlanTripAbortsOnFailure(t *testing.T) {
	boom := errors.New("connection reset")

	for failAt, agent := range []string{"DestinationAgent", "BookingAgent", "BookingAgent", "ExploreAgent"} {
		client := &scriptedClient{failAt: failAt, err: boom}
		planner, m := newTestPlanner(client)

		report, err := planner.PlanTrip(context.Background(), "beach")
		assert.Nil(t, report)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), agent)
		assert.Len(t, client.calls, failAt+1, "no call may follow a failure")
		assert.Equal(t, float64(1), testutil.ToFloat64(m.PlanRequests.WithLabelValues("error")))
	}
}

func TestPlanTripRejectsEmptyInput(t *testing.T) {
	client := &scriptedClient{}
	planner, _ := newTestPlanner(client)

	_, err := planner.PlanTrip(context.Background(), "   ")
	assert.ErrorIs(t, err, utils.ErrEmptyPrompt)
	assert.Empty(t, client.calls)
}

func TestPlanTripWithMockClient(t *testing.T) {
	planner, _ := newTestPlanner(utils.NewMockChatClient(true))

	report, err := planner.PlanTrip(context.Background(), "somewhere with temples and sushi")
	require.NoError(t, err)

	assert.Equal(t, "Tokyo", report.Destination)
	assert.Contains(t, report.Flights, "Flights to Tokyo from your city: Flight A, Flight B, Flight C.")
	assert.Contains(t, report.Hotels, "Recommended hotels in Tokyo: Hotel X, Hotel Y, Hotel Z.")
	assert.NotContains(t, report.Markdown(), "RunResult:")
	assert.NotContains(t, report.Markdown(), "new item(s)")
}
