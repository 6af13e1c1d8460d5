package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"traveldesigner/internal/agents"
	"traveldesigner/internal/models/response_models"
	"traveldesigner/pkg/metrics"
	"traveldesigner/pkg/utils"
)

type TravelPlannerInterface interface {
	PlanTrip(ctx context.Context, userInput string) (*response_models.ItineraryReport, error)
}

type TravelPlanner struct {
	client  utils.ModelClient
	catalog *agents.Catalog
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewTravelPlanner(
	client utils.ModelClient,
	catalog *agents.Catalog,
	m *metrics.Metrics,
	logger *zap.Logger,
) TravelPlannerInterface {
	return &TravelPlanner{
		client:  client,
		catalog: catalog,
		metrics: m,
		logger:  logger,
	}
}

// PlanTrip runs the destination, flights, hotels and attractions agents one
// after another. Any failed run aborts the plan; there is no partial report.
func (p *TravelPlanner) PlanTrip(ctx context.Context, userInput string) (*response_models.ItineraryReport, error) {
	report, err := p.planTrip(ctx, strings.TrimSpace(userInput))
	p.metrics.ObservePlan(err)
	return report, err
}

func (p *TravelPlanner) planTrip(ctx context.Context, userInput string) (*response_models.ItineraryReport, error) {
	if userInput == "" {
		return nil, utils.ErrEmptyPrompt
	}

	destinationText, err := p.run(ctx, p.catalog.Destination, userInput)
	if err != nil {
		return nil, err
	}
	destination := ResolveDestination(destinationText)
	p.logger.Info("destination resolved", zap.String("destination", destination))

	flights, err := p.run(ctx, p.catalog.Booking, fmt.Sprintf("Flights to %s", destination))
	if err != nil {
		return nil, err
	}

	hotels, err := p.run(ctx, p.catalog.Booking, fmt.Sprintf("Hotels in %s", destination))
	if err != nil {
		return nil, err
	}

	attractions, err := p.run(ctx, p.catalog.Explore, fmt.Sprintf("Attractions and food in %s", destination))
	if err != nil {
		return nil, err
	}

	return &response_models.ItineraryReport{
		Destination:     destination,
		DestinationText: destinationText,
		Flights:         flights,
		Hotels:          hotels,
		Attractions:     attractions,
	}, nil
}

func (p *TravelPlanner) run(ctx context.Context, agent agents.Agent, prompt string) (string, error) {
	result, err := p.client.Invoke(ctx, agent, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", agent.Name, err)
	}
	return ExtractFinalText(result), nil
}
