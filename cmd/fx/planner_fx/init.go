package planner_fx

import (
	"go.uber.org/fx"
	"traveldesigner/internal/agents"
	"traveldesigner/internal/api/controllers"
	"traveldesigner/internal/services"
)

var Module = fx.Options(
	fx.Provide(agents.NewCatalog),
	fx.Provide(services.NewTravelPlanner),
	fx.Provide(controllers.NewPlannerController))
