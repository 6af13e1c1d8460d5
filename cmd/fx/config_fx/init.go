package config_fx

import (
	"go.uber.org/fx"
	"traveldesigner/internal/infra"
)

var Module = fx.Provide(infra.LoadConfig)
