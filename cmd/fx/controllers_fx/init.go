package controllers_fx

import (
	"go.uber.org/fx"

	"seoulplanner/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewWeatherController),
	fx.Provide(controllers.NewCurrencyController),
	fx.Provide(controllers.NewInsightController))
