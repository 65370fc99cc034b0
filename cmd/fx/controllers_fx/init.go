package controllers_fx

import (
	"go.uber.org/fx"

	"datewise/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewItinerariesController),
	fx.Provide(controllers.NewTagController))
