package itinerary_fx

import (
	"go.uber.org/fx"

	"datewise/internal/services"
)

var Module = fx.Provide(services.NewItineraryService)
