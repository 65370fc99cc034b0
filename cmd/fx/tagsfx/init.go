package tagsfx

import (
	"go.uber.org/fx"

	"datewise/internal/services"
)

var Module = fx.Provide(services.NewTagService)
