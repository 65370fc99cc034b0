package places_fx

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"datewise/internal/infra"
	"datewise/internal/services"
	"datewise/pkg/httpclient"
	mem "datewise/pkg/memcache"
)

var Module = fx.Provide(provideProvider, services.NewPlacesService)

type providerParams struct {
	fx.In

	Config  *infra.Config
	Fetcher httpclient.Fetcher
	Tagger  services.TagServiceInterface
	Store   mem.Store
	Logger  *zap.Logger
}

// provideProvider selects the configured backend and puts the response cache
// in front of it.
func provideProvider(p providerParams) (services.PlaceProvider, error) {
	next, err := NewProvider(p.Config, p.Fetcher, p.Tagger, p.Logger)
	if err != nil {
		return nil, err
	}

	ttls := services.CacheTTLs{
		Autocomplete: p.Config.Cache.AutocompleteTTL,
		Details:      p.Config.Cache.DetailsTTL,
		Candidates:   p.Config.Cache.CandidatesTTL,
	}
	p.Logger.Info("places provider ready", zap.String("provider", next.Name()))
	return services.NewCachingPlaceProvider(next, p.Store, ttls, p.Logger), nil
}

// NewProvider builds the uncached provider named by places.provider.
func NewProvider(cfg *infra.Config, fetcher httpclient.Fetcher, tagger services.TagServiceInterface, logger *zap.Logger) (services.PlaceProvider, error) {
	switch cfg.Places.Provider {
	case services.ProviderGoogle:
		return services.NewGooglePlacesProvider(services.GooglePlacesConfig{
			APIKey:  cfg.Google.MapsAPIKey,
			BaseURL: cfg.Google.BaseURL,
		}, fetcher, tagger, logger), nil
	case services.ProviderMapbox:
		return services.NewMapboxPlacesProvider(services.MapboxConfig{
			AccessToken: cfg.Mapbox.AccessToken,
			BaseURL:     cfg.Mapbox.BaseURL,
		}, fetcher, tagger, logger), nil
	default:
		return nil, fmt.Errorf("unknown places provider %q", cfg.Places.Provider)
	}
}
