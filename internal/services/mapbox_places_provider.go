package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"datewise/internal/models/provider_models"
	"datewise/internal/models/response_models"
	"datewise/pkg/httpclient"
	"datewise/pkg/utils"
)

const (
	DefaultMapboxBaseURL = "https://api.mapbox.com"

	mapboxAutocompleteLimit = 10
	mapboxCategoryLimit     = 10
)

type MapboxConfig struct {
	AccessToken string
	BaseURL     string
}

// MapboxPlacesProvider uses the Geocoding v6 and Search Box v1 APIs.
type MapboxPlacesProvider struct {
	cfg      MapboxConfig
	http     httpclient.Fetcher
	tagger   TagServiceInterface
	logger   *zap.Logger
	newToken func() string
}

func NewMapboxPlacesProvider(cfg MapboxConfig, fetcher httpclient.Fetcher, tagger TagServiceInterface, logger *zap.Logger) *MapboxPlacesProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultMapboxBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &MapboxPlacesProvider{
		cfg:      cfg,
		http:     fetcher,
		tagger:   tagger,
		logger:   logger.Named("mapbox_places"),
		newToken: func() string { return uuid.New().String() },
	}
}

func (m *MapboxPlacesProvider) Name() string { return ProviderMapbox }

func (m *MapboxPlacesProvider) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	if m.cfg.AccessToken == "" {
		return nil, utils.NewMissingConfiguration("MAPBOX_ACCESS_TOKEN")
	}
	q.Set("access_token", m.cfg.AccessToken)

	u := m.cfg.BaseURL + path + "?" + q.Encode()
	return m.http.FetchJSON(ctx, httpclient.Request{Method: http.MethodGet, URL: u})
}

func (m *MapboxPlacesProvider) Search(ctx context.Context, query string) (response_models.PlacesAutocompleteResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("country", "sg")
	q.Set("language", "en")
	q.Set("limit", fmt.Sprint(mapboxAutocompleteLimit))
	q.Set("proximity", fmt.Sprintf("%g,%g", singaporeCenterLng, singaporeCenterLat))

	raw, err := m.get(ctx, "/search/geocode/v6/forward", q)
	if err != nil {
		return response_models.PlacesAutocompleteResponse{}, err
	}
	return NormalizeMapboxAutocomplete(raw)
}

func (m *MapboxPlacesProvider) FetchDetails(ctx context.Context, placeID string) (response_models.PlaceDetailsResponse, error) {
	q := url.Values{}
	q.Set("session_token", m.newToken())
	q.Set("language", "en")

	raw, err := m.get(ctx, "/search/searchbox/v1/retrieve/"+url.PathEscape(placeID), q)
	if err != nil {
		return response_models.PlaceDetailsResponse{}, err
	}
	return NormalizeMapboxDetails(raw)
}

// FetchNearby queries one category endpoint per nearby category in parallel.
// Results are concatenated in category order; a feature already seen under
// an earlier category is skipped.
func (m *MapboxPlacesProvider) FetchNearby(ctx context.Context, origin response_models.PlaceDetailsResponse) ([]response_models.Candidate, error) {
	results := make([]*provider_models.MapboxFeatureCollection, len(nearbyCategories))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range nearbyCategories {
		g.Go(func() error {
			q := url.Values{}
			q.Set("proximity", fmt.Sprintf("%g,%g", origin.Lng, origin.Lat))
			q.Set("country", "sg")
			q.Set("language", "en")
			q.Set("limit", fmt.Sprint(mapboxCategoryLimit))

			raw, err := m.get(gctx, "/search/searchbox/v1/category/"+url.PathEscape(category), q)
			if err != nil {
				return err
			}
			parsed, err := ValidateMapboxFeatures(raw, mapboxNearbyInvalid)
			if err != nil {
				return err
			}
			results[i] = parsed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var features []provider_models.MapboxFeature
	for _, fc := range results {
		for _, f := range fc.Features {
			if _, dup := seen[f.Properties.MapboxID]; dup {
				continue
			}
			seen[f.Properties.MapboxID] = struct{}{}
			features = append(features, f)
		}
	}

	candidates, stats, err := mapboxCandidates(features, m.tagger)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("nearby search normalized",
		zap.String("origin_place_id", origin.PlaceID),
		zap.Int("received", stats.Received),
		zap.Int("kept", len(candidates)),
		zap.Int("dropped_no_location", stats.DroppedNoLocation),
		zap.Int("dropped_region", stats.DroppedRegion),
	)
	return candidates, nil
}
