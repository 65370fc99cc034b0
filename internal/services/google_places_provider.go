package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"datewise/internal/models/response_models"
	"datewise/pkg/httpclient"
	"datewise/pkg/utils"
)

const (
	DefaultGoogleBaseURL = "https://places.googleapis.com/v1"

	googleAutocompleteFieldMask = "suggestions.placePrediction.placeId," +
		"suggestions.placePrediction.text.text," +
		"suggestions.placePrediction.structuredFormat.mainText.text," +
		"suggestions.placePrediction.structuredFormat.secondaryText.text"

	googleDetailsFieldMask = "id,displayName.text,formattedAddress,location,types," +
		"addressComponents.shortText,addressComponents.types"

	googleNearbyFieldMask = "places.id,places.displayName.text,places.formattedAddress,places.location," +
		"places.rating,places.userRatingCount,places.priceLevel,places.types,places.reviews.text.text," +
		"places.addressComponents.shortText,places.addressComponents.types"
)

type GooglePlacesConfig struct {
	APIKey  string
	BaseURL string
}

type googleLatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type googleCircle struct {
	Center googleLatLng `json:"center"`
	Radius float64      `json:"radius"`
}

type googleArea struct {
	Circle googleCircle `json:"circle"`
}

type googleAutocompleteRequest struct {
	Input               string     `json:"input"`
	IncludedRegionCodes []string   `json:"includedRegionCodes"`
	LanguageCode        string     `json:"languageCode"`
	LocationBias        googleArea `json:"locationBias"`
}

type googleNearbyRequest struct {
	IncludedTypes       []string   `json:"includedTypes"`
	MaxResultCount      int        `json:"maxResultCount"`
	RankPreference      string     `json:"rankPreference"`
	LanguageCode        string     `json:"languageCode"`
	LocationRestriction googleArea `json:"locationRestriction"`
}

// GooglePlacesProvider talks to the Places API (New).
type GooglePlacesProvider struct {
	cfg    GooglePlacesConfig
	http   httpclient.Fetcher
	tagger TagServiceInterface
	logger *zap.Logger
}

func NewGooglePlacesProvider(cfg GooglePlacesConfig, fetcher httpclient.Fetcher, tagger TagServiceInterface, logger *zap.Logger) *GooglePlacesProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGoogleBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &GooglePlacesProvider{
		cfg:    cfg,
		http:   fetcher,
		tagger: tagger,
		logger: logger.Named("google_places"),
	}
}

func (g *GooglePlacesProvider) Name() string { return ProviderGoogle }

// headers is evaluated on every call so that a missing key surfaces at first
// use rather than at startup.
func (g *GooglePlacesProvider) headers(fieldMask string) (http.Header, error) {
	if g.cfg.APIKey == "" {
		return nil, utils.NewMissingConfiguration("GOOGLE_MAPS_API_KEY")
	}
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("X-Goog-Api-Key", g.cfg.APIKey)
	h.Set("X-Goog-FieldMask", fieldMask)
	return h, nil
}

func (g *GooglePlacesProvider) post(ctx context.Context, path, fieldMask string, body any) (json.RawMessage, error) {
	header, err := g.headers(fieldMask)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", path, err)
	}
	return g.http.FetchJSON(ctx, httpclient.Request{
		Method: http.MethodPost,
		URL:    g.cfg.BaseURL + path,
		Header: header,
		Body:   payload,
	})
}

func (g *GooglePlacesProvider) Search(ctx context.Context, query string) (response_models.PlacesAutocompleteResponse, error) {
	raw, err := g.post(ctx, "/places:autocomplete", googleAutocompleteFieldMask, googleAutocompleteRequest{
		Input:               query,
		IncludedRegionCodes: []string{"sg"},
		LanguageCode:        "en",
		LocationBias: googleArea{Circle: googleCircle{
			Center: googleLatLng{Latitude: singaporeCenterLat, Longitude: singaporeCenterLng},
			Radius: autocompleteBiasRadiusM,
		}},
	})
	if err != nil {
		return response_models.PlacesAutocompleteResponse{}, err
	}
	return NormalizeGoogleAutocomplete(raw)
}

func (g *GooglePlacesProvider) FetchDetails(ctx context.Context, placeID string) (response_models.PlaceDetailsResponse, error) {
	header, err := g.headers(googleDetailsFieldMask)
	if err != nil {
		return response_models.PlaceDetailsResponse{}, err
	}

	raw, err := g.http.FetchJSON(ctx, httpclient.Request{
		Method: http.MethodGet,
		URL:    g.cfg.BaseURL + "/places/" + url.PathEscape(placeID) + "?languageCode=en",
		Header: header,
	})
	if err != nil {
		return response_models.PlaceDetailsResponse{}, err
	}
	return NormalizeGoogleDetails(raw)
}

func (g *GooglePlacesProvider) FetchNearby(ctx context.Context, origin response_models.PlaceDetailsResponse) ([]response_models.Candidate, error) {
	raw, err := g.post(ctx, "/places:searchNearby", googleNearbyFieldMask, googleNearbyRequest{
		IncludedTypes:  nearbyCategories,
		MaxResultCount: nearbyMaxResults,
		RankPreference: "POPULARITY",
		LanguageCode:   "en",
		LocationRestriction: googleArea{Circle: googleCircle{
			Center: googleLatLng{Latitude: origin.Lat, Longitude: origin.Lng},
			Radius: nearbyRadiusM,
		}},
	})
	if err != nil {
		return nil, err
	}

	candidates, stats, err := NormalizeGoogleNearby(raw, g.tagger)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("nearby search normalized",
		zap.String("origin_place_id", origin.PlaceID),
		zap.Int("received", stats.Received),
		zap.Int("kept", len(candidates)),
		zap.Int("dropped_no_location", stats.DroppedNoLocation),
		zap.Int("dropped_region", stats.DroppedRegion),
	)
	return candidates, nil
}
