package services

import (
	"context"

	"datewise/internal/models/response_models"
)

// PlaceProvider is one place-search backend. Every method returns data that
// has already been validated, filtered to Singapore and normalized.
type PlaceProvider interface {
	Name() string
	Search(ctx context.Context, query string) (response_models.PlacesAutocompleteResponse, error)
	FetchDetails(ctx context.Context, placeID string) (response_models.PlaceDetailsResponse, error)
	FetchNearby(ctx context.Context, origin response_models.PlaceDetailsResponse) ([]response_models.Candidate, error)
}

const (
	ProviderGoogle = "google"
	ProviderMapbox = "mapbox"
)

// Shared search parameters.
const (
	singaporeCenterLat = 1.3521
	singaporeCenterLng = 103.8198

	autocompleteBiasRadiusM = 50_000
	nearbyRadiusM           = 7_000
	nearbyMaxResults        = 20
)

var nearbyCategories = []string{"restaurant", "tourist_attraction", "cafe", "museum", "park", "shopping_mall"}
