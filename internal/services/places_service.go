package services

import (
	"context"
	"fmt"

	"datewise/internal/models/response_models"
)

type PlacesServiceInterface interface {
	Autocomplete(ctx context.Context, query string) (response_models.PlacesAutocompleteResponse, error)
	Details(ctx context.Context, placeID string) (response_models.PlaceDetailsResponse, error)
	CandidatesNearOrigin(ctx context.Context, originPlaceID string) (response_models.DebugPlaceCandidatesResponse, error)
}

type PlacesService struct {
	provider PlaceProvider
}

func NewPlacesService(provider PlaceProvider) PlacesServiceInterface {
	return &PlacesService{provider: provider}
}

func (s *PlacesService) Autocomplete(ctx context.Context, query string) (response_models.PlacesAutocompleteResponse, error) {
	return s.provider.Search(ctx, query)
}

func (s *PlacesService) Details(ctx context.Context, placeID string) (response_models.PlaceDetailsResponse, error) {
	return s.provider.FetchDetails(ctx, placeID)
}

// CandidatesNearOrigin resolves the origin first and searches around its
// coordinates.
func (s *PlacesService) CandidatesNearOrigin(ctx context.Context, originPlaceID string) (response_models.DebugPlaceCandidatesResponse, error) {
	origin, err := s.provider.FetchDetails(ctx, originPlaceID)
	if err != nil {
		return response_models.DebugPlaceCandidatesResponse{}, fmt.Errorf("resolve origin %q: %w", originPlaceID, err)
	}

	candidates, err := s.provider.FetchNearby(ctx, origin)
	if err != nil {
		return response_models.DebugPlaceCandidatesResponse{}, err
	}
	if candidates == nil {
		candidates = []response_models.Candidate{}
	}

	return checkInternal(response_models.DebugPlaceCandidatesResponse{
		OriginPlaceID: originPlaceID,
		Candidates:    candidates,
	}, "Invalid place candidates response.")
}
