package services

import (
	"datewise/internal/models/provider_models"
	"datewise/internal/models/response_models"
	"datewise/pkg/utils"
)

const (
	mapboxAutocompleteInvalid = "Invalid autocomplete response from Mapbox."
	mapboxDetailsInvalid      = "Invalid place details response from Mapbox."
	mapboxNearbyInvalid       = "Invalid nearby places response from Mapbox."
)

// mapboxPosition returns the feature's latitude and longitude. GeoJSON
// geometry is [longitude, latitude]; properties.coordinates is the fallback.
func mapboxPosition(f provider_models.MapboxFeature) (lat, lng float64, ok bool) {
	if f.Geometry != nil && len(f.Geometry.Coordinates) >= 2 {
		lng, lat = f.Geometry.Coordinates[0], f.Geometry.Coordinates[1]
		if validLatLng(lat, lng) {
			return lat, lng, true
		}
	}
	if c := f.Properties.Coordinates; c != nil && c.Latitude != nil && c.Longitude != nil {
		lat, lng = *c.Latitude, *c.Longitude
		if validLatLng(lat, lng) {
			return lat, lng, true
		}
	}
	return 0, 0, false
}

func validLatLng(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func mapboxTypes(p provider_models.MapboxProperties) []string {
	if types := nonEmpty(p.PoiCategoryIDs); len(types) > 0 {
		return types
	}
	return nonEmpty([]string{p.FeatureType})
}

func NormalizeMapboxAutocomplete(raw []byte) (response_models.PlacesAutocompleteResponse, error) {
	parsed, err := ValidateMapboxFeatures(raw, mapboxAutocompleteInvalid)
	if err != nil {
		return response_models.PlacesAutocompleteResponse{}, err
	}

	suggestions := make([]response_models.PlaceSuggestion, 0, len(parsed.Features))
	for _, f := range parsed.Features {
		p := f.Properties
		if !IsSingaporeMapboxContext(p.Context) {
			continue
		}

		primary := firstNonEmpty(p.Name, p.FullAddress, p.PlaceFormatted)
		if primary == "" {
			continue
		}

		suggestions = append(suggestions, response_models.PlaceSuggestion{
			PlaceID:       p.MapboxID,
			PrimaryText:   primary,
			SecondaryText: p.PlaceFormatted,
		})
	}

	return checkInternal(response_models.PlacesAutocompleteResponse{Suggestions: suggestions}, mapboxAutocompleteInvalid)
}

func NormalizeMapboxDetails(raw []byte) (response_models.PlaceDetailsResponse, error) {
	parsed, err := ValidateMapboxFeatures(raw, mapboxDetailsInvalid)
	if err != nil {
		return response_models.PlaceDetailsResponse{}, err
	}
	if len(parsed.Features) == 0 {
		return response_models.PlaceDetailsResponse{}, utils.NewInvalidExternalResponse("Mapbox retrieve returned no features.", nil, nil)
	}

	f := parsed.Features[0]
	p := f.Properties

	if !IsSingaporeMapboxContext(p.Context) {
		return response_models.PlaceDetailsResponse{}, utils.NewRegionRejected("Mapbox place details result is outside Singapore.")
	}

	lat, lng, ok := mapboxPosition(f)
	if !ok {
		return response_models.PlaceDetailsResponse{}, utils.NewInvalidExternalResponse("Mapbox place details missing location.", nil, nil)
	}

	return checkInternal(response_models.PlaceDetailsResponse{
		PlaceID:          p.MapboxID,
		Name:             firstNonEmpty(p.Name, p.FullAddress),
		FormattedAddress: firstNonEmpty(p.FullAddress, p.PlaceFormatted),
		Lat:              lat,
		Lng:              lng,
		Types:            mapboxTypes(p),
	}, mapboxDetailsInvalid)
}

// NormalizeMapboxNearby maps category search features to candidates. Mapbox
// carries no price or reviews, so tags come from categories alone.
func NormalizeMapboxNearby(raw []byte, tagger TagServiceInterface) ([]response_models.Candidate, NearbyStats, error) {
	parsed, err := ValidateMapboxFeatures(raw, mapboxNearbyInvalid)
	if err != nil {
		return nil, NearbyStats{}, err
	}

	return mapboxCandidates(parsed.Features, tagger)
}

func mapboxCandidates(features []provider_models.MapboxFeature, tagger TagServiceInterface) ([]response_models.Candidate, NearbyStats, error) {
	stats := NearbyStats{Received: len(features)}
	candidates := make([]response_models.Candidate, 0, len(features))

	for _, f := range features {
		p := f.Properties

		lat, lng, ok := mapboxPosition(f)
		if !ok {
			stats.DroppedNoLocation++
			continue
		}
		if !IsSingaporeMapboxContext(p.Context) {
			stats.DroppedRegion++
			continue
		}

		types := mapboxTypes(p)
		tags, err := tagger.InferTags(TaggingInput{Types: types})
		if err != nil {
			return nil, stats, err
		}

		address := firstNonEmpty(p.FullAddress, p.PlaceFormatted)
		candidate, err := checkInternal(response_models.Candidate{
			Kind:       response_models.CandidateKindPlace,
			ExternalID: p.MapboxID,
			Name:       firstNonEmpty(p.Name, address, unknownPlaceName),
			Lat:        lat,
			Lng:        lng,
			Address:    address,
			Types:      types,
			Tags:       tags,
		}, mapboxNearbyInvalid)
		if err != nil {
			return nil, stats, err
		}
		candidates = append(candidates, candidate)
	}

	return candidates, stats, nil
}
