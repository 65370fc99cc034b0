package services

import (
	"datewise/internal/models/provider_models"
	"datewise/internal/models/response_models"
	"datewise/pkg/utils"
)

const (
	googleAutocompleteInvalid = "Invalid autocomplete response from Google Places."
	googleDetailsInvalid      = "Invalid place details response from Google Places."
	googleNearbyInvalid       = "Invalid nearby places response from Google Places."

	unknownPlaceName = "Unknown place"
)

var googlePriceLevels = map[string]int{
	"PRICE_LEVEL_FREE":           0,
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

// NearbyStats counts what a nearby normalizer kept and dropped.
type NearbyStats struct {
	Received          int
	DroppedNoLocation int
	DroppedRegion     int
}

// GooglePriceLevel maps a Places price enum onto 0..4. Unknown or absent
// values return nil, never 0.
func GooglePriceLevel(level string) *int {
	v, ok := googlePriceLevels[level]
	if !ok {
		return nil
	}
	return &v
}

func googleText(t *provider_models.GoogleText) string {
	if t == nil {
		return ""
	}
	return t.Text
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func NormalizeGoogleAutocomplete(raw []byte) (response_models.PlacesAutocompleteResponse, error) {
	parsed, err := ValidateGoogleAutocomplete(raw)
	if err != nil {
		return response_models.PlacesAutocompleteResponse{}, err
	}

	suggestions := make([]response_models.PlaceSuggestion, 0, len(parsed.Suggestions))
	for _, s := range parsed.Suggestions {
		p := s.PlacePrediction
		if p == nil {
			continue
		}

		var main, secondary string
		if p.StructuredFormat != nil {
			main = googleText(p.StructuredFormat.MainText)
			secondary = googleText(p.StructuredFormat.SecondaryText)
		}

		primary := firstNonEmpty(main, googleText(p.Text), secondary)
		if primary == "" {
			continue
		}

		suggestions = append(suggestions, response_models.PlaceSuggestion{
			PlaceID:       p.PlaceID,
			PrimaryText:   primary,
			SecondaryText: secondary,
		})
	}

	return checkInternal(response_models.PlacesAutocompleteResponse{Suggestions: suggestions}, googleAutocompleteInvalid)
}

func NormalizeGoogleDetails(raw []byte) (response_models.PlaceDetailsResponse, error) {
	parsed, err := ValidateGoogleDetails(raw)
	if err != nil {
		return response_models.PlaceDetailsResponse{}, err
	}

	if !IsSingaporeGoogleAddress(parsed.AddressComponents) {
		return response_models.PlaceDetailsResponse{}, utils.NewRegionRejected("Google place details result is outside Singapore.")
	}

	if parsed.Location == nil {
		return response_models.PlaceDetailsResponse{}, utils.NewInvalidExternalResponse("Google place details missing location.", nil, nil)
	}

	return checkInternal(response_models.PlaceDetailsResponse{
		PlaceID:          parsed.ID,
		Name:             firstNonEmpty(googleText(parsed.DisplayName), parsed.FormattedAddress),
		FormattedAddress: parsed.FormattedAddress,
		Lat:              *parsed.Location.Latitude,
		Lng:              *parsed.Location.Longitude,
		Types:            nonEmpty(parsed.Types),
	}, googleDetailsInvalid)
}

// NormalizeGoogleNearby maps a searchNearby body to candidates. Records
// without a usable location or outside Singapore are dropped; the order of
// the rest is kept.
func NormalizeGoogleNearby(raw []byte, tagger TagServiceInterface) ([]response_models.Candidate, NearbyStats, error) {
	parsed, err := ValidateGoogleNearby(raw)
	if err != nil {
		return nil, NearbyStats{}, err
	}

	stats := NearbyStats{Received: len(parsed.Places)}
	candidates := make([]response_models.Candidate, 0, len(parsed.Places))

	for _, place := range parsed.Places {
		if place.Location == nil || utils.ValidateStruct(place.Location) != nil {
			stats.DroppedNoLocation++
			continue
		}
		if !IsSingaporeGoogleAddress(place.AddressComponents) {
			stats.DroppedRegion++
			continue
		}

		types := nonEmpty(place.Types)
		priceLevel := GooglePriceLevel(place.PriceLevel)

		snippets := make([]string, 0, len(place.Reviews))
		for _, r := range place.Reviews {
			if text := googleText(r.Text); text != "" {
				snippets = append(snippets, text)
			}
		}

		tags, err := tagger.InferTags(TaggingInput{Types: types, PriceLevel: priceLevel, Snippets: snippets})
		if err != nil {
			return nil, stats, err
		}

		candidate, err := checkInternal(response_models.Candidate{
			Kind:        response_models.CandidateKindPlace,
			ExternalID:  place.ID,
			Name:        firstNonEmpty(googleText(place.DisplayName), place.FormattedAddress, unknownPlaceName),
			Lat:         *place.Location.Latitude,
			Lng:         *place.Location.Longitude,
			Address:     place.FormattedAddress,
			Rating:      sanitizeRating(place.Rating),
			ReviewCount: sanitizeCount(place.UserRatingCount),
			PriceLevel:  priceLevel,
			Types:       types,
			Tags:        tags,
		}, googleNearbyInvalid)
		if err != nil {
			return nil, stats, err
		}
		candidates = append(candidates, candidate)
	}

	return candidates, stats, nil
}

func sanitizeRating(r *float64) *float64 {
	if r == nil || *r < 0 || *r > 5 {
		return nil
	}
	return r
}

func sanitizeCount(n *int) *int {
	if n == nil || *n < 0 {
		return nil
	}
	return n
}
