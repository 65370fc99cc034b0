package services

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datewise/internal/models/response_models"
	"datewise/pkg/utils"
)

func TestNormalizeGoogleAutocomplete(t *testing.T) {
	raw := []byte(`{
		"suggestions": [
			{"placePrediction": {
				"placeId": "p1",
				"text": {"text": "Marina Bay Sands, Bayfront Avenue, Singapore"},
				"structuredFormat": {
					"mainText": {"text": "Marina Bay Sands"},
					"secondaryText": {"text": "Bayfront Avenue, Singapore"}
				}
			}},
			{"placePrediction": {"placeId": "p2", "text": {"text": "Jewel Changi Airport"}}},
			{"placePrediction": {"placeId": "p3", "structuredFormat": {"secondaryText": {"text": "Orchard Road"}}}},
			{"placePrediction": {"placeId": "p4"}},
			{"queryPrediction": {"text": {"text": "marina"}}}
		]
	}`)

	got, err := NormalizeGoogleAutocomplete(raw)
	require.NoError(t, err)

	want := response_models.PlacesAutocompleteResponse{Suggestions: []response_models.PlaceSuggestion{
		{PlaceID: "p1", PrimaryText: "Marina Bay Sands", SecondaryText: "Bayfront Avenue, Singapore"},
		{PlaceID: "p2", PrimaryText: "Jewel Changi Airport", SecondaryText: ""},
		{PlaceID: "p3", PrimaryText: "Orchard Road", SecondaryText: "Orchard Road"},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeGoogleAutocomplete() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeGoogleAutocomplete_GenericTextOnly(t *testing.T) {
	got, err := NormalizeGoogleAutocomplete([]byte(`{"suggestions":[{"placePrediction":{"placeId":"abc","text":{"text":"Clarke Quay"}}}]}`))
	require.NoError(t, err)
	require.Len(t, got.Suggestions, 1)
	assert.Equal(t, "Clarke Quay", got.Suggestions[0].PrimaryText)
	assert.Equal(t, "", got.Suggestions[0].SecondaryText)
}

func TestNormalizeGoogleAutocomplete_MissingSuggestionsIsEmpty(t *testing.T) {
	got, err := NormalizeGoogleAutocomplete([]byte(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, got.Suggestions)
	assert.Empty(t, got.Suggestions)
}

func TestNormalizeGoogleAutocomplete_Invalid(t *testing.T) {
	for name, raw := range map[string]string{
		"missing place id":  `{"suggestions":[{"placePrediction":{"text":{"text":"x"}}}]}`,
		"suggestions typed": `{"suggestions":"nope"}`,
		"not an object":     `[]`,
		"not json":          `<html>`,
		"null":              `null`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NormalizeGoogleAutocomplete([]byte(raw))
			require.Error(t, err)
			assert.True(t, errors.Is(err, utils.ErrInvalidExternalResponse))

			var extErr *utils.ExternalError
			require.True(t, errors.As(err, &extErr))
			assert.NotNil(t, extErr.Details)
			assert.Equal(t, "INVALID_EXTERNAL_RESPONSE", extErr.Code())
		})
	}
}

const googleDetailsSG = `{
	"id": "ChIJ-sg",
	"displayName": {"text": "Gardens by the Bay"},
	"formattedAddress": "18 Marina Gardens Dr, Singapore 018953",
	"location": {"latitude": 1.2816, "longitude": 103.8636},
	"types": ["park", "", "tourist_attraction"],
	"addressComponents": [
		{"shortText": "18", "types": ["street_number"]},
		{"shortText": "SG", "types": ["country", "political"]}
	]
}`

func TestNormalizeGoogleDetails(t *testing.T) {
	got, err := NormalizeGoogleDetails([]byte(googleDetailsSG))
	require.NoError(t, err)

	want := response_models.PlaceDetailsResponse{
		PlaceID:          "ChIJ-sg",
		Name:             "Gardens by the Bay",
		FormattedAddress: "18 Marina Gardens Dr, Singapore 018953",
		Lat:              1.2816,
		Lng:              103.8636,
		Types:            []string{"park", "tourist_attraction"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeGoogleDetails() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeGoogleDetails_NameFallsBackToAddress(t *testing.T) {
	got, err := NormalizeGoogleDetails([]byte(`{
		"id": "x",
		"formattedAddress": "1 Fullerton Rd",
		"location": {"latitude": 1.28, "longitude": 103.85},
		"addressComponents": [{"shortText": "sg", "types": ["country"]}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "1 Fullerton Rd", got.Name)
	assert.Empty(t, got.Types)
}

func TestNormalizeGoogleDetails_RegionRejected(t *testing.T) {
	_, err := NormalizeGoogleDetails([]byte(`{
		"id": "nyc",
		"displayName": {"text": "Central Park"},
		"formattedAddress": "New York, NY, USA",
		"location": {"latitude": 40.78, "longitude": -73.96},
		"addressComponents": [{"shortText": "US", "types": ["country", "political"]}]
	}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrRegionRejected))
	assert.False(t, errors.Is(err, utils.ErrInvalidExternalResponse))
}

func TestNormalizeGoogleDetails_NoCountryFailsClosed(t *testing.T) {
	_, err := NormalizeGoogleDetails([]byte(`{"id":"x","formattedAddress":"a","location":{"latitude":1.3,"longitude":103.8}}`))
	assert.True(t, errors.Is(err, utils.ErrRegionRejected))
}

func TestNormalizeGoogleDetails_Invalid(t *testing.T) {
	for name, raw := range map[string]string{
		"missing id":         `{"formattedAddress":"a","addressComponents":[{"shortText":"SG","types":["country"]}]}`,
		"missing location":   `{"id":"x","formattedAddress":"a","addressComponents":[{"shortText":"SG","types":["country"]}]}`,
		"partial location":   `{"id":"x","formattedAddress":"a","location":{"latitude":1.3},"addressComponents":[{"shortText":"SG","types":["country"]}]}`,
		"no name or address": `{"id":"x","location":{"latitude":1.3,"longitude":103.8},"addressComponents":[{"shortText":"SG","types":["country"]}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NormalizeGoogleDetails([]byte(raw))
			assert.True(t, errors.Is(err, utils.ErrInvalidExternalResponse), "got %v", err)
		})
	}
}

func TestNormalizeGoogleNearby(t *testing.T) {
	raw := []byte(`{
		"places": [
			{
				"id": "sg-bakery",
				"displayName": {"text": "Tiong Bahru Bakery"},
				"formattedAddress": "56 Eng Hoon St, Singapore",
				"location": {"latitude": 1.2847, "longitude": 103.8317},
				"rating": 4.4,
				"userRatingCount": 2100,
				"types": ["bakery", "cafe"],
				"reviews": [{"text": {"text": "great date night atmosphere"}}, {}],
				"addressComponents": [{"shortText": "SG", "types": ["country"]}]
			},
			{
				"id": "my-mall",
				"displayName": {"text": "Johor Mall"},
				"location": {"latitude": 1.46, "longitude": 103.76},
				"addressComponents": [{"shortText": "MY", "types": ["country"]}]
			},
			{
				"id": "no-geometry",
				"displayName": {"text": "Somewhere"},
				"addressComponents": [{"shortText": "SG", "types": ["country"]}]
			},
			{
				"id": "no-country",
				"location": {"latitude": 1.3, "longitude": 103.8}
			},
			{
				"id": "sg-museum",
				"formattedAddress": "93 Stamford Rd",
				"location": {"latitude": 1.2966, "longitude": 103.8485},
				"priceLevel": "PRICE_LEVEL_EXPENSIVE",
				"rating": 7.5,
				"userRatingCount": -3,
				"types": ["museum"],
				"addressComponents": [{"shortText": "sg", "types": ["country"]}]
			}
		]
	}`)

	got, stats, err := NormalizeGoogleNearby(raw, NewTagService())
	require.NoError(t, err)

	want := []response_models.Candidate{
		{
			Kind:        response_models.CandidateKindPlace,
			ExternalID:  "sg-bakery",
			Name:        "Tiong Bahru Bakery",
			Lat:         1.2847,
			Lng:         103.8317,
			Address:     "56 Eng Hoon St, Singapore",
			Rating:      floatPtr(4.4),
			ReviewCount: intPtr(2100),
			Types:       []string{"bakery", "cafe"},
			Tags:        []response_models.Tag{"COZY", "DATE_NIGHT", "ROMANTIC"},
		},
		{
			Kind:       response_models.CandidateKindPlace,
			ExternalID: "sg-museum",
			Name:       "93 Stamford Rd",
			Lat:        1.2966,
			Lng:        103.8485,
			Address:    "93 Stamford Rd",
			PriceLevel: intPtr(3),
			Types:      []string{"museum"},
			Tags:       []response_models.Tag{"ARTSY", "PREMIUM"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeGoogleNearby() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, NearbyStats{Received: 5, DroppedNoLocation: 1, DroppedRegion: 2}, stats)
}

func TestNormalizeGoogleNearby_BakeryWithoutPrice(t *testing.T) {
	got, _, err := NormalizeGoogleNearby([]byte(`{"places":[{
		"id": "b",
		"displayName": {"text": "Bakery"},
		"location": {"latitude": 1.3, "longitude": 103.8},
		"types": ["bakery"],
		"reviews": [{"text": {"text": "great date night atmosphere"}}],
		"addressComponents": [{"shortText": "SG", "types": ["country"]}]
	}]}`), NewTagService())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].PriceLevel)
	assert.Subset(t, got[0].Tags, []response_models.Tag{"COZY", "DATE_NIGHT", "ROMANTIC"})
}

func TestNormalizeGoogleNearby_UnknownNameAndMissingPlaces(t *testing.T) {
	got, _, err := NormalizeGoogleNearby([]byte(`{"places":[{
		"id": "anon",
		"location": {"latitude": 1.3, "longitude": 103.8},
		"addressComponents": [{"shortText": "SG", "types": ["country"]}]
	}]}`), NewTagService())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Unknown place", got[0].Name)

	empty, stats, err := NormalizeGoogleNearby([]byte(`{}`), NewTagService())
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Zero(t, stats.Received)
}

func TestNormalizeGoogleNearby_MissingIDAbortsBatch(t *testing.T) {
	_, _, err := NormalizeGoogleNearby([]byte(`{"places":[
		{"id": "ok", "location": {"latitude": 1.3, "longitude": 103.8}, "addressComponents": [{"shortText": "SG", "types": ["country"]}]},
		{"displayName": {"text": "no id"}}
	]}`), NewTagService())
	assert.True(t, errors.Is(err, utils.ErrInvalidExternalResponse))
}

func TestGooglePriceLevel(t *testing.T) {
	for enum, want := range googlePriceLevels {
		got := GooglePriceLevel(enum)
		require.NotNil(t, got, enum)
		assert.Equal(t, want, *got)
		assert.GreaterOrEqual(t, *got, 0)
		assert.LessOrEqual(t, *got, 4)
	}
	assert.Nil(t, GooglePriceLevel(""))
	assert.Nil(t, GooglePriceLevel("PRICE_LEVEL_UNSPECIFIED"))
}
