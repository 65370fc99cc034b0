package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datewise/internal/models/request_models"
	"datewise/internal/models/response_models"
)

func sampleItineraryRequest() request_models.GenerateItineraryRequest {
	return request_models.GenerateItineraryRequest{
		Origin: request_models.ItineraryOrigin{
			PlaceID:          "origin-1",
			Name:             "Raffles Place",
			FormattedAddress: "Raffles Place, Singapore",
			Lat:              1.2840,
			Lng:              103.8514,
			Types:            []string{"transit_station"},
		},
		Date:        "2025-02-14",
		StartTime:   "19:30",
		DurationMin: 180,
		Budget:      "$$",
		DateStyle:   "SCENIC",
		Vibe:        "ROMANTIC",
		Food:        []string{"HALAL_FRIENDLY"},
		Avoid:       []string{"LOUD", "CROWDED"},
		Transport:   "TRANSIT",
	}
}

func TestItineraryService_Generate(t *testing.T) {
	got, err := NewItineraryService().Generate(context.Background(), sampleItineraryRequest())
	require.NoError(t, err)

	assert.Equal(t, "iti_stub_2025-02-14_1930", got.ItineraryID)
	require.Len(t, got.Stops, 3)
	require.Len(t, got.Legs, 2)

	start := got.Stops[0]
	assert.Equal(t, "Raffles Place Meetup", start.Name)
	assert.Equal(t, 1.2840, start.Lat)
	assert.Equal(t, 103.8514, start.Lng)
	assert.Equal(t, "Raffles Place, Singapore", start.Address)
	assert.Equal(t, []string{"START", "SINGAPORE", "ROMANTIC", "SCENIC"}, start.Tags)
	assert.Equal(t, "Start near Raffles Place with romantic scenic plans.", start.Reason)

	assert.Equal(t, "Marina Bay Sands SkyPark", got.Stops[1].Name)
	assert.Equal(t, []string{"ROMANTIC", "SCENIC", "BUDGET_$$", "TRANSIT"}, got.Stops[1].Tags)

	assert.Equal(t, "Gardens by the Bay", got.Stops[2].Name)
	assert.Equal(t, []string{"SCENIC", "FOOD_HALAL_FRIENDLY", "AVOID_LOUD", "AVOID_CROWDED"}, got.Stops[2].Tags)

	assert.Equal(t, response_models.ItineraryLeg{From: 0, To: 1, Mode: response_models.LegModeTransit, DurationMin: 20, DistanceM: 6500}, got.Legs[0])
	assert.Equal(t, response_models.ItineraryLeg{From: 1, To: 2, Mode: response_models.LegModeWalk, DurationMin: 12, DistanceM: 900}, got.Legs[1])

	assert.Equal(t, 180, got.Totals.DurationMin)
	assert.Equal(t, 900, got.Totals.WalkingDistanceM)
	assert.False(t, got.Meta.UsedCache)
	assert.Equal(t, []string{StubItineraryWarning}, got.Meta.Warnings)
}

func TestItineraryService_OptionalPreferences(t *testing.T) {
	req := sampleItineraryRequest()
	req.Food = nil
	req.Avoid = nil
	req.Transport = ""

	got, err := NewItineraryService().Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"ROMANTIC", "SCENIC", "BUDGET_$$"}, got.Stops[1].Tags)
	assert.Equal(t, []string{"SCENIC"}, got.Stops[2].Tags)
}
