package services

import (
	"context"
	"fmt"
	"strings"

	"datewise/internal/models/request_models"
	"datewise/internal/models/response_models"
)

const StubItineraryWarning = "Stub itinerary only. Real generation is not enabled in this environment."

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (response_models.GenerateItineraryResponse, error)
}

// ItineraryService returns a fixed three-stop plan shaped by the request.
type ItineraryService struct{}

func NewItineraryService() ItineraryServiceInterface {
	return &ItineraryService{}
}

func (s *ItineraryService) Generate(_ context.Context, req request_models.GenerateItineraryRequest) (response_models.GenerateItineraryResponse, error) {
	itineraryID := fmt.Sprintf("iti_stub_%s_%s", req.Date, strings.Replace(req.StartTime, ":", "", 1))

	startTags := []string{"START", "SINGAPORE", req.Vibe, req.DateStyle}

	skyTags := []string{req.Vibe, req.DateStyle, "BUDGET_" + req.Budget}
	if req.Transport != "" {
		skyTags = append(skyTags, req.Transport)
	}

	gardenTags := []string{"SCENIC"}
	for _, f := range req.Food {
		gardenTags = append(gardenTags, "FOOD_"+f)
	}
	for _, a := range req.Avoid {
		gardenTags = append(gardenTags, "AVOID_"+a)
	}

	stops := []response_models.ItineraryStop{
		{
			Kind:        response_models.CandidateKindPlace,
			Name:        req.Origin.Name + " Meetup",
			Lat:         req.Origin.Lat,
			Lng:         req.Origin.Lng,
			Address:     req.Origin.FormattedAddress,
			URL:         "https://www.visitsingapore.com/",
			Rating:      4.5,
			ReviewCount: 800,
			PriceLevel:  1,
			Tags:        startTags,
			Reason: fmt.Sprintf("Start near %s with %s %s plans.",
				req.Origin.Name, strings.ToLower(req.Vibe), strings.ToLower(req.DateStyle)),
		},
		{
			Kind:        response_models.CandidateKindPlace,
			Name:        "Marina Bay Sands SkyPark",
			Lat:         1.2834,
			Lng:         103.8607,
			Address:     "10 Bayfront Ave, Singapore 018956",
			URL:         "https://www.marinabaysands.com/",
			Rating:      4.7,
			ReviewCount: 12000,
			PriceLevel:  3,
			Tags:        skyTags,
			Reason:      "Iconic skyline views for a date-night moment.",
		},
		{
			Kind:        response_models.CandidateKindPlace,
			Name:        "Gardens by the Bay",
			Lat:         1.2816,
			Lng:         103.8636,
			Address:     "18 Marina Gardens Dr, Singapore 018953",
			URL:         "https://www.gardensbythebay.com.sg/",
			Rating:      4.8,
			ReviewCount: 9800,
			PriceLevel:  2,
			Tags:        gardenTags,
			Reason:      "Scenic walk that reflects your selected food and avoid preferences.",
		},
	}

	legs := []response_models.ItineraryLeg{
		{From: 0, To: 1, Mode: response_models.LegModeTransit, DurationMin: 20, DistanceM: 6500},
		{From: 1, To: 2, Mode: response_models.LegModeWalk, DurationMin: 12, DistanceM: 900},
	}

	walking := 0
	for _, leg := range legs {
		if leg.Mode == response_models.LegModeWalk {
			walking += leg.DistanceM
		}
	}

	return checkInternal(response_models.GenerateItineraryResponse{
		ItineraryID: itineraryID,
		Stops:       stops,
		Legs:        legs,
		Totals: response_models.ItineraryTotals{
			DurationMin:      req.DurationMin,
			WalkingDistanceM: walking,
		},
		Meta: response_models.ItineraryMeta{
			UsedCache: false,
			Warnings:  []string{StubItineraryWarning},
		},
	}, "Generated itinerary failed validation.")
}
