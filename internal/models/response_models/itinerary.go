package response_models

type ItineraryStop struct {
	Kind        CandidateKind `json:"kind" validate:"required,oneof=PLACE EVENT"`
	Name        string        `json:"name" validate:"required"`
	Lat         float64       `json:"lat" validate:"gte=-90,lte=90"`
	Lng         float64       `json:"lng" validate:"gte=-180,lte=180"`
	Address     string        `json:"address" validate:"required"`
	URL         string        `json:"url" validate:"required,url"`
	Rating      float64       `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int           `json:"reviewCount" validate:"gte=0"`
	PriceLevel  int           `json:"priceLevel" validate:"gte=0,lte=4"`
	Tags        []string      `json:"tags" validate:"dive,required"`
	Reason      string        `json:"reason" validate:"required"`
}

type LegMode string

const (
	LegModeWalk    LegMode = "WALK"
	LegModeTransit LegMode = "TRANSIT"
	LegModeDrive   LegMode = "DRIVE"
)

type ItineraryLeg struct {
	From        int     `json:"from" validate:"gte=0"`
	To          int     `json:"to" validate:"gte=0"`
	Mode        LegMode `json:"mode" validate:"required,oneof=WALK TRANSIT DRIVE"`
	DurationMin int     `json:"durationMin" validate:"gte=1"`
	DistanceM   int     `json:"distanceM" validate:"gte=1"`
}

type ItineraryTotals struct {
	DurationMin      int `json:"durationMin" validate:"gte=1"`
	WalkingDistanceM int `json:"walkingDistanceM" validate:"gte=0"`
}

type ItineraryMeta struct {
	UsedCache bool     `json:"usedCache"`
	Warnings  []string `json:"warnings"`
}

type GenerateItineraryResponse struct {
	ItineraryID string          `json:"itineraryId" validate:"required"`
	Stops       []ItineraryStop `json:"stops" validate:"dive"`
	Legs        []ItineraryLeg  `json:"legs" validate:"dive"`
	Totals      ItineraryTotals `json:"totals"`
	Meta        ItineraryMeta   `json:"meta"`
}
