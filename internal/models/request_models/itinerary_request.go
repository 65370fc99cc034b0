package request_models

type ItineraryOrigin struct {
	PlaceID          string   `json:"placeId" binding:"required"`
	Name             string   `json:"name" binding:"required"`
	FormattedAddress string   `json:"formattedAddress" binding:"required"`
	Lat              float64  `json:"lat" binding:"gte=-90,lte=90"`
	Lng              float64  `json:"lng" binding:"gte=-180,lte=180"`
	Types            []string `json:"types" binding:"dive,required"`
}

type GenerateItineraryRequest struct {
	Origin      ItineraryOrigin `json:"origin" binding:"required"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime   string          `json:"startTime" binding:"required,datetime=15:04"`
	DurationMin int             `json:"durationMin" binding:"required,min=30,max=1440"`
	Budget      string          `json:"budget" binding:"required,oneof=$ $$ $$$"`
	DateStyle   string          `json:"dateStyle" binding:"required,oneof=FOOD ACTIVITY EVENT SCENIC SURPRISE"`
	Vibe        string          `json:"vibe" binding:"required,oneof=CHILL ACTIVE ROMANTIC ADVENTUROUS"`
	Food        []string        `json:"food" binding:"omitempty,dive,oneof=VEG HALAL_FRIENDLY NO_ALCOHOL NO_SEAFOOD"`
	Avoid       []string        `json:"avoid" binding:"omitempty,dive,oneof=OUTDOOR PHYSICAL CROWDED LOUD"`
	Transport   string          `json:"transport" binding:"omitempty,oneof=MIN_WALK TRANSIT DRIVE_OK WALK_OK"`
}
