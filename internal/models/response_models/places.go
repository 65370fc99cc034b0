package response_models

type PlaceSuggestion struct {
	PlaceID       string `json:"placeId" validate:"required"`
	PrimaryText   string `json:"primaryText" validate:"required"`
	SecondaryText string `json:"secondaryText"`
}

type PlacesAutocompleteResponse struct {
	Suggestions []PlaceSuggestion `json:"suggestions" validate:"dive"`
}

type PlaceDetailsResponse struct {
	PlaceID          string   `json:"placeId" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	FormattedAddress string   `json:"formattedAddress" validate:"required"`
	Lat              float64  `json:"lat" validate:"gte=-90,lte=90"`
	Lng              float64  `json:"lng" validate:"gte=-180,lte=180"`
	Types            []string `json:"types" validate:"dive,required"`
}

type CandidateKind string

const (
	CandidateKindPlace CandidateKind = "PLACE"
	CandidateKindEvent CandidateKind = "EVENT"
)

// Candidate is a venue found around an origin, decorated with inferred tags.
// Optional fields are pointers so that "unknown" stays distinguishable from zero.
type Candidate struct {
	Kind        CandidateKind `json:"kind" validate:"required,oneof=PLACE EVENT"`
	ExternalID  string        `json:"externalId" validate:"required"`
	Name        string        `json:"name" validate:"required"`
	Lat         float64       `json:"lat" validate:"gte=-90,lte=90"`
	Lng         float64       `json:"lng" validate:"gte=-180,lte=180"`
	Address     string        `json:"address,omitempty"`
	Rating      *float64      `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ReviewCount *int          `json:"reviewCount,omitempty" validate:"omitempty,gte=0"`
	PriceLevel  *int          `json:"priceLevel,omitempty" validate:"omitempty,gte=0,lte=4"`
	Types       []string      `json:"types,omitempty" validate:"omitempty,dive,required"`
	Tags        []Tag         `json:"tags,omitempty" validate:"omitempty,dive,placetag"`
}

type DebugPlaceCandidatesResponse struct {
	OriginPlaceID string      `json:"originPlaceId" validate:"required"`
	Candidates    []Candidate `json:"candidates" validate:"dive"`
}
