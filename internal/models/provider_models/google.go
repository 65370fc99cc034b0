// Package provider_models holds the raw response shapes of the place-search
// providers. Fields the normalizers can live without are pointers or slices so
// that an absent value decodes to nil instead of failing the payload.
package provider_models

type GoogleText struct {
	Text string `json:"text"`
}

type GoogleLatLng struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type GoogleAddressComponent struct {
	LongText  string   `json:"longText"`
	ShortText string   `json:"shortText"`
	Types     []string `json:"types"`
}

type GoogleStructuredFormat struct {
	MainText      *GoogleText `json:"mainText"`
	SecondaryText *GoogleText `json:"secondaryText"`
}

type GooglePlacePrediction struct {
	PlaceID          string                  `json:"placeId" validate:"required"`
	Text             *GoogleText             `json:"text"`
	StructuredFormat *GoogleStructuredFormat `json:"structuredFormat"`
}

type GoogleSuggestion struct {
	PlacePrediction *GooglePlacePrediction `json:"placePrediction" validate:"omitempty"`
}

// GoogleAutocompleteResponse is the body of POST places:autocomplete.
type GoogleAutocompleteResponse struct {
	Suggestions []GoogleSuggestion `json:"suggestions" validate:"dive"`
}

// GooglePlaceDetails is the body of GET places/{id}.
type GooglePlaceDetails struct {
	ID                string                   `json:"id" validate:"required"`
	DisplayName       *GoogleText              `json:"displayName"`
	FormattedAddress  string                   `json:"formattedAddress"`
	Location          *GoogleLatLng            `json:"location" validate:"omitempty"`
	Types             []string                 `json:"types"`
	AddressComponents []GoogleAddressComponent `json:"addressComponents"`
}

type GoogleReview struct {
	Text *GoogleText `json:"text"`
}

// GooglePlace is one nearby-search result. Location is checked per record by
// the normalizer so that one bad coordinate does not fail the batch.
type GooglePlace struct {
	ID                string                   `json:"id" validate:"required"`
	DisplayName       *GoogleText              `json:"displayName"`
	FormattedAddress  string                   `json:"formattedAddress"`
	Location          *GoogleLatLng            `json:"location" validate:"-"`
	Rating            *float64                 `json:"rating"`
	UserRatingCount   *int                     `json:"userRatingCount"`
	PriceLevel        string                   `json:"priceLevel"`
	Types             []string                 `json:"types"`
	Reviews           []GoogleReview           `json:"reviews"`
	AddressComponents []GoogleAddressComponent `json:"addressComponents"`
}

// GoogleNearbySearchResponse is the body of POST places:searchNearby.
type GoogleNearbySearchResponse struct {
	Places []GooglePlace `json:"places" validate:"dive"`
}
