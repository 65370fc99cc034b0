package request_models

type PlacesAutocompleteQuery struct {
	Q string `form:"q" json:"q" binding:"required,min=2,max=120"`
}

type PlaceDetailsQuery struct {
	PlaceID string `form:"placeId" json:"placeId" binding:"required"`
}

type DebugPlaceCandidatesQuery struct {
	OriginPlaceID string `form:"originPlaceId" json:"originPlaceId" binding:"required"`
}
