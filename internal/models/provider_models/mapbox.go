package provider_models

type MapboxCountry struct {
	Name              string `json:"name"`
	CountryCode       string `json:"country_code"`
	CountryCodeAlpha3 string `json:"country_code_alpha_3"`
}

type MapboxContext struct {
	Country *MapboxCountry `json:"country"`
}

type MapboxCoordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type MapboxProperties struct {
	MapboxID       string             `json:"mapbox_id" validate:"required"`
	FeatureType    string             `json:"feature_type"`
	Name           string             `json:"name"`
	NamePreferred  string             `json:"name_preferred"`
	FullAddress    string             `json:"full_address"`
	PlaceFormatted string             `json:"place_formatted"`
	PoiCategoryIDs []string           `json:"poi_category_ids"`
	Context        *MapboxContext     `json:"context"`
	Coordinates    *MapboxCoordinates `json:"coordinates"`
}

// MapboxGeometry carries a GeoJSON point. Coordinates are [longitude, latitude].
type MapboxGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type MapboxFeature struct {
	Type       string           `json:"type"`
	Geometry   *MapboxGeometry  `json:"geometry"`
	Properties MapboxProperties `json:"properties"`
}

// MapboxFeatureCollection is shared by the forward geocode, retrieve and
// category endpoints.
type MapboxFeatureCollection struct {
	Type     string          `json:"type"`
	Features []MapboxFeature `json:"features" validate:"dive"`
}
