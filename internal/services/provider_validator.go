package services

import (
	"bytes"

	"datewise/internal/models/provider_models"
	"datewise/pkg/utils"
)

// decodeProvider unmarshals a raw provider body into T and checks its
// `validate` tags. The envelope must be a JSON object. Failures are reported
// as ErrInvalidExternalResponse with the offending fields in Details.
func decodeProvider[T any](raw []byte, message string) (*T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, utils.NewInvalidExternalResponse(message, []utils.FieldIssue{
			{Message: "expected a JSON object"},
		}, nil)
	}

	var out T
	if issues := utils.DecodeAndValidate(trimmed, &out); issues != nil {
		return nil, utils.NewInvalidExternalResponse(message, issues, nil)
	}
	return &out, nil
}

// checkInternal validates a normalized response before it leaves the
// normalizer. A failure here means the mapping produced something the
// response contract rejects.
func checkInternal[T any](v T, message string) (T, error) {
	if issues := utils.ValidateStruct(v); issues != nil {
		var zero T
		return zero, utils.NewInvalidExternalResponse(message, issues, nil)
	}
	return v, nil
}

func ValidateGoogleAutocomplete(raw []byte) (*provider_models.GoogleAutocompleteResponse, error) {
	return decodeProvider[provider_models.GoogleAutocompleteResponse](raw, googleAutocompleteInvalid)
}

func ValidateGoogleDetails(raw []byte) (*provider_models.GooglePlaceDetails, error) {
	return decodeProvider[provider_models.GooglePlaceDetails](raw, googleDetailsInvalid)
}

func ValidateGoogleNearby(raw []byte) (*provider_models.GoogleNearbySearchResponse, error) {
	return decodeProvider[provider_models.GoogleNearbySearchResponse](raw, googleNearbyInvalid)
}

func ValidateMapboxFeatures(raw []byte, message string) (*provider_models.MapboxFeatureCollection, error) {
	return decodeProvider[provider_models.MapboxFeatureCollection](raw, message)
}
