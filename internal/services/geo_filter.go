package services

import (
	"slices"
	"strings"

	"datewise/internal/models/provider_models"
)

const SingaporeCountryCode = "SG"

// IsSingaporeGoogleAddress reports whether any address component typed
// "country" carries the Singapore code. No country component means false.
func IsSingaporeGoogleAddress(components []provider_models.GoogleAddressComponent) bool {
	for _, c := range components {
		if slices.Contains(c.Types, "country") && strings.EqualFold(strings.TrimSpace(c.ShortText), SingaporeCountryCode) {
			return true
		}
	}
	return false
}

// IsSingaporeMapboxContext checks context.country.country_code. Mapbox
// returns the code in lower case.
func IsSingaporeMapboxContext(ctx *provider_models.MapboxContext) bool {
	if ctx == nil || ctx.Country == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(ctx.Country.CountryCode), SingaporeCountryCode)
}
