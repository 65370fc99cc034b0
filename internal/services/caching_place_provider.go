package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"datewise/internal/models/response_models"
	"datewise/pkg/memcache"
)

type CacheTTLs struct {
	Autocomplete time.Duration
	Details      time.Duration
	Candidates   time.Duration
}

func DefaultCacheTTLs() CacheTTLs {
	return CacheTTLs{
		Autocomplete: 60 * time.Second,
		Details:      5 * time.Minute,
		Candidates:   60 * time.Second,
	}
}

// CachingPlaceProvider serves repeated lookups from store. Only successful
// results are stored. Two concurrent misses on the same key both reach the
// upstream; the later write wins.
type CachingPlaceProvider struct {
	next   PlaceProvider
	store  memcache.Store
	ttls   CacheTTLs
	logger *zap.Logger
}

func NewCachingPlaceProvider(next PlaceProvider, store memcache.Store, ttls CacheTTLs, logger *zap.Logger) *CachingPlaceProvider {
	return &CachingPlaceProvider{
		next:   next,
		store:  store,
		ttls:   ttls,
		logger: logger.Named("place_cache"),
	}
}

func AutocompleteCacheKey(query string) string { return "autocomplete:" + query }

func DetailsCacheKey(placeID string) string { return "details:" + placeID }

func CandidatesCacheKey(originPlaceID string) string { return "candidates:" + originPlaceID }

func (c *CachingPlaceProvider) Name() string { return c.next.Name() }

func cached[T any](c *CachingPlaceProvider, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if v, ok := memcache.Lookup[T](c.store, key); ok {
		c.logger.Debug("cache hit", zap.String("key", key))
		return v, nil
	}
	c.logger.Debug("cache miss", zap.String("key", key))

	v, err := fetch()
	if err != nil {
		return v, err
	}
	c.store.Set(key, v, ttl)
	return v, nil
}

func (c *CachingPlaceProvider) Search(ctx context.Context, query string) (response_models.PlacesAutocompleteResponse, error) {
	return cached(c, AutocompleteCacheKey(query), c.ttls.Autocomplete, func() (response_models.PlacesAutocompleteResponse, error) {
		return c.next.Search(ctx, query)
	})
}

func (c *CachingPlaceProvider) FetchDetails(ctx context.Context, placeID string) (response_models.PlaceDetailsResponse, error) {
	return cached(c, DetailsCacheKey(placeID), c.ttls.Details, func() (response_models.PlaceDetailsResponse, error) {
		return c.next.FetchDetails(ctx, placeID)
	})
}

func (c *CachingPlaceProvider) FetchNearby(ctx context.Context, origin response_models.PlaceDetailsResponse) ([]response_models.Candidate, error) {
	return cached(c, CandidatesCacheKey(origin.PlaceID), c.ttls.Candidates, func() ([]response_models.Candidate, error) {
		return c.next.FetchNearby(ctx, origin)
	})
}
