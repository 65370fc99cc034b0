package memcache

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type Store interface {
	// Get returns the value for key if present and not expired. An expired
	// entry is removed on read.
	Get(key string) (any, bool)

	// Set stores value for ttl, replacing any previous entry for key.
	Set(key string, value any, ttl time.Duration)
}

type entry struct {
	value     any
	expiresAt time.Time
}

// TTLStore is a bounded in-process store. Entries expire lazily; when the
// store is full the least recently used entry is evicted.
type TTLStore struct {
	data *lru.Cache[string, entry]
	now  func() time.Time
}

func NewTTLStore(capacity int) (*TTLStore, error) {
	data, err := lru.New[string, entry](capacity)
	if err != nil {
		return nil, fmt.Errorf("memcache: create lru of size %d: %w", capacity, err)
	}
	return &TTLStore{data: data, now: time.Now}, nil
}

// WithClock replaces the time source. Used by tests.
func (s *TTLStore) WithClock(now func() time.Time) *TTLStore {
	s.now = now
	return s
}

func (s *TTLStore) Get(key string) (any, bool) {
	e, ok := s.data.Get(key)
	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		s.data.Remove(key) // cleanup expired
		return nil, false
	}
	return e.value, true
}

func (s *TTLStore) Set(key string, value any, ttl time.Duration) {
	s.data.Add(key, entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	})
}

func (s *TTLStore) Len() int {
	return s.data.Len()
}

// Lookup reads key from store and asserts it to T. A value of another type
// counts as a miss.
func Lookup[T any](store Store, key string) (T, bool) {
	var zero T
	v, ok := store.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
