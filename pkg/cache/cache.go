// Package cache provides an explicit keyed in-process store for bulk
// snapshots and reference lists. Entries are populated lazily on miss and
// evicted explicitly by write paths; an optional TTL acts as a staleness
// safety net when mutations can happen outside this process.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Logical cache keys. Bulk and reference reads only; criteria-based
// searches are never cached.
const (
	KeyAllListings       = "all-listings"
	KeyFeaturedListings  = "featured-listings"
	KeyCityNames         = "city-names"
	KeyPropertyTypeNames = "property-type-names"
)

// Store is a process-wide keyed cache. Get, Put and Evict are each
// atomic with respect to themselves; check-then-fetch-then-store races
// between concurrent callers are tolerated (a duplicate fetch on a cold
// cache is wasteful, not harmful).
type Store[V any] struct {
	lru *expirable.LRU[string, V]
}

// New creates a Store holding at most size entries. A ttl of 0 means
// entries never expire and only explicit Evict removes them.
func New[V any](size int, ttl time.Duration) *Store[V] {
	if size <= 0 {
		size = 16
	}
	return &Store[V]{
		lru: expirable.NewLRU[string, V](size, nil, ttl),
	}
}

// Get returns the cached value for key, if present.
func (s *Store[V]) Get(key string) (V, bool) {
	return s.lru.Get(key)
}

// Put stores value under key, replacing any previous entry.
func (s *Store[V]) Put(key string, value V) {
	s.lru.Add(key, value)
}

// Evict removes the entry for key. Evicting an absent key is a no-op.
func (s *Store[V]) Evict(key string) {
	s.lru.Remove(key)
}
