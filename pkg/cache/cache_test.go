package cache_test

import (
	"testing"
	"time"

	"property-listing-service/pkg/cache"
)

func TestStore(t *testing.T) {
	t.Run("Miss Then Hit", func(t *testing.T) {
		s := cache.New[[]string](8, 0)

		if _, ok := s.Get(cache.KeyCityNames); ok {
			t.Fatal("expected miss on empty store")
		}

		s.Put(cache.KeyCityNames, []string{"Austin", "Dallas"})
		got, ok := s.Get(cache.KeyCityNames)
		if !ok {
			t.Fatal("expected hit after put")
		}
		if len(got) != 2 || got[0] != "Austin" {
			t.Errorf("unexpected cached value: %v", got)
		}
	})

	t.Run("Evict", func(t *testing.T) {
		s := cache.New[int](8, 0)
		s.Put("k", 42)
		s.Evict("k")
		if _, ok := s.Get("k"); ok {
			t.Error("expected miss after evict")
		}
		// evicting again must not panic
		s.Evict("k")
	})

	t.Run("Replace", func(t *testing.T) {
		s := cache.New[int](8, 0)
		s.Put("k", 1)
		s.Put("k", 2)
		if v, _ := s.Get("k"); v != 2 {
			t.Errorf("expected 2, got %d", v)
		}
	})

	t.Run("TTL Expiry", func(t *testing.T) {
		s := cache.New[int](8, 20*time.Millisecond)
		s.Put("k", 1)
		time.Sleep(60 * time.Millisecond)
		if _, ok := s.Get("k"); ok {
			t.Error("expected entry to expire")
		}
	})
}
