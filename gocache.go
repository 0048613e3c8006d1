package swr

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
)

var _ Storage = &GoCache{}

// GoCache adapts a patrickmn/go-cache instance as Storage.
//
// Backend-side expiration removes entries entirely, an expired entry is a miss
// for the stale-while-revalidate layer. Use gocache.NoExpiration to let the
// cache own freshness completely.
type GoCache struct {
	backend *gocache.Cache
}

// NewGoCache creates a go-cache backed storage.
//
// A nil backend defaults to a non-expiring instance.
func NewGoCache(backend *gocache.Cache) *GoCache {
	if backend == nil {
		backend = gocache.New(gocache.NoExpiration, 0)
	}

	return &GoCache{backend: backend}
}

// GetItem returns stored value or ErrNotFound.
func (g *GoCache) GetItem(_ context.Context, key string) (string, error) {
	value, ok := g.backend.Get(key)
	if !ok {
		return "", ErrNotFound
	}

	s, ok := value.(string)
	if !ok {
		return "", ErrInvalidValueType
	}

	return s, nil
}

// SetItem stores value with the backend's default expiration.
func (g *GoCache) SetItem(_ context.Context, key string, value string) error {
	g.backend.Set(key, value, gocache.DefaultExpiration)

	return nil
}
