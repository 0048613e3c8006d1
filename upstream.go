package swr

import (
	"context"
	"errors"

	"github.com/bool64/cache"
)

var _ Storage = &Upstream{}

// Upstream adapts a bool64/cache ReadWriter as Storage, so an existing cache
// instance with its own janitor and eviction machinery can back the store.
//
// An upstream-expired entry still carries its value and is served as a live
// read, staleness and expiry are decided by the stale-while-revalidate layer
// from the entry timestamp.
type Upstream struct {
	backend cache.ReadWriter
}

// NewUpstream creates a storage over a bool64/cache instance.
//
// A nil backend defaults to a sharded in-memory cache.
func NewUpstream(backend cache.ReadWriter) *Upstream {
	if backend == nil {
		backend = cache.NewShardedMap()
	}

	return &Upstream{backend: backend}
}

// GetItem returns stored value or ErrNotFound.
func (u *Upstream) GetItem(ctx context.Context, key string) (string, error) {
	value, err := u.backend.Read(ctx, []byte(key))
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return "", ErrNotFound
		}

		if !errors.Is(err, cache.ErrExpired) {
			return "", err
		}
	}

	s, ok := value.(string)
	if !ok {
		return "", ErrInvalidValueType
	}

	return s, nil
}

// SetItem stores value.
func (u *Upstream) SetItem(ctx context.Context, key string, value string) error {
	return u.backend.Write(ctx, []byte(key), value)
}
