package swr

import (
	"context"
)

// Storage is the backing key-value store contract.
//
// Implementations may be in-memory, on disk or networked. GetItem returns
// ErrNotFound (possibly wrapped) for an absent key, any other error is treated
// as a storage failure by the cache.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key string, value string) error
}

// NoOp is a Storage stub that disables caching, every read is a miss.
type NoOp struct{}

var _ Storage = NoOp{}

// GetItem does not find anything.
func (NoOp) GetItem(_ context.Context, _ string) (string, error) {
	return "", ErrNotFound
}

// SetItem discards value.
func (NoOp) SetItem(_ context.Context, _ string, _ string) error {
	return nil
}
