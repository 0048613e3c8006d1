package swr

import (
	"context"

	"github.com/puzpuzpuz/xsync"
)

var _ Storage = &SyncMap{}

// SyncMap is a Storage over a concurrent hash map, it shines under heavy
// parallel access where a single RWMutex becomes a bottleneck.
//
// Please use NewSyncMap to create an instance.
type SyncMap struct {
	data *xsync.Map
}

// NewSyncMap creates a concurrent map storage.
func NewSyncMap() *SyncMap {
	return &SyncMap{data: xsync.NewMap()}
}

// GetItem returns stored value or ErrNotFound.
func (s *SyncMap) GetItem(_ context.Context, key string) (string, error) {
	value, ok := s.data.Load(key)
	if !ok {
		return "", ErrNotFound
	}

	raw, ok := value.(string)
	if !ok {
		return "", ErrInvalidValueType
	}

	return raw, nil
}

// SetItem stores value.
func (s *SyncMap) SetItem(_ context.Context, key string, value string) error {
	s.data.Store(key, value)

	return nil
}

// Len returns number of stored items.
func (s *SyncMap) Len() int {
	cnt := 0

	s.data.Range(func(_ string, _ interface{}) bool {
		cnt++

		return true
	})

	return cnt
}
