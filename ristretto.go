package swr

import (
	"context"

	"github.com/dgraph-io/ristretto"
)

var _ Storage = &Ristretto{}

// Ristretto is a size-bounded Storage over dgraph-io/ristretto.
//
// Writes are buffered by the backend and may be dropped under admission
// pressure, a dropped write surfaces as a later miss and a fresh rebuild.
// Please use NewRistretto to create an instance.
type Ristretto struct {
	backend *ristretto.Cache
}

// NewRistretto creates a ristretto backed storage.
//
// A nil backend defaults to an instance bounded at roughly 64MB.
func NewRistretto(backend *ristretto.Cache) (*Ristretto, error) {
	if backend == nil {
		var err error

		backend, err = ristretto.NewCache(&ristretto.Config{
			NumCounters: 1e6,
			MaxCost:     64 * 1024 * 1024,
			BufferItems: 64,
		})
		if err != nil {
			return nil, err
		}
	}

	return &Ristretto{backend: backend}, nil
}

// GetItem returns stored value or ErrNotFound.
func (r *Ristretto) GetItem(_ context.Context, key string) (string, error) {
	value, ok := r.backend.Get(key)
	if !ok {
		return "", ErrNotFound
	}

	s, ok := value.(string)
	if !ok {
		return "", ErrInvalidValueType
	}

	return s, nil
}

// SetItem stores value costed by its length.
func (r *Ristretto) SetItem(_ context.Context, key string, value string) error {
	r.backend.Set(key, value, int64(len(value)))

	return nil
}

// Wait blocks until buffered writes are applied, useful in tests.
func (r *Ristretto) Wait() {
	r.backend.Wait()
}
