package swr

import (
	"errors"

	"github.com/swaggest/usecase/status"
)

// SentinelError is an error.
type SentinelError string

// Error implements error.
func (e SentinelError) Error() string {
	return string(e)
}

// ErrInvalidValueType indicates a backend returned a value that is not a string.
const ErrInvalidValueType = SentinelError("unexpected cached value type")

// ErrNotFound indicates missing cache entry, storage backends return it
// (possibly wrapped) from GetItem for absent keys.
var ErrNotFound = status.Wrap(errors.New("missing cache item"), status.NotFound)
