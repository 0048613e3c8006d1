package swr

import (
	"context"
	"time"
)

// detachedContext carries values of its parent, but not its deadline or
// cancellation. Background revalidation runs on it so that a caller-scoped
// cancellation does not abort a refresh already handed off.
type detachedContext struct {
	parent context.Context
}

func (detachedContext) Deadline() (deadline time.Time, ok bool) {
	return time.Time{}, false
}

func (detachedContext) Done() <-chan struct{} {
	return nil
}

func (detachedContext) Err() error {
	return nil
}

func (c detachedContext) Value(key interface{}) interface{} {
	return c.parent.Value(key)
}
