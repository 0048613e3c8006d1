package swr

// Key identifies a cache entry.
//
// It is resolved once at the start of every Cache.Get call.
type Key interface {
	CacheKey() string
}

// StringKey is a literal cache key.
type StringKey string

// CacheKey implements Key.
func (k StringKey) CacheKey() string {
	return string(k)
}

// KeyFunc computes a cache key lazily, once per Cache.Get call.
type KeyFunc func() string

// CacheKey implements Key.
func (f KeyFunc) CacheKey() string {
	return f()
}

// TimeKeySuffix is appended to the value key to derive the storage slot of the
// entry timestamp. External tooling that inspects the storage directly relies
// on this layout.
const TimeKeySuffix = "_time"
