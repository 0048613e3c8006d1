package swr

// Metric names reported to the stats tracker.
const (
	// MetricInvoke is a counter of cache reads.
	MetricInvoke = "cache_invoke"
	// MetricHit is a counter of cache hits, including stale ones.
	MetricHit = "cache_hit"
	// MetricMiss is a counter of cache misses.
	MetricMiss = "cache_miss"
	// MetricExpired is a counter of entries discarded on expiration.
	MetricExpired = "cache_expired"
	// MetricRevalidate is a counter of value builds, synchronous and background.
	MetricRevalidate = "cache_revalidate"
	// MetricFailed is a counter of failed value builds.
	MetricFailed = "cache_revalidate_failed"
)
