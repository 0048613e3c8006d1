package swr

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"golang.org/x/sync/errgroup"
)

// Producer computes the authoritative value for a cache entry.
type Producer func(ctx context.Context) (interface{}, error)

// Config is optional configuration for New.
type Config struct {
	// Name is added to logs and stats.
	Name string

	// Storage is the backing key-value store, in-memory created by default.
	Storage Storage

	// MinTimeToStale is entry age at which a hit is served stale and a
	// background refresh is triggered. Zero refreshes on every hit.
	MinTimeToStale time.Duration

	// MaxTimeToLive is entry age above which a hit is discarded and treated
	// as a miss. Zero disables expiration.
	MaxTimeToLive time.Duration

	// Codec converts values to and from the storage representation,
	// default JSONCodec.
	Codec Codec

	// Logger collects messages with context.
	Logger ctxd.Logger

	// Stats tracks stats.
	Stats stats.Tracker
}

// Cache serves cached values while revalidating them in background.
//
// Please use New to create an instance.
type Cache struct {
	config  Config
	storage Storage
	codec   Codec
	events  *Events
	log     ctxd.Logger
	stat    stats.Tracker
}

// New creates a stale-while-revalidate cache instance.
//
// Once an entry exists, Get never blocks on a refresh: a stale entry is
// returned immediately while the producer runs in background. Only the first
// read of a key (or a read after expiration) builds synchronously.
func New(config Config) *Cache {
	c := &Cache{}
	c.config = config

	c.log = config.Logger
	if c.log == nil {
		c.log = ctxd.NoOpLogger{}
	}

	c.stat = config.Stats
	if c.stat == nil {
		c.stat = stats.NoOp{}
	}

	c.storage = config.Storage
	if c.storage == nil {
		c.storage = NewMemory()
	}

	c.codec = config.Codec
	if c.codec == nil {
		c.codec = JSONCodec{}
	}

	c.events = NewEvents(c.log)

	return c
}

// Events exposes the event dispatcher of this instance.
func (c *Cache) Events() *Events {
	return c.events
}

// On registers an event listener, see event name constants.
func (c *Cache) On(event string, l Listener) {
	c.events.On(event, l)
}

// Off removes an event listener by function identity.
func (c *Cache) Off(event string, l Listener) {
	c.events.Off(event, l)
}

// Get returns value from cache or from the producer.
//
// A fresh entry is returned as is. A stale entry is returned immediately and
// the producer is spawned in background, its failure is reported only via the
// revalidateFailed event. A missing or expired entry invokes the producer
// synchronously, its failure is returned to the caller.
//
// Concurrent Get calls observing the same stale entry each spawn their own
// refresh, deduplication is up to the caller.
func (c *Cache) Get(ctx context.Context, key Key, producer Producer) (interface{}, error) {
	cacheKey := key.CacheKey()
	timeKey := cacheKey + TimeKeySuffix

	c.events.Emit(ctx, EventInvoke, InvokePayload{Key: cacheKey, Producer: producer})
	c.stat.Add(ctx, MetricInvoke, 1, "name", c.config.Name)

	rawValue, rawTime, err := c.readEntry(ctx, cacheKey, timeKey)
	if err != nil {
		return nil, err
	}

	var cachedValue interface{}

	if rawValue != "" {
		cachedValue, err = c.codec.Decode(rawValue)
		if err != nil {
			return nil, ctxd.WrapError(ctx, err, "failed to decode cached value",
				"name", c.config.Name, "key", cacheKey)
		}
	}

	age, cachedTime, ageKnown := entryAge(rawTime)

	// A value without a readable timestamp is never served, its freshness
	// cannot be established.
	if !ageKnown {
		cachedValue = nil
	}

	if ageKnown && c.config.MaxTimeToLive > 0 && age > c.config.MaxTimeToLive {
		c.events.Emit(ctx, EventCacheExpired, CacheExpiredPayload{
			Key:           cacheKey,
			Age:           age,
			CachedTime:    cachedTime,
			CachedValue:   cachedValue,
			MaxTimeToLive: c.config.MaxTimeToLive,
		})
		c.stat.Add(ctx, MetricExpired, 1, "name", c.config.Name)
		c.log.Debug(ctx, "cache entry expired",
			"name", c.config.Name,
			"key", cacheKey,
			"age", age)

		cachedValue = nil
	}

	if cachedValue != nil {
		c.events.Emit(ctx, EventCacheHit, CacheHitPayload{Key: cacheKey, CachedValue: cachedValue})
		c.stat.Add(ctx, MetricHit, 1, "name", c.config.Name)

		if age >= c.config.MinTimeToStale {
			// Spawning refresh in background, caller is served the stale value.
			go func() {
				dctx := detachedContext{parent: ctx}

				if _, err := c.revalidate(dctx, cacheKey, timeKey, producer); err != nil {
					c.log.Warn(dctx, "failed to revalidate stale cache value in background",
						"error", err,
						"name", c.config.Name,
						"key", cacheKey)
				}
			}()
		}

		return cachedValue, nil
	}

	c.events.Emit(ctx, EventCacheMiss, CacheMissPayload{Key: cacheKey, Producer: producer})
	c.stat.Add(ctx, MetricMiss, 1, "name", c.config.Name)

	return c.revalidate(ctx, cacheKey, timeKey, producer)
}

// readEntry fetches value and timestamp slots concurrently.
//
// Absence is normal control flow and comes back as an empty string, any other
// storage failure aborts both reads.
func (c *Cache) readEntry(ctx context.Context, cacheKey, timeKey string) (rawValue, rawTime string, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		value, err := c.storage.GetItem(gctx, cacheKey)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return ctxd.WrapError(gctx, err, "failed to read cached value",
				"name", c.config.Name, "key", cacheKey)
		}

		rawValue = value

		return nil
	})

	g.Go(func() error {
		value, err := c.storage.GetItem(gctx, timeKey)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return ctxd.WrapError(gctx, err, "failed to read cached timestamp",
				"name", c.config.Name, "key", timeKey)
		}

		rawTime = value

		return nil
	})

	if err := g.Wait(); err != nil {
		return "", "", err
	}

	return rawValue, rawTime, nil
}

// revalidate builds the value and persists it together with a timestamp.
//
// Producer, codec and storage failures are all reported via the
// revalidateFailed event and returned to the caller.
func (c *Cache) revalidate(ctx context.Context, cacheKey, timeKey string, producer Producer) (interface{}, error) {
	c.events.Emit(ctx, EventRevalidate, RevalidatePayload{Key: cacheKey, Producer: producer})
	c.stat.Add(ctx, MetricRevalidate, 1, "name", c.config.Name)
	c.log.Debug(ctx, "revalidating cache value", "name", c.config.Name, "key", cacheKey)

	value, err := producer(ctx)
	if err != nil {
		return nil, c.revalidateFailed(ctx, cacheKey, producer, err)
	}

	raw, err := c.codec.Encode(value)
	if err != nil {
		return nil, c.revalidateFailed(ctx, cacheKey, producer,
			ctxd.WrapError(ctx, err, "failed to encode cache value"))
	}

	if err := c.storage.SetItem(ctx, cacheKey, raw); err != nil {
		return nil, c.revalidateFailed(ctx, cacheKey, producer,
			ctxd.WrapError(ctx, err, "failed to store cache value"))
	}

	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := c.storage.SetItem(ctx, timeKey, ts); err != nil {
		return nil, c.revalidateFailed(ctx, cacheKey, producer,
			ctxd.WrapError(ctx, err, "failed to store cache timestamp"))
	}

	return value, nil
}

func (c *Cache) revalidateFailed(ctx context.Context, cacheKey string, producer Producer, err error) error {
	c.events.Emit(ctx, EventRevalidateFailed, RevalidateFailedPayload{
		Key:      cacheKey,
		Producer: producer,
		Err:      err,
	})
	c.stat.Add(ctx, MetricFailed, 1, "name", c.config.Name)

	return err
}

// entryAge computes entry age from the raw timestamp slot, milliseconds since
// epoch. Missing or mangled timestamps make the age unknown.
func entryAge(rawTime string) (age time.Duration, cachedTime time.Time, ok bool) {
	if rawTime == "" {
		return 0, time.Time{}, false
	}

	ms, err := strconv.ParseInt(rawTime, 10, 64)
	if err != nil {
		return 0, time.Time{}, false
	}

	cachedTime = time.UnixMilli(ms)

	return time.Since(cachedTime), cachedTime, true
}
