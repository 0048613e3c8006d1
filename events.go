package swr

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/bool64/ctxd"
)

// Event names, exact strings are part of the public contract.
const (
	EventInvoke           = "invoke"
	EventCacheMiss        = "cacheMiss"
	EventCacheHit         = "cacheHit"
	EventCacheExpired     = "cacheExpired"
	EventRevalidate       = "revalidate"
	EventRevalidateFailed = "revalidateFailed"
)

// InvokePayload accompanies EventInvoke.
type InvokePayload struct {
	Key      string
	Producer Producer
}

// CacheHitPayload accompanies EventCacheHit.
type CacheHitPayload struct {
	Key         string
	CachedValue interface{}
}

// CacheMissPayload accompanies EventCacheMiss.
type CacheMissPayload struct {
	Key      string
	Producer Producer
}

// CacheExpiredPayload accompanies EventCacheExpired.
type CacheExpiredPayload struct {
	Key           string
	Age           time.Duration
	CachedTime    time.Time
	CachedValue   interface{}
	MaxTimeToLive time.Duration
}

// RevalidatePayload accompanies EventRevalidate.
type RevalidatePayload struct {
	Key      string
	Producer Producer
}

// RevalidateFailedPayload accompanies EventRevalidateFailed.
type RevalidateFailedPayload struct {
	Key      string
	Producer Producer
	Err      error
}

// Listener receives event payloads.
//
// Listeners are invoked synchronously at the emission site and must not block.
type Listener func(ctx context.Context, payload interface{})

// Events dispatches cache events to registered listeners.
//
// Each Cache owns its own Events instance, there is no process-wide registry.
// Safe for concurrent use.
type Events struct {
	mu        sync.RWMutex
	listeners map[string][]Listener

	log ctxd.Logger
}

// NewEvents creates an event dispatcher, nil logger disables panic logging.
func NewEvents(logger ctxd.Logger) *Events {
	if logger == nil {
		logger = ctxd.NoOpLogger{}
	}

	return &Events{
		listeners: make(map[string][]Listener),
		log:       logger,
	}
}

// On registers a listener for an event name.
//
// Listeners for one event are invoked in registration order.
func (e *Events) On(event string, l Listener) {
	e.mu.Lock()
	e.listeners[event] = append(e.listeners[event], l)
	e.mu.Unlock()
}

// Off removes a previously registered listener by function identity.
//
// If the same listener was registered multiple times, the first registration
// is removed.
func (e *Events) Off(event string, l Listener) {
	ptr := reflect.ValueOf(l).Pointer()

	e.mu.Lock()
	defer e.mu.Unlock()

	ll := e.listeners[event]
	for i, registered := range ll {
		if reflect.ValueOf(registered).Pointer() == ptr {
			e.listeners[event] = append(append([]Listener(nil), ll[:i]...), ll[i+1:]...)

			return
		}
	}
}

// Emit invokes listeners of an event in registration order.
//
// Listener panics are recovered and logged, they do not reach the emitter and
// do not stop remaining listeners. The listener list is snapshotted before
// invocation, concurrent On/Off does not affect an emission in progress.
func (e *Events) Emit(ctx context.Context, event string, payload interface{}) {
	e.mu.RLock()
	ll := e.listeners[event]
	e.mu.RUnlock()

	for _, l := range ll {
		e.call(ctx, event, l, payload)
	}
}

func (e *Events) call(ctx context.Context, event string, l Listener, payload interface{}) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error(ctx, "cache event listener panicked",
				"event", event,
				"panic", r)
		}
	}()

	l(ctx, payload)
}
