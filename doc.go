// Package swr implements stale-while-revalidate caching on top of an external key-value storage.
// Focused on fast reads: once a value exists, callers never wait for a refresh.
//
// Features:
//
//   - Separated staleness and expiration thresholds: stale values are served immediately
//     while a fresh value is built in background, expired values are discarded.
//   - Synchronous build only on the first read (cache miss).
//   - Pluggable storage backend, any string key-value store with get/set works.
//   - Pluggable payload codec, JSON by default.
//   - Event notification on every cache decision (invoke, hit, miss, expired,
//     revalidate, revalidate failure) for external observers.
//   - Allows logging, stats collection.
//   - Propagates context to storage and value producers, background refresh runs
//     on a detached context.
//
// Limitations:
//
//   - Concurrent reads of the same stale key each trigger their own background
//     refresh, there is no cross-call or cross-process deduplication.
//   - Value and timestamp live in two storage slots written one after another,
//     not transactionally.
//   - A value that decodes to nil is indistinguishable from a missing entry, so
//     nil cannot be cached as a present value.
package swr
