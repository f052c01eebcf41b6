// Package cache stores materialized step sequences.
//
// Sequences are pure functions of (algorithm, input), so they can be cached
// indefinitely under a content hash of both. The [Cache] interface is a
// byte store with TTLs; backends are:
//
//   - [FileCache]: JSON files under the user cache directory (CLI default)
//   - [NullCache]: stores nothing
//   - [RedisCache]: a shared Redis instance (server deployments)
//   - [MongoCache]: a MongoDB collection with a TTL index
//
// [Keyer] derives keys; [ScopedKeyer] namespaces them. Network backends wrap
// transient failures with [Retryable] and retry through [RetryWithBackoff].
package cache
