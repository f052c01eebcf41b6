// Package observability provides hooks for metrics and logging.
//
// Instrumentation is optional. Callers register hooks at startup to
// observe sequence generation, playback, cache traffic and served
// requests. [Metrics] is the Prometheus-backed implementation
// used by the server.
//
// Every category starts as a no-op. [Metrics.Install] registers one
// collector for all four:
//
//	m := observability.NewMetrics(prometheus.DefaultRegisterer)
//	m.Install()
//	defer observability.Reset()
//
// Packages emit events through the accessors:
//
//	observability.Pipeline().OnGenerateStart(ctx, algorithm)
//	// ... generate ...
//	observability.Pipeline().OnGenerateComplete(ctx, algorithm, steps, cached, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the sequence pipeline.
type PipelineHooks interface {
	// OnGenerateStart fires before a sequence is looked up or generated.
	OnGenerateStart(ctx context.Context, algorithm string)

	// OnGenerateComplete fires once the sequence is available. cached
	// reports whether it came from the cache.
	OnGenerateComplete(ctx context.Context, algorithm string, steps int, cached bool, duration time.Duration, err error)
}

// =============================================================================
// Playback Hooks
// =============================================================================

// PlaybackHooks receives events from playback controllers.
type PlaybackHooks interface {
	// OnAction records a user or timer driven transition. action is one of
	// execute, forward, back, play, pause, speed, reset, seek, tick.
	OnAction(action string, cursor, length int)

	// OnFinished records auto-play reaching the terminal step.
	OnFinished(algorithm string, length int)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the HTTP and WebSocket server.
type ServerHooks interface {
	// OnResponse records a completed HTTP request.
	OnResponse(method, route string, statusCode int, duration time.Duration)

	// OnSessionOpen records a new playback session.
	OnSessionOpen(id string)

	// OnSessionClose records a finished playback session.
	OnSessionClose(id string, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnGenerateStart(context.Context, string) {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, string, int, bool, time.Duration, error) {
}

// NoopPlaybackHooks is a no-op implementation of PlaybackHooks.
type NoopPlaybackHooks struct{}

func (NoopPlaybackHooks) OnAction(string, int, int) {}
func (NoopPlaybackHooks) OnFinished(string, int)     {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnResponse(string, string, int, time.Duration) {}
func (NoopServerHooks) OnSessionOpen(string)                          {}
func (NoopServerHooks) OnSessionClose(string, time.Duration)          {}

// =============================================================================
// Global Hook Registry
// =============================================================================

// registry holds the installed hooks. Readers take a copy under the lock.
type registry struct {
	pipeline PipelineHooks
	playback PlaybackHooks
	cache    CacheHooks
	server   ServerHooks
}

func defaults() registry {
	return registry{
		pipeline: NoopPipelineHooks{},
		playback: NoopPlaybackHooks{},
		cache:    NoopCacheHooks{},
		server:   NoopServerHooks{},
	}
}

var (
	hooksMu sync.RWMutex
	hooks   = defaults()
)

// install replaces one slot; a nil h leaves the current hooks in place.
func install[T any](slot *T, h T) {
	if any(h) == nil {
		return
	}
	hooksMu.Lock()
	*slot = h
	hooksMu.Unlock()
}

func current() registry {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return hooks
}

// SetPipelineHooks registers pipeline hooks. Call it at startup.
func SetPipelineHooks(h PipelineHooks) { install(&hooks.pipeline, h) }

// SetPlaybackHooks registers playback hooks.
func SetPlaybackHooks(h PlaybackHooks) { install(&hooks.playback, h) }

// SetCacheHooks registers cache hooks before the first cache operation.
func SetCacheHooks(h CacheHooks) { install(&hooks.cache, h) }

// SetServerHooks registers server hooks.
func SetServerHooks(h ServerHooks) { install(&hooks.server, h) }

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return current().pipeline }

// Playback returns the registered playback hooks.
func Playback() PlaybackHooks { return current().playback }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return current().cache }

// Server returns the registered server hooks.
func Server() ServerHooks { return current().server }

// Reset restores the no-op defaults. Tests and the serve command's
// shutdown path use it.
func Reset() {
	hooksMu.Lock()
	hooks = defaults()
	hooksMu.Unlock()
}
