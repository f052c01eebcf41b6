package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/dsaviz/pkg/cache"
	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/algo/topics"
	"github.com/matzehuels/dsaviz/pkg/core/step"
	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
	"github.com/matzehuels/dsaviz/pkg/observability"
	"github.com/matzehuels/dsaviz/pkg/playback"
)

// DefaultsFunc returns the input an algorithm runs on when the caller
// supplies none.
type DefaultsFunc func(a *algo.Algorithm) step.Input

// Runner generates sequences through a cache.
//
// The Runner holds no per-request state, so one Runner can serve many
// goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL applies to every cache write. Zero means DefaultTTL.
	TTL time.Duration

	// Concurrency bounds ExecuteAll. Zero means DefaultConcurrency.
	Concurrency int

	// Topics is the registry algorithms are looked up in.
	Topics []*algo.Topic

	// Defaults supplies base inputs. Nil means each algorithm's Defaults.
	Defaults DefaultsFunc
}

// NewRunner creates a runner over the built-in topics.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:       c,
		Keyer:       keyer,
		Logger:      logger,
		TTL:         DefaultTTL,
		Concurrency: DefaultConcurrency,
		Topics:      topics.All,
	}
}

// =============================================================================
// Lookup
// =============================================================================

// Lookup returns the registered algorithm called name.
func (r *Runner) Lookup(name string) (*algo.Algorithm, error) {
	if err := dserrors.ValidateAlgorithmName(name); err != nil {
		return nil, err
	}
	a, _, ok := algo.FindAlgorithm(name, r.Topics)
	if !ok {
		return nil, dserrors.New(dserrors.ErrCodeUnknownAlgorithm, "unknown algorithm: %s", name)
	}
	return a, nil
}

// LookupTopic returns the registered topic called name.
func (r *Runner) LookupTopic(name string) (*algo.Topic, error) {
	t := algo.FindTopic(name, r.Topics)
	if t == nil {
		return nil, dserrors.New(dserrors.ErrCodeUnknownTopic, "unknown topic: %s", name)
	}
	return t, nil
}

// DefaultInput returns the base input for a.
func (r *Runner) DefaultInput(a *algo.Algorithm) step.Input {
	if r.Defaults != nil {
		return r.Defaults(a)
	}
	return a.Defaults.Clone()
}

// Resolve looks up the requested algorithm and overlays the request input
// on its default input.
func (r *Runner) Resolve(req Request) (*algo.Algorithm, step.Input, error) {
	a, err := r.Lookup(req.Algorithm)
	if err != nil {
		return nil, step.Input{}, err
	}
	in := r.DefaultInput(a)
	if len(req.Input) > 0 && string(req.Input) != "null" {
		if err := json.Unmarshal(req.Input, &in); err != nil {
			return nil, step.Input{}, dserrors.Wrap(dserrors.ErrCodeInvalidInput, err, "decode input for %s", a.Name)
		}
	}
	if err := ValidateInput(in); err != nil {
		return nil, step.Input{}, err
	}
	return a, in, nil
}

// ValidateInput rejects input beyond the display limits.
func ValidateInput(in step.Input) error {
	if err := dserrors.ValidateValues(in.Values); err != nil {
		return err
	}
	if err := dserrors.ValidateText(in.Text); err != nil {
		return err
	}
	if len(in.Edges) > step.MaxNodes*2 {
		return dserrors.New(dserrors.ErrCodeInvalidInput, "too many edges: %d (max %d)", len(in.Edges), step.MaxNodes*2)
	}
	return nil
}

// =============================================================================
// Generation
// =============================================================================

// Execute resolves req and generates its sequence.
func (r *Runner) Execute(ctx context.Context, req Request) (*Result, error) {
	a, in, err := r.Resolve(req)
	if err != nil {
		return nil, err
	}
	return r.Generate(ctx, a, in)
}

// Generate returns the sequence of a on in, from the cache when possible.
// It only fails when ctx is done.
func (r *Runner) Generate(ctx context.Context, a *algo.Algorithm, in step.Input) (*Result, error) {
	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, a.Name)

	if err := ctx.Err(); err != nil {
		hooks.OnGenerateComplete(ctx, a.Name, 0, false, time.Since(start), err)
		return nil, err
	}

	in = in.Normalize()
	key := r.Keyer.SequenceKey(a.Name, in)

	if seq, ok := r.lookup(ctx, key); ok {
		res := &Result{Sequence: seq, Key: key, Cached: true, Duration: time.Since(start)}
		r.Logger.Debug("sequence cache hit", "algorithm", a.Name, "steps", seq.Len())
		hooks.OnGenerateComplete(ctx, a.Name, seq.Len(), true, res.Duration, nil)
		return res, nil
	}

	seq := a.Run(in)
	r.store(ctx, key, seq)

	res := &Result{Sequence: seq, Key: key, Duration: time.Since(start)}
	r.Logger.Debug("generated sequence",
		"algorithm", a.Name,
		"steps", seq.Len(),
		"duration", res.Duration)
	hooks.OnGenerateComplete(ctx, a.Name, seq.Len(), false, res.Duration, nil)
	return res, nil
}

// ExecuteAll runs reqs concurrently, at most Concurrency at a time. The
// results are in request order. The first failing request cancels the
// rest.
func (r *Runner) ExecuteAll(ctx context.Context, reqs []Request) ([]*Result, error) {
	if len(reqs) > MaxBatch {
		return nil, dserrors.New(dserrors.ErrCodeInvalidInput, "batch too large: %d requests (max %d)", len(reqs), MaxBatch)
	}

	limit := r.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]*Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, req := range reqs {
		g.Go(func() error {
			res, err := r.Execute(gctx, req)
			if err != nil {
				return fmt.Errorf("request %d (%s): %w", i, req.Algorithm, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Source adapts the runner to a playback source for a. Generation errors
// only happen on cancellation; the source then yields nil, which
// controllers ignore.
func (r *Runner) Source(ctx context.Context, a *algo.Algorithm) playback.Source {
	return func(in step.Input) *step.Sequence {
		res, err := r.Generate(ctx, a, in)
		if err != nil {
			return nil
		}
		return res.Sequence
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// =============================================================================
// Cache access
// =============================================================================

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return DefaultTTL
}

// lookup reads a cached sequence. Backend and decode errors are misses.
func (r *Runner) lookup(ctx context.Context, key string) (*step.Sequence, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
	}
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, cache.KeyTypeSequence)
		return nil, false
	}
	var seq step.Sequence
	if err := json.Unmarshal(data, &seq); err != nil {
		r.Logger.Warn("discarding corrupt cache entry", "key", key, "err", err)
		_ = r.Cache.Delete(ctx, key)
		hooks.OnCacheMiss(ctx, cache.KeyTypeSequence)
		return nil, false
	}
	hooks.OnCacheHit(ctx, cache.KeyTypeSequence)
	return &seq, true
}

func (r *Runner) store(ctx context.Context, key string, seq *step.Sequence) {
	data, err := json.Marshal(seq)
	if err != nil {
		r.Logger.Warn("encode sequence for cache", "err", err)
		return
	}
	r.put(ctx, key, cache.KeyTypeSequence, data)
}

func (r *Runner) put(ctx context.Context, key, keyType string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}
