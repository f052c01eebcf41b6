package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dsaviz/pkg/cache"
	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/algo/search"
	"github.com/matzehuels/dsaviz/pkg/core/step"
	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
	"github.com/matzehuels/dsaviz/pkg/observability"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newFileRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	return NewRunner(c, nil, quietLogger())
}

// brokenCache fails every operation.
type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("backend down")
}
func (brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("backend down")
}
func (brokenCache) Delete(context.Context, string) error { return nil }
func (brokenCache) Close() error                         { return nil }

// recorder captures pipeline and cache hook events.
type recorder struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks

	mu       sync.Mutex
	starts   int
	complete []bool
	hits     []string
	misses   []string
	sets     []string
}

func (r *recorder) OnGenerateStart(context.Context, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts++
}

func (r *recorder) OnGenerateComplete(_ context.Context, _ string, _ int, cached bool, _ time.Duration, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.complete = append(r.complete, cached)
}

func (r *recorder) OnCacheHit(_ context.Context, keyType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hits = append(r.hits, keyType)
}

func (r *recorder) OnCacheMiss(_ context.Context, keyType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.misses = append(r.misses, keyType)
}

func (r *recorder) OnCacheSet(_ context.Context, keyType string, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets = append(r.sets, keyType)
}

func installRecorder(t *testing.T) *recorder {
	t.Helper()
	rec := &recorder{}
	observability.SetPipelineHooks(rec)
	observability.SetCacheHooks(rec)
	t.Cleanup(observability.Reset)
	return rec
}

func TestGenerateCacheHitEqualsFresh(t *testing.T) {
	rec := installRecorder(t)
	r := newFileRunner(t)
	ctx := context.Background()

	first, err := r.Execute(ctx, Request{Algorithm: "bfs"})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := r.Execute(ctx, Request{Algorithm: "bfs"})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Key, second.Key)
	assert.True(t, first.Sequence.Equal(second.Sequence), "cached sequence differs from fresh one")

	a, err := r.Lookup("bfs")
	require.NoError(t, err)
	assert.True(t, a.Run(a.Defaults).Equal(second.Sequence))

	assert.Equal(t, 2, rec.starts)
	assert.Equal(t, []bool{false, true}, rec.complete)
	assert.Equal(t, []string{cache.KeyTypeSequence}, rec.hits)
	assert.Equal(t, []string{cache.KeyTypeSequence}, rec.misses)
	assert.Equal(t, []string{cache.KeyTypeSequence}, rec.sets)
}

func TestGenerateEveryAlgorithmThroughCache(t *testing.T) {
	r := newFileRunner(t)
	ctx := context.Background()
	for _, name := range algo.Names(r.Topics) {
		t.Run(name, func(t *testing.T) {
			fresh, err := r.Execute(ctx, Request{Algorithm: name})
			require.NoError(t, err)
			cached, err := r.Execute(ctx, Request{Algorithm: name})
			require.NoError(t, err)
			require.True(t, cached.Cached)
			assert.True(t, fresh.Sequence.Equal(cached.Sequence))
		})
	}
}

func TestBrokenCacheIsAMiss(t *testing.T) {
	r := NewRunner(brokenCache{}, nil, quietLogger())
	res, err := r.Execute(context.Background(), Request{Algorithm: "binary-search"})
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.True(t, res.Sequence.Last().Done)
}

func TestCorruptEntryIsAMiss(t *testing.T) {
	r := newFileRunner(t)
	ctx := context.Background()
	a, in, err := r.Resolve(Request{Algorithm: "binary-search"})
	require.NoError(t, err)

	key := r.Keyer.SequenceKey(a.Name, in.Normalize())
	require.NoError(t, r.Cache.Set(ctx, key, []byte("{not json"), time.Hour))

	res, err := r.Generate(ctx, a, in)
	require.NoError(t, err)
	assert.False(t, res.Cached)

	again, err := r.Generate(ctx, a, in)
	require.NoError(t, err)
	assert.True(t, again.Cached, "the corrupt entry is replaced")
}

func TestResolveOverlaysInput(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())

	a, in, err := r.Resolve(Request{Algorithm: "binary-search", Input: json.RawMessage(`{"target": 0}`)})
	require.NoError(t, err)
	assert.Same(t, search.BinarySearch, a)
	assert.Equal(t, 0, in.Target, "explicit zero wins")
	assert.Equal(t, search.BinarySearch.Defaults.Values, in.Values, "omitted fields keep defaults")

	_, in, err = r.Resolve(Request{Algorithm: "binary-search", Input: json.RawMessage(`null`)})
	require.NoError(t, err)
	assert.Equal(t, search.BinarySearch.Defaults, in)
}

func TestResolveErrors(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	tests := []struct {
		name string
		req  Request
		code dserrors.Code
	}{
		{"unknown", Request{Algorithm: "bogo-sort"}, dserrors.ErrCodeUnknownAlgorithm},
		{"malformed name", Request{Algorithm: "../x"}, dserrors.ErrCodeInvalidInput},
		{"bad json", Request{Algorithm: "bfs", Input: json.RawMessage(`{"values": "x"}`)}, dserrors.ErrCodeInvalidInput},
		{"too many values", Request{Algorithm: "binary-search", Input: json.RawMessage(`{"values": [` + strings.Repeat("1,", 80) + `1]}`)}, dserrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := r.Resolve(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.code, dserrors.GetCode(err))
		})
	}
}

func TestDefaultsFunc(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	r.Defaults = func(a *algo.Algorithm) step.Input {
		in := a.Defaults.Clone()
		in.Target = 56
		return in
	}
	res, err := r.Execute(context.Background(), Request{Algorithm: "binary-search"})
	require.NoError(t, err)
	assert.Equal(t, 56, res.Sequence.Input().Target)
	require.NotNil(t, res.Sequence.Last().Result)
}

func TestLookupTopic(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	tp, err := r.LookupTopic("graphs")
	require.NoError(t, err)
	assert.Equal(t, "graphs", tp.Name)

	_, err = r.LookupTopic("sorting")
	assert.True(t, dserrors.Is(err, dserrors.ErrCodeUnknownTopic))
}

func TestExecuteAllKeepsOrder(t *testing.T) {
	r := newFileRunner(t)
	r.Concurrency = 2
	names := algo.Names(r.Topics)
	reqs := make([]Request, len(names))
	for i, n := range names {
		reqs[i] = Request{Algorithm: n}
	}

	results, err := r.ExecuteAll(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, len(names))
	for i, res := range results {
		assert.Equal(t, names[i], res.Sequence.Algorithm())
	}
}

func TestExecuteAllFailsFast(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	_, err := r.ExecuteAll(context.Background(), []Request{
		{Algorithm: "bfs"},
		{Algorithm: "nope"},
	})
	require.Error(t, err)
	assert.True(t, dserrors.Is(err, dserrors.ErrCodeUnknownAlgorithm))
	assert.Contains(t, err.Error(), "request 1")
}

func TestExecuteAllRejectsHugeBatch(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	_, err := r.ExecuteAll(context.Background(), make([]Request, MaxBatch+1))
	assert.True(t, dserrors.Is(err, dserrors.ErrCodeInvalidInput))
}

func TestGenerateCanceled(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Execute(ctx, Request{Algorithm: "bfs"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSource(t *testing.T) {
	r := newFileRunner(t)
	a, err := r.Lookup("lower-bound")
	require.NoError(t, err)

	src := r.Source(context.Background(), a)
	seq := src(step.Input{Values: []int{1, 3, 5}, Target: 4})
	require.NotNil(t, seq)
	assert.Equal(t, 2, *seq.Last().Result)
}

func TestRenderFrameDOTIsCached(t *testing.T) {
	rec := installRecorder(t)
	r := newFileRunner(t)
	ctx := context.Background()

	a, err := r.Lookup("bfs")
	require.NoError(t, err)
	res, err := r.Generate(ctx, a, a.Defaults)
	require.NoError(t, err)

	first, err := r.RenderFrame(ctx, a, res, 0, FormatDOT)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(first), "graph"))

	second, err := r.RenderFrame(ctx, a, res, 0, FormatDOT)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, rec.hits, cache.KeyTypeFrame)
}

func TestRenderFrameErrors(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx := context.Background()
	a, err := r.Lookup("bfs")
	require.NoError(t, err)
	res, err := r.Generate(ctx, a, a.Defaults)
	require.NoError(t, err)

	_, err = r.RenderFrame(ctx, a, res, res.Sequence.Len(), FormatDOT)
	assert.True(t, dserrors.Is(err, dserrors.ErrCodeInvalidInput))

	_, err = r.RenderFrame(ctx, a, res, 0, "gif")
	assert.True(t, dserrors.Is(err, dserrors.ErrCodeInvalidFormat))
}
