package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/dsaviz/pkg/cache"
	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/render/nodelink"
	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
	"github.com/matzehuels/dsaviz/pkg/observability"
)

// PNGScale is the resolution multiplier for PNG frames.
const PNGScale = 2.0

// FrameOptions returns the nodelink options for frames of a on res.
func FrameOptions(a *algo.Algorithm, res *Result) nodelink.Options {
	return nodelink.Options{
		Layout:  a.Display,
		Edges:   res.Sequence.Input().Edges,
		Title:   a.Title,
		Explain: true,
	}
}

// RenderFrame renders step index of res in format, from the cache when
// possible.
func (r *Runner) RenderFrame(ctx context.Context, a *algo.Algorithm, res *Result, index int, format string) ([]byte, error) {
	if err := ValidateFrameFormat(format); err != nil {
		return nil, err
	}
	n := res.Sequence.Len()
	if index < 0 || index >= n {
		return nil, dserrors.New(dserrors.ErrCodeInvalidInput, "step %d out of range (sequence has %d steps)", index, n)
	}

	key := r.Keyer.FrameKey(res.Key, index, format)
	hooks := observability.Cache()
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		hooks.OnCacheHit(ctx, cache.KeyTypeFrame)
		return data, nil
	} else if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
	}
	hooks.OnCacheMiss(ctx, cache.KeyTypeFrame)

	data, err := renderFrame(ctx, a, res, index, format)
	if err != nil {
		return nil, dserrors.Wrap(dserrors.ErrCodeInternal, err, "render step %d as %s", index, format)
	}
	r.put(ctx, key, cache.KeyTypeFrame, data)
	return data, nil
}

func renderFrame(ctx context.Context, a *algo.Algorithm, res *Result, index int, format string) ([]byte, error) {
	dot := nodelink.ToDOT(res.Sequence.At(index), FrameOptions(a, res))
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, PNGScale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	}
	return nil, fmt.Errorf("unsupported frame format: %s", format)
}

// ValidateFrameFormat checks that format is a supported frame format.
func ValidateFrameFormat(format string) error {
	return dserrors.ValidateFormat(format, FrameFormats...)
}
