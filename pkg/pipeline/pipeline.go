// Package pipeline provides the generate → cache → render flow shared by
// the CLI and the server.
//
// Generators are pure, so a sequence is fully determined by the algorithm
// name and its normalized input. The [Runner] keys sequences on exactly
// that and keeps them in a [cache.Cache]. Rendered frames are cached the
// same way under a key derived from the sequence key.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Request{Algorithm: "bfs"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Sequence.Len(), res.Cached)
//
// Batches run concurrently with a bounded limit:
//
//	results, err := runner.ExecuteAll(ctx, reqs)
//
// Cache failures never fail a request: a broken backend is logged and
// treated as a miss.
package pipeline

import (
	"encoding/json"
	"time"

	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultTTL is how long sequences and frames stay cached. Output only
	// changes with the cache schema version, so entries can live long.
	DefaultTTL = 7 * 24 * time.Hour

	// DefaultConcurrency bounds parallel generation in ExecuteAll.
	DefaultConcurrency = 4

	// MaxBatch is the largest batch ExecuteAll accepts.
	MaxBatch = 64
)

// Frame formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// FrameFormats lists the formats RenderFrame supports.
var FrameFormats = []string{FormatDOT, FormatSVG, FormatPNG, FormatPDF}

// =============================================================================
// Request / Result
// =============================================================================

// Request asks for the sequence of one algorithm. Input is a JSON object
// overlaid on the algorithm's default input, so omitted fields keep their
// defaults; a nil Input means the defaults as they are.
type Request struct {
	Algorithm string          `json:"algorithm" validate:"required,max=64"`
	Input     json.RawMessage `json:"input,omitempty"`
}

// Result is a generated or cached sequence.
type Result struct {
	Sequence *step.Sequence `json:"sequence"`
	Key      string         `json:"key"`
	Cached   bool           `json:"cached"`
	Duration time.Duration  `json:"-"`
}
