// Package pkg provides the core libraries for dsaviz, a step-by-step
// visualizer for data structures and algorithms.
//
// # Overview
//
// dsaviz turns an algorithm run into an immutable sequence of steps. Each
// step is one frame: the items on screen, which positions the named
// pointers hold, which items are highlighted and why, and a sentence
// explaining what just happened. The pkg directory is organized into
// four areas:
//
//  1. [core] - Domain logic (steps, generators, styles, frame rendering)
//  2. [playback] - Timer-driven cursor over a sequence
//  3. [pipeline] - Orchestration (resolve input → generate → cache → render)
//  4. Infrastructure - caching, config, errors, observability, sessions
//
// # Architecture
//
// The typical data flow:
//
//	Algorithm name + Input
//	         ↓
//	    [pipeline] package (validate, look up cache)
//	         ↓
//	    [core/algo] generator (pure function of the input)
//	         ↓
//	    [core/step] Sequence (normalized, immutable)
//	         ↓
//	    [playback] Controller  or  [core/render] frame output
//
// # Quick Start
//
// Generate a sequence and step through it:
//
//	import (
//	    "github.com/matzehuels/dsaviz/pkg/core/algo/search"
//	    "github.com/matzehuels/dsaviz/pkg/core/step"
//	    "github.com/matzehuels/dsaviz/pkg/playback"
//	)
//
//	in := step.Input{Values: []int{1, 3, 5, 7}, Target: 5}
//	seq := search.BinarySearch.Run(in)
//
//	ctl := playback.New(nil)
//	defer ctl.Close()
//	ctl.Load(seq)
//	ctl.StepForward()
//	fmt.Println(ctl.Snapshot().Step.Explanation)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [core/step] - Step, Sequence, Input, highlight tags and the Builder
// generators use to emit steps.
//
// [core/algo] - Algorithm and Topic descriptors plus one subpackage per
// topic (arrays, binary search, linked lists, stacks and queues, strings,
// trees, graphs, recursion, dynamic programming). [core/algo/topics]
// registers them all.
//
// [core/render] - Frame rendering: [core/render/style] maps highlight tags
// to colors, [core/render/nodelink] draws a step as a Graphviz graph.
//
// ## Playback
//
// [playback] - Controller with play/pause, step, seek, speed and reset.
// Listeners observe every state change.
//
// ## Infrastructure
//
// [pipeline] - Runner shared by the CLI and the server. Resolves input,
// generates sequences, caches them and renders frames.
//
// [cache] - Sequence cache backends: file (CLI), Redis, MongoDB, null.
//
// [session] - Registry of live playback sessions served over WebSocket.
//
// [io] - Sequence JSON import and export.
//
// [httputil] - JSON responses, coded errors and request validation for
// the HTTP server.
//
// [config], [errors], [observability], [buildinfo] - Shared configuration,
// coded errors, hooks and metrics, version information.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                # All tests
//	go test ./pkg/core/algo/...      # Generators only
//	go test -run Example ./pkg/...   # Examples only
//
// [core]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/core
// [core/step]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/core/step
// [core/algo]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/core/algo
// [core/algo/topics]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/core/algo/topics
// [core/render]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/core/render
// [core/render/style]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/core/render/style
// [core/render/nodelink]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/core/render/nodelink
// [playback]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/playback
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/cache
// [session]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/session
// [io]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/io
// [httputil]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/httputil
// [config]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dsaviz/pkg/buildinfo
package pkg
