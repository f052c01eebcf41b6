// Package nodelink renders single steps as Graphviz node-link diagrams.
//
// # Overview
//
// Each element of a step becomes a node filled with the color of its
// highlight tag (see package style). Edges depend on the layout:
//
//   - list: one arrow per Links entry, so reversed arrows show up as they
//     are rewired
//   - tree: parent to child edges of the heap-ordered array
//   - graph: the undirected input edges
//   - anything else: elements in a single row joined by invisible edges
//
// Named pointers (slow, fast, lo, hi...) are drawn as small plaintext
// nodes pointing at the element they reference.
//
// # Usage
//
//	dot := nodelink.ToDOT(seq.At(3), nodelink.Options{Layout: algo.DisplayList})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
