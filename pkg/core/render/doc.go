// Package render holds output helpers shared by the step renderers.
//
// Subpackages map steps to presentation: [style] is the tag lookup table
// and [nodelink] draws Graphviz frames. This package converts rendered SVG
// into raster and print formats.
package render
