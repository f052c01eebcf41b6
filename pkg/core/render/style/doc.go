// Package style maps highlight tags to presentation attributes.
//
// The mapping is a fixed lookup table shared by every renderer: the
// terminal view, the Graphviz frames and the JSON served to browsers. A tag
// that is missing from the table, including the empty tag, falls back to
// [Default] instead of failing.
package style
