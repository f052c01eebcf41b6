// Package strs provides string walkthroughs. Items hold the runes of the
// input text, so renderers draw them as characters.
package strs
