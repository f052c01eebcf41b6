// Package dp provides bottom-up dynamic programming walkthroughs. Each
// step snapshots the table as it fills; unfilled cells hold [Unfilled].
package dp
