// Package search provides binary search walkthroughs.
//
// Both generators narrow a [lo, hi] window over sorted values. Unsorted
// input is sorted first and the first step says so, because binary search
// is meaningless on unsorted data.
package search
