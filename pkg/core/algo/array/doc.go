// Package array provides array technique walkthroughs: a fixed-size
// sliding window and the two-pointer pair search.
package array
