// Package graph provides breadth-first and depth-first search walkthroughs
// over small undirected graphs.
//
// The graph is built from the input edge list. Node ids are 0..n-1 where n
// is one more than the largest id mentioned by any edge, and neighbors are
// visited in ascending id order so every run is deterministic.
package graph
