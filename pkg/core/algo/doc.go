// Package algo defines topics and the algorithms registered under them.
//
// A [Topic] groups related walkthroughs (linked lists, graphs, dynamic
// programming...) together with a description of the technique. Each
// [Algorithm] pairs a pure step generator with the default input it is
// demonstrated on.
//
// The generator contract is strict:
//
//   - pure: no side effects, no shared state between runs
//   - total: terminates for every finite input, including empty input
//   - explanatory: degenerate or invalid input yields a single terminal
//     step explaining why, never an error or panic
//
// Individual topic packages (search, linkedlist, graph, ...) import this
// package and export a Topic value. The canonical list lives in
// [github.com/matzehuels/dsaviz/pkg/core/algo/topics], which exists to
// break the import cycle.
package algo
