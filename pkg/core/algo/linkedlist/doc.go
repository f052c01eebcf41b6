// Package linkedlist provides singly linked list walkthroughs: reversal in
// several flavors, middle finding and Floyd cycle detection.
//
// Lists are modeled as two parallel slices: Items holds node values by
// node id and Links holds each node's successor id (or step.Absent). Node
// ids never move, so renderers can keep nodes in place and redraw only the
// arrows as pointers flip.
//
// Recursive reversal is simulated, not executed: the descent and unwind
// frames are materialized as explicit steps so the whole walkthrough can be
// replayed in either direction.
package linkedlist
