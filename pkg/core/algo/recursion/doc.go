// Package recursion provides walkthroughs that show a call stack growing
// and shrinking. Recursion is materialized as Descend frames followed by
// Unwind frames; no generator actually recurses.
package recursion
