// Package tree provides binary tree traversal walkthroughs.
//
// Trees are given in heap order: the children of index i live at 2i+1 and
// 2i+2, and the value [Nil] marks a missing node. Items keep that layout
// so renderers can place nodes by index.
package tree
