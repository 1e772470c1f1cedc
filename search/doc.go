// Package search implements the transposition-table search tree (§4.10):
// TreeNode ownership of Node, the open table of already-expanded nodes,
// the close table plus its min-heap of frontier nodes, duplicate
// handling (reparenting, in-place f/g updates), and dead-branch garbage
// collection. The open table's soft capacity is enforced by a
// github.com/hashicorp/golang-lru/v2 cache whose eviction callback runs
// the dead-branch GC for the evicted node, reusing the library's LRU
// policy instead of hand-rolling one; the close table keeps the
// heap-ordered frontier a plain LRU cannot give.
package search
