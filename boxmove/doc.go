// Package boxmove computes, for a single box on an otherwise-fixed board,
// the minimum number of pushes needed to move it from its current cell to
// every other cell (§4.5, the box-push Dijkstra).
//
// The search space is cells × {last-push-direction}: a state (c, d) means
// the box sits on c and was last pushed in direction d, so the pusher is
// standing on the cell behind c relative to d. Every edge weight is 1, so
// the frontier degenerates to a BFS layered by push count; Distances still
// walks it with an explicit distance array rather than container/heap,
// since a plain FIFO queue already processes states in non-decreasing
// distance order when every edge costs the same.
//
// Reachability of the pusher's "behind" cell before each push is checked
// with level.FloodFill on the hypothetical board where the box has already
// arrived at its current cell — the same primitive the search core uses
// for ordinary successor generation (§4.3).
package boxmove
