// Package costtable builds the per-level goal-cost matrix (§4.6): for
// every zone cell, a lower bound on the number of pushes needed to deliver
// a single box sitting there to each goal, computed on an otherwise-empty
// board.
//
// This is a one-time, per-level precomputation, unlike boxmove.Distances
// which the search core calls live, per expansion, for macro-push
// successors against the current board's obstacles. No flood fill is run
// per push: a push counts as possible whenever the cell behind the box is
// floor, without checking that the pusher can walk there around the box
// itself, so an entry can be smaller than the true single-box push count
// (or finite where no push sequence exists). Table is built the same way
// boxmove.Distances is: a plain FIFO-queue breadth-first walk over the
// board's push adjacency, run once per goal, backward from the goal
// cell, since every push costs exactly 1 and BFS already finds shortest
// paths in an unweighted graph.
package costtable
