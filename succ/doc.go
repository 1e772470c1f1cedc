// Package succ generates search successors for a single state (§4.4): the
// single-push successors obtained by moving one pusher-reachable box one
// cell, and the macro-push successors obtained by running the per-box
// Dijkstra in github.com/katalvlaran/sokolve/boxmove to deliver a box
// straight onto a goal in one edge. Macro successors are filtered down to
// the goals under the greatest delivery pressure in the current state, so
// the branching factor collapses as the board empties toward a solution.
package succ
