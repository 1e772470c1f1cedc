// Package bfsstrategy is a brute-force correctness oracle: plain
// breadth-first search over the box-push state space, ignoring every
// heuristic, deadlock, and penalty optimization the primary solver
// relies on. It exists to cross-check the optimal push count the
// bounded-A*/IDA* search reports, on levels small enough for exhaustive
// exploration to finish quickly.
package bfsstrategy
