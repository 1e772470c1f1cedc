package search

import "github.com/katalvlaran/sokolve/level"

// Strategy is a box-push solver that reports only a push count, not a
// move string or search statistics. The primary bounded-A*/IDA* search
// is not a Strategy (it needs the fuller heuristic/deadlock/penalty
// configuration wired through solve.Solve); Strategy exists so a cheap
// brute-force oracle can be swapped in against the same start state for
// cross-checking on small levels.
type Strategy interface {
	// Solve reports the optimal push count from start, whether a
	// solution exists at all, and an error if the search itself failed
	// (as opposed to legitimately finding no solution).
	Solve(lv *level.Level, start *level.Node) (pushes int, solved bool, err error)
}
