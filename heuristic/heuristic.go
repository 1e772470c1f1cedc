package heuristic

import (
	"fmt"

	"github.com/katalvlaran/sokolve/costtable"
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/penalty"
)

// Infinity marks a state whose box-to-goal assignment has no finite
// solution at all: the state is provably unsolvable (§4.7).
const Infinity = costtable.Infinity

// Config bundles the per-level data Compute needs: the goal-cost table
// (§4.6) and the confirmed penalty database (§4.9). Penalties may be
// nil early in a solving session, before any have been discovered.
type Config struct {
	Table     *costtable.Table
	Penalties *penalty.Database
}

// Compute returns h(n) for node (§4.7): the Hungarian assignment lower
// bound over boxes-to-goals plus the penalty database's contribution,
// saturated at Infinity. The error return exists so the search loop
// never panics (§7): feasible cannot actually fail once it is a closed
// form bipartite match over the level's own box/goal indices rather
// than a constructed flow network, but Compute still reports a failure
// as an error instead of a panic, matching every other search-facing
// function in this module.
func Compute(cfg Config, node *level.Node) (int, error) {
	boxes := node.Boxes.Indices()
	goals := cfg.Table.Goals
	if len(boxes) == 0 {
		return 0, nil
	}
	ok, err := feasible(boxes, goals, cfg.Table)
	if err != nil {
		return 0, fmt.Errorf("heuristic: compute: %w", err)
	}
	if !ok {
		return Infinity, nil
	}

	n := len(boxes)
	if len(goals) > n {
		n = len(goals)
	}
	matrix := make([][]int, n)
	for i := range matrix {
		matrix[i] = make([]int, n)
		for j := range matrix[i] {
			switch {
			case i >= len(boxes) || j >= len(goals):
				matrix[i][j] = bigCost
			default:
				c := cfg.Table.Cost[boxes[i]][j]
				if c >= costtable.Infinity {
					matrix[i][j] = bigCost
				} else {
					matrix[i][j] = c
				}
			}
		}
	}

	_, total := solveAssignment(matrix)
	if total >= bigCost/2 {
		return Infinity, nil
	}

	if cfg.Penalties != nil {
		total += cfg.Penalties.Match(node.Boxes, node.Reach)
	}
	if total >= Infinity {
		return Infinity, nil
	}
	return total, nil
}

// feasible reports whether every box can be matched to a distinct
// finite-cost goal (§4.7), via Kuhn's augmenting-path algorithm over the
// bipartite box/goal adjacency implied by table.Cost. boxes and goals
// are already dense small integer indices, so the check runs directly
// over a plain adjacency list rather than building a source/box/
// goal/sink flow network — there is no vertex ID, no graph construction
// step, and so no failure mode for the error return to ever carry.
func feasible(boxes, goals []int, table *costtable.Table) (bool, error) {
	adj := make([][]int, len(boxes))
	for i, box := range boxes {
		for j := range goals {
			if table.Cost[box][j] < costtable.Infinity {
				adj[i] = append(adj[i], j)
			}
		}
	}

	matchOf := make([]int, len(goals))
	for j := range matchOf {
		matchOf[j] = -1
	}

	matched := 0
	for i := range boxes {
		visited := make([]bool, len(goals))
		if augment(i, adj, visited, matchOf) {
			matched++
		}
	}
	return matched == len(boxes), nil
}

// augment looks for an augmenting path out of box i, displacing an
// already-matched goal into its next alternative when one exists.
// visited guards against revisiting a goal within the same search.
func augment(i int, adj [][]int, visited []bool, matchOf []int) bool {
	for _, j := range adj[i] {
		if visited[j] {
			continue
		}
		visited[j] = true
		if matchOf[j] == -1 || augment(matchOf[j], adj, visited, matchOf) {
			matchOf[j] = i
			return true
		}
	}
	return false
}
