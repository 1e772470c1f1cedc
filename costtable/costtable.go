package costtable

import (
	"math"

	"github.com/katalvlaran/sokolve/level"
)

// Infinity marks a (cell, goal) pair with no feasible single-box push path.
const Infinity = math.MaxInt32

// Table holds, for every zone cell and every goal, a lower bound on the
// number of pushes to deliver a lone box from that cell to that goal on an
// otherwise-empty board (§4.6). Whether the pusher can get around the box
// to the cell behind each push is not checked.
type Table struct {
	Goals []int   // zone-bit indices of the level's goals, in a fixed order
	Cost  [][]int // Cost[cell][goalIndex]
}

// Min returns the minimum entry of Cost[cell] across all goals, or
// Infinity if cell cannot reach any goal.
func (t *Table) Min(cell int) int {
	best := Infinity
	for _, c := range t.Cost[cell] {
		if c < best {
			best = c
		}
	}
	return best
}

// Build computes the goal-cost table for lv: for every goal, a plain
// breadth-first walk backward from that goal over the board's push
// adjacency, mirroring boxmove.Distances's own FIFO-queue style rather
// than routing through a weighted-graph shortest-path solver, since
// every push costs exactly 1 and BFS already finds shortest paths in an
// unweighted graph.
func Build(lv *level.Level) (*Table, error) {
	z := lv.Map.Len()
	goals := lv.Goals.Indices()
	cost := make([][]int, z)
	for c := range cost {
		cost[c] = make([]int, len(goals))
	}

	for gi, goalZone := range goals {
		dist := bfsFromGoal(lv, z, goalZone)
		for c := 0; c < z; c++ {
			cost[c][gi] = dist[c]
		}
	}

	return &Table{Goals: goals, Cost: cost}, nil
}

// bfsFromGoal returns, for every zone cell, the fewest pushes that
// deliver a lone box from that cell to goalZone when every push whose
// behind-cell is floor counts as possible. It walks backward from
// goalZone: a box at src is taken to be pushable to cur in direction d iff
// cur == AdjZone(src, d) and AdjZone(src, d.Opposite()) is a floor cell
// (the pusher's path to that cell is not checked), so relaxing from cur
// to src along every direction's reverse is exactly the reversed-edge
// graph the original push relation implies, without building one.
func bfsFromGoal(lv *level.Level, z, goalZone int) []int {
	dist := make([]int, z)
	for c := range dist {
		dist[c] = Infinity
	}
	dist[goalZone] = 0

	queue := make([]int, 0, 16)
	queue = append(queue, goalZone)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, d := range level.Directions {
			src := lv.AdjZone(cur, d.Opposite())
			if src < 0 {
				continue
			}
			behind := lv.AdjZone(src, d.Opposite())
			if behind < 0 {
				continue
			}
			if dist[cur]+1 < dist[src] {
				dist[src] = dist[cur] + 1
				queue = append(queue, src)
			}
		}
	}
	return dist
}

// Restrict returns a new Table holding only the columns for goalCells,
// in that order. The penalty discovery pass (§4.9) solves sub-boards
// against a goal subset smaller than the level's full Goals, and
// heuristic.Compute always assigns against whatever goal list its Table
// carries, so the sub-solver needs its own narrowed view rather than t
// itself.
func (t *Table) Restrict(goalCells []int) *Table {
	colOf := make(map[int]int, len(t.Goals))
	for gi, g := range t.Goals {
		colOf[g] = gi
	}
	cost := make([][]int, len(t.Cost))
	for c, row := range t.Cost {
		out := make([]int, len(goalCells))
		for j, g := range goalCells {
			if gi, ok := colOf[g]; ok {
				out[j] = row[gi]
			} else {
				out[j] = Infinity
			}
		}
		cost[c] = out
	}
	return &Table{Goals: append([]int(nil), goalCells...), Cost: cost}
}
