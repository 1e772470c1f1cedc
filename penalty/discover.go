package penalty

import (
	"math"

	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/zone"
)

// Infinity is the cost-limit sentinel used to ask SubSolve for an
// unbounded-optimal solve during the validation pass.
const Infinity = math.MaxInt32 / 2

// SubSolve runs a cost-bounded solve of lv restricted to boxes and
// goals, with the pusher starting at pusherZone, and reports whether a
// solution exists within costLimit and, if so, its exact cost. Discover
// is solver-agnostic: the caller supplies this callback (ordinarily
// backed by github.com/katalvlaran/sokolve/astar) so this package never
// imports the search core, which itself depends on penalty for h(n).
type SubSolve func(lv *level.Level, goals, boxes *zone.Zone, pusherZone, costLimit int) (solved bool, cost int)

// BaseHeuristic computes h_base for a box placement (ordinarily backed
// by github.com/katalvlaran/sokolve/heuristic's assignment cost, without
// the penalty contribution Discover is in the middle of building).
type BaseHeuristic func(lv *level.Level, boxes *zone.Zone) int

// Options configures a Discover run.
type Options struct {
	// Candidates restricts which zone cells may hold a discovery box;
	// astar passes the cells within a few AdjZone hops of the last-pushed
	// box rather than the full zone, since the combinatorial space
	// grows as C(len(Candidates), k).
	Candidates []int

	// MaxBoxes is the largest sub-state box count to test (k in §4.9).
	MaxBoxes int

	// QuickStride, if > 0, tests only every QuickStride-th goal
	// combination in the validation pass instead of all of them,
	// trading the tight-value guarantee for speed (§4.9 quick-valid mode).
	QuickStride int
}

// Discover runs the penalty discovery loop (§4.9) over lv and returns a
// Database of confirmed penalties.
func Discover(lv *level.Level, goals *zone.Zone, opts Options, solve SubSolve, baseH BaseHeuristic) *Database {
	type task struct {
		boxCells []int
	}

	queue := make([]task, 0, 64)
	for k := 1; k <= opts.MaxBoxes; k++ {
		forEachCombination(opts.Candidates, k, func(combo []int) {
			queue = append(queue, task{boxCells: append([]int(nil), combo...)})
		})
	}

	seen := make(map[string]bool, len(queue))
	var entries []Entry

	for head := 0; head < len(queue); head++ {
		t := queue[head]
		key := comboKey(t.boxCells)
		if seen[key] {
			continue
		}
		seen[key] = true

		boxes := zone.New(lv.Map.Len())
		for _, c := range t.boxCells {
			boxes.Set(c)
		}

		for _, pusherZone := range approachCells(lv, boxes) {
			reach := level.FloodFill(lv, boxes, pusherZone)
			if reach.Popcount() <= 1 {
				continue // useless-penalty filter: no agency to test
			}

			limit := baseH(lv, boxes)
			if limit >= Infinity {
				continue
			}
			if solved, _ := solve(lv, goals, boxes, pusherZone, limit); solved {
				continue // no penalty: a within-bound solution exists
			}

			tight := tightValue(lv, boxes, pusherZone, len(t.boxCells), goals, opts.QuickStride, solve)
			excess := tight - limit
			if excess <= 0 {
				continue
			}
			entries = append(entries, Entry{
				State: level.NewNode(lv, boxes, pusherZone),
				Value: excess,
			})

			if len(t.boxCells) > 1 {
				forEachCombination(t.boxCells, len(t.boxCells)-1, func(sub []int) {
					queue = append(queue, task{boxCells: append([]int(nil), sub...)})
				})
			}
		}
	}

	return NewDatabase(entries)
}

// tightValue re-solves the sub-state's box placement against every
// combination of len(boxCells) goals drawn from goals (or, in
// quick-valid mode, a stride of them), returning the minimum achievable
// cost across combinations (§4.9 validation pass).
func tightValue(lv *level.Level, boxes *zone.Zone, pusherZone, k int, goals *zone.Zone, stride int, solve SubSolve) int {
	best := Infinity
	idx := 0
	forEachCombination(goals.Indices(), k, func(combo []int) {
		idx++
		if stride > 0 && idx%stride != 0 {
			return
		}
		miniGoals := zone.New(lv.Map.Len())
		for _, g := range combo {
			miniGoals.Set(g)
		}
		if _, cost := solve(lv, miniGoals, boxes, pusherZone, Infinity); cost < best {
			best = cost
		}
	})
	return best
}

// approachCells returns every zone cell from which the pusher could
// plausibly start relative to boxes: every cell adjacent to at least one
// box. A pusher seeded anywhere else contributes nothing a box-adjacent
// seed doesn't already cover, since the pusher must approach a box to
// push it.
func approachCells(lv *level.Level, boxes *zone.Zone) []int {
	seen := make(map[int]bool)
	var out []int
	boxes.Bits(func(b int) bool {
		for _, d := range level.Directions {
			n := lv.AdjZone(b, d)
			if n < 0 || boxes.Get(n) || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
		return true
	})
	return out
}

// forEachCombination invokes fn once per k-element subset of items, in
// lexicographic index order.
func forEachCombination(items []int, k int, fn func(combo []int)) {
	n := len(items)
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	combo := make([]int, k)
	for {
		for i, x := range idx {
			combo[i] = items[x]
		}
		fn(combo)

		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func comboKey(cells []int) string {
	b := make([]byte, 0, len(cells)*5)
	for _, c := range cells {
		b = append(b, byte(c), byte(c>>8), byte(c>>16), byte(c>>24), ',')
	}
	return string(b)
}
