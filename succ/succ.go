package succ

import (
	"github.com/katalvlaran/sokolve/boxmove"
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/zone"
)

// Successor is one edge out of a search Node (§4.4). Cost is the number
// of pushes the edge represents: 1 for a single-push successor, k for a
// macro-push successor that delivers a box to a goal in k pushes.
type Successor struct {
	Child *level.Node
	Cost  int

	// BoxFrom and BoxTo are the zone-bit cells the moved box occupied
	// before and after this edge, and Dir is the direction of its final
	// push. Kept alongside Child so move reconstruction (§4.13) doesn't
	// have to diff Boxes sets back out of two Node values.
	BoxFrom, BoxTo int
	Dir            level.Direction
	Macro          bool
}

// Generate returns every successor of node (§4.4): one per valid
// single-cell push of a pusher-reachable box, plus one per macro delivery
// of a pusher-reachable box straight onto a goal at maximal priority.
func Generate(lv *level.Level, goals *zone.Zone, node *level.Node) []Successor {
	out := make([]Successor, 0, 8)
	priority := goalPriority(lv, goals, node.Boxes)

	var bestGoalPriority = -1
	type macroCandidate struct {
		box, goal int
		cost      int
		dir       level.Direction
	}
	macros := make([]macroCandidate, 0, 8)

	node.Boxes.Bits(func(b int) bool {
		out = append(out, singlePushes(lv, node, b)...)

		if !hasPusherApproach(lv, node, b) {
			return true
		}
		obstacles := node.Boxes.Clone()
		obstacles.Clear(b)
		result := boxmove.Distances(lv, obstacles, node.Reach, b)

		goals.Bits(func(g int) bool {
			if node.Boxes.Get(g) {
				return true // already occupied, not a valid destination
			}
			cost := result.MinOf[g]
			if cost >= boxmove.Infinity {
				return true
			}
			dir, ok := result.ArrivalDir(g)
			if !ok {
				return true
			}
			p := priority[g]
			if p > bestGoalPriority {
				bestGoalPriority = p
			}
			macros = append(macros, macroCandidate{box: b, goal: g, cost: cost, dir: dir})
			return true
		})
		return true
	})

	for _, m := range macros {
		if priority[m.goal] != bestGoalPriority {
			continue
		}
		childBoxes := node.Boxes.Clone()
		childBoxes.Clear(m.box)
		childBoxes.Set(m.goal)
		pusherFinal := lv.AdjZone(m.goal, m.dir.Opposite())
		child := level.NewNode(lv, childBoxes, pusherFinal)
		out = append(out, Successor{
			Child:   child,
			Cost:    m.cost,
			BoxFrom: m.box,
			BoxTo:   m.goal,
			Dir:     m.dir,
			Macro:   true,
		})
	}

	return out
}

// singlePushes emits the single-cell push successors for box b (§4.4).
func singlePushes(lv *level.Level, node *level.Node, b int) []Successor {
	out := make([]Successor, 0, 4)
	for _, d := range level.Directions {
		behind := lv.AdjZone(b, d.Opposite())
		if behind < 0 || !node.Reach.Get(behind) {
			continue
		}
		ahead := lv.AdjZone(b, d)
		if ahead < 0 || node.Boxes.Get(ahead) {
			continue
		}
		childBoxes := node.Boxes.Clone()
		childBoxes.Clear(b)
		childBoxes.Set(ahead)
		child := level.NewNode(lv, childBoxes, b)
		out = append(out, Successor{
			Child:   child,
			Cost:    1,
			BoxFrom: b,
			BoxTo:   ahead,
			Dir:     d,
		})
	}
	return out
}

// hasPusherApproach reports whether the pusher can stand behind box b in
// at least one direction, the precondition for running the box's Dijkstra
// at all: a box with no reachable approach cell can never be the first
// push of a macro chain.
func hasPusherApproach(lv *level.Level, node *level.Node, b int) bool {
	for _, d := range level.Directions {
		behind := lv.AdjZone(b, d.Opposite())
		if behind >= 0 && node.Reach.Get(behind) {
			return true
		}
	}
	return false
}

// goalPriority computes, for every goal bit, the number of its four
// neighbors that are a wall or a current box (§4.4): forcing deliveries to
// the goals under the most geometric pressure first preserves optimality
// while narrowing the branching factor.
func goalPriority(lv *level.Level, goals, boxes *zone.Zone) map[int]int {
	out := make(map[int]int, goals.Popcount())
	goals.Bits(func(g int) bool {
		p := 0
		for _, d := range level.Directions {
			n := lv.AdjZone(g, d)
			if n < 0 || boxes.Get(n) {
				p++
			}
		}
		out[g] = p
		return true
	})
	return out
}
