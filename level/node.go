package level

import "github.com/katalvlaran/sokolve/zone"

// Node is the canonical search state (§4.1, §4.3): a box configuration
// plus the pusher's reachable region. Two states with the same boxes and
// the same reachable region are the same node even if the pusher sits on
// different cells within that region, since the pusher can always move
// freely between any two cells of its own reachable region without
// pushing a box.
type Node struct {
	Boxes *zone.Zone

	// Reach is the set of cells the pusher can stand on without pushing
	// any box, computed by FloodFill from some actual pusher cell.
	Reach *zone.Zone

	// Repr is the lowest zone-bit index in Reach, fixing a canonical
	// representative so Equal and Key don't depend on which cell the
	// flood fill started from.
	Repr int
}

// NewNode builds the canonical Node for boxes with the pusher actually
// standing at pusherZone (a zone-bit index, not a grid index).
func NewNode(lv *Level, boxes *zone.Zone, pusherZone int) *Node {
	reach := FloodFill(lv, boxes, pusherZone)
	repr := -1
	reach.Bits(func(i int) bool {
		repr = i
		return false
	})
	return &Node{Boxes: boxes, Reach: reach, Repr: repr}
}

// FloodFill returns the set of zone-bit cells reachable from start by
// stepping through floor cells not occupied by a box (§4.3). It is the
// hot-path reachability primitive the search core calls once per
// generated successor, implemented directly over zone words: a
// per-state flood fill over a handful of words beats allocating any
// general-purpose graph representation on every expansion.
func FloodFill(lv *Level, boxes *zone.Zone, start int) *zone.Zone {
	reach := zone.New(boxes.Len())
	if start < 0 || boxes.Get(start) {
		return reach
	}
	reach.Set(start)
	stack := make([]int, 0, 64)
	stack = append(stack, start)
	for len(stack) > 0 {
		z := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range Directions {
			nz := lv.AdjZone(z, d)
			if nz < 0 || boxes.Get(nz) || reach.Get(nz) {
				continue
			}
			reach.Set(nz)
			stack = append(stack, nz)
		}
	}
	return reach
}

// Key returns a transposition-table key folding Boxes and Repr together
// (§4.1: hash(node) = fold(boxes) XOR fold(pusher)).
func (nd *Node) Key() uint64 {
	const prime64 = 1099511628211
	h := nd.Boxes.Hash()
	h ^= uint64(nd.Repr+1) * prime64
	return h
}

// Equal reports whether nd and other are the same canonical state: same
// boxes and the same reachable-region representative.
func (nd *Node) Equal(other *Node) bool {
	if other == nil {
		return false
	}
	return nd.Repr == other.Repr && nd.Boxes.Equal(other.Boxes)
}

// CanReach reports whether the pusher can reach zone-bit cell z without
// pushing a box, given the already-computed Reach set.
func (nd *Node) CanReach(z int) bool {
	return z >= 0 && nd.Reach.Get(z)
}

// IsSolved reports whether every goal in goals holds a box.
func (nd *Node) IsSolved(goals *zone.Zone) bool {
	return goals.IsSubsetOf(nd.Boxes)
}
