package deadlock

import (
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/zone"
)

// region is one connected component of floor cells that are neither
// occupied by a box nor part of the pusher's own reachable component.
type region struct {
	cells *zone.Zone
}

// hasBlockedZone enumerates candidate blocked sub-regions (§4.8 stratum
// 3) over the base regions the board splits into once boxes and the
// pusher's own component are removed. Each base region yields one
// candidate: the union of that region with every region reachable from
// it across up to MaxJunctions single-box junctions, so a base region
// with a junction neighbour is not tested on its own. Unions are
// explored with a bounded-depth DFS directly over a region adjacency
// list: regions are already dense small integer indices, so no vertex
// ID or generic graph is built for what is, underneath, a handful of
// regions per level.
func (d *Detector) hasBlockedZone(boxes, reach *zone.Zone, depth int) bool {
	regions := baseRegions(d.lv, boxes, reach)
	if len(regions) == 0 {
		return false
	}

	adj := make([][]int, len(regions))
	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			if junctionBox(d.lv, boxes, regions[i].cells, regions[j].cells) >= 0 {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	generated := 0
	for i := range regions {
		if generated >= d.MaxZonesGenerated {
			break
		}
		order := reachableRegions(adj, i, d.MaxJunctions)
		union := regions[i].cells.Clone()
		for _, j := range order {
			union.OrWith(regions[j].cells)
		}
		generated++
		if d.isBlockedUnion(boxes, reach, union, depth) {
			return true
		}
	}
	return false
}

// reachableRegions returns, in visit order, every region reachable from
// start within maxDepth adjacency hops: a region at exactly maxDepth is
// still visited, but its own neighbors are not explored further,
// matching the boundary the teacher's depth-limited DFS walk used.
func reachableRegions(adj [][]int, start, maxDepth int) []int {
	visited := make([]bool, len(adj))
	var order []int
	var walk func(node, depth int)
	walk = func(node, depth int) {
		if visited[node] {
			return
		}
		visited[node] = true
		order = append(order, node)
		if depth >= maxDepth {
			return
		}
		for _, next := range adj[node] {
			walk(next, depth+1)
		}
	}
	walk(start, 0)
	return order
}

// baseRegions returns the connected components of "floor, not a box,
// not in reach", using the same flood-fill primitive the search core
// uses for pusher reachability: two cells are in the same region iff a
// pusher standing on one could reach the other without crossing a box,
// and neither lies in the actual pusher's own component.
func baseRegions(lv *level.Level, boxes, reach *zone.Zone) []region {
	seen := zone.New(boxes.Len())
	var out []region
	for c := 0; c < boxes.Len(); c++ {
		if boxes.Get(c) || reach.Get(c) || seen.Get(c) {
			continue
		}
		comp := level.FloodFill(lv, boxes, c)
		seen.OrWith(comp)
		out = append(out, region{cells: comp})
	}
	return out
}

// junctionBox returns a box zone-bit adjacent to both a and b, treating
// that box as the single-cell bridge joining the two regions, or -1 if
// no such box exists.
func junctionBox(lv *level.Level, boxes, a, b *zone.Zone) int {
	result := -1
	boxes.Bits(func(box int) bool {
		touchesA, touchesB := false, false
		for _, d := range level.Directions {
			n := lv.AdjZone(box, d)
			if n < 0 {
				continue
			}
			if a.Get(n) {
				touchesA = true
			}
			if b.Get(n) {
				touchesB = true
			}
		}
		if touchesA && touchesB {
			result = box
			return false
		}
		return true
	})
	return result
}

// isBlockedUnion tests whether union is a blocked zone (§4.8 stratum 3):
// it holds no goal, and every box touching its boundary can only ever be
// pushed further into it, with each such forced push itself leading to
// a deadlocked state.
func (d *Detector) isBlockedUnion(boxes, reach, union *zone.Zone, depth int) bool {
	if !zone.And(d.goals, union).IsEmpty() {
		return false
	}

	var boundary []int
	boxes.Bits(func(box int) bool {
		for _, dir := range level.Directions {
			n := d.lv.AdjZone(box, dir)
			if n >= 0 && union.Get(n) {
				boundary = append(boundary, box)
				return true
			}
		}
		return true
	})
	if len(boundary) == 0 {
		return false
	}

	var forcedPushes []func() (*zone.Zone, *zone.Zone)
	for _, box := range boundary {
		obstacles := boxes.Clone()
		obstacles.Clear(box)
		for _, dir := range level.Directions {
			behind := d.lv.AdjZone(box, dir.Opposite())
			if behind < 0 || !reach.Get(behind) {
				continue
			}
			ahead := d.lv.AdjZone(box, dir)
			if ahead < 0 || obstacles.Get(ahead) {
				continue
			}
			if !union.Get(ahead) {
				return false // this box has an escape route out of union
			}
			box, ahead := box, ahead
			forcedPushes = append(forcedPushes, func() (*zone.Zone, *zone.Zone) {
				childBoxes := obstacles.Clone()
				childBoxes.Set(ahead)
				childReach := level.FloodFill(d.lv, childBoxes, box)
				return childBoxes, childReach
			})
		}
	}
	if len(forcedPushes) == 0 {
		return false // every boundary box is frozen in place, nothing funnels in
	}
	for _, push := range forcedPushes {
		childBoxes, childReach := push()
		if !d.check(childBoxes, childReach, -1, depth+1) {
			return false
		}
	}
	return true
}
