package boxmove

import (
	"math"

	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/zone"
)

// Infinity marks a cell the box can never be pushed to.
const Infinity = math.MaxInt32

// pushState packs a destination cell and the direction it was last pushed
// from into one queue entry.
type pushState struct {
	cell int
	dir  level.Direction
}

// Result is the output of Distances: per-cell minimum push counts, plus
// enough detail to recover which direction achieved that minimum (needed
// to know where the pusher ends up standing after the delivery) and the
// full per-push chain back to the start (needed for move reconstruction,
// §4.13, when a macro delivery takes more than one push).
type Result struct {
	z     int
	dist  []int       // dist[cell*4+dir]
	via   []pushState // via[cell*4+dir]: the push that preceded this one, cell == -1 at chain start
	MinOf []int       // MinOf[cell], Infinity if unreachable
}

// ArrivalDir returns the direction whose push achieved MinOf[cell], or
// false if cell is unreachable.
func (r *Result) ArrivalDir(cell int) (level.Direction, bool) {
	best := Infinity
	var bestDir level.Direction
	found := false
	for d := 0; d < 4; d++ {
		v := r.dist[cell*4+d]
		if v < best {
			best = v
			bestDir = level.Direction(d)
			found = true
		}
	}
	return bestDir, found
}

// Path walks the chain of individual pushes that delivers the box to
// cell at minimum cost, returning the destination cell and direction of
// each push in forward order (§4.13: a macro successor's Cost pushes
// each need their own move-string letter). Returns false if cell is
// unreachable.
func (r *Result) Path(cell int) (cells []int, dirs []level.Direction, ok bool) {
	dir, found := r.ArrivalDir(cell)
	if !found {
		return nil, nil, false
	}
	cur, curDir := cell, dir
	for {
		pv := r.via[cur*4+int(curDir)]
		if pv.cell < 0 {
			break // cur is a virtual source, not an executed push: stop without it
		}
		cells = append(cells, cur)
		dirs = append(dirs, curDir)
		cur, curDir = pv.cell, pv.dir
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return cells, dirs, true
}

// Distances returns, for every zone cell, the minimum number of pushes
// needed to move a box from boxZone to that cell. obstacles holds every
// other box on the board (boxZone must NOT be set in it); cells occupied
// by obstacles, and walls, are never reachable as intermediate or final
// box positions. pusherReach is the pusher's actual reachable region in
// the current state (from level.FloodFill), used to validate the four
// initial pushes; every push after the first re-derives reachability from
// the board as the box moves. Unreachable cells hold Infinity.
func Distances(lv *level.Level, obstacles, pusherReach *zone.Zone, boxZone int) *Result {
	z := obstacles.Len()
	dist := make([]int, z*4)
	via := make([]pushState, z*4)
	for i := range dist {
		dist[i] = Infinity
		via[i] = pushState{cell: -1}
	}

	queue := make([]pushState, 0, 16)
	for _, d := range level.Directions {
		behind := lv.AdjZone(boxZone, d.Opposite())
		if behind < 0 || obstacles.Get(behind) || !pusherReach.Get(behind) {
			continue
		}
		idx := boxZone*4 + int(d)
		dist[idx] = 0
		queue = append(queue, pushState{cell: boxZone, dir: d})
	}

	boardWithBox := obstacles.Clone()
	for head := 0; head < len(queue); head++ {
		st := queue[head]
		v := dist[st.cell*4+int(st.dir)]

		boardWithBox.SetTo(st.cell, true)
		seed := lv.AdjZone(st.cell, st.dir.Opposite())
		reach := level.FloodFill(lv, boardWithBox, seed)

		for _, nd := range level.Directions {
			next := lv.AdjZone(st.cell, nd)
			if next < 0 || next == st.cell || obstacles.Get(next) {
				continue
			}
			behindNext := lv.AdjZone(st.cell, nd.Opposite())
			if behindNext < 0 || obstacles.Get(behindNext) || !reach.Get(behindNext) {
				continue
			}
			nIdx := next*4 + int(nd)
			if v+1 < dist[nIdx] {
				dist[nIdx] = v + 1
				via[nIdx] = st
				queue = append(queue, pushState{cell: next, dir: nd})
			}
		}
		boardWithBox.SetTo(st.cell, false)
	}

	minOf := make([]int, z)
	for c := 0; c < z; c++ {
		best := Infinity
		for d := 0; d < 4; d++ {
			if dist[c*4+d] < best {
				best = dist[c*4+d]
			}
		}
		minOf[c] = best
	}
	return &Result{z: z, dist: dist, via: via, MinOf: minOf}
}
