package deadlock

import (
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/zone"
)

// blocked reports whether zone-bit cell c is wall, off-board, or holds a
// box — the three cell kinds a frozen-square test treats as immovable.
func blocked(lv *level.Level, boxes *zone.Zone, c int) bool {
	return c == -1 || boxes.Get(c)
}

// nonGoalBox reports whether c holds a box not already sitting on a goal.
func nonGoalBox(goals, boxes *zone.Zone, c int) bool {
	return c != -1 && boxes.Get(c) && !goals.Get(c)
}

// quadrants lists the four 2x2 squares containing p, each as the two
// directions stepping away from p to its other three corners.
var quadrants = [4][2]level.Direction{
	{level.Up, level.Left},
	{level.Up, level.Right},
	{level.Down, level.Left},
	{level.Down, level.Right},
}

// FrozenByLastMove reports whether pushing a box onto cell p (§4.8
// stratum 2) immediately freezes it: a 2x2 square containing p where
// every cell is wall/off-board/box and at least one is a non-goal box,
// or a Z-shaped pair of boxes each pinned by a wall on one axis and by
// the other box on the perpendicular axis.
func FrozenByLastMove(lv *level.Level, goals, boxes *zone.Zone, p int) bool {
	for _, q := range quadrants {
		b := lv.AdjZone(p, q[0])
		cc := lv.AdjZone(p, q[1])
		var d int
		if b != -1 {
			d = lv.AdjZone(b, q[1])
		} else if cc != -1 {
			d = lv.AdjZone(cc, q[0])
		} else {
			d = -1
		}
		if !blocked(lv, boxes, b) || !blocked(lv, boxes, cc) || !blocked(lv, boxes, d) {
			continue
		}
		if nonGoalBox(goals, boxes, p) || nonGoalBox(goals, boxes, b) ||
			nonGoalBox(goals, boxes, cc) || nonGoalBox(goals, boxes, d) {
			return true
		}
	}
	return zFrozen(lv, goals, boxes, p)
}

// zFrozen tests the Z-shaped freeze: p is pinned along one axis by a
// wall and along the other by a neighboring box q, and q is in turn
// pinned along its own first axis by a wall and along the second by p.
func zFrozen(lv *level.Level, goals, boxes *zone.Zone, p int) bool {
	if goals.Get(p) {
		return false
	}
	horiz := [2]level.Direction{level.Left, level.Right}
	vert := [2]level.Direction{level.Up, level.Down}
	axisPairs := [2][2][2]level.Direction{{horiz, vert}, {vert, horiz}}

	for _, ap := range axisPairs {
		pinAxis, neighborAxis := ap[0], ap[1]
		if !wallPinned(lv, p, pinAxis) {
			continue
		}
		for _, d := range neighborAxis {
			q := lv.AdjZone(p, d)
			if q == -1 || !boxes.Get(q) || goals.Get(q) {
				continue
			}
			if wallPinned(lv, q, pinAxis) {
				return true
			}
		}
	}
	return false
}

// wallPinned reports whether both ends of axis from c are a wall.
func wallPinned(lv *level.Level, c int, axis [2]level.Direction) bool {
	return lv.AdjZone(c, axis[0]) == -1 && lv.AdjZone(c, axis[1]) == -1
}
