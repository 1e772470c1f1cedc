package deadlock

import "github.com/katalvlaran/sokolve/level"
import "github.com/katalvlaran/sokolve/zone"

// StaticZone precomputes, for a level, every non-goal cell a box can
// never occupy regardless of the rest of the board: simple corners (two
// perpendicular walls) and wall-line runs with no goal anywhere along
// them and closed at both ends, so a box driven onto the line can never
// be freed (§4.8 stratum 1).
func StaticZone(lv *level.Level) *zone.Zone {
	z := zone.New(lv.Map.Len())
	for c := 0; c < lv.Map.Len(); c++ {
		if lv.Goals.Get(c) {
			continue
		}
		if isCorner(lv, c) {
			z.Set(c)
		}
	}

	axes := []struct {
		wallSide   level.Direction
		along, back level.Direction
	}{
		{level.Up, level.Left, level.Right},
		{level.Down, level.Left, level.Right},
		{level.Left, level.Up, level.Down},
		{level.Right, level.Up, level.Down},
	}
	for c := 0; c < lv.Map.Len(); c++ {
		if lv.Goals.Get(c) || z.Get(c) {
			continue
		}
		for _, ax := range axes {
			if lv.AdjZone(c, ax.wallSide) != -1 {
				continue // no wall on this side, not a wall-line cell
			}
			if deadWallLine(lv, c, ax.wallSide, ax.along, ax.back) {
				z.Set(c)
			}
		}
	}
	return z
}

// isCorner reports whether c has a wall on one of Up/Down and a wall on
// one of Left/Right, the classic unescapable-corner shape.
func isCorner(lv *level.Level, c int) bool {
	vertWall := lv.AdjZone(c, level.Up) == -1 || lv.AdjZone(c, level.Down) == -1
	horizWall := lv.AdjZone(c, level.Left) == -1 || lv.AdjZone(c, level.Right) == -1
	return vertWall && horizWall
}

// deadWallLine walks away from c in both directions along a wall line
// (wallSide stays a wall the whole way) and reports whether the line is
// bounded at both ends by a perpendicular wall (so a box can never be
// pushed off either end) and contains no goal anywhere along it.
func deadWallLine(lv *level.Level, c int, wallSide, d1, d2 level.Direction) bool {
	return scanDeadHalf(lv, c, wallSide, d1) && scanDeadHalf(lv, c, wallSide, d2)
}

func scanDeadHalf(lv *level.Level, c int, wallSide, along level.Direction) bool {
	for {
		next := lv.AdjZone(c, along)
		if next == -1 {
			return true // ran into the bounding wall: this end is closed
		}
		if lv.AdjZone(next, wallSide) != -1 {
			return false // the wall line ends before a bounding wall: open end
		}
		if lv.Goals.Get(next) {
			return false // a goal on the line breaks the deadlock
		}
		c = next
	}
}
