package deadlock_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokolve/deadlock"
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/zone"
)

func parseGrid(rows ...string) [][]level.Cell {
	out := make([][]level.Cell, len(rows))
	for r, row := range rows {
		out[r] = make([]level.Cell, len(row))
		for c, ch := range row {
			switch ch {
			case '#':
				out[r][c] = level.Wall
			case ' ':
				out[r][c] = level.Floor
			case '.':
				out[r][c] = level.Goal
			case '$':
				out[r][c] = level.Box
			case '@':
				out[r][c] = level.Pusher
			default:
				out[r][c] = level.Outside
			}
		}
	}
	return out
}

func TestStaticZoneFlagsNonGoalCorner(t *testing.T) {
	grid := parseGrid(
		"####",
		"#@.#",
		"# $#",
		"####",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	sz := deadlock.StaticZone(lv)
	cornerZone := lv.Map.ToZone(lv.GridIndex(2, 1))
	require.True(t, sz.Get(cornerZone))

	goalZone := lv.Map.ToZone(lv.GridIndex(1, 2))
	require.False(t, sz.Get(goalZone))
}

func TestIsDeadlockedDetectsBoxPushedIntoCorner(t *testing.T) {
	grid := parseGrid(
		"#####",
		"#@ $#",
		"#  .#",
		"#####",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	det := deadlock.New(lv, lv.Goals)

	boxes := zone.New(lv.Map.Len())
	cornerZone := lv.Map.ToZone(lv.GridIndex(1, 3))
	boxes.Set(cornerZone)
	pusherZone := lv.Map.ToZone(lv.GridIndex(1, 1))
	reach := level.FloodFill(lv, boxes, pusherZone)

	require.True(t, det.IsDeadlocked(boxes, reach, cornerZone))
}

func TestIsDeadlockedAllowsGoalReachableState(t *testing.T) {
	grid := parseGrid(
		"#####",
		"#@$.#",
		"#####",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	det := deadlock.New(lv, lv.Goals)
	pusherZone := lv.Map.ToZone(lv.PusherStartGrid)
	reach := level.FloodFill(lv, lv.StartBoxes, pusherZone)

	boxZone := lv.Map.ToZone(lv.GridIndex(1, 2))
	require.False(t, det.IsDeadlocked(lv.StartBoxes, reach, boxZone))
}
