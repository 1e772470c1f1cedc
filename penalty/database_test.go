package penalty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/penalty"
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

func buildLevel(t *testing.T) *level.Level {
	t.Helper()
	grid := parseGrid(
		"#####",
		"#@$.#",
		"#####",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)
	return lv
}

func TestDatabaseMatchSumsDisjointEntries(t *testing.T) {
	lv := buildLevel(t)
	boxA := lv.Map.ToZone(lv.GridIndex(1, 1))
	boxB := lv.Map.ToZone(lv.GridIndex(1, 3))

	boxesA := zone.New(lv.Map.Len())
	boxesA.Set(boxA)
	reachAll := level.FloodFill(lv, zone.New(lv.Map.Len()), lv.Map.ToZone(lv.PusherStartGrid))

	boxesB := zone.New(lv.Map.Len())
	boxesB.Set(boxB)

	db := penalty.NewDatabase([]penalty.Entry{
		{State: level.NewNode(lv, boxesA, lv.Map.ToZone(lv.PusherStartGrid)), Value: 3},
		{State: level.NewNode(lv, boxesB, lv.Map.ToZone(lv.PusherStartGrid)), Value: 5},
	})

	current := zone.New(lv.Map.Len())
	current.Set(boxA)
	current.Set(boxB)

	require.Equal(t, 8, db.Match(current, reachAll))
}

func TestDatabaseMatchSkipsUnsatisfiedPusherZone(t *testing.T) {
	lv := buildLevel(t)
	box := lv.Map.ToZone(lv.GridIndex(1, 1))
	boxes := zone.New(lv.Map.Len())
	boxes.Set(box)

	// The entry demands a reach containing every usable cell; a reach
	// that excludes one must not satisfy it.
	fullReach := zone.New(lv.Map.Len())
	fullReach.Not()
	entry := penalty.Entry{State: &level.Node{Boxes: boxes, Reach: fullReach, Repr: 0}, Value: 9}
	db := penalty.NewDatabase([]penalty.Entry{entry})

	narrowReach := zone.New(lv.Map.Len())
	narrowReach.Set(lv.Map.ToZone(lv.PusherStartGrid))

	require.Equal(t, 0, db.Match(boxes, narrowReach))
}
