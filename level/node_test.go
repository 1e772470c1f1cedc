package level_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokolve/level"
)

func TestFloodFillStopsAtBoxesAndWalls(t *testing.T) {
	grid := parseGrid(
		"#######",
		"#@ $ .#",
		"#######",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	startZone := lv.Map.ToZone(lv.PusherStartGrid)
	boxGrid := lv.GridIndex(1, 3)
	boxes := lv.StartBoxes
	require.True(t, boxes.Get(lv.Map.ToZone(boxGrid)))

	reach := level.FloodFill(lv, boxes, startZone)
	// Reachable: the pusher's own cell and the one floor cell between it
	// and the box; nothing beyond the box.
	require.True(t, reach.Get(startZone))
	require.True(t, reach.Get(lv.Map.ToZone(lv.GridIndex(1, 2))))
	require.False(t, reach.Get(lv.Map.ToZone(lv.GridIndex(1, 4))))
}

func TestNodeEqualIgnoresPusherCellWithinSameRegion(t *testing.T) {
	grid := parseGrid(
		"######",
		"#@   #",
		"######",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	start := lv.Map.ToZone(lv.PusherStartGrid)
	other := lv.Map.ToZone(lv.GridIndex(1, 3))

	a := level.NewNode(lv, lv.StartBoxes, start)
	b := level.NewNode(lv, lv.StartBoxes, other)

	require.True(t, a.Equal(b))
	require.Equal(t, a.Key(), b.Key())
}

func TestNodeIsSolved(t *testing.T) {
	grid := parseGrid(
		"#####",
		"#@$.#",
		"#####",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	start := lv.Map.ToZone(lv.PusherStartGrid)
	solvedBoxes := lv.Goals.Clone()
	node := level.NewNode(lv, solvedBoxes, start)
	require.True(t, node.IsSolved(lv.Goals))

	unsolved := level.NewNode(lv, lv.StartBoxes, start)
	require.False(t, unsolved.IsSolved(lv.Goals))
}
