package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/search"
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

// nodeWithBoxAt builds a synthetic Node over lv with a single box at zone
// bit b, pusher reach flooded from pusherZone. The real search core only
// ever produces nodes this way through succ.Generate; building them
// directly here isolates the tree's bookkeeping from successor generation.
func nodeWithBoxAt(lv *level.Level, pusherZone, b int) *level.Node {
	boxes := zone.New(lv.Map.Len())
	boxes.Set(b)
	return level.NewNode(lv, boxes, pusherZone)
}

func TestSeedRootAndPopFrontier(t *testing.T) {
	grid := parseGrid(
		"#########",
		"#@  $  .#",
		"#########",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	pusherZone := lv.Map.ToZone(lv.PusherStartGrid)
	root := level.NewNode(lv, lv.StartBoxes, pusherZone)

	tree, err := search.NewTree(root, 16)
	require.NoError(t, err)
	tree.SeedRoot(10)
	require.Equal(t, 1, tree.Len())

	popped, ok := tree.PopFrontier()
	require.True(t, ok)
	require.Same(t, tree.Root(), popped)
	require.Equal(t, 10, popped.F)
	require.Equal(t, 0, tree.Len())

	_, ok = tree.PopFrontier()
	require.False(t, ok)
}

func TestInsertUpdatesCheaperDuplicateInClose(t *testing.T) {
	grid := parseGrid(
		"#########",
		"#@  $  .#",
		"#########",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	pusherZone := lv.Map.ToZone(lv.PusherStartGrid)
	root := level.NewNode(lv, lv.StartBoxes, pusherZone)

	tree, err := search.NewTree(root, 16)
	require.NoError(t, err)
	tree.SeedRoot(10)

	rootTN, ok := tree.PopFrontier()
	require.True(t, ok)
	tree.MoveToOpen(rootTN)

	mid := nodeWithBoxAt(lv, pusherZone, 1)
	child := nodeWithBoxAt(lv, pusherZone, 2)

	midTN := tree.Insert(rootTN, mid, 1, 0, search.EdgeInfo{})
	require.Equal(t, 1, midTN.G)

	childTN := tree.Insert(rootTN, child, 5, 0, search.EdgeInfo{})
	require.Equal(t, 5, childTN.G)
	require.Equal(t, 5, childTN.F)

	poppedMid, ok := tree.PopFrontier()
	require.True(t, ok)
	require.Same(t, midTN, poppedMid)
	tree.MoveToOpen(poppedMid)

	// child is reachable again through mid at a lower cost: 1 + 1 = 2 < 5.
	updated := tree.Insert(poppedMid, child, 1, 0, search.EdgeInfo{})
	require.Same(t, childTN, updated)
	require.Equal(t, 2, updated.G)
	require.Same(t, poppedMid, updated.Parent)
}

func TestInsertReparentsCheaperDuplicateInOpenAndPropagates(t *testing.T) {
	grid := parseGrid(
		"#########",
		"#@  $  .#",
		"#########",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	pusherZone := lv.Map.ToZone(lv.PusherStartGrid)
	root := level.NewNode(lv, lv.StartBoxes, pusherZone)

	tree, err := search.NewTree(root, 16)
	require.NoError(t, err)
	tree.SeedRoot(0)

	rootTN, ok := tree.PopFrontier()
	require.True(t, ok)
	tree.MoveToOpen(rootTN)

	child := nodeWithBoxAt(lv, pusherZone, 2)
	childTN := tree.Insert(rootTN, child, 2, 0, search.EdgeInfo{})
	require.Equal(t, 2, childTN.G)

	poppedChild, ok := tree.PopFrontier()
	require.True(t, ok)
	tree.MoveToOpen(poppedChild)

	grandchild := nodeWithBoxAt(lv, pusherZone, 4)
	gcTN := tree.Insert(poppedChild, grandchild, 1, 0, search.EdgeInfo{})
	require.Equal(t, 3, gcTN.G)

	// Rediscover childTN through root directly, at a lower cost than its
	// current open-table g (0 < 2). The reparent must propagate the g
	// delta down to grandchild, which is still sitting in close.
	updated := tree.Insert(rootTN, child, 0, 0, search.EdgeInfo{})
	require.Same(t, poppedChild, updated)
	require.Same(t, rootTN, updated.Parent)
	require.Equal(t, 0, updated.G)
	require.Equal(t, 1, gcTN.G)
}
