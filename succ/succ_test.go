package succ_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/succ"
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

func TestGenerateStraightCorridor(t *testing.T) {
	// Pusher can push the box one cell right (single-push) or all the
	// way onto the goal two cells further (macro-push); it can never
	// pull the box back past its own starting cell.
	grid := parseGrid(
		"#######",
		"#@ $ .#",
		"#######",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	pusherZone := lv.Map.ToZone(lv.PusherStartGrid)
	node := level.NewNode(lv, lv.StartBoxes, pusherZone)

	successors := succ.Generate(lv, lv.Goals, node)
	require.Len(t, successors, 2)

	boxZone := lv.Map.ToZone(lv.GridIndex(1, 3))
	aheadZone := lv.Map.ToZone(lv.GridIndex(1, 4))
	goalZone := lv.Map.ToZone(lv.GridIndex(1, 5))

	var sawSingle, sawMacro bool
	for _, s := range successors {
		require.Equal(t, boxZone, s.BoxFrom)
		if s.Macro {
			sawMacro = true
			require.Equal(t, 2, s.Cost)
			require.Equal(t, goalZone, s.BoxTo)
			require.True(t, s.Child.Boxes.Get(goalZone))
			require.True(t, s.Child.IsSolved(lv.Goals))
		} else {
			sawSingle = true
			require.Equal(t, 1, s.Cost)
			require.Equal(t, aheadZone, s.BoxTo)
			require.True(t, s.Child.Boxes.Get(aheadZone))
		}
	}
	require.True(t, sawSingle)
	require.True(t, sawMacro)
}

func TestGenerateNoMovesWhenBoxIsWalledIn(t *testing.T) {
	// The box sits in a dead-end pocket with a wall on every side except
	// the one the pusher occupies, so no direction has room for either a
	// push or an approach. The goal reaches the pusher through a branch
	// that never passes through the box's cell, so the level is still
	// valid input even though the box itself can never move.
	grid := parseGrid(
		"#.###",
		"# @$#",
		"#####",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	pusherZone := lv.Map.ToZone(lv.PusherStartGrid)
	node := level.NewNode(lv, lv.StartBoxes, pusherZone)

	successors := succ.Generate(lv, lv.Goals, node)
	require.Empty(t, successors)
}
