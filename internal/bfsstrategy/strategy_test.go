package bfsstrategy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokolve/internal/bfsstrategy"
	"github.com/katalvlaran/sokolve/level"
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

func TestStrategySolveStraightCorridor(t *testing.T) {
	lv, err := level.New(parseGrid(
		"#######",
		"#@ $ .#",
		"#######",
	))
	require.NoError(t, err)

	start := level.NewNode(lv, lv.StartBoxes, lv.Map.ToZone(lv.PusherStartGrid))
	strat := bfsstrategy.New()

	pushes, solved, err := strat.Solve(lv, start)
	require.NoError(t, err)
	require.True(t, solved)
	require.Equal(t, 2, pushes)
}

func TestStrategySolveUnsolvableCorner(t *testing.T) {
	lv, err := level.New(parseGrid(
		"####",
		"#@$#",
		"#.##",
	))
	require.NoError(t, err)

	start := level.NewNode(lv, lv.StartBoxes, lv.Map.ToZone(lv.PusherStartGrid))
	strat := bfsstrategy.New()

	_, solved, err := strat.Solve(lv, start)
	require.NoError(t, err)
	require.False(t, solved)
}

func TestStrategySolveRespectsStateLimit(t *testing.T) {
	lv, err := level.New(parseGrid(
		"#######",
		"#@ $ .#",
		"#######",
	))
	require.NoError(t, err)

	start := level.NewNode(lv, lv.StartBoxes, lv.Map.ToZone(lv.PusherStartGrid))
	strat := &bfsstrategy.Strategy{MaxStates: 1}

	_, _, err = strat.Solve(lv, start)
	require.ErrorIs(t, err, bfsstrategy.ErrStateLimitExceeded)
}
