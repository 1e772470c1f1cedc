package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokolve/costtable"
	"github.com/katalvlaran/sokolve/heuristic"
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

func TestComputeMatchesCostTableForSingleBox(t *testing.T) {
	grid := parseGrid(
		"#######",
		"#@ $ .#",
		"#######",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	table, err := costtable.Build(lv)
	require.NoError(t, err)

	pusherZone := lv.Map.ToZone(lv.PusherStartGrid)
	node := level.NewNode(lv, lv.StartBoxes, pusherZone)

	h, err := heuristic.Compute(heuristic.Config{Table: table}, node)
	require.NoError(t, err)
	require.Equal(t, 2, h)
}

func TestComputeReturnsInfinityWhenUnreachable(t *testing.T) {
	grid := parseGrid(
		"######",
		"#@$  #",
		"##  .#",
		"######",
	)
	lv, err := level.New(grid)
	require.NoError(t, err)

	table, err := costtable.Build(lv)
	require.NoError(t, err)

	pusherZone := lv.Map.ToZone(lv.PusherStartGrid)
	node := level.NewNode(lv, lv.StartBoxes, pusherZone)

	h, err := heuristic.Compute(heuristic.Config{Table: table}, node)
	require.NoError(t, err)
	require.Equal(t, heuristic.Infinity, h)
}
