package solve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokolve/internal/bfsstrategy"
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/solve"
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
			case '*':
				out[r][c] = level.BoxOnGoal
			case '@':
				out[r][c] = level.Pusher
			default:
				out[r][c] = level.Outside
			}
		}
	}
	return out
}

func TestSolveStraightCorridor(t *testing.T) {
	lv, err := level.New(parseGrid(
		"#######",
		"#@ $ .#",
		"#######",
	))
	require.NoError(t, err)

	res, err := solve.Solve(context.Background(), lv, solve.DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, solve.StatusSolved, res.Status)
	require.NotNil(t, res.Pushes)
	require.Equal(t, 2, *res.Pushes)
	require.NotNil(t, res.Moves)
	require.Equal(t, "rRR", *res.Moves)
}

func TestSolveOnlyPushCountSkipsMoves(t *testing.T) {
	lv, err := level.New(parseGrid(
		"#######",
		"#@ $ .#",
		"#######",
	))
	require.NoError(t, err)

	res, err := solve.Solve(context.Background(), lv, solve.DefaultLimits(), solve.WithOnlyPushCount(true))
	require.NoError(t, err)
	require.Equal(t, solve.StatusSolved, res.Status)
	require.NotNil(t, res.Pushes)
	require.Nil(t, res.Moves)
}

func TestSolveAlreadySolvedIsImmediate(t *testing.T) {
	lv, err := level.New(parseGrid(
		"#####",
		"#@* #",
		"#####",
	))
	require.NoError(t, err)

	res, err := solve.Solve(context.Background(), lv, solve.DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, solve.StatusSolved, res.Status)
	require.Equal(t, 0, *res.Pushes)
	require.Equal(t, 0, res.NodesExpanded)
}

func TestSolveStaticCornerDeadlockIsUnsolvable(t *testing.T) {
	lv, err := level.New(parseGrid(
		"####",
		"#@$#",
		"#.##",
	))
	require.NoError(t, err)

	res, err := solve.Solve(context.Background(), lv, solve.DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, solve.StatusUnsolvable, res.Status)
	require.Equal(t, 0, res.NodesExpanded)
}

func TestSolveRejectsNilLevel(t *testing.T) {
	_, err := solve.Solve(context.Background(), nil, solve.DefaultLimits())
	require.ErrorIs(t, err, solve.ErrNilLevel)
}

func TestSolveRejectsInvalidOption(t *testing.T) {
	lv, err := level.New(parseGrid(
		"#######",
		"#@ $ .#",
		"#######",
	))
	require.NoError(t, err)

	_, err = solve.Solve(context.Background(), lv, solve.DefaultLimits(), solve.WithPenaltyBoxDepth(-1))
	require.ErrorIs(t, err, solve.ErrOptionViolation)
}

func TestSolveMatchesBruteForceOracle(t *testing.T) {
	lv, err := level.New(parseGrid(
		"#######",
		"#@ $ .#",
		"#######",
	))
	require.NoError(t, err)

	res, err := solve.Solve(context.Background(), lv, solve.DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, solve.StatusSolved, res.Status)

	start := level.NewNode(lv, lv.StartBoxes, lv.Map.ToZone(lv.PusherStartGrid))
	pushes, solved, err := bfsstrategy.New().Solve(lv, start)
	require.NoError(t, err)
	require.True(t, solved)
	require.Equal(t, pushes, *res.Pushes)
}

func TestSolveForcedCostLimitTooTightReportsLimitReached(t *testing.T) {
	lv, err := level.New(parseGrid(
		"#######",
		"#@ $ .#",
		"#######",
	))
	require.NoError(t, err)

	res, err := solve.Solve(context.Background(), lv, solve.DefaultLimits(), solve.WithCostLimit(1))
	require.NoError(t, err)
	require.Equal(t, solve.StatusLimitReached, res.Status)
	require.NotNil(t, res.Pushes)
	require.Equal(t, 1, *res.Pushes)
}
