package solve_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/solve"
)

// ExampleSolve demonstrates solving a tiny one-box level and printing the
// push count and the reconstructed move string.
func ExampleSolve() {
	grid := [][]level.Cell{
		{level.Wall, level.Wall, level.Wall, level.Wall, level.Wall, level.Wall, level.Wall},
		{level.Wall, level.Pusher, level.Floor, level.Box, level.Floor, level.Goal, level.Wall},
		{level.Wall, level.Wall, level.Wall, level.Wall, level.Wall, level.Wall, level.Wall},
	}
	lv, err := level.New(grid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := solve.Solve(context.Background(), lv, solve.DefaultLimits())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("status=%s pushes=%d moves=%s\n", res.Status, *res.Pushes, *res.Moves)
	// Output:
	// status=solved pushes=2 moves=rRR
}
