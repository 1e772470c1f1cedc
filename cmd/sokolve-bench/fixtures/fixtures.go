// Package fixtures builds the in-memory level.Level boards
// cmd/sokolve-bench runs the solver against: level-file parsing is out
// of scope, so the bench harness only ever exercises levels it
// constructs itself, never a pack file (§6).
package fixtures

import (
	"fmt"

	"github.com/katalvlaran/sokolve/level"
)

// Named is the registry of built-in fixture boards, keyed by the name
// passed to --fixture.
var Named = map[string]func() (*level.Level, error){
	"corridor": func() (*level.Level, error) {
		return build(
			"#######",
			"#@ $ .#",
			"#######",
		)
	},
	"corner-deadlock": func() (*level.Level, error) {
		return build(
			"####",
			"#@$#",
			"#.##",
		)
	},
	"two-box": func() (*level.Level, error) {
		return build(
			"########",
			"#@$  $.#",
			"#  .   #",
			"########",
		)
	},
}

// Names lists the registered fixture names, for the list subcommand.
func Names() []string {
	out := make([]string, 0, len(Named))
	for name := range Named {
		out = append(out, name)
	}
	return out
}

// Build constructs the named fixture, or an error if name isn't registered.
func Build(name string) (*level.Level, error) {
	ctor, ok := Named[name]
	if !ok {
		return nil, fmt.Errorf("fixtures: unknown fixture %q", name)
	}
	return ctor()
}

func build(rows ...string) (*level.Level, error) {
	grid := make([][]level.Cell, len(rows))
	for r, row := range rows {
		grid[r] = make([]level.Cell, len(row))
		for c, ch := range row {
			grid[r][c] = cellFor(byte(ch))
		}
	}
	return level.New(grid)
}

func cellFor(ch byte) level.Cell {
	switch ch {
	case '#':
		return level.Wall
	case ' ':
		return level.Floor
	case '.':
		return level.Goal
	case '$':
		return level.Box
	case '*':
		return level.BoxOnGoal
	case '@':
		return level.Pusher
	case '+':
		return level.PusherOnGoal
	default:
		return level.Outside
	}
}
