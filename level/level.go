package level

import (
	"fmt"

	"github.com/katalvlaran/sokolve/zone"
)

// Level is a validated, immutable Sokoban board (§3, §6 "Level input").
// Level-file parsing is out of scope (§1); Level is always constructed
// in-memory via New from an already-decoded grid of Cell codes.
type Level struct {
	Width, Height int
	cells         []Cell // row-major, len == Width*Height

	// Map translates between grid indices (row*Width+col) and zone bit
	// indices over the Z usable (non-wall) cells.
	Map *zone.Map

	// Goals is the set of goal cells, in zone-bit space.
	Goals *zone.Zone

	// StartBoxes is the set of box cells at level load, in zone-bit space.
	StartBoxes *zone.Zone

	// PusherStartGrid is the pusher's starting cell, as a grid index.
	PusherStartGrid int

	// adj[z][d] is the zone-bit index reached by stepping one cell from
	// zone-bit z in direction d, or -1 if that step leaves the floor.
	// Precomputed once at load time so the per-state flood fill (§4.3)
	// never touches grid coordinates.
	adj [][4]int
}

// AdjZone returns the zone-bit index reached by stepping from zone-bit z
// in direction d, or -1 if the destination is a wall or off the grid.
func (l *Level) AdjZone(z int, d Direction) int { return l.adj[z][d] }

// New validates grid (a rectangular, row-major slice of rows) and
// constructs a Level. It enforces (§7 invalid_input):
//  1. the grid is non-empty and rectangular,
//  2. exactly one pusher cell exists,
//  3. the box count equals the goal count,
//  4. every box, goal, and the pusher are mutually reachable through
//     floor cells (disconnected pusher/boxes/goals is invalid input, not
//     a search-time unsolvable result).
func New(grid [][]Cell) (*Level, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height := len(grid)
	width := len(grid[0])
	for _, row := range grid {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	cells := make([]Cell, 0, width*height)
	for _, row := range grid {
		cells = append(cells, row...)
	}

	var (
		pusherGrid = -1
		numPushers int
		numBoxes   int
		numGoals   int
	)
	usable := make([]bool, width*height)
	for g, c := range cells {
		usable[g] = c.IsFloor()
		if c.HasPusher() {
			numPushers++
			pusherGrid = g
		}
		if c.HasBox() {
			numBoxes++
		}
		if c.HasGoal() {
			numGoals++
		}
	}
	if numPushers == 0 {
		return nil, ErrNoPusher
	}
	if numPushers > 1 {
		return nil, ErrMultiplePushers
	}
	if numBoxes != numGoals {
		return nil, fmt.Errorf("%w: %d boxes, %d goals", ErrBoxGoalCountMismatch, numBoxes, numGoals)
	}

	if err := checkMutuallyReachable(cells, width, height, pusherGrid); err != nil {
		return nil, err
	}

	posMap := zone.NewMap(usable)
	goals := zone.New(posMap.Len())
	boxes := zone.New(posMap.Len())
	for g, c := range cells {
		zi := posMap.ToZone(g)
		if zi < 0 {
			continue
		}
		if c.HasGoal() {
			goals.Set(zi)
		}
		if c.HasBox() {
			boxes.Set(zi)
		}
	}

	adj := make([][4]int, posMap.Len())
	for zi := 0; zi < posMap.Len(); zi++ {
		g := posMap.ToGrid(zi)
		row, col := g/width, g%width
		for _, d := range Directions {
			nr, nc := row+d.DRow(), col+d.DCol()
			if nr < 0 || nr >= height || nc < 0 || nc >= width {
				adj[zi][d] = -1
				continue
			}
			ng := nr*width + nc
			if !cells[ng].IsFloor() {
				adj[zi][d] = -1
				continue
			}
			adj[zi][d] = posMap.ToZone(ng)
		}
	}

	return &Level{
		Width:           width,
		Height:          height,
		cells:           cells,
		Map:             posMap,
		Goals:           goals,
		StartBoxes:      boxes,
		PusherStartGrid: pusherGrid,
		adj:             adj,
	}, nil
}

// Cell returns the original cell code at grid index g.
func (l *Level) Cell(g int) Cell { return l.cells[g] }

// GridIndex computes the row-major grid index for (row, col).
func (l *Level) GridIndex(row, col int) int { return row*l.Width + col }

// RowCol decomposes a grid index back into (row, col).
func (l *Level) RowCol(g int) (row, col int) { return g / l.Width, g % l.Width }

// InBounds reports whether (row, col) lies within the grid.
func (l *Level) InBounds(row, col int) bool {
	return row >= 0 && row < l.Height && col >= 0 && col < l.Width
}

// Neighbor returns the grid index reached by moving one cell from g in
// direction d, and whether that index is within the grid bounds.
func (l *Level) Neighbor(g int, d Cell2Direction) (int, bool) {
	row, col := l.RowCol(g)
	row += d.DRow()
	col += d.DCol()
	if !l.InBounds(row, col) {
		return -1, false
	}
	return l.GridIndex(row, col), true
}

// Cell2Direction is a package-level alias of Direction, the type of
// Neighbor's direction parameter.
type Cell2Direction = Direction

// checkMutuallyReachable enforces that the pusher, every box, and every
// goal lie in the same floor-connected component (§7 invalid_input): a
// plain 4-connected flood fill from the pusher's cell over grid indices,
// since this runs once at load time over raw Cell codes, before a
// zone.Map even exists to flood-fill through (Node's own FloodFill
// operates in zone-bit space, which this check has not built yet).
func checkMutuallyReachable(cells []Cell, width, height, pusherGrid int) error {
	reached := make([]bool, width*height)
	reached[pusherGrid] = true
	stack := []int{pusherGrid}
	for len(stack) > 0 {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		row, col := g/width, g%width
		for _, d := range Directions {
			nr, nc := row+d.DRow(), col+d.DCol()
			if nr < 0 || nr >= height || nc < 0 || nc >= width {
				continue
			}
			ng := nr*width + nc
			if !cells[ng].IsFloor() || reached[ng] {
				continue
			}
			reached[ng] = true
			stack = append(stack, ng)
		}
	}
	for g, c := range cells {
		if (c.HasBox() || c.HasGoal()) && !reached[g] {
			return fmt.Errorf("%w: cell %d not reachable from the pusher", ErrDisconnected, g)
		}
	}
	return nil
}
