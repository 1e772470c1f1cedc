package level

import "errors"

// Sentinel errors for level construction and validation (§7 invalid_input).
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("level: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("level: all rows must have the same length")

	// ErrNoPusher indicates the grid has no pusher cell.
	ErrNoPusher = errors.New("level: grid has no pusher")

	// ErrMultiplePushers indicates the grid has more than one pusher cell.
	ErrMultiplePushers = errors.New("level: grid has more than one pusher")

	// ErrBoxGoalCountMismatch indicates the number of boxes differs from the number of goals.
	ErrBoxGoalCountMismatch = errors.New("level: box count does not match goal count")

	// ErrDisconnected indicates some box, goal, or the pusher is not
	// reachable from the others through floor cells.
	ErrDisconnected = errors.New("level: boxes, goals, and pusher are not all mutually reachable")
)
