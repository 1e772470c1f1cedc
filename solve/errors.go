package solve

import "errors"

// Sentinel errors for solver setup and move-grammar round-tripping.
var (
	// ErrNilLevel is returned when Solve is called with a nil level.
	ErrNilLevel = errors.New("solve: level is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")

	// ErrInvalidCompressedMoves is returned by DecompressMoves when its
	// input is not a well-formed run-length move string.
	ErrInvalidCompressedMoves = errors.New("solve: invalid compressed move string")
)
