package zone

import "errors"

// Sentinel errors for zone operations.
var (
	// ErrNegativeLength indicates a Zone was constructed with a negative bit length.
	ErrNegativeLength = errors.New("zone: length must be non-negative")

	// ErrLengthMismatch indicates a binary operation was attempted between
	// two zones of different lengths.
	ErrLengthMismatch = errors.New("zone: length mismatch between operands")

	// ErrBitOutOfRange indicates a bit index outside [0, Len()) was addressed.
	ErrBitOutOfRange = errors.New("zone: bit index out of range")

	// ErrShortBuffer indicates Unmarshal was given fewer bytes than required.
	ErrShortBuffer = errors.New("zone: buffer too short to decode zone")
)
