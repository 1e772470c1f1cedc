// Package zone implements the fixed-length bitset used throughout sokolve
// to represent a set of cells in a level: which cells hold a box, which
// cells the pusher can reach, which cells are a static deadlock, and so
// on (§3, §4.1 of the design).
//
// A Zone is fixed at construction to Z bits, where Z is the number of
// usable cells in a level; level.New counts every non-wall cell as
// usable, whether or not the pusher can reach it. Every bit position is stable for
// the lifetime of the level and is translated to/from a grid coordinate
// by a Map (§4.2).
//
// Word layout and bit-iteration are grounded on the bitset idiom used by
// IP-routing lookup tables (word-indexed []uint64, bits.TrailingZeros64
// for iteration) rather than a growable bitset: Zone never grows past its
// construction length, which lets every operation skip a bounds/growth
// check and lets two zones be compared and hashed by raw word content.
package zone
