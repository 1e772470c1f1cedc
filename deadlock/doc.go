// Package deadlock implements the three-stratum dead-state detector
// (§4.8), cheapest check first: a precomputed static zone of cells no
// box may ever occupy, a local pattern test around the last-pushed box,
// and a bounded recursive search for blocked sub-regions. A state that
// trips any stratum can never reach a solution and the caller discards
// it without expanding it further.
package deadlock
