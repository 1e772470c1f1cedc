package astar

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/sokolve/search"
)

// Limits bounds one bounded-A* iteration (§6 Limits).
type Limits struct {
	MaxNodes      int // 0 means unbounded
	MaxRAMMiB     int // 0 means unbounded; checked via a rough size estimate
	OpenTableCap  int // soft capacity backing search.Tree's open table
	CloseTableCap int // advisory only: bucketTable itself has no hard cap
}

// Options configures optional per-iteration behavior (§6 Options,
// §4.11 quick-search mode).
type Options struct {
	// PenaltyBoxDepth bounds how many AdjZone hops from the last-pushed
	// box the incremental discovery pass considers as candidate cells.
	// Zero disables slow-mode discovery even if QuickSearch is false.
	PenaltyBoxDepth int

	// QuickSearch, if true, skips the per-node penalty-discovery probe;
	// penalties are still consulted through h via heuristic.Config.
	QuickSearch bool

	// OnlyPushCount, if true, tells the caller (not this package) that
	// the eventual result only needs the push count, not the move
	// string; astar itself always builds the full tree either way since
	// move reconstruction walks it after the fact.
	OnlyPushCount bool

	// Tracer, if non-nil, wraps each Run call in an "astar.expand" span
	// (internal/telemetry). Nil disables tracing entirely at zero cost.
	Tracer trace.Tracer
}

// Status is the terminal state of one bounded-A* iteration (§4.11).
type Status int

const (
	// StatusUnknown is the zero value and never returned by Run.
	StatusUnknown Status = iota
	// StatusSolved means Solution is a goal tree node.
	StatusSolved
	// StatusNoSolutionWithinLimit means the frontier emptied without
	// reaching a goal; MinReject carries the next iteration's bound.
	StatusNoSolutionWithinLimit
	// StatusResourceExhausted means a node-count, memory, or
	// cancellation limit was hit before the frontier emptied.
	StatusResourceExhausted
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusNoSolutionWithinLimit:
		return "no_solution_within_limit"
	case StatusResourceExhausted:
		return "resource_exhausted"
	default:
		return "unknown"
	}
}

// Outcome is the result of one bounded-A* iteration.
type Outcome struct {
	Status Status

	// Solution is the terminal tree node when Status is StatusSolved.
	Solution *search.TreeNode

	// MinReject is the smallest f rejected for exceeding cost_limit
	// during this iteration, the next iteration's cost bound (§4.12
	// step 3). It stays at penaltyRejectSentinel if nothing was rejected.
	MinReject int

	NodesExpanded int

	// NodesGenerated counts every successor produced by succ.Generate,
	// before any pruning. NodesPrunedDeadlock counts successors rejected
	// by the deadlock detector. NodesPrunedPenalty counts successors
	// rejected for exceeding cost_limit specifically because the penalty
	// database's contribution pushed them over the bound (the same
	// successor would have survived on the base heuristic alone).
	NodesGenerated      int
	NodesPrunedDeadlock int
	NodesPrunedPenalty  int
}

// penaltyRejectSentinel marks "nothing rejected yet" in Outcome.MinReject.
const penaltyRejectSentinel = 1 << 30
