package solve

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"
)

// DefaultOpenTableCap is used when Limits.OpenTableCap is left at zero,
// so a caller that doesn't care about the transposition tree's soft cap
// doesn't have to pick a number.
const DefaultOpenTableCap = 4096

// Limits bounds one Solve call (§6 Limits): node and memory ceilings,
// plus the search tree's table capacities.
type Limits struct {
	// MaxNodes caps nodes_expanded; zero means unbounded.
	MaxNodes int
	// MaxRAMMiB caps the tree's estimated memory footprint; zero means
	// unbounded.
	MaxRAMMiB int
	// OpenTableCap bounds the open table's LRU; zero is replaced with
	// DefaultOpenTableCap.
	OpenTableCap int
	// CloseTableCap is advisory only (§4.10: the close table is a heap,
	// not an LRU, so nothing evicts from it).
	CloseTableCap int
}

// DefaultLimits returns a Limits with no node/memory ceiling and a
// sane open-table capacity.
func DefaultLimits() Limits {
	return Limits{OpenTableCap: DefaultOpenTableCap}
}

// Option configures a Solve call via functional arguments. An invalid
// Option (e.g. a negative depth) is recorded internally and surfaced as
// ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds the per-call tuning knobs (§6 Options).
type Options struct {
	// PenaltyBoxDepth bounds incremental penalty discovery (§4.9, §4.11
	// slow mode); zero disables it (quick_search-equivalent for
	// penalties specifically, independent of QuickSearch itself).
	PenaltyBoxDepth int

	// QuickSearch skips the per-node penalty-discovery probe (§4.11);
	// penalties already known are still consulted through h.
	QuickSearch bool

	// OnlyPushCount skips move-string reconstruction after a solve,
	// returning only the push count.
	OnlyPushCount bool

	// CostLimit, if set, runs a single bounded-A* pass at this exact
	// cost instead of the full IDA* iteration from h(start). Intended
	// for resuming from a persisted ida_cost.dat bound.
	CostLimit *int

	// Tracer, if non-nil, wraps each IDA* iteration and bounded-A* pass
	// in an otel span (internal/telemetry). The solver never imports an
	// exporter itself; cmd/sokolve-bench supplies a tracer from a bare SDK
	// provider with no exporter registered.
	Tracer trace.Tracer

	err error
}

// DefaultOptions returns the default Options: penalty-box discovery two
// AdjZone hops around the last-pushed box, full (non-quick) search, push count and moves
// both returned, no forced cost limit, no tracing.
func DefaultOptions() Options {
	return Options{
		PenaltyBoxDepth: 2,
	}
}

// WithPenaltyBoxDepth sets how many AdjZone hops from the last-pushed
// box the incremental discovery pass considers (§4.11).
func WithPenaltyBoxDepth(depth int) Option {
	return func(o *Options) {
		if depth < 0 {
			o.err = fmt.Errorf("%w: PenaltyBoxDepth cannot be negative (%d)", ErrOptionViolation, depth)
			return
		}
		o.PenaltyBoxDepth = depth
	}
}

// WithQuickSearch toggles quick-search mode (§4.11).
func WithQuickSearch(quick bool) Option {
	return func(o *Options) { o.QuickSearch = quick }
}

// WithOnlyPushCount toggles skipping move-string reconstruction.
func WithOnlyPushCount(only bool) Option {
	return func(o *Options) { o.OnlyPushCount = only }
}

// WithCostLimit forces a single bounded-A* pass at cost instead of the
// full IDA* loop.
func WithCostLimit(cost int) Option {
	return func(o *Options) {
		if cost < 0 {
			o.err = fmt.Errorf("%w: CostLimit cannot be negative (%d)", ErrOptionViolation, cost)
			return
		}
		o.CostLimit = &cost
	}
}

// WithTracer attaches an otel tracer to the solve call.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *Options) { o.Tracer = tracer }
}

// Status is the terminal outcome of a Solve call (§6 result.status).
type Status int

const (
	StatusUnknown Status = iota
	StatusSolved
	StatusUnsolvable
	StatusLimitReached
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsolvable:
		return "unsolvable"
	case StatusLimitReached:
		return "limit_reached"
	default:
		return "unknown"
	}
}

// Stats supplements nodes_expanded with the original solver's richer
// per-reason counters (§6 supplemented Stats reporting): how many
// successors were generated in total, how many the deadlock detector
// rejected, how many the penalty database specifically pushed over the
// cost limit, and the cost_limit used by every IDA* iteration in order.
type Stats struct {
	NodesGenerated      int
	NodesExpanded       int
	NodesPrunedDeadlock int
	NodesPrunedPenalty  int
	CostLimitHistory    []int
}

// Result is the outcome of a Solve call (§6 result). Pushes and Moves
// are nil when not applicable to Status.
type Result struct {
	Status        Status
	Pushes        *int
	Moves         *string
	Message       string
	NodesExpanded int
	Stats         Stats
}
