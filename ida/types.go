package ida

import (
	"github.com/katalvlaran/sokolve/astar"
	"github.com/katalvlaran/sokolve/search"
)

// CostBoundStore persists the current IDA* cost bound so a crashed run
// resumes from it instead of recomputing from h(start) (§4.12 step 3,
// §5 "persisted on-disk caches ... keyed by (pack, level-id)"). Ordinarily
// backed by github.com/katalvlaran/sokolve/persist; defined here as an
// interface, not a direct dependency, so ida never needs to know about
// badger.
type CostBoundStore interface {
	LoadCostBound(levelID string) (cost int, ok bool, err error)
	SaveCostBound(levelID string, cost int) error
}

// Options configures a Solve run.
type Options struct {
	astar.Options

	// LevelID keys the persisted cost bound. Empty disables persistence
	// even if Store is non-nil.
	LevelID string

	// Store, if non-nil and LevelID is non-empty, is consulted for a
	// saved bound before the first iteration and updated after every
	// iteration that raises the bound.
	Store CostBoundStore

	// MaxIterations caps how many bounded-A* iterations Solve runs, 0
	// meaning unbounded (bounded only by the monotonic-growth failure
	// check in §4.12 step 3).
	MaxIterations int
}

// Status is the terminal outcome of an IDA* run.
type Status int

const (
	StatusUnknown Status = iota
	StatusSolved
	// StatusUnsolvable means an iteration rejected nothing tighter than
	// its own bound, so growing the limit further cannot help (§4.12
	// step 3: "if cost_{i+1} <= cost_i, terminate with failure").
	StatusUnsolvable
	StatusResourceExhausted
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsolvable:
		return "unsolvable"
	case StatusResourceExhausted:
		return "resource_exhausted"
	default:
		return "unknown"
	}
}

// Outcome is the result of a full IDA* run.
type Outcome struct {
	Status Status

	Solution *search.TreeNode

	Iterations     int
	FinalCostLimit int
	NodesExpanded  int

	NodesGenerated      int
	NodesPrunedDeadlock int
	NodesPrunedPenalty  int

	// CostLimitHistory records the cost_limit used by each iteration, in
	// order, for post-hoc diagnostics (§6 supplemented Stats reporting).
	CostLimitHistory []int
}
