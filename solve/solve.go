package solve

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sokolve/astar"
	"github.com/katalvlaran/sokolve/costtable"
	"github.com/katalvlaran/sokolve/deadlock"
	"github.com/katalvlaran/sokolve/heuristic"
	"github.com/katalvlaran/sokolve/ida"
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/penalty"
)

// Solve runs the full solver pipeline on lv (§6 External Interfaces): it
// builds the goal-cost table, the deadlock detector, and the penalty
// database, then drives IDA* (or, with WithCostLimit, a single bounded-A*
// pass) to a terminal Result.
func Solve(ctx context.Context, lv *level.Level, limits Limits, opts ...Option) (*Result, error) {
	if lv == nil {
		return nil, ErrNilLevel
	}

	options := DefaultOptions()
	for _, o := range opts {
		o(&options)
	}
	if options.err != nil {
		return nil, options.err
	}

	table, err := costtable.Build(lv)
	if err != nil {
		return nil, fmt.Errorf("solve: building cost table: %w", err)
	}

	var penalties *penalty.Database
	if options.PenaltyBoxDepth > 0 {
		penalties = penalty.NewDatabase(nil)
	}
	hcfg := heuristic.Config{Table: table, Penalties: penalties}

	dl := deadlock.New(lv, lv.Goals)
	start := level.NewNode(lv, lv.StartBoxes, lv.Map.ToZone(lv.PusherStartGrid))

	if start.IsSolved(lv.Goals) {
		return solvedResult(0, "", options), nil
	}
	if dl.IsDeadlocked(start.Boxes, start.Reach, -1) {
		return &Result{Status: StatusUnsolvable, Message: "start state is a provable deadlock"}, nil
	}
	if h, err := heuristic.Compute(hcfg, start); err != nil {
		return nil, err
	} else if h >= heuristic.Infinity {
		return &Result{Status: StatusUnsolvable, Message: "no feasible box-to-goal assignment exists"}, nil
	}

	astarLimits := astar.Limits{
		MaxNodes:      limits.MaxNodes,
		MaxRAMMiB:     limits.MaxRAMMiB,
		OpenTableCap:  limits.OpenTableCap,
		CloseTableCap: limits.CloseTableCap,
	}
	if astarLimits.OpenTableCap <= 0 {
		astarLimits.OpenTableCap = DefaultOpenTableCap
	}
	astarOpts := astar.Options{
		PenaltyBoxDepth: options.PenaltyBoxDepth,
		QuickSearch:     options.QuickSearch,
		OnlyPushCount:   options.OnlyPushCount,
		Tracer:          options.Tracer,
	}

	outcome, err := runSearch(ctx, lv, start, hcfg, dl, astarLimits, astarOpts, options)
	if err != nil {
		return nil, err
	}

	stats := Stats{
		NodesGenerated:      outcome.NodesGenerated,
		NodesExpanded:       outcome.NodesExpanded,
		NodesPrunedDeadlock: outcome.NodesPrunedDeadlock,
		NodesPrunedPenalty:  outcome.NodesPrunedPenalty,
		CostLimitHistory:    outcome.CostLimitHistory,
	}

	switch outcome.Status {
	case ida.StatusSolved:
		pushes := outcome.Solution.G
		moves := ""
		if !options.OnlyPushCount {
			moves = buildMoves(lv, outcome.Solution)
		}
		res := solvedResult(pushes, moves, options)
		res.NodesExpanded = outcome.NodesExpanded
		res.Stats = stats
		return res, nil

	case ida.StatusUnsolvable:
		status := StatusUnsolvable
		message := "no solution exists"
		switch {
		case options.CostLimit != nil:
			// A forced single pass at an externally supplied bound
			// failing just means that bound was too tight, not that
			// the level is unsolvable.
			status = StatusLimitReached
			message = "no solution found within the supplied cost limit"
		case outcome.Iterations > 1:
			status = StatusLimitReached
			message = "stuck_iteration: cost bound stopped growing before a solution was found"
		}
		pushes := outcome.FinalCostLimit
		res := &Result{Status: status, Message: message, NodesExpanded: outcome.NodesExpanded, Stats: stats}
		if status == StatusLimitReached {
			res.Pushes = &pushes
		}
		return res, nil

	case ida.StatusResourceExhausted:
		pushes := outcome.FinalCostLimit
		return &Result{
			Status:        StatusLimitReached,
			Pushes:        &pushes,
			Message:       "resource limit reached before a solution was confirmed",
			NodesExpanded: outcome.NodesExpanded,
			Stats:         stats,
		}, nil

	default:
		return nil, fmt.Errorf("solve: unexpected ida status %v", outcome.Status)
	}
}

// runSearch dispatches to either a single forced-cost bounded-A* pass
// (WithCostLimit) or the full IDA* loop, wrapping the former's Outcome in
// an ida.Outcome shape so the caller's status translation stays unified.
func runSearch(
	ctx context.Context,
	lv *level.Level,
	start *level.Node,
	hcfg heuristic.Config,
	dl *deadlock.Detector,
	limits astar.Limits,
	astarOpts astar.Options,
	options Options,
) (*ida.Outcome, error) {
	if options.CostLimit != nil {
		result, err := astar.Run(ctx, lv, lv.Goals, start, hcfg, dl, *options.CostLimit, limits, astarOpts)
		if err != nil {
			return nil, err
		}
		out := &ida.Outcome{
			Iterations:          1,
			FinalCostLimit:      *options.CostLimit,
			CostLimitHistory:    []int{*options.CostLimit},
			NodesExpanded:       result.NodesExpanded,
			NodesGenerated:      result.NodesGenerated,
			NodesPrunedDeadlock: result.NodesPrunedDeadlock,
			NodesPrunedPenalty:  result.NodesPrunedPenalty,
			Solution:            result.Solution,
		}
		switch result.Status {
		case astar.StatusSolved:
			out.Status = ida.StatusSolved
		case astar.StatusResourceExhausted:
			out.Status = ida.StatusResourceExhausted
		default:
			out.Status = ida.StatusUnsolvable
		}
		return out, nil
	}

	return ida.Solve(ctx, lv, lv.Goals, start, hcfg, dl, limits, ida.Options{Options: astarOpts})
}

func solvedResult(pushes int, moves string, options Options) *Result {
	res := &Result{Status: StatusSolved, Pushes: &pushes}
	if !options.OnlyPushCount {
		res.Moves = &moves
	}
	return res
}
