package ida

import (
	"context"

	"github.com/katalvlaran/sokolve/astar"
	"github.com/katalvlaran/sokolve/deadlock"
	"github.com/katalvlaran/sokolve/heuristic"
	"github.com/katalvlaran/sokolve/internal/telemetry"
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/zone"
)

// Solve runs the IDA* driver (§4.12) to completion: compute cost_0 =
// h(start) (or resume from a persisted bound), run bounded A* at that
// limit, and on "no solution within limit" advance to min_reject and
// loop, until a solution is found, a resource limit is hit, or the
// bound stops growing.
func Solve(
	ctx context.Context,
	lv *level.Level,
	goals *zone.Zone,
	start *level.Node,
	hcfg heuristic.Config,
	dl *deadlock.Detector,
	limits astar.Limits,
	opts Options,
) (*Outcome, error) {
	costLimit, err := heuristic.Compute(hcfg, start)
	if err != nil {
		return nil, err
	}
	if opts.Store != nil && opts.LevelID != "" {
		if resumed, ok, err := opts.Store.LoadCostBound(opts.LevelID); err != nil {
			return nil, err
		} else if ok && resumed > costLimit {
			costLimit = resumed
		}
	}

	out := &Outcome{}
	for {
		out.Iterations++
		out.FinalCostLimit = costLimit
		out.CostLimitHistory = append(out.CostLimitHistory, costLimit)

		_, iterSpan := telemetry.Start(ctx, opts.Tracer, "ida.iteration")
		iterSpan.SetInt("iteration", out.Iterations)
		iterSpan.SetInt("cost_limit", costLimit)

		result, err := astar.Run(ctx, lv, goals, start, hcfg, dl, costLimit, limits, opts.Options)
		if err != nil {
			iterSpan.End()
			return nil, err
		}
		iterSpan.End()
		out.NodesExpanded += result.NodesExpanded
		out.NodesGenerated += result.NodesGenerated
		out.NodesPrunedDeadlock += result.NodesPrunedDeadlock
		out.NodesPrunedPenalty += result.NodesPrunedPenalty

		switch result.Status {
		case astar.StatusSolved:
			out.Status = StatusSolved
			out.Solution = result.Solution
			return out, nil
		case astar.StatusResourceExhausted:
			out.Status = StatusResourceExhausted
			return out, nil
		}

		// result.Status == astar.StatusNoSolutionWithinLimit.
		next := result.MinReject
		if next <= costLimit {
			out.Status = StatusUnsolvable
			return out, nil
		}
		costLimit = next

		if opts.Store != nil && opts.LevelID != "" {
			if err := opts.Store.SaveCostBound(opts.LevelID, costLimit); err != nil {
				return nil, err
			}
		}
		if opts.MaxIterations > 0 && out.Iterations >= opts.MaxIterations {
			out.Status = StatusResourceExhausted
			return out, nil
		}
		if ctx.Err() != nil {
			out.Status = StatusResourceExhausted
			return out, nil
		}
	}
}
