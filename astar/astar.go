package astar

import (
	"context"

	"github.com/katalvlaran/sokolve/costtable"
	"github.com/katalvlaran/sokolve/deadlock"
	"github.com/katalvlaran/sokolve/heuristic"
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/penalty"
	"github.com/katalvlaran/sokolve/internal/telemetry"
	"github.com/katalvlaran/sokolve/search"
	"github.com/katalvlaran/sokolve/succ"
	"github.com/katalvlaran/sokolve/zone"
)

// bytesPerTreeNode is a rough per-node memory estimate (two Zones plus
// bookkeeping) used only to honor Limits.MaxRAMMiB (§5 "Memory limit:
// estimated from the sum of sizes of open, close, heap, and tree").
const bytesPerTreeNode = 256

// discoverCreditEvery is how many node expansions earn one more
// incremental-discovery credit (§4.11 slow mode: "a small node budget
// that grows with tree size").
const discoverCreditEvery = 24

// subSolveMaxNodes and subSolveOpenCap bound the inner bounded-A* search
// the slow-mode penalty probe runs against a tiny, isolated sub-board;
// they stay far below a real Limits value since the sub-board is at
// most a handful of cells.
const (
	subSolveMaxNodes = 4000
	subSolveOpenCap  = 1024
)

// Run executes one bounded-A* iteration (§4.11) starting from start,
// against costLimit. hcfg.Penalties, if non-nil, both contributes to h
// and — in slow mode — accumulates newly discovered entries in place.
func Run(
	ctx context.Context,
	lv *level.Level,
	goals *zone.Zone,
	start *level.Node,
	hcfg heuristic.Config,
	dl *deadlock.Detector,
	costLimit int,
	limits Limits,
	opts Options,
) (*Outcome, error) {
	ctx, span := telemetry.Start(ctx, opts.Tracer, "astar.expand")
	span.SetInt("cost_limit", costLimit)
	defer span.End()

	tree, err := search.NewTree(start, limits.OpenTableCap)
	if err != nil {
		return nil, err
	}
	rootH, err := heuristic.Compute(hcfg, start)
	if err != nil {
		return nil, err
	}
	tree.SeedRoot(rootH)

	out := &Outcome{MinReject: penaltyRejectSentinel}
	discoverCredits := 0

	defer func() {
		span.SetInt("nodes_expanded", out.NodesExpanded)
		span.SetString("status", out.Status.String())
	}()

	for {
		if ctx.Err() != nil {
			out.Status = StatusResourceExhausted
			return out, nil
		}

		current, ok := tree.PopFrontier()
		if !ok {
			out.Status = StatusNoSolutionWithinLimit
			return out, nil
		}

		if current.State.IsSolved(goals) {
			out.Status = StatusSolved
			out.Solution = current
			return out, nil
		}

		tree.MoveToOpen(current)
		out.NodesExpanded++
		discoverCredits += 1 + out.NodesExpanded/discoverCreditEvery

		for _, s := range succ.Generate(lv, goals, current.State) {
			out.NodesGenerated++
			g := current.G + s.Cost
			h, err := heuristic.Compute(hcfg, s.Child)
			if err != nil {
				return nil, err
			}
			if h >= heuristic.Infinity {
				continue // provably unsolvable from here, for any cost_limit
			}
			f := saturatingSum(g, h)
			if f > costLimit {
				if f < out.MinReject {
					out.MinReject = f
				}
				if hcfg.Penalties != nil {
					hBase, err := heuristic.Compute(heuristic.Config{Table: hcfg.Table}, s.Child)
					if err != nil {
						return nil, err
					}
					if saturatingSum(g, hBase) <= costLimit {
						out.NodesPrunedPenalty++
					}
				}
				continue
			}
			if dl.IsDeadlocked(s.Child.Boxes, s.Child.Reach, s.BoxTo) {
				out.NodesPrunedDeadlock++
				continue
			}

			edge := search.EdgeInfo{BoxFrom: s.BoxFrom, BoxTo: s.BoxTo, Dir: s.Dir, Macro: s.Macro}
			tree.Insert(current, s.Child, s.Cost, h, edge)

			if !opts.QuickSearch && opts.PenaltyBoxDepth > 0 && hcfg.Penalties != nil && discoverCredits > 0 {
				discoverCredits--
				discoverAroundLastPush(lv, goals, hcfg, s.BoxTo, opts.PenaltyBoxDepth)
			}
		}

		tree.GCUpward(current)

		if limits.MaxNodes > 0 && out.NodesExpanded >= limits.MaxNodes {
			out.Status = StatusResourceExhausted
			return out, nil
		}
		if limits.MaxRAMMiB > 0 {
			estimateMiB := (out.NodesExpanded + tree.Len()) * bytesPerTreeNode / (1 << 20)
			if estimateMiB >= limits.MaxRAMMiB {
				out.Status = StatusResourceExhausted
				return out, nil
			}
		}
	}
}

// saturatingSum mirrors search's own overflow-safe g+h so cost_limit
// comparisons never wrap around for a heuristic.Infinity operand.
func saturatingSum(g, h int) int {
	const infinity = 1 << 30
	if g >= infinity || h >= infinity {
		return infinity
	}
	sum := g + h
	if sum < g {
		return infinity
	}
	return sum
}

// discoverAroundLastPush runs one incremental penalty-discovery pass
// restricted to the last-pushed box, folding any confirmed entry into
// hcfg.Penalties in place (§4.9, §4.11 slow mode).
func discoverAroundLastPush(lv *level.Level, goals *zone.Zone, hcfg heuristic.Config, lastPushed, depth int) {
	candidates := cellsWithinDepth(lv, lastPushed, depth)

	db := penalty.Discover(
		lv, goals,
		penalty.Options{Candidates: candidates, MaxBoxes: 1, QuickStride: 4},
		subSolve(lv, dlForDiscover(lv, goals), hcfg.Table),
		baseHeuristic(hcfg.Table),
	)
	for _, e := range db.Entries() {
		hcfg.Penalties.Add(e)
	}
}

// dlForDiscover builds a fresh deadlock.Detector for the sub-solver
// probe: the discovery pass explores tiny, isolated sub-boards that
// share lv's geometry but never the caller's full-board Detector state,
// so a cheap throwaway instance is clearer than threading the caller's
// Detector through a signature it doesn't otherwise need.
func dlForDiscover(lv *level.Level, goals *zone.Zone) *deadlock.Detector {
	return deadlock.New(lv, goals)
}

// Note: this Detector's last-move stratum checks box occupancy against
// the full board's goals even while subSolve tests a narrower mini-goal
// set; that can only make the sub-solve's deadlock screen slightly more
// conservative, never less, so a discovered penalty is never overstated.

// subSolve adapts Run itself into the penalty.SubSolve shape the
// discovery loop needs: a small, quick-search-only bounded A* over the
// sub-board, capped well below a real Limits value. table is restricted
// to the sub-solve's own goals column-by-column since heuristic.Compute
// always assigns against whatever goal list its Table carries.
func subSolve(lv *level.Level, dl *deadlock.Detector, table *costtable.Table) penalty.SubSolve {
	return func(_ *level.Level, goals, boxes *zone.Zone, pusherZone, costLimit int) (bool, int) {
		start := level.NewNode(lv, boxes, pusherZone)
		hcfg := heuristic.Config{Table: table.Restrict(goals.Indices())}
		outcome, err := Run(
			context.Background(), lv, goals, start, hcfg, dl, costLimit,
			Limits{MaxNodes: subSolveMaxNodes, OpenTableCap: subSolveOpenCap},
			Options{QuickSearch: true},
		)
		if err != nil || outcome.Status != StatusSolved {
			return false, 0
		}
		return true, outcome.Solution.G
	}
}

// baseHeuristic adapts heuristic.Compute into the penalty.BaseHeuristic
// shape. Discover calls it with goals equal to the level's full goal
// set (see its baseH(lv, boxes) call sites), so no column restriction
// is needed here the way subSolve needs one. BaseHeuristic has no error
// channel of its own; a Compute error (unreachable — see heuristic's
// own doc comment) degrades to heuristic.Infinity rather than cascading
// a signature change through penalty.Discover's whole call chain.
func baseHeuristic(table *costtable.Table) penalty.BaseHeuristic {
	return func(_ *level.Level, boxes *zone.Zone) int {
		cfg := heuristic.Config{Table: table}
		h, err := heuristic.Compute(cfg, &level.Node{Boxes: boxes})
		if err != nil {
			return heuristic.Infinity
		}
		return h
	}
}

// cellsWithinDepth returns every zone cell reachable from start within
// depth AdjZone hops (ignoring box/floor occupancy, just wall geometry),
// the candidate window for a slow-mode discovery pass (§4.11).
func cellsWithinDepth(lv *level.Level, start, depth int) []int {
	if start < 0 {
		return nil
	}
	seen := map[int]bool{start: true}
	frontier := []int{start}
	out := []int{start}
	for d := 0; d < depth; d++ {
		var next []int
		for _, z := range frontier {
			for _, dir := range level.Directions {
				n := lv.AdjZone(z, dir)
				if n < 0 || seen[n] {
					continue
				}
				seen[n] = true
				out = append(out, n)
				next = append(next, n)
			}
		}
		frontier = next
	}
	return out
}
