package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/sokolve/cmd/sokolve-bench/fixtures"
	"github.com/katalvlaran/sokolve/persist"
	"github.com/katalvlaran/sokolve/solve"
)

var (
	fixtureName   string
	penaltyDepth  int
	quickSearch   bool
	onlyPushCount bool
	maxNodes      int
	costLimitFlag int
	withTracing   bool
	pack          string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve one named in-memory fixture and report stats",
	Example: `  sokolve-bench run --fixture corridor
  sokolve-bench run --fixture two-box --penalty-depth 3 --quick
  sokolve-bench run --fixture corridor --cache-dir ./cache --pack demo`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)

	runCmd.Flags().StringVar(&fixtureName, "fixture", "corridor", "fixture board to solve")
	runCmd.Flags().IntVar(&penaltyDepth, "penalty-depth", 0, "PenaltyBoxDepth override (0 uses config default)")
	runCmd.Flags().BoolVar(&quickSearch, "quick", false, "enable quick-search mode")
	runCmd.Flags().BoolVar(&onlyPushCount, "only-push-count", false, "skip move-string reconstruction")
	runCmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "node expansion cap (0 is unbounded)")
	runCmd.Flags().IntVar(&costLimitFlag, "cost-limit", 0, "force a single bounded pass at this cost (0 disables)")
	runCmd.Flags().BoolVar(&withTracing, "trace", false, "wrap the search in otel spans")
	runCmd.Flags().StringVar(&pack, "pack", "bench", "cache pack name, used with --cache-dir")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered fixture board names",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range fixtures.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

func runRun(cmd *cobra.Command, args []string) error {
	lv, err := fixtures.Build(fixtureName)
	if err != nil {
		return err
	}

	limits := cfg.SolveLimits()
	if maxNodes > 0 {
		limits.MaxNodes = maxNodes
	}

	opts := cfg.SolveOptions()
	if penaltyDepth > 0 {
		opts = append(opts, solve.WithPenaltyBoxDepth(penaltyDepth))
	}
	if quickSearch {
		opts = append(opts, solve.WithQuickSearch(true))
	}
	if onlyPushCount {
		opts = append(opts, solve.WithOnlyPushCount(true))
	}
	if costLimitFlag > 0 {
		opts = append(opts, solve.WithCostLimit(costLimitFlag))
	}

	var store *persist.Store
	if cacheDir != "" {
		store, err = persist.Open(cacheDir)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer store.Close()
	}

	if withTracing {
		tp := sdktrace.NewTracerProvider()
		defer tp.Shutdown(context.Background())
		opts = append(opts, solve.WithTracer(tp.Tracer("sokolve-bench")))
	}

	start := time.Now()
	res, err := solve.Solve(context.Background(), lv, limits, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("solving %q: %w", fixtureName, err)
	}

	fmt.Printf("fixture:        %s\n", fixtureName)
	fmt.Printf("status:         %s\n", res.Status)
	if res.Pushes != nil {
		fmt.Printf("pushes:         %d\n", *res.Pushes)
	}
	if res.Moves != nil {
		fmt.Printf("moves:          %s\n", solve.CompressMoves(*res.Moves))
	}
	fmt.Printf("message:        %s\n", res.Message)
	fmt.Printf("nodes_expanded: %d\n", res.NodesExpanded)
	fmt.Printf("nodes_generated: %d\n", res.Stats.NodesGenerated)
	fmt.Printf("pruned_deadlock: %d\n", res.Stats.NodesPrunedDeadlock)
	fmt.Printf("pruned_penalty: %d\n", res.Stats.NodesPrunedPenalty)
	fmt.Printf("elapsed:        %s\n", elapsed)

	if store != nil && res.Status == solve.StatusSolved && res.Moves != nil {
		if err := store.SaveSolution(pack, fixtureName, *res.Pushes, solve.CompressMoves(*res.Moves)); err != nil {
			return fmt.Errorf("caching solution: %w", err)
		}
	}
	return nil
}
