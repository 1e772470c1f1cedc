// Package cmd wires the sokolve-bench cobra commands: a diagnostic
// harness that runs the solver against in-memory fixture levels and
// reports push counts, timing and node-expansion stats. It never reads
// a pack/level file (§6 Non-goals).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sokolve/internal/solverconfig"
)

var (
	configPath string
	cacheDir   string
	cfg        *solverconfig.Config
)

// rootCmd is the sokolve-bench entry point.
var rootCmd = &cobra.Command{
	Use:   "sokolve-bench",
	Short: "Benchmark and diagnostic harness for the sokolve solver",
	Long: `sokolve-bench runs the optimal-push Sokoban solver against in-memory
fixture boards and reports push counts, search statistics and timing.

It does not parse level files: fixtures are built by the harness itself.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := solverconfig.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a sokolve.yaml config file (optional)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "badger cache directory (optional; persistence disabled if empty)")
}
