package solverconfig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokolve/internal/solverconfig"
)

func TestLoadDefaultsWhenNoConfigFileDiscovered(t *testing.T) {
	cfg, err := solverconfig.Load("")
	require.NoError(t, err)
	require.Equal(t, 4096, cfg.Limits.OpenTableCap)
	require.Equal(t, 2, cfg.Options.PenaltyBoxDepth)

	limits := cfg.SolveLimits()
	require.Equal(t, 4096, limits.OpenTableCap)
}
