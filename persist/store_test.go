package persist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokolve/costtable"
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/penalty"
	"github.com/katalvlaran/sokolve/persist"
	"github.com/katalvlaran/sokolve/zone"
)

func openStore(t *testing.T) *persist.Store {
	t.Helper()
	store, err := persist.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })
	return store
}

func TestCostBoundRoundTrip(t *testing.T) {
	store := openStore(t)
	cb := persist.NewCostBoundStore(store, "demo-pack")

	_, ok, err := cb.LoadCostBound("level-1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, cb.SaveCostBound("level-1", 17))
	cost, ok, err := cb.LoadCostBound("level-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 17, cost)
}

func TestCostTableRoundTrip(t *testing.T) {
	store := openStore(t)
	table := &costtable.Table{
		Goals: []int{2, 5},
		Cost: [][]int{
			{0, 3},
			{1, 2},
			{2, 1},
		},
	}

	require.NoError(t, store.SaveCostTable("demo-pack", "level-1", table))
	got, err := store.LoadCostTable("demo-pack", "level-1")
	require.NoError(t, err)
	require.Equal(t, table.Goals, got.Goals)
	require.Equal(t, table.Cost, got.Cost)
}

func TestPenaltyDatabaseRoundTrip(t *testing.T) {
	store := openStore(t)

	boxes := zone.New(8)
	boxes.Set(3)
	reach := zone.New(8)
	reach.Set(0)
	reach.Set(1)

	db := penalty.NewDatabase([]penalty.Entry{
		{State: &level.Node{Boxes: boxes, Reach: reach, Repr: 0}, Value: 4},
	})

	require.NoError(t, store.SavePenalties("demo-pack", "level-1", db))
	got, err := store.LoadPenalties("demo-pack", "level-1")
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	require.Equal(t, 4, got.Entries()[0].Value)
	require.True(t, got.Entries()[0].State.Boxes.Equal(boxes))
}

func TestSolutionRoundTrip(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.SaveSolution("demo-pack", "level-1", 2, "rRR"))
	pushes, moves, err := store.LoadSolution("demo-pack", "level-1")
	require.NoError(t, err)
	require.Equal(t, 2, pushes)
	require.Equal(t, "rRR", moves)
}

func TestLoadMissingArtifactReturnsNotFound(t *testing.T) {
	store := openStore(t)
	_, err := store.LoadCostTable("demo-pack", "level-missing")
	require.ErrorIs(t, err, persist.ErrNotFound)
}
