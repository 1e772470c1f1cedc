package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokolve/solve"
)

func TestCompressMovesCollapsesRuns(t *testing.T) {
	require.Equal(t, "", solve.CompressMoves(""))
	require.Equal(t, "U", solve.CompressMoves("U"))
	require.Equal(t, "U3", solve.CompressMoves("UUU"))
	require.Equal(t, "U3dR2", solve.CompressMoves("UUUdRR"))
}

func TestDecompressMovesReversesCompress(t *testing.T) {
	cases := []string{"", "U", "UUU", "UUUdRR", "uuuuUUUUddddlllLLLrrrRRR"}
	for _, moves := range cases {
		compressed := solve.CompressMoves(moves)
		got, err := solve.DecompressMoves(compressed)
		require.NoError(t, err)
		require.Equal(t, moves, got)
	}
}

func TestDecompressMovesRejectsGarbage(t *testing.T) {
	_, err := solve.DecompressMoves("X3")
	require.ErrorIs(t, err, solve.ErrInvalidCompressedMoves)

	_, err = solve.DecompressMoves("U0")
	require.ErrorIs(t, err, solve.ErrInvalidCompressedMoves)
}
