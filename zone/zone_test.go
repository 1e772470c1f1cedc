package zone_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokolve/zone"
)

func TestZoneSetClearGet(t *testing.T) {
	z := zone.New(70) // spans two 64-bit words
	require.True(t, z.IsEmpty())

	z.Set(0)
	z.Set(63)
	z.Set(64)
	z.Set(69)

	require.True(t, z.Get(0))
	require.True(t, z.Get(63))
	require.True(t, z.Get(64))
	require.True(t, z.Get(69))
	require.False(t, z.Get(1))
	require.Equal(t, 4, z.Popcount())

	z.Clear(63)
	require.False(t, z.Get(63))
	require.Equal(t, 3, z.Popcount())
}

func TestZoneSetAlgebra(t *testing.T) {
	a := zone.New(10)
	b := zone.New(10)
	a.Set(1)
	a.Set(2)
	b.Set(2)
	b.Set(3)

	or := zone.Or(a, b)
	require.Equal(t, []int{1, 2, 3}, or.Indices())

	and := zone.And(a, b)
	require.Equal(t, []int{2}, and.Indices())

	xor := zone.Xor(a, b)
	require.Equal(t, []int{1, 3}, xor.Indices())

	sub := zone.Sub(a, b)
	require.Equal(t, []int{1}, sub.Indices())
}

func TestZoneIsSubsetOf(t *testing.T) {
	a := zone.New(8)
	b := zone.New(8)
	a.Set(1)
	b.Set(1)
	b.Set(2)
	require.True(t, a.IsSubsetOf(b))
	require.False(t, b.IsSubsetOf(a))
}

func TestZoneIsFull(t *testing.T) {
	z := zone.New(5)
	require.False(t, z.IsFull())
	for i := 0; i < 5; i++ {
		z.Set(i)
	}
	require.True(t, z.IsFull())

	empty := zone.New(0)
	require.True(t, empty.IsFull())
	require.True(t, empty.IsEmpty())
}

func TestZoneEqual(t *testing.T) {
	a := zone.New(10)
	b := zone.New(10)
	require.True(t, a.Equal(b))
	a.Set(5)
	require.False(t, a.Equal(b))
	b.Set(5)
	require.True(t, a.Equal(b))

	c := zone.New(11)
	require.False(t, a.Equal(c))
}

func TestZoneMarshalRoundTrip(t *testing.T) {
	z := zone.New(130)
	z.Set(0)
	z.Set(64)
	z.Set(129)

	buf := z.Marshal()
	decoded, err := zone.Unmarshal(buf)
	require.NoError(t, err)
	require.True(t, z.Equal(decoded))
	require.Equal(t, z.Hash(), decoded.Hash())
}

func TestUnmarshalShortBuffer(t *testing.T) {
	_, err := zone.Unmarshal([]byte{1, 2})
	require.ErrorIs(t, err, zone.ErrShortBuffer)
}

func TestZoneNot(t *testing.T) {
	z := zone.New(3)
	z.Set(1)
	z.Not()
	require.Equal(t, []int{0, 2}, z.Indices())
}

func TestBitIndexPanicsOutOfRange(t *testing.T) {
	z := zone.New(4)
	require.Panics(t, func() { z.Get(4) })
	require.Panics(t, func() { z.Set(-1) })
}

func TestMapBijection(t *testing.T) {
	usable := []bool{true, false, true, true, false}
	m := zone.NewMap(usable)
	require.Equal(t, 3, m.Len())
	require.Equal(t, 0, m.ToGrid(0))
	require.Equal(t, 2, m.ToGrid(1))
	require.Equal(t, 3, m.ToGrid(2))
	require.Equal(t, 0, m.ToZone(0))
	require.Equal(t, -1, m.ToZone(1))
	require.Equal(t, 1, m.ToZone(2))
}
