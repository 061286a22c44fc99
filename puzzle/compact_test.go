package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackPuzzleRoundTrip(t *testing.T) {
	p := scrambled()
	cp := PackPuzzle(&p, 0b1011)
	got := UnpackPuzzle(cp)
	require.Equal(t, p, got)
}

func TestMoveMaskRoundTrip(t *testing.T) {
	p := Solved
	for mask := uint8(0); mask < 16; mask++ {
		cp := PackPuzzle(&p, mask)
		require.Equal(t, mask, cp.MoveMask())

		cp.ClearMoveMask()
		require.Equal(t, uint8(0), cp.MoveMask())
	}
}

func TestCompareCPIgnoresMoveMask(t *testing.T) {
	p := scrambled()
	a := PackPuzzle(&p, 0b0001)
	b := PackPuzzle(&p, 0b1110)
	require.Equal(t, 0, CompareCP(a, b))
}

func TestSortCPSliceOrdersByConfiguration(t *testing.T) {
	p1 := Solved
	p2 := scrambled()

	s := []CompactPuzzle{PackPuzzle(&p2, 3), PackPuzzle(&p1, 0), PackPuzzle(&p2, 1)}
	SortCPSlice(s)

	for i := 1; i < len(s); i++ {
		require.LessOrEqual(t, CompareCP(s[i-1], s[i]), 0)
	}
}

func TestSetFieldGetFieldAcrossWordBoundary(t *testing.T) {
	var cp CompactPuzzle
	// Tile 13's field occupies bits 60..64, straddling Lo/Hi.
	setField(&cp, 60, 5, 27)
	require.Equal(t, uint64(27), getField(&cp, 60, 5))

	// Writing an adjacent field must not disturb the straddling one.
	setField(&cp, 65, 5, 9)
	require.Equal(t, uint64(27), getField(&cp, 60, 5))
	require.Equal(t, uint64(9), getField(&cp, 65, 5))
}
