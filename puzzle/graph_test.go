package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNeighborsAreSymmetric(t *testing.T) {
	ts := EmptyTileset.Add(0).Add(1).Add(2)
	idx := CombineIndex(ts, ComputeIndex(ts, &Solved))

	for _, n := range Neighbors(ts, idx) {
		back := Neighbors(ts, n)
		found := false
		for _, b := range back {
			if b == idx {
				found = true
				break
			}
		}
		require.True(t, found, "neighbour %d of %d does not list %d back", n, idx, idx)
	}
}

func TestNeighborsNonEmptyForSolved(t *testing.T) {
	ts := EmptyTileset.Add(0).Add(5).Add(6)
	idx := CombineIndex(ts, ComputeIndex(ts, &Solved))
	require.NotEmpty(t, Neighbors(ts, idx))
}
