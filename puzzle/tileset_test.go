package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTilesetAddHasRemove(t *testing.T) {
	ts := EmptyTileset
	require.False(t, ts.Has(3))

	ts = ts.Add(3)
	require.True(t, ts.Has(3))
	require.Equal(t, 1, ts.Count())

	ts = ts.Remove(3)
	require.True(t, ts.Empty())
}

func TestTilesetLeastRemoveLeast(t *testing.T) {
	ts := EmptyTileset.Add(7).Add(2).Add(19)

	var got []int
	for t2 := ts; !t2.Empty(); t2 = t2.RemoveLeast() {
		got = append(got, t2.Least())
	}
	require.Equal(t, []int{2, 7, 19}, got)
}

func TestTilesetComplement(t *testing.T) {
	ts := EmptyTileset.Add(0).Add(1)
	comp := ts.Complement()
	require.False(t, comp.Has(0))
	require.False(t, comp.Has(1))
	require.Equal(t, TileCount-2, comp.Count())
}

func TestFloodWholeBoardWhenTilesetEmpty(t *testing.T) {
	region := EmptyTileset.Flood(12)
	require.Equal(t, TileCount, region.Count())
}

func TestFloodStopsAtTilesetBoundary(t *testing.T) {
	// Wall off row 0 from the rest of the board by tracking every cell
	// in row 1: the flood from a row-0 seed cannot cross it.
	wall := EmptyTileset
	for c := 0; c < side; c++ {
		wall = wall.Add(side + c)
	}
	region := wall.Flood(0)
	require.Equal(t, side, region.Count())
	for c := 0; c < side; c++ {
		require.True(t, region.Has(c))
	}
}

func TestNextCombinationEnumeratesAllKSubsets(t *testing.T) {
	const n, k = 6, 3
	ts := Tileset(1<<k - 1)
	count := 0
	limit := Tileset(1 << n)
	for {
		count++
		if ts.Count() != k {
			t.Fatalf("NextCombination produced a tileset with %d members, want %d", ts.Count(), k)
		}
		next := NextCombination(ts)
		if next >= limit || next <= ts {
			break
		}
		ts = next
	}
	want := int(Binomial(n, k))
	require.Equal(t, want, count)
}
