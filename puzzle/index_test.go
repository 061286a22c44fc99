package puzzle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// scrambled returns a puzzle reached by a fixed, always-legal sequence
// of moves from the solved state, picking a different move offset from
// Moves(z) at each step so the scramble isn't a simple back-and-forth.
func scrambled() Puzzle {
	p := Solved
	picks := []int{1, 0, 2, 1, 3, 0, 2, 1, 0}
	for _, pick := range picks {
		z := p.ZeroLocation()
		moves := Moves(z)
		p.Move(int(moves[pick%len(moves)]))
	}
	return p
}

func TestComputeInvertIndexRoundTrip(t *testing.T) {
	tilesets := []Tileset{
		EmptyTileset.Add(0).Add(1).Add(2),
		EmptyTileset.Add(3).Add(8).Add(13).Add(18).Add(23),
		EmptyTileset.Add(0).Add(24),
	}

	p := scrambled()
	for _, ts := range tilesets {
		idx := ComputeIndex(ts, &p)
		inv := InvertIndex(ts, idx)
		got := ComputeIndex(ts, &inv)
		require.Equal(t, idx, got, "tileset %v", ts)
		require.True(t, inv.Valid())
	}
}

func TestCombineSplitIndexRoundTrip(t *testing.T) {
	ts := EmptyTileset.Add(0).Add(1).Add(2).Add(3)
	p := scrambled()
	idx := ComputeIndex(ts, &p)

	combined := CombineIndex(ts, idx)
	require.True(t, combined < SearchSpaceSize(ts))

	split := SplitIndex(ts, combined)
	if diff := cmp.Diff(idx, split); diff != "" {
		t.Errorf("split(combine(idx)) mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchSpaceSizeMatchesChooseTimesFactorial(t *testing.T) {
	ts := EmptyTileset.Add(1).Add(2).Add(3).Add(4)
	want := Binomial(TileCount, 4) * factorial(4)
	require.Equal(t, want, SearchSpaceSize(ts))
}

func TestComputeIndexSolvedIsZero(t *testing.T) {
	ts := EmptyTileset.Add(0).Add(1).Add(2)
	idx := ComputeIndex(ts, &Solved)
	require.Equal(t, uint64(0), idx.Combo)
	require.Equal(t, uint64(0), idx.Perm)
}
