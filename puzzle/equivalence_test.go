package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqClassSolvedSingleTile(t *testing.T) {
	// Tracking a single non-zero tile blocks only its own cell: the
	// blank can reach every other cell on the board.
	ts := EmptyTileset.Add(5)
	eq := EqClass(ts, &Solved)
	require.Equal(t, TileCount-1, eq.Count(), "every cell but the tracked tile's own is reachable by sliding the blank")
	require.False(t, eq.Has(5))
}

func TestMoveWithinClassReachesTarget(t *testing.T) {
	ts := EmptyTileset.Add(0).Add(1).Add(2)
	p := Solved
	eq := EqClass(ts, &p)

	for t2 := eq; !t2.Empty(); t2 = t2.RemoveLeast() {
		target := t2.Least()
		cand := p
		MoveWithinClass(&cand, eq, target)
		require.Equal(t, target, cand.ZeroLocation())
		require.True(t, cand.Valid())
	}
}

func TestMoveWithinClassNeverMovesTrackedTiles(t *testing.T) {
	ts := EmptyTileset.Add(0).Add(5).Add(6)
	p := Solved
	eq := EqClass(ts, &p)

	for t2 := eq; !t2.Empty(); t2 = t2.RemoveLeast() {
		target := t2.Least()
		cand := p
		MoveWithinClass(&cand, eq, target)
		for tile := ts.Remove(ZeroTile); !tile.Empty(); tile = tile.RemoveLeast() {
			tl := tile.Least()
			require.Equal(t, p.Tiles(tl), cand.Tiles(tl), "tile %d moved outside its tracked position", tl)
		}
	}
}

func TestIsCanonicalExactlyOnePerClass(t *testing.T) {
	ts := EmptyTileset.Add(0).Add(1).Add(2).Add(3)
	p := Solved
	eq := EqClass(ts, &p)

	canonical := 0
	for t2 := eq; !t2.Empty(); t2 = t2.RemoveLeast() {
		target := t2.Least()
		cand := p
		MoveWithinClass(&cand, eq, target)
		if IsCanonical(ts, eq, &cand) {
			canonical++
		}
	}
	require.Equal(t, 1, canonical)
}

func TestReduceEqClassIsSubsetAndNonEmpty(t *testing.T) {
	ts := EmptyTileset.Add(0).Add(1).Add(2)
	p := Solved
	eq := EqClass(ts, &p)
	boundary := ReduceEqClass(eq)

	require.False(t, boundary.Empty())
	for t2 := boundary; !t2.Empty(); t2 = t2.RemoveLeast() {
		require.True(t, eq.Has(t2.Least()))
	}
}
