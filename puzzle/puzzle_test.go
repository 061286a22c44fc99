package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveIsInvolution(t *testing.T) {
	for z := 0; z < TileCount; z++ {
		p := Solved
		p.grid[0], p.grid[z] = p.grid[z], p.grid[0]
		p.rebuildTilesFromGrid()
		for _, d := range Moves(z) {
			cand := p
			cand.Move(int(d))
			cand.Move(z)
			require.Equal(t, p, cand, "move to %d and back from zero at %d should be a no-op", d, z)
		}
	}
}

func TestMoveCountRange(t *testing.T) {
	tests := []struct {
		z    int
		want int
	}{
		{0, 2},
		{4, 2},
		{20, 2},
		{24, 2},
		{2, 3},
		{10, 3},
		{12, 4},
	}
	for _, tt := range tests {
		if got := MoveCount(tt.z); got != tt.want {
			t.Errorf("MoveCount(%d) = %d, want %d", tt.z, got, tt.want)
		}
	}
}

func TestDirectionOfMatchesMovetabOrder(t *testing.T) {
	for z := 0; z < TileCount; z++ {
		for _, d := range Moves(z) {
			dir := DirectionOf(z, int(d))
			switch dir {
			case DirN:
				require.Equal(t, z-side, int(d))
			case DirE:
				require.Equal(t, z+1, int(d))
			case DirS:
				require.Equal(t, z+side, int(d))
			case DirW:
				require.Equal(t, z-1, int(d))
			default:
				t.Fatalf("unexpected direction %d", dir)
			}
		}
	}
}

func TestDirectionOfPanicsOnNonAdjacent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-adjacent positions")
		}
	}()
	DirectionOf(0, 2)
}

func TestValidSolved(t *testing.T) {
	require.True(t, Solved.Valid())
}

func TestValidRejectsOddPermutation(t *testing.T) {
	p := Solved
	// Swap two non-zero tiles directly, producing an odd permutation
	// that cannot arise from any sequence of real moves.
	p.grid[1], p.grid[2] = p.grid[2], p.grid[1]
	p.rebuildTilesFromGrid()
	require.False(t, p.Valid())
}

func TestParseStringRoundTrip(t *testing.T) {
	p := Solved
	p.Move(p.ZeroLocation() + side)
	s := p.String()

	got, err := Parse(s)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse("0 1 2")
	require.Error(t, err)

	_, err = Parse("0 0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20 21 22 23")
	require.Error(t, err, "repeated tile label")
}
