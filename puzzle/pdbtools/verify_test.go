package pdbtools

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tatami-tools/puzzle24/puzzle"
	"github.com/tatami-tools/puzzle24/puzzle/pdb"
)

func smallTileset() puzzle.Tileset {
	return puzzle.EmptyTileset.Add(0).Add(1).Add(2)
}

func TestVerifyAcceptsGeneratedPDB(t *testing.T) {
	ts := smallTileset()
	p := pdb.Generate(ts, nil)
	require.NoError(t, Verify(ts, p))
}

func TestVerifyRejectsCorruptedDistance(t *testing.T) {
	ts := smallTileset()
	p := pdb.Generate(ts, nil)

	// Corrupt the first entry with a nonzero distance so it disagrees
	// with its neighbours.
	raw := pdb.Raw(p)
	var target int = -1
	for i, d := range raw {
		if d != 0 && d != pdb.Unreached {
			target = i
			break
		}
	}
	require.NotEqual(t, -1, target, "expected at least one interior distance")

	raw[target] = raw[target] + 5
	require.Error(t, Verify(ts, p))
}
