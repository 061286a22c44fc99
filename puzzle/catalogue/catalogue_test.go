package catalogue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tatami-tools/puzzle24/puzzle"
	"github.com/tatami-tools/puzzle24/puzzle/pdb"
)

// writePDBFile generates and saves a PDB over ts's canonical automorphism
// frame to dir, matching Load's expected on-disk naming.
func writePDBFile(t *testing.T, dir string, ts puzzle.Tileset) {
	t.Helper()
	a := puzzle.CanonicalAutomorphism(ts)
	canon := puzzle.TilesetMorph(ts, a)

	p := pdb.Generate(canon, nil)
	f, err := os.Create(filepath.Join(dir, fileName(canon)))
	require.NoError(t, err)
	require.NoError(t, pdb.Save(p, f))
	require.NoError(t, f.Close())
}

func TestLoadAndHeuristicAdmissible(t *testing.T) {
	dir := t.TempDir()
	ts1 := puzzle.EmptyTileset.Add(0).Add(1).Add(2)
	ts2 := puzzle.EmptyTileset.Add(3).Add(4)
	writePDBFile(t, dir, ts1)
	writePDBFile(t, dir, ts2)

	manifest := filepath.Join(dir, "manifest.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("0 1 2\n3 4\n"), 0o644))

	cat, err := Load(manifest, dir, 0, nil)
	require.NoError(t, err)
	defer cat.Close()

	require.Len(t, cat.Terms, 2)

	h, err := Heuristic(cat, &puzzle.Solved)
	require.NoError(t, err)
	require.Equal(t, 0, h)
}

func TestLoadMissingPDBFile(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "manifest.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("0 1 2\n"), 0o644))

	_, err := Load(manifest, dir, 0, nil)
	require.ErrorIs(t, err, ErrNoSuchTileset)
}

func TestHeuristicSumsAdditiveTerm(t *testing.T) {
	dir := t.TempDir()
	ts1 := puzzle.EmptyTileset.Add(0).Add(1)
	ts2 := puzzle.EmptyTileset.Add(2).Add(3)
	writePDBFile(t, dir, ts1)
	writePDBFile(t, dir, ts2)

	manifest := filepath.Join(dir, "manifest.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("0 1\n2 3\n"), 0o644))

	singleton, err := Load(manifest, dir, 0, nil)
	require.NoError(t, err)
	defer singleton.Close()

	additive, err := Load(manifest, dir, Identify, nil)
	require.NoError(t, err)
	defer additive.Close()

	p := puzzle.Solved
	p.Move(p.ZeroLocation() + 5)
	p.Move(p.ZeroLocation() + 1)

	hSingleton, err := Heuristic(singleton, &p)
	require.NoError(t, err)
	hAdditive, err := Heuristic(additive, &p)
	require.NoError(t, err)

	require.GreaterOrEqual(t, hAdditive, hSingleton, "summing two disjoint terms must not be lower than either alone")
}

func TestAddTranspositionsReusesSourceAndIsAdmissible(t *testing.T) {
	dir := t.TempDir()
	ts := puzzle.EmptyTileset.Add(0).Add(1).Add(2)
	writePDBFile(t, dir, ts)

	manifest := filepath.Join(dir, "manifest.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("0 1 2\n"), 0o644))

	cat, err := Load(manifest, dir, 0, nil)
	require.NoError(t, err)
	defer cat.Close()

	before := len(cat.Terms)
	cat.AddTranspositions()

	for i, term := range cat.Terms {
		for _, e := range term {
			_, err := e.distance(&puzzle.Solved)
			require.NoError(t, err, "term %d entry must still answer distance queries", i)
		}
	}

	if len(cat.Terms) > before {
		h, err := Heuristic(cat, &puzzle.Solved)
		require.NoError(t, err)
		require.Equal(t, 0, h)
	}
}
