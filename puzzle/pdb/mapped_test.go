package pdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tatami-tools/puzzle24/puzzle"
)

func TestOpenMappedMatchesInMemoryPDB(t *testing.T) {
	ts := smallTileset()
	p := Generate(ts, nil)

	dir := t.TempDir()
	path := filepath.Join(dir, "test.pdb")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Save(p, f))
	require.NoError(t, f.Close())

	mapped, err := OpenMapped(ts, path)
	require.NoError(t, err)
	defer mapped.Close()

	for i := uint64(0); i < uint64(p.Len()); i++ {
		want, err := p.At(i)
		require.NoError(t, err)
		got, err := mapped.At(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestOpenMappedRejectsWrongLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.pdb")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	_, err := OpenMapped(puzzle.EmptyTileset.Add(0).Add(1).Add(2), path)
	require.Error(t, err)
}
