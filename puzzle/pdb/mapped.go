package pdb

import (
	"fmt"

	"golang.org/x/exp/mmap"

	"github.com/tatami-tools/puzzle24/puzzle"
)

// MappedPDB is a PDB backed by a read-only memory mapping of an
// on-disk file, for catalogues that query many large PDBs without
// paying to load each one fully into the process's heap.
type MappedPDB struct {
	Tileset puzzle.Tileset
	r       *mmap.ReaderAt
}

// OpenMapped memory-maps path read-only and treats it as a PDB over
// ts, validating that its length matches search_space_size(T).
func OpenMapped(ts puzzle.Tileset, path string) (*MappedPDB, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdb: mapping %s: %w", path, err)
	}

	want := puzzle.SearchSpaceSize(ts)
	if uint64(r.Len()) != want {
		r.Close()
		return nil, fmt.Errorf("pdb: %s: expected %d bytes, got %d", path, want, r.Len())
	}

	return &MappedPDB{Tileset: ts, r: r}, nil
}

// At returns the distance at index i, read directly from the mapping.
func (m *MappedPDB) At(i uint64) (byte, error) {
	if i >= uint64(m.r.Len()) {
		return 0, fmt.Errorf("%w: %d >= %d", ErrOutOfRange, i, m.r.Len())
	}
	return m.r.At(int(i)), nil
}

// Close releases the underlying mapping.
func (m *MappedPDB) Close() error { return m.r.Close() }
