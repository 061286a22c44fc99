// Package pdb implements pattern-database distance tables over 24-puzzle
// tilesets: generation by breadth-first exploration of the equivalence
// graph, histogramming, and file persistence.
package pdb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tatami-tools/puzzle24/puzzle"
)

// Unreached is the sentinel distance byte for an index that BFS
// generation never reaches, the initial value every PDB entry starts
// at.
const Unreached = 0xff

// BranchingFactor is the maximum degree of the 24-puzzle's move graph
// (a grid position has at most 4 neighbours), used as the base of the
// pdbstats effective-branching-factor accumulator.
const BranchingFactor = 4

// ErrOutOfRange is returned when an index outside a PDB's search space
// is requested.
var ErrOutOfRange = errors.New("pdb: index out of range")

// PDB is a flat distance table over a tileset's search space: entry i
// holds the minimum number of moves (modulo the tileset's move rules)
// to solve the partial configuration structured index i represents,
// or Unreached.
type PDB struct {
	Tileset puzzle.Tileset
	dist    []byte
}

// New allocates a PDB for ts with every entry set to Unreached.
func New(ts puzzle.Tileset) *PDB {
	dist := make([]byte, puzzle.SearchSpaceSize(ts))
	for i := range dist {
		dist[i] = Unreached
	}
	return &PDB{Tileset: ts, dist: dist}
}

// Len returns the PDB's search space size.
func (p *PDB) Len() int { return len(p.dist) }

// At returns the distance at index i.
func (p *PDB) At(i uint64) (byte, error) {
	if i >= uint64(len(p.dist)) {
		return 0, fmt.Errorf("%w: %d >= %d", ErrOutOfRange, i, len(p.dist))
	}
	return p.dist[i], nil
}

// set is unchecked; its callers (Generate and dedupRound) are trusted
// to pass valid indices.
func (p *PDB) set(i uint64, d byte) { p.dist[i] = d }

// raw exposes the backing slice to pdbtools, which must read and
// mutate entries in bulk without per-call bounds checking or copying.
func (p *PDB) raw() []byte { return p.dist }

// Raw returns the PDB's backing byte slice, indexed by combined
// structured index. Mutating it is the caller's responsibility; it is
// exposed for pdbtools' reducer and verifier, which operate on whole
// PDBs in place.
func Raw(p *PDB) []byte { return p.raw() }

// Histogram returns the count of entries at each distance 0..255
// (256 buckets, matching the original's fixed histogram length).
func (p *PDB) Histogram() [256]uint64 {
	var h [256]uint64
	for _, d := range p.dist {
		h[d]++
	}
	return h
}

// Generate fills a PDB over ts by breadth-first exploration of the
// equivalence graph rooted at the solved configuration. log, if
// non-nil, receives one progress line per BFS generation.
//
// Each round holds a slice of compact puzzles at the current
// generation g. Every puzzle is expanded by its non-forbidden moves
// (the move mask in its CompactPuzzle excludes the move that would
// undo the one that produced it), the next generation's slice is
// sorted and deduplicated on the index key, newly reached indices are
// written distance g+1, and the following round processes only the
// subset not already at distance <= g.
func Generate(ts puzzle.Tileset, log io.Writer) *PDB {
	p := New(ts)

	solved := puzzle.Solved
	startIdx := puzzle.CombineIndex(ts, puzzle.ComputeIndex(ts, &solved))
	p.set(startIdx, 0)

	round := []puzzle.CompactPuzzle{puzzle.PackPuzzle(&solved, 0)}

	for gen := byte(0); len(round) > 0; gen++ {
		if log != nil {
			fmt.Fprintf(log, "pdb: generation %d: %d configurations\n", gen, len(round))
		}

		next := expandRound(ts, p, round, gen)
		puzzle.SortCPSlice(next)
		round = dedupRound(ts, p, next, gen+1)
	}

	return p
}

// expandRound expands every compact puzzle in round by its legal,
// non-forbidden moves and returns the resulting next-generation slice
// (not yet deduplicated). A move is forbidden if it is the move that
// produced the parent (tracked by the parent's move mask) or if it
// lands on an index already known at distance <= gen.
func expandRound(ts puzzle.Tileset, p *PDB, round []puzzle.CompactPuzzle, gen byte) []puzzle.CompactPuzzle {
	next := make([]puzzle.CompactPuzzle, 0, len(round)*4)

	for _, cp := range round {
		parent := puzzle.UnpackPuzzle(cp)
		mask := cp.MoveMask()
		z := parent.ZeroLocation()

		for _, dloc := range puzzle.Moves(z) {
			dir := puzzle.DirectionOf(z, int(dloc))
			if mask&(1<<uint(dir)) != 0 {
				continue
			}

			child := parent
			child.Move(int(dloc))

			idx := puzzle.CombineIndex(ts, puzzle.ComputeIndex(ts, &child))
			if d, _ := p.At(idx); d <= gen {
				continue
			}

			childMask := reverseMoveMask(z, int(dloc))
			next = append(next, puzzle.PackPuzzle(&child, childMask))
		}
	}

	return next
}

// reverseMoveMask returns the move-mask bit identifying the direction
// that would move the empty square from dloc back to from: the move
// generation must not immediately undo.
func reverseMoveMask(from, dloc int) uint8 {
	return 1 << uint(puzzle.DirectionOf(dloc, from))
}

// dedupRound consumes a sorted slice of compact puzzles, writes
// distance dist for the first occurrence of each distinct index, and
// returns one representative per distinct index for the next round.
func dedupRound(ts puzzle.Tileset, p *PDB, sorted []puzzle.CompactPuzzle, dist byte) []puzzle.CompactPuzzle {
	out := sorted[:0]
	for i, cp := range sorted {
		if i > 0 && puzzle.CompareCP(sorted[i-1], cp) == 0 {
			continue
		}
		child := puzzle.UnpackPuzzle(cp)
		idx := puzzle.CombineIndex(ts, puzzle.ComputeIndex(ts, &child))
		if d, _ := p.At(idx); d == dist {
			continue
		}
		out = append(out, cp)
		p.set(idx, dist)
	}
	return out
}

// Save writes a PDB to w as a raw byte sequence of length
// search_space_size(T); byte i is the distance of index i. No header.
func Save(p *PDB, w io.Writer) error {
	_, err := w.Write(p.dist)
	return err
}

// Load reads a PDB over ts from r, a raw byte sequence of the exact
// length search_space_size(T).
func Load(ts puzzle.Tileset, r io.Reader) (*PDB, error) {
	want := puzzle.SearchSpaceSize(ts)
	buf := make([]byte, want)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("pdb: reading %d bytes: %w", want, err)
	}
	if uint64(n) != want {
		return nil, fmt.Errorf("pdb: expected %d bytes, got %d", want, n)
	}
	return &PDB{Tileset: ts, dist: buf}, nil
}

// LoadFile opens path and loads a PDB over ts from it.
func LoadFile(ts puzzle.Tileset, path string) (*PDB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdb: %w", err)
	}
	defer f.Close()
	return Load(ts, bufio.NewReaderSize(f, 1<<20))
}

// Source is anything that can answer a distance query by combined
// index: a generated PDB held in memory, or a MappedPDB backed by a
// read-only file mapping.
type Source interface {
	At(i uint64) (byte, error)
}
