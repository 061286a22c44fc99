package pdbtools

import (
	"fmt"

	"github.com/tatami-tools/puzzle24/puzzle"
	"github.com/tatami-tools/puzzle24/puzzle/pdb"
)

// Verify checks a fully generated PDB's internal consistency. For
// every index, only the canonical representative of its equivalence
// class is examined, and four invariants must hold: (1) its distance
// is reached; (2) every neighbour's distance differs from it by at
// most 1; (3) every member of its equivalence class shares the same
// distance; (4) it has a neighbour one step closer, unless its
// distance is 0. Returns nil iff every class satisfies all four.
func Verify(ts puzzle.Tileset, p *pdb.PDB) error {
	n := uint64(p.Len())
	for i := uint64(0); i < n; i++ {
		if err := verifyIndex(ts, p, i); err != nil {
			return err
		}
	}
	return nil
}

func verifyIndex(ts puzzle.Tileset, p *pdb.PDB, i uint64) error {
	cfg := puzzle.InvertIndex(ts, puzzle.SplitIndex(ts, i))
	eq := puzzle.EqClass(ts, &cfg)
	if !puzzle.IsCanonical(ts, eq, &cfg) {
		return nil
	}

	d, err := p.At(i)
	if err != nil {
		return err
	}
	if d == pdb.Unreached {
		return fmt.Errorf("pdbtools: verify: index %d (%s): distance unreached", i, cfg.String())
	}

	if err := verifyEqClass(ts, p, &cfg, eq, i, d); err != nil {
		return err
	}

	return verifyNeighbors(ts, p, i, d)
}

// verifyEqClass checks invariant 3: every member of i's equivalence
// class shares distance d.
func verifyEqClass(ts puzzle.Tileset, p *pdb.PDB, cfg *puzzle.Puzzle, eq puzzle.Tileset, i uint64, d byte) error {
	zloc := cfg.ZeroLocation()
	for t := eq; !t.Empty(); t = t.RemoveLeast() {
		z := t.Least()
		if z == zloc {
			continue
		}

		member := *cfg
		puzzle.MoveWithinClass(&member, eq, z)
		midx := puzzle.CombineIndex(ts, puzzle.ComputeIndex(ts, &member))

		md, err := p.At(midx)
		if err != nil {
			return err
		}
		if md != d {
			return fmt.Errorf("pdbtools: verify: index %d: equivalence class member %d has distance %d, expected %d", i, midx, md, d)
		}
	}
	return nil
}

// verifyNeighbors checks invariants 2 and 4: every neighbour's
// distance differs from d by at most 1, and (unless d == 0) at least
// one neighbour has distance d-1.
func verifyNeighbors(ts puzzle.Tileset, p *pdb.PDB, i uint64, d byte) error {
	haveLower := d == 0

	seen := make(map[uint64]bool)
	for _, ni := range puzzle.Neighbors(ts, i) {
		if seen[ni] {
			continue
		}
		seen[ni] = true

		nd, err := p.At(ni)
		if err != nil {
			return err
		}
		if nd == pdb.Unreached {
			continue
		}

		diff := int(nd) - int(d)
		if diff > 1 || diff < -1 {
			return fmt.Errorf("pdbtools: verify: index %d (distance %d): neighbour %d has distance %d", i, d, ni, nd)
		}
		if diff == -1 {
			haveLower = true
		}
	}

	if !haveLower {
		return fmt.Errorf("pdbtools: verify: index %d (distance %d): no neighbour at distance %d", i, d, int(d)-1)
	}
	return nil
}
