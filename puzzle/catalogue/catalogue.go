// Package catalogue loads and queries a composite admissible heuristic
// built from many pattern databases, optionally grouped into additive
// terms and extended with automorphism-derived transposed twins.
package catalogue

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tatami-tools/puzzle24/puzzle"
	"github.com/tatami-tools/puzzle24/puzzle/pdb"
)

// ErrNoSuchTileset is returned when a manifest names a tileset whose
// PDB file cannot be found in pdbdir.
var ErrNoSuchTileset = errors.New("catalogue: no PDB file for tileset")

// Entry is one PDB bound into the catalogue: the tileset it was
// declared over, the canonical tileset its PDB file is actually
// indexed by, and the automorphism that morphs a query puzzle into
// the PDB's canonical frame.
type Entry struct {
	Tileset      puzzle.Tileset
	Canonical    puzzle.Tileset
	Automorphism uint
	Source       pdb.Source
}

// distance reads the distance entry's PDB assigns to p, after morphing
// p into the PDB's canonical frame.
func (e Entry) distance(p *puzzle.Puzzle) (int, error) {
	q := *p
	puzzle.Morph(&q, e.Automorphism)
	idx := puzzle.CombineIndex(e.Canonical, puzzle.ComputeIndex(e.Canonical, &q))
	d, err := e.Source.At(idx)
	if err != nil {
		return 0, err
	}
	return int(d), nil
}

// Term is a maximal group of entries declared additive: their
// distances are summed. Terms must be over pairwise disjoint tilesets
// for the sum to remain admissible; Load does not itself verify this,
// trusting the manifest's author.
type Term []Entry

// Catalogue is an ordered list of additive terms; the heuristic value
// of a puzzle is the maximum term sum.
type Catalogue struct {
	Terms  []Term
	mapped []*pdb.MappedPDB
}

// Load parses the manifest at path and, for each declared tileset,
// computes its canonical automorphism, memory-maps the corresponding
// PDB file from dir, and records an Entry. log, if non-nil, receives
// one progress line per loaded PDB.
func Load(path, dir string, flags Flags, log io.Writer) (*Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalogue: opening manifest %s: %w", path, err)
	}
	defer f.Close()

	groups, err := parseManifest(f, flags)
	if err != nil {
		return nil, err
	}

	cat := &Catalogue{}
	for _, group := range groups {
		term := make(Term, 0, len(group))
		for _, ts := range group {
			entry, mapped, err := loadEntry(ts, dir, log)
			if err != nil {
				cat.Close()
				return nil, err
			}
			cat.mapped = append(cat.mapped, mapped)
			term = append(term, entry)
		}
		cat.Terms = append(cat.Terms, term)
	}

	return cat, nil
}

func loadEntry(ts puzzle.Tileset, dir string, log io.Writer) (Entry, *pdb.MappedPDB, error) {
	a := puzzle.CanonicalAutomorphism(ts)
	canon := puzzle.TilesetMorph(ts, a)

	p := filepath.Join(dir, fileName(canon))
	mapped, err := pdb.OpenMapped(canon, p)
	if err != nil {
		return Entry{}, nil, fmt.Errorf("%w: %s: %v", ErrNoSuchTileset, p, err)
	}

	if log != nil {
		fmt.Fprintf(log, "catalogue: loaded %s (automorphism %d)\n", p, a)
	}

	return Entry{Tileset: ts, Canonical: canon, Automorphism: a, Source: mapped}, mapped, nil
}

// Close releases every memory-mapped PDB file the catalogue holds.
func (c *Catalogue) Close() error {
	var firstErr error
	for _, m := range c.mapped {
		if err := m.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// AddTranspositions walks the catalogue's entries and, for every entry
// whose diagonal transpose yields a distinct admissible tileset, adds
// a new singleton term querying the same underlying PDB through the
// composed automorphism (transpose, then the entry's own
// canonicalizing morphism). This reuses the existing PDB file: the
// transposed tileset's distances are recoverable from the original
// PDB because diagonal transposition is itself a tray automorphism.
func (c *Catalogue) AddTranspositions() {
	var entries []Entry
	for _, term := range c.Terms {
		entries = append(entries, term...)
	}

	for _, e := range entries {
		const diagonalTranspose = 4
		transposed := puzzle.TilesetMorph(e.Tileset, diagonalTranspose)
		if transposed == e.Tileset {
			continue
		}
		if !puzzle.IsAdmissibleMorphism(e.Tileset, diagonalTranspose) {
			continue
		}

		twin := Entry{
			Tileset:      transposed,
			Canonical:    e.Canonical,
			Automorphism: puzzle.ComposeMorphisms(diagonalTranspose, e.Automorphism),
			Source:       e.Source,
		}
		c.Terms = append(c.Terms, Term{twin})
	}
}

// Heuristic returns the admissible heuristic value of p: the maximum,
// across terms, of the sum of that term's entries' distances.
func Heuristic(c *Catalogue, p *puzzle.Puzzle) (int, error) {
	best := 0
	for _, term := range c.Terms {
		sum := 0
		for _, e := range term {
			d, err := e.distance(p)
			if err != nil {
				return 0, err
			}
			sum += d
		}
		if sum > best {
			best = sum
		}
	}
	return best, nil
}
