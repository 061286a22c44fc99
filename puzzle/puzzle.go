// Package puzzle implements the state representation, move generator,
// tileset/automorphism machinery, and perfect-hash indexing scheme for
// the 24-puzzle: a 5x5 sliding-tile puzzle with tiles labelled 0..24,
// tile 0 denoting the empty square.
package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// TileCount is the number of cells on the 5x5 tray, including the
// empty square.
const TileCount = 25

// ZeroTile is the tile label used for the empty square.
const ZeroTile = 0

// side is the tray's edge length.
const side = 5

// Puzzle is a configuration of TileCount tiles on the 5x5 tray. tiles
// and grid are kept as mutually inverse permutations of {0, ..., 24}:
// tiles[t] is the grid position of tile t, grid[g] is the tile sitting
// at grid position g. Both arrays are redundant by design; Move must
// maintain the invariant.
type Puzzle struct {
	tiles [TileCount]uint8
	grid  [TileCount]uint8
}

// Solved is the solved configuration: tile i sits at grid position i.
var Solved Puzzle

func init() {
	for i := 0; i < TileCount; i++ {
		Solved.tiles[i] = uint8(i)
		Solved.grid[i] = uint8(i)
	}
}

// Tiles returns the grid position of tile t.
func (p *Puzzle) Tiles(t int) int { return int(p.tiles[t]) }

// Grid returns the tile occupying grid position g.
func (p *Puzzle) Grid(g int) int { return int(p.grid[g]) }

// ZeroLocation returns the grid position of the empty square.
func (p *Puzzle) ZeroLocation() int { return int(p.tiles[ZeroTile]) }

// moveEntry holds the up to four grid positions adjacent to a grid
// position, in a fixed N, E, S, W tie-break order. Entries beyond the
// available move count are -1.
type moveEntry [4]int8

// movetab is precomputed once: for grid position z, the adjacent
// positions in fixed N, E, S, W order.
var movetab [TileCount]moveEntry

func init() {
	for z := 0; z < TileCount; z++ {
		row, col := z/side, z%side
		var m moveEntry
		for i := range m {
			m[i] = -1
		}
		n := 0
		if row > 0 {
			m[n] = int8(z - side)
			n++
		}
		if col < side-1 {
			m[n] = int8(z + 1)
			n++
		}
		if row < side-1 {
			m[n] = int8(z + side)
			n++
		}
		if col > 0 {
			m[n] = int8(z - 1)
			n++
		}
		movetab[z] = m
	}
}

// MoveCount returns the number of legal moves (1 to 4) when the empty
// square is at grid position z.
func MoveCount(z int) int {
	n := 0
	for _, d := range movetab[z] {
		if d >= 0 {
			n++
		}
	}
	return n
}

// Moves returns the up to four grid positions the empty square at z
// can move to, in fixed N, E, S, W order. The slice has length
// MoveCount(z); callers must not mutate it.
func Moves(z int) []int8 {
	m := movetab[z]
	n := MoveCount(z)
	return m[:n]
}

// Cardinal direction labels, fixed to match movetab's N, E, S, W
// construction order. FSM pruners (see the search package) key their
// transition tables on these labels rather than on a move's position
// within Moves(z), since that position shifts depending on which
// moves happen to be legal at a given grid position.
const (
	DirN = iota
	DirE
	DirS
	DirW
)

// DirectionOf returns the cardinal direction label of the move from
// grid position z to the adjacent position dloc.
func DirectionOf(z, dloc int) int {
	switch dloc - z {
	case -side:
		return DirN
	case 1:
		return DirE
	case side:
		return DirS
	case -1:
		return DirW
	default:
		panic("puzzle: DirectionOf: positions are not adjacent")
	}
}

// Move slides the empty square to grid position dloc, modifying p. It
// is the caller's responsibility to ensure dloc is adjacent to the
// empty square's current location (callers enumerate adjacency via
// Moves); this is unchecked.
func (p *Puzzle) Move(dloc int) {
	zloc := p.ZeroLocation()
	dtile := p.grid[dloc]

	p.grid[dloc] = ZeroTile
	p.grid[zloc] = dtile

	p.tiles[dtile] = uint8(zloc)
	p.tiles[ZeroTile] = uint8(dloc)
}

// Valid reports whether tiles and grid are mutually inverse
// permutations of {0, ..., 24} and whether the configuration's parity
// plus the empty square's row and column distance from grid position 0
// matches the solved state's parity (every move flips both), i.e.
// whether the puzzle is solvable at all.
func (p *Puzzle) Valid() bool {
	var seen [TileCount]bool
	for t := 0; t < TileCount; t++ {
		g := p.tiles[t]
		if int(g) >= TileCount || seen[g] {
			return false
		}
		seen[g] = true
		if p.grid[g] != uint8(t) {
			return false
		}
	}
	z := int(p.tiles[ZeroTile])
	return (permutationParity(p.tiles[:])+z/side+z%side)%2 == permutationParity(Solved.tiles[:])
}

// permutationParity returns 0 for an even permutation, 1 for an odd
// one, computed by counting transpositions via cycle decomposition.
func permutationParity(perm []uint8) int {
	var visited [TileCount]bool
	parity := 0
	for i := range perm {
		if visited[i] {
			continue
		}
		cycleLen := 0
		for j := i; !visited[j]; j = int(perm[j]) {
			visited[j] = true
			cycleLen++
		}
		if cycleLen > 0 {
			parity += cycleLen - 1
		}
	}
	return parity % 2
}

// StrLen is the original implementation's PUZZLE_STR_LEN buffer
// budget. It is larger than String ever needs: 25 tile numbers of up
// to two digits, space separated, take at most 74 bytes.
const StrLen = 151

// String renders p as 25 space-separated tile labels in grid order,
// matching the textual puzzle format accepted by Parse.
func (p Puzzle) String() string {
	var b strings.Builder
	for g := 0; g < TileCount; g++ {
		if g > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(p.grid[g])))
	}
	return b.String()
}

// Parse reads a puzzle from 25 whitespace-separated tile labels (grid
// order, as produced by String) and reports an error if the input is
// malformed or does not represent a valid permutation.
func Parse(line string) (Puzzle, error) {
	fields := strings.Fields(line)
	if len(fields) != TileCount {
		return Puzzle{}, fmt.Errorf("puzzle: expected %d tile labels, got %d", TileCount, len(fields))
	}

	var p Puzzle
	var seen [TileCount]bool
	for g, f := range fields {
		t, err := strconv.Atoi(f)
		if err != nil || t < 0 || t >= TileCount {
			return Puzzle{}, fmt.Errorf("puzzle: invalid tile label %q", f)
		}
		if seen[t] {
			return Puzzle{}, fmt.Errorf("puzzle: tile %d repeated", t)
		}
		seen[t] = true
		p.grid[g] = uint8(t)
		p.tiles[t] = uint8(g)
	}

	return p, nil
}
