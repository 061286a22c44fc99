package puzzle

import "sort"

// Index is the structured perfect-hash key for a tileset T: which of
// the 25 grid cells its tiles occupy (Combo, a rank in
// [0, C(25,k))) and in what relative order those tiles appear in the
// grid (Perm, a rank in [0, k!)). Combining the two with
// CombineIndex yields the dense PDB index.
type Index struct {
	Combo uint64
	Perm  uint64
}

// SearchSpaceSize returns the number of distinct indices a PDB over ts
// holds: C(25, k) ways to choose which cells hold ts's tiles, times k!
// orderings of those tiles among themselves. If ts includes the zero
// tile, the zero tile is simply one more tracked tile and is already
// accounted for by k = ts.Count().
func SearchSpaceSize(ts Tileset) uint64 {
	k := ts.Count()
	return Binomial(TileCount, k) * factorial(k)
}

var factorialTable [TileCount + 1]uint64

func init() {
	factorialTable[0] = 1
	for i := 1; i <= TileCount; i++ {
		factorialTable[i] = factorialTable[i-1] * uint64(i)
	}
}

func factorial(k int) uint64 {
	return factorialTable[k]
}

// ComputeIndex computes the structured index of p under tileset ts in
// O(k log k): the grid positions ts's tiles occupy, and the rank of
// the permutation those tiles form relative to each other when read
// off the grid in position order.
func ComputeIndex(ts Tileset, p *Puzzle) Index {
	k := ts.Count()

	positions := EmptyTileset
	for t := ts; !t.Empty(); t = t.RemoveLeast() {
		positions = positions.Add(p.Tiles(t.Least()))
	}

	labels := make([]int, 0, k)
	for pos := positions; !pos.Empty(); pos = pos.RemoveLeast() {
		labels = append(labels, p.Grid(pos.Least()))
	}

	return Index{
		Combo: RankCombination(positions),
		Perm:  permRank(labels),
	}
}

// unfilled marks a grid cell InvertIndex has not yet assigned a tile
// to.
const unfilled = 0xff

// InvertIndex reconstructs a puzzle matching structured index idx
// under tileset ts. Tiles not in ts are filled into the remaining grid
// cells in ascending label order, a canonical but otherwise arbitrary
// choice; if that leaves the puzzle unsolvable (see Valid) and at least
// two non-zero tiles lie outside ts, the two highest-labelled of them
// swap cells. InvertIndex is only required to satisfy
// ComputeIndex(ts, InvertIndex(ts, idx)) == idx, not to recover the
// original puzzle that produced idx.
func InvertIndex(ts Tileset, idx Index) Puzzle {
	k := ts.Count()
	positions := UnrankCombination(k, idx.Combo)

	sortedLabels := make([]int, 0, k)
	for t := ts; !t.Empty(); t = t.RemoveLeast() {
		sortedLabels = append(sortedLabels, t.Least())
	}
	labels := permUnrank(sortedLabels, idx.Perm)

	var p Puzzle
	for i := range p.grid {
		p.grid[i] = unfilled
	}

	i := 0
	for pos := positions; !pos.Empty(); pos = pos.RemoveLeast() {
		p.grid[pos.Least()] = uint8(labels[i])
		i++
	}

	fillRemaining(&p, ts)
	p.rebuildTilesFromGrid()

	if !p.Valid() {
		hi, lo := -1, -1
		for t := TileCount - 1; t > ZeroTile && lo < 0; t-- {
			if ts.Has(t) {
				continue
			}
			if hi < 0 {
				hi = t
			} else {
				lo = t
			}
		}
		if lo >= 0 {
			p.grid[p.tiles[hi]], p.grid[p.tiles[lo]] = uint8(lo), uint8(hi)
			p.rebuildTilesFromGrid()
		}
	}

	return p
}

// fillRemaining assigns the tile labels outside ts to p's still-empty
// grid cells, in ascending order of both.
func fillRemaining(p *Puzzle, ts Tileset) {
	next := 0
	for g := 0; g < TileCount; g++ {
		if p.grid[g] != unfilled {
			continue
		}
		for ts.Has(next) {
			next++
		}
		p.grid[g] = uint8(next)
		next++
	}
}

// rebuildTilesFromGrid recomputes p.tiles from p.grid, restoring the
// mutually-inverse invariant after grid has been assigned directly.
func (p *Puzzle) rebuildTilesFromGrid() {
	for g, t := range p.grid {
		p.tiles[t] = uint8(g)
	}
}

// CombineIndex packs a structured index into a single dense integer in
// [0, SearchSpaceSize(ts)).
func CombineIndex(ts Tileset, idx Index) uint64 {
	return idx.Combo*factorial(ts.Count()) + idx.Perm
}

// SplitIndex inverts CombineIndex.
func SplitIndex(ts Tileset, combined uint64) Index {
	f := factorial(ts.Count())
	return Index{Combo: combined / f, Perm: combined % f}
}

// permRank returns the rank, in [0, len(labels)!), of labels relative
// to their own sorted order: the most-significant-digit-first
// factorial-number-system encoding of how labels' relative order
// differs from ascending.
func permRank(labels []int) uint64 {
	pool := append([]int(nil), labels...)
	sort.Ints(pool)

	var rank uint64
	for _, v := range labels {
		idx := sort.SearchInts(pool, v)
		rank = rank*uint64(len(pool)) + uint64(idx)
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return rank
}

// permUnrank inverts permRank: given the sorted pool of labels and a
// rank, reconstructs the original label sequence.
func permUnrank(sortedLabels []int, rank uint64) []int {
	pool := append([]int(nil), sortedLabels...)
	n := len(pool)
	out := make([]int, n)

	for i := 0; i < n; i++ {
		f := factorial(n - 1 - i)
		idx := int(rank / f)
		rank %= f
		out[i] = pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}
