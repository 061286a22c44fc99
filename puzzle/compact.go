package puzzle

import "sort"

// moveMaskBits is the width of the parent-move mask packed into each
// CompactPuzzle: one bit per cardinal direction (N, E, S, W, in that
// fixed order), set when moving the empty square that way would
// return to the configuration this record was generated from.
const moveMaskBits = 4

// tileBits is the width, in bits, of one tile's packed grid position.
const tileBits = 5

// packedTileBits is the total width spent on the 24 non-zero tiles'
// positions; the move mask starts immediately above it.
const packedTileBits = (TileCount - 1) * tileBits

// CompactPuzzle is a 128-bit packed BFS generation record: the grid
// positions of the 24 non-zero tiles (5 bits each; the empty square's
// position is whichever grid position none of them claims) plus a
// 4-bit move mask. Two records with equal Lo/Hi after ClearMoveMask
// represent the same configuration.
type CompactPuzzle struct {
	Lo uint64
	Hi uint64
}

func setField(cp *CompactPuzzle, offset, width int, value uint64) {
	mask := uint64(1)<<uint(width) - 1
	value &= mask
	if offset < 64 {
		cp.Lo &^= mask << uint(offset)
		cp.Lo |= value << uint(offset)
		if offset+width > 64 {
			spill := offset + width - 64
			spillMask := uint64(1)<<uint(spill) - 1
			cp.Hi &^= spillMask
			cp.Hi |= value >> uint(width-spill)
		}
		return
	}
	o := uint(offset - 64)
	cp.Hi &^= mask << o
	cp.Hi |= value << o
}

func getField(cp *CompactPuzzle, offset, width int) uint64 {
	mask := uint64(1)<<uint(width) - 1
	if offset < 64 {
		v := (cp.Lo >> uint(offset)) & mask
		if offset+width > 64 {
			spill := offset + width - 64
			spillMask := uint64(1)<<uint(spill) - 1
			v |= (cp.Hi & spillMask) << uint(width-spill)
		}
		return v
	}
	o := uint(offset - 64)
	return (cp.Hi >> o) & mask
}

// PackPuzzle packs p's configuration and a parent move mask into a
// CompactPuzzle.
func PackPuzzle(p *Puzzle, moveMask uint8) CompactPuzzle {
	var cp CompactPuzzle
	for t := 1; t < TileCount; t++ {
		setField(&cp, (t-1)*tileBits, tileBits, uint64(p.Tiles(t)))
	}
	setField(&cp, packedTileBits, moveMaskBits, uint64(moveMask))
	return cp
}

// UnpackPuzzle recovers the puzzle configuration packed into cp,
// ignoring its move mask.
func UnpackPuzzle(cp CompactPuzzle) Puzzle {
	var p Puzzle
	occupied := EmptyTileset
	for t := 1; t < TileCount; t++ {
		pos := int(getField(&cp, (t-1)*tileBits, tileBits))
		p.grid[pos] = uint8(t)
		occupied = occupied.Add(pos)
	}
	zero := occupied.Complement().Least()
	p.grid[zero] = ZeroTile
	p.rebuildTilesFromGrid()
	return p
}

// MoveMask returns the 4-bit parent move mask: bit i set means move
// direction i (N, E, S, W) would return to the configuration this
// record was generated from.
func (cp CompactPuzzle) MoveMask() uint8 {
	return uint8(getField(&cp, packedTileBits, moveMaskBits))
}

// ClearMoveMask zeroes cp's move mask in place, leaving only the
// packed configuration.
func (cp *CompactPuzzle) ClearMoveMask() {
	setField(cp, packedTileBits, moveMaskBits, 0)
}

// CompareCP orders two records by configuration only, ignoring their
// move masks: it is the comparator BFS generation sorts a generation's
// records with before deduplicating on the index key.
func CompareCP(a, b CompactPuzzle) int {
	a.ClearMoveMask()
	b.ClearMoveMask()
	switch {
	case a.Hi != b.Hi:
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	case a.Lo != b.Lo:
		if a.Lo < b.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// SortCPSlice sorts a slice of records by configuration, ignoring move
// masks, readying it for the adjacent-duplicate scan BFS generation
// uses to deduplicate a round.
func SortCPSlice(s []CompactPuzzle) {
	sort.Slice(s, func(i, j int) bool { return CompareCP(s[i], s[j]) < 0 })
}
