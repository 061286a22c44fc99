package puzzle

import "math/bits"

// Tileset is a subset of {0, ..., 24}, the 25 tile labels, stored as a
// 25-bit mask in the low bits of a uint32.
type Tileset uint32

// EmptyTileset contains no tiles.
const EmptyTileset Tileset = 0

// FullTileset contains all 25 tiles.
const FullTileset Tileset = 1<<TileCount - 1

// Has reports whether t is a member of ts.
func (ts Tileset) Has(t int) bool {
	return ts&(1<<uint(t)) != 0
}

// Add returns ts with t added.
func (ts Tileset) Add(t int) Tileset {
	return ts | 1<<uint(t)
}

// Remove returns ts with t removed.
func (ts Tileset) Remove(t int) Tileset {
	return ts &^ (1 << uint(t))
}

// Empty reports whether ts has no members.
func (ts Tileset) Empty() bool {
	return ts == 0
}

// Count returns the number of tiles in ts.
func (ts Tileset) Count() int {
	return bits.OnesCount32(uint32(ts))
}

// Least returns the lowest-numbered tile in ts. The result is
// undefined if ts is empty.
func (ts Tileset) Least() int {
	return bits.TrailingZeros32(uint32(ts))
}

// RemoveLeast returns ts with its lowest-numbered member removed.
func (ts Tileset) RemoveLeast() Tileset {
	return ts & (ts - 1)
}

// Complement returns the tiles not in ts, restricted to the 25-tile
// universe.
func (ts Tileset) Complement() Tileset {
	return FullTileset &^ ts
}

// Flood returns the connected component containing grid position z in
// the complement of ts, under the tray's 4-adjacency. z itself need
// not be a member of ts's complement's connected region beyond being
// the seed; callers pass the zero tile's location.
func (ts Tileset) Flood(z int) Tileset {
	region := EmptyTileset
	var stack [TileCount]int8
	sp := 0
	stack[sp] = int8(z)
	sp++
	region = region.Add(z)

	for sp > 0 {
		sp--
		cur := int(stack[sp])
		for _, d := range Moves(cur) {
			n := int(d)
			if ts.Has(n) || region.Has(n) {
				continue
			}
			region = region.Add(n)
			stack[sp] = int8(n)
			sp++
		}
	}

	return region
}
