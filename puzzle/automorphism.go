package puzzle

// AutomorphismCount is the number of symmetries of the 5x5 tray: the
// dihedral group D4 (4 rotations, 4 reflections).
const AutomorphismCount = 8

// automorphisms holds, for each of the 8 tray symmetries, the forward
// permutation vector and its inverse, padded from 25 to 32 entries for
// a future vectorized composePermutation32Impl operating on whole
// tiles/grid arrays in one pass. Morphism 0 is the identity, morphism
// 4 is the main-diagonal transpose.
var automorphisms = [AutomorphismCount][2][32]uint8{
	{ // 0: identity
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
	},
	{ // 1: rotate 90 (inverse is 3)
		{20, 15, 10, 5, 0, 21, 16, 11, 6, 1, 22, 17, 12, 7, 2, 23, 18, 13, 8, 3, 24, 19, 14, 9, 4},
		{4, 9, 14, 19, 24, 3, 8, 13, 18, 23, 2, 7, 12, 17, 22, 1, 6, 11, 16, 21, 0, 5, 10, 15, 20},
	},
	{ // 2: rotate 180 (self-inverse)
		{24, 23, 22, 21, 20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		{24, 23, 22, 21, 20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	},
	{ // 3: rotate 270 (inverse is 1)
		{4, 9, 14, 19, 24, 3, 8, 13, 18, 23, 2, 7, 12, 17, 22, 1, 6, 11, 16, 21, 0, 5, 10, 15, 20},
		{20, 15, 10, 5, 0, 21, 16, 11, 6, 1, 22, 17, 12, 7, 2, 23, 18, 13, 8, 3, 24, 19, 14, 9, 4},
	},
	{ // 4: main-diagonal transpose (self-inverse)
		{0, 5, 10, 15, 20, 1, 6, 11, 16, 21, 2, 7, 12, 17, 22, 3, 8, 13, 18, 23, 4, 9, 14, 19, 24},
		{0, 5, 10, 15, 20, 1, 6, 11, 16, 21, 2, 7, 12, 17, 22, 3, 8, 13, 18, 23, 4, 9, 14, 19, 24},
	},
	{ // 5: horizontal-axis reflection (self-inverse)
		{20, 21, 22, 23, 24, 15, 16, 17, 18, 19, 10, 11, 12, 13, 14, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4},
		{20, 21, 22, 23, 24, 15, 16, 17, 18, 19, 10, 11, 12, 13, 14, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4},
	},
	{ // 6: anti-transpose (self-inverse)
		{24, 19, 14, 9, 4, 23, 18, 13, 8, 3, 22, 17, 12, 7, 2, 21, 16, 11, 6, 1, 20, 15, 10, 5, 0},
		{24, 19, 14, 9, 4, 23, 18, 13, 8, 3, 22, 17, 12, 7, 2, 21, 16, 11, 6, 1, 20, 15, 10, 5, 0},
	},
	{ // 7: vertical-axis reflection (self-inverse)
		{4, 3, 2, 1, 0, 9, 8, 7, 6, 5, 14, 13, 12, 11, 10, 19, 18, 17, 16, 15, 24, 23, 22, 21, 20},
		{4, 3, 2, 1, 0, 9, 8, 7, 6, 5, 14, 13, 12, 11, 10, 19, 18, 17, 16, 15, 24, 23, 22, 21, 20},
	},
}

// automorphismProduct[a][b] is the automorphism equivalent to applying
// b, then a: its forward vector is fwd_a[fwd_b[i]].
var automorphismProduct = [AutomorphismCount][AutomorphismCount]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7},
	{1, 2, 3, 0, 5, 6, 7, 4},
	{2, 3, 0, 1, 6, 7, 4, 5},
	{3, 0, 1, 2, 7, 4, 5, 6},
	{4, 7, 6, 5, 0, 3, 2, 1},
	{5, 4, 7, 6, 1, 0, 3, 2},
	{6, 5, 4, 7, 2, 1, 0, 3},
	{7, 6, 5, 4, 3, 2, 1, 0},
}

// ComposeMorphisms returns the automorphism equivalent to applying
// first a, then b.
func ComposeMorphisms(a, b uint) uint {
	return uint(automorphismProduct[b][a])
}

// InverseAutomorphism returns the automorphism undoing a. All
// automorphisms are self-inverse except 1 and 3, which invert each
// other.
func InverseAutomorphism(a uint) uint {
	if a|2 == 3 {
		return a ^ 2
	}
	return a
}

// Transpose is equivalent to Morph(p, 4): reflecting the tray along
// its main diagonal.
func Transpose(p *Puzzle) {
	Morph(p, 4)
}

// Morph conjugates both of p's arrays by automorphism a and then
// restores the empty square to the grid position automorphism a maps
// its prior location to. This "undo the zero" correction is necessary
// for distances read from a zero-aware PDB to remain meaningful after
// morphing: see IsAdmissibleMorphism.
//
// The PDB entry for p under tileset ts equals the PDB entry for
// Morph(p, a) under TilesetMorph(ts, a).
func Morph(p *Puzzle, a uint) {
	fwd := &automorphisms[a][0]
	inv := &automorphisms[a][1]

	var tiles32, grid32 [32]uint8
	copy(tiles32[:], p.tiles[:])
	copy(grid32[:], p.grid[:])

	// result[i] = fwd[old[inv[i]]]: conjugate by a, i.e. compose
	// old with inv, then compose fwd with that.
	innerTiles := composePermutation32Impl(&tiles32, inv)
	tiles32 = composePermutation32Impl(fwd, &innerTiles)

	innerGrid := composePermutation32Impl(&grid32, inv)
	grid32 = composePermutation32Impl(fwd, &innerGrid)

	copy(p.tiles[:], tiles32[:TileCount])
	copy(p.grid[:], grid32[:TileCount])

	// undo-the-zero: conjugation relabels the empty square as tile
	// fwd[0]; swap it with that tile, so the empty square ends up where
	// a sends its prior location.
	p.Move(int(p.tiles[fwd[0]]))
}

// TilesetMorph sends tileset ts through automorphism a and returns the
// resulting tileset.
func TilesetMorph(ts Tileset, a uint) Tileset {
	fwd := &automorphisms[a][0]
	out := EmptyTileset
	for t := ts; !t.Empty(); t = t.RemoveLeast() {
		out = out.Add(int(fwd[t.Least()]))
	}
	return out
}

// IsAdmissibleMorphism reports whether morphing tileset ts by
// automorphism a preserves the distances its PDB computes: the region
// the zero tile may occupy in the solved configuration (the flood
// region of ts's complement from grid position 0, if ts tracks the zero
// tile, else the whole complement) must, once sent through a, still
// contain grid position 0.
func IsAdmissibleMorphism(ts Tileset, a uint) bool {
	hasZero := ts.Has(ZeroTile)
	ts = ts.Remove(ZeroTile)

	r := ts.Complement()
	if hasZero {
		r = r.Flood(ZeroTile)
	}

	return TilesetMorph(r, a).Has(ZeroTile)
}

// CanonicalAutomorphism finds the automorphism yielding the
// lexicographically least tileset (ignoring the zero tile) among all
// admissible morphs of ts, used at catalogue load time to fold
// symmetric PDBs together. Morphism 0 (identity) is always admissible
// and is never displaced by a tie.
func CanonicalAutomorphism(ts Tileset) uint {
	tsnz := ts.Remove(ZeroTile)
	minTs := tsnz
	min := uint(0)

	for a := uint(1); a < AutomorphismCount; a++ {
		morphed := TilesetMorph(tsnz, a)
		if morphed >= minTs || !IsAdmissibleMorphism(ts, a) {
			continue
		}
		minTs = morphed
		min = a
	}

	return min
}
