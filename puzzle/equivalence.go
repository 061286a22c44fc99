package puzzle

// EqClass returns the equivalence class of p under tileset ts: the
// connected component of grid positions reachable by moving the empty
// square through cells not currently occupied by a ts tile, starting
// from p's current zero location. Every configuration reachable this
// way shares p's PDB distance under ts, because none of those moves
// relocates a tile that is a member of ts. ts names tile labels, not
// grid positions, so it must first be translated through p into the
// positions those tiles actually occupy before flooding; only for the
// solved configuration do the two coincide.
func EqClass(ts Tileset, p *Puzzle) Tileset {
	occupied := EmptyTileset
	for t := ts; !t.Empty(); t = t.RemoveLeast() {
		occupied = occupied.Add(p.Tiles(t.Least()))
	}
	return occupied.Flood(p.ZeroLocation())
}

// ReduceEqClass returns the boundary of eq: the members of eq that
// have at least one grid-adjacent neighbour outside eq. Only boundary
// positions can reach a configuration outside the equivalence class in
// one real move, so callers enumerating eq's outward transitions (the
// PDB dominating-set reducer's reach computation) need not visit
// purely interior members.
func ReduceEqClass(eq Tileset) Tileset {
	reduced := EmptyTileset
	for t := eq; !t.Empty(); t = t.RemoveLeast() {
		z := t.Least()
		for _, d := range Moves(z) {
			if !eq.Has(int(d)) {
				reduced = reduced.Add(z)
				break
			}
		}
	}
	return reduced
}

// IsCanonical reports whether p is the canonical representative of its
// equivalence class eq under tileset ts: the lexicographically least
// configuration (by grid array) reachable by moving the empty square
// within eq. Swapping the empty square with a cell in eq never moves
// a ts tile, so every such swap is index-neutral for ts and produces
// another member of the same class; exactly one member minimizes the
// grid array, making IsCanonical a well-defined per-class selector.
func IsCanonical(ts Tileset, eq Tileset, p *Puzzle) bool {
	zloc := p.ZeroLocation()

	for t := eq; !t.Empty(); t = t.RemoveLeast() {
		z := t.Least()
		if z == zloc {
			continue
		}

		cand := *p
		MoveWithinClass(&cand, eq, z)
		if lessGrid(&cand, p) {
			return false
		}
	}

	return true
}

// MoveWithinClass slides p's empty square from its current location to
// target by a shortest sequence of real moves confined to eq, applying
// each intermediate move to p in place. A single Move(target) is only
// correct when target is adjacent to the current zero location;
// members of an equivalence class farther away are only reachable by
// actually replaying the path, since each step cyclically shifts the
// tiles it passes rather than merely swapping the two endpoints.
// No-op if target is already the zero location.
func MoveWithinClass(p *Puzzle, eq Tileset, target int) {
	zloc := p.ZeroLocation()
	if zloc == target {
		return
	}
	for _, step := range classPath(eq, zloc, target) {
		p.Move(step)
	}
}

// classPath returns the grid positions, in visiting order, of a
// shortest path of adjacent moves from start to target confined to eq,
// found by breadth-first search (the move graph is unweighted).
func classPath(eq Tileset, start, target int) []int {
	parent := map[int]int{start: -1}
	queue := []int{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			break
		}
		for _, d := range Moves(cur) {
			n := int(d)
			if !eq.Has(n) {
				continue
			}
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = cur
			queue = append(queue, n)
		}
	}

	var path []int
	for cur := target; cur != start; cur = parent[cur] {
		path = append([]int{cur}, path...)
	}
	return path
}

// lessGrid reports whether a's grid array is lexicographically less
// than b's.
func lessGrid(a, b *Puzzle) bool {
	for i := 0; i < TileCount; i++ {
		if a.grid[i] != b.grid[i] {
			return a.grid[i] < b.grid[i]
		}
	}
	return false
}
