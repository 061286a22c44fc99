package puzzle

// Neighbors returns the combined indices reachable from idx (under
// tileset ts) by exactly one real move that relocates a ts tile:
// InvertIndex(ts, idx)'s equivalence class is explored via its
// boundary (ReduceEqClass), and from each boundary cell every move
// that crosses out of the class yields one neighbour. The result may
// contain duplicates when more than one boundary cell reaches the
// same neighbouring index; callers that need a set should dedupe.
//
// This is the adjacency PDB generation's BFS frontier and the
// dominating-set reducer and verifier's reach/neighbour computations
// all walk, expressed directly in index space rather than over
// packed BFS records.
func Neighbors(ts Tileset, idx uint64) []uint64 {
	p := InvertIndex(ts, SplitIndex(ts, idx))
	eq := EqClass(ts, &p)
	boundary := ReduceEqClass(eq)

	var out []uint64
	for t := boundary; !t.Empty(); t = t.RemoveLeast() {
		z := t.Least()

		cand := p
		MoveWithinClass(&cand, eq, z)

		for _, dloc := range Moves(z) {
			if eq.Has(int(dloc)) {
				continue
			}
			child := cand
			child.Move(int(dloc))
			out = append(out, CombineIndex(ts, ComputeIndex(ts, &child)))
		}
	}
	return out
}
