// Package pdbtools implements post-generation PDB processing: an
// approximate minimum dominating-set size reducer and an internal
// consistency verifier, both operating on a PDB as a flat
// equivalence-class array.
package pdbtools

import (
	"container/heap"
	"fmt"

	"github.com/tatami-tools/puzzle24/puzzle"
	"github.com/tatami-tools/puzzle24/puzzle/pdb"
)

// reachLen bounds the number of still-undominated neighbours a single
// vertex may cover; exceeding it signals a move-graph degree far
// beyond the 24-puzzle's and is an internal invariant violation.
const reachLen = 256

// Reduced is the result of Reduce: a greedy, approximate minimum
// dominating set of p's equivalence graph. Kept[i] is true when index
// i's distance was retained verbatim; every other reachable index was
// dominated by some kept (or itself later-dominated) neighbour exactly
// one step closer to the solved state, so its distance equals that
// neighbour's distance + 1 and Reduce has overwritten it with
// pdb.Unreached in the PDB itself.
type Reduced struct {
	Kept []bool
}

// Reduce shrinks p in place over ts's equivalence graph: starting from
// the farthest distance class, it greedily picks, at each distance
// d-1, the vertices covering the most still-undominated distance-d
// vertices first (a binary max-heap keyed by reach size, refreshed
// lazily on extraction since siblings' selections shrink other
// vertices' reach), until every distance-d vertex is dominated. Every
// dominated index's distance is then overwritten with pdb.Unreached,
// since it is recoverable as its dominator's distance + 1; only the
// returned Reduced.Kept mask's indices retain their original byte.
func Reduce(ts puzzle.Tileset, p *pdb.PDB) *Reduced {
	n := p.Len()
	buckets := bucketByDistance(ts, p)
	maxDist := len(buckets) - 1

	kept := make([]bool, n)
	toBeDominated := make(map[uint64]bool, len(buckets[maxDist]))
	for _, v := range buckets[maxDist] {
		toBeDominated[v] = true
	}

	for d := maxDist; d >= 1; d-- {
		near := buckets[d-1]
		dominators := dominateClass(ts, near, toBeDominated)

		if len(toBeDominated) != 0 {
			panic(fmt.Sprintf("pdbtools: reduce: %d entries at distance %d left undominated", len(toBeDominated), d))
		}

		// Dominators are kept verbatim: every distance-d vertex they
		// cover is reconstructed as dominator-distance + 1 and need
		// not be stored. Non-dominators are not yet known to be
		// droppable; they become distance d-1's own "far" set for the
		// next, closer round.
		next := make(map[uint64]bool, len(near))
		for _, v := range near {
			if dominators[v] {
				kept[v] = true
				continue
			}
			next[v] = true
		}
		toBeDominated = next
	}

	// The distance-0 class (the solved state and, for zero-aware
	// tilesets, its equivalence class) is never a dominator target;
	// whatever remains is kept as-is.
	for v := range toBeDominated {
		kept[v] = true
	}

	raw := pdb.Raw(p)
	for i, k := range kept {
		if !k {
			raw[i] = pdb.Unreached
		}
	}

	return &Reduced{Kept: kept}
}

// bucketByDistance groups every reached index by its logical distance,
// indexed by distance 0..maxDist. It reconstructs through
// logicalDistances rather than reading p.At() directly so that Reduce
// is idempotent: a PDB a prior Reduce call has already collapsed
// reproduces the exact same buckets, and therefore the exact same
// Kept mask, as the first call saw.
func bucketByDistance(ts puzzle.Tileset, p *pdb.PDB) [][]uint64 {
	dist := logicalDistances(ts, p)

	maxDist := -1
	for _, d := range dist {
		if d != pdb.Unreached && int(d) > maxDist {
			maxDist = int(d)
		}
	}
	if maxDist < 0 {
		return [][]uint64{{}}
	}

	buckets := make([][]uint64, maxDist+1)
	for i, d := range dist {
		if d == pdb.Unreached {
			continue
		}
		buckets[d] = append(buckets[d], uint64(i))
	}
	return buckets
}

// logicalDistances recovers p's full, pre-reduction distance table: a
// copy of its raw bytes with every pdb.Unreached entry relaxed back in
// from its move-graph neighbours, repeated to a fixed point. A
// dominated entry's distance is always exactly its dominator's
// distance + 1, so this recovers the identical table Reduce first
// bucketed a collapsed entry out of, whether p has never been reduced
// (every byte is already correct, so no relaxation fires) or was
// reduced once already (the dominated bytes are pdb.Unreached and get
// rebuilt from their surviving dominators).
func logicalDistances(ts puzzle.Tileset, p *pdb.PDB) []byte {
	dist := append([]byte(nil), pdb.Raw(p)...)

	for changed := true; changed; {
		changed = false
		for i, d := range dist {
			if d == pdb.Unreached {
				continue
			}
			for _, nb := range puzzle.Neighbors(ts, uint64(i)) {
				if dist[nb] == pdb.Unreached || dist[nb] > d+1 {
					dist[nb] = d + 1
					changed = true
				}
			}
		}
	}
	return dist
}

// dominateClass greedily selects a subset of near to cover
// toBeDominated, deleting covered entries from it in place, and
// returns the set of near vertices chosen.
func dominateClass(ts puzzle.Tileset, near []uint64, toBeDominated map[uint64]bool) map[uint64]bool {
	dominated := make(map[uint64]bool, len(near))

	h := &reachHeap{}
	heap.Init(h)
	for _, v := range near {
		if reach := reachOf(ts, v, toBeDominated); len(reach) > 0 {
			heap.Push(h, &heapItem{v: v, reach: reach})
		}
	}

	for h.Len() > 0 {
		top := (*h)[0]
		fresh := reachOf(ts, top.v, toBeDominated)

		if len(fresh) != len(top.reach) {
			top.reach = fresh
			heap.Fix(h, 0)
			continue
		}
		if len(fresh) == 0 {
			heap.Pop(h)
			continue
		}

		heap.Pop(h)
		for _, r := range fresh {
			delete(toBeDominated, r)
		}
		dominated[top.v] = true
	}

	return dominated
}

// reachOf returns the still-undominated neighbours of v.
func reachOf(ts puzzle.Tileset, v uint64, toBeDominated map[uint64]bool) []uint64 {
	seen := make(map[uint64]bool)
	var reach []uint64
	for _, nb := range puzzle.Neighbors(ts, v) {
		if seen[nb] {
			continue
		}
		seen[nb] = true
		if toBeDominated[nb] {
			reach = append(reach, nb)
		}
	}
	if len(reach) > reachLen {
		panic(fmt.Sprintf("pdbtools: reduce: reach of %d entries exceeds %d", len(reach), reachLen))
	}
	return reach
}

type heapItem struct {
	v     uint64
	reach []uint64
}

// reachHeap is a binary max-heap on heapItems keyed by |reach|,
// built with Floyd's O(n) heapify via heap.Init.
type reachHeap []*heapItem

func (h reachHeap) Len() int            { return len(h) }
func (h reachHeap) Less(i, j int) bool  { return len(h[i].reach) > len(h[j].reach) }
func (h reachHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *reachHeap) Push(x interface{}) { *h = append(*h, x.(*heapItem)) }
func (h *reachHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
