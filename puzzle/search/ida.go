// Package search implements IDA* search over the 24-puzzle driven by a
// catalogue heuristic, with an FSM move pruner and a parallel
// multi-puzzle driver.
package search

import (
	"errors"
	"math"

	"github.com/tatami-tools/puzzle24/puzzle"
	"github.com/tatami-tools/puzzle24/puzzle/catalogue"
)

// ErrUnsolvable is returned when IDA* exhausts all thresholds without
// finding the solved state, which should not happen for a valid,
// solvable starting puzzle under an admissible heuristic.
var ErrUnsolvable = errors.New("search: no solution found")

// Flags controls SearchIDA's behaviour.
type Flags uint8

// LastFull requests that the final, goal-finding iteration run to
// completion rather than stopping at the first solution found, so
// that expansion counts are comparable across runs regardless of
// which solution DFS happens to find first.
const LastFull Flags = 1 << 0

// SearchIDA runs Iterative-Deepening A* from start, using cat's
// heuristic and fsm's move pruner (puzzle.DirN..DirW symbols; nil
// selects DefaultFSM), and returns the solution path as a sequence of
// grid positions the empty square moves to, together with the total
// number of node expansions across every iteration.
func SearchIDA(cat *catalogue.Catalogue, fsm *FSM, start *puzzle.Puzzle, flags Flags) ([]int, uint64, error) {
	if fsm == nil {
		fsm = DefaultFSM()
	}

	h, err := catalogue.Heuristic(cat, start)
	if err != nil {
		return nil, 0, err
	}

	s := &searchState{cat: cat, fsm: fsm, lastFull: flags&LastFull != 0}
	threshold := h

	for {
		result := s.dfs(start, 0, threshold, fsm.Start(), nil)
		if s.err != nil {
			return nil, s.expansions, s.err
		}
		if s.foundPath != nil {
			return s.foundPath, s.expansions, nil
		}
		if result == math.MaxInt {
			return nil, s.expansions, ErrUnsolvable
		}
		threshold = result
	}
}

// searchState holds one SearchIDA run's accumulated state across
// iterations: DFS is otherwise purely recursive.
type searchState struct {
	cat      *catalogue.Catalogue
	fsm      *FSM
	lastFull bool

	expansions uint64
	foundPath  []int
	stopped    bool
	err        error
}

// dfs explores the subtree rooted at p with path cost g, pruning
// whenever g + h(p) exceeds threshold, and returns the minimum
// exceeded f-value seen (math.MaxInt if the subtree was fully
// explored within budget and is dead, i.e. has no further moves worth
// reporting). path accumulates grid positions visited so far; it is
// only copied out when a solution is recorded.
func (s *searchState) dfs(p *puzzle.Puzzle, g, threshold, fsmState int, path []int) int {
	h, err := catalogue.Heuristic(s.cat, p)
	if err != nil {
		s.err = err
		s.stopped = true
		return math.MaxInt
	}

	f := g + h
	if f > threshold {
		return f
	}

	if *p == puzzle.Solved {
		if s.foundPath == nil {
			s.foundPath = append([]int{}, path...)
		}
		if !s.lastFull {
			s.stopped = true
		}
		return math.MaxInt
	}

	s.expansions++

	z := p.ZeroLocation()
	minExceeded := math.MaxInt
	for _, dloc := range puzzle.Moves(z) {
		dir := puzzle.DirectionOf(z, int(dloc))
		nextState := s.fsm.Step(fsmState, dir)
		if s.fsm.IsDead(nextState) {
			continue
		}

		child := *p
		child.Move(int(dloc))

		res := s.dfs(&child, g+1, threshold, nextState, append(path, int(dloc)))
		if s.stopped {
			return minExceeded
		}
		if res < minExceeded {
			minExceeded = res
		}
	}
	return minExceeded
}
