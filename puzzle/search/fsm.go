package search

import (
	"encoding/binary"
	"fmt"
	"io"
)

// dead is the sentinel transition-table entry marking a pruned
// branch.
const dead = -1

// FSM is a deterministic automaton over the four move symbols
// (puzzle.DirN..puzzle.DirW). Transitioning to the dead state prunes
// the branch that triggered it.
type FSM struct {
	start int
	trans [][4]int
}

// Start returns the automaton's initial state.
func (f *FSM) Start() int { return f.start }

// Step returns the state reached by taking symbol dir from state, or
// the dead state if that move is pruned.
func (f *FSM) Step(state, dir int) int { return f.trans[state][dir] }

// IsDead reports whether state is the automaton's dead state.
func (f *FSM) IsDead(state int) bool { return state == dead }

// simpleStart and the four post-move states are fsmSimple's states:
// state simpleStart means no move has been made yet; state d means
// the previous move was direction d.
const simpleStart = 4

// fsmSimple is the default FSM pruner: it rejects only the immediate
// reversal of the previous move.
var fsmSimple = buildSimpleFSM()

func buildSimpleFSM() *FSM {
	trans := make([][4]int, 5)
	for d := 0; d < 4; d++ {
		trans[simpleStart][d] = d
	}
	for prev := 0; prev < 4; prev++ {
		reverse := (prev + 2) % 4
		for d := 0; d < 4; d++ {
			if d == reverse {
				trans[prev][d] = dead
			} else {
				trans[prev][d] = d
			}
		}
	}
	return &FSM{start: simpleStart, trans: trans}
}

// DefaultFSM returns the default move pruner (reject immediate
// reversal only).
func DefaultFSM() *FSM { return fsmSimple }

// Load reads a custom FSM from a fixed-record binary format: a
// little-endian uint32 state count n, a little-endian uint32 start
// state, followed by n*4 little-endian int32 transition entries
// (state-major, symbol order N, E, S, W), dead transitions encoded as
// -1. This format is a thin, out-of-core concern (see Non-goals): its
// correctness is not part of the module's tested properties, only its
// ability to produce a usable FSM value.
func Load(r io.Reader) (*FSM, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("search: reading fsm header: %w", err)
	}
	n := int(binary.LittleEndian.Uint32(header[0:4]))
	start := int(binary.LittleEndian.Uint32(header[4:8]))
	if n <= 0 || start < 0 || start >= n {
		return nil, fmt.Errorf("search: invalid fsm header (states=%d start=%d)", n, start)
	}

	body := make([]byte, n*4*4)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("search: reading fsm transitions: %w", err)
	}

	trans := make([][4]int, n)
	for s := 0; s < n; s++ {
		for d := 0; d < 4; d++ {
			off := (s*4 + d) * 4
			trans[s][d] = int(int32(binary.LittleEndian.Uint32(body[off : off+4])))
		}
	}

	return &FSM{start: start, trans: trans}, nil
}
