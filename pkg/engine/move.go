package engine

import (
	"github.com/yourusername/pegsolve/internal/board"
	"github.com/yourusername/pegsolve/internal/pegid"
)

// MaxMoves is the largest number of legal jumps from any position
const MaxMoves = 36

// Move is a single jump: the peg on From leaps over Over onto To.
type Move struct {
	From board.Position
	Over board.Position
	To   board.Position
}

// TryJump applies the jump from -> over -> to to state.
//
// ok is false when over is empty or to is already filled. from must hold a
// peg; calling TryJump with an empty from panics with *PreconditionError.
func TryJump(state pegid.State, from, over, to board.Position) (next pegid.State, ok bool) {
	if !state.Occupied(from) {
		panic(&PreconditionError{State: state, From: from, Over: over, To: to})
	}
	if !state.Occupied(over) {
		return 0, false
	}
	if state.Occupied(to) {
		return 0, false
	}
	return state.WithMove(from, over, to), true
}

// Apply is TryJump for a Move value.
func (m Move) Apply(state pegid.State) (pegid.State, bool) {
	return TryJump(state, m.From, m.Over, m.To)
}

// LegalJumps returns every jump available in state, ordered by starting
// position and then by the topology's jump order.
func LegalJumps(t *board.Topology, state pegid.State) []Move {
	moves := make([]Move, 0, 8)
	for _, from := range state.Positions() {
		for _, j := range t.JumpsFrom(from) {
			if _, ok := TryJump(state, from, j.Over, j.To); ok {
				moves = append(moves, Move{From: from, Over: j.Over, To: j.To})
			}
		}
	}
	return moves
}
