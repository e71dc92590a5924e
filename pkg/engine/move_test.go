package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pegsolve/internal/board"
	"github.com/yourusername/pegsolve/internal/pegid"
)

func TestTryJumpSuccess(t *testing.T) {
	state := pegid.Encode(0, 1)

	next, ok := TryJump(state, 0, 1, 3)
	require.True(t, ok)
	assert.Equal(t, pegid.Encode(3), next)
	assert.False(t, next.Occupied(0))
	assert.False(t, next.Occupied(1))
	assert.True(t, next.Occupied(3))
}

func TestTryJumpMissingOver(t *testing.T) {
	_, ok := TryJump(pegid.Encode(0), 0, 1, 3)
	assert.False(t, ok)
}

func TestTryJumpFullDestination(t *testing.T) {
	_, ok := TryJump(pegid.Encode(0, 1, 3), 0, 1, 3)
	assert.False(t, ok)
}

func TestTryJumpMissingStartPanics(t *testing.T) {
	tests := []pegid.State{
		pegid.Encode(),
		pegid.Encode(1),
		pegid.Encode(3),
		pegid.Encode(1, 3),
	}

	for _, state := range tests {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "state %d should panic", state)
				perr, ok := r.(*PreconditionError)
				require.True(t, ok, "panic value %T", r)
				assert.Equal(t, state, perr.State)
				assert.Equal(t, board.Position(0), perr.From)
				assert.Equal(t, board.Position(1), perr.Over)
				assert.Equal(t, board.Position(3), perr.To)
				assert.Contains(t, perr.Error(), "no peg at 0")
			}()
			TryJump(state, 0, 1, 3)
		}()
	}
}

// Over empty means no jump regardless of the destination, and a filled
// destination means no jump regardless of over.
func TestTryJumpLegalityExhaustive(t *testing.T) {
	topo := board.Standard()
	for s := pegid.State(0); s <= pegid.Full; s++ {
		for _, from := range s.Positions() {
			for _, j := range topo.JumpsFrom(from) {
				next, ok := TryJump(s, from, j.Over, j.To)
				if !s.Occupied(j.Over) || s.Occupied(j.To) {
					assert.False(t, ok)
					continue
				}
				require.True(t, ok)

				// Only the three holes of the jump change.
				mask := pegid.Encode(from, j.Over, j.To)
				require.Equal(t, s&^mask, next&^mask)
				require.False(t, next.Occupied(from))
				require.False(t, next.Occupied(j.Over))
				require.True(t, next.Occupied(j.To))
				require.Equal(t, s.Count()-1, next.Count())
			}
		}
	}
}

func TestMoveApply(t *testing.T) {
	m := Move{From: 12, Over: 13, To: 14}
	next, ok := m.Apply(pegid.Encode(12, 13))
	require.True(t, ok)
	assert.Equal(t, pegid.Encode(14), next)
}

func TestLegalJumps(t *testing.T) {
	topo := board.Standard()

	// Full board: nothing can move.
	assert.Empty(t, LegalJumps(topo, pegid.Full))

	// Hole at the apex: only the two jumps into it.
	moves := LegalJumps(topo, pegid.Full&^pegid.Encode(0))
	assert.ElementsMatch(t, []Move{{From: 3, Over: 1, To: 0}, {From: 5, Over: 2, To: 0}}, moves)

	// Hole in the middle of the bottom row.
	moves = LegalJumps(topo, pegid.Full&^pegid.Encode(12))
	assert.ElementsMatch(t, []Move{
		{From: 3, Over: 7, To: 12},
		{From: 5, Over: 8, To: 12},
		{From: 10, Over: 11, To: 12},
		{From: 14, Over: 13, To: 12},
	}, moves)

	for _, m := range moves {
		assert.True(t, topo.HasJump(m.From, m.Over, m.To))
	}
}
