package engine

import (
	"github.com/yourusername/pegsolve/internal/board"
	"github.com/yourusername/pegsolve/internal/pegid"
)

var symmetries = board.Symmetries()

// Orbit returns the images of state under the six symmetries of the board,
// identity first. Symmetric positions repeat.
func Orbit(state pegid.State) [6]pegid.State {
	var out [6]pegid.State
	for i := range symmetries {
		out[i] = state.Permute(symmetries[i])
	}
	return out
}

// Canonical returns the smallest identifier in the orbit of state. Two
// positions are equivalent under a board symmetry iff their canonical forms
// are equal.
func Canonical(state pegid.State) pegid.State {
	best := state
	for _, img := range Orbit(state) {
		if img < best {
			best = img
		}
	}
	return best
}
