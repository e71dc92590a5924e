package engine

import (
	"fmt"

	"github.com/yourusername/pegsolve/internal/board"
	"github.com/yourusername/pegsolve/internal/pegid"
)

// PreconditionError is the panic value raised when a jump is attempted from
// an empty hole. It is a caller bug, never a search outcome.
type PreconditionError struct {
	State pegid.State
	From  board.Position
	Over  board.Position
	To    board.Position
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("illegal move specified: no peg at %d (jump %d over %d to %d, state %#04x)",
		e.From, e.From, e.Over, e.To, uint16(e.State))
}

// InvariantError reports a successor that was not classified when its
// predecessor was searched. It means the tier ordering is broken.
type InvariantError struct {
	State     pegid.State
	Successor pegid.State
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("lower level game not filled in: state %d reaches unclassified state %d",
		e.State, e.Successor)
}
