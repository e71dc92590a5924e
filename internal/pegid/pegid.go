// Package pegid implements the compact encoding of peg solitaire positions.
//
// A position is the set of occupied holes. It is stored as a 16-bit word
// where bit i is set iff hole i holds a peg, so every position has a unique
// identifier in [0, 2^15) that doubles as an index into lookup tables.
package pegid

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/yourusername/pegsolve/internal/board"
	"gonum.org/v1/gonum/stat/combin"
)

const (
	// NumStates is the number of distinct positions on the board
	NumStates = 1 << board.Size
	// Full has every hole occupied
	Full State = NumStates - 1
)

// ErrBadDiagram is returned by Parse when the input is not a board diagram
var ErrBadDiagram = errors.New("pegid: malformed board diagram")

// State is the set of occupied holes, one bit per hole.
type State uint16

// Encode returns the state with exactly the given holes occupied. Repeated
// positions are harmless. A position off the board is a programming error.
func Encode(positions ...board.Position) State {
	var s State
	for _, p := range positions {
		if !p.Valid() {
			panic(fmt.Sprintf("pegid: position %d out of range", p))
		}
		s |= 1 << uint(p)
	}
	return s
}

// EncodeInts is Encode for plain integer indices, as produced by
// combination generators.
func EncodeInts(positions []int) State {
	var s State
	for _, p := range positions {
		if !board.Position(p).Valid() {
			panic(fmt.Sprintf("pegid: position %d out of range", p))
		}
		s |= 1 << uint(p)
	}
	return s
}

// Occupied reports whether hole p holds a peg.
func (s State) Occupied(p board.Position) bool {
	return s&(1<<uint(p)) != 0
}

// WithMove returns s with from and over emptied and to filled. It does not
// check that the move is legal.
func (s State) WithMove(from, over, to board.Position) State {
	s &^= 1<<uint(from) | 1<<uint(over)
	return s | 1<<uint(to)
}

// Count returns the number of pegs.
func (s State) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Valid reports whether s only uses holes that exist on the board.
func (s State) Valid() bool {
	return s <= Full
}

// Positions returns the occupied holes in increasing order.
func (s State) Positions() []board.Position {
	out := make([]board.Position, 0, s.Count())
	for w := uint16(s); w != 0; w &= w - 1 {
		out = append(out, board.Position(bits.TrailingZeros16(w)))
	}
	return out
}

// Permute maps every peg of s through perm.
func (s State) Permute(perm board.Permutation) State {
	var out State
	for w := uint16(s); w != 0; w &= w - 1 {
		out |= 1 << uint(perm[bits.TrailingZeros16(w)])
	}
	return out
}

// Combination returns C(n, r), the number of ways to place r pegs in n holes.
// Out-of-range arguments yield 0.
func Combination(n, r int) int {
	if n < 0 || r < 0 || r > n {
		return 0
	}
	return combin.Binomial(n, r)
}

// String draws the board, 'o' for a peg and '.' for a hole, one row per line.
func (s State) String() string {
	var sb strings.Builder
	for row := 0; row < board.Rows; row++ {
		sb.WriteString(strings.Repeat(" ", board.Rows-1-row))
		for col := 0; col <= row; col++ {
			p, _ := board.At(row, col)
			if col > 0 {
				sb.WriteByte(' ')
			}
			if s.Occupied(p) {
				sb.WriteByte('o')
			} else {
				sb.WriteByte('.')
			}
		}
		if row < board.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Parse reads a diagram in the format produced by String. Whitespace is
// ignored; 'o', 'x' or '1' mark a peg and '.', '_' or '0' a hole. Exactly
// board.Size cells must be present, listed row by row from the apex.
func Parse(diagram string) (State, error) {
	var s State
	n := 0
	for _, r := range diagram {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		case 'o', 'O', 'x', 'X', '1':
			if n < board.Size {
				s |= 1 << uint(n)
			}
		case '.', '_', '0':
		default:
			return 0, fmt.Errorf("%w: unexpected %q", ErrBadDiagram, r)
		}
		n++
	}
	if n != board.Size {
		return 0, fmt.Errorf("%w: %d cells, want %d", ErrBadDiagram, n, board.Size)
	}
	return s, nil
}
