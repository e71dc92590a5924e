// Package board describes the 15-hole triangular peg solitaire board.
//
// Holes are numbered row by row from the apex:
//
//	        0
//	      1   2
//	    3   4   5
//	  6   7   8   9
//	10  11  12  13  14
//
// The jump table is derived from row/column coordinates rather than written
// out by hand, so every jump automatically has its reverse.
package board

import "fmt"

const (
	// Rows is the number of rows on the board
	Rows = 5
	// Size is the number of holes on the board
	Size = Rows * (Rows + 1) / 2
)

// Position identifies one hole, 0 <= Position < Size
type Position int

// Coord is a (row, column) pair. Row r holds columns 0..r.
type Coord struct {
	Row, Col int
}

// Jump is a single move starting from some position: the peg leaps over
// Over and lands on To.
type Jump struct {
	Over Position
	To   Position
}

// direction is a unit step in coordinate space
type direction struct {
	dRow, dCol int
}

// The three board axes, both ways. The order fixes the order of JumpsFrom.
var directions = [6]direction{
	{0, 1},   // east
	{0, -1},  // west
	{1, 0},   // south-west
	{-1, 0},  // north-east
	{1, 1},   // south-east
	{-1, -1}, // north-west
}

// Valid reports whether p names a hole on the board.
func (p Position) Valid() bool {
	return p >= 0 && p < Size
}

// Coord returns the row and column of p.
func (p Position) Coord() Coord {
	if !p.Valid() {
		panic(fmt.Sprintf("board: position %d out of range", p))
	}
	row := 0
	for (row+1)*(row+2)/2 <= int(p) {
		row++
	}
	return Coord{Row: row, Col: int(p) - row*(row+1)/2}
}

// OnBoard reports whether c lies inside the triangle.
func (c Coord) OnBoard() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col <= c.Row
}

// At returns the position at row, col. ok is false off the board.
func At(row, col int) (p Position, ok bool) {
	c := Coord{Row: row, Col: col}
	if !c.OnBoard() {
		return 0, false
	}
	return Position(row*(row+1)/2 + col), true
}

// Topology holds the jumps available from every position. It is immutable
// once built and safe to share between goroutines.
type Topology struct {
	jumps [Size][]Jump
}

var standard = build()

// Standard returns the topology of the 15-hole triangle.
func Standard() *Topology {
	return standard
}

func build() *Topology {
	t := &Topology{}
	for p := Position(0); p < Size; p++ {
		c := p.Coord()
		for _, d := range directions {
			over, ok := At(c.Row+d.dRow, c.Col+d.dCol)
			if !ok {
				continue
			}
			to, ok := At(c.Row+2*d.dRow, c.Col+2*d.dCol)
			if !ok {
				continue
			}
			t.jumps[p] = append(t.jumps[p], Jump{Over: over, To: to})
		}
	}
	return t
}

// JumpsFrom returns the jumps starting at p. The returned slice must not be
// modified.
func (t *Topology) JumpsFrom(p Position) []Jump {
	return t.jumps[p]
}

// NumJumps returns the total number of (from, over, to) triples.
func (t *Topology) NumJumps() int {
	n := 0
	for p := range t.jumps {
		n += len(t.jumps[p])
	}
	return n
}

// HasJump reports whether from can jump over over onto to.
func (t *Topology) HasJump(from, over, to Position) bool {
	if !from.Valid() {
		return false
	}
	for _, j := range t.jumps[from] {
		if j.Over == over && j.To == to {
			return true
		}
	}
	return false
}
