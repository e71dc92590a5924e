package board

// Permutation maps every position to its image: p -> perm[p].
type Permutation [Size]Position

// Identity returns the permutation that leaves every hole in place.
func Identity() Permutation {
	var perm Permutation
	for p := range perm {
		perm[p] = Position(p)
	}
	return perm
}

// Then returns the permutation that applies perm first and next second.
func (perm Permutation) Then(next Permutation) Permutation {
	var out Permutation
	for p := range perm {
		out[p] = next[perm[p]]
	}
	return out
}

// Rotation returns the 120 degree rotation that carries the apex (0) onto
// the bottom-left corner (10).
//
// With barycentric coordinates a = col, b = row-col, e = (Rows-1)-row the
// rotation is the cyclic shift (a, b, e) -> (b, e, a).
func Rotation() Permutation {
	var perm Permutation
	for p := Position(0); p < Size; p++ {
		c := p.Coord()
		a, b := c.Col, c.Row-c.Col
		img, _ := At(Rows-1-a, b)
		perm[p] = img
	}
	return perm
}

// Rotations returns the two non-trivial rotations of the triangle.
func Rotations() [2]Permutation {
	r := Rotation()
	return [2]Permutation{r, r.Then(r)}
}

// Reflection returns the mirror image about the vertical axis through the
// apex.
func Reflection() Permutation {
	var perm Permutation
	for p := Position(0); p < Size; p++ {
		c := p.Coord()
		img, _ := At(c.Row, c.Row-c.Col)
		perm[p] = img
	}
	return perm
}

// Symmetries returns the six symmetries of the triangle, identity first.
func Symmetries() [6]Permutation {
	id := Identity()
	rots := Rotations()
	m := Reflection()
	return [6]Permutation{
		id,
		rots[0],
		rots[1],
		m,
		m.Then(rots[0]),
		m.Then(rots[1]),
	}
}

// Preserves reports whether perm maps every jump of t onto a jump of t.
func (perm Permutation) Preserves(t *Topology) bool {
	for from := Position(0); from < Size; from++ {
		for _, j := range t.JumpsFrom(from) {
			if !t.HasJump(perm[from], perm[j.Over], perm[j.To]) {
				return false
			}
		}
	}
	return true
}
