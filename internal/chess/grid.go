package chess

// MoveGrid is an 8x8 boolean grid indexed [file][rank], marking the
// squares a piece may move to.
type MoveGrid [BoardSize][BoardSize]bool

// Set marks a square. Off-board coordinates are ignored.
func (g *MoveGrid) Set(c Coord) {
	if c.InBounds() {
		g[c.File][c.Rank] = true
	}
}

// Clear unmarks a square.
func (g *MoveGrid) Clear(c Coord) {
	if c.InBounds() {
		g[c.File][c.Rank] = false
	}
}

// Has reports whether a square is marked.
func (g MoveGrid) Has(c Coord) bool {
	return c.InBounds() && g[c.File][c.Rank]
}

// Union marks every square marked in other.
func (g *MoveGrid) Union(other MoveGrid) {
	for file := range g {
		for rank := range g[file] {
			g[file][rank] = g[file][rank] || other[file][rank]
		}
	}
}

// Count returns the number of marked squares.
func (g MoveGrid) Count() int {
	n := 0
	for file := range g {
		for rank := range g[file] {
			if g[file][rank] {
				n++
			}
		}
	}
	return n
}

// Any reports whether at least one square is marked.
func (g MoveGrid) Any() bool {
	for file := range g {
		for rank := range g[file] {
			if g[file][rank] {
				return true
			}
		}
	}
	return false
}

// Squares lists the marked squares ordered a1, a2, ..., h8.
func (g MoveGrid) Squares() []Coord {
	var squares []Coord
	for file := range g {
		for rank := range g[file] {
			if g[file][rank] {
				squares = append(squares, Sq(file, rank))
			}
		}
	}
	return squares
}
