package chess

// Board represents the 8x8 grid of squares.
// Squares is indexed [file][rank]. A square holds either the zero Piece
// (empty) or exactly one piece whose At field equals the square.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position and
// numbers the pieces.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Put(Piece{Kind: backRank[file], Colour: White}, Sq(file, 0))
		b.Put(Piece{Kind: Pawn, Colour: White}, Sq(file, 1))
		b.Put(Piece{Kind: Pawn, Colour: Black}, Sq(file, 6))
		b.Put(Piece{Kind: backRank[file], Colour: Black}, Sq(file, 7))
	}
	b.NumberPieces()
}

// At returns the piece on the given square, if any.
func (b *Board) At(c Coord) (Piece, bool) {
	if !c.InBounds() {
		return Piece{}, false
	}
	p := b.Squares[c.File][c.Rank]
	return p, !p.IsEmpty()
}

// IsEmpty reports whether an on-board square is unoccupied.
func (b *Board) IsEmpty(c Coord) bool {
	return c.InBounds() && b.Squares[c.File][c.Rank].IsEmpty()
}

// Put places a piece on a square, overwriting whatever stood there.
// The stored piece's coordinate is set to the square.
func (b *Board) Put(p Piece, at Coord) {
	if !at.InBounds() {
		return
	}
	p.At = at
	b.Squares[at.File][at.Rank] = p
}

// Remove empties a square and returns what stood there.
func (b *Board) Remove(at Coord) Piece {
	if !at.InBounds() {
		return Piece{}
	}
	p := b.Squares[at.File][at.Rank]
	b.Squares[at.File][at.Rank] = Piece{}
	return p
}

// Relocate moves the piece on from to to, returning the piece that was
// captured on to (the zero Piece if to was empty).
func (b *Board) Relocate(from, to Coord) Piece {
	mover := b.Remove(from)
	captured := b.Remove(to)
	if !mover.IsEmpty() {
		b.Put(mover, to)
	}
	return captured
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Pieces returns every piece of the given colour, ordered a1, a2, ..., h8.
func (b *Board) Pieces(colour Colour) []Piece {
	var pieces []Piece
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.Squares[file][rank]
			if !p.IsEmpty() && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Find returns the piece with the given identity.
func (b *Board) Find(id PieceID) (Piece, bool) {
	if id == NoPiece {
		return Piece{}, false
	}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if p := b.Squares[file][rank]; p.ID == id && !p.IsEmpty() {
				return p, true
			}
		}
	}
	return Piece{}, false
}

// Kings returns the squares of all kings of the given colour.
// A well-formed board has exactly one.
func (b *Board) Kings(colour Colour) []Coord {
	var kings []Coord
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.Squares[file][rank]
			if p.Kind == King && p.Colour == colour {
				kings = append(kings, p.At)
			}
		}
	}
	return kings
}

// NumberPieces assigns identities 1..n to the pieces, scanning rank by
// rank from a1 to h8.
func (b *Board) NumberPieces() {
	next := PieceID(1)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[file][rank].IsEmpty() {
				continue
			}
			b.Squares[file][rank].ID = next
			next++
		}
	}
}
