package chess

import "fmt"

// PieceID identifies a piece for the lifetime of a game. The zero value
// means "no piece".
type PieceID int32

// NoPiece is the PieceID of an empty square.
const NoPiece PieceID = 0

// Piece is a piece standing on the board. A zero Piece (Kind == NoKind)
// denotes an empty square.
type Piece struct {
	ID     PieceID
	Kind   Kind
	Colour Colour
	At     Coord
}

// IsEmpty reports whether p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable description such as "White Knight g1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s %s %s", p.Colour, p.Kind, p.At)
}
