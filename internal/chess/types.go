// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
	NumColours
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsMinor reports whether the kind is a knight or a bishop.
func (k Kind) IsMinor() bool {
	return k == Knight || k == Bishop
}

// KindFromLetter converts a piece letter (either case) to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// CastleSide identifies a castling wing. NoCastle is the "not a castling
// move" answer.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "kingside"
	case Queenside:
		return "queenside"
	default:
		return "no"
	}
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'

	// Home files of the castling pieces.
	KingFile          = 4
	KingsideRookFile  = 7
	QueensideRookFile = 0
)

// Coord is a square on the board. File and Rank are both in [0,7];
// File 0 is the a-file and Rank 0 is White's back rank.
type Coord struct {
	File int
	Rank int
}

// Sq is shorthand for building a Coord.
func Sq(file, rank int) Coord {
	return Coord{File: file, Rank: rank}
}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.File >= 0 && c.File < BoardSize && c.Rank >= 0 && c.Rank < BoardSize
}

// Add returns the coordinate shifted by the direction.
func (c Coord) Add(d Direction) Coord {
	return Coord{File: c.File + d.File, Rank: c.Rank + d.Rank}
}

// String returns the algebraic name of the square, e.g. "e4".
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return string([]byte{byte(FileBase + c.File), byte(RankBase + c.Rank)})
}

// ParseCoord parses an algebraic square name such as "e4".
func ParseCoord(s string) (Coord, bool) {
	if len(s) != 2 {
		return Coord{}, false
	}
	c := Coord{File: int(s[0]) - FileBase, Rank: int(s[1]) - RankBase}
	if !c.InBounds() {
		return Coord{}, false
	}
	return c, true
}

// Direction is a step vector on the board.
type Direction struct {
	File int
	Rank int
}

// Direction sets shared by move generation and attack detection.
var (
	OrthogonalDirections = []Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	DiagonalDirections   = []Direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	AllDirections        = append(append([]Direction{}, OrthogonalDirections...), DiagonalDirections...)
	KnightOffsets        = []Direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// PawnDirection returns +1 for White, -1 for Black (for pawn direction).
func PawnDirection(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank pawns of the given colour start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank on which pawns of the given colour promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}
