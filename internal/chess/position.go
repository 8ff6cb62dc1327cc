package chess

// CastlingRights is indexed [colour][wing] where wing 0 is kingside and
// wing 1 is queenside. Rights are only ever cleared during a game.
type CastlingRights [NumColours][2]bool

// AllCastlingRights returns rights with all four flags set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{{true, true}, {true, true}}
}

func wingIndex(side CastleSide) int {
	if side == Queenside {
		return 1
	}
	return 0
}

// Has reports whether the given colour may still castle on the given side.
func (r CastlingRights) Has(colour Colour, side CastleSide) bool {
	if side == NoCastle {
		return false
	}
	return r[colour][wingIndex(side)]
}

// Without returns a copy with one right cleared.
func (r CastlingRights) Without(colour Colour, side CastleSide) CastlingRights {
	if side != NoCastle {
		r[colour][wingIndex(side)] = false
	}
	return r
}

// WithoutColour returns a copy with both rights of a colour cleared.
func (r CastlingRights) WithoutColour(colour Colour) CastlingRights {
	r[colour] = [2]bool{}
	return r
}

// Any reports whether any castling right remains.
func (r CastlingRights) Any() bool {
	return r[White][0] || r[White][1] || r[Black][0] || r[Black][1]
}

// EnPassantTarget is either unset or the square a pawn skipped over on the
// immediately preceding double step.
type EnPassantTarget struct {
	At  Coord
	Set bool
}

// NoEnPassant is the unset target.
var NoEnPassant = EnPassantTarget{}

// EnPassantAt returns a target on the given square.
func EnPassantAt(c Coord) EnPassantTarget {
	return EnPassantTarget{At: c, Set: true}
}

// Target returns the square, if any.
func (e EnPassantTarget) Target() (Coord, bool) {
	return e.At, e.Set
}

// Is reports whether the target is set and equal to c.
func (e EnPassantTarget) Is(c Coord) bool {
	return e.Set && e.At == c
}

// String returns the square name or "-".
func (e EnPassantTarget) String() string {
	if !e.Set {
		return "-"
	}
	return e.At.String()
}

// Position is the complete state needed to decide legality and outcome.
// Positions are values: every transition produces a new one.
type Position struct {
	Board          Board
	ToMove         Colour
	Castling       CastlingRights
	EnPassant      EnPassantTarget
	HalfmoveClock  int
	FullmoveNumber int
}

// StartingPosition returns the standard initial position.
func StartingPosition() Position {
	pos := Position{
		ToMove:         White,
		Castling:       AllCastlingRights(),
		FullmoveNumber: 1,
	}
	pos.Board.SetupInitialPosition()
	return pos
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() Position {
	return *p
}
