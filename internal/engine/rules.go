package engine

import "github.com/artem-kuzishchin/chessrules/internal/chess"

// FiftyMoveLimit is the halfmove clock value, in plies, at which the
// fifty-move draw applies.
const FiftyMoveLimit = 100

// RepetitionLimit is the number of occurrences of a position that draws.
const RepetitionLimit = 3

// HasInsufficientMaterial reports whether neither side can force mate:
// there are no pawns, and each side has at most one knight or bishop and
// nothing else besides its king.
func HasInsufficientMaterial(b *chess.Board) bool {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		minors := 0
		for _, p := range b.Pieces(colour) {
			switch {
			case p.Kind == chess.King:
			case p.Kind.IsMinor():
				minors++
			default:
				return false
			}
		}
		if minors > 1 {
			return false
		}
	}
	return true
}

// FiftyMoveRuleReached reports whether fifty full moves have passed
// without a pawn move or a capture.
func FiftyMoveRuleReached(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveLimit
}
