package engine

import (
	"fmt"
	"strings"

	"github.com/artem-kuzishchin/chessrules/internal/chess"
	"github.com/artem-kuzishchin/chessrules/internal/errors"
)

// Move is a single legal move in list form. Promotion is NoKind unless
// the move promotes a pawn.
type Move struct {
	Piece     chess.PieceID
	From      chess.Coord
	To        chess.Coord
	Promotion chess.Kind
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoKind {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// GenerateMoves flattens the legal-move map into a list, ordered by piece
// identity and then destination. A promoting pawn move appears once per
// promotion kind.
func GenerateMoves(pos *chess.Position) ([]Move, error) {
	legal, err := LegalMoves(pos)
	if err != nil {
		return nil, err
	}
	return expandMoves(pos, legal), nil
}

func expandMoves(pos *chess.Position, legal LegalMoveMap) []Move {
	var moves []Move
	for _, id := range legal.IDs() {
		grid := legal[id]
		p, _ := pos.Board.Find(id)
		for _, to := range grid.Squares() {
			if isPromotion(p, to) {
				for _, kind := range promotionKinds {
					moves = append(moves, Move{Piece: id, From: p.At, To: to, Promotion: kind})
				}
				continue
			}
			moves = append(moves, Move{Piece: id, From: p.At, To: to})
		}
	}
	return moves
}

// ParseMove reads a move in coordinate notation ("g1f3", "e7e8n") against
// pos. It checks that a piece of the side to move stands on the source
// square but not that the move is legal; ApplyMove does that.
func ParseMove(pos *chess.Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, &errors.IllegalMoveError{Reason: fmt.Sprintf("cannot parse move %q", s)}
	}
	from, okFrom := chess.ParseCoord(s[0:2])
	to, okTo := chess.ParseCoord(s[2:4])
	if !okFrom || !okTo {
		return Move{}, &errors.IllegalMoveError{Reason: fmt.Sprintf("cannot parse move %q", s)}
	}

	m := Move{From: from, To: to}
	if len(s) == 5 {
		m.Promotion = chess.KindFromLetter(s[4])
		if !validPromotion(m.Promotion) {
			return Move{}, &errors.IllegalMoveError{
				From:   from.String(),
				To:     to.String(),
				Reason: fmt.Sprintf("bad promotion letter %q", s[4]),
			}
		}
	}

	p, ok := pos.Board.At(from)
	if !ok || p.Colour != pos.ToMove {
		return Move{}, &errors.IllegalMoveError{
			From:   from.String(),
			To:     to.String(),
			Reason: fmt.Sprintf("no %s piece on %s", pos.ToMove, from),
		}
	}
	m.Piece = p.ID
	return m, nil
}

// Play parses and applies a move in coordinate notation.
func Play(pos chess.Position, s string) (chess.Position, error) {
	m, err := ParseMove(&pos, s)
	if err != nil {
		return pos, err
	}
	return m.Apply(pos)
}

// Apply applies m to pos. A promoting move without an explicit kind
// promotes to a queen.
func (m Move) Apply(pos chess.Position) (chess.Position, error) {
	return ApplyMoveWithPromotion(pos, m.Piece, m.To, promotionOrQueen(m.Promotion))
}
