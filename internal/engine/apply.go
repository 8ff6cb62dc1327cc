package engine

import (
	"fmt"

	"github.com/artem-kuzishchin/chessrules/internal/chess"
	"github.com/artem-kuzishchin/chessrules/internal/errors"
)

// ApplyMove moves the piece with the given identity to to and returns the
// resulting position. A pawn reaching the last rank becomes a queen.
// On error the returned position is the unchanged input.
func ApplyMove(pos chess.Position, id chess.PieceID, to chess.Coord) (chess.Position, error) {
	return ApplyMoveWithPromotion(pos, id, to, chess.Queen)
}

// ApplyMoveWithPromotion is ApplyMove with an explicit promotion kind,
// which must be a knight, bishop, rook or queen. The kind is ignored for
// moves that do not promote.
func ApplyMoveWithPromotion(pos chess.Position, id chess.PieceID, to chess.Coord, promotion chess.Kind) (chess.Position, error) {
	p, ok := pos.Board.Find(id)
	if !ok {
		return pos, &errors.IllegalMoveError{
			To:     to.String(),
			Reason: fmt.Sprintf("no piece with identity %d", id),
		}
	}
	if p.Colour != pos.ToMove {
		return pos, illegal(p, to, fmt.Sprintf("%s is not to move", p.Colour))
	}

	legal, err := LegalMovesOf(&pos, p)
	if err != nil {
		return pos, err
	}
	if !legal.Has(to) {
		return pos, illegal(p, to, "destination not reachable")
	}
	if isPromotion(p, to) && !validPromotion(promotion) {
		return pos, illegal(p, to, fmt.Sprintf("cannot promote to %s", promotion))
	}

	return commit(pos, p, to, promotion), nil
}

func illegal(p chess.Piece, to chess.Coord, reason string) error {
	return &errors.IllegalMoveError{
		Piece:  p.String(),
		From:   p.At.String(),
		To:     to.String(),
		Reason: reason,
	}
}

// isPromotion reports whether moving p to to promotes it.
func isPromotion(p chess.Piece, to chess.Coord) bool {
	return p.Kind == chess.Pawn && to.Rank == chess.PromotionRank(p.Colour)
}

func validPromotion(k chess.Kind) bool {
	switch k {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return true
	}
	return false
}

// relocate performs the board side of a move: the piece itself, the pawn
// taken en passant and the rook that accompanies a castling king. It
// returns the captured piece, if any.
func relocate(b *chess.Board, pos *chess.Position, p chess.Piece, to chess.Coord) chess.Piece {
	captured := b.Relocate(p.At, to)

	if p.Kind == chess.Pawn && captured.IsEmpty() && isEnPassantTarget(pos, p.Colour, to) {
		behind := chess.Sq(to.File, p.At.Rank)
		if victim, ok := b.At(behind); ok && victim.Kind == chess.Pawn && victim.Colour != p.Colour {
			captured = b.Remove(behind)
		}
	}

	if side := castleSideOf(p, p.At, to); side != chess.NoCastle {
		relocateCastlingRook(b, p.Colour, side)
	}
	return captured
}

// commit builds the successor position for a move already known to be
// legal.
func commit(pos chess.Position, p chess.Piece, to chess.Coord, promotion chess.Kind) chess.Position {
	next := pos
	captured := relocate(&next.Board, &pos, p, to)

	if isPromotion(p, to) {
		promoted := p
		promoted.Kind = promotion
		next.Board.Put(promoted, to)
	}

	next.Castling = updateCastlingRights(pos.Castling, p, p.At, captured, to)

	next.EnPassant = chess.NoEnPassant
	if p.Kind == chess.Pawn && abs(to.Rank-p.At.Rank) == 2 {
		next.EnPassant = chess.EnPassantAt(chess.Sq(p.At.File, skippedRank(p.Colour)))
	}

	if p.Kind == chess.Pawn || !captured.IsEmpty() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if p.Colour == chess.Black {
		next.FullmoveNumber++
	}
	next.ToMove = p.Colour.Opposite()
	return next
}
