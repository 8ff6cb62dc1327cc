package engine

import (
	"fmt"

	"github.com/artem-kuzishchin/chessrules/internal/chess"
	"github.com/artem-kuzishchin/chessrules/internal/errors"
)

// KingSquare returns the square of the given colour's king. A board with
// no king, or with more than one, is reported as an InvariantViolation.
func KingSquare(b *chess.Board, colour chess.Colour) (chess.Coord, error) {
	kings := b.Kings(colour)
	switch len(kings) {
	case 1:
		return kings[0], nil
	case 0:
		return chess.Coord{}, &errors.InvariantViolation{Colour: colour.String(), Reason: "king missing"}
	default:
		return chess.Coord{}, &errors.InvariantViolation{
			Colour: colour.String(),
			Reason: fmt.Sprintf("%d kings on the board", len(kings)),
		}
	}
}

// validateKings checks that both sides have exactly one king.
func validateKings(b *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, err := KingSquare(b, colour); err != nil {
			return err
		}
	}
	return nil
}

// SquareIsAttacked reports whether any piece of colour by could move to sq
// on b, using capture geometry for pawns. A square occupied by one of by's
// own pieces is never attacked by by.
func SquareIsAttacked(b *chess.Board, sq chess.Coord, by chess.Colour) bool {
	if !sq.InBounds() {
		return false
	}
	if occupant, ok := b.At(sq); ok && occupant.Colour == by {
		return false
	}

	// Pawns attack from one rank behind, relative to their direction.
	dir := chess.PawnDirection(by)
	for _, df := range []int{-1, 1} {
		from := sq.Add(chess.Direction{File: df, Rank: -dir})
		if p, ok := b.At(from); ok && p.Colour == by && p.Kind == chess.Pawn {
			return true
		}
	}

	for _, off := range chess.KnightOffsets {
		if p, ok := b.At(sq.Add(off)); ok && p.Colour == by && p.Kind == chess.Knight {
			return true
		}
	}

	for _, dir := range chess.AllDirections {
		if p, ok := b.At(sq.Add(dir)); ok && p.Colour == by && p.Kind == chess.King {
			return true
		}
	}

	for _, dir := range chess.DiagonalDirections {
		p, ok := firstPieceAlong(b, sq, dir, SlideSteps)
		if ok && p.Colour == by && (p.Kind == chess.Bishop || p.Kind == chess.Queen) {
			return true
		}
	}

	for _, dir := range chess.OrthogonalDirections {
		p, ok := firstPieceAlong(b, sq, dir, SlideSteps)
		if ok && p.Colour == by && (p.Kind == chess.Rook || p.Kind == chess.Queen) {
			return true
		}
	}

	return false
}

// IsInCheck reports whether the given colour's king is attacked on b.
// A board without exactly one king per side reports check together with
// the InvariantViolation.
func IsInCheck(b *chess.Board, colour chess.Colour) (bool, error) {
	if err := validateKings(b); err != nil {
		return true, err
	}
	king, _ := KingSquare(b, colour)
	return SquareIsAttacked(b, king, colour.Opposite()), nil
}

// InCheck reports whether the side to move is in check.
func InCheck(pos *chess.Position) (bool, error) {
	return IsInCheck(&pos.Board, pos.ToMove)
}

// Attacks returns every square p attacks on b: its pseudo-legal grid,
// with pawns using capture geometry only.
func Attacks(b *chess.Board, p chess.Piece) chess.MoveGrid {
	if p.Kind == chess.Pawn {
		return pawnAttacks(b, p)
	}
	pos := chess.Position{Board: *b, ToMove: p.Colour}
	return PseudoLegalMoves(&pos, p)
}
