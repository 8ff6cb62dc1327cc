package engine

import "github.com/artem-kuzishchin/chessrules/internal/chess"

// PseudoLegalMoves returns the squares p could move to next, ignoring
// whether the move would leave its own king in check. Castling is not
// included; see LegalMoves.
func PseudoLegalMoves(pos *chess.Position, p chess.Piece) chess.MoveGrid {
	b := &pos.Board
	switch p.Kind {
	case chess.Pawn:
		return pawnMoves(pos, p)
	case chess.Knight:
		return StepTargets(b, p, chess.KnightOffsets)
	case chess.Bishop:
		return castRays(b, p, chess.DiagonalDirections, SlideSteps)
	case chess.Rook:
		return castRays(b, p, chess.OrthogonalDirections, SlideSteps)
	case chess.Queen:
		return castRays(b, p, chess.AllDirections, SlideSteps)
	case chess.King:
		return castRays(b, p, chess.AllDirections, StepOnce)
	}
	return chess.MoveGrid{}
}

// pawnMoves covers pushes, double pushes from the start rank, diagonal
// captures and en passant.
func pawnMoves(pos *chess.Position, p chess.Piece) chess.MoveGrid {
	var grid chess.MoveGrid
	b := &pos.Board
	dir := chess.PawnDirection(p.Colour)

	one := p.At.Add(chess.Direction{Rank: dir})
	if b.IsEmpty(one) {
		grid.Set(one)
		two := one.Add(chess.Direction{Rank: dir})
		if p.At.Rank == chess.PawnStartRank(p.Colour) && b.IsEmpty(two) {
			grid.Set(two)
		}
	}

	for _, df := range []int{-1, 1} {
		target := p.At.Add(chess.Direction{File: df, Rank: dir})
		if !target.InBounds() {
			continue
		}
		if occupant, ok := b.At(target); ok {
			if occupant.Colour != p.Colour {
				grid.Set(target)
			}
			continue
		}
		if isEnPassantTarget(pos, p.Colour, target) {
			grid.Set(target)
		}
	}
	return grid
}

// isEnPassantTarget reports whether a pawn of the given colour may capture
// en passant onto target. The target only counts on the rank a pawn of the
// other colour skips over on its double step.
func isEnPassantTarget(pos *chess.Position, colour chess.Colour, target chess.Coord) bool {
	if !pos.EnPassant.Is(target) {
		return false
	}
	return target.Rank == skippedRank(colour.Opposite())
}

// skippedRank is the rank a pawn of the given colour jumps over on its
// double step.
func skippedRank(colour chess.Colour) int {
	return chess.PawnStartRank(colour) + chess.PawnDirection(colour)
}

// pawnAttacks marks the two diagonal squares a pawn captures on, whether
// or not they are occupied. Friendly-occupied squares are left out.
func pawnAttacks(b *chess.Board, p chess.Piece) chess.MoveGrid {
	var grid chess.MoveGrid
	dir := chess.PawnDirection(p.Colour)
	for _, df := range []int{-1, 1} {
		target := p.At.Add(chess.Direction{File: df, Rank: dir})
		if occupant, ok := b.At(target); ok && occupant.Colour == p.Colour {
			continue
		}
		grid.Set(target)
	}
	return grid
}
