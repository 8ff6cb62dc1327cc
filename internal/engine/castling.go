package engine

import "github.com/artem-kuzishchin/chessrules/internal/chess"

// Files the king and rook land on after castling.
const (
	kingsideKingFile  = 6
	kingsideRookFile  = 5
	queensideKingFile = 2
	queensideRookFile = 3
)

// rookHomeFile returns the file the castling rook starts on.
func rookHomeFile(side chess.CastleSide) int {
	if side == chess.Kingside {
		return chess.KingsideRookFile
	}
	return chess.QueensideRookFile
}

// castleTargets returns where the king and rook end up.
func castleTargets(colour chess.Colour, side chess.CastleSide) (king, rook chess.Coord) {
	rank := chess.HomeRank(colour)
	if side == chess.Kingside {
		return chess.Sq(kingsideKingFile, rank), chess.Sq(kingsideRookFile, rank)
	}
	return chess.Sq(queensideKingFile, rank), chess.Sq(queensideRookFile, rank)
}

// castleSideOf reports which castling move, if any, a king step from
// from to to is.
func castleSideOf(king chess.Piece, from, to chess.Coord) chess.CastleSide {
	if king.Kind != chess.King || from.Rank != to.Rank || abs(to.File-from.File) != 2 {
		return chess.NoCastle
	}
	if to.File > from.File {
		return chess.Kingside
	}
	return chess.Queenside
}

// canCastle reports whether the side to move may castle on the given side:
// the right is held, king and rook stand on their home squares, every
// square between them is empty, and the king does not start on, pass
// through or land on an attacked square.
func canCastle(pos *chess.Position, side chess.CastleSide) bool {
	colour := pos.ToMove
	if !pos.Castling.Has(colour, side) {
		return false
	}
	b := &pos.Board
	rank := chess.HomeRank(colour)
	kingAt := chess.Sq(chess.KingFile, rank)
	rookAt := chess.Sq(rookHomeFile(side), rank)

	if king, ok := b.At(kingAt); !ok || king.Kind != chess.King || king.Colour != colour {
		return false
	}
	if rook, ok := b.At(rookAt); !ok || rook.Kind != chess.Rook || rook.Colour != colour {
		return false
	}

	step := sign(rookAt.File - kingAt.File)
	for file := kingAt.File + step; file != rookAt.File; file += step {
		if !b.IsEmpty(chess.Sq(file, rank)) {
			return false
		}
	}

	kingTo, _ := castleTargets(colour, side)
	enemy := colour.Opposite()
	for file := kingAt.File; ; file += step {
		if SquareIsAttacked(b, chess.Sq(file, rank), enemy) {
			return false
		}
		if file == kingTo.File {
			break
		}
	}
	return true
}

// castlingMoves marks the king destinations of every castling move
// currently available to the side to move.
func castlingMoves(pos *chess.Position) chess.MoveGrid {
	var grid chess.MoveGrid
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if canCastle(pos, side) {
			kingTo, _ := castleTargets(pos.ToMove, side)
			grid.Set(kingTo)
		}
	}
	return grid
}

// relocateCastlingRook moves the rook that accompanies a castling king.
func relocateCastlingRook(b *chess.Board, colour chess.Colour, side chess.CastleSide) {
	rank := chess.HomeRank(colour)
	_, rookTo := castleTargets(colour, side)
	b.Relocate(chess.Sq(rookHomeFile(side), rank), rookTo)
}

// updateCastlingRights clears rights lost by moving mover from from, and
// by capturing captured on to.
func updateCastlingRights(rights chess.CastlingRights, mover chess.Piece, from chess.Coord, captured chess.Piece, to chess.Coord) chess.CastlingRights {
	switch mover.Kind {
	case chess.King:
		rights = rights.WithoutColour(mover.Colour)
	case chess.Rook:
		rights = clearRookHome(rights, mover.Colour, from)
	}
	if captured.Kind == chess.Rook {
		rights = clearRookHome(rights, captured.Colour, to)
	}
	return rights
}

// clearRookHome clears the right tied to a rook home square, if sq is one.
func clearRookHome(rights chess.CastlingRights, colour chess.Colour, sq chess.Coord) chess.CastlingRights {
	if sq.Rank != chess.HomeRank(colour) {
		return rights
	}
	switch sq.File {
	case chess.KingsideRookFile:
		return rights.Without(colour, chess.Kingside)
	case chess.QueensideRookFile:
		return rights.Without(colour, chess.Queenside)
	}
	return rights
}
