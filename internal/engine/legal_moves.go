package engine

import (
	"github.com/artem-kuzishchin/chessrules/internal/chess"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// LegalMoveMap maps each piece of the side to move to the squares it may
// legally move to. Pieces without a legal move are still present, with an
// empty grid.
type LegalMoveMap map[chess.PieceID]chess.MoveGrid

// HasAny reports whether at least one legal move exists.
func (m LegalMoveMap) HasAny() bool {
	for _, grid := range m {
		if grid.Any() {
			return true
		}
	}
	return false
}

// Total returns the number of legal (piece, destination) pairs.
func (m LegalMoveMap) Total() int {
	n := 0
	for _, grid := range m {
		n += grid.Count()
	}
	return n
}

// IDs returns the pieces in the map in ascending identity order.
func (m LegalMoveMap) IDs() []chess.PieceID {
	ids := maps.Keys(m)
	slices.Sort(ids)
	return ids
}

// Allows reports whether piece id may move to to.
func (m LegalMoveMap) Allows(id chess.PieceID, to chess.Coord) bool {
	grid, ok := m[id]
	return ok && grid.Has(to)
}

// LegalMoves returns the legal-move map for the side to move. If either
// king is missing the map is empty and an InvariantViolation is returned.
func LegalMoves(pos *chess.Position) (LegalMoveMap, error) {
	moves := LegalMoveMap{}
	if err := validateKings(&pos.Board); err != nil {
		return moves, err
	}
	for _, p := range pos.Board.Pieces(pos.ToMove) {
		moves[p.ID] = legalMovesOf(pos, p)
	}
	return moves, nil
}

// LegalMovesOf returns the legal destinations of a single piece. A piece
// that does not belong to the side to move has none.
func LegalMovesOf(pos *chess.Position, p chess.Piece) (chess.MoveGrid, error) {
	if err := validateKings(&pos.Board); err != nil {
		return chess.MoveGrid{}, err
	}
	if p.Colour != pos.ToMove {
		return chess.MoveGrid{}, nil
	}
	return legalMovesOf(pos, p), nil
}

// legalMovesOf filters the piece's pseudo-legal destinations, then adds
// castling for the king. Kings have been validated by the caller.
func legalMovesOf(pos *chess.Position, p chess.Piece) chess.MoveGrid {
	var legal chess.MoveGrid
	for _, to := range PseudoLegalMoves(pos, p).Squares() {
		if leavesKingSafe(pos, p, to) {
			legal.Set(to)
		}
	}
	if p.Kind == chess.King {
		legal.Union(castlingMoves(pos))
	}
	return legal
}

// leavesKingSafe plays p to to on a private copy of the board and reports
// whether the mover's king is then unattacked.
func leavesKingSafe(pos *chess.Position, p chess.Piece, to chess.Coord) bool {
	probe := pos.Board
	relocate(&probe, pos, p, to)

	king := to
	if p.Kind != chess.King {
		var err error
		if king, err = KingSquare(&probe, p.Colour); err != nil {
			return false
		}
	}
	return !SquareIsAttacked(&probe, king, p.Colour.Opposite())
}
