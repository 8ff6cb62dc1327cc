package engine

import "github.com/artem-kuzishchin/chessrules/internal/chess"

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Each promotion kind counts as a separate move.
func Perft(pos *chess.Position, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves, err := GenerateMoves(pos)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var nodes uint64
	for _, m := range moves {
		p, _ := pos.Board.Find(m.Piece)
		next := commit(*pos, p, m.To, promotionOrQueen(m.Promotion))
		n, err := Perft(&next, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide runs Perft below each root move, in GenerateMoves order.
func Divide(pos *chess.Position, depth int) ([]DivideEntry, error) {
	moves, err := GenerateMoves(pos)
	if err != nil {
		return nil, err
	}
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		next, err := m.Apply(*pos)
		if err != nil {
			return nil, err
		}
		n, err := Perft(&next, depth-1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, DivideEntry{Move: m, Nodes: n})
	}
	return entries, nil
}

func promotionOrQueen(k chess.Kind) chess.Kind {
	if k == chess.NoKind {
		return chess.Queen
	}
	return k
}
