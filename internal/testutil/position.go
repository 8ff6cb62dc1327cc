package testutil

import (
	"testing"

	"github.com/artem-kuzishchin/chessrules/internal/chess"
	"github.com/artem-kuzishchin/chessrules/internal/fen"
)

// MustDecode decodes a FEN record, failing the test on error.
func MustDecode(t testing.TB, record string) chess.Position {
	t.Helper()
	pos, err := fen.Decode(record)
	if err != nil {
		t.Fatalf("fen.Decode(%q): %v", record, err)
	}
	return pos
}

// MustSquare parses a square name such as "e4", failing the test on error.
func MustSquare(t testing.TB, name string) chess.Coord {
	t.Helper()
	sq, ok := chess.ParseCoord(name)
	if !ok {
		t.Fatalf("bad square %q", name)
	}
	return sq
}

// MustPieceAt returns the piece on the named square, failing the test if
// the square is empty.
func MustPieceAt(t testing.TB, pos *chess.Position, name string) chess.Piece {
	t.Helper()
	p, ok := pos.Board.At(MustSquare(t, name))
	if !ok {
		t.Fatalf("no piece on %s", name)
	}
	return p
}

// Squares converts a list of square names to coordinates.
func Squares(t testing.TB, names ...string) []chess.Coord {
	t.Helper()
	out := make([]chess.Coord, 0, len(names))
	for _, n := range names {
		out = append(out, MustSquare(t, n))
	}
	return out
}
