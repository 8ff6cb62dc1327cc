package engine

import (
	"testing"

	"github.com/artem-kuzishchin/chessrules/internal/chess"
	"github.com/artem-kuzishchin/chessrules/internal/errors"
	"github.com/artem-kuzishchin/chessrules/internal/fen"
	"github.com/artem-kuzishchin/chessrules/internal/testutil"
)

func TestLegalMoves_StartPosition(t *testing.T) {
	pos := fen.Start()
	moves, err := LegalMoves(&pos)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(moves), 16, "every white piece has an entry")
	testutil.AssertEqual(t, moves.Total(), 20)

	pawnMoves, knightMoves := 0, 0
	for id, grid := range moves {
		p, _ := pos.Board.Find(id)
		switch p.Kind {
		case chess.Pawn:
			pawnMoves += grid.Count()
		case chess.Knight:
			knightMoves += grid.Count()
		default:
			if grid.Any() {
				t.Errorf("%v has moves in the start position", p)
			}
		}
	}
	testutil.AssertEqual(t, pawnMoves, 16)
	testutil.AssertEqual(t, knightMoves, 4)

	ids := moves.IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("IDs() not ascending: %v", ids)
		}
	}
}

func TestLegalMoves_Counts(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"pinned bishop cannot move", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", 4},
		{"only king moves answer a rank check", "4k3/8/8/8/8/8/8/r3K2R w K - 0 1", 3},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 48},
		{"checkmated side has nothing", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", 0},
		{"stalemated side has nothing", "7k/5K2/5N2/8/8/8/8/8 b - - 0 1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustDecode(t, tt.fen)
			moves, err := LegalMoves(&pos)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, moves.Total(), tt.want)
			testutil.AssertEqual(t, moves.HasAny(), tt.want > 0)
		})
	}
}

func TestLegalMoves_EnPassantDiscoveredCheck(t *testing.T) {
	pos := testutil.MustDecode(t, "8/8/8/KPp4r/8/8/8/4k3 w - c6 0 2")
	pawn := testutil.MustPieceAt(t, &pos, "b5")

	grid, err := LegalMovesOf(&pos, pawn)
	testutil.AssertNoError(t, err)
	assertGrid(t, grid, []string{"b6"})
}

func TestLegalMoves_Castling(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		kingsideOK  bool
		queensideOK bool
	}{
		{"both wings open", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", false, false},
		{"f1 occupied", "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", false, true},
		{"g1 occupied", "r3k2r/8/8/8/8/8/8/R3K1NR w KQkq - 0 1", false, true},
		{"b1 occupied", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", true, false},
		{"f1 attacked", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", false, true},
		{"g1 attacked", "r3k1r1/8/8/8/8/8/8/R3K2R w KQq - 0 1", false, true},
		{"king in check", "r3k2r/8/8/8/4r3/8/8/R3K2R w KQ - 0 1", false, false},
		{"b1 attacked does not matter", "1r2k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1", true, true},
		{"d1 attacked", "3rk2r/8/8/8/8/8/8/R3K2R w KQk - 0 1", true, false},
		{"rights without rooks", "4k3/8/8/8/8/8/8/4K3 w KQ - 0 1", false, false},
		{"enemy rook on the corner", "4k3/8/8/8/8/8/8/r3K2r w KQ - 0 1", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustDecode(t, tt.fen)
			king := testutil.MustPieceAt(t, &pos, "e1")
			grid, err := LegalMovesOf(&pos, king)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, grid.Has(testutil.MustSquare(t, "g1")), tt.kingsideOK, "kingside")
			testutil.AssertEqual(t, grid.Has(testutil.MustSquare(t, "c1")), tt.queensideOK, "queenside")
		})
	}
}

func TestLegalMoves_BlackCastling(t *testing.T) {
	pos := testutil.MustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	king := testutil.MustPieceAt(t, &pos, "e8")
	grid, err := LegalMovesOf(&pos, king)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, grid.Has(testutil.MustSquare(t, "g8")), "kingside")
	testutil.AssertTrue(t, grid.Has(testutil.MustSquare(t, "c8")), "queenside")
}

func TestLegalMoveMap_Allows(t *testing.T) {
	pos := testutil.MustDecode(t, fen.StartFEN)
	moves, err := LegalMoves(&pos)
	testutil.AssertNoError(t, err)

	knight := testutil.MustPieceAt(t, &pos, "g1")
	blackPawn := testutil.MustPieceAt(t, &pos, "e7")

	tests := []struct {
		name string
		id   chess.PieceID
		to   string
		want bool
	}{
		{"knight to f3", knight.ID, "f3", true},
		{"knight to e2 is blocked", knight.ID, "e2", false},
		{"opponent pawn", blackPawn.ID, "e5", false},
		{"unknown identity", chess.PieceID(99), "e4", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, moves.Allows(tt.id, testutil.MustSquare(t, tt.to)), tt.want)
		})
	}
}

func TestLegalMovesOf_OpponentPiece(t *testing.T) {
	pos := fen.Start()
	blackKnight := testutil.MustPieceAt(t, &pos, "g8")
	grid, err := LegalMovesOf(&pos, blackKnight)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, grid.Any(), "black has no moves while white is to move")
}

func TestLegalMoves_MissingKing(t *testing.T) {
	pos := testutil.MustDecode(t, "4k3/8/8/8/8/8/4P3/8 w - - 0 1")
	moves, err := LegalMoves(&pos)
	testutil.AssertErrorIs(t, err, errors.ErrInvariantViolation)
	testutil.AssertFalse(t, moves.HasAny(), "no moves without a king")
}

func TestLegalMoves_ProbingLeavesPositionUntouched(t *testing.T) {
	pos := testutil.MustDecode(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := pos
	if _, err := LegalMoves(&pos); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, pos, before)
}

// No legal move may leave the board, land on a friendly piece, or leave
// the mover's own king attacked.
func TestLegalMoves_Properties(t *testing.T) {
	for _, record := range propertyFENs {
		t.Run(record, func(t *testing.T) {
			pos := testutil.MustDecode(t, record)
			moves, err := GenerateMoves(&pos)
			testutil.AssertNoError(t, err)

			for _, m := range moves {
				if !m.To.InBounds() {
					t.Errorf("%v leaves the board", m)
				}
				if q, ok := pos.Board.At(m.To); ok && q.Colour == pos.ToMove {
					t.Errorf("%v lands on friendly %v", m, q)
				}
				next, err := m.Apply(pos)
				if err != nil {
					t.Errorf("%v: %v", m, err)
					continue
				}
				if inCheck, _ := IsInCheck(&next.Board, pos.ToMove); inCheck {
					t.Errorf("%v leaves the %v king in check", m, pos.ToMove)
				}
			}
		})
	}
}
