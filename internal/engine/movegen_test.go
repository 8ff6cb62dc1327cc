package engine

import (
	"testing"

	"github.com/artem-kuzishchin/chessrules/internal/chess"
	"github.com/artem-kuzishchin/chessrules/internal/fen"
	"github.com/artem-kuzishchin/chessrules/internal/testutil"
)

func TestCastRay(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		origin   string
		dir      chess.Direction
		maxSteps int
		want     []string
	}{
		{
			name:     "open file to the edge",
			fen:      "4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			origin:   "a1",
			dir:      chess.Direction{Rank: 1},
			maxSteps: SlideSteps,
			want:     []string{"a2", "a3", "a4", "a5", "a6", "a7", "a8"},
		},
		{
			name:     "stops on enemy piece",
			fen:      "4k3/8/8/8/p7/8/8/R3K3 w - - 0 1",
			origin:   "a1",
			dir:      chess.Direction{Rank: 1},
			maxSteps: SlideSteps,
			want:     []string{"a2", "a3", "a4"},
		},
		{
			name:     "stops before friendly piece",
			fen:      "4k3/8/8/8/P7/8/8/R3K3 w - - 0 1",
			origin:   "a1",
			dir:      chess.Direction{Rank: 1},
			maxSteps: SlideSteps,
			want:     []string{"a2", "a3"},
		},
		{
			name:     "max steps limits the walk",
			fen:      "4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			origin:   "a1",
			dir:      chess.Direction{File: 1},
			maxSteps: 2,
			want:     []string{"b1", "c1"},
		},
		{
			name:     "off the board immediately",
			fen:      "4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			origin:   "a1",
			dir:      chess.Direction{File: -1, Rank: -1},
			maxSteps: SlideSteps,
			want:     []string{},
		},
		{
			name:     "empty origin",
			fen:      "4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			origin:   "d4",
			dir:      chess.Direction{Rank: 1},
			maxSteps: SlideSteps,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustDecode(t, tt.fen)
			grid := CastRay(&pos.Board, testutil.MustSquare(t, tt.origin), tt.dir, tt.maxSteps)
			assertGrid(t, grid, tt.want)
		})
	}
}

func TestPseudoLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{"knight in the corner", "4k3/8/8/8/8/8/8/N3K3 w - - 0 1", "a1", []string{"b3", "c2"}},
		{"knight blocked by friends", fen.StartFEN, "g1", []string{"f3", "h3"}},
		{"knight jumps over pieces", fen.StartFEN, "b1", []string{"a3", "c3"}},
		{"bishop boxed in", fen.StartFEN, "c1", []string{}},
		{"king single steps", "4k3/8/8/8/3K4/8/8/8 w - - 0 1", "d4", []string{"c3", "c4", "c5", "d3", "d5", "e3", "e4", "e5"}},
		{"king never includes castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", []string{"d1", "d2", "e2", "f1", "f2"}},
		{"queen from centre with blockers", "4k3/8/8/2p5/3Q4/4P3/8/4K3 w - - 0 1", "d4", []string{
			"a1", "a4", "b2", "b4", "c3", "c4", "c5", "d1", "d2", "d3", "d5", "d6", "d7", "d8", "e4", "e5", "f4", "f6", "g4", "g7", "h4", "h8",
		}},
		{"pawn on start rank", fen.StartFEN, "e2", []string{"e3", "e4"}},
		{"pawn double step blocked on far square", "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1", "e2", []string{"e3"}},
		{"pawn blocked in front", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", []string{}},
		{"pawn diagonal captures", "4k3/8/8/8/8/3n1p2/4P3/4K3 w - - 0 1", "e2", []string{"d3", "e3", "e4", "f3"}},
		{"pawn ignores friendly diagonal", "4k3/8/8/8/8/3N4/4P3/4K3 w - - 0 1", "e2", []string{"e3", "e4"}},
		{"black pawn moves down", "4k3/3p4/8/8/8/8/8/4K3 b - - 0 1", "d7", []string{"d5", "d6"}},
		{"black pawn past start rank", "4k3/8/3p4/8/8/8/8/4K3 b - - 0 1", "d6", []string{"d5"}},
		{"en passant target", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", "e5", []string{"d6", "e6"}},
		{"en passant on wrong rank ignored", "4k3/8/8/8/8/8/4P3/4K3 w - d3 0 2", "e2", []string{"e3", "e4"}},
		{"black en passant", "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1", "d4", []string{"d3", "e3"}},
		{"pawn on last rank has no moves", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1", "a8", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustDecode(t, tt.fen)
			p := testutil.MustPieceAt(t, &pos, tt.square)
			assertGrid(t, PseudoLegalMoves(&pos, p), tt.want)
		})
	}
}

func TestPseudoLegalMoves_NeverFriendlyOrSelf(t *testing.T) {
	for _, record := range propertyFENs {
		pos := testutil.MustDecode(t, record)
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for _, p := range pos.Board.Pieces(colour) {
				grid := PseudoLegalMoves(&pos, p)
				if grid.Has(p.At) {
					t.Errorf("%s: %v threatens its own square", record, p)
				}
				for _, sq := range grid.Squares() {
					if q, ok := pos.Board.At(sq); ok && q.Colour == p.Colour {
						t.Errorf("%s: %v may move onto friendly %v", record, p, q)
					}
				}
			}
		}
	}
}

// assertGrid compares the marked squares of grid with want.
func assertGrid(t *testing.T, grid chess.MoveGrid, want []string) {
	t.Helper()
	got := []string{}
	for _, sq := range grid.Squares() {
		got = append(got, sq.String())
	}
	testutil.AssertEqual(t, got, sortedSquares(t, want))
}

// sortedSquares orders square names the way MoveGrid.Squares does.
func sortedSquares(t *testing.T, names []string) []string {
	t.Helper()
	var grid chess.MoveGrid
	for _, n := range names {
		grid.Set(testutil.MustSquare(t, n))
	}
	out := []string{}
	for _, sq := range grid.Squares() {
		out = append(out, sq.String())
	}
	return out
}

var propertyFENs = []string{
	fen.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
}
