package hashing

import "github.com/artem-kuzishchin/chessrules/internal/chess"

// Zobrist keys, generated once from a fixed seed so hashes are stable
// across runs.
var (
	zobristPiece      [chess.NumColours][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	zobristEnPassant  [chess.BoardSize * chess.BoardSize]uint64
	zobristCastling   [chess.NumColours][2]uint64
	zobristSideToMove uint64
)

func init() {
	rng := prng{state: 0x98F107A2BEEF1234}

	for c := range zobristPiece {
		for k := range zobristPiece[c] {
			for sq := range zobristPiece[c][k] {
				zobristPiece[c][k][sq] = rng.next()
			}
		}
	}
	for sq := range zobristEnPassant {
		zobristEnPassant[sq] = rng.next()
	}
	for c := range zobristCastling {
		for w := range zobristCastling[c] {
			zobristCastling[c][w] = rng.next()
		}
	}
	zobristSideToMove = rng.next()
}

// prng is an xorshift64* generator.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func index(c chess.Coord) int {
	return c.Rank*chess.BoardSize + c.File
}

// Hash returns the Zobrist hash of the repetition-relevant part of pos:
// piece layout, side to move, castling rights and en passant target.
// Move counters and piece identities are not hashed.
func Hash(pos *chess.Position) uint64 {
	var h uint64
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range pos.Board.Pieces(colour) {
			h ^= zobristPiece[p.Colour][p.Kind][index(p.At)]
		}
	}
	if pos.ToMove == chess.Black {
		h ^= zobristSideToMove
	}
	for c := range pos.Castling {
		for w, set := range pos.Castling[c] {
			if set {
				h ^= zobristCastling[c][w]
			}
		}
	}
	if sq, ok := pos.EnPassant.Target(); ok {
		h ^= zobristEnPassant[index(sq)]
	}
	return h
}
