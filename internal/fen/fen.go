// Package fen converts positions to and from Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/artem-kuzishchin/chessrules/internal/chess"
	"github.com/artem-kuzishchin/chessrules/internal/errors"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Field numbers, 1-based as reported in MalformedInputError.
const (
	fieldPlacement = iota + 1
	fieldSide
	fieldCastling
	fieldEnPassant
	fieldHalfmove
	fieldFullmove
	numFields = fieldFullmove
)

var fieldNames = map[int]string{
	fieldPlacement: "piece placement",
	fieldSide:      "side to move",
	fieldCastling:  "castling",
	fieldEnPassant: "en passant",
	fieldHalfmove:  "halfmove clock",
	fieldFullmove:  "fullmove number",
}

func malformed(field int, reason string) *errors.MalformedInputError {
	return &errors.MalformedInputError{Field: field, FieldName: fieldNames[field], Reason: reason}
}

// Decode parses a FEN record. Pieces are numbered 1..n rank by rank from
// a1. Decode does not check that each side has exactly one king; the
// engine reports that when the position is used.
func Decode(s string) (chess.Position, error) {
	var pos chess.Position
	fields := strings.Fields(s)
	if len(fields) != numFields {
		return pos, &errors.MalformedInputError{
			Value:  s,
			Reason: fmt.Sprintf("expected %d fields, got %d", numFields, len(fields)),
		}
	}

	if err := decodePlacement(&pos.Board, fields[fieldPlacement-1]); err != nil {
		return pos, err
	}
	pos.Board.NumberPieces()

	side, err := decodeSide(fields[fieldSide-1])
	if err != nil {
		return pos, err
	}
	pos.ToMove = side

	if pos.Castling, err = decodeCastling(fields[fieldCastling-1]); err != nil {
		return pos, err
	}
	if pos.EnPassant, err = decodeEnPassant(fields[fieldEnPassant-1]); err != nil {
		return pos, err
	}
	if pos.HalfmoveClock, err = decodeCounter(fieldHalfmove, fields[fieldHalfmove-1], 0); err != nil {
		return pos, err
	}
	if pos.FullmoveNumber, err = decodeCounter(fieldFullmove, fields[fieldFullmove-1], 1); err != nil {
		return pos, err
	}
	return pos, nil
}

// decodePlacement fills b from the first field. Rows run from rank 8
// down to rank 1.
func decodePlacement(b *chess.Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		e := malformed(fieldPlacement, fmt.Sprintf("expected %d rows, got %d", chess.BoardSize, len(rows)))
		e.Value = placement
		return e
	}

	for i, row := range rows {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case c < 0x80 && chess.KindFromLetter(byte(c)) != chess.NoKind:
				if file < chess.BoardSize {
					b.Put(chess.Piece{Kind: chess.KindFromLetter(byte(c)), Colour: colourOf(c)}, chess.Sq(file, rank))
				}
				file++
			default:
				e := malformed(fieldPlacement, "illegal character")
				e.Row, e.Char = i+1, c
				return e
			}
			if file > chess.BoardSize {
				e := malformed(fieldPlacement, fmt.Sprintf("row describes more than %d files", chess.BoardSize))
				e.Row, e.Char = i+1, c
				return e
			}
		}
		if file != chess.BoardSize {
			e := malformed(fieldPlacement, fmt.Sprintf("row describes %d files, want %d", file, chess.BoardSize))
			e.Row, e.Value = i+1, row
			return e
		}
	}
	return nil
}

func colourOf(c rune) chess.Colour {
	if c >= 'a' && c <= 'z' {
		return chess.Black
	}
	return chess.White
}

func decodeSide(s string) (chess.Colour, error) {
	switch s {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	e := malformed(fieldSide, "want w or b")
	e.Value = s
	return chess.White, e
}

var castlingLetters = []struct {
	letter byte
	colour chess.Colour
	side   chess.CastleSide
}{
	{'K', chess.White, chess.Kingside},
	{'Q', chess.White, chess.Queenside},
	{'k', chess.Black, chess.Kingside},
	{'q', chess.Black, chess.Queenside},
}

func decodeCastling(s string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	if s == "-" {
		return rights, nil
	}
	seen := map[rune]bool{}
	for _, c := range s {
		found := false
		for _, cl := range castlingLetters {
			if rune(cl.letter) == c {
				rights[cl.colour][wing(cl.side)] = true
				found = true
			}
		}
		if !found {
			e := malformed(fieldCastling, "illegal character")
			e.Char = c
			return rights, e
		}
		if seen[c] {
			e := malformed(fieldCastling, "duplicated flag")
			e.Char = c
			return rights, e
		}
		seen[c] = true
	}
	return rights, nil
}

func wing(side chess.CastleSide) int {
	if side == chess.Queenside {
		return 1
	}
	return 0
}

func decodeEnPassant(s string) (chess.EnPassantTarget, error) {
	if s == "-" {
		return chess.NoEnPassant, nil
	}
	sq, ok := chess.ParseCoord(s)
	if !ok {
		e := malformed(fieldEnPassant, "not a square")
		e.Value = s
		return chess.NoEnPassant, e
	}
	return chess.EnPassantAt(sq), nil
}

func decodeCounter(field int, s string, least int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		e := malformed(field, "not an integer")
		e.Value = s
		return 0, e
	}
	if n < least {
		e := malformed(field, fmt.Sprintf("must be at least %d", least))
		e.Value = s
		return 0, e
	}
	return n, nil
}

// Encode writes pos as a FEN record.
func Encode(pos *chess.Position) string {
	var sb strings.Builder

	writePlacement(&sb, &pos.Board)
	sb.WriteByte(' ')
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastling(&sb, pos.Castling)
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

func writePlacement(sb *strings.Builder, b *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			p, ok := b.At(chess.Sq(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

func writeCastling(sb *strings.Builder, rights chess.CastlingRights) {
	if !rights.Any() {
		sb.WriteByte('-')
		return
	}
	for _, cl := range castlingLetters {
		if rights.Has(cl.colour, cl.side) {
			sb.WriteByte(cl.letter)
		}
	}
}

// Start returns the standard starting position.
func Start() chess.Position {
	return chess.StartingPosition()
}
