// Package engine implements the rules of standard chess: move generation,
// check detection, legality filtering, move application and game-state
// classification.
package engine

import "github.com/artem-kuzishchin/chessrules/internal/chess"

// Step limits for CastRay.
const (
	SlideSteps = chess.BoardSize - 1
	StepOnce   = 1
)

// CastRay walks from origin in direction dir for up to maxSteps squares,
// using the colour of the piece standing on origin. Empty squares are
// included; the walk stops before a friendly piece and stops on (and
// includes) the first enemy piece. An empty origin yields an empty grid.
func CastRay(b *chess.Board, origin chess.Coord, dir chess.Direction, maxSteps int) chess.MoveGrid {
	var grid chess.MoveGrid
	mover, ok := b.At(origin)
	if !ok {
		return grid
	}
	castRay(&grid, b, origin, mover.Colour, dir, maxSteps)
	return grid
}

func castRay(grid *chess.MoveGrid, b *chess.Board, origin chess.Coord, colour chess.Colour, dir chess.Direction, maxSteps int) {
	sq := origin
	for step := 0; step < maxSteps; step++ {
		sq = sq.Add(dir)
		if !sq.InBounds() {
			return
		}
		occupant, occupied := b.At(sq)
		if occupied {
			if occupant.Colour != colour {
				grid.Set(sq)
			}
			return
		}
		grid.Set(sq)
	}
}

// castRays unions CastRay over a set of directions.
func castRays(b *chess.Board, p chess.Piece, dirs []chess.Direction, maxSteps int) chess.MoveGrid {
	var grid chess.MoveGrid
	for _, dir := range dirs {
		castRay(&grid, b, p.At, p.Colour, dir, maxSteps)
	}
	return grid
}

// StepTargets projects each offset once from the piece's square, keeping
// destinations that are on the board and not occupied by a friendly piece.
// Used for knights (fixed jumps, no traversal) and kings.
func StepTargets(b *chess.Board, p chess.Piece, offsets []chess.Direction) chess.MoveGrid {
	var grid chess.MoveGrid
	for _, off := range offsets {
		sq := p.At.Add(off)
		if !sq.InBounds() {
			continue
		}
		if occupant, occupied := b.At(sq); occupied && occupant.Colour == p.Colour {
			continue
		}
		grid.Set(sq)
	}
	return grid
}

// firstPieceAlong returns the first piece met walking from origin in dir,
// not counting origin itself.
func firstPieceAlong(b *chess.Board, origin chess.Coord, dir chess.Direction, maxSteps int) (chess.Piece, bool) {
	sq := origin
	for step := 0; step < maxSteps; step++ {
		sq = sq.Add(dir)
		if !sq.InBounds() {
			return chess.Piece{}, false
		}
		if p, ok := b.At(sq); ok {
			return p, true
		}
	}
	return chess.Piece{}, false
}
