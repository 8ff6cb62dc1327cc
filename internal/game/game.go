// Package game runs a single game session: one authoritative position,
// its repetition history and the moves played so far.
package game

import (
	"fmt"
	"io"

	"github.com/artem-kuzishchin/chessrules/internal/chess"
	"github.com/artem-kuzishchin/chessrules/internal/engine"
	"github.com/artem-kuzishchin/chessrules/internal/errors"
	"github.com/artem-kuzishchin/chessrules/internal/fen"
	"github.com/artem-kuzishchin/chessrules/internal/hashing"
)

// Game is a game session. It is not safe for concurrent use; concurrent
// games each own their own Game.
type Game struct {
	pos     chess.Position
	history *hashing.History
	played  []engine.Move
	legal   engine.LegalMoveMap
	state   engine.GameState

	// broken holds the InvariantViolation that ended the session, if any.
	broken error

	fellBack  bool
	fallback  bool
	logFile   io.Writer
	verbosity int
}

// Option configures a Game.
type Option func(*Game)

// WithFallbackToStart makes NewFromFEN start from the standard position
// when the record cannot be decoded, instead of failing.
func WithFallbackToStart() Option {
	return func(g *Game) {
		g.fallback = true
	}
}

// WithLog sends progress messages to w. Verbosity 0 is silent, 1 reports
// game end and fallbacks, 2 also reports every move.
func WithLog(w io.Writer, verbosity int) Option {
	return func(g *Game) {
		g.logFile = w
		g.verbosity = verbosity
	}
}

// New starts a game from the standard starting position.
func New(opts ...Option) *Game {
	// The starting position always has both kings.
	g, _ := newGame(chess.StartingPosition(), opts)
	return g
}

// NewFromFEN starts a game from a FEN record. A position without exactly
// one king per side is rejected with ErrInvariantViolation.
func NewFromFEN(record string, opts ...Option) (*Game, error) {
	pos, err := fen.Decode(record)
	if err == nil {
		return newGame(pos, opts)
	}

	probe := &Game{}
	for _, opt := range opts {
		opt(probe)
	}
	if !probe.fallback {
		return nil, err
	}
	g, gerr := newGame(chess.StartingPosition(), opts)
	if gerr != nil {
		return nil, gerr
	}
	g.fellBack = true
	g.logf(1, "cannot decode position, using the starting position: %v\n", err)
	return g, nil
}

func newGame(pos chess.Position, opts []Option) (*Game, error) {
	g := &Game{pos: pos}
	for _, opt := range opts {
		opt(g)
	}
	g.history = hashing.NewHistory(&g.pos)
	if err := g.refresh(); err != nil {
		return nil, err
	}
	return g, nil
}

// refresh recomputes the legal moves and state of the current position.
func (g *Game) refresh() error {
	legal, err := engine.LegalMoves(&g.pos)
	if err != nil {
		return g.breakSession(err)
	}
	state, err := engine.Classify(&g.pos, legal, g.history)
	if err != nil {
		return g.breakSession(err)
	}
	g.legal = legal
	g.state = state
	if state.IsTerminal() {
		g.logf(1, "game over after %d plies: %s\n", len(g.played), state)
	}
	return nil
}

func (g *Game) breakSession(err error) error {
	g.broken = err
	g.legal = engine.LegalMoveMap{}
	g.state = engine.Checkmate
	g.logf(1, "session stopped: %v\n", err)
	return err
}

// Move plays the piece with the given identity to to, promoting to a queen
// if it is a pawn reaching the last rank. It returns the new game state.
// An illegal move leaves the game unchanged.
func (g *Game) Move(id chess.PieceID, to chess.Coord) (engine.GameState, error) {
	return g.MoveWithPromotion(id, to, chess.Queen)
}

// MoveWithPromotion is Move with an explicit promotion kind.
func (g *Game) MoveWithPromotion(id chess.PieceID, to chess.Coord, promotion chess.Kind) (engine.GameState, error) {
	if g.broken != nil {
		return g.state, g.broken
	}
	if g.state.IsTerminal() {
		return g.state, errors.Wrapf(errors.ErrGameOver, "%s", g.state)
	}

	from, _ := g.pos.Board.Find(id)
	if !g.legal.Allows(id, to) {
		return g.state, &errors.IllegalMoveError{
			Piece:  from.String(),
			To:     to.String(),
			Reason: "not in the legal-move map",
		}
	}
	next, err := engine.ApplyMoveWithPromotion(g.pos, id, to, promotion)
	if err != nil {
		if errors.Is(err, errors.ErrInvariantViolation) {
			return g.state, g.breakSession(err)
		}
		return g.state, err
	}

	m := engine.Move{Piece: id, From: from.At, To: to}
	if from.Kind == chess.Pawn && to.Rank == chess.PromotionRank(from.Colour) {
		m.Promotion = promotion
	}
	g.pos = next
	g.played = append(g.played, m)
	g.history.Record(&g.pos)
	g.logf(2, "%d. %s %s\n", len(g.played), from, m)

	if err := g.refresh(); err != nil {
		return g.state, err
	}
	return g.state, nil
}

// MoveCoords plays the piece standing on from to to.
func (g *Game) MoveCoords(from, to chess.Coord, promotion chess.Kind) (engine.GameState, error) {
	p, ok := g.pos.Board.At(from)
	if !ok {
		return g.state, &errors.IllegalMoveError{
			From:   from.String(),
			To:     to.String(),
			Reason: "no piece on the source square",
		}
	}
	if promotion == chess.NoKind {
		promotion = chess.Queen
	}
	return g.MoveWithPromotion(p.ID, to, promotion)
}

// Play plays a move in coordinate notation, such as "e2e4" or "e7e8n".
func (g *Game) Play(text string) (engine.GameState, error) {
	m, err := engine.ParseMove(&g.pos, text)
	if err != nil {
		return g.state, err
	}
	return g.MoveCoords(m.From, m.To, m.Promotion)
}

// PlayAll plays moves in order and stops at the first error, reporting
// which move failed.
func (g *Game) PlayAll(moves []string) (engine.GameState, error) {
	for i, text := range moves {
		if _, err := g.Play(text); err != nil {
			return g.state, errors.Wrapf(err, "move %d (%s)", i+1, text)
		}
	}
	return g.state, nil
}

// Position returns the current position.
func (g *Game) Position() chess.Position {
	return g.pos
}

// FEN returns the current position as a FEN record.
func (g *Game) FEN() string {
	return fen.Encode(&g.pos)
}

// LegalMoves returns a copy of the legal-move map of the side to move.
func (g *Game) LegalMoves() engine.LegalMoveMap {
	out := make(engine.LegalMoveMap, len(g.legal))
	for id, grid := range g.legal {
		out[id] = grid
	}
	return out
}

// LegalMovesOf returns the legal destinations of one piece.
func (g *Game) LegalMovesOf(id chess.PieceID) chess.MoveGrid {
	return g.legal[id]
}

// State returns the classification of the current position.
func (g *Game) State() engine.GameState {
	return g.state
}

// Moves returns the moves played so far.
func (g *Game) Moves() []engine.Move {
	out := make([]engine.Move, len(g.played))
	copy(out, g.played)
	return out
}

// History returns the repetition history. Callers must not record into it.
func (g *Game) History() *hashing.History {
	return g.history
}

// Err returns the InvariantViolation that stopped the session, or nil.
func (g *Game) Err() error {
	return g.broken
}

// FellBack reports whether NewFromFEN substituted the starting position.
func (g *Game) FellBack() bool {
	return g.fellBack
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.logFile == nil || g.verbosity < level {
		return
	}
	fmt.Fprintf(g.logFile, format, args...)
}
