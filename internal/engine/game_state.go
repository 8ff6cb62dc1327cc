package engine

import (
	"fmt"

	"github.com/artem-kuzishchin/chessrules/internal/chess"
)

// GameState is the outcome of classifying a position.
type GameState int

const (
	Ongoing GameState = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveDraw
	ThreefoldRepetition
)

var gameStateNames = []string{
	"ongoing",
	"checkmate",
	"stalemate",
	"insufficient material",
	"50-move draw",
	"threefold repetition",
}

// String returns the name of the state.
func (s GameState) String() string {
	if s >= 0 && int(s) < len(gameStateNames) {
		return gameStateNames[s]
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// IsTerminal reports whether the game is over.
func (s GameState) IsTerminal() bool {
	return s != Ongoing
}

// IsDraw reports whether the state ends the game without a winner.
func (s GameState) IsDraw() bool {
	return s.IsTerminal() && s != Checkmate
}

// MarshalText implements encoding.TextMarshaler.
func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RepetitionCounter reports how often a position has occurred in a game.
type RepetitionCounter interface {
	Count(pos *chess.Position) int
}

// Classify decides the state of pos given its legal-move map and the game
// history. Checks run in a fixed order and the first match wins: no legal
// moves (checkmate or stalemate), insufficient material, the fifty-move
// rule, threefold repetition. history may be nil.
//
// A missing king yields Checkmate together with the InvariantViolation.
func Classify(pos *chess.Position, moves LegalMoveMap, history RepetitionCounter) (GameState, error) {
	if !moves.HasAny() {
		inCheck, err := InCheck(pos)
		if inCheck {
			return Checkmate, err
		}
		return Stalemate, err
	}
	if HasInsufficientMaterial(&pos.Board) {
		return InsufficientMaterial, nil
	}
	if FiftyMoveRuleReached(pos) {
		return FiftyMoveDraw, nil
	}
	if history != nil && history.Count(pos) >= RepetitionLimit {
		return ThreefoldRepetition, nil
	}
	return Ongoing, nil
}

// ClassifyPosition computes the legal-move map itself and classifies pos.
func ClassifyPosition(pos *chess.Position, history RepetitionCounter) (GameState, error) {
	moves, err := LegalMoves(pos)
	if err != nil {
		return Checkmate, err
	}
	return Classify(pos, moves, history)
}
