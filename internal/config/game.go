package config

import "github.com/artem-kuzishchin/chessrules/internal/fen"

// GameConfig holds settings for the game session.
type GameConfig struct {
	// StartFEN is the position the session starts from
	StartFEN string

	// FallbackToStart replaces an undecodable StartFEN with the standard
	// starting position instead of failing
	FallbackToStart bool

	// Moves are played in coordinate notation before reporting
	Moves []string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		StartFEN: fen.StartFEN,
	}
}
