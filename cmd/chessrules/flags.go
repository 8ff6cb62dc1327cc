// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"
	"strings"

	"github.com/artem-kuzishchin/chessrules/internal/config"
	"github.com/artem-kuzishchin/chessrules/internal/fen"
)

var (
	// Position
	startFEN = flag.String("fen", fen.StartFEN, "Starting position in FEN")
	fallback = flag.Bool("fallback", false, "Use the standard starting position if -fen cannot be decoded")
	moveList = flag.String("moves", "", "Moves to play, space or comma separated (e.g. \"e2e4 e7e5\")")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count move paths to this depth instead of reporting")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	workers    = flag.Int("workers", runtime.NumCPU(), "Goroutines used by -divide")

	// Output
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	fenOutput  = flag.Bool("F", false, "Output only the final FEN")
	colour     = flag.Bool("color", false, "Colour the board diagram")
	noMoves    = flag.Bool("nomoves", false, "Don't list legal moves under the board")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 every move")
	logFile   = flag.String("log", "", "Write diagnostics to this file (default: stderr)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyPerftFlags(cfg)
	applyOutputFlags(cfg)
	cfg.Verbosity = *verbosity
}

func applyGameFlags(cfg *config.Config) {
	cfg.Game.StartFEN = *startFEN
	cfg.Game.FallbackToStart = *fallback
	cfg.Game.Moves = splitMoves(*moveList)
}

func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
}

func applyOutputFlags(cfg *config.Config) {
	switch {
	case *jsonOutput:
		cfg.Output.Format = config.JSON
	case *fenOutput:
		cfg.Output.Format = config.FEN
	default:
		cfg.Output.Format = config.Board
	}
	cfg.Output.Colour = *colour
	cfg.Output.ShowLegalMoves = !*noMoves
}

// splitMoves splits a move list on spaces and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
