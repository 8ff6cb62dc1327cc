package main

import (
	"time"

	"github.com/artem-kuzishchin/chessrules/internal/config"
	"github.com/artem-kuzishchin/chessrules/internal/engine"
	"github.com/artem-kuzishchin/chessrules/internal/errors"
	"github.com/artem-kuzishchin/chessrules/internal/game"
	"github.com/artem-kuzishchin/chessrules/internal/output"
	"github.com/artem-kuzishchin/chessrules/internal/worker"
)

func realMain(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	if _, err := g.PlayAll(cfg.Game.Moves); err != nil {
		// An illegal move is reported together with the position it was
		// rejected in.
		if !errors.Is(err, errors.ErrIllegalMove) && !errors.Is(err, errors.ErrGameOver) {
			return err
		}
		cfg.Logf(1, "%v\n", err)
		if werr := writeReport(cfg, g); werr != nil {
			return werr
		}
		return err
	}

	if cfg.Perft.Depth > 0 {
		return runPerft(cfg, g)
	}
	if err := writeReport(cfg, g); err != nil {
		return err
	}
	cfg.Logf(1, "%d moves played, %s\n", len(g.Moves()), g.State())
	return nil
}

func newGame(cfg *config.Config) (*game.Game, error) {
	opts := []game.Option{game.WithLog(cfg.LogFile, cfg.Verbosity)}
	if cfg.Game.FallbackToStart {
		opts = append(opts, game.WithFallbackToStart())
	}
	return game.NewFromFEN(cfg.Game.StartFEN, opts...)
}

func writeReport(cfg *config.Config, g *game.Game) error {
	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := w.WriteReport(output.GameReport(g)); err != nil {
		return err
	}
	return w.Close()
}

// runPerft counts move paths from the current position of g, splitting
// the work across goroutines when a divide is requested.
func runPerft(cfg *config.Config, g *game.Game) error {
	pos := g.Position()
	res := &output.PerftResult{Depth: cfg.Perft.Depth}

	start := time.Now()
	if cfg.Perft.Divide {
		entries, err := worker.Divide(&pos, cfg.Perft.Depth, cfg.Perft.Workers)
		if err != nil {
			return err
		}
		res.Divide = entries
		res.Nodes = worker.Total(entries)
	} else {
		nodes, err := engine.Perft(&pos, cfg.Perft.Depth)
		if err != nil {
			return err
		}
		res.Nodes = nodes
	}
	res.Elapsed = time.Since(start)

	cfg.Logf(2, "perft(%d) from %s\n", cfg.Perft.Depth, g.FEN())
	return output.WritePerft(cfg.OutputFile, res)
}
