package config

import (
	"fmt"
	"runtime"

	"github.com/artem-kuzishchin/chessrules/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 10

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate; 0 disables perft
	Depth int

	// Divide reports the node count below each root move
	Divide bool

	// Workers is the number of goroutines used for divide
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("worker count %d is below 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.Divide && p.Depth == 0 {
		return fmt.Errorf("divide needs a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
