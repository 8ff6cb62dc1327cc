// Package config provides the settings of the chessrules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/artem-kuzishchin/chessrules/internal/errors"
)

// OutputFormat selects how the final position is reported.
type OutputFormat int

const (
	Board OutputFormat = iota // Text diagram with state line
	JSON                      // JSON report
	FEN                       // FEN record only
)

// String returns the name of the format.
func (f OutputFormat) String() string {
	switch f {
	case Board:
		return "board"
	case JSON:
		return "json"
	case FEN:
		return "fen"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Game   *GameConfig
	Perft  *PerftConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Game:       NewGameConfig(),
		Perft:      NewPerftConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostic stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration for contradictory or out-of-range
// settings.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	if c.Game.StartFEN == "" {
		return fmt.Errorf("empty starting position: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
