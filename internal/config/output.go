package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects board, JSON or FEN output
	Format OutputFormat

	// Colour enables ANSI colours in the board diagram
	Colour bool

	// ShowLegalMoves lists the legal moves under the board diagram
	ShowLegalMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:         Board,
		ShowLegalMoves: true,
	}
}
