// Package output writes position reports as text diagrams, JSON or FEN,
// and formats perft results.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/artem-kuzishchin/chessrules/internal/config"
)

// ReportWriter is the interface for writing reports to output.
type ReportWriter interface {
	// WriteReport writes a single report.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	switch cfg.Output.Format {
	case config.JSON:
		return NewJSONWriterSingle(w)
	case config.FEN:
		return NewFENWriter(w)
	default:
		return NewBoardWriter(w, cfg.Output.Colour, cfg.Output.ShowLegalMoves)
	}
}

// BoardWriter writes reports as board diagrams.
type BoardWriter struct {
	w         io.Writer
	colour    bool
	showMoves bool
}

// NewBoardWriter creates a new diagram writer.
func NewBoardWriter(w io.Writer, colour, showMoves bool) *BoardWriter {
	return &BoardWriter{w: w, colour: colour, showMoves: showMoves}
}

// WriteReport writes the diagram and, if enabled, the legal moves.
func (bw *BoardWriter) WriteReport(r *Report) error {
	if err := WriteBoard(bw.w, r, bw.colour); err != nil {
		return err
	}
	if bw.showMoves && !r.State.IsTerminal() {
		return WriteMoveList(bw.w, r)
	}
	return nil
}

// Flush is a no-op; diagrams are written immediately.
func (bw *BoardWriter) Flush() error {
	return nil
}

// Close closes the board writer.
func (bw *BoardWriter) Close() error {
	return nil
}

// FENWriter writes one FEN record per report.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WriteReport writes the FEN record of r.
func (fw *FENWriter) WriteReport(r *Report) error {
	_, err := fmt.Fprintln(fw.w, r.FEN)
	return err
}

// Flush is a no-op.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Positions []*Report `json:"positions"`
}

// JSONWriter writes reports in JSON format. By default it buffers them
// and writes a single JSONOutput on Flush or Close.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
	single  bool
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report
// immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteReport writes or buffers r.
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		return jw.encode(r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Positions: jw.reports})
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
