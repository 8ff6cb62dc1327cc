package output

import (
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/artem-kuzishchin/chessrules/internal/engine"
)

// PerftResult is a finished perft run.
type PerftResult struct {
	Depth   int
	Nodes   uint64
	Divide  []engine.DivideEntry
	Elapsed time.Duration
}

// WritePerft writes the per-move counts, if any, then a summary line
// with thousands separators.
func WritePerft(w io.Writer, res *PerftResult) error {
	p := message.NewPrinter(language.English)
	for _, e := range res.Divide {
		if _, err := p.Fprintf(w, "%s: %d\n", e.Move, e.Nodes); err != nil {
			return err
		}
	}
	rate := 0
	if secs := res.Elapsed.Seconds(); secs > 0 {
		rate = int(float64(res.Nodes) / secs)
	}
	_, err := p.Fprintf(w, "perft(%d) nodes=%d rate=%dn/s (%.3fs elapsed)\n",
		res.Depth, res.Nodes, rate, res.Elapsed.Seconds())
	return err
}
