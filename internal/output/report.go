package output

import (
	"strings"

	"github.com/artem-kuzishchin/chessrules/internal/chess"
	"github.com/artem-kuzishchin/chessrules/internal/engine"
	"github.com/artem-kuzishchin/chessrules/internal/fen"
	"github.com/artem-kuzishchin/chessrules/internal/game"
)

// Report is everything a presentation layer needs about one position.
type Report struct {
	Position chess.Position `json:"-"`

	FEN        string              `json:"fen"`
	ToMove     string              `json:"toMove"`
	State      engine.GameState    `json:"state"`
	InCheck    bool                `json:"inCheck"`
	LegalMoves map[string][]string `json:"legalMoves"` // origin square -> destinations
	MoveList   []string            `json:"moveList"`   // coordinate notation, promotions expanded
	Played     []string            `json:"played,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// NewReport builds a report for pos. played may be nil.
func NewReport(pos *chess.Position, legal engine.LegalMoveMap, state engine.GameState, played []engine.Move) *Report {
	r := &Report{
		Position:   *pos,
		FEN:        fen.Encode(pos),
		ToMove:     strings.ToLower(pos.ToMove.String()),
		State:      state,
		LegalMoves: make(map[string][]string, len(legal)),
		MoveList:   []string{},
	}

	inCheck, err := engine.InCheck(pos)
	r.InCheck = inCheck
	if err != nil {
		r.Error = err.Error()
	}

	for _, id := range legal.IDs() {
		grid := legal[id]
		if !grid.Any() {
			continue
		}
		p, _ := pos.Board.Find(id)
		dests := make([]string, 0, grid.Count())
		for _, to := range grid.Squares() {
			dests = append(dests, to.String())
		}
		r.LegalMoves[p.At.String()] = dests
	}

	if err == nil {
		moves, err := engine.GenerateMoves(pos)
		if err == nil {
			for _, m := range moves {
				r.MoveList = append(r.MoveList, m.String())
			}
		}
	}

	for _, m := range played {
		r.Played = append(r.Played, m.String())
	}
	return r
}

// GameReport builds a report for the current position of g.
func GameReport(g *game.Game) *Report {
	pos := g.Position()
	r := NewReport(&pos, g.LegalMoves(), g.State(), g.Moves())
	if err := g.Err(); err != nil {
		r.Error = err.Error()
	}
	return r
}
