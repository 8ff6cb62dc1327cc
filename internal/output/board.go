package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/artem-kuzishchin/chessrules/internal/chess"
	"github.com/artem-kuzishchin/chessrules/internal/engine"
)

// palette holds the colours of the board diagram.
type palette struct {
	white   *color.Color
	black   *color.Color
	checked *color.Color
	empty   *color.Color
	label   *color.Color
	state   *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		white:   color.New(color.FgHiWhite, color.Bold),
		black:   color.New(color.FgHiBlue, color.Bold),
		checked: color.New(color.BgRed, color.FgHiWhite, color.Bold),
		empty:   color.New(color.FgHiBlack),
		label:   color.New(color.FgYellow),
		state:   color.New(color.FgHiRed, color.Bold),
	}
	for _, c := range []*color.Color{p.white, p.black, p.checked, p.empty, p.label, p.state} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// WriteBoard draws the position of r as an 8x8 diagram with rank 8 on
// top, followed by the side to move and the game state. When colour is
// set, pieces are coloured by side and a checked king is highlighted.
func WriteBoard(w io.Writer, r *Report, colour bool) error {
	p := newPalette(colour)
	checkedKing, hasChecked := checkedKingSquare(r)

	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteString(p.label.Sprintf("%d", rank+1))
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			sb.WriteByte(' ')
			piece, ok := r.Position.Board.At(sq)
			switch {
			case !ok:
				sb.WriteString(p.empty.Sprint("."))
			case hasChecked && sq == checkedKing:
				sb.WriteString(p.checked.Sprint(string(piece.Letter())))
			case piece.Colour == chess.White:
				sb.WriteString(p.white.Sprint(string(piece.Letter())))
			default:
				sb.WriteString(p.black.Sprint(string(piece.Letter())))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteString(" " + p.label.Sprint(string(rune('a'+file))))
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "%s\n", r.FEN)
	status := r.State.String()
	if r.State.IsTerminal() {
		status = p.state.Sprint(status)
	}
	check := ""
	if r.InCheck && r.State == engine.Ongoing {
		check = ", in check"
	}
	fmt.Fprintf(&sb, "%s to move: %s%s\n", r.ToMove, status, check)
	if r.Error != "" {
		fmt.Fprintf(&sb, "error: %s\n", r.Error)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteMoveList writes the flattened legal moves of r on one line.
func WriteMoveList(w io.Writer, r *Report) error {
	_, err := fmt.Fprintf(w, "legal moves (%d): %s\n", len(r.MoveList), strings.Join(r.MoveList, " "))
	return err
}

func checkedKingSquare(r *Report) (chess.Coord, bool) {
	if !r.InCheck {
		return chess.Coord{}, false
	}
	kings := r.Position.Board.Kings(r.Position.ToMove)
	if len(kings) != 1 {
		return chess.Coord{}, false
	}
	return kings[0], true
}
