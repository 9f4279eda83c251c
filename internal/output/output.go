// Package output renders boards, games and search results as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/search"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteBoard draws board as a grid of FEN letters, rank 0 at the top.
// With coords the ranks and files are labelled as seen from the board's
// orientation.
func WriteBoard(w io.Writer, board *chess.Board, coords bool) {
	for y := 0; y < chess.BoardSize; y++ {
		if coords {
			fmt.Fprintf(w, "%c ", board.SquareName(chess.Sq(0, y))[1])
		}
		for x := 0; x < chess.BoardSize; x++ {
			if x > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%c", board.At(chess.Sq(x, y)).Letter())
		}
		fmt.Fprintln(w)
	}
	if coords {
		fmt.Fprint(w, " ")
		for x := 0; x < chess.BoardSize; x++ {
			fmt.Fprintf(w, " %c", board.SquareName(chess.Sq(x, 0))[0])
		}
		fmt.Fprintln(w)
	}
}

// WriteMoveList writes numbered moves starting from start's side to move,
// followed by result, wrapping at maxLineLength.
func WriteMoveList(w io.Writer, start *chess.Board, moves []string, result string, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)

	moveNum := 1
	isWhite := start.ToMove == chess.White
	for i, m := range moves {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(m)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	if result != "" {
		ow.Write(result)
	}
	ow.NewLine()
}

// OutputGame writes g in text form: the board (if enabled), the moves and
// the standing of the game.
func OutputGame(w io.Writer, g *game.Game, cfg *config.OutputConfig) {
	board := g.Board()
	if cfg.ShowBoard {
		WriteBoard(w, board, cfg.Coordinates)
		fmt.Fprintln(w)
	}

	outcome := g.Outcome()
	WriteMoveList(w, g.Start(), g.Notations(), outcome.Result.String(), int(cfg.MaxLineLength))

	if outcome.IsOver() {
		fmt.Fprintf(w, "Game over: %s (%s)\n", outcome.Result, outcome.Reason)
		return
	}
	fmt.Fprintf(w, "%s to move", board.ToMove)
	if g.Status() == engine.Check {
		fmt.Fprint(w, ", in check")
	}
	fmt.Fprintln(w)
}

// OutputSearch writes a one-line summary of a search result.
func OutputSearch(w io.Writer, board *chess.Board, res search.Result) {
	fmt.Fprintf(w, "%s plays %s (score %s, %d nodes",
		res.Move.Piece.Colour(), board.Notation(res.Move), FormatScore(res.Score), res.Nodes)
	if res.Ties > 1 {
		fmt.Fprintf(w, ", %d-way tie", res.Ties)
	}
	fmt.Fprintln(w, ")")
}

// FormatScore renders a score, writing mates as "#N" or "#-N" in plies.
func FormatScore(score int) string {
	switch {
	case score > search.MateScore-1000:
		return fmt.Sprintf("#%d", search.MateScore-score)
	case score < -search.MateScore+1000:
		return fmt.Sprintf("#-%d", search.MateScore+score)
	}
	return fmt.Sprintf("%d", score)
}
