package search

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
)

// PawnTally counts the structural weaknesses of one side's pawns.
type PawnTally struct {
	Doubled  int
	Isolated int
	Blocked  int
}

// Penalty weighs the tally with the configured penalties.
func (t PawnTally) Penalty(weights *config.EvalConfig) int {
	return t.Doubled*weights.DoubledPenalty +
		t.Isolated*weights.IsolatedPenalty +
		t.Blocked*weights.BlockedPenalty
}

// TallyPawns scans colour's pawns.
//
// A pawn is doubled when a friendly pawn stands directly in front of it,
// so a stack of three counts two. It is isolated when no other friendly
// pawn stands on its own or an adjacent file. It is blocked when the
// square in front holds a piece other than a pawn or an enemy pawn.
func TallyPawns(board *chess.Board, colour chess.Colour) PawnTally {
	var (
		tally   PawnTally
		perFile [chess.BoardSize]int
	)
	forward := board.Forward(colour)

	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			if board.Squares[x][y].Is(colour, chess.Pawn) {
				perFile[x]++
			}
		}
	}

	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			if !board.Squares[x][y].Is(colour, chess.Pawn) {
				continue
			}

			neighbours := perFile[x] - 1
			if x > 0 {
				neighbours += perFile[x-1]
			}
			if x < chess.BoardSize-1 {
				neighbours += perFile[x+1]
			}
			if neighbours == 0 {
				tally.Isolated++
			}

			ahead := chess.Sq(x, y+forward)
			if !ahead.InBounds() {
				continue
			}
			front := board.At(ahead)
			switch {
			case front.Is(colour, chess.Pawn):
				tally.Doubled++
			case !front.IsEmpty():
				tally.Blocked++
			}
		}
	}
	return tally
}

// Material sums the configured values of colour's pieces.
func Material(board *chess.Board, colour chess.Colour, weights *config.EvalConfig) int {
	total := 0
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			p := board.Squares[x][y]
			if !p.IsEmpty() && p.IsColour(colour) {
				total += weights.PieceValues[p.Kind()]
			}
		}
	}
	return total
}

// Evaluate scores the position from colour's point of view: material
// balance minus colour's pawn penalties plus the opponent's.
func Evaluate(board *chess.Board, colour chess.Colour, weights *config.EvalConfig) int {
	opp := colour.Opposite()
	score := Material(board, colour, weights) - Material(board, opp, weights)
	score -= TallyPawns(board, colour).Penalty(weights)
	score += TallyPawns(board, opp).Penalty(weights)
	return score
}
