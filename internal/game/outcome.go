package game

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Result is the standing of a game.
type Result int

const (
	InProgress Result = iota
	WhiteWins
	BlackWins
	Drawn
)

// String returns the conventional score notation.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Drawn:
		return "1/2-1/2"
	}
	return "*"
}

// Outcome is a result with the reason the game ended.
type Outcome struct {
	Result Result
	Reason string
}

// IsOver reports whether the game has ended.
func (o Outcome) IsOver() bool {
	return o.Result != InProgress
}

// Outcome reports whether the game is over and why. Besides mate and
// stalemate, threefold repetition and insufficient material draw.
func (g *Game) Outcome() Outcome {
	g.mu.RLock()
	defer g.mu.RUnlock()

	switch g.rules.Status(&g.board, g.board.ToMove) {
	case engine.Checkmate:
		if g.board.ToMove == chess.White {
			return Outcome{Result: BlackWins, Reason: "checkmate"}
		}
		return Outcome{Result: WhiteWins, Reason: "checkmate"}
	case engine.Stalemate:
		return Outcome{Result: Drawn, Reason: "stalemate"}
	}
	if g.reps.IsDraw() {
		return Outcome{Result: Drawn, Reason: "threefold repetition"}
	}
	if engine.HasInsufficientMaterial(&g.board) {
		return Outcome{Result: Drawn, Reason: "insufficient material"}
	}
	return Outcome{Result: InProgress}
}

// Repetitions returns how often the current position has occurred.
func (g *Game) Repetitions() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.reps.Count(&g.board)
}
