package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

var tops = []chess.Colour{chess.Black, chess.White}

func mustFEN(t testing.TB, fen string, top chess.Colour) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen, top)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// notations returns the sorted long algebraic form of moves.
func notations(board *chess.Board, moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, board.Notation(m))
	}
	sort.Strings(out)
	return out
}

// destinations returns the sorted destination names of moves.
func destinations(board *chess.Board, moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, board.SquareName(m.To))
	}
	sort.Strings(out)
	return out
}

func perft(r *Rules, board *chess.Board, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := r.LegalMoves(board, board.ToMove)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		undo, err := MakeMove(board, m)
		if err != nil {
			continue
		}
		nodes += perft(r, board, depth-1)
		UnmakeMove(board, m, undo)
	}
	return nodes
}
