package testutil

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// NewBoard builds a board with the given colour on top from placements such
// as "Ke1" (white king on e1) or "nb8" (black knight on b8). Letters follow
// FEN case. Castling rights are derived from piece placement.
func NewBoard(t testing.TB, top chess.Colour, placements ...string) *chess.Board {
	t.Helper()
	board := chess.NewBoard(top)
	for _, p := range placements {
		board.Set(mustSquare(t, board, p), mustPiece(t, p))
	}
	board.DeriveCastlingRights()
	return board
}

// Square parses an algebraic square name relative to the board orientation.
func Square(t testing.TB, board *chess.Board, name string) chess.Square {
	t.Helper()
	sq, ok := board.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid square %q", name)
	}
	return sq
}

func mustSquare(t testing.TB, board *chess.Board, placement string) chess.Square {
	t.Helper()
	if len(placement) != 3 {
		t.Fatalf("invalid placement %q", placement)
	}
	return Square(t, board, placement[1:])
}

func mustPiece(t testing.TB, placement string) chess.Piece {
	t.Helper()
	letter := placement[0]
	colour := chess.White
	if letter >= 'a' && letter <= 'z' {
		colour = chess.Black
		letter -= 'a' - 'A'
	}
	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		if kind.Letter() == letter {
			return chess.NewPiece(colour, kind)
		}
	}
	t.Fatalf("invalid piece letter in %q", placement)
	return chess.Empty
}
