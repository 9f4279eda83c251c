package testutil

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

func TestNewBoard(t *testing.T) {
	tests := []struct {
		name string
		top  chess.Colour
		sq   string
		want chess.Square
	}{
		{"white at bottom", chess.Black, "e1", chess.Sq(4, 7)},
		{"white on top", chess.White, "e1", chess.Sq(3, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := NewBoard(t, tt.top, "K"+tt.sq, "qa8")

			AssertEqual(t, Square(t, board, tt.sq), tt.want)
			AssertEqual(t, board.At(tt.want), chess.W(chess.King))
			AssertEqual(t, board.At(Square(t, board, "a8")), chess.B(chess.Queen))
			AssertEqual(t, board.Count(chess.White, chess.King), 1)
		})
	}
}

func TestNewBoard_DerivesRights(t *testing.T) {
	board := NewBoard(t, chess.Black, "Ke1", "Rh1", "ke8")

	want := chess.CastlingRights{
		chess.White: {QueensideRookMoved: true},
		chess.Black: {KingsideRookMoved: true, QueensideRookMoved: true},
	}
	AssertEqual(t, board.Rights, want)
}
