package engine

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":  InitialFEN,
	"Midgame":  "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":  "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"Castling": "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen, chess.Black)
			}
		})
	}
}

func BenchmarkAppendMoves(b *testing.B) {
	r := DefaultRules()
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustFEN(b, fen, chess.Black)
			buf := make([]chess.Move, 0, 128)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf = r.AppendMoves(buf[:0], board, board.ToMove)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	r := DefaultRules()
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustFEN(b, fen, chess.Black)
			buf := make([]chess.Move, 0, 128)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf = r.AppendLegalMoves(buf[:0], board, board.ToMove)
			}
		})
	}
}

func BenchmarkMakeUnmake(b *testing.B) {
	board := mustFEN(b, benchFENs["Complex"], chess.Black)
	moves := DefaultRules().LegalMoves(board, board.ToMove)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := moves[i%len(moves)]
		undo, err := MakeMove(board, m)
		if err != nil {
			b.Fatal(err)
		}
		UnmakeMove(board, m, undo)
	}
}

func BenchmarkIsSquareThreatened(b *testing.B) {
	board := mustFEN(b, benchFENs["Complex"], chess.Black)
	sq := chess.Sq(4, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsSquareThreatened(*board, sq, chess.Black)
	}
}
