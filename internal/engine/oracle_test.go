package engine

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// oracleFENs are positions without an en passant target where the side to
// move is not in check, so both generators follow the same rules.
var oracleFENs = map[string]string{
	"Initial":         InitialFEN,
	"Midgame":         "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":         "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":         "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"ComplexBlack":    "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
	"Castling":        "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
	"AttackedTransit": "r3k2r/8/8/8/8/8/6b1/R3K2R w KQkq - 0 1",
	"Promotion":       "r3k3/1P6/8/8/8/8/6p1/4K2R w K - 0 1",
	"PromotionBlack":  "r3k3/1P6/8/8/8/8/6p1/4K2R b K - 0 1",
	"Pinned":          "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
}

// TestLegalMoves_MatchOracle compares our legal move list with an
// independent bitboard generator.
func TestLegalMoves_MatchOracle(t *testing.T) {
	r := DefaultRules()
	for name, fen := range oracleFENs {
		for _, top := range tops {
			t.Run(name+"/"+top.String()+" on top", func(t *testing.T) {
				t.Parallel()
				board := mustFEN(t, fen, top)
				if IsInCheck(board, board.ToMove) {
					t.Fatalf("oracle position %s is in check", name)
				}

				got := notations(board, r.LegalMoves(board, board.ToMove))

				oracle := dragontoothmg.ParseFen(fen)
				var want []string
				for _, m := range oracle.GenerateLegalMoves() {
					want = append(want, m.String())
				}
				sort.Strings(want)

				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("legal moves mismatch (-oracle +ours):\n%s", diff)
				}
			})
		}
	}
}

// TestPerft checks node counts from the starting position. No en passant
// or castling is reachable within four plies.
func TestPerft(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	r := &Rules{KingOnlyEvasions: false}
	for _, tt := range tests {
		if tt.depth > 3 && testing.Short() {
			continue
		}
		for _, top := range tops {
			board := chess.NewInitialBoard(top)
			if got := perft(r, board, tt.depth); got != tt.want {
				t.Errorf("%s on top: perft(%d) = %d, want %d", top, tt.depth, got, tt.want)
			}
		}
	}
}
