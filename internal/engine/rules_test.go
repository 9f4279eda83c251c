package engine

import (
	"sync"
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

func TestRulesSharedAcrossGoroutines(t *testing.T) {
	const fen = "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"
	rules := NewRules(true, 7)

	var wg sync.WaitGroup
	counts := make([]int, 4)
	for i := range counts {
		board := mustFEN(t, fen, chess.Black)
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				counts[i] = len(rules.LegalMoves(board, chess.White))
			}
		}(i)
	}
	wg.Wait()

	// Four promotions plus five king moves.
	for i, n := range counts {
		if n != 9 {
			t.Errorf("goroutine %d: LegalMoves() = %d moves, want 9", i, n)
		}
	}
}

func TestRulesForkSameSeed(t *testing.T) {
	a := NewRules(false, 3).Fork(1)
	b := NewRules(false, 3).Fork(1)

	if a.KingOnlyEvasions {
		t.Error("Fork() changed KingOnlyEvasions")
	}
	for i := 0; i < 16; i++ {
		if ha, hb := a.knightHand(), b.knightHand(); ha != hb {
			t.Fatalf("draw %d: knightHand() = %v and %v from equal seeds", i, ha, hb)
		}
	}
}
