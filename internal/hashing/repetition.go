package hashing

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// DrawRepetitions is the number of occurrences of one position that ends a
// game as drawn.
const DrawRepetitions = 3

// Signature identifies a position.
type Signature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash guards against Zobrist collisions
	WeakHash uint32
}

// SignatureOf computes the signature of board.
func SignatureOf(board *chess.Board) Signature {
	return Signature{Hash: Zobrist(board), WeakHash: WeakHash(board)}
}

// RepetitionTracker counts how often each position has occurred in a game.
// It is not safe for concurrent use; the owning game serialises access.
type RepetitionTracker struct {
	counts map[Signature]int
	max    int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{counts: make(map[Signature]int)}
}

// Record adds an occurrence of board and returns its new count.
func (t *RepetitionTracker) Record(board *chess.Board) int {
	sig := SignatureOf(board)
	t.counts[sig]++
	n := t.counts[sig]
	if n > t.max {
		t.max = n
	}
	return n
}

// Forget removes one occurrence of board, as when a move is taken back.
func (t *RepetitionTracker) Forget(board *chess.Board) {
	sig := SignatureOf(board)
	switch t.counts[sig] {
	case 0:
		return
	case 1:
		delete(t.counts, sig)
	default:
		t.counts[sig]--
	}
	t.recomputeMax()
}

// Count returns how often board has occurred.
func (t *RepetitionTracker) Count(board *chess.Board) int {
	return t.counts[SignatureOf(board)]
}

// IsDraw reports whether some position has occurred DrawRepetitions times.
func (t *RepetitionTracker) IsDraw() bool {
	return t.max >= DrawRepetitions
}

func (t *RepetitionTracker) recomputeMax() {
	t.max = 0
	for _, n := range t.counts {
		t.max = max(t.max, n)
	}
}
