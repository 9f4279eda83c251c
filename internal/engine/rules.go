// Package engine provides chess move generation, check detection and
// board manipulation.
package engine

import (
	"sync"

	"golang.org/x/exp/rand"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// Rules holds the generator settings that vary between games.
//
// A Rules value is safe for concurrent use: draws from Rand are serialised.
// Searches still Fork one per goroutine so workers do not contend on it.
type Rules struct {
	// KingOnlyEvasions restricts generation to king moves while the side to
	// move is in check. Blocks and captures by other pieces are then never
	// offered, so a position can be reported as mate when it is not.
	KingOnlyEvasions bool

	// Rand picks the handedness of promoted knights. Nil uses the
	// package-level source.
	Rand *rand.Rand

	mu sync.Mutex // guards Rand
}

// DefaultRules returns rules with king-only evasions and an unseeded source.
func DefaultRules() *Rules {
	return &Rules{KingOnlyEvasions: true}
}

// NewRules creates rules with a knight-handedness source seeded from seed.
func NewRules(kingOnlyEvasions bool, seed uint64) *Rules {
	return &Rules{
		KingOnlyEvasions: kingOnlyEvasions,
		Rand:             rand.New(rand.NewSource(seed)),
	}
}

// Fork returns a copy of r with an independent source derived from salt.
func (r *Rules) Fork(salt uint64) *Rules {
	f := &Rules{KingOnlyEvasions: r.KingOnlyEvasions}
	if r.Rand != nil {
		r.mu.Lock()
		seed := r.Rand.Uint64()
		r.mu.Unlock()
		f.Rand = rand.New(rand.NewSource(seed ^ salt))
	}
	return f
}

// knightHand picks a handedness for a promoted knight.
func (r *Rules) knightHand() chess.Handedness {
	var n int
	if r != nil && r.Rand != nil {
		r.mu.Lock()
		n = r.Rand.Intn(2)
		r.mu.Unlock()
	} else {
		n = rand.Intn(2)
	}
	if n == 0 {
		return chess.Left
	}
	return chess.Right
}
