package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// TieBreak selects among root moves with equal backed-up values.
type TieBreak int

const (
	// TieBreakFirst takes the first tied move in generation order. The
	// generator scans board files from index 0, which is the a-file with
	// Black on top and the h-file with White on top, so the same position
	// can pick mirrored moves in the two orientations.
	TieBreakFirst TieBreak = iota
	// TieBreakRandom takes a seeded random choice among the tied moves.
	TieBreakRandom
)

// String returns the flag spelling of a tie-break policy.
func (t TieBreak) String() string {
	if t == TieBreakRandom {
		return "random"
	}
	return "first"
}

// ParseTieBreak converts "first" or "random" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(s) {
	case "first", "":
		return TieBreakFirst, nil
	case "random":
		return TieBreakRandom, nil
	}
	return TieBreakFirst, fmt.Errorf("unknown tie-break policy %q: %w", s, errors.ErrInvalidConfig)
}

// DefaultDepth is the default search depth in plies.
const DefaultDepth = 3

// SearchConfig holds settings for move selection.
type SearchConfig struct {
	// Depth is the fixed search depth in plies
	Depth int

	// NodeBudget caps the number of positions visited (0 = unlimited).
	// Past the budget every node is scored statically.
	NodeBudget int64

	// Workers splits the root moves over this many goroutines
	Workers int

	// TieBreak picks among equally valued root moves
	TieBreak TieBreak

	// Seed feeds the random tie-break and knight promotion handedness
	Seed uint64

	// AlphaBeta prunes the tree. Only honoured with TieBreakFirst, since
	// pruning hides which other moves tie with the best.
	AlphaBeta bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:    DefaultDepth,
		Workers:  1,
		TieBreak: TieBreakFirst,
		Seed:     1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 {
		return fmt.Errorf("search depth %d < 1: %w", s.Depth, errors.ErrInvalidConfig)
	}
	if s.NodeBudget < 0 {
		return fmt.Errorf("node budget %d < 0: %w", s.NodeBudget, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.TieBreak != TieBreakFirst && s.TieBreak != TieBreakRandom {
		return fmt.Errorf("unknown tie-break policy %d: %w", s.TieBreak, errors.ErrInvalidConfig)
	}
	return nil
}

// UseAlphaBeta reports whether pruning applies under the current policy.
func (s *SearchConfig) UseAlphaBeta() bool {
	return s.AlphaBeta && s.TieBreak == TieBreakFirst
}
