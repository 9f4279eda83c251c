package config

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// DefaultPieceValues are the material weights indexed by chess.Kind.
var DefaultPieceValues = [chess.NumKinds]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// DefaultPawnPenalty is the default weight of each pawn-structure fault.
const DefaultPawnPenalty = 50

// EvalConfig holds the static evaluation weights.
type EvalConfig struct {
	// PieceValues is the material value of each kind
	PieceValues [chess.NumKinds]int

	// Penalties per doubled, isolated and blocked pawn
	DoubledPenalty  int
	IsolatedPenalty int
	BlockedPenalty  int
}

// NewEvalConfig creates an EvalConfig with default values.
func NewEvalConfig() *EvalConfig {
	return &EvalConfig{
		PieceValues:     DefaultPieceValues,
		DoubledPenalty:  DefaultPawnPenalty,
		IsolatedPenalty: DefaultPawnPenalty,
		BlockedPenalty:  DefaultPawnPenalty,
	}
}

// Validate checks that no weight is negative.
func (e *EvalConfig) Validate() error {
	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		if e.PieceValues[kind] < 0 {
			return fmt.Errorf("negative value for %v: %w", kind, errors.ErrInvalidConfig)
		}
	}
	if e.DoubledPenalty < 0 || e.IsolatedPenalty < 0 || e.BlockedPenalty < 0 {
		return fmt.Errorf("negative pawn penalty: %w", errors.ErrInvalidConfig)
	}
	return nil
}
