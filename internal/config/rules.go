package config

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// RulesConfig holds move-generation settings.
type RulesConfig struct {
	// KingOnlyEvasions offers only king moves while in check
	KingOnlyEvasions bool

	// Top is the colour whose back rank is rank 0
	Top chess.Colour
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		KingOnlyEvasions: true,
		Top:              chess.Black,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if r.Top != chess.White && r.Top != chess.Black {
		return fmt.Errorf("invalid top colour %d: %w", r.Top, errors.ErrInvalidConfig)
	}
	return nil
}
