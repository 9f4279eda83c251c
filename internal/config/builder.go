package config

import (
	"io"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithWorkers sets the number of root-search workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithTieBreak sets the tie-break policy.
func (b *ConfigBuilder) WithTieBreak(policy TieBreak) *ConfigBuilder {
	b.cfg.Search.TieBreak = policy
	return b
}

// WithSeed sets the random seed.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithNodeBudget caps the nodes visited per search.
func (b *ConfigBuilder) WithNodeBudget(nodes int64) *ConfigBuilder {
	b.cfg.Search.NodeBudget = nodes
	return b
}

// WithAlphaBeta enables pruning.
func (b *ConfigBuilder) WithAlphaBeta(enabled bool) *ConfigBuilder {
	b.cfg.Search.AlphaBeta = enabled
	return b
}

// WithTop sets the colour on top.
func (b *ConfigBuilder) WithTop(top chess.Colour) *ConfigBuilder {
	b.cfg.Rules.Top = top
	return b
}

// WithKingOnlyEvasions controls whether only king moves answer a check.
func (b *ConfigBuilder) WithKingOnlyEvasions(enabled bool) *ConfigBuilder {
	b.cfg.Rules.KingOnlyEvasions = enabled
	return b
}

// WithPenalties sets the doubled, isolated and blocked pawn penalties.
func (b *ConfigBuilder) WithPenalties(doubled, isolated, blocked int) *ConfigBuilder {
	b.cfg.Eval.DoubledPenalty = doubled
	b.cfg.Eval.IsolatedPenalty = isolated
	b.cfg.Eval.BlockedPenalty = blocked
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithDatabase sets the saved-game directory.
func (b *ConfigBuilder) WithDatabase(dir string) *ConfigBuilder {
	b.cfg.DatabaseDir = dir
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostic writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
