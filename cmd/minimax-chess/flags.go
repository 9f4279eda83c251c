// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

var (
	// Starting position
	boardFile = flag.String("board", "", "Board file of piece codes to start from")
	fenString = flag.String("fen", "", "FEN position to start from")
	topColour = flag.String("top", "black", "Colour whose back rank is drawn on top: white or black")
	sideFlag  = flag.String("side", "", "Side to move at the start (default: from the position)")
	moveList  = flag.String("moves", "", "Comma-separated moves to play first (e.g. 'e2e4,e7e5')")

	// Search options
	depth       = flag.Int("depth", config.DefaultDepth, "Search depth in plies")
	workers     = flag.Int("workers", 1, "Number of goroutines sharing the root moves")
	seed        = flag.Uint64("seed", 1, "Seed for random tie-breaks and knight handedness")
	tieBreak    = flag.String("tiebreak", "first", "Tie-break among equal moves: first or random")
	nodeBudget  = flag.Int64("nodes", 0, "Node budget per search (0 = unlimited)")
	alphaBeta   = flag.Bool("alphabeta", false, "Prune with alpha-beta (first tie-break only)")
	fullEvasion = flag.Bool("full-evasions", false, "Allow blocks and captures when in check, not just king moves")

	// Evaluation weights
	doubledPenalty  = flag.Int("doubled", config.DefaultPawnPenalty, "Penalty per doubled pawn")
	isolatedPenalty = flag.Int("isolated", config.DefaultPawnPenalty, "Penalty per isolated pawn")
	blockedPenalty  = flag.Int("blocked", config.DefaultPawnPenalty, "Penalty per blocked pawn")

	// Modes
	selfPlay    = flag.Int("selfplay", 0, "Let the computer play N plies against itself")
	interactive = flag.Bool("play", false, "Play interactively on stdin")
	computer    = flag.String("computer", "black", "Side the computer plays in -play mode: white, black or none")

	// Saved games
	databaseDir = flag.String("db", "", "Directory of the saved-game database")
	saveName    = flag.String("save", "", "Save the game under this name when done")
	loadName    = flag.String("load", "", "Continue the game saved under this name")
	deleteName  = flag.String("delete", "", "Delete the saved game with this name and exit")
	listGames   = flag.Bool("list", false, "List saved games and exit")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noBoard      = flag.Bool("noboard", false, "Don't draw the board")
	noCoords     = flag.Bool("nocoords", false, "Don't label the board with files and ranks")
	lineLength   = flag.Int("w", 80, "Maximum line length")
	writeBoardTo = flag.String("writeboard", "", "Write the final position to this board file")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Log every search")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no search summaries)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyRulesFlags(cfg); err != nil {
		return err
	}
	if err := applySearchFlags(cfg); err != nil {
		return err
	}
	applyEvalFlags(cfg)
	applyOutputFlags(cfg)

	cfg.DatabaseDir = *databaseDir
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applyRulesFlags configures orientation and check evasions.
func applyRulesFlags(cfg *config.Config) error {
	top, ok := chess.ParseColour(*topColour)
	if !ok {
		return fmt.Errorf("-top %q: want white or black: %w", *topColour, errors.ErrInvalidConfig)
	}
	cfg.Rules.Top = top
	cfg.Rules.KingOnlyEvasions = !*fullEvasion
	return nil
}

// applySearchFlags configures move selection.
func applySearchFlags(cfg *config.Config) error {
	tb, err := config.ParseTieBreak(*tieBreak)
	if err != nil {
		return err
	}
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers
	cfg.Search.Seed = *seed
	cfg.Search.TieBreak = tb
	cfg.Search.NodeBudget = *nodeBudget
	cfg.Search.AlphaBeta = *alphaBeta
	return nil
}

// applyEvalFlags configures the pawn-structure penalties.
func applyEvalFlags(cfg *config.Config) {
	cfg.Eval.DoubledPenalty = *doubledPenalty
	cfg.Eval.IsolatedPenalty = *isolatedPenalty
	cfg.Eval.BlockedPenalty = *blockedPenalty
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.Coordinates = !*noCoords
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// parseSide converts the -side and -computer flags. An empty string gives
// ok=false, as does "none".
func parseSide(s string) (chess.Colour, bool, error) {
	switch s {
	case "", "none":
		return chess.Black, false, nil
	}
	c, ok := chess.ParseColour(s)
	if !ok {
		return chess.Black, false, fmt.Errorf("colour %q: want white or black: %w", s, errors.ErrInvalidConfig)
	}
	return c, true, nil
}
