// minimax-chess plays chess with a fixed-depth minimax search.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/boardfile"
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/output"
	"github.com/lgbarn/minimax-chess-go/internal/search"
	"github.com/lgbarn/minimax-chess-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("minimax-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg, os.Stdin)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// run carries out the mode selected by the flags. in feeds -play.
func run(ctx context.Context, cfg *config.Config, in io.Reader) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	switch {
	case *listGames:
		return listSaved(cfg, store)
	case *deleteName != "":
		if err := store.Delete(*deleteName); err != nil {
			return err
		}
		logf(cfg, 1, "Deleted game %q\n", *deleteName)
		return nil
	}

	rules := engine.NewRules(cfg.Rules.KingOnlyEvasions, cfg.Search.Seed+1)
	g, err := setupGame(cfg, store, rules)
	if err != nil {
		return err
	}
	if err := playMoves(g, *moveList); err != nil {
		return err
	}
	// A loaded game keeps the evasion rules it was played with.
	cfg.Rules.KingOnlyEvasions = g.Rules().KingOnlyEvasions

	sess := &session{
		cfg:      cfg,
		game:     g,
		searcher: search.NewSearcher(cfg),
		store:    store,
	}

	switch {
	case *interactive:
		err = sess.interactive(ctx, in)
	case *selfPlay > 0:
		err = sess.selfPlay(ctx, *selfPlay)
	default:
		_, err = sess.computerMove(ctx)
	}
	if err != nil {
		return err
	}
	return sess.finish()
}

// openStore opens the database when -db is set. The modes that need it
// fail without it.
func openStore(cfg *config.Config) (*storage.Store, error) {
	if cfg.DatabaseDir == "" {
		if *listGames || *deleteName != "" || *saveName != "" || *loadName != "" {
			return nil, fmt.Errorf("saved games need -db: %w", errors.ErrInvalidConfig)
		}
		return nil, nil
	}
	return storage.Open(cfg.DatabaseDir)
}

// listSaved prints the names of the saved games.
func listSaved(cfg *config.Config, store *storage.Store) error {
	names, err := store.List()
	if err != nil {
		return err
	}
	if cfg.Output.JSONFormat {
		if names == nil {
			names = []string{}
		}
		return output.WriteJSON(cfg.OutputFile, names)
	}
	for _, name := range names {
		fmt.Fprintln(cfg.OutputFile, name)
	}
	return nil
}

// setupGame builds the game to play: a saved one, one from a board file
// or FEN, or the initial position.
func setupGame(cfg *config.Config, store *storage.Store, rules *engine.Rules) (*game.Game, error) {
	if *loadName != "" {
		g, err := store.Load(*loadName, rules)
		if err != nil {
			return nil, err
		}
		logf(cfg, 1, "Loaded game %q (%d moves)\n", *loadName, len(g.History()))
		return g, nil
	}

	board, err := startBoard(cfg)
	if err != nil {
		return nil, err
	}
	side, ok, err := parseSide(*sideFlag)
	if err != nil {
		return nil, err
	}
	if ok {
		board.ToMove = side
	}
	return game.FromBoard(board, rules), nil
}

func startBoard(cfg *config.Config) (*chess.Board, error) {
	switch {
	case *boardFile != "" && *fenString != "":
		return nil, fmt.Errorf("-board and -fen are exclusive: %w", errors.ErrInvalidConfig)
	case *boardFile != "":
		return boardfile.Load(*boardFile, cfg.Rules.Top)
	case *fenString != "":
		return engine.NewBoardFromFEN(*fenString, cfg.Rules.Top)
	}
	return chess.NewInitialBoard(cfg.Rules.Top), nil
}

// playMoves applies a comma-separated list of moves.
func playMoves(g *game.Game, list string) error {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	for _, text := range strings.Split(list, ",") {
		if _, err := g.ApplyNotation(text); err != nil {
			return err
		}
	}
	return nil
}

// logf writes to the log when the verbosity reaches level.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity >= level {
		fmt.Fprintf(cfg.LogFile, format, args...)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: minimax-chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess with a fixed-depth minimax search.\n\n")
	fmt.Fprintf(os.Stderr, "With no mode flag the computer makes one move for the side to move.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands in -play mode:\n")
	fmt.Fprintf(os.Stderr, "  e2e4 / e7e8q         Play a move in long algebraic form\n")
	fmt.Fprintf(os.Stderr, "  castle kingside|queenside\n")
	fmt.Fprintf(os.Stderr, "  moves [square]       List legal moves\n")
	fmt.Fprintf(os.Stderr, "  go                   Let the computer move\n")
	fmt.Fprintf(os.Stderr, "  undo                 Take back a move\n")
	fmt.Fprintf(os.Stderr, "  board, fen           Show the position\n")
	fmt.Fprintf(os.Stderr, "  save <name>          Save the game (needs -db)\n")
	fmt.Fprintf(os.Stderr, "  quit\n")
}
