package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
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

// session is one game being played from the command line.
type session struct {
	cfg      *config.Config
	game     *game.Game
	searcher *search.Searcher
	store    *storage.Store
}

// computerMove lets the searcher move for the side to move. It reports
// false when the game is already over.
func (s *session) computerMove(ctx context.Context) (bool, error) {
	before := s.game.Board()
	res, err := s.game.ComputerMove(ctx, s.searcher)
	if errors.IsGameOver(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if s.cfg.Output.JSONFormat {
		return true, output.WriteJSON(s.cfg.OutputFile, output.SearchToJSON(before, res))
	}
	if s.cfg.Verbosity > 0 {
		output.OutputSearch(s.cfg.OutputFile, before, res)
	}
	return true, nil
}

// selfPlay plays up to plies computer moves, stopping when the game ends.
func (s *session) selfPlay(ctx context.Context, plies int) error {
	for i := 0; i < plies; i++ {
		if s.game.Outcome().IsOver() {
			break
		}
		moved, err := s.computerMove(ctx)
		if err != nil {
			return err
		}
		if !moved {
			break
		}
	}
	return nil
}

// interactive reads commands from in until quit, end of input or the end
// of the game. The computer answers for the side named by -computer.
func (s *session) interactive(ctx context.Context, in io.Reader) error {
	comp, hasComp, err := parseSide(*computer)
	if err != nil {
		return err
	}
	out := s.cfg.OutputFile
	scanner := bufio.NewScanner(in)

	for {
		if outcome := s.game.Outcome(); outcome.IsOver() {
			fmt.Fprintf(out, "Game over: %s (%s)\n", outcome.Result, outcome.Reason)
			return nil
		}
		if hasComp && s.game.ToMove() == comp {
			if _, err := s.computerMove(ctx); err != nil {
				return err
			}
			continue
		}

		fmt.Fprintf(out, "%s> ", s.game.ToMove())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		quit, err := s.command(ctx, scanner.Text(), comp, hasComp)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// command carries out one line of -play input.
func (s *session) command(ctx context.Context, line string, comp chess.Colour, hasComp bool) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	out := s.cfg.OutputFile
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "quit", "exit":
		return true, nil

	case "go":
		_, err := s.computerMove(ctx)
		return false, err

	case "undo":
		if _, err := s.game.Undo(); err != nil {
			return false, err
		}
		// Take back the computer's reply too so the player moves again.
		if hasComp && s.game.ToMove() == comp && len(s.game.History()) > 0 {
			if _, err := s.game.Undo(); err != nil {
				return false, err
			}
		}
		return false, nil

	case "castle", "o-o", "o-o-o":
		side := chess.Kingside
		if cmd == "o-o-o" || (len(fields) > 1 && strings.HasPrefix(strings.ToLower(fields[1]), "q")) {
			side = chess.Queenside
		}
		_, err := s.game.Castle(side)
		return false, err

	case "moves":
		return false, s.listMoves(fields[1:])

	case "board":
		if s.cfg.Output.JSONFormat {
			return false, output.OutputGameJSON(out, s.game)
		}
		output.WriteBoard(out, s.game.Board(), s.cfg.Output.Coordinates)
		return false, nil

	case "fen":
		fmt.Fprintln(out, engine.BoardToFEN(s.game.Board()))
		return false, nil

	case "save":
		if len(fields) < 2 {
			return false, fmt.Errorf("save needs a name: %w", errors.ErrInvalidConfig)
		}
		if s.store == nil {
			return false, fmt.Errorf("saved games need -db: %w", errors.ErrInvalidConfig)
		}
		if err := s.store.Save(fields[1], s.game); err != nil {
			return false, err
		}
		fmt.Fprintf(out, "Saved %q\n", fields[1])
		return false, nil

	case "help":
		fmt.Fprintln(out, "Commands: <move>, castle kingside|queenside, moves [square], go, undo, board, fen, save <name>, quit")
		return false, nil
	}

	_, err := s.game.ApplyNotation(fields[0])
	return false, err
}

// listMoves prints the legal moves of the side to move, or the legal
// destinations of the piece on the named square.
func (s *session) listMoves(args []string) error {
	board := s.game.Board()
	var names []string

	if len(args) > 0 {
		sq, ok := board.ParseSquare(args[0])
		if !ok {
			return fmt.Errorf("bad square %q: %w", args[0], errors.ErrIllegalMove)
		}
		for _, to := range s.game.LegalDestinations(sq) {
			names = append(names, board.SquareName(to))
		}
	} else {
		for _, m := range s.game.LegalMoves() {
			names = append(names, board.Notation(m))
		}
	}

	sort.Strings(names)
	fmt.Fprintln(s.cfg.OutputFile, strings.Join(names, " "))
	return nil
}

// finish writes the game and stores it as the flags ask.
func (s *session) finish() error {
	w := output.NewGameWriter(s.cfg.OutputFile, s.cfg.Output)
	if err := w.WriteGame(s.game); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	if *saveName != "" {
		if err := s.store.Save(*saveName, s.game); err != nil {
			return err
		}
		logf(s.cfg, 1, "Saved game %q\n", *saveName)
	}
	if *writeBoardTo != "" {
		if err := boardfile.Save(*writeBoardTo, s.game.Board()); err != nil {
			return err
		}
		logf(s.cfg, 1, "Wrote board to %s\n", *writeBoardTo)
	}
	return nil
}
