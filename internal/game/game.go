// Package game holds the authoritative state of one game of chess and the
// query and command surface that front ends use to play it.
//
// A Game is safe for concurrent use. Queries take a read lock; commands
// take the write lock for the whole make-and-verify window, so no reader
// ever sees a half-applied move. Computer moves are searched on a snapshot
// without holding the lock.
package game

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/hashing"
	"github.com/lgbarn/minimax-chess-go/internal/search"
)

// record is one committed move with what is needed to take it back.
type record struct {
	move chess.Move
	undo engine.Undo
}

// Game is a game in progress.
type Game struct {
	mu      sync.RWMutex
	start   chess.Board
	board   chess.Board
	rules   *engine.Rules
	history []record
	reps    *hashing.RepetitionTracker
	version uint64 // bumped on every change to board
}

// New starts a game from the initial position with top on top.
func New(top chess.Colour, rules *engine.Rules) *Game {
	return FromBoard(chess.NewInitialBoard(top), rules)
}

// FromBoard starts a game from a copy of board. Nil rules use
// engine.DefaultRules.
func FromBoard(board *chess.Board, rules *engine.Rules) *Game {
	if rules == nil {
		rules = engine.DefaultRules()
	}
	g := &Game{
		start: *board,
		board: *board,
		rules: rules,
		reps:  hashing.NewRepetitionTracker(),
	}
	g.reps.Record(&g.board)
	return g
}

// PieceAt returns the piece on sq.
func (g *Game) PieceAt(sq chess.Square) chess.Piece {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.At(sq)
}

// LegalDestinations returns the squares the piece on sq can move to.
func (g *Game) LegalDestinations(sq chess.Square) []chess.Square {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rules.LegalDestinations(&g.board, sq)
}

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rules.LegalMoves(&g.board, g.board.ToMove)
}

// IsSquareThreatened reports whether a king standing on sq would be
// attacked by colour.
func (g *Game) IsSquareThreatened(sq chess.Square, by chess.Colour) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.IsSquareThreatened(g.board, sq, by)
}

// CastlingPossible reports whether colour may castle on side now.
func (g *Game) CastlingPossible(colour chess.Colour, side chess.CastleSide) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.CastlingPossible(&g.board, colour, side)
}

// Rules returns the rules the game is played under.
func (g *Game) Rules() *engine.Rules {
	return g.rules
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.ToMove
}

// Orientation returns the colour on top.
func (g *Game) Orientation() chess.Colour {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Top
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Copy()
}

// Start returns a copy of the position the game started from.
func (g *Game) Start() *chess.Board {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.start.Copy()
}

// Status classifies the position of the side to move.
func (g *Game) Status() engine.Status {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rules.Status(&g.board, g.board.ToMove)
}

// Apply commits move for the side to move.
//
// Only moves the generator would produce for that piece are accepted.
// Castling is validated by the applier, so a refused castle reports
// ErrCastlingUnavailable with the reason.
func (g *Game) Apply(move chess.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apply(move)
}

// ApplyCoords commits the move of the piece on from to to. Promotion is
// ignored unless the move promotes; a king stepping two files castles.
func (g *Game) ApplyCoords(from, to chess.Square, promotion chess.Kind) (chess.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	move, err := g.resolve(from, to, promotion)
	if err != nil {
		return chess.Move{}, err
	}
	if err := g.apply(move); err != nil {
		return chess.Move{}, err
	}
	return move, nil
}

// ApplyNotation commits a move written in long algebraic form such as
// "e2e4" or "e7e8q". "O-O" and "O-O-O" castle.
func (g *Game) ApplyNotation(text string) (chess.Move, error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "O-O", "0-0":
		return g.Castle(chess.Kingside)
	case "O-O-O", "0-0-0":
		return g.Castle(chess.Queenside)
	}

	g.mu.RLock()
	from, to, promotion, err := ParseNotation(&g.board, text)
	g.mu.RUnlock()
	if err != nil {
		return chess.Move{}, err
	}
	return g.ApplyCoords(from, to, promotion)
}

// Castle commits a castling move for the side to move.
func (g *Game) Castle(side chess.CastleSide) (chess.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	move := engine.CastleMove(&g.board, g.board.ToMove, side)
	if err := g.apply(move); err != nil {
		return chess.Move{}, err
	}
	return move, nil
}

// Undo takes back the last move.
func (g *Game) Undo() (chess.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.history) == 0 {
		return chess.Move{}, fmt.Errorf("no move to take back: %w", errors.ErrIllegalMove)
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.reps.Forget(&g.board)
	engine.UnmakeMove(&g.board, last.move, last.undo)
	g.version++
	return last.move, nil
}

// History returns the committed moves in order.
func (g *Game) History() []chess.Move {
	g.mu.RLock()
	defer g.mu.RUnlock()

	moves := make([]chess.Move, len(g.history))
	for i, r := range g.history {
		moves[i] = r.move
	}
	return moves
}

// Notations returns the committed moves in long algebraic form.
func (g *Game) Notations() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.history))
	for i, r := range g.history {
		out[i] = g.board.Notation(r.move)
	}
	return out
}

// ComputerMove searches the current position for the side to move and
// commits the chosen move. If the position changes while the search runs,
// nothing is committed and the error wraps ErrSearchAborted.
func (g *Game) ComputerMove(ctx context.Context, s *search.Searcher) (search.Result, error) {
	g.mu.RLock()
	snapshot := g.board
	version := g.version
	g.mu.RUnlock()

	res, err := s.SelectMove(ctx, &snapshot, snapshot.ToMove)
	if err != nil {
		return res, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.version != version {
		return res, fmt.Errorf("position changed during search: %w", errors.ErrSearchAborted)
	}
	if err := g.apply(res.Move); err != nil {
		return res, err
	}
	return res, nil
}

// apply validates and commits move. The caller holds the write lock.
func (g *Game) apply(move chess.Move) error {
	colour := g.board.ToMove
	if !move.Piece.IsColour(colour) {
		return &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			Move:   g.board.Notation(move),
			Colour: move.Piece.Colour().String(),
			Reason: "not the side to move",
		}
	}
	if !move.IsCastle() && !g.generated(move) {
		return &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			Move:   g.board.Notation(move),
			Colour: colour.String(),
			Reason: "piece cannot move there",
		}
	}

	undo, err := engine.MakeMove(&g.board, move)
	if err != nil {
		return err
	}
	g.history = append(g.history, record{move: move, undo: undo})
	g.reps.Record(&g.board)
	g.version++
	return nil
}

// generated reports whether move is among the moves the generator offers
// for its piece. Knight handedness of a promotion is not compared.
func (g *Game) generated(move chess.Move) bool {
	if !g.board.At(move.From).Equal(move.Piece) {
		return false
	}
	var buf [32]chess.Move
	for _, m := range g.pieceMoves(buf[:0], move.From) {
		if sameMove(m, move) {
			return true
		}
	}
	return false
}

// pieceMoves appends the generated moves of the piece on from, honouring
// king-only evasions.
func (g *Game) pieceMoves(dst []chess.Move, from chess.Square) []chess.Move {
	piece := g.board.At(from)
	if piece.IsEmpty() {
		return dst
	}
	if g.rules.KingOnlyEvasions && piece.Kind() != chess.King && engine.IsInCheck(&g.board, piece.Colour()) {
		return dst
	}
	return g.rules.AppendPieceMoves(dst, &g.board, from)
}

// resolve finds the move of the piece on from to to. The caller holds the
// lock.
func (g *Game) resolve(from, to chess.Square, promotion chess.Kind) (chess.Move, error) {
	piece := g.board.At(from)
	if piece.IsEmpty() {
		return chess.Move{}, fmt.Errorf("no piece on %s: %w", g.board.SquareName(from), errors.ErrIllegalMove)
	}

	home := g.board.HomeRank(piece.Colour())
	if piece.Kind() == chess.King && from.Y == home && to.Y == home && abs(to.X-from.X) == 2 {
		side := chess.Kingside
		if (to.X > from.X) != (g.board.KingsideRookFile() > from.X) {
			side = chess.Queenside
		}
		return engine.CastleMove(&g.board, piece.Colour(), side), nil
	}

	var buf [32]chess.Move
	for _, m := range g.pieceMoves(buf[:0], from) {
		if m.To != to || m.IsCastle() {
			continue
		}
		if m.IsPromotion() {
			if promotion == chess.NoKind {
				promotion = chess.Queen
			}
			if m.Promotion.Kind() != promotion {
				continue
			}
		}
		return m, nil
	}
	return chess.Move{}, &errors.MoveError{
		Err:    errors.ErrIllegalMove,
		Move:   g.board.SquareName(from) + g.board.SquareName(to),
		Colour: piece.Colour().String(),
		Reason: "piece cannot move there",
	}
}

func sameMove(a, b chess.Move) bool {
	if a.From != b.From || a.To != b.To || !a.Captured.Equal(b.Captured) {
		return false
	}
	if a.IsPromotion() != b.IsPromotion() {
		return false
	}
	return !a.IsPromotion() || a.Promotion.Is(b.Promotion.Colour(), b.Promotion.Kind())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
