// Package search selects a move by fixed-depth minimax over the legal moves
// generated by the engine package.
//
// The authoritative board is never touched: each search works on a private
// copy, making and unmaking moves on it, so a cancelled or failed search
// leaves the caller's board as it was.
package search

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"golang.org/x/exp/rand"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/worker"
)

// MateScore is the value of delivering mate at the root. Mates further
// away score one less per ply, so the search prefers the quickest mate and
// the slowest loss.
const MateScore = 1_000_000

const infinity = MateScore + 1

// Result describes the chosen move.
type Result struct {
	Move chess.Move

	// Score is the backed-up value of Move from the mover's point of view.
	Score int

	// Nodes counts the positions visited.
	Nodes int64

	// Ties is the number of root moves sharing the best score.
	Ties int

	// Every root move and its value, in generation order.
	Moves  []chess.Move
	Scores []int
}

// Searcher runs fixed-depth searches with one configuration.
// It is not safe for concurrent use; the random tie-break source is shared
// between calls.
type Searcher struct {
	search    *config.SearchConfig
	eval      *config.EvalConfig
	rules     *engine.Rules
	rng       *rand.Rand
	log       io.Writer
	verbosity int
}

// NewSearcher creates a Searcher from cfg.
func NewSearcher(cfg *config.Config) *Searcher {
	return &Searcher{
		search:    cfg.Search,
		eval:      cfg.Eval,
		rules:     engine.NewRules(cfg.Rules.KingOnlyEvasions, cfg.Search.Seed),
		rng:       rand.New(rand.NewSource(cfg.Search.Seed)),
		log:       cfg.LogFile,
		verbosity: cfg.Verbosity,
	}
}

// Rules returns the move-generation rules the searcher plays by.
func (s *Searcher) Rules() *engine.Rules {
	return s.rules
}

// Evaluate scores board statically from colour's point of view.
func (s *Searcher) Evaluate(board *chess.Board, colour chess.Colour) int {
	return Evaluate(board, colour, s.eval)
}

// SelectMove searches board for colour and returns the best move.
//
// It fails with ErrCheckmate or ErrStalemate when colour has no legal move,
// and with ErrSearchAborted when ctx is done before the search completes.
func (s *Searcher) SelectMove(ctx context.Context, board *chess.Board, colour chess.Colour) (Result, error) {
	scratch := board.Copy()
	scratch.ToMove = colour

	moves := s.rules.LegalMoves(scratch, colour)
	if len(moves) == 0 {
		if engine.IsInCheck(scratch, colour) {
			return Result{}, fmt.Errorf("%v to move: %w", colour, errors.ErrCheckmate)
		}
		return Result{}, fmt.Errorf("%v to move: %w", colour, errors.ErrStalemate)
	}

	var (
		nodes  atomic.Int64
		scores []int
		err    error
	)
	if s.search.Workers > 1 && len(moves) > 1 {
		scores, err = s.scoreParallel(ctx, scratch, colour, moves, &nodes)
	} else {
		w := s.newWalker(ctx, colour, s.rules, &nodes)
		scores, err = w.scoreAll(scratch, moves, s.search.Depth)
	}
	if err != nil {
		return Result{Nodes: nodes.Load()}, err
	}

	best, ties := s.pick(scores)
	result := Result{
		Move:   moves[best],
		Score:  scores[best],
		Nodes:  nodes.Load(),
		Ties:   ties,
		Moves:  moves,
		Scores: scores,
	}

	if s.verbosity > 1 {
		fmt.Fprintf(s.log, "search: %v depth %d: %s score %d nodes %d ties %d\n",
			colour, s.search.Depth, board.Notation(result.Move), result.Score, result.Nodes, ties)
	}
	return result, nil
}

// pick applies the tie-break policy and returns the chosen index together
// with the number of moves that share the best score.
func (s *Searcher) pick(scores []int) (int, int) {
	bestScore := -infinity
	var ties []int
	for i, v := range scores {
		switch {
		case v > bestScore:
			bestScore = v
			ties = append(ties[:0], i)
		case v == bestScore:
			ties = append(ties, i)
		}
	}
	if s.search.TieBreak == config.TieBreakRandom && len(ties) > 1 {
		return ties[s.rng.Intn(len(ties))], len(ties)
	}
	return ties[0], len(ties)
}

// scoreParallel scores the root moves over a worker pool. Each worker owns
// a walker and a board copy, and every root move is searched with a full
// window, so the scores match the sequential search when no node budget
// applies.
func (s *Searcher) scoreParallel(ctx context.Context, board *chess.Board, colour chess.Colour,
	moves []chess.Move, nodes *atomic.Int64) ([]int, error) {
	n := min(s.search.Workers, len(moves))
	walkers := make([]*walker, n)
	boards := make([]*chess.Board, n)
	for i := range walkers {
		walkers[i] = s.newWalker(ctx, colour, s.rules.Fork(uint64(i)), nodes)
		boards[i] = board.Copy()
	}

	// An aborted root move stops the pool; the queued ones are skipped.
	var pool *worker.Pool
	process := func(ctx context.Context, id int, item worker.WorkItem) worker.ProcessResult {
		score, err := walkers[id].scoreRoot(boards[id], item.Move, s.search.Depth)
		if err != nil {
			pool.Stop()
		}
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Score: score, Error: err}
	}

	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Move: m, Index: i}
	}

	pool = worker.NewPool(process, worker.WithWorkers(n), worker.WithBufferSize(len(items)))
	results := pool.Run(ctx, items)

	scores := make([]int, len(moves))
	for _, r := range results {
		if r.Error != nil {
			return nil, r.Error
		}
		scores[r.Index] = r.Score
	}
	if len(results) < len(moves) {
		return nil, abortError(ctx, nodes.Load())
	}
	return scores, nil
}

func (s *Searcher) newWalker(ctx context.Context, self chess.Colour, rules *engine.Rules, nodes *atomic.Int64) *walker {
	return &walker{
		ctx:    ctx,
		self:   self,
		eval:   s.eval,
		rules:  rules,
		prune:  s.search.UseAlphaBeta(),
		budget: s.search.NodeBudget,
		nodes:  nodes,
	}
}

// walker performs the recursive part of a search on one board.
type walker struct {
	ctx     context.Context
	self    chess.Colour
	eval    *config.EvalConfig
	rules   *engine.Rules
	prune   bool
	budget  int64
	nodes   *atomic.Int64
	bufs    [][]chess.Move // move lists, one per ply
	aborted bool
}

func (w *walker) scoreAll(board *chess.Board, moves []chess.Move, depth int) ([]int, error) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		score, err := w.scoreRoot(board, m, depth)
		if err != nil {
			return nil, err
		}
		scores[i] = score
	}
	return scores, nil
}

// scoreRoot returns the backed-up value of playing move on board.
func (w *walker) scoreRoot(board *chess.Board, move chess.Move, depth int) (int, error) {
	if w.ctx.Err() != nil {
		return 0, abortError(w.ctx, w.nodes.Load())
	}
	undo, err := engine.MakeMove(board, move)
	if err != nil {
		return 0, err
	}
	score := w.minimax(board, depth-1, 1, -infinity, infinity)
	engine.UnmakeMove(board, move, undo)

	if w.aborted {
		return 0, abortError(w.ctx, w.nodes.Load())
	}
	return score, nil
}

func (w *walker) minimax(board *chess.Board, depth, ply int, alpha, beta int) int {
	if n := w.nodes.Add(1); n&1023 == 0 && w.ctx.Err() != nil {
		w.aborted = true
	}
	if w.aborted {
		return 0
	}
	if depth <= 0 || w.overBudget() {
		return Evaluate(board, w.self, w.eval)
	}

	toMove := board.ToMove
	for len(w.bufs) <= ply {
		w.bufs = append(w.bufs, make([]chess.Move, 0, 64))
	}
	moves := w.rules.AppendLegalMoves(w.bufs[ply][:0], board, toMove)
	w.bufs[ply] = moves

	if len(moves) == 0 {
		switch {
		case !engine.IsInCheck(board, toMove):
			return 0
		case toMove == w.self:
			return -MateScore + ply
		default:
			return MateScore - ply
		}
	}

	maximizing := toMove == w.self
	best := infinity
	if maximizing {
		best = -infinity
	}
	for _, m := range moves {
		undo, err := engine.MakeMove(board, m)
		if err != nil {
			continue
		}
		v := w.minimax(board, depth-1, ply+1, alpha, beta)
		engine.UnmakeMove(board, m, undo)

		if maximizing {
			best = max(best, v)
			alpha = max(alpha, v)
		} else {
			best = min(best, v)
			beta = min(beta, v)
		}
		if (w.prune && alpha >= beta) || w.overBudget() {
			break
		}
	}
	return best
}

// overBudget reports whether the node budget is spent. Nodes expanded
// after that stop at the child in hand and back up what they have.
func (w *walker) overBudget() bool {
	return w.budget > 0 && w.nodes.Load() > w.budget
}

func abortError(ctx context.Context, nodes int64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("after %d nodes: %w: %w", nodes, errors.ErrSearchAborted, err)
	}
	return fmt.Errorf("after %d nodes: %w", nodes, errors.ErrSearchAborted)
}
