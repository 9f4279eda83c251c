package storage

import (
	"fmt"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/game"
)

// Snapshot is the stored form of a game: the starting position and the
// moves played from it. Replaying the moves rebuilds the game with its
// undo history intact.
type Snapshot struct {
	Name         string                                       `json:"name"`
	Top          string                                       `json:"top"`
	ToMove       string                                       `json:"to_move"`
	Start        [chess.BoardSize][chess.BoardSize]chess.Code `json:"start"`
	Rights       chess.CastlingRights                         `json:"rights"`
	FullEvasions bool                                         `json:"full_evasions,omitempty"`
	Moves        []string                                     `json:"moves"`
	Result       string                                       `json:"result"`
	SavedAt      time.Time                                    `json:"saved_at"`
}

// NewSnapshot captures g under name.
func NewSnapshot(name string, g *game.Game) *Snapshot {
	start := g.Start()
	s := &Snapshot{
		Name:         name,
		Top:          start.Top.String(),
		ToMove:       start.ToMove.String(),
		Rights:       start.Rights,
		FullEvasions: !g.Rules().KingOnlyEvasions,
		Moves:        g.Notations(),
		Result:       g.Outcome().Result.String(),
		SavedAt:      time.Now(),
	}
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			s.Start[x][y] = start.Squares[x][y].Code()
		}
	}
	return s
}

// StartBoard decodes the starting position.
func (s *Snapshot) StartBoard() (*chess.Board, error) {
	top, ok := chess.ParseColour(s.Top)
	if !ok {
		return nil, fmt.Errorf("snapshot %q: bad top colour %q: %w", s.Name, s.Top, errors.ErrMalformedBoard)
	}
	toMove, ok := chess.ParseColour(s.ToMove)
	if !ok {
		return nil, fmt.Errorf("snapshot %q: bad side to move %q: %w", s.Name, s.ToMove, errors.ErrMalformedBoard)
	}

	board := chess.NewBoard(top)
	board.ToMove = toMove
	board.Rights = s.Rights
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			piece, ok := chess.PieceFromCode(s.Start[x][y])
			if !ok {
				return nil, fmt.Errorf("snapshot %q: bad code %d at (%d,%d): %w",
					s.Name, s.Start[x][y], x, y, errors.ErrMalformedBoard)
			}
			board.Squares[x][y] = piece
		}
	}
	return board, nil
}

// Game replays the snapshot into a new game under rules. The check
// evasion setting the game was played with overrides the one in rules.
func (s *Snapshot) Game(rules *engine.Rules) (*game.Game, error) {
	board, err := s.StartBoard()
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = engine.DefaultRules()
	}
	if rules.KingOnlyEvasions == s.FullEvasions {
		rules = rules.Fork(0)
		rules.KingOnlyEvasions = !s.FullEvasions
	}
	g := game.FromBoard(board, rules)
	for i, text := range s.Moves {
		if _, err := g.ApplyNotation(text); err != nil {
			return nil, errors.Wrapf(err, "snapshot %q: move %d", s.Name, i+1)
		}
	}
	return g, nil
}
