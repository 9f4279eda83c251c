package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// ParseNotation splits a long algebraic move such as "g1f3" or "b7b8n" into
// its squares and promotion kind, relative to board's orientation.
// The promotion kind is NoKind when no letter is given.
func ParseNotation(board *chess.Board, text string) (chess.Square, chess.Square, chess.Kind, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return chess.Square{}, chess.Square{}, chess.NoKind,
			fmt.Errorf("move %q: want from and to squares: %w", text, errors.ErrIllegalMove)
	}

	from, ok := board.ParseSquare(text[0:2])
	if !ok {
		return chess.Square{}, chess.Square{}, chess.NoKind,
			fmt.Errorf("move %q: bad square %q: %w", text, text[0:2], errors.ErrIllegalMove)
	}
	to, ok := board.ParseSquare(text[2:4])
	if !ok {
		return chess.Square{}, chess.Square{}, chess.NoKind,
			fmt.Errorf("move %q: bad square %q: %w", text, text[2:4], errors.ErrIllegalMove)
	}

	promotion := chess.NoKind
	if len(text) == 5 {
		promotion = engine.ConvertFENCharToKind(text[4])
		switch promotion {
		case chess.Rook, chess.Knight, chess.Bishop, chess.Queen:
		default:
			return chess.Square{}, chess.Square{}, chess.NoKind,
				fmt.Errorf("move %q: bad promotion %q: %w", text, text[4], errors.ErrIllegalMove)
		}
	}
	return from, to, promotion, nil
}
