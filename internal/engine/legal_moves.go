package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// LegalMoves returns the generated moves of colour that can be committed.
func (r *Rules) LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	return r.AppendLegalMoves(make([]chess.Move, 0, 48), board, colour)
}

// AppendLegalMoves appends the legal moves of colour to dst. Each candidate
// is made and unmade on a scratch copy; board itself is only read.
func (r *Rules) AppendLegalMoves(dst []chess.Move, board *chess.Board, colour chess.Colour) []chess.Move {
	start := len(dst)
	dst = r.AppendMoves(dst, board, colour)

	scratch := *board
	n := start
	for _, m := range dst[start:] {
		undo, err := MakeMove(&scratch, m)
		if err != nil {
			continue
		}
		UnmakeMove(&scratch, m, undo)
		dst[n] = m
		n++
	}
	return dst[:n]
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (r *Rules) HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	var buf [64]chess.Move
	moves := r.AppendMoves(buf[:0], board, colour)

	scratch := *board
	for _, m := range moves {
		if undo, err := MakeMove(&scratch, m); err == nil {
			UnmakeMove(&scratch, m, undo)
			return true
		}
	}
	return false
}

// LegalDestinations returns the squares the piece on from can legally
// reach. Castling contributes the king's destination.
func (r *Rules) LegalDestinations(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.At(from)
	if piece.IsEmpty() {
		return nil
	}

	var dests []chess.Square
	seen := make(map[chess.Square]bool)
	for _, m := range r.LegalMoves(board, piece.Colour()) {
		if m.From != from || seen[m.To] {
			continue
		}
		seen[m.To] = true
		dests = append(dests, m.To)
	}
	return dests
}

// FindMove returns the legal move of the piece on from to to. Promotions
// need a promotion kind; castling is found by the king's two-file step.
func (r *Rules) FindMove(board *chess.Board, from, to chess.Square, promotion chess.Kind) (chess.Move, bool) {
	piece := board.At(from)
	if piece.IsEmpty() {
		return chess.Move{}, false
	}
	for _, m := range r.LegalMoves(board, piece.Colour()) {
		if m.From != from || m.To != to {
			continue
		}
		if m.IsPromotion() && m.Promotion.Kind() != promotion {
			continue
		}
		return m, true
	}
	return chess.Move{}, false
}
