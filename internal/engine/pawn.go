package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// appendPawnMoves adds single and double advances and diagonal captures.
// A move onto the promotion rank expands into one move per promotion kind.
func (r *Rules) appendPawnMoves(dst []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	pawn := expectPiece(board, from, chess.Pawn)
	colour := pawn.Colour()
	dir := board.Forward(colour)

	one := from.Offset(0, dir)
	if one.InBounds() && board.At(one).IsEmpty() {
		dst = r.appendPawnMove(dst, board, pawn, from, one)

		two := from.Offset(0, 2*dir)
		if from.Y == board.PawnRank(colour) && two.InBounds() && board.At(two).IsEmpty() {
			dst = append(dst, newMove(board, pawn, from, two))
		}
	}

	for _, dx := range [2]int{-1, 1} {
		to := from.Offset(dx, dir)
		if !to.InBounds() || !board.At(to).IsColour(colour.Opposite()) {
			continue
		}
		dst = r.appendPawnMove(dst, board, pawn, from, to)
	}
	return dst
}

// appendPawnMove adds a single pawn move, expanded if it promotes.
func (r *Rules) appendPawnMove(dst []chess.Move, board *chess.Board, pawn chess.Piece, from, to chess.Square) []chess.Move {
	m := newMove(board, pawn, from, to)
	if to.Y != board.PromotionRank(pawn.Colour()) {
		return append(dst, m)
	}

	for _, kind := range chess.PromotionKinds {
		if kind == chess.Knight {
			m.Promotion = chess.NewKnight(pawn.Colour(), r.knightHand())
		} else {
			m.Promotion = chess.NewPiece(pawn.Colour(), kind)
		}
		dst = append(dst, m)
	}
	return dst
}
