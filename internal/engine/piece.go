package engine

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// AppendMoves appends the generated moves of every piece of colour to dst
// and returns the extended slice.
//
// Non-king moves are not tested for king safety; LegalMoves filters them.
// King moves never step onto an attacked square. While colour is in check
// and r.KingOnlyEvasions is set, only king moves are produced.
func (r *Rules) AppendMoves(dst []chess.Move, board *chess.Board, colour chess.Colour) []chess.Move {
	kingOnly := r.KingOnlyEvasions && IsInCheck(board, colour)

	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			piece := board.Squares[x][y]
			if !piece.IsColour(colour) {
				continue
			}
			if kingOnly && piece.Kind() != chess.King {
				continue
			}
			dst = r.AppendPieceMoves(dst, board, chess.Sq(x, y))
		}
	}
	return dst
}

// GenerateMoves returns the generated moves of colour in a new slice.
func (r *Rules) GenerateMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	return r.AppendMoves(make([]chess.Move, 0, 48), board, colour)
}

// AppendPieceMoves appends the moves of the piece on from.
// It panics if from is off the board or empty.
func (r *Rules) AppendPieceMoves(dst []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	piece := board.At(from)
	if piece.IsEmpty() {
		panic(fmt.Sprintf("engine: no piece on %v", from))
	}

	switch piece.Kind() {
	case chess.Pawn:
		return r.appendPawnMoves(dst, board, from)
	case chess.Knight:
		return appendKnightMoves(dst, board, from)
	case chess.King:
		return appendKingMoves(dst, board, from)
	default:
		return appendSlidingMoves(dst, board, from)
	}
}

// expectPiece panics unless from holds a piece of the given kind.
func expectPiece(board *chess.Board, from chess.Square, kind chess.Kind) chess.Piece {
	piece := board.At(from)
	if piece.Kind() != kind {
		panic(fmt.Sprintf("engine: expected %v on %v, found %v", kind, from, piece))
	}
	return piece
}

// newMove builds a move of the piece on from to to, recording any capture.
func newMove(board *chess.Board, piece chess.Piece, from, to chess.Square) chess.Move {
	return chess.Move{
		Piece:    piece,
		From:     from,
		To:       to,
		Captured: board.At(to),
	}
}

// appendSlidingMoves walks each ray, stopping before a friendly piece and
// on the first enemy piece.
func appendSlidingMoves(dst []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	piece := board.At(from)
	dirs := slideDirs(piece.Kind())
	if dirs == nil {
		panic(fmt.Sprintf("engine: expected sliding piece on %v, found %v", from, piece))
	}

	for _, d := range dirs {
		to := from.Offset(d[0], d[1])
		for to.InBounds() {
			target := board.At(to)
			if target.IsColour(piece.Colour()) {
				break
			}
			dst = append(dst, newMove(board, piece, from, to))
			if !target.IsEmpty() {
				break
			}
			to = to.Offset(d[0], d[1])
		}
	}
	return dst
}

func appendKnightMoves(dst []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	piece := expectPiece(board, from, chess.Knight)
	for _, o := range knightOffsets {
		to := from.Offset(o[0], o[1])
		if !to.InBounds() || board.At(to).IsColour(piece.Colour()) {
			continue
		}
		dst = append(dst, newMove(board, piece, from, to))
	}
	return dst
}

// appendKingMoves adds the safe adjacent steps and any castling candidates.
// Each step is tried on a scratch copy of the board.
func appendKingMoves(dst []chess.Move, board *chess.Board, from chess.Square) []chess.Move {
	king := expectPiece(board, from, chess.King)
	colour := king.Colour()

	for _, o := range kingOffsets {
		to := from.Offset(o[0], o[1])
		if !to.InBounds() || board.At(to).IsColour(colour) {
			continue
		}
		scratch := *board
		scratch.Set(from, chess.Empty)
		scratch.Set(to, king)
		if IsKingInCheck(&scratch, colour.Opposite()) {
			continue
		}
		dst = append(dst, newMove(board, king, from, to))
	}

	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if castlingRightsError(board, colour, side) != nil {
			continue
		}
		if geo := castleGeometryFor(board, colour, side); geo.kingFrom == from {
			dst = append(dst, geo.move(king))
		}
	}
	return dst
}
