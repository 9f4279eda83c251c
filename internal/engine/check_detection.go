package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// IsKingInCheck returns true if the king opposing threatening is attacked by
// any piece of threatening. A board without that king is never in check.
func IsKingInCheck(board *chess.Board, threatening chess.Colour) bool {
	kingSq, ok := board.FindKing(threatening.Opposite())
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, threatening)
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsKingInCheck(board, colour.Opposite())
}

// IsSquareThreatened reports whether a king of the colour opposing by would
// be attacked on sq. The board is taken by value so the sentinel king never
// touches the caller's board.
func IsSquareThreatened(board chess.Board, sq chess.Square, by chess.Colour) bool {
	if !sq.InBounds() {
		return false
	}
	board.Set(sq, chess.NewPiece(by.Opposite(), chess.King))
	return IsSquareAttacked(&board, sq, by)
}

// IsSquareAttacked surveys every piece of the colour by and reports whether
// any of them attacks target.
func IsSquareAttacked(board *chess.Board, target chess.Square, by chess.Colour) bool {
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			piece := board.Squares[x][y]
			if !piece.IsColour(by) {
				continue
			}
			if Threatens(board, chess.Sq(x, y), target) {
				return true
			}
		}
	}
	return false
}

// Threatens reports whether the piece on from attacks target, dispatching to
// the per-kind predicate.
func Threatens(board *chess.Board, from, target chess.Square) bool {
	piece := board.At(from)
	switch piece.Kind() {
	case chess.Pawn:
		return pawnThreatens(board, piece.Colour(), from, target)
	case chess.Knight:
		return knightThreatens(from, target)
	case chess.King:
		return kingThreatens(from, target)
	case chess.Rook, chess.Bishop, chess.Queen:
		return slidingThreatens(board, from, target, slideDirs(piece.Kind()))
	}
	return false
}

// pawnThreatens checks the two forward diagonals, relative to orientation.
func pawnThreatens(board *chess.Board, colour chess.Colour, from, target chess.Square) bool {
	return target.Y-from.Y == board.Forward(colour) && abs(target.X-from.X) == 1
}

func knightThreatens(from, target chess.Square) bool {
	dx, dy := abs(target.X-from.X), abs(target.Y-from.Y)
	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

func kingThreatens(from, target chess.Square) bool {
	dx, dy := abs(target.X-from.X), abs(target.Y-from.Y)
	return dx <= 1 && dy <= 1 && dx+dy > 0
}

// slidingThreatens walks the ray toward target; the first occupied square
// ends the walk.
func slidingThreatens(board *chess.Board, from, target chess.Square, dirs []offset) bool {
	if !onLine(from, target, dirs) {
		return false
	}
	return isPathClear(board, from, target)
}
