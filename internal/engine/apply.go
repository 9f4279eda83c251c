package engine

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Undo holds what MakeMove overwrote, so UnmakeMove can restore the board
// exactly.
type Undo struct {
	Moved    chess.Piece // piece found on the origin square
	Captured chess.Piece // piece found on the destination square
	Rights   chess.CastlingRights
	ToMove   chess.Colour
}

// ApplyMove commits a move to the board. On failure the board is unchanged.
func ApplyMove(board *chess.Board, move chess.Move) error {
	_, err := MakeMove(board, move)
	return err
}

// MakeMove commits a move and returns the record needed to take it back.
//
// A move that leaves the mover's own king in check is reverted and fails
// with ErrKingInCheck. Castling refused for rights or path reasons fails with
// ErrCastlingUnavailable before anything is touched; castling refused for
// check safety wraps both ErrCastlingUnavailable and ErrKingInCheck.
// On success the side to move passes to the opponent.
func MakeMove(board *chess.Board, move chess.Move) (Undo, error) {
	undo := Undo{
		Moved:    board.At(move.From),
		Captured: board.At(move.To),
		Rights:   board.Rights,
		ToMove:   board.ToMove,
	}

	if move.Piece.IsEmpty() || !move.From.InBounds() || !move.To.InBounds() || !undo.Moved.Equal(move.Piece) {
		return undo, moveError(board, move, errors.ErrIllegalMove, "piece not on origin square")
	}
	colour := move.Piece.Colour()

	if move.IsCastle() {
		if err := makeCastle(board, move); err != nil {
			return undo, err
		}
		board.ToMove = colour.Opposite()
		return undo, nil
	}

	switch {
	case undo.Captured.IsColour(colour):
		return undo, moveError(board, move, errors.ErrIllegalMove, "destination holds own piece")
	case !undo.Captured.Equal(move.Captured):
		return undo, moveError(board, move, errors.ErrIllegalMove, "captured piece does not match")
	case move.IsPromotion() && (move.Piece.Kind() != chess.Pawn || !move.Promotion.IsColour(colour)):
		return undo, moveError(board, move, errors.ErrIllegalMove, "invalid promotion")
	}

	board.Set(move.From, chess.Empty)
	board.Set(move.To, move.Placed())

	if IsInCheck(board, colour) {
		board.Set(move.From, undo.Moved)
		board.Set(move.To, undo.Captured)
		return undo, moveError(board, move, errors.ErrKingInCheck, "")
	}

	updateRights(board, move, colour)
	board.ToMove = colour.Opposite()
	return undo, nil
}

// UnmakeMove takes back a move committed by MakeMove with the given undo.
func UnmakeMove(board *chess.Board, move chess.Move, undo Undo) {
	if move.IsCastle() {
		unplaceCastle(board, castleGeometryFor(board, move.Piece.Colour(), move.Side()))
	} else {
		board.Set(move.From, undo.Moved)
		board.Set(move.To, undo.Captured)
	}
	board.Rights = undo.Rights
	board.ToMove = undo.ToMove
}

// makeCastle validates and performs a castling move.
func makeCastle(board *chess.Board, move chess.Move) error {
	colour := move.Piece.Colour()
	if move.Piece.Kind() != chess.King || move.CastleKingside == move.CastleQueenside {
		return moveError(board, move, errors.ErrIllegalMove, "malformed castling move")
	}

	geo := castleGeometryFor(board, colour, move.Side())
	if move.From != geo.kingFrom || move.To != geo.kingTo {
		return moveError(board, move, errors.ErrIllegalMove, "castling squares do not match")
	}
	if err := castlingRightsError(board, colour, move.Side()); err != nil {
		return moveError(board, move, err, "")
	}
	if err := castlingSafetyError(board, colour, geo); err != nil {
		return moveError(board, move, err, "")
	}

	placeCastle(board, geo)
	if IsInCheck(board, colour) {
		unplaceCastle(board, geo)
		return moveError(board, move,
			fmt.Errorf("%w: %w", errors.ErrCastlingUnavailable, errors.ErrKingInCheck), "")
	}

	rights := &board.Rights[colour]
	rights.KingMoved = true
	if move.Side() == chess.Kingside {
		rights.KingsideRookMoved = true
	} else {
		rights.QueensideRookMoved = true
	}
	return nil
}

// updateRights sets the moved flags touched by a non-castling move. Flags
// are only ever set, never cleared.
func updateRights(board *chess.Board, move chess.Move, colour chess.Colour) {
	switch move.Piece.Kind() {
	case chess.King:
		board.Rights[colour].KingMoved = true
	case chess.Rook:
		markRookSquare(board, colour, move.From)
	}
	if move.Captured.Is(colour.Opposite(), chess.Rook) {
		markRookSquare(board, colour.Opposite(), move.To)
	}
}

// markRookSquare flags the rook of colour whose home square is sq.
func markRookSquare(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Y != board.HomeRank(colour) {
		return
	}
	switch sq.X {
	case board.KingsideRookFile():
		board.Rights[colour].KingsideRookMoved = true
	case board.QueensideRookFile():
		board.Rights[colour].QueensideRookMoved = true
	}
}

func moveError(board *chess.Board, move chess.Move, err error, reason string) error {
	return &errors.MoveError{
		Err:    err,
		Move:   board.Notation(move),
		Colour: move.Piece.Colour().String(),
		Reason: reason,
	}
}
