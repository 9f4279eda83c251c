package engine

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// castleGeometry holds the squares involved in one castling move.
type castleGeometry struct {
	side     chess.CastleSide
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
}

// castleGeometryFor computes the castling squares of colour on side. The
// king moves two files toward the rook; the rook lands on the square the
// king crosses.
func castleGeometryFor(board *chess.Board, colour chess.Colour, side chess.CastleSide) castleGeometry {
	rank := board.HomeRank(colour)
	kingFile := board.KingFile()
	rookFile := board.KingsideRookFile()
	if side == chess.Queenside {
		rookFile = board.QueensideRookFile()
	}
	dir := sign(rookFile - kingFile)

	return castleGeometry{
		side:     side,
		kingFrom: chess.Sq(kingFile, rank),
		kingTo:   chess.Sq(kingFile+2*dir, rank),
		rookFrom: chess.Sq(rookFile, rank),
		rookTo:   chess.Sq(kingFile+dir, rank),
	}
}

// move returns the castling move record, expressed as the king's move.
func (g castleGeometry) move(king chess.Piece) chess.Move {
	return chess.Move{
		Piece:           king,
		From:            g.kingFrom,
		To:              g.kingTo,
		CastleKingside:  g.side == chess.Kingside,
		CastleQueenside: g.side == chess.Queenside,
	}
}

// CastleMove returns the castling move of colour on side without checking
// whether it is available.
func CastleMove(board *chess.Board, colour chess.Colour, side chess.CastleSide) chess.Move {
	return castleGeometryFor(board, colour, side).move(chess.NewPiece(colour, chess.King))
}

// castlingRightsError checks the moved flags, the pieces on their home
// squares and the empty path between them. It never looks at attacks.
func castlingRightsError(board *chess.Board, colour chess.Colour, side chess.CastleSide) error {
	rights := board.Rights[colour]
	geo := castleGeometryFor(board, colour, side)

	rookMoved := rights.KingsideRookMoved
	if side == chess.Queenside {
		rookMoved = rights.QueensideRookMoved
	}

	switch {
	case rights.KingMoved:
		return fmt.Errorf("king has moved: %w", errors.ErrCastlingUnavailable)
	case rookMoved:
		return fmt.Errorf("%s rook has moved: %w", side, errors.ErrCastlingUnavailable)
	case !board.At(geo.kingFrom).Is(colour, chess.King):
		return fmt.Errorf("king is not on its home square: %w", errors.ErrCastlingUnavailable)
	case !board.At(geo.rookFrom).Is(colour, chess.Rook):
		return fmt.Errorf("%s rook is not on its home square: %w", side, errors.ErrCastlingUnavailable)
	case !isPathClear(board, geo.kingFrom, geo.rookFrom):
		return fmt.Errorf("pieces between king and rook: %w", errors.ErrCastlingUnavailable)
	}
	return nil
}

// castlingSafetyError refuses castling out of check and across an attacked
// square. The destination is tested after the pieces move.
func castlingSafetyError(board *chess.Board, colour chess.Colour, geo castleGeometry) error {
	switch {
	case IsInCheck(board, colour):
		return fmt.Errorf("king is in check: %w: %w", errors.ErrCastlingUnavailable, errors.ErrKingInCheck)
	case IsSquareThreatened(*board, geo.rookTo, colour.Opposite()):
		return fmt.Errorf("king would cross an attacked square: %w: %w", errors.ErrCastlingUnavailable, errors.ErrKingInCheck)
	}
	return nil
}

// CastlingPossible reports whether colour may castle on side right now:
// rights intact, path empty, and the king neither in, through nor into check.
func CastlingPossible(board *chess.Board, colour chess.Colour, side chess.CastleSide) bool {
	if castlingRightsError(board, colour, side) != nil {
		return false
	}
	geo := castleGeometryFor(board, colour, side)
	if castlingSafetyError(board, colour, geo) != nil {
		return false
	}

	scratch := *board
	placeCastle(&scratch, geo)
	return !IsInCheck(&scratch, colour)
}

// placeCastle moves the rook and then the king to their castled squares.
func placeCastle(board *chess.Board, geo castleGeometry) {
	rook := board.At(geo.rookFrom)
	board.Set(geo.rookFrom, chess.Empty)
	board.Set(geo.rookTo, rook)

	king := board.At(geo.kingFrom)
	board.Set(geo.kingFrom, chess.Empty)
	board.Set(geo.kingTo, king)
}

// unplaceCastle puts the king and rook back on their home squares.
func unplaceCastle(board *chess.Board, geo castleGeometry) {
	king := board.At(geo.kingTo)
	board.Set(geo.kingTo, chess.Empty)
	board.Set(geo.kingFrom, king)

	rook := board.At(geo.rookTo)
	board.Set(geo.rookTo, chess.Empty)
	board.Set(geo.rookFrom, rook)
}
