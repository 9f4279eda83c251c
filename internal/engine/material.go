package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// HasInsufficientMaterial returns true if neither side can force mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			piece := board.Squares[x][y]
			if piece.IsEmpty() || piece.Kind() == chess.King {
				continue
			}

			switch piece.Kind() {
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}

			if piece.Colour() == chess.White {
				whitePieces = append(whitePieces, piece.Kind())
				if piece.Kind() == chess.Bishop {
					whiteBishopOnLight = isLightSquare(x, y)
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind())
				if piece.Kind() == chess.Bishop {
					blackBishopOnLight = isLightSquare(x, y)
				}
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare reports the square colour. Both orientations agree because
// the rotated board flips file and rank together.
func isLightSquare(x, y int) bool {
	return (x+y)%2 == 0
}
