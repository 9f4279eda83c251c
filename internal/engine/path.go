package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// offset is a (file, rank) step.
type offset [2]int

var (
	straightDirs  = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs  = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs     = append(append([]offset{}, straightDirs...), diagonalDirs...)
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = queenDirs
)

// slideDirs returns the ray directions of a sliding kind, nil otherwise.
func slideDirs(kind chess.Kind) []offset {
	switch kind {
	case chess.Rook:
		return straightDirs
	case chess.Bishop:
		return diagonalDirs
	case chess.Queen:
		return queenDirs
	}
	return nil
}

// isPathClear reports whether every square strictly between from and to is
// empty. The squares must share a file, rank or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	dx := sign(to.X - from.X)
	dy := sign(to.Y - from.Y)

	sq := from.Offset(dx, dy)
	for sq != to {
		if !board.At(sq).IsEmpty() {
			return false
		}
		sq = sq.Offset(dx, dy)
	}
	return true
}

// onLine reports whether to lies on one of dirs' rays from from.
func onLine(from, to chess.Square, dirs []offset) bool {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx == 0 && dy == 0 {
		return false
	}
	for _, d := range dirs {
		if sign(dx) != d[0] || sign(dy) != d[1] {
			continue
		}
		if dx == 0 || dy == 0 || abs(dx) == abs(dy) {
			return true
		}
	}
	return false
}
