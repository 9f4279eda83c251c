package chess

// Geometry relative to the board orientation. The Top colour's back rank
// is rank 0 and its pawns advance toward rank 7; the other colour mirrors it.

// Forward returns the rank step a pawn of the colour advances by.
func (b *Board) Forward(colour Colour) int {
	if colour == b.Top {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the colour.
func (b *Board) HomeRank(colour Colour) int {
	if colour == b.Top {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank the colour's pawns start on.
func (b *Board) PawnRank(colour Colour) int {
	return b.HomeRank(colour) + b.Forward(colour)
}

// PromotionRank returns the rank on which the colour's pawns promote.
func (b *Board) PromotionRank(colour Colour) int {
	return b.HomeRank(colour.Opposite())
}

// KingFile returns the file both kings start on. With White at the bottom
// file 0 is the a-file and kings stand on file 4; the rotated board puts
// them on file 3.
func (b *Board) KingFile() int {
	if b.Top == Black {
		return 4
	}
	return 3
}

// KingsideRookFile returns the file of the rook nearer the king.
func (b *Board) KingsideRookFile() int {
	if b.Top == Black {
		return BoardSize - 1
	}
	return 0
}

// QueensideRookFile returns the file of the rook farther from the king.
func (b *Board) QueensideRookFile() int {
	if b.Top == Black {
		return 0
	}
	return BoardSize - 1
}

// SquareName returns the algebraic name of a square, e.g. "e4",
// accounting for orientation.
func (b *Board) SquareName(sq Square) string {
	if !sq.InBounds() {
		return "??"
	}
	file, rank := sq.X, BoardSize-1-sq.Y
	if b.Top == White {
		file, rank = BoardSize-1-sq.X, sq.Y
	}
	return string([]byte{byte('a' + file), byte('1' + rank)})
}

// ParseSquare converts an algebraic name such as "e4" to a square.
func (b *Board) ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	file, rank := int(name[0]-'a'), int(name[1]-'1')
	if name[0] < 'a' || file >= BoardSize || name[1] < '1' || rank >= BoardSize {
		return Square{}, false
	}
	if b.Top == White {
		return Square{X: BoardSize - 1 - file, Y: rank}, true
	}
	return Square{X: file, Y: BoardSize - 1 - rank}, true
}
