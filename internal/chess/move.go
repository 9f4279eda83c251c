package chess

// CastleSide selects kingside or queenside castling.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the string representation of a castling side.
func (s CastleSide) String() string {
	if s == Queenside {
		return "queenside"
	}
	return "kingside"
}

// Move is an immutable move record produced by the generator and consumed
// by the applier.
type Move struct {
	// The piece being moved.
	Piece Piece

	// Source and destination squares. For castling these are the king's.
	From Square
	To   Square

	// The piece captured (Empty if no capture).
	Captured Piece

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece

	CastleKingside  bool
	CastleQueenside bool
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return !m.Promotion.IsEmpty()
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.CastleKingside || m.CastleQueenside
}

// Side returns the castling side. Only meaningful when IsCastle is true.
func (m Move) Side() CastleSide {
	if m.CastleQueenside {
		return Queenside
	}
	return Kingside
}

// Placed returns the piece that stands on the destination after the move.
func (m Move) Placed() Piece {
	if m.IsPromotion() {
		return m.Promotion
	}
	return m.Piece
}

// Notation returns the move in long algebraic form (e.g. "e2e4", "e7e8q").
// Castling is written as the king's move.
func (b *Board) Notation(m Move) string {
	s := b.SquareName(m.From) + b.SquareName(m.To)
	if m.IsPromotion() {
		s += string(m.Promotion.Kind().Letter() + 'a' - 'A')
	}
	return s
}
