package chess

import "fmt"

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square is a (file, rank) coordinate, each in [0,7].
type Square struct {
	X int // file
	Y int // rank
}

// Sq is shorthand for Square{x, y}.
func Sq(x, y int) Square {
	return Square{X: x, Y: y}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.X >= 0 && s.X < BoardSize && s.Y >= 0 && s.Y < BoardSize
}

// Offset returns the square shifted by (dx, dy).
func (s Square) Offset(dx, dy int) Square {
	return Square{X: s.X + dx, Y: s.Y + dy}
}

// String returns the raw coordinates, e.g. "(4,7)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.X, s.Y)
}

// SideRights records which castling pieces of one side have moved.
// Flags only ever go from false to true.
type SideRights struct {
	KingMoved          bool
	KingsideRookMoved  bool
	QueensideRookMoved bool
}

// CastlingRights holds the moved flags of both sides, indexed by Colour.
type CastlingRights [2]SideRights

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, Squares[file][rank].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The colour whose back rank is rank 0 ("colour on top").
	Top Colour

	// Castling moved-flags for both sides.
	Rights CastlingRights
}

// NewBoard creates a new empty board with the given colour on top.
func NewBoard(top Colour) *Board {
	return &Board{
		ToMove: White,
		Top:    top,
	}
}

// NewInitialBoard creates a board in the standard starting position.
func NewInitialBoard(top Colour) *Board {
	b := NewBoard(top)
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position
// relative to the board orientation.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	for _, colour := range []Colour{White, Black} {
		home := b.HomeRank(colour)
		pawns := b.PawnRank(colour)
		for x := 0; x < BoardSize; x++ {
			b.Squares[x][pawns] = NewPiece(colour, Pawn)
		}

		queenside, kingside := b.QueensideRookFile(), b.KingsideRookFile()
		dir := sign(kingside - queenside)
		b.Squares[queenside][home] = NewPiece(colour, Rook)
		b.Squares[queenside+dir][home] = NewKnight(colour, Left)
		b.Squares[queenside+2*dir][home] = NewPiece(colour, Bishop)
		b.Squares[queenside+3*dir][home] = NewPiece(colour, Queen)
		b.Squares[b.KingFile()][home] = NewPiece(colour, King)
		b.Squares[kingside-2*dir][home] = NewPiece(colour, Bishop)
		b.Squares[kingside-dir][home] = NewKnight(colour, Right)
		b.Squares[kingside][home] = NewPiece(colour, Rook)
	}

	b.ToMove = White
	b.Rights = CastlingRights{}
}

// At returns the piece on the square. Off-board squares read as Empty.
func (b *Board) At(sq Square) Piece {
	if !sq.InBounds() {
		return Empty
	}
	return b.Squares[sq.X][sq.Y]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.InBounds() {
		b.Squares[sq.X][sq.Y] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing finds the king of the given colour on the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b.Squares[x][y].Is(colour, King) {
				return Square{X: x, Y: y}, true
			}
		}
	}
	return Square{}, false
}

// Count returns how many pieces of the given colour and kind are on the board.
func (b *Board) Count(colour Colour, kind Kind) int {
	n := 0
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b.Squares[x][y].Is(colour, kind) {
				n++
			}
		}
	}
	return n
}

// DeriveCastlingRights marks castling pieces as moved when they are not on
// their home squares. Existing flags are never cleared.
func (b *Board) DeriveCastlingRights() {
	for _, colour := range []Colour{White, Black} {
		home := b.HomeRank(colour)
		r := &b.Rights[colour]
		if !b.Squares[b.KingFile()][home].Is(colour, King) {
			r.KingMoved = true
		}
		if !b.Squares[b.KingsideRookFile()][home].Is(colour, Rook) {
			r.KingsideRookMoved = true
		}
		if !b.Squares[b.QueensideRookFile()][home].Is(colour, Rook) {
			r.QueensideRookMoved = true
		}
	}
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
