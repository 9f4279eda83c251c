package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Status classifies a position for the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// IsTerminal reports whether the game cannot continue.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// Status reports the state of colour's position.
func (r *Rules) Status(board *chess.Board, colour chess.Colour) Status {
	inCheck := IsInCheck(board, colour)
	hasMoves := r.HasLegalMoves(board, colour)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	}
	return Ongoing
}
