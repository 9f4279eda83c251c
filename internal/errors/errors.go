// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrKingInCheck indicates a move that would leave the mover's own king in check.
	ErrKingInCheck = errors.New("would leave own king in check")

	// ErrCastlingUnavailable indicates castling was refused.
	ErrCastlingUnavailable = errors.New("castling not possible")

	// ErrMalformedBoard indicates an imported board that is structurally or semantically invalid.
	ErrMalformedBoard = errors.New("malformed board data")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrCheckmate indicates the side to move has no legal moves while in check.
	ErrCheckmate = errors.New("king in checkmate")

	// ErrStalemate indicates the side to move has no legal moves and is not in check.
	ErrStalemate = errors.New("stalemate")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates a saved game that does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrSearchAborted indicates a search stopped before producing a move.
	ErrSearchAborted = errors.New("search aborted")
)

// IsGameOver reports whether err signals a terminal game condition rather
// than a recoverable failure.
func IsGameOver(err error) bool {
	return errors.Is(err, ErrCheckmate) || errors.Is(err, ErrStalemate)
}

// MoveError wraps a move commitment failure with the move and the reason it
// was refused. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Move   string // The move in long algebraic form (if known)
	Colour string // The side that tried to move (if known)
	Reason string // Human-readable explanation (optional)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a board import error with location context.
type ParseError struct {
	Err  error  // The underlying error
	File string // Source file name
	Line int    // Line number (1-based)
	Item int    // Item number within the line (1-based)
	Got  string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	loc := e.File
	if e.Line > 0 {
		if loc != "" {
			loc += ":"
		}
		loc += fmt.Sprintf("line %d", e.Line)
		if e.Item > 0 {
			loc += fmt.Sprintf(", item %d", e.Item)
		}
	}
	if loc != "" {
		parts = append(parts, loc)
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("found %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
