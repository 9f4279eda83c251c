package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// NewBoardFromFEN creates a board from a FEN string with top as the colour
// on top. The en passant field is accepted and ignored; clocks are ignored.
func NewBoardFromFEN(fen string, top chess.Colour) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard(top)

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected 8 ranks, found %d: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := byte('8' - i)
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := ConvertFENCharToKind(byte(c))
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("rank %c too long: %w", rank, errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				sq, _ := board.ParseSquare(string([]byte{byte('a' + file), rank}))
				board.Set(sq, chess.NewPiece(colour, kind))
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %c has %d files: %w", rank, file, errors.ErrInvalidFEN)
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(colour, chess.King); n != 1 {
			return fmt.Errorf("%d %s kings: %w", n, colour, errors.ErrInvalidFEN)
		}
	}
	assignKnightHands(board)
	return nil
}

// assignKnightHands marks knights on the queenside half Left and the rest
// Right, matching the starting position.
func assignKnightHands(board *chess.Board) {
	queenside := board.QueensideRookFile()
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			piece := board.Squares[x][y]
			if piece.Kind() != chess.Knight {
				continue
			}
			hand := chess.Right
			if abs(x-queenside) < chess.BoardSize/2 {
				hand = chess.Left
			}
			board.Squares[x][y] = chess.NewKnight(piece.Colour(), hand)
		}
	}
}

// parseSideToMove parses the side to move field of a FEN string.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		board.ToMove = chess.White
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights translates the castling field into moved flags. A
// missing letter marks the rook as moved; pieces away from home are marked
// as moved whatever the field says.
func parseCastlingRights(board *chess.Board, parts []string) error {
	field := "-"
	if len(parts) >= 3 {
		field = parts[2]
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		board.Rights[colour] = chess.SideRights{KingsideRookMoved: true, QueensideRookMoved: true}
	}
	if field != "-" {
		for _, c := range field {
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			switch unicode.ToUpper(c) {
			case 'K':
				board.Rights[colour].KingsideRookMoved = false
			case 'Q':
				board.Rights[colour].QueensideRookMoved = false
			default:
				return fmt.Errorf("invalid castling field %q: %w", field, errors.ErrInvalidFEN)
			}
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		r := &board.Rights[colour]
		if r.KingsideRookMoved && r.QueensideRookMoved {
			r.KingMoved = true
		}
	}
	board.DeriveCastlingRights()
	return nil
}

// BoardToFEN converts a board to a FEN string. Castling letters are written
// for every side whose king and rook flags are clear.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	for rank := byte('8'); rank >= '1'; rank-- {
		empty := 0
		for file := byte('a'); file <= 'h'; file++ {
			sq, _ := board.ParseSquare(string([]byte{file, rank}))
			piece := board.At(sq)
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castling := castlingField(board)
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)
	sb.WriteString(" - 0 1")

	return sb.String()
}

func castlingField(board *chess.Board) string {
	var sb strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		r := board.Rights[colour]
		if r.KingMoved {
			continue
		}
		k, q := byte('K'), byte('Q')
		if colour == chess.Black {
			k, q = 'k', 'q'
		}
		if !r.KingsideRookMoved && castlingRightsPieces(board, colour, chess.Kingside) {
			sb.WriteByte(k)
		}
		if !r.QueensideRookMoved && castlingRightsPieces(board, colour, chess.Queenside) {
			sb.WriteByte(q)
		}
	}
	return sb.String()
}

// castlingRightsPieces reports whether king and rook stand on their home
// squares for side.
func castlingRightsPieces(board *chess.Board, colour chess.Colour, side chess.CastleSide) bool {
	geo := castleGeometryFor(board, colour, side)
	return board.At(geo.kingFrom).Is(colour, chess.King) && board.At(geo.rookFrom).Is(colour, chess.Rook)
}
