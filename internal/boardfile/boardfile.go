// Package boardfile reads and writes boards in the plain text format of
// piece codes: eight lines, one per file, each holding eight
// comma-separated integers, one per rank. Every integer is 0 for an empty
// square or a valid chess.Code.
package boardfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Parse reads a board from r. name labels errors and may be empty. The
// board gets top on top, White to move, and castling rights derived from
// where the kings and rooks stand.
func Parse(r io.Reader, name string, top chess.Colour) (*chess.Board, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading board %s", name)
	}
	if len(lines) != chess.BoardSize {
		return nil, &errors.ParseError{
			Err:  fmt.Errorf("want %d lines: %w", chess.BoardSize, errors.ErrMalformedBoard),
			File: name,
			Got:  fmt.Sprintf("%d lines", len(lines)),
		}
	}

	board := chess.NewBoard(top)
	for x, line := range lines {
		items := strings.Split(line, ",")
		if len(items) != chess.BoardSize {
			return nil, &errors.ParseError{
				Err:  fmt.Errorf("want %d comma-separated values: %w", chess.BoardSize, errors.ErrMalformedBoard),
				File: name,
				Line: x + 1,
				Got:  line,
			}
		}
		for y, item := range items {
			piece, err := parseItem(strings.TrimSpace(item))
			if err != nil {
				return nil, &errors.ParseError{Err: err, File: name, Line: x + 1, Item: y + 1, Got: item}
			}
			board.Squares[x][y] = piece
		}
	}

	if err := checkKings(board); err != nil {
		return nil, &errors.ParseError{Err: err, File: name}
	}
	board.DeriveCastlingRights()
	return board, nil
}

// Load reads a board file from disk.
func Load(path string, top chess.Colour) (*chess.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path, top)
}

// Format renders board in the file format. The result parses back to the
// same placement.
func Format(board *chess.Board) string {
	var sb strings.Builder
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			if y > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(int(board.Squares[x][y].Code())))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Write writes board to w in the file format.
func Write(w io.Writer, board *chess.Board) error {
	_, err := io.WriteString(w, Format(board))
	return err
}

// Save writes board to a file at path.
func Save(path string, board *chess.Board) error {
	return os.WriteFile(path, []byte(Format(board)), 0o644)
}

// readLines returns the lines of r without line terminators. A final empty
// line, as left by a trailing newline, is not counted.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

func parseItem(item string) (chess.Piece, error) {
	n, err := strconv.Atoi(item)
	if err != nil {
		return chess.Empty, fmt.Errorf("not an integer: %w", errors.ErrMalformedBoard)
	}
	piece, ok := chess.PieceFromCode(chess.Code(n))
	if !ok {
		return chess.Empty, fmt.Errorf("not a valid piece code: %w", errors.ErrMalformedBoard)
	}
	return piece, nil
}

func checkKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(colour, chess.King); n != 1 {
			return fmt.Errorf("found %d %s kings, want exactly one: %w",
				n, strings.ToLower(colour.String()), errors.ErrMalformedBoard)
		}
	}
	return nil
}
