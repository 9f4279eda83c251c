package boardfile

import (
	"bytes"
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

// kingsOnly is a board with the white king on (4,7) and the black king on (4,0).
const kingsOnly = `0, 0, 0, 0, 0, 0, 0, 0
0, 0, 0, 0, 0, 0, 0, 0
0, 0, 0, 0, 0, 0, 0, 0
0, 0, 0, 0, 0, 0, 0, 0
640, 0, 0, 0, 0, 0, 0, 384
0, 0, 0, 0, 0, 0, 0, 0
0, 0, 0, 0, 0, 0, 0, 0
0, 0, 0, 0, 0, 0, 0, 0
`

func TestParseKingsOnly(t *testing.T) {
	board, err := Parse(strings.NewReader(kingsOnly), "kings.txt", chess.Black)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := board.At(chess.Sq(4, 7)); !got.Is(chess.White, chess.King) {
		t.Errorf("(4,7) = %v, want white king", got)
	}
	if got := board.At(chess.Sq(4, 0)); !got.Is(chess.Black, chess.King) {
		t.Errorf("(4,0) = %v, want black king", got)
	}
	if board.ToMove != chess.White {
		t.Errorf("ToMove = %v, want White", board.ToMove)
	}

	// Kings at home without rooks: only the rook flags are set.
	want := chess.SideRights{KingsideRookMoved: true, QueensideRookMoved: true}
	testutil.AssertEqual(t, board.Rights[chess.White], want, "white rights")
	testutil.AssertEqual(t, board.Rights[chess.Black], want, "black rights")
}

func TestFormatRoundTrip(t *testing.T) {
	for _, top := range []chess.Colour{chess.Black, chess.White} {
		board := chess.NewInitialBoard(top)

		var buf bytes.Buffer
		if err := Write(&buf, board); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
		got, err := Parse(&buf, "", top)
		if err != nil {
			t.Fatalf("Parse(Format()) error: %v", err)
		}
		if diff := cmp.Diff(board, got); diff != "" {
			t.Errorf("top %v: round trip mismatch (-want +got):\n%s", top, diff)
		}
	}
}

func TestParseLineEndings(t *testing.T) {
	tests := map[string]string{
		"no trailing newline": strings.TrimSuffix(kingsOnly, "\n"),
		"crlf":                strings.ReplaceAll(kingsOnly, "\n", "\r\n"),
		"no spaces":           strings.ReplaceAll(kingsOnly, ", ", ","),
		"extra spaces":        strings.ReplaceAll(kingsOnly, ", ", ",   "),
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := Parse(strings.NewReader(text), name, chess.Black); err != nil {
				t.Errorf("Parse() error: %v", err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(kingsOnly, "\n"), "\n")
	with := func(line int, text string) string {
		out := append([]string(nil), lines...)
		out[line] = text
		return strings.Join(out, "\n") + "\n"
	}

	tests := []struct {
		name     string
		input    string
		wantLine int
		wantItem int
	}{
		{"empty", "", 0, 0},
		{"seven lines", strings.Join(lines[:7], "\n"), 0, 0},
		{"nine lines", kingsOnly + "0, 0, 0, 0, 0, 0, 0, 0\n", 0, 0},
		{"seven items", with(2, "0, 0, 0, 0, 0, 0, 0"), 3, 0},
		{"nine items", with(2, "0, 0, 0, 0, 0, 0, 0, 0, 0"), 3, 0},
		{"not an integer", with(1, "0, 0, x, 0, 0, 0, 0, 0"), 2, 3},
		{"empty item", with(1, "0, 0, 0, , 0, 0, 0, 0"), 2, 4},
		{"unknown bits", with(0, "3, 0, 0, 0, 0, 0, 0, 0"), 1, 1},
		{"two colours", with(0, "0, 900, 0, 0, 0, 0, 0, 0"), 1, 2},
		{"knight without hand", with(0, "0, 0, 272, 0, 0, 0, 0, 0"), 1, 3},
		{"rook with hand", with(0, "0, 0, 0, 265, 0, 0, 0, 0"), 1, 4},
		{"negative", with(0, "0, 0, 0, 0, -4, 0, 0, 0"), 1, 5},
		{"missing white king", with(4, "640, 0, 0, 0, 0, 0, 0, 0"), 0, 0},
		{"two black kings", with(0, "640, 0, 0, 0, 0, 0, 0, 0"), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(strings.NewReader(tt.input), "bad.txt", chess.Black)
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			testutil.AssertErrorIs(t, err, errors.ErrMalformedBoard)

			var perr *errors.ParseError
			if !stderrors.As(err, &perr) {
				t.Fatalf("Parse() error = %T, want *errors.ParseError", err)
			}
			if perr.File != "bad.txt" {
				t.Errorf("File = %q, want bad.txt", perr.File)
			}
			if perr.Line != tt.wantLine || perr.Item != tt.wantItem {
				t.Errorf("location = line %d item %d, want line %d item %d",
					perr.Line, perr.Item, tt.wantLine, tt.wantItem)
			}
		})
	}
}

func TestParseKnightHandedness(t *testing.T) {
	// White knights of both hands next to the kings.
	input := strings.Replace(kingsOnly, "640, 0, 0, 0, 0, 0, 0, 384", "640, 0, 0, 0, 0, 273, 274, 384", 1)
	board, err := Parse(strings.NewReader(input), "", chess.Black)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	testutil.AssertEqual(t, board.At(chess.Sq(4, 5)), chess.NewKnight(chess.White, chess.Left))
	testutil.AssertEqual(t, board.At(chess.Sq(4, 6)), chess.NewKnight(chess.White, chess.Right))

	if got := Format(board); got != input {
		t.Errorf("Format() =\n%s\nwant\n%s", got, input)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	board := chess.NewInitialBoard(chess.Black)

	if err := Save(path, board); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path, chess.Black)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(board, got); diff != "" {
		t.Errorf("Load(Save()) mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), chess.Black); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}
