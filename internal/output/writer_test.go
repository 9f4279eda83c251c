package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/search"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

// TestGameWriter_Interface verifies that writers implement the interface
func TestGameWriter_Interface(t *testing.T) {
	var buf bytes.Buffer

	var _ GameWriter = NewTextWriter(&buf, config.NewOutputConfig())
	var _ GameWriter = NewJSONWriter(&buf)
}

func TestNewGameWriter(t *testing.T) {
	cfg := config.NewOutputConfig()
	if _, ok := NewGameWriter(&bytes.Buffer{}, cfg).(*TextWriter); !ok {
		t.Error("NewGameWriter() without JSON should give a *TextWriter")
	}
	cfg.JSONFormat = true
	if _, ok := NewGameWriter(&bytes.Buffer{}, cfg).(*JSONWriter); !ok {
		t.Error("NewGameWriter() with JSON should give a *JSONWriter")
	}
}

// TestTextWriter_WriteGame verifies the text writer outputs the move list
func TestTextWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, config.NewOutputConfig())

	if err := writer.WriteGame(playedGame(t, chess.Black, "e2e4", "e7e5")); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	testutil.AssertNoError(t, writer.Flush())
	testutil.AssertNoError(t, writer.Close())

	testutil.AssertContains(t, buf.String(), "1. e2e4 e7e5 *")
}

// TestJSONWriter_WriteGame verifies the JSON writer batches games
func TestJSONWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)

	testutil.AssertNoError(t, writer.WriteGame(playedGame(t, chess.Black, "e2e4")))
	testutil.AssertNoError(t, writer.WriteGame(playedGame(t, chess.Black, "d2d4", "d7d5")))
	if buf.Len() != 0 {
		t.Fatal("batch writer wrote before Flush")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Games) != 2 {
		t.Fatalf("got %d games, want 2", len(out.Games))
	}
	testutil.AssertEqual(t, out.Games[0].PlyCount, 1)
	testutil.AssertEqual(t, out.Games[1].Moves[1].Notation, "d7d5")

	// Flush with nothing pending writes nothing.
	buf.Reset()
	testutil.AssertNoError(t, writer.Flush())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestGameToJSON(t *testing.T) {
	g := playedGame(t, chess.Black, "e2e4", "d7d5", "e4d5")
	jg := GameToJSON(g)

	testutil.AssertEqual(t, jg.Top, "black")
	testutil.AssertEqual(t, jg.ToMove, "black")
	testutil.AssertEqual(t, jg.Status, "ongoing")
	testutil.AssertEqual(t, jg.Result, "*")
	testutil.AssertEqual(t, jg.PlyCount, 3)
	testutil.AssertEqual(t, jg.StartFEN, engine.InitialFEN)
	testutil.AssertEqual(t, jg.FEN, engine.BoardToFEN(g.Board()))
	testutil.AssertEqual(t, jg.Board[0], "rnbqkbnr")
	testutil.AssertEqual(t, jg.Board[3], "...P....")

	want := JSONMove{Color: "white", Notation: "e4d5", From: "e4", To: "d5", Piece: "pawn", Captured: "pawn"}
	if diff := cmp.Diff(want, jg.Moves[2]); diff != "" {
		t.Errorf("capture mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveToJSON(t *testing.T) {
	board := testutil.NewBoard(t, chess.Black, "Ke1", "Rh1", "ke8", "Pb7")
	rules := engine.NewRules(true, 1)

	castle := engine.CastleMove(board, chess.White, chess.Kingside)
	testutil.AssertEqual(t, MoveToJSON(board, castle).Castle, "kingside")
	testutil.AssertEqual(t, MoveToJSON(board, castle).Notation, "e1g1")

	promo, ok := rules.FindMove(board, testutil.Square(t, board, "b7"), testutil.Square(t, board, "b8"), chess.Knight)
	if !ok {
		t.Fatal("promotion to knight not found")
	}
	jm := MoveToJSON(board, promo)
	testutil.AssertEqual(t, jm.Promotion, "knight")
	testutil.AssertEqual(t, jm.Notation, "b7b8n")
	testutil.AssertEqual(t, jm.Captured, "")
}

func TestSearchToJSON(t *testing.T) {
	board := testutil.NewBoard(t, chess.Black, "Ke1", "Rd1", "ke8", "qd5")
	cfg := config.NewConfig()
	cfg.Search.Depth = 1
	cfg.Verbosity = 0

	s := search.NewSearcher(cfg)
	res, err := s.SelectMove(context.Background(), board, chess.White)
	if err != nil {
		t.Fatalf("SelectMove() error: %v", err)
	}

	js := SearchToJSON(board, res)
	testutil.AssertEqual(t, js.Move.Notation, "d1d5")
	testutil.AssertEqual(t, js.Move.Captured, "queen")
	testutil.AssertEqual(t, len(js.Candidates), len(res.Moves))

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteJSON(&buf, js))
	if !strings.Contains(buf.String(), `"notation": "d1d5"`) {
		t.Errorf("WriteJSON() missing move:\n%s", buf.String())
	}
}
