package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/search"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Top      string     `json:"top"`
	ToMove   string     `json:"toMove"`
	Status   string     `json:"status"`
	Result   string     `json:"result"`
	Reason   string     `json:"reason,omitempty"`
	PlyCount int        `json:"plyCount"`
	Moves    []JSONMove `json:"moves,omitempty"`
	Board    []string   `json:"board"`
	StartFEN string     `json:"startFEN"`
	FEN      string     `json:"fen"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Color     string `json:"color"` // "white" or "black"
	Notation  string `json:"notation"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castle    string `json:"castle,omitempty"`
}

// JSONSearch represents a search result in JSON format.
type JSONSearch struct {
	Move       JSONMove        `json:"move"`
	Score      int             `json:"score"`
	Nodes      int64           `json:"nodes"`
	Ties       int             `json:"ties"`
	Candidates []JSONCandidate `json:"candidates,omitempty"`
}

// JSONCandidate is one root move and its backed-up value.
type JSONCandidate struct {
	Move  string `json:"move"`
	Score int    `json:"score"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// WriteJSON encodes v to w with two-space indentation.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *game.Game) *JSONGame {
	board := g.Board()
	start := g.Start()
	outcome := g.Outcome()

	jg := &JSONGame{
		Top:      strings.ToLower(board.Top.String()),
		ToMove:   strings.ToLower(board.ToMove.String()),
		Status:   g.Status().String(),
		Result:   outcome.Result.String(),
		Reason:   outcome.Reason,
		Board:    boardRows(board),
		StartFEN: engine.BoardToFEN(start),
		FEN:      engine.BoardToFEN(board),
	}

	history := g.History()
	jg.PlyCount = len(history)
	jg.Moves = make([]JSONMove, len(history))
	for i, m := range history {
		jg.Moves[i] = MoveToJSON(board, m)
	}
	return jg
}

// MoveToJSON converts a move to JSON format. board supplies only the
// orientation used to name squares.
func MoveToJSON(board *chess.Board, m chess.Move) JSONMove {
	jm := JSONMove{
		Color:    colorName(m.Piece.Colour()),
		Notation: board.Notation(m),
		From:     board.SquareName(m.From),
		To:       board.SquareName(m.To),
		Piece:    pieceTypeName(m.Piece),
	}
	if m.IsCapture() {
		jm.Captured = pieceTypeName(m.Captured)
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	if m.IsCastle() {
		jm.Castle = m.Side().String()
	}
	return jm
}

// SearchToJSON converts a search result to JSON format.
func SearchToJSON(board *chess.Board, res search.Result) *JSONSearch {
	js := &JSONSearch{
		Move:  MoveToJSON(board, res.Move),
		Score: res.Score,
		Nodes: res.Nodes,
		Ties:  res.Ties,
	}
	for i, m := range res.Moves {
		js.Candidates = append(js.Candidates, JSONCandidate{Move: board.Notation(m), Score: res.Scores[i]})
	}
	return js
}

// OutputGameJSON writes a single game in JSON format.
func OutputGameJSON(w io.Writer, g *game.Game) error {
	return WriteJSON(w, GameToJSON(g))
}

// boardRows returns one string of FEN letters per rank index, top first.
func boardRows(board *chess.Board) []string {
	rows := make([]string, chess.BoardSize)
	for y := range rows {
		row := make([]byte, chess.BoardSize)
		for x := range row {
			row[x] = board.At(chess.Sq(x, y)).Letter()
		}
		rows[y] = string(row)
	}
	return rows
}

func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the lowercase kind name, e.g. "knight".
func pieceTypeName(p chess.Piece) string {
	return strings.ToLower(p.Kind().String())
}
