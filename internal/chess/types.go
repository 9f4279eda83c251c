// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white"/"black" (any case, or w/b) to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "white", "White", "WHITE", "w", "W":
		return White, true
	case "black", "Black", "BLACK", "b", "B":
		return Black, true
	}
	return Black, false
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [4]Kind{Rook, Knight, Bishop, Queen}

// Handedness distinguishes the two knights of a side. It is cosmetic and
// never affects legality.
type Handedness int

const (
	NoHand Handedness = iota
	Left
	Right
)

// String returns the string representation of a handedness.
func (h Handedness) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return ""
}

// Piece is a coloured piece. The zero value is an empty square.
//
// Fields are unexported so that only valid combinations can be built:
// exactly one colour and kind, and a handedness only for knights.
type Piece struct {
	colour Colour
	kind   Kind
	hand   Handedness
}

// Empty is the content of an unoccupied square.
var Empty Piece

// NewPiece creates a piece. Knights default to the Left handedness.
// It panics on NoKind or an out-of-range kind.
func NewPiece(colour Colour, kind Kind) Piece {
	if kind <= NoKind || kind >= NumKinds {
		panic(fmt.Sprintf("chess: invalid piece kind %d", kind))
	}
	if colour != White && colour != Black {
		panic(fmt.Sprintf("chess: invalid colour %d", colour))
	}
	p := Piece{colour: colour, kind: kind}
	if kind == Knight {
		p.hand = Left
	}
	return p
}

// NewKnight creates a knight with the given handedness.
func NewKnight(colour Colour, hand Handedness) Piece {
	if hand != Left && hand != Right {
		panic(fmt.Sprintf("chess: invalid knight handedness %d", hand))
	}
	p := NewPiece(colour, Knight)
	p.hand = hand
	return p
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// Colour returns the piece colour. Meaningless for Empty.
func (p Piece) Colour() Colour { return p.colour }

// Kind returns the piece kind, NoKind for Empty.
func (p Piece) Kind() Kind { return p.kind }

// Hand returns the knight handedness, NoHand for every other kind.
func (p Piece) Hand() Handedness { return p.hand }

// IsEmpty reports whether p is an empty square.
func (p Piece) IsEmpty() bool { return p.kind == NoKind }

// Is reports whether p has the given colour and kind, ignoring handedness.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.kind == kind && kind != NoKind && p.colour == colour
}

// IsColour reports whether p is a non-empty piece of the given colour.
func (p Piece) IsColour(colour Colour) bool {
	return p.kind != NoKind && p.colour == colour
}

// Equal reports whether two pieces are identical, handedness included.
func (p Piece) Equal(o Piece) bool { return p == o }

// String returns names such as "white-knight-left" or "empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	colour := "black"
	if p.colour == White {
		colour = "white"
	}
	s := colour + "-" + lowerKind[p.kind]
	if p.hand != NoHand {
		s += "-" + p.hand.String()
	}
	return s
}

var lowerKind = [NumKinds]string{"", "pawn", "rook", "knight", "bishop", "queen", "king"}

// Letter returns the FEN letter: uppercase for White, lowercase for Black,
// '.' for Empty.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.kind.Letter()
	if p.colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}
