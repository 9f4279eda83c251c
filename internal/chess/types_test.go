package chess

import (
	"testing"
)

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}

	tests := []struct {
		in     string
		want   Colour
		wantOK bool
	}{
		{"white", White, true},
		{"W", White, true},
		{"Black", Black, true},
		{"b", Black, true},
		{"red", Black, false},
		{"", Black, false},
	}
	for _, tt := range tests {
		got, ok := ParseColour(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseColour(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPiece(t *testing.T) {
	tests := []struct {
		name   string
		piece  Piece
		colour Colour
		kind   Kind
		hand   Handedness
		str    string
		letter byte
	}{
		{"empty", Empty, Black, NoKind, NoHand, "empty", '.'},
		{"white king", W(King), White, King, NoHand, "white-king", 'K'},
		{"black pawn", B(Pawn), Black, Pawn, NoHand, "black-pawn", 'p'},
		{"default knight", W(Knight), White, Knight, Left, "white-knight-left", 'N'},
		{"right knight", NewKnight(Black, Right), Black, Knight, Right, "black-knight-right", 'n'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.piece
			if p.Colour() != tt.colour || p.Kind() != tt.kind || p.Hand() != tt.hand {
				t.Errorf("piece = (%v, %v, %v), want (%v, %v, %v)",
					p.Colour(), p.Kind(), p.Hand(), tt.colour, tt.kind, tt.hand)
			}
			if got := p.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := p.Letter(); got != tt.letter {
				t.Errorf("Letter() = %c, want %c", got, tt.letter)
			}
			if got := p.IsEmpty(); got != (tt.kind == NoKind) {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.kind == NoKind)
			}
		})
	}
}

func TestPiece_Is(t *testing.T) {
	left, right := NewKnight(White, Left), NewKnight(White, Right)

	if !right.Is(White, Knight) {
		t.Error("Is() should ignore handedness")
	}
	if left.Equal(right) {
		t.Error("Equal() should compare handedness")
	}
	if Empty.Is(Black, NoKind) {
		t.Error("Empty.Is(Black, NoKind) = true, want false")
	}
	if Empty.IsColour(Black) {
		t.Error("Empty.IsColour(Black) = true, want false")
	}
	if !B(Rook).IsColour(Black) || B(Rook).IsColour(White) {
		t.Error("IsColour() mismatch for black rook")
	}
}

func TestNewPiece_Panics(t *testing.T) {
	tests := []struct {
		name string
		call func()
	}{
		{"no kind", func() { NewPiece(White, NoKind) }},
		{"kind out of range", func() { NewPiece(White, NumKinds) }},
		{"bad colour", func() { NewPiece(Colour(5), Pawn) }},
		{"knight without hand", func() { NewKnight(White, NoHand) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.call()
		})
	}
}
