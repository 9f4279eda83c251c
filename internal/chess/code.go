package chess

// Code is the bit-packed integer form of a piece used by board files and
// saved games: one colour bit, one kind bit and, for knights only, one
// handedness bit. Zero is an empty square.
type Code int

// Bit flags making up a Code.
const (
	LeftBit   Code = 1 << 0
	RightBit  Code = 1 << 1
	PawnBit   Code = 1 << 2
	RookBit   Code = 1 << 3
	KnightBit Code = 1 << 4
	BishopBit Code = 1 << 5
	QueenBit  Code = 1 << 6
	KingBit   Code = 1 << 7
	WhiteBit  Code = 1 << 8
	BlackBit  Code = 1 << 9
)

var kindBits = [NumKinds]Code{0, PawnBit, RookBit, KnightBit, BishopBit, QueenBit, KingBit}

// Code packs the piece into its integer form.
func (p Piece) Code() Code {
	if p.IsEmpty() {
		return 0
	}
	c := kindBits[p.kind]
	if p.colour == White {
		c |= WhiteBit
	} else {
		c |= BlackBit
	}
	switch p.hand {
	case Left:
		c |= LeftBit
	case Right:
		c |= RightBit
	}
	return c
}

// PieceFromCode unpacks an integer code. It returns false for any value that
// is not 0 or a valid piece code.
func PieceFromCode(c Code) (Piece, bool) {
	if c == 0 {
		return Empty, true
	}

	var colour Colour
	switch c & (WhiteBit | BlackBit) {
	case WhiteBit:
		colour = White
	case BlackBit:
		colour = Black
	default:
		return Empty, false
	}

	rest := c &^ (WhiteBit | BlackBit)
	hand := NoHand
	switch rest & (LeftBit | RightBit) {
	case 0:
	case LeftBit:
		hand = Left
	case RightBit:
		hand = Right
	default:
		return Empty, false
	}
	rest &^= LeftBit | RightBit

	for kind := Pawn; kind < NumKinds; kind++ {
		if rest != kindBits[kind] {
			continue
		}
		if (kind == Knight) != (hand != NoHand) {
			return Empty, false
		}
		return Piece{colour: colour, kind: kind, hand: hand}, true
	}
	return Empty, false
}

// ValidCodes returns every non-zero code accepted by PieceFromCode.
func ValidCodes() []Code {
	codes := make([]Code, 0, 14)
	for _, colour := range []Colour{White, Black} {
		for kind := Pawn; kind < NumKinds; kind++ {
			if kind == Knight {
				codes = append(codes, NewKnight(colour, Left).Code(), NewKnight(colour, Right).Code())
				continue
			}
			codes = append(codes, NewPiece(colour, kind).Code())
		}
	}
	return codes
}
