// Package hashing provides position hashing and repetition counting.
package hashing

import (
	"golang.org/x/exp/rand"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// zobristSeed fixes the key tables so hashes are stable across runs and can
// be stored.
const zobristSeed = 0x5eed_c4e55

var (
	pieceKeys  [2][chess.NumKinds][chess.BoardSize][chess.BoardSize]uint64
	sideKey    uint64
	rightsKeys [2][3]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for k := chess.Pawn; k < chess.NumKinds; k++ {
			for x := 0; x < chess.BoardSize; x++ {
				for y := 0; y < chess.BoardSize; y++ {
					pieceKeys[c][k][x][y] = r.Uint64()
				}
			}
		}
	}
	sideKey = r.Uint64()
	for c := range rightsKeys {
		for i := range rightsKeys[c] {
			rightsKeys[c][i] = r.Uint64()
		}
	}
}

// Zobrist returns the Zobrist hash of a position: piece placement, side to
// move and castling flags. Knight handedness does not take part.
func Zobrist(board *chess.Board) uint64 {
	var h uint64
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			p := board.Squares[x][y]
			if !p.IsEmpty() {
				h ^= pieceKeys[p.Colour()][p.Kind()][x][y]
			}
		}
	}
	if board.ToMove == chess.White {
		h ^= sideKey
	}
	for c, r := range board.Rights {
		if r.KingMoved {
			h ^= rightsKeys[c][0]
		}
		if r.KingsideRookMoved {
			h ^= rightsKeys[c][1]
		}
		if r.QueensideRookMoved {
			h ^= rightsKeys[c][2]
		}
	}
	return h
}

// WeakHash is a cheap placement checksum used to confirm a Zobrist match.
func WeakHash(board *chess.Board) uint32 {
	var h uint32
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			p := board.Squares[x][y]
			if p.IsEmpty() {
				continue
			}
			h += uint32(p.Code()) * uint32(x*chess.BoardSize+y+1)
		}
	}
	return h
}
