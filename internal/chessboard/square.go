// Package chessboard adapts github.com/notnil/chess's mutable, game-
// centric API into the immutable board contract the rest of this engine
// is written against (see SPEC_FULL.md §6.2). Nothing outside this
// package should import github.com/notnil/chess directly.
package chessboard

import (
	"fmt"

	"github.com/notnil/chess"
)

// Square is a board square in little-endian rank-file order: A1 is 0,
// B1 is 1, ..., H1 is 7, A2 is 8, ..., H8 is 63. Mirroring a square
// vertically (as the tapered evaluator does for Black's piece-square
// lookups) is therefore a plain sq^56.
type Square int8

// NoSquare is the sentinel returned where a square is not applicable.
const NoSquare Square = -1

// File returns the file (0 = a, ... 7 = h) of the square.
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the rank (0 = rank 1, ... 7 = rank 8) of the square.
func (sq Square) Rank() int { return int(sq) >> 3 }

// String renders the square in algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.File(), sq.Rank()+1)
}

// squareOf is a rank-major table of the library's square constants,
// indexed the same way as Square so that conversion is a plain lookup
// in both directions.
var squareOf = [64]chess.Square{
	chess.A1, chess.B1, chess.C1, chess.D1, chess.E1, chess.F1, chess.G1, chess.H1,
	chess.A2, chess.B2, chess.C2, chess.D2, chess.E2, chess.F2, chess.G2, chess.H2,
	chess.A3, chess.B3, chess.C3, chess.D3, chess.E3, chess.F3, chess.G3, chess.H3,
	chess.A4, chess.B4, chess.C4, chess.D4, chess.E4, chess.F4, chess.G4, chess.H4,
	chess.A5, chess.B5, chess.C5, chess.D5, chess.E5, chess.F5, chess.G5, chess.H5,
	chess.A6, chess.B6, chess.C6, chess.D6, chess.E6, chess.F6, chess.G6, chess.H6,
	chess.A7, chess.B7, chess.C7, chess.D7, chess.E7, chess.F7, chess.G7, chess.H7,
	chess.A8, chess.B8, chess.C8, chess.D8, chess.E8, chess.F8, chess.G8, chess.H8,
}

var squareIndex = func() map[chess.Square]Square {
	m := make(map[chess.Square]Square, 64)
	for i, sq := range squareOf {
		m[sq] = Square(i)
	}
	return m
}()

func (sq Square) lib() chess.Square {
	return squareOf[sq]
}

func fromLib(sq chess.Square) Square {
	return squareIndex[sq]
}
