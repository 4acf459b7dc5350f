package chessboard

import "github.com/notnil/chess"

// Color is the side to move or the owner of a piece.
type Color int8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return 1 - c
}

func (c Color) lib() chess.Color {
	if c == White {
		return chess.White
	}
	return chess.Black
}

func colorFromLib(c chess.Color) Color {
	if c == chess.Black {
		return Black
	}
	return White
}

// PieceType identifies a kind of piece, independent of color. The zero
// value, NoPieceType, represents an empty square or "no promotion".
// Values are deliberately ordered to match the phase-weight and
// piece-square table indexing used throughout internal/eval.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// NumPieceTypes is the number of real (non-empty) piece types.
const NumPieceTypes = 6

func (pt PieceType) lib() chess.PieceType {
	switch pt {
	case Pawn:
		return chess.Pawn
	case Knight:
		return chess.Knight
	case Bishop:
		return chess.Bishop
	case Rook:
		return chess.Rook
	case Queen:
		return chess.Queen
	case King:
		return chess.King
	default:
		return chess.NoPieceType
	}
}

func pieceTypeFromLib(pt chess.PieceType) PieceType {
	switch pt {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	default:
		return NoPieceType
	}
}

// Piece is a (Color, PieceType) pair occupying a square.
type Piece struct {
	Color Color
	Type  PieceType
}
