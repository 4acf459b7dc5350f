package chessboard

import (
	"fmt"

	"github.com/notnil/chess"
)

// Move is a (source, destination, optional promotion) triple. Equality
// is structural, matching spec.md's data model.
type Move struct {
	From, To Square
	Promo    PieceType
}

// Null is the sentinel move reported when no legal move exists at the
// root (spec.md §7, "No legal move at root").
var Null = Move{From: NoSquare, To: NoSquare}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m == Null
}

// String renders the move in long algebraic (UCI) notation, e.g. "e2e4"
// or "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	switch m.Promo {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}

func moveFromLib(m *chess.Move) Move {
	return Move{
		From:  fromLib(m.S1()),
		To:    fromLib(m.S2()),
		Promo: pieceTypeFromLib(m.Promo()),
	}
}

// libMove finds the *chess.Move among the position's legal moves that
// corresponds to m. It is how this package bridges its value-typed Move
// back into github.com/notnil/chess's move representation without
// needing a public move constructor.
func libMove(pos *chess.Position, m Move) (*chess.Move, error) {
	for _, lm := range pos.ValidMoves() {
		if fromLib(lm.S1()) == m.From && fromLib(lm.S2()) == m.To && pieceTypeFromLib(lm.Promo()) == m.Promo {
			return lm, nil
		}
	}
	return nil, fmt.Errorf("chessboard: %s is not a legal move in this position", m)
}
