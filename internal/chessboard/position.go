package chessboard

import (
	"hash/fnv"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// Status is the outcome of a position, matching spec.md §3's three-valued
// contract. Draws by rule (threefold, fifty-move, insufficient material)
// are deliberately folded into Ongoing: the board contract only knows
// about terminal positions with zero legal replies, and repetition is the
// search's own concern via internal/history, not the board's (see
// DESIGN.md).
type Status int8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// Position is an immutable chess position. Values are safe to copy and
// to share between goroutines; MakeMove never mutates the receiver.
type Position struct {
	game   *chess.Game
	pieces [64]Piece // cached snapshot, built once at construction
}

// StartPos returns the standard starting position.
func StartPos() Position {
	return newPosition(chess.NewGame())
}

// FromFEN parses a FEN string into a Position.
func FromFEN(fen string) (Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return Position{}, errors.Wrapf(err, "chessboard: parse fen %q", fen)
	}
	return newPosition(chess.NewGame(opt)), nil
}

func newPosition(game *chess.Game) Position {
	pos := Position{game: game}
	board := game.Position().Board()
	for i := Square(0); i < 64; i++ {
		p := board.Piece(i.lib())
		if p == chess.NoPiece {
			continue
		}
		pos.pieces[i] = Piece{Color: colorFromLib(p.Color()), Type: pieceTypeFromLib(p.Type())}
	}
	return pos
}

// Status reports whether the position is ongoing, checkmate or
// stalemate.
func (pos Position) Status() Status {
	switch pos.game.Method() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	default:
		return Ongoing
	}
}

// SideToMove reports the color to move.
func (pos Position) SideToMove() Color {
	return colorFromLib(pos.game.Position().Turn())
}

// Hash returns a deterministic 64-bit digest of the position, used as the
// transposition table key. It is derived from the position's FEN rather
// than an incrementally maintained Zobrist hash, since the wrapped
// library does not expose one; see DESIGN.md for the tradeoff.
func (pos Position) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(pos.FEN()))
	return h.Sum64()
}

// InCheck reports whether the side to move is in check, i.e. whether
// spec.md's "checkers" bitboard would be non-empty.
func (pos Position) InCheck() bool {
	return pos.game.Position().InCheck()
}

// PieceOn returns the piece on sq, if any.
func (pos Position) PieceOn(sq Square) (Piece, bool) {
	p := pos.pieces[sq]
	return p, p.Type != NoPieceType
}

// ColorOn returns the color of the piece on sq, if any.
func (pos Position) ColorOn(sq Square) (Color, bool) {
	p, ok := pos.PieceOn(sq)
	return p.Color, ok
}

// PieceBitboard returns a bitboard of every square occupied by a piece of
// the given type, regardless of color.
func (pos Position) PieceBitboard(pt PieceType) uint64 {
	var bb uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := pos.pieces[sq]; p.Type == pt {
			bb |= 1 << uint(sq)
		}
	}
	return bb
}

// ColorBitboard returns a bitboard of every square occupied by a piece of
// the given color.
func (pos Position) ColorBitboard(c Color) uint64 {
	var bb uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := pos.pieces[sq]; p.Type != NoPieceType && p.Color == c {
			bb |= 1 << uint(sq)
		}
	}
	return bb
}

// FEN renders the position as a FEN string.
func (pos Position) FEN() string {
	return pos.game.Position().String()
}

// LegalMoves returns every legal move in the position, exactly once
// each, matching MoveGen::new_legal's contract.
func (pos Position) LegalMoves() []Move {
	libMoves := pos.game.ValidMoves()
	moves := make([]Move, len(libMoves))
	for i, m := range libMoves {
		moves[i] = moveFromLib(m)
	}
	return moves
}

// MakeMove returns a new Position reached by playing m. The receiver is
// left untouched: the underlying library's Game is mutable, so this
// builds a fresh Game from the current FEN and replays m onto it, giving
// the value semantics the search relies on to branch freely across
// sibling recursive calls.
func (pos Position) MakeMove(m Move) (Position, error) {
	opt, err := chess.FEN(pos.FEN())
	if err != nil {
		return Position{}, errors.Wrap(err, "chessboard: make move")
	}
	game := chess.NewGame(opt)

	lm, err := libMove(game.Position(), m)
	if err != nil {
		return Position{}, err
	}
	if err := game.Move(lm); err != nil {
		return Position{}, errors.Wrapf(err, "chessboard: apply move %s", m)
	}

	return newPosition(game), nil
}
