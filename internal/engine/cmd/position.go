package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pica-engine/pica/internal/chessboard"
	"github.com/pica-engine/pica/internal/engine/context"
	"github.com/pica-engine/pica/internal/history"
	"github.com/pica-engine/pica/internal/uci"
)

// NewPosition builds the `position [fen <fenstring> | startpos] [moves
// <move>...]` command: set up the given base position, then play the
// given moves on top of it, rebuilding the repetition history as it
// goes.
func NewPosition(engine *context.Engine) uci.Command {
	return uci.Command{
		Name: "position",
		Run: func(_ *uci.Interaction, args []string) error {
			board, hist, err := parsePosition(args)
			if err != nil {
				return err
			}

			engine.Board = board
			engine.History = hist
			return nil
		},
	}
}

// parsePosition reads "startpos" or "fen <6 fields>", then an optional
// "moves <move>..." clause, in long algebraic notation.
func parsePosition(args []string) (chessboard.Position, history.Ring, error) {
	var pos chessboard.Position
	var rest []string

	if len(args) == 0 {
		return pos, history.Ring{}, errors.New("position: no startpos or fen given")
	}

	switch args[0] {
	case "startpos":
		pos = chessboard.StartPos()
		rest = args[1:]

	case "fen":
		fenFields, moveArgs, err := splitFENFromMoves(args[1:])
		if err != nil {
			return pos, history.Ring{}, err
		}

		pos, err = chessboard.FromFEN(strings.Join(fenFields, " "))
		if err != nil {
			return pos, history.Ring{}, err
		}
		rest = moveArgs

	default:
		return pos, history.Ring{}, fmt.Errorf("position: unexpected token %q", args[0])
	}

	hist := history.New()
	hist.Push(pos.Hash())

	if len(rest) == 0 {
		return pos, hist, nil
	}
	if rest[0] != "moves" {
		return pos, hist, fmt.Errorf("position: unexpected token %q", rest[0])
	}

	for _, m := range rest[1:] {
		next, err := applyLongAlgebraic(pos, m)
		if err != nil {
			return pos, hist, err
		}
		pos = next
		hist.Push(pos.Hash())
	}

	return pos, hist, nil
}

// splitFENFromMoves takes the words following "fen" and separates the
// FEN's 6 fields from a trailing "moves m1 m2 ..." clause.
func splitFENFromMoves(args []string) (fen, rest []string, err error) {
	for i, a := range args {
		if a == "moves" {
			if i != 6 {
				return nil, nil, fmt.Errorf("position: fen must have 6 fields, got %d", i)
			}
			return args[:i], args[i:], nil
		}
	}
	if len(args) < 6 {
		return nil, nil, fmt.Errorf("position: fen must have 6 fields, got %d", len(args))
	}
	return args[:6], args[6:], nil
}

// applyLongAlgebraic finds the legal move matching long algebraic
// notation (e.g. "e2e4", "e7e8q") and plays it.
func applyLongAlgebraic(pos chessboard.Position, notation string) (chessboard.Position, error) {
	for _, m := range pos.LegalMoves() {
		if m.String() == notation {
			return pos.MakeMove(m)
		}
	}
	return pos, errors.New("position: illegal or malformed move " + notation)
}
