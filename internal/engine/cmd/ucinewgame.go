package cmd

import (
	"github.com/pica-engine/pica/internal/chessboard"
	"github.com/pica-engine/pica/internal/engine/context"
	"github.com/pica-engine/pica/internal/history"
	"github.com/pica-engine/pica/internal/uci"
)

// NewUciNewGame builds the `ucinewgame` command.
//
// Sent when the next search will be from a different game. The board
// resets to the starting position, the repetition history resets, and
// the transposition table is cleared so stale entries from the previous
// game are never consulted.
func NewUciNewGame(engine *context.Engine) uci.Command {
	return uci.Command{
		Name: "ucinewgame",
		Run: func(*uci.Interaction, []string) error {
			engine.Board = chessboard.StartPos()
			engine.History = history.New()
			engine.Searcher.TT.Clear()
			return nil
		},
	}
}
