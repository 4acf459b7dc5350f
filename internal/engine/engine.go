// Package engine wires the UCI protocol client to the engine's command
// implementations and option definitions.
package engine

import (
	"github.com/pica-engine/pica/internal/engine/cmd"
	"github.com/pica-engine/pica/internal/engine/context"
	"github.com/pica-engine/pica/internal/engine/options"
	"github.com/pica-engine/pica/internal/uci"
)

// NewClient builds a uci.Client wired to a fresh Engine: the starting
// position, a transposition table sized per cfgHashMB, a default
// per-game time budget of cfgBoardTimeMS, and every command and option
// this engine supports.
func NewClient(cfgHashMB, cfgBoardTimeMS int) uci.Client {
	client := uci.NewClient()

	engine := context.NewEngine(cfgHashMB, cfgBoardTimeMS)
	engine.Client = client

	engine.OptionSet = uci.NewOptionSet()
	engine.OptionSet.AddSpin(options.NewHash(engine, cfgHashMB))
	engine.OptionSet.AddCheck(options.NewInfo(engine))
	_ = engine.OptionSet.SetDefaults()

	client.AddCommand(cmd.NewUci(engine))
	client.AddCommand(cmd.NewUciNewGame(engine))
	client.AddCommand(cmd.NewSetOption(engine))
	client.AddCommand(cmd.NewPosition(engine))
	client.AddCommand(cmd.NewGo(engine))
	client.AddCommand(cmd.NewStop(engine))

	return client
}
