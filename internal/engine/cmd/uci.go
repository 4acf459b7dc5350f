package cmd

import (
	"strings"

	"github.com/pica-engine/pica/internal/engine/context"
	"github.com/pica-engine/pica/internal/uci"
)

// version is the identity string reported in response to `uci`.
const version = "0.1"

// NewUci builds the `uci` command: identify the engine, declare its
// options, and acknowledge UCI mode.
//
// Tells engine to use the uci (universal chess interface); this is sent
// once as the first command after program boot. The engine must
// identify itself with `id` and report its options, then send `uciok`.
func NewUci(engine *context.Engine) uci.Command {
	return uci.Command{
		Name: "uci",
		Run: func(interaction *uci.Interaction, _ []string) error {
			interaction.Replyf("id name PiCa %s", version)
			interaction.Reply("id author the pica-engine contributors")
			if options := strings.TrimRight(engine.OptionSet.String(), "\n"); options != "" {
				interaction.Reply(options)
			}
			interaction.Reply("uciok")
			return nil
		},
	}
}
