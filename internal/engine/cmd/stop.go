package cmd

import (
	"errors"

	"github.com/pica-engine/pica/internal/engine/context"
	"github.com/pica-engine/pica/internal/uci"
)

// NewStop builds the `stop` command: stop calculating as soon as
// possible.
func NewStop(engine *context.Engine) uci.Command {
	return uci.Command{
		Name: "stop",
		Run: func(*uci.Interaction, []string) error {
			if !engine.Searching() {
				return errors.New("stop: no search in progress")
			}
			engine.Searcher.Stop()
			return nil
		},
	}
}
