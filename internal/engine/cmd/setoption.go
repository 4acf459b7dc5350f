package cmd

import (
	"errors"
	"strings"

	"github.com/pica-engine/pica/internal/engine/context"
	"github.com/pica-engine/pica/internal/uci"
)

// NewSetOption builds the `setoption name <id> [value <x>]` command.
//
// This is sent when the GUI wants to change an internal engine
// parameter. Only sent while the engine is waiting, never mid-search.
func NewSetOption(engine *context.Engine) uci.Command {
	return uci.Command{
		Name: "setoption",
		Run: func(_ *uci.Interaction, args []string) error {
			name, value, err := parseSetOption(args)
			if err != nil {
				return err
			}
			return engine.OptionSet.SetOption(name, value)
		},
	}
}

// parseSetOption splits `name <id> [value <x> ...]` into the option's
// name and its (possibly multi-word) value string.
func parseSetOption(args []string) (name, value string, err error) {
	if len(args) < 2 || args[0] != "name" {
		return "", "", errors.New("setoption: expected \"name <id>\"")
	}
	args = args[1:]

	for i, a := range args {
		if a == "value" {
			return strings.Join(args[:i], " "), strings.Join(args[i+1:], " "), nil
		}
	}

	return strings.Join(args, " "), "", nil
}
