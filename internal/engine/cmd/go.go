package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pica-engine/pica/internal/engine/context"
	"github.com/pica-engine/pica/internal/stats"
	"github.com/pica-engine/pica/internal/timemanager"
	"github.com/pica-engine/pica/internal/uci"
)

// goIntFlags are the `go` flags that take a single integer argument.
var goIntFlags = map[string]bool{
	"wtime": true, "btime": true, "winc": true, "binc": true,
	"movestogo": true, "depth": true, "nodes": true, "movetime": true,
}

// NewGo builds the `go [wtime x] [btime x] [winc x] [binc x] [movestogo
// x] [depth x] [nodes x] [movetime x] [infinite]` command: start
// searching the position set up by the last `position` command, in a
// separate goroutine so the REPL keeps accepting `stop`/`isready` while
// the search runs.
func NewGo(engine *context.Engine) uci.Command {
	return uci.Command{
		Name: "go",
		Run: func(interaction *uci.Interaction, args []string) error {
			if engine.Searching() {
				return errors.New("go: search already in progress")
			}

			limits, err := parseGoLimits(args)
			if err != nil {
				return err
			}
			limits.DefaultBoardTimeMS = engine.DefaultBoardTimeMS

			pos := engine.Board
			hist := engine.History
			tm := timemanager.New(limits, pos.SideToMove())

			engine.SetSearching(true)

			go func() {
				defer engine.SetSearching(false)

				result := engine.Searcher.Search(pos, tm, hist, func(r stats.Report) {
					interaction.Reply(r.String())
				})

				interaction.Replyf("bestmove %s", result.BestMove)
			}()

			return nil
		},
	}
}

// parseGoLimits reads go's flag words directly: each flag in
// goIntFlags takes the following word as an integer, "infinite" takes
// none. movestogo is accepted but not tracked, matching spec.md §4.5's
// fixed-depth time model.
func parseGoLimits(args []string) (timemanager.Limits, error) {
	var limits timemanager.Limits

	for i := 0; i < len(args); i++ {
		name := args[i]

		if name == "infinite" {
			limits.Infinite = true
			continue
		}

		if !goIntFlags[name] {
			return limits, fmt.Errorf("go: unexpected token %q", name)
		}

		i++
		if i >= len(args) {
			return limits, fmt.Errorf("go: %s expects a value", name)
		}

		n, err := strconv.Atoi(args[i])
		if err != nil {
			return limits, fmt.Errorf("go: %s expects an integer, got %q", name, args[i])
		}

		switch name {
		case "wtime":
			limits.WTimeMS = n
		case "btime":
			limits.BTimeMS = n
		case "winc":
			limits.WIncMS = n
		case "binc":
			limits.BIncMS = n
		case "depth":
			limits.Depth = n
		case "nodes":
			limits.Nodes = uint64(n)
		case "movetime":
			limits.MoveTimeMS = n
		case "movestogo":
			// accepted, not used: PiCa's time manager re-evaluates every
			// iteration rather than budgeting moves-to-next-control.
		}
	}

	return limits, nil
}
