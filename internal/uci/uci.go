// Package uci implements PiCa's UCI protocol surface: a stdin/stdout
// read-eval-print loop dispatching to a fixed set of GUI-to-engine
// commands (spec.md §6.1's uci/isready/ucinewgame/setoption/position/
// go/stop/quit). Unlike a general-purpose protocol library, the
// command set here is closed and small, so each command parses its own
// argument words directly instead of going through a shared flag
// grammar.
package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pica-engine/pica/internal/logx"
)

// errQuit is returned by the quit command to stop the REPL.
var errQuit = errors.New("uci: quit")

// Command is one of PiCa's UCI commands. Run receives the interaction
// (for replying to the GUI) and the command's argument words, with the
// command name itself already stripped.
type Command struct {
	Name string
	Run  func(*Interaction, []string) error
}

// Interaction carries the reply stream for a single command
// invocation.
type Interaction struct {
	stdout io.Writer
}

// Reply writes a line to the GUI, like fmt.Println.
func (i *Interaction) Reply(a ...any) {
	fmt.Fprintln(i.stdout, a...)
}

// Replyf writes a line to the GUI, like fmt.Printf with a newline
// terminator appended.
func (i *Interaction) Replyf(format string, a ...any) {
	fmt.Fprintf(i.stdout, format+"\n", a...)
}

// Client dispatches lines read from stdin to registered commands and
// writes replies to stdout.
type Client struct {
	stdin  io.Reader // GUI to Engine commands
	stdout io.Writer // Engine to GUI commands

	commands map[string]Command
}

// NewClient creates a new uci.Client listening on stdin, with the
// default isready and quit commands already registered.
func NewClient() Client {
	client := Client{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		commands: make(map[string]Command),
	}

	client.AddCommand(Command{
		Name: "isready",
		Run: func(i *Interaction, _ []string) error {
			i.Reply("readyok")
			return nil
		},
	})

	client.AddCommand(Command{
		Name: "quit",
		Run: func(*Interaction, []string) error {
			return errQuit
		},
	})

	return client
}

// AddCommand registers cmd, replacing any existing command of the same
// name.
func (c *Client) AddCommand(cmd Command) {
	c.commands[cmd.Name] = cmd
}

// Start runs a read-eval-print loop over the client's stdin until a
// read error or the quit command ends it.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			// read errors are probably fatal
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			// blank line: nothing to do
			continue
		}

		switch err := c.RunWith(args); err {
		case nil:
			// no error: continue repl

		case errQuit:
			return nil

		default:
			logx.Log.Warn().Err(err).Msg("uci: command ignored")
		}
	}
}

// Run is a convenience wrapper around RunWith for callers that already
// have the command's words split out (tests, bench tooling).
func (c *Client) Run(args ...string) error {
	return c.RunWith(args)
}

// RunWith dispatches args[0] to its matching command, passing the rest
// of args to it.
func (c *Client) RunWith(args []string) error {
	name, rest := args[0], args[1:]

	cmd, found := c.commands[name]
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}

	return cmd.Run(&Interaction{stdout: c.stdout}, rest)
}
