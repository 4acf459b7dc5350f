// Package context holds the engine's shared, mutable state: the current
// position, the persistent transposition table, and the UCI option
// values. It is split out from internal/engine so that the cmd
// subpackage can depend on it without an import cycle.
package context

import (
	"sync"

	"github.com/pica-engine/pica/internal/chessboard"
	"github.com/pica-engine/pica/internal/history"
	"github.com/pica-engine/pica/internal/search"
	"github.com/pica-engine/pica/internal/tt"
	"github.com/pica-engine/pica/internal/uci"
)

// Engine is the state threaded through every UCI command's Interaction.
type Engine struct {
	Client uci.Client

	Searcher *search.Searcher
	Board    chessboard.Position
	History  history.Ring

	mu        sync.Mutex
	searching bool

	OptionSet *uci.OptionSet
	Options   Options

	// DefaultBoardTimeMS seeds the time manager's per-game time budget
	// when a `go` command carries no wtime/btime/movetime at all. Set
	// once from pica.toml at startup.
	DefaultBoardTimeMS int
}

// Options holds the values of the UCI options this engine supports.
type Options struct {
	Hash int  // name Hash type spin, megabytes
	Info bool // name Info type check, verbose stderr logging
}

// NewEngine returns an Engine set up at the starting position with a
// fresh searcher and repetition history.
func NewEngine(hashMB, defaultBoardTimeMS int) *Engine {
	return &Engine{
		Searcher:           search.NewSearcher(tt.New(hashMB)),
		Board:              chessboard.StartPos(),
		History:            history.New(),
		DefaultBoardTimeMS: defaultBoardTimeMS,
	}
}

// Searching reports whether a search is currently running.
func (e *Engine) Searching() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.searching
}

// SetSearching records whether a search is currently running.
func (e *Engine) SetSearching(v bool) {
	e.mu.Lock()
	e.searching = v
	e.mu.Unlock()
}
