// Package timemanager decides, between and during search iterations,
// whether the search may continue.
package timemanager

import (
	"time"

	"github.com/pica-engine/pica/internal/chessboard"
)

// branchingFactorEstimate is a rough per-iteration growth factor used to
// project whether the next iteration would overrun the time budget.
const branchingFactorEstimate = 10

// defaultBoardTimeMS and defaultMaxAllowedTimeNowMS are applied when a `go`
// command carries no time information at all.
const (
	defaultBoardTimeMS         = 300_000
	defaultMaxAllowedTimeNowMS = 5_000
)

// Limits mirrors the UCI `go` parameters relevant to time management.
// Zero/false fields mean "not specified".
type Limits struct {
	Infinite bool

	MoveTimeMS int // movetime, 0 if unset

	WTimeMS, BTimeMS int // wtime/btime, 0 if unset
	WIncMS, BIncMS   int // winc/binc, 0 if unset

	Depth int    // max depth, 0 if unset
	Nodes uint64 // max nodes, 0 if unset

	// DefaultBoardTimeMS overrides defaultBoardTimeMS when go carries no
	// time information at all, seeded from pica.toml's board_time_ms.
	// 0 means "use the package default".
	DefaultBoardTimeMS int
}

// Manager is a read-only, once-constructed time budget for one search.
type Manager struct {
	maxDepth         int
	maxNodes         uint64
	boardTimeMS      int
	maxAllowedTimeMS int
	infinite         bool

	start time.Time
}

// New builds a Manager from the `go` limits and the side to move,
// applying spec.md §4.5's defaults when go carries no time information.
func New(limits Limits, stm chessboard.Color) *Manager {
	m := &Manager{
		maxDepth: limits.Depth,
		maxNodes: limits.Nodes,
		infinite: limits.Infinite,
		start:    time.Now(),
	}

	if limits.Infinite {
		return m
	}

	if limits.MoveTimeMS > 0 {
		m.maxAllowedTimeMS = limits.MoveTimeMS
	}

	boardTime := limits.WTimeMS
	if stm == chessboard.Black {
		boardTime = limits.BTimeMS
	}
	m.boardTimeMS = boardTime

	if m.boardTimeMS == 0 && m.maxAllowedTimeMS == 0 {
		m.boardTimeMS = limits.DefaultBoardTimeMS
		if m.boardTimeMS == 0 {
			m.boardTimeMS = defaultBoardTimeMS
		}
		m.maxAllowedTimeMS = defaultMaxAllowedTimeNowMS
	}

	return m
}

func (m *Manager) elapsedMS() int {
	return int(time.Since(m.start).Milliseconds())
}

func (m *Manager) boardTime() int {
	if m.boardTimeMS > 0 {
		return m.boardTimeMS
	}
	return defaultBoardTimeMS
}

// CanContinue is the soft gate, consulted between iterations. It returns
// false once projected time for the next iteration would overrun the
// budget; once false for a given elapsed time it stays false for any
// larger elapsed time with the same inputs (monotone, per spec.md §8
// invariant 7).
func (m *Manager) CanContinue(depth int) bool {
	if m.infinite {
		return true
	}

	if m.maxDepth > 0 && depth > m.maxDepth {
		return false
	}

	projected := m.elapsedMS() * branchingFactorEstimate

	if projected > m.boardTime()/30 {
		return false
	}

	if m.maxAllowedTimeMS > 0 && projected > m.maxAllowedTimeMS {
		return false
	}

	return true
}

// ShouldAbort is the hard gate, pollable inside the search itself. Its
// time thresholds are looser than CanContinue's (elapsed time itself,
// not a projection of the next iteration), but because it is polled
// during an iteration it can cut a search off mid-iteration rather than
// only between iterations.
func (m *Manager) ShouldAbort(nodes uint64) bool {
	if m.infinite {
		return false
	}

	if m.elapsedMS() > m.boardTime()/20 {
		return true
	}

	if m.maxNodes > 0 && nodes > m.maxNodes {
		return true
	}

	if m.maxAllowedTimeMS > 0 && m.elapsedMS() > m.maxAllowedTimeMS {
		return true
	}

	return false
}

// Elapsed returns the wall time since the manager was constructed.
func (m *Manager) Elapsed() time.Duration {
	return time.Since(m.start)
}
