// Package stats collects the counters a search accumulates: node
// counts, transposition table traffic, check extensions, and the
// move-index histogram that drives offline tuning of the move orderer.
// A Counters value is owned by the caller and threaded through the
// search by reference; there is no package-level mutable state.
package stats

import (
	"fmt"
	"time"
)

// histogramSize bounds the move-index histogram. Legal move lists are
// assumed to fit in 128 entries (see internal/search's MaxMoves), so any
// index beyond that is folded into the last bucket.
const histogramSize = 128

// Counters accumulates statistics for one search. Reset at the start of
// each iterative-deepening iteration.
type Counters struct {
	Nodes           uint64 // negamax nodes searched
	QNodes          uint64 // quiescence nodes searched
	CheckExtensions uint64 // check extensions applied
	TTProbes        uint64 // transposition table probes
	TTHits          uint64 // transposition table hits

	// MoveIndex[i] counts how often the chosen/cutoff move was found at
	// index i in the ordered move producer.
	MoveIndex [histogramSize]uint64
}

// Reset zeroes every counter, ready for the next iteration.
func (c *Counters) Reset() {
	*c = Counters{}
}

// RecordMoveIndex bumps the move-index histogram bucket for index,
// clamping overflow into the final bucket.
func (c *Counters) RecordMoveIndex(index int) {
	if index >= histogramSize {
		index = histogramSize - 1
	}
	if index < 0 {
		index = 0
	}
	c.MoveIndex[index]++
}

// Report is a point-in-time snapshot of a search's progress, rendered as
// a UCI `info` line.
type Report struct {
	Depth  int
	Score  int32 // centipawn score, or a mate score (see internal/search)
	IsMate bool
	Mate   int // moves (not plies) to mate, signed: positive = we mate, negative = we get mated

	Nodes  uint64
	QNodes uint64
	Time   time.Duration

	PV []string // moves in long algebraic notation
}

// String renders the report as a UCI `info` line body, per the
// `info score cp <s> depth <d> nodes <n> qnodes <q> nps <r> time <ms> pv <...>`
// format (a mate score renders as `score mate <n>` instead of `cp`; nps
// counts negamax plus quiescence nodes per second, 0 under 1ms).
func (r Report) String() string {
	score := fmt.Sprintf("cp %d", r.Score)
	if r.IsMate {
		score = fmt.Sprintf("mate %d", r.Mate)
	}

	nps := uint64(0)
	if ms := r.Time.Milliseconds(); ms > 0 {
		nps = (r.Nodes + r.QNodes) * 1000 / uint64(ms)
	}

	s := fmt.Sprintf(
		"info score %s depth %d nodes %d qnodes %d nps %d time %d",
		score, r.Depth, r.Nodes, r.QNodes, nps, r.Time.Milliseconds(),
	)

	if len(r.PV) > 0 {
		s += " pv"
		for _, m := range r.PV {
			s += " " + m
		}
	}

	return s
}
