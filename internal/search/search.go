// Package search implements the iterative-deepening alpha-beta negamax
// searcher with quiescence, tying together evaluation, move ordering,
// the transposition table, the repetition history and the time manager.
package search

import (
	"sync/atomic"

	"github.com/pica-engine/pica/internal/chessboard"
	"github.com/pica-engine/pica/internal/eval"
	"github.com/pica-engine/pica/internal/history"
	"github.com/pica-engine/pica/internal/ordering"
	"github.com/pica-engine/pica/internal/stats"
	"github.com/pica-engine/pica/internal/timemanager"
	"github.com/pica-engine/pica/internal/tt"
)

// Inf, MaxPly and MaxMoves are the score/recursion/move-list bounds
// spec.md §3 and §5 fix: a mate score is any |s| >= Inf-255, recursion
// is capped at MaxPly plus bounded check extensions, and legal move
// lists are assumed to fit in MaxMoves.
const (
	Inf      int32 = 10_000
	MaxPly         = 200
	MaxMoves       = 128
)

// Searcher owns the long-lived state of the engine across searches: the
// transposition table, which persists until resized or `ucinewgame`
// clears it. Move-ordering info and stats are created fresh per search;
// the repetition history is supplied by the caller of Search.
type Searcher struct {
	TT *tt.Table

	// stopped is the cancellation flag: Stop sets it from the UCI REPL
	// goroutine, Search and negamax poll it from the search goroutine.
	// It must stay atomic, not a plain bool, since those are two
	// different goroutines racing on the same word.
	stopped atomic.Bool
}

// NewSearcher returns a Searcher backed by table.
func NewSearcher(table *tt.Table) *Searcher {
	return &Searcher{TT: table}
}

// Stop requests that any in-progress search return as soon as it next
// polls for cancellation.
func (s *Searcher) Stop() {
	s.stopped.Store(true)
}

// Result is the outcome of a completed (or cut-off) search.
type Result struct {
	BestMove chessboard.Move
	Score    int32
	Depth    int
	PV       []chessboard.Move
}

// OnInfo, if non-nil, is called once per completed iteration with a
// progress report suitable for a UCI `info` line.
type OnInfo func(stats.Report)

// Search runs iterative deepening from depth 1 to MaxPly-1 on pos,
// bounded by tm, tracking repetitions via hist. It returns the best
// move known from the last fully completed iteration.
func (s *Searcher) Search(pos chessboard.Position, tm *timemanager.Manager, hist history.Ring, onInfo OnInfo) Result {
	s.stopped.Store(false)

	info := ordering.NewInfo()
	counters := &stats.Counters{}

	var result Result

	for depth := 1; depth < MaxPly; depth++ {
		if !tm.CanContinue(depth) {
			break
		}

		counters.Reset()

		score := s.negamax(pos, -Inf, Inf, depth, 0, info, hist, counters, tm)

		if s.stopped.Load() {
			break
		}

		entry, ok := s.TT.Get(pos.Hash())
		bestMove := chessboard.Null
		if ok {
			bestMove = entry.Move
		}

		result = Result{
			BestMove: bestMove,
			Score:    score,
			Depth:    depth,
			PV:       s.reconstructPV(pos),
		}

		if onInfo != nil {
			onInfo(stats.Report{
				Depth:  depth,
				Score:  score,
				IsMate: isMateScore(score),
				Mate:   matePlies(score, depth),
				Nodes:  counters.Nodes,
				QNodes: counters.QNodes,
				Time:   tm.Elapsed(),
				PV:     moveStrings(result.PV),
			})
		}

		if isMateScore(score) {
			break
		}
	}

	return result
}

func isMateScore(score int32) bool {
	return score >= tt.MateThreshold || score <= -tt.MateThreshold
}

// matePlies converts a mate score into a signed "moves to mate" count
// for the UCI `info score mate <n>` field.
func matePlies(score int32, depth int) int {
	plies := Inf - abs32(score)
	moves := (int(plies) + 1) / 2
	if score < 0 {
		moves = -moves
	}
	return moves
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func moveStrings(moves []chessboard.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// reconstructPV walks the transposition table from pos, following each
// entry's stored best move, up to 64 plies, guarding against cycles
// (spec.md §6.1).
func (s *Searcher) reconstructPV(pos chessboard.Position) []chessboard.Move {
	const maxPVLength = 64

	var pv []chessboard.Move
	cur := pos

	for i := 0; i < maxPVLength; i++ {
		entry, ok := s.TT.Get(cur.Hash())
		if !ok || entry.Move.IsNull() {
			break
		}

		next, err := cur.MakeMove(entry.Move)
		if err != nil {
			break
		}

		pv = append(pv, entry.Move)
		cur = next
	}

	return pv
}

// negamax implements spec.md §4.3's Negamax: alpha-beta pruned negamax
// with a transposition table probe/store, check extension, repetition
// detection and a drop to quiescence at the horizon.
func (s *Searcher) negamax(pos chessboard.Position, alpha, beta int32, depth, ply int, info *ordering.Info, hist history.Ring, counters *stats.Counters, tm *timemanager.Manager) int32 {
	counters.Nodes++

	if counters.Nodes&2047 == 0 && tm.ShouldAbort(counters.Nodes) {
		s.stopped.Store(true)
	}
	if s.stopped.Load() {
		return 0
	}

	inCheck := pos.InCheck()

	if (depth == 0 && !inCheck) || ply > MaxPly {
		return s.quiescence(pos, alpha, beta, ply, info, counters)
	}

	if hist.IsThreeRep() {
		return -Inf
	}

	key := pos.Hash()
	counters.TTProbes++

	hashMove := chessboard.Null
	if entry, ok := s.TT.Get(key); ok {
		counters.TTHits++

		if int(entry.Depth) >= depth {
			value := tt.ProbeValue(entry.Value, ply)
			switch entry.Type {
			case tt.Exact:
				return value
			case tt.LowerBound:
				if value >= beta {
					return value
				}
			case tt.UpperBound:
				if value <= alpha {
					return value
				}
			default:
				panic("search: transposition table hit with no entry type")
			}
		}
		hashMove = entry.Move
	}

	producer := ordering.New(pos, hashMove, info, ply)
	if producer.Len() > MaxMoves {
		panic("search: legal move list exceeds MaxMoves")
	}
	switch producer.Status() {
	case chessboard.Checkmate:
		return -Inf + int32(ply)
	case chessboard.Stalemate:
		return 0
	}

	if inCheck && ply < MaxPly/2 {
		depth++
		counters.CheckExtensions++
	}

	alphaOrig := alpha
	bestScore := -Inf - 1
	bestMove := chessboard.Null
	bestIndex := 0

	for {
		move, index, ok := producer.Pick()
		if !ok {
			break
		}

		_, quiet := pos.PieceOn(move.To)
		quiet = !quiet

		newPos, err := pos.MakeMove(move)
		if err != nil {
			panic("search: illegal move produced by legal move generator: " + err.Error())
		}

		newHist := hist.Pushed(newPos.Hash())
		score := -s.negamax(newPos, -beta, -alpha, depth-1, ply+1, info, newHist, counters, tm)

		if score > bestScore {
			bestScore = score
			bestMove = move
			bestIndex = index
		}

		if score > alpha {
			alpha = score
			if quiet {
				info.CreditHistory(move, depth)
			}
		}

		if score >= beta {
			s.TT.Set(tt.Entry{
				Key:   key,
				Depth: uint8(clampDepth(depth)),
				Type:  tt.LowerBound,
				Value: tt.StoreValue(score, ply),
				Move:  move,
			})
			if quiet {
				info.RecordKiller(ply, move)
			}
			counters.RecordMoveIndex(index)
			return score
		}
	}

	nodeType := tt.UpperBound
	if alpha > alphaOrig {
		nodeType = tt.Exact
	}

	s.TT.Set(tt.Entry{
		Key:   key,
		Depth: uint8(clampDepth(depth)),
		Type:  nodeType,
		Value: tt.StoreValue(alpha, ply),
		Move:  bestMove,
	})
	counters.RecordMoveIndex(bestIndex)

	return alpha
}

func clampDepth(depth int) int {
	if depth < 0 {
		return 0
	}
	if depth > 255 {
		return 255
	}
	return depth
}

// quiescence implements spec.md §4.3's Quiescence: a captures-only
// search extending the principal line until the position is tactically
// quiet, addressing the horizon effect. Both its stand-pat cutoff and its
// recursive cutoff are fail-hard (they return beta), and it returns alpha
// otherwise, as spec.md §9's open question describes — the asymmetry with
// negamax's fail-soft return is deliberate, not a bug.
func (s *Searcher) quiescence(pos chessboard.Position, alpha, beta int32, ply int, info *ordering.Info, counters *stats.Counters) int32 {
	counters.QNodes++

	if ply > MaxPly {
		return int32(eval.Evaluate(pos))
	}

	standPat := int32(eval.Evaluate(pos))
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	producer := ordering.NewCaptures(pos, info, ply)
	switch producer.Status() {
	case chessboard.Checkmate:
		return -Inf + int32(ply)
	case chessboard.Stalemate:
		return 0
	}

	for {
		move, _, ok := producer.Pick()
		if !ok {
			break
		}

		newPos, err := pos.MakeMove(move)
		if err != nil {
			panic("search: illegal capture produced by legal move generator: " + err.Error())
		}

		score := -s.quiescence(newPos, -beta, -alpha, ply+1, info, counters)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
