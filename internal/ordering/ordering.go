// Package ordering implements the move-ordering "producer": an ordered
// stream of moves, ranked so that alpha-beta pruning discovers cutoffs
// as early as possible.
package ordering

import "github.com/pica-engine/pica/internal/chessboard"

// MaxPly bounds the per-ply killer-move table. Kept in sync with
// internal/search's MaxPly.
const MaxPly = 200

// mvvLva is indexed [victim][attacker] by chessboard.PieceType ordinal
// (NoPieceType=0 through King=6); row/column 0 is unused (no victim, no
// attacker) and scores zero, matching a quiet, non-capturing move.
var mvvLva = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 15, 14, 13, 12, 11, 10},
	{0, 25, 24, 23, 22, 21, 20},
	{0, 35, 34, 33, 32, 31, 30},
	{0, 45, 44, 43, 42, 41, 40},
	{0, 55, 54, 53, 52, 51, 50},
	{0, 0, 0, 0, 0, 0, 0},
}

const (
	hashMoveScore   = 50
	firstKillerScore  = 20
	secondKillerScore = 10
)

// Info is the per-search scratch state move ordering reads and writes:
// killer moves per ply, and a butterfly history table. History is
// maintained (credited on quiet cutoffs/improvements) but, per spec.md
// §4.2, not consulted for ordering scores in the baseline.
type Info struct {
	Killers [MaxPly + 1][2]chessboard.Move
	History [64][64]int
}

// NewInfo returns a freshly zeroed Info.
func NewInfo() *Info {
	return &Info{}
}

// RecordKiller shifts killers at ply: the previous first killer becomes
// the second, and move becomes the new first. A no-op if move already is
// the first killer at this ply.
func (info *Info) RecordKiller(ply int, move chessboard.Move) {
	if info.Killers[ply][0] == move {
		return
	}
	info.Killers[ply][1] = info.Killers[ply][0]
	info.Killers[ply][0] = move
}

// CreditHistory adds depth to the butterfly history entry for a
// from/to quiet move.
func (info *Info) CreditHistory(move chessboard.Move, depth int) {
	info.History[move.From][move.To] += depth
}

type scoredMove struct {
	move  chessboard.Move
	score int
}

// Producer is an ordered stream of moves: repeated calls to Pick return
// the highest-scoring remaining move, implemented as linear max-scan
// removal rather than a full sort, so that the common case (a cutoff in
// the first few picks) never pays for sorting the tail.
type Producer struct {
	moves  []scoredMove
	status chessboard.Status
	picked int
}

// New builds a Producer for every legal move in pos. hashMove is the
// TT-suggested best move for this node (zero value if none); ply indexes
// the killer table.
func New(pos chessboard.Position, hashMove chessboard.Move, info *Info, ply int) *Producer {
	return build(pos, hashMove, info, ply, false)
}

// NewCaptures builds a Producer restricted to captures: moves whose
// destination is not occupied by the opposing color are discarded
// before scoring. The reported Status still reflects the full,
// unmasked legal move list.
func NewCaptures(pos chessboard.Position, info *Info, ply int) *Producer {
	return build(pos, chessboard.Null, info, ply, true)
}

func build(pos chessboard.Position, hashMove chessboard.Move, info *Info, ply int, capturesOnly bool) *Producer {
	legal := pos.LegalMoves()
	p := &Producer{status: pos.Status()}

	stm := pos.SideToMove()

	for _, m := range legal {
		victim, hasVictim := pos.PieceOn(m.To)

		if capturesOnly {
			if !hasVictim || victim.Color == stm {
				continue
			}
		}

		p.moves = append(p.moves, scoredMove{move: m, score: score(m, pos, hashMove, info, ply)})
	}

	return p
}

func score(m chessboard.Move, pos chessboard.Position, hashMove chessboard.Move, info *Info, ply int) int {
	if hashMove != chessboard.Null && m == hashMove {
		return hashMoveScore
	}

	attacker, _ := pos.PieceOn(m.From)
	victim, isCapture := pos.PieceOn(m.To)
	if isCapture {
		return mvvLva[victim.Type][attacker.Type]
	}

	if ply >= 0 && ply < len(info.Killers) {
		switch m {
		case info.Killers[ply][0]:
			return firstKillerScore
		case info.Killers[ply][1]:
			return secondKillerScore
		}
	}

	return 0
}

// Status reports the unmasked legal-move status of the position this
// producer was built from.
func (p *Producer) Status() chessboard.Status {
	return p.status
}

// Len reports how many moves remain unpicked.
func (p *Producer) Len() int {
	return len(p.moves)
}

// Pick returns the highest-scoring remaining move (and its index among
// the moves seen so far, used for the move-index histogram) and removes
// it from the producer. The third return is false once the producer is
// exhausted. Among moves with equal scores, the one generated first is
// returned first.
func (p *Producer) Pick() (chessboard.Move, int, bool) {
	if len(p.moves) == 0 {
		return chessboard.Null, 0, false
	}

	best := 0
	for i := 1; i < len(p.moves); i++ {
		if p.moves[i].score > p.moves[best].score {
			best = i
		}
	}

	move := p.moves[best].move
	index := p.picked
	p.picked++

	p.moves = append(p.moves[:best], p.moves[best+1:]...)

	return move, index, true
}
