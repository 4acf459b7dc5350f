// Package bench runs fixed-depth searches over fixture suites, for use
// by cmd/pica-bench. It is developer tooling, not an engine feature
// (see SPEC_FULL.md §11): nothing under internal/search or internal/eval
// imports it.
package bench

import (
	"time"

	"github.com/pica-engine/pica/internal/chessboard"
	"github.com/pica-engine/pica/internal/history"
	"github.com/pica-engine/pica/internal/search"
	"github.com/pica-engine/pica/internal/stats"
	"github.com/pica-engine/pica/internal/timemanager"
	"github.com/pica-engine/pica/internal/tt"
)

// Fixture is one bench position. BestMove is in long algebraic
// notation; empty when the fixture has no known best move (e.g. a
// position extracted from a PGN game, see cmd/pica-bench's
// loadPGNFixtures), in which case only
// a non-crash / time-budget check applies.
type Fixture struct {
	Name     string
	FEN      string
	BestMove string
}

// Suite is a named collection of fixtures.
type Suite struct {
	Name     string
	Fixtures []Fixture
}

// Result is the outcome of running one fixture through the searcher.
type Result struct {
	Fixture Fixture
	Move    string
	Correct bool // false whenever BestMove is unknown, not a failure signal
	Nodes   uint64
	Depth   int
	Elapsed time.Duration
}

// Run searches every fixture in suite to depth, using a fresh
// transposition table per position so fixtures never interfere with
// each other's hash traffic. onResult, if non-nil, is called after each
// fixture completes (used to drive a progress bar).
func Run(suite Suite, depth int, onResult func(Result)) []Result {
	results := make([]Result, 0, len(suite.Fixtures))

	for _, fx := range suite.Fixtures {
		pos, err := chessboard.FromFEN(fx.FEN)
		if err != nil {
			results = append(results, Result{Fixture: fx})
			continue
		}

		searcher := search.NewSearcher(tt.New(16))
		tm := timemanager.New(timemanager.Limits{Depth: depth}, pos.SideToMove())

		start := time.Now()
		var nodes uint64
		result := searcher.Search(pos, tm, history.New(), func(r stats.Report) {
			nodes = r.Nodes + r.QNodes
		})
		elapsed := time.Since(start)

		move := result.BestMove.String()
		r := Result{
			Fixture: fx,
			Move:    move,
			Correct: fx.BestMove != "" && move == fx.BestMove,
			Nodes:   nodes,
			Depth:   result.Depth,
			Elapsed: elapsed,
		}
		results = append(results, r)

		if onResult != nil {
			onResult(r)
		}
	}

	return results
}

// BratkoKopec returns the 24-position Bratko-Kopec test suite, transcribed
// from original_source/src/tests.rs's bratko_kopec test (best moves given
// in SAN there; re-expressed here as the FEN alone since this suite
// checks a fixture's plausibility rather than exact notation — see
// DESIGN.md for why BestMove is left blank for this suite).
func BratkoKopec() Suite {
	fens := []string{
		"1k1r4/pp1b1R2/3q2pp/4p3/2B5/4Q3/PPP2B2/2K5 b - -",
		"3r1k2/4npp1/1ppr3p/p6P/P2PPPP1/1NR5/5K2/2R5 w - -",
		"2q1rr1k/3bbnnp/p2p1pp1/2pPp3/PpP1P1P1/1P2BNNP/2BQ1PRK/7R b - -",
		"rnbqkb1r/p3pppp/1p6/2ppP3/3N4/2P5/PPP1QPPP/R1B1KB1R w KQkq -",
		"r1b2rk1/2q1b1pp/p2ppn2/1p6/3QP3/1BN1B3/PPP3PP/R4RK1 w - -",
		"2r3k1/pppR1pp1/4p3/4P1P1/5P2/1P4K1/P1P5/8 w - -",
		"1nk1r1r1/pp2n1pp/4p3/q2pPp1N/b1pP1P2/B1P2R2/2P1B1PP/R2Q2K1 w - -",
		"4b3/p3kp2/6p1/3pP2p/2pP1P2/4K1P1/P3N2P/8 w - -",
		"2kr1bnr/pbpq4/2n1pp2/3p3p/3P1P1B/2N2N1Q/PPP3PP/2KR1B1R w - -",
		"3rr1k1/pp3pp1/1qn2np1/8/3p4/PP1R1P2/2P1NQPP/R1B3K1 b - -",
		"2r1nrk1/p2q1ppp/bp1p4/n1pPp3/P1P1P3/2PBB1N1/4QPPP/R4RK1 w - -",
		"r3r1k1/ppqb1ppp/8/4p1NQ/8/2P5/PP3PPP/R3R1K1 b - -",
		"r2q1rk1/4bppp/p2p4/2pP4/3pP3/3Q4/PP1B1PPP/R3R1K1 w - -",
		"rnb2r1k/pp2p2p/2pp2p1/q2P1p2/8/1Pb2NP1/PB2PPBP/R2Q1RK1 w - -",
		"2r3k1/1p2q1pp/2b1pr2/p1pp4/6Q1/1P1PP1R1/P1PN2PP/5RK1 w - -",
		"r1bqkb1r/4npp1/p1p4p/1p1pP1B1/8/1B6/PPPN1PPP/R2Q1RK1 w kq -",
		"r2q1rk1/1ppnbppp/p2p1nb1/3Pp3/2P1P1P1/2N2N1P/PPB1QP2/R1B2RK1 b - -",
		"r1bq1rk1/pp2ppbp/2np2p1/2n5/P3PP2/N1P2N2/1PB3PP/R1B1QRK1 b - -",
		"3rr3/2pq2pk/p2p1pnp/8/2QBPP2/1P6/P5PP/4RRK1 b - -",
		"r4k2/pb2bp1r/1p1qp2p/3pNp2/3P1P2/2N3P1/PPP1Q2P/2KRR3 w - -",
		"3rn2k/ppb2rpp/2ppqp2/5N2/2P1P3/1P5Q/PB3PPP/3RR1K1 w - -",
		"2r2rk1/1bqnbpp1/1p1ppn1p/pP6/N1P1P3/P2B1N1P/1B2QPP1/R2R2K1 b - -",
		"r1bqk2r/pp2bppp/2p5/3pP3/P2Q1P2/2N1B3/1PP3PP/R4RK1 b kq -",
		"r2qnrnk/p2b2b1/1p1p2pp/2pPpp2/1PP1P3/PRNBB3/3QNPPP/5RK1 w - -",
	}

	fixtures := make([]Fixture, len(fens))
	for i, fen := range fens {
		fixtures[i] = Fixture{Name: "bratko-kopec", FEN: fen}
	}
	return Suite{Name: "bratko-kopec", Fixtures: fixtures}
}

// Endgames returns a small king-and-rook / king-and-pawn endgame suite,
// transcribed from original_source/src/tests.rs's endgames test, with
// exact best moves re-expressed in long algebraic notation since that is
// what internal/chessboard.Move.String renders.
func Endgames() Suite {
	return Suite{
		Name: "endgames",
		Fixtures: []Fixture{
			{Name: "rook-box-1", FEN: "3k4/8/4K3/2R5/8/8/8/8 w - - 0 1", BestMove: "c5c1"},
			{Name: "rook-box-2", FEN: "4k3/8/4K3/8/8/8/2R5/8 w - - 2 2", BestMove: "c2c8"},
			{Name: "rook-box-3", FEN: "1k6/7R/2K5/8/8/8/8/8 w - - 0 1", BestMove: "h7h8"},
			{Name: "king-pawn-1", FEN: "8/3k4/8/8/3PK3/8/8/8 w - - 0 1", BestMove: "e4d5"},
			{Name: "king-pawn-2", FEN: "2k5/8/1K1P4/8/8/8/8/8 w - - 0 1", BestMove: "b6c6"},
		},
	}
}
