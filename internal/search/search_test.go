package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pica-engine/pica/internal/chessboard"
	"github.com/pica-engine/pica/internal/history"
	"github.com/pica-engine/pica/internal/search"
	"github.com/pica-engine/pica/internal/stats"
	"github.com/pica-engine/pica/internal/timemanager"
	"github.com/pica-engine/pica/internal/tt"
)

func newSearcher() *search.Searcher {
	return search.NewSearcher(tt.New(1))
}

// TestFindsMateInOne covers spec.md §8 scenario (a): a position with a
// forced mate in one must be found and reported as a mate score.
func TestFindsMateInOne(t *testing.T) {
	// white to move, Re1-e8# back-rank mate available
	pos, err := chessboard.FromFEN("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	require.NoError(t, err)

	s := newSearcher()
	tm := timemanager.New(timemanager.Limits{Depth: 4}, chessboard.White)

	result := s.Search(pos, tm, history.New(), nil)

	require.False(t, result.BestMove.IsNull())
	assert.GreaterOrEqual(t, result.Score, int32(tt.MateThreshold))
}

// TestSearchToDepthThreeReturnsMove checks that a depth-3 search of the
// starting position completes its third iteration and reports a best
// move taken from the root transposition table entry.
func TestSearchToDepthThreeReturnsMove(t *testing.T) {
	pos := chessboard.StartPos()

	s := newSearcher()
	tm := timemanager.New(timemanager.Limits{Depth: 3}, chessboard.White)

	result := s.Search(pos, tm, history.New(), nil)

	require.False(t, result.BestMove.IsNull())
	assert.Equal(t, 3, result.Depth)
}

// TestStalemateScoresZero covers the Stalemate branch of negamax/quiescence.
func TestStalemateScoresZero(t *testing.T) {
	// classic stalemate: black king boxed in, no legal moves, not in check
	pos, err := chessboard.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	require.Equal(t, chessboard.Stalemate, pos.Status())

	s := newSearcher()
	tm := timemanager.New(timemanager.Limits{Depth: 1}, chessboard.Black)

	result := s.Search(pos, tm, history.New(), nil)
	assert.Equal(t, int32(0), result.Score)
}

// TestWinningSideDoesNotScoreAsLost checks that in a king-and-queen
// versus king position with White to move, a depth-2 search returns a
// move and a score well above the losing mate range. The history starts
// fresh, so no repetition can arise within the search.
func TestWinningSideDoesNotScoreAsLost(t *testing.T) {
	pos, err := chessboard.FromFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)

	s := newSearcher()
	tm := timemanager.New(timemanager.Limits{Depth: 2}, chessboard.White)

	result := s.Search(pos, tm, history.New(), nil)
	require.False(t, result.BestMove.IsNull())
	assert.Greater(t, result.Score, -search.Inf/2)
}

// TestSearchRespectsDepthLimit covers spec.md §8 scenario (b): a `go
// depth N` request completes at exactly depth N and no further.
func TestSearchRespectsDepthLimit(t *testing.T) {
	pos := chessboard.StartPos()

	s := newSearcher()
	tm := timemanager.New(timemanager.Limits{Depth: 2}, chessboard.White)

	var reportedDepths []int
	result := s.Search(pos, tm, history.New(), func(r stats.Report) {
		reportedDepths = append(reportedDepths, r.Depth)
	})

	assert.Equal(t, 2, result.Depth)
	assert.LessOrEqual(t, len(reportedDepths), 2)
}
