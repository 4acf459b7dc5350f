package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pica-engine/pica/internal/chessboard"
	"github.com/pica-engine/pica/internal/eval"
)

func mustFEN(t *testing.T, fen string) chessboard.Position {
	t.Helper()
	pos, err := chessboard.FromFEN(fen)
	require.NoError(t, err)
	return pos
}

func TestEvaluateStartPosIsSmallAndSymmetric(t *testing.T) {
	pos := chessboard.StartPos()
	score := eval.Evaluate(pos)

	assert.True(t, score >= 0 && score <= 30, "start position score %d out of [0,30]", score)
}

func TestEvaluateDominantMaterialWins(t *testing.T) {
	// heavily material-down side should score clearly negative
	down := mustFEN(t, "1qkq4/2q5/8/8/8/8/5PPP/7K w - - 0 1")
	assert.Less(t, int(eval.Evaluate(down)), -2000)

	// heavily material-up side should score clearly positive
	up := mustFEN(t, "k7/ppp5/8/8/8/8/5Q2/4QKQ1 w - - 0 1")
	assert.Greater(t, int(eval.Evaluate(up)), 2000)
}

func TestEvaluatePassedPawnAdvancesIncreaseScore(t *testing.T) {
	fens := []string{
		"6k1/8/8/8/8/P7/8/6K1 w - - 0 1",
		"6k1/8/8/8/P7/8/8/6K1 w - - 0 1",
		"6k1/8/8/P7/8/8/8/6K1 w - - 0 1",
		"6k1/8/P7/8/8/8/8/6K1 w - - 0 1",
		"6k1/P7/8/8/8/8/8/6K1 w - - 0 1",
	}

	prev := eval.Score(-1 << 30)
	for _, fen := range fens {
		score := eval.Evaluate(mustFEN(t, fen))
		assert.Greater(t, int(score), int(prev), "advancing the passed pawn in %q should score higher", fen)
		prev = score
	}
}

func TestEvaluateIsFinite(t *testing.T) {
	pos := chessboard.StartPos()
	score := eval.Evaluate(pos)
	assert.Less(t, int(score), 10000)
	assert.Greater(t, int(score), -10000)
}
