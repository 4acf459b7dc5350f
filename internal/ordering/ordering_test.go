package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pica-engine/pica/internal/chessboard"
	"github.com/pica-engine/pica/internal/ordering"
)

func TestHashMoveIsPickedFirst(t *testing.T) {
	pos, err := chessboard.FromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)

	legal := pos.LegalMoves()
	require.NotEmpty(t, legal)
	hashMove := legal[len(legal)-1] // an arbitrary legal move, not necessarily capture-best

	info := ordering.NewInfo()
	producer := ordering.New(pos, hashMove, info, 0)

	got, index, ok := producer.Pick()
	require.True(t, ok)
	assert.Equal(t, hashMove, got)
	assert.Equal(t, 0, index)
}

func TestCapturesOnlyFiltersQuietMoves(t *testing.T) {
	// white queen can capture a black pawn on d5; plenty of quiet moves exist too
	pos, err := chessboard.FromFEN("4k3/8/8/3p4/4Q3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	info := ordering.NewInfo()
	producer := ordering.NewCaptures(pos, info, 0)

	for {
		move, _, ok := producer.Pick()
		if !ok {
			break
		}
		victim, hasVictim := pos.PieceOn(move.To)
		assert.True(t, hasVictim)
		assert.Equal(t, chessboard.Black, victim.Color)
	}
}

func TestKillerMovesScoreAboveQuietFallback(t *testing.T) {
	pos, err := chessboard.FromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)

	legal := pos.LegalMoves()
	require.GreaterOrEqual(t, len(legal), 2)

	info := ordering.NewInfo()
	killer := legal[0]
	info.RecordKiller(3, killer)

	producer := ordering.New(pos, chessboard.Null, info, 3)

	got, _, ok := producer.Pick()
	require.True(t, ok)
	assert.Equal(t, killer, got, "killer move should be picked before quiet fallback moves")
}

func TestStatusReflectsUnmaskedLegalMoves(t *testing.T) {
	// fool's mate final position: white to move, checkmated
	pos, err := chessboard.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	info := ordering.NewInfo()
	producer := ordering.New(pos, chessboard.Null, info, 0)
	assert.Equal(t, chessboard.Checkmate, producer.Status())
}
