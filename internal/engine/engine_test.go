package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pica-engine/pica/internal/engine"
)

// TestSetOptionHashResizesAndClearsTable covers spec.md §8 scenario (f):
// `setoption name Hash value N` reallocates the transposition table.
func TestSetOptionHashResizesAndClearsTable(t *testing.T) {
	client := engine.NewClient(16, 300_000)

	require.NoError(t, client.Run("setoption", "name", "Hash", "value", "32"))
}

func TestSetOptionInfoTogglesLogging(t *testing.T) {
	client := engine.NewClient(16, 300_000)
	require.NoError(t, client.Run("setoption", "name", "Info", "value", "true"))
	require.NoError(t, client.Run("setoption", "name", "Info", "value", "false"))
}

func TestUciNewGameResetsBoard(t *testing.T) {
	client := engine.NewClient(1, 300_000)
	require.NoError(t, client.Run("ucinewgame"))
}

func TestPositionStartposWithMoves(t *testing.T) {
	client := engine.NewClient(1, 300_000)
	require.NoError(t, client.Run("position", "startpos", "moves", "e2e4", "e7e5"))
}

func TestPositionRejectsIllegalMove(t *testing.T) {
	client := engine.NewClient(1, 300_000)
	err := client.Run("position", "startpos", "moves", "e2e5")
	assert.Error(t, err)
}

// TestPositionFenWithMoves covers the boundary a Variadic-style flag
// parser would otherwise swallow whole: a fen's 6 fields followed by a
// trailing moves clause.
func TestPositionFenWithMoves(t *testing.T) {
	client := engine.NewClient(1, 300_000)

	err := client.Run("position", "fen", "only", "four", "fields", "here", "moves", "a2a3")
	assert.Error(t, err) // fewer than 6 fields before "moves"

	err = client.Run("position", "fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "w", "KQkq", "-", "0", "1",
		"moves", "e2e4")
	require.NoError(t, err)
}

func TestGoDepthReturnsBestMove(t *testing.T) {
	client := engine.NewClient(1, 300_000)
	require.NoError(t, client.Run("position", "startpos"))
	require.NoError(t, client.Run("go", "depth", "2"))

	// search runs in a goroutine; give it a moment to report bestmove
	time.Sleep(200 * time.Millisecond)
}

func TestSecondConcurrentGoIsRejected(t *testing.T) {
	client := engine.NewClient(1, 300_000)
	require.NoError(t, client.Run("position", "startpos"))
	require.NoError(t, client.Run("go", "infinite"))

	err := client.Run("go", "depth", "1")
	assert.Error(t, err)

	require.NoError(t, client.Run("stop"))
	time.Sleep(50 * time.Millisecond)
}
