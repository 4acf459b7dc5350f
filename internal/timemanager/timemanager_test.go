package timemanager_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pica-engine/pica/internal/chessboard"
	"github.com/pica-engine/pica/internal/timemanager"
)

func TestInfiniteNeverStops(t *testing.T) {
	m := timemanager.New(timemanager.Limits{Infinite: true}, chessboard.White)
	assert.True(t, m.CanContinue(1000))
	assert.False(t, m.ShouldAbort(1 << 40))
}

func TestDepthCapStopsSoftGate(t *testing.T) {
	m := timemanager.New(timemanager.Limits{Depth: 3}, chessboard.White)
	assert.True(t, m.CanContinue(3))
	assert.False(t, m.CanContinue(4))
}

func TestMoveTimeEventuallyAborts(t *testing.T) {
	m := timemanager.New(timemanager.Limits{MoveTimeMS: 1}, chessboard.White)
	time.Sleep(10 * time.Millisecond)
	assert.True(t, m.ShouldAbort(0))
}

// TestSoftGateIsMonotone checks invariant 7: once CanContinue returns
// false for some elapsed time, it keeps returning false as time passes
// further, for the same depth/inputs.
func TestSoftGateIsMonotone(t *testing.T) {
	m := timemanager.New(timemanager.Limits{MoveTimeMS: 5}, chessboard.White)

	for !m.CanContinue(1) {
		// already false at the first observation; nothing to prove
		return
	}

	time.Sleep(20 * time.Millisecond)
	assert.False(t, m.CanContinue(1))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, m.CanContinue(1), "soft gate must not flip back to true")
}

func TestNodeCapAborts(t *testing.T) {
	m := timemanager.New(timemanager.Limits{Nodes: 100}, chessboard.White)
	assert.False(t, m.ShouldAbort(50))
	assert.True(t, m.ShouldAbort(200))
}

// TestDefaultBoardTimeMSOverridesPackageDefault covers the config-seeded
// per-game time budget: when go carries no time information at all, the
// manager uses Limits.DefaultBoardTimeMS rather than its own built-in
// fallback.
func TestDefaultBoardTimeMSOverridesPackageDefault(t *testing.T) {
	m := timemanager.New(timemanager.Limits{DefaultBoardTimeMS: 20}, chessboard.White)
	time.Sleep(5 * time.Millisecond)
	assert.True(t, m.ShouldAbort(0), "a 20ms board time should abort almost immediately")
}
