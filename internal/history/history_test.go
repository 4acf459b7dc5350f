package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pica-engine/pica/internal/history"
)

func TestNewRingIsNotThreeRep(t *testing.T) {
	r := history.New()
	assert.False(t, r.IsThreeRep())
}

func TestPushIsIdempotentForRepeatedHash(t *testing.T) {
	r := history.New()
	r.Push(100)
	first := r
	r.Push(100)
	assert.Equal(t, first, r, "pushing the same hash twice in a row must be a no-op")
}

// TestThreefoldSequence mirrors the literal 13-move repetition fixture
// (Kd6 Kb6 Qb3+ Ka5 Kd5 Ka6 Qc2 Ka5 Qb3 Ka6 Qc2 Ka5 Qb3): the position
// reached after each "Qb3"/"Qc2" pair recurs every 4 plies. With a
// 9-slot ring that means the repeating hash lands 4 slots apart, at
// indices 0, 4 and 8 once it has occurred three times.
func TestThreefoldSequence(t *testing.T) {
	r := history.New()
	r.Push(0) // starting position, distinct from the repeating cycle

	const repeat = 42
	sequence := []uint64{
		101, 102, 103, repeat,
		104, 105, 106, repeat,
		107, 108, 109, repeat,
	}

	for i, h := range sequence {
		if i == len(sequence)-1 {
			break
		}
		r.Push(h)
		assert.False(t, r.IsThreeRep(), "should not be three-fold before the final repeat, step %d", i)
	}

	r.Push(sequence[len(sequence)-1])
	assert.True(t, r.IsThreeRep(), "should be three-fold after the position recurs a third time")
}

func TestPushedDoesNotMutateReceiver(t *testing.T) {
	r := history.New()
	r2 := r.Pushed(999)
	assert.NotEqual(t, r, r2)
}
