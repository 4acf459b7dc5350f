package tt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pica-engine/pica/internal/chessboard"
	"github.com/pica-engine/pica/internal/tt"
)

func TestRoundTrip(t *testing.T) {
	table := tt.New(1)

	entry := tt.Entry{
		Key:   12345,
		Depth: 4,
		Type:  tt.Exact,
		Value: 37,
		Move:  chessboard.Move{From: 12, To: 28},
	}

	table.Set(entry)

	got, ok := table.Get(entry.Key)
	assert.True(t, ok)
	assert.Equal(t, entry, got)
}

func TestGetMissReturnsNotOK(t *testing.T) {
	table := tt.New(1)
	_, ok := table.Get(999)
	assert.False(t, ok)
}

func TestResizeClearsTable(t *testing.T) {
	table := tt.New(1)
	table.Set(tt.Entry{Key: 1, Type: tt.Exact})

	table.Resize(1)

	_, ok := table.Get(1)
	assert.False(t, ok, "resizing should discard prior contents")
}

func TestLenScalesWithMegabytes(t *testing.T) {
	small := tt.New(1)
	large := tt.New(4)
	assert.Greater(t, large.Len(), small.Len())
}

func TestMateScorePlyRoundTrip(t *testing.T) {
	const ply = 3
	mateScore := int32(tt.MateThreshold + 2)

	stored := tt.StoreValue(mateScore, ply)
	probed := tt.ProbeValue(stored, ply)

	assert.Equal(t, mateScore, probed)
}

func TestMateScoreStoreShiftsTowardRoot(t *testing.T) {
	mateScore := int32(tt.MateThreshold + 2)
	stored := tt.StoreValue(mateScore, 5)
	assert.Equal(t, mateScore+5, stored)
}

func TestNonMateScoreUnaffectedByPlyShift(t *testing.T) {
	assert.Equal(t, int32(37), tt.StoreValue(37, 10))
	assert.Equal(t, int32(37), tt.ProbeValue(37, 10))
}
