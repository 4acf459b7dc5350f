package uci_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pica-engine/pica/internal/uci"
)

func TestUnknownCommandReturnsError(t *testing.T) {
	client := uci.NewClient()
	err := client.Run("notacommand")
	assert.Error(t, err)
}

func TestIsReadyRepliesReadyOk(t *testing.T) {
	client := uci.NewClient()
	err := client.Run("isready")
	require.NoError(t, err)
}

func TestCustomCommandIsDispatched(t *testing.T) {
	client := uci.NewClient()

	called := false
	client.AddCommand(uci.Command{
		Name: "ping",
		Run: func(*uci.Interaction, []string) error {
			called = true
			return nil
		},
	})

	require.NoError(t, client.Run("ping"))
	assert.True(t, called)
}

func TestQuitStopsTheReplLoop(t *testing.T) {
	client := uci.NewClient()
	err := client.Run("quit")
	require.Error(t, err) // errQuit is unexported; Start, not Run, swallows it
}

func TestUnknownOptionIsRejectedBySetOption(t *testing.T) {
	set := uci.NewOptionSet()
	err := set.SetOption("Nonexistent", "1")
	assert.Error(t, err)
}

func TestSpinOptionRejectsOutOfBoundsValue(t *testing.T) {
	set := uci.NewOptionSet()
	applied := -1
	set.AddSpin(&uci.SpinOption{
		Name: "Hash", Default: 16, Min: 1, Max: 1024,
		Apply: func(n int) error { applied = n; return nil },
	})

	require.NoError(t, set.SetDefaults())
	assert.Equal(t, 16, applied)

	assert.Error(t, set.SetOption("Hash", "2048"))
	assert.Error(t, set.SetOption("Hash", "not-a-number"))
	require.NoError(t, set.SetOption("Hash", "64"))
	assert.Equal(t, 64, applied)
}
