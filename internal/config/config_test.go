package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pica-engine/pica/internal/config"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pica.toml")
	require.NoError(t, os.WriteFile(path, []byte("hash = 64\nboard_time_ms = 60000\ninfo = true\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Hash)
	assert.Equal(t, 60_000, cfg.BoardTimeMS)
	assert.True(t, cfg.Info)
}
