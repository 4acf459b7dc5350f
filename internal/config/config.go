// Package config loads the engine's optional startup configuration file.
// UCI's `setoption` always overrides whatever this file set, so it only
// ever runs once, before the UCI client starts its REPL.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the shape of an optional pica.toml file, seeding the same
// defaults a GUI would otherwise have to set via `setoption`.
type Config struct {
	Hash        int  `toml:"hash"`         // megabytes, see internal/tt.New
	BoardTimeMS int  `toml:"board_time_ms"` // default per-game budget, see internal/timemanager
	Info        bool `toml:"info"`          // verbose stderr logging
}

// Default returns the configuration applied when no pica.toml is found.
func Default() Config {
	return Config{Hash: 16, BoardTimeMS: 300_000, Info: false}
}

// Load reads and parses path. A missing file is not an error: it
// returns Default() so the engine can always run with sane settings.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: decode %s", path)
	}

	return cfg, nil
}
