// Package options defines the UCI options this engine supports.
package options

import (
	"github.com/pica-engine/pica/internal/engine/context"
	"github.com/pica-engine/pica/internal/logx"
	"github.com/pica-engine/pica/internal/uci"
)

// NewHash builds the `Hash` spin option: the size, in megabytes,
// allocated for the transposition table. Changing it reallocates
// (and so clears) the table, per spec.md §6.1. defaultMB is reported to
// the GUI as the option's default, and uci.OptionSet.SetDefaults applies
// it too, reallocating the table at that size.
func NewHash(engine *context.Engine, defaultMB int) *uci.SpinOption {
	return &uci.SpinOption{
		Name:    "Hash",
		Default: defaultMB,
		Min:     1,
		Max:     33554432,
		Apply: func(mb int) error {
			engine.Options.Hash = mb
			engine.Searcher.TT.Resize(mb)
			logx.Log.Debug().Int("hash_mb", mb).Msg("resized transposition table")
			return nil
		},
	}
}
