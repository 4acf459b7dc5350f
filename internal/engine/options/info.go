package options

import (
	"github.com/pica-engine/pica/internal/engine/context"
	"github.com/pica-engine/pica/internal/logx"
	"github.com/pica-engine/pica/internal/uci"
)

// NewInfo builds the `Info` check option: whether the engine logs
// verbose debug traces (option changes, parse failures, TT resizes) to
// stderr. Never affects the UCI protocol stream on stdout.
func NewInfo(engine *context.Engine) *uci.CheckOption {
	return &uci.CheckOption{
		Name:    "Info",
		Default: false,
		Apply: func(verbose bool) error {
			engine.Options.Info = verbose
			logx.SetVerbose(verbose)
			return nil
		},
	}
}
