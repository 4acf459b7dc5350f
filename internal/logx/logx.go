// Package logx is the engine's structured logger. UCI reserves stdout
// for the protocol stream, so every log line goes to stderr instead.
package logx

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-wide logger, shared by every internal package that
// needs to report something outside the UCI protocol stream (option
// changes, parse failures, TT resizes).
var Log = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// SetVerbose toggles between warn-only and debug-level logging, driven
// by the `setoption name Info value <bool>` UCI option.
func SetVerbose(verbose bool) {
	if verbose {
		Log = Log.Level(zerolog.DebugLevel)
		return
	}
	Log = Log.Level(zerolog.WarnLevel)
}
