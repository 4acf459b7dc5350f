// Command pica is a UCI-speaking chess engine.
package main

import (
	"fmt"
	"os"

	"github.com/pica-engine/pica/internal/config"
	"github.com/pica-engine/pica/internal/engine"
	"github.com/pica-engine/pica/internal/logx"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("pica.toml")
	if err != nil {
		return err
	}
	client := engine.NewClient(cfg.Hash, cfg.BoardTimeMS)

	// NewClient applies the Info option's default, so the configured
	// verbosity is set after it.
	logx.SetVerbose(cfg.Info)

	switch args := os.Args[1:]; {
	case len(args) == 0:
		return client.Start()
	default:
		return client.Run(args...)
	}
}
