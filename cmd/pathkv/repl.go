package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func repl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		cfg.Repl.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: repl takes no arguments", cli.ErrUsage)
	}
	store, err := cfg.store()
	if err != nil {
		return err
	}
	in := NewInterp(store, cc.Out)
	in.Colors = colorsFor(cc.Out, cfg.Color)
	in.Log = theLog
	return endSession(in.Run(cc.In))
}
