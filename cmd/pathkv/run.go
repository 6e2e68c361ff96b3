package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/pathtree/pathtree"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		cfg.Run.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	store, err := cfg.store()
	if err != nil {
		return err
	}
	var (
		out io.Writer = cc.Out
		got *bytes.Buffer
	)
	if cfg.Expect != "" {
		got = &bytes.Buffer{}
		out = got
	}
	in := NewInterp(store, out)
	if got == nil {
		in.Colors = colorsFor(cc.Out, cfg.Color)
	}
	in.Log = theLog
	if err := endSession(runScripts(in, cc.In, args)); err != nil {
		return err
	}
	if got == nil {
		return nil
	}
	want, err := os.ReadFile(cfg.Expect)
	if err != nil {
		return fmt.Errorf("error reading transcript %s: %w", cfg.Expect, err)
	}
	if d, ok := lineDiff(string(want), got.String()); !ok {
		fmt.Fprintf(cc.Out, "transcript %s differs:\n%s", cfg.Expect, d)
		return cli.ExitCodeErr(1)
	}
	return nil
}

func selectMain(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires an expression", cli.ErrUsage)
	}
	src := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	store, err := cfg.store()
	if err != nil {
		return err
	}
	in := NewInterp(store, io.Discard)
	in.Log = theLog
	if err := endSession(runScripts(in, cc.In, args)); err != nil {
		return err
	}
	in.Out = cc.Out
	in.Colors = colorsFor(cc.Out, cfg.Color)
	return in.selectEntries(src)
}

// endSession maps the error ending an interpreter session to the command
// result.  Running out of resources ends the session like quit: the store
// has been cleared and the error logged, so the command succeeds.
func endSession(err error) error {
	if errors.Is(err, pathtree.ErrResourceExhausted) {
		return nil
	}
	return err
}

// runScripts runs each named script through in, reading stdin for "-".
func runScripts(in *Interp, stdin io.Reader, args []string) error {
	for _, arg := range args {
		if err := runScript(in, stdin, arg); err != nil {
			return err
		}
	}
	return nil
}

func runScript(in *Interp, stdin io.Reader, arg string) error {
	if arg == "-" {
		if err := in.Run(stdin); err != nil {
			return fmt.Errorf("error running stdin: %w", err)
		}
		return nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", arg, err)
	}
	defer f.Close()
	if err := in.Run(f); err != nil {
		return fmt.Errorf("error running %s: %w", arg, err)
	}
	return nil
}
