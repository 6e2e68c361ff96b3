package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "pathkv").
		WithSynopsis("pathkv [opts] command [opts]").
		WithDescription("pathkv stores string values at slash separated paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pathkvMain(cfg, cc, args)
		}).
		WithSubs(
			ReplCommand(cfg),
			RunCommand(cfg),
			SelectCommand(cfg))
}

func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("repl").
		WithAliases("r").
		WithSynopsis("repl").
		WithDescription("read commands from stdin; type help for a list").
		WithRun(func(cc *cli.Context, args []string) error {
			return repl(cfg, cc, args)
		})
	cfg.Repl = cmd
	return cmd
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("run").
		WithSynopsis("run [-expect transcript] [scripts]").
		WithDescription("run command scripts against one store, - for stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
	cfg.Run = cmd
	return cmd
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("select").
		WithAliases("s", "sel").
		WithSynopsis("select <expr> [scripts]").
		WithDescription("run scripts quietly, then print the entries matching expr").
		WithRun(func(cc *cli.Context, args []string) error {
			return selectMain(cfg, cc, args)
		})
	cfg.Select = cmd
	return cmd
}
