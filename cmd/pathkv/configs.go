package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/pathtree/debug"
	"github.com/signadot/pathtree/pathtree"
)

type MainConfig struct {
	ConfigFile string `cli:"name=config desc='yaml file of store limits'"`
	Color      bool   `cli:"name=color desc='color output'"`
	Verbose    bool   `cli:"name=v aliases=verbose desc='log at debug level'"`
	Gops       bool   `cli:"name=gops desc='start a gops diagnostics agent'"`
	Debug      string `cli:"name=debug desc='comma separated debug switches: tree,hash,store,all'"`

	Main *cli.Command
}

// store creates a store from the configuration file, if any.
func (cfg *MainConfig) store() (*pathtree.Store, error) {
	storeCfg := pathtree.DefaultConfig()
	if cfg.ConfigFile != "" {
		loaded, err := LoadConfig(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		storeCfg = *loaded
	}
	return pathtree.New(&storeCfg, pathtree.WithLogger(theLog))
}

func (cfg *MainConfig) setup() error {
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if cfg.Debug != "" {
		if err := debug.Enable(strings.Split(cfg.Debug, ",")...); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	return nil
}

// LoadConfig reads a yaml config file and merges it onto the defaults.
func LoadConfig(filename string) (*pathtree.Config, error) {
	cfg := pathtree.DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded pathtree.Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}
	return &cfg, nil
}

type ReplConfig struct {
	*MainConfig

	Repl *cli.Command
}

type RunConfig struct {
	*MainConfig

	Expect string `cli:"name=expect desc='golden transcript to compare output against'"`

	Run *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Select *cli.Command
}
