// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/epqueue/script"
	"cloudeng.io/logging/ctxlog"
)

// CommonFlags are shared by all commands. If a configuration file is
// specified its logging and runner sections take precedence over the
// corresponding flags.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'YAML configuration file with logging and runner sections'"`
}

// RunnerFlags configure the script runner.
type RunnerFlags struct {
	Order        string `subcmd:"order,asc,'order of queues created before a script calls new: asc or desc'"`
	BulkStrategy string `subcmd:"bulk-strategy,auto,'bulk insertion strategy: auto, heapify or siftup'"`
	Concurrency  int    `subcmd:"concurrency,0,'number of scripts to run concurrently, 0 for GOMAXPROCS'"`
	Synchronized bool   `subcmd:"synchronized,false,'use queues that are safe for concurrent use'"`
}

// Config represents the contents of the --config file.
type Config struct {
	Logging cmdutil.LoggingConfig `yaml:"logging"`
	Runner  script.Config         `yaml:"runner"`
}

func (rf RunnerFlags) runnerConfig() script.Config {
	return script.Config{
		Order:        rf.Order,
		BulkStrategy: rf.BulkStrategy,
		Concurrency:  rf.Concurrency,
		Synchronized: rf.Synchronized,
	}
}

// loadConfig returns the configuration to use, read from cf.Config if
// set and otherwise built from the flags.
func loadConfig(ctx context.Context, cf *CommonFlags, rf RunnerFlags) (Config, error) {
	if len(cf.Config) == 0 {
		return Config{
			Logging: cf.LoggingConfig(),
			Runner:  rf.runnerConfig(),
		}, nil
	}
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, cf.Config, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setup creates the logger and script runner described by cfg. The
// returned function closes the logger.
func setup(ctx context.Context, cfg Config) (context.Context, *script.Runner, func(), error) {
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return ctx, nil, nil, err
	}
	runner, err := cfg.Runner.NewRunner()
	if err != nil {
		logger.Close()
		return ctx, nil, nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	return ctx, runner, func() { logger.Close() }, nil
}
