// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/epqueue/script"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

type runFlags struct {
	CommonFlags
	RunnerFlags
	Quiet bool `subcmd:"quiet,false,'do not print transcripts'"`
}

type dumpFlags struct {
	CommonFlags
	RunnerFlags
}

func runCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*runFlags)
	cfg, err := loadConfig(ctx, &fv.CommonFlags, fv.RunnerFlags)
	if err != nil {
		return err
	}
	ctx, runner, done, err := setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()
	out := io.Writer(os.Stdout)
	if fv.Quiet {
		out = io.Discard
	}
	return runScripts(ctx, out, runner, args...)
}

func runScripts(ctx context.Context, out io.Writer, runner *script.Runner, filenames ...string) error {
	scripts, err := script.ReadFiles(ctx, filenames...)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("running scripts", "count", len(scripts))
	transcripts, runErr := runner.RunAll(ctx, scripts...)
	errs := &errors.M{}
	errs.Append(runErr)
	for _, tr := range transcripts {
		errs.Append(tr.Print(out))
	}
	if err := errs.Err(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d scripts ok\n", len(scripts))
	return nil
}

func dumpCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*dumpFlags)
	cfg, err := loadConfig(ctx, &fv.CommonFlags, fv.RunnerFlags)
	if err != nil {
		return err
	}
	ctx, runner, done, err := setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()
	return dumpScript(ctx, os.Stdout, runner, args[0])
}

func dumpScript(ctx context.Context, out io.Writer, runner *script.Runner, filename string) error {
	s, err := script.ReadFile(ctx, filename)
	if err != nil {
		return err
	}
	tr, runErr := runner.Run(ctx, s)
	if tr.Queue == nil {
		return runErr
	}
	fmt.Fprintf(out, "%s: %v entries\n", s.Name, tr.Queue.Size())
	if err := tr.Queue.Pretty(out); err != nil {
		return err
	}
	return runErr
}
