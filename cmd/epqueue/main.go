// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command epqueue runs priority queue operation scripts and benchmarks
// the queue's bulk operations.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: epqueue
summary: run and inspect priority queue operation scripts
commands:
  - name: run
    summary: run one or more YAML or JSON operation scripts concurrently and print their transcripts
    arguments:
      - <script>
      - ...
  - name: dump
    summary: run a single script and print the heap it leaves behind as an indented tree
    arguments:
      - <script>
  - name: bench
    summary: compare bulk and per-element insertion and removal
`

var cmdSet = subcmd.MustFromYAML(cmdSpec)

func init() {
	cmdSet.Set("run").MustRunnerAndFlags(runCmd,
		subcmd.MustRegisteredFlagSet(&runFlags{}))
	cmdSet.Set("dump").MustRunnerAndFlags(dumpCmd,
		subcmd.MustRegisteredFlagSet(&dumpFlags{}))
	cmdSet.Set("bench").MustRunnerAndFlags(benchCmd,
		subcmd.MustRegisteredFlagSet(&benchFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
