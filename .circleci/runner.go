// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
)

var (
	testFlag    bool
	lintFlag    bool
	scriptsFlag bool
	listFlag    bool
	scriptDir   string
	expectFail  string
)

func done(msg string, err error) {
	fmt.Printf("Failed: %s: %s\n", msg, err)
	os.Exit(1)
}

func main() {
	ctx := context.Background()
	flag.BoolVar(&testFlag, "test", false, "run tests")
	flag.BoolVar(&lintFlag, "lint", false, "run go vet")
	flag.BoolVar(&scriptsFlag, "scripts", false, "run the operation scripts using the epqueue command")
	flag.BoolVar(&listFlag, "list", false, "print the operation scripts that will be run")
	flag.StringVar(&scriptDir, "script-dir", filepath.Join("script", "testdata"), "directory containing operation scripts")
	flag.StringVar(&expectFail, "expect-fail", "mismatch.yaml", "comma separated list of scripts that are expected to fail")

	flag.Parse()

	if !(testFlag || lintFlag || scriptsFlag || listFlag) {
		fmt.Fprintf(os.Stderr, "at least one flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	scripts, err := operationScripts(scriptDir, strings.Split(expectFail, ","))
	if err != nil {
		done("finding scripts", err)
	}

	if listFlag {
		fmt.Println(strings.Join(scripts, " "))
		return
	}

	if lintFlag {
		if err := run(ctx, "go", "vet", "./..."); err != nil {
			done("lint", err)
		}
	}

	if testFlag {
		if err := run(ctx, "go", "test", "-failfast", "--covermode=atomic", "--vet=off", "-race", "./..."); err != nil {
			done("tests", err)
		}
	}

	if scriptsFlag {
		args := append([]string{"run", "./cmd/epqueue", "run", "--quiet"}, scripts...)
		if err := run(ctx, "go", args...); err != nil {
			done("scripts", err)
		}
	}
}

// operationScripts returns the YAML and JSON files in dir other than
// those named in skip.
func operationScripts(dir string, skip []string) ([]string, error) {
	var scripts []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || slices.Contains(skip, d.Name()) {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml", ".json":
			scripts = append(scripts, path)
		}
		return nil
	})
	return scripts, err
}

func run(ctx context.Context, name string, args ...string) error {
	fmt.Printf("%v %v...\n", name, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		fmt.Printf("%v... ok\n", args[0])
	} else {
		fmt.Printf("%v... failed\n", args[0])
	}
	return err
}
