// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package script

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/epqueue"
	"cloudeng.io/errors"
	"cloudeng.io/file"
	"github.com/sugawarayuuta/sonnet"
)

// Op is a single queue operation. Args are passed to the binding method
// named by Op. If Error is set the operation must fail with that error
// kind (see epqueue.Kind), otherwise it must succeed and, if Expect is
// set, return a value equal to Expect once numbers are compared as
// float64s.
type Op struct {
	Op     string `yaml:"op" json:"op"`
	Args   []any  `yaml:"args,omitempty" json:"args,omitempty"`
	Expect any    `yaml:"expect,omitempty" json:"expect,omitempty"`
	Error  string `yaml:"error,omitempty" json:"error,omitempty"`
}

func (o Op) String() string {
	var out strings.Builder
	out.WriteString(o.Op)
	out.WriteByte('(')
	for i, a := range o.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		fmt.Fprintf(&out, "%v", a)
	}
	out.WriteByte(')')
	return out.String()
}

// Script is a named sequence of operations.
type Script struct {
	Name string `yaml:"name" json:"name"`
	Ops  []Op   `yaml:"ops" json:"ops"`
}

// Validate checks that every operation is known and that every expected
// error names a valid kind.
func (s Script) Validate() error {
	errs := &errors.M{}
	for i, op := range s.Ops {
		if _, ok := operations[op.Op]; !ok && op.Op != opNew {
			errs.Append(fmt.Errorf("ops[%d]: unknown operation: %q", i, op.Op))
		}
		if len(op.Error) == 0 {
			continue
		}
		if k, err := epqueue.ParseKind(op.Error); err != nil || k == epqueue.KindNone || k == epqueue.KindUnknown {
			errs.Append(fmt.Errorf("ops[%d]: invalid error kind: %q", i, op.Error))
		}
	}
	if err := errs.Err(); err != nil {
		return fmt.Errorf("script %q: %w", s.Name, err)
	}
	return nil
}

// ParseYAML parses and validates a script in YAML format. Unknown fields
// are reported as errors.
func ParseYAML(spec []byte) (Script, error) {
	var s Script
	if err := cmdyaml.ParseConfigStrict(spec, &s); err != nil {
		return Script{}, err
	}
	return s, s.Validate()
}

// ParseJSON parses and validates a script in JSON format.
func ParseJSON(spec []byte) (Script, error) {
	var s Script
	if err := sonnet.Unmarshal(spec, &s); err != nil {
		return Script{}, err
	}
	return s, s.Validate()
}

// ReadFile reads a script from filename using file.FSReadFile, so that
// scripts may be read from an fs.ReadFileFS stored in ctx. Files with a
// .json extension are parsed as JSON, all others as YAML. A script
// without a name is named for its file.
func ReadFile(ctx context.Context, filename string) (Script, error) {
	var (
		s   Script
		err error
	)
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		var spec []byte
		spec, err = file.FSReadFile(ctx, filename)
		if err != nil {
			return Script{}, err
		}
		if err = sonnet.Unmarshal(spec, &s); err != nil {
			return Script{}, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
	} else if err = cmdyaml.ParseConfigFileStrict(ctx, filename, &s); err != nil {
		return Script{}, err
	}
	if len(s.Name) == 0 {
		s.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return s, s.Validate()
}

// ReadFiles reads all of the named scripts, returning every error
// encountered.
func ReadFiles(ctx context.Context, filenames ...string) ([]Script, error) {
	errs := &errors.M{}
	scripts := make([]Script, 0, len(filenames))
	for _, fn := range filenames {
		s, err := ReadFile(ctx, fn)
		if err != nil {
			errs.Append(err)
			continue
		}
		scripts = append(scripts, s)
	}
	return scripts, errs.Err()
}
