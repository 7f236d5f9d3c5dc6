// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package script_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"cloudeng.io/epqueue"
	"cloudeng.io/epqueue/script"
	"cloudeng.io/errors"
	"cloudeng.io/file"
	"cloudeng.io/logging/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(t *testing.T, cfg script.Config) *script.Runner {
	t.Helper()
	r, err := cfg.NewRunner()
	require.NoError(t, err)
	return r
}

func TestTestdata(t *testing.T) {
	ctx := context.Background()
	names := []string{"roundtrip.yaml", "projection.yaml", "errors.yaml", "fifo.json", "dump.yaml"}
	for i, n := range names {
		names[i] = filepath.Join("testdata", n)
	}
	scripts, err := script.ReadFiles(ctx, names...)
	require.NoError(t, err)
	require.Len(t, scripts, len(names))

	for _, synchronized := range []bool{false, true} {
		for _, strategy := range []string{"", "heapify", "siftup"} {
			r := newRunner(t, script.Config{
				BulkStrategy: strategy,
				Synchronized: synchronized,
				Concurrency:  2,
			})
			transcripts, err := r.RunAll(ctx, scripts...)
			require.NoError(t, err, "strategy %q", strategy)
			require.Len(t, transcripts, len(scripts))
			for i, tr := range transcripts {
				assert.Equal(t, scripts[i].Name, tr.Name)
				assert.Len(t, tr.Results, len(scripts[i].Ops))
				require.NotNil(t, tr.Queue)
			}
		}
	}
}

func TestMismatch(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	ctx = ctxlog.Context(ctx, slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	s, err := script.ReadFile(ctx, filepath.Join("testdata", "mismatch.yaml"))
	require.NoError(t, err)
	tr, err := newRunner(t, script.Config{}).Run(ctx, s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, script.ErrMismatch))
	m, ok := err.(*errors.M)
	require.True(t, ok, "%T", err)
	assert.Len(t, m.Unwrap(), 3)
	assert.Contains(t, err.Error(), "mismatch: ops[1]: peekKey(): mismatch: got 3, want 4")

	require.Len(t, tr.Results, 4)
	assert.Equal(t, 3.0, tr.Results[1].Value)
	assert.Equal(t, epqueue.KindEmptyQueue, epqueue.KindOf(tr.Results[3].Err))
	assert.Equal(t, 0, tr.Queue.Size())

	assert.Contains(t, logs.String(), `"msg":"unexpected outcome"`)
	assert.Contains(t, logs.String(), `"script":"mismatch"`)
	assert.Equal(t, 3, strings.Count(logs.String(), `"level":"WARN"`))
	assert.Equal(t, 4, strings.Count(logs.String(), `"level":"DEBUG"`))
}

func TestParse(t *testing.T) {
	s, err := script.ParseYAML([]byte(`
name: ok
ops:
  - op: insertKey
    args: [1]
  - op: popKey
    expect: 1
`))
	require.NoError(t, err)
	assert.Equal(t, "ok", s.Name)
	assert.Len(t, s.Ops, 2)

	for _, tc := range []struct {
		spec string
		msg  string
	}{
		{"name: x\nops:\n  - op: frobnicate\n", `ops[0]: unknown operation: "frobnicate"`},
		{"name: x\nops:\n  - op: popKey\n    error: Oops\n", `ops[0]: invalid error kind: "Oops"`},
		{"name: x\nops:\n  - op: popKey\n    error: None\n", `ops[0]: invalid error kind: "None"`},
		{"name: x\nops:\n  - op: popKey\n    error: Unknown\n", `ops[0]: invalid error kind: "Unknown"`},
		{"name: x\nops:\n  - op: popKey\n    oops: 1\n", "field oops not found"},
	} {
		_, err := script.ParseYAML([]byte(tc.spec))
		require.Error(t, err)
		assert.Contains(t, err.Error(), tc.msg)
	}

	s, err = script.ParseJSON([]byte(`{"name": "j", "ops": [{"op": "insertKey", "args": [2]}, {"op": "size", "expect": 1}]}`))
	require.NoError(t, err)
	assert.Equal(t, []any{2.0}, s.Ops[0].Args)
	_, err = script.ParseJSON([]byte(`{"name": "j", "ops": [{"op": "bogus"}]}`))
	assert.ErrorContains(t, err, "unknown operation")
	_, err = script.ParseJSON([]byte(`{"name": `))
	assert.Error(t, err)
}

func TestReadFileFS(t *testing.T) {
	fs := fstest.MapFS{
		"scripts/unnamed.yaml": &fstest.MapFile{Data: []byte("ops:\n  - op: size\n    expect: 0\n")},
		"scripts/other.json":   &fstest.MapFile{Data: []byte(`{"ops": [{"op": "peekKey", "error": "EmptyQueue"}]}`)},
	}
	ctx := file.ContextWithFS(context.Background(), fs)
	scripts, err := script.ReadFiles(ctx, "scripts/unnamed.yaml", "scripts/other.json")
	require.NoError(t, err)
	require.Len(t, scripts, 2)
	assert.Equal(t, "unnamed", scripts[0].Name)
	assert.Equal(t, "other", scripts[1].Name)
	_, err = newRunner(t, script.Config{}).RunAll(ctx, scripts...)
	require.NoError(t, err)

	_, err = script.ReadFiles(ctx, "scripts/missing.yaml", "scripts/missing.json")
	require.Error(t, err)
	assert.Len(t, err.(*errors.M).Unwrap(), 2)
}

func TestDefaultOrder(t *testing.T) {
	s := script.Script{Name: "order", Ops: []script.Op{
		{Op: "bulkInsertKeys", Args: []any{[]any{1, 3, 2}}},
		{Op: "popKey", Expect: 3},
	}}
	_, err := newRunner(t, script.Config{Order: "desc"}).Run(context.Background(), s)
	require.NoError(t, err)
	_, err = newRunner(t, script.Config{}).Run(context.Background(), s)
	assert.ErrorIs(t, err, script.ErrMismatch)
}

func TestConfig(t *testing.T) {
	for _, cfg := range []script.Config{
		{Order: "up"},
		{BulkStrategy: "sometimes"},
		{SliceCap: -1},
	} {
		_, err := cfg.NewRunner()
		assert.Equal(t, epqueue.KindInvalidArgumentValue, epqueue.KindOf(err), "%+v: %v", cfg, err)
	}
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := script.Script{Name: "cancelled", Ops: []script.Op{{Op: "size"}}}
	tr, err := newRunner(t, script.Config{}).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, tr.Results)
}

func TestPrint(t *testing.T) {
	s := script.Script{Name: "print", Ops: []script.Op{
		{Op: "insertKeyValue", Args: []any{1, "a"}},
		{Op: "peekKeyValue"},
		{Op: "bulkPopKeys", Args: []any{true}, Error: "InvalidArgumentValue"},
	}}
	tr, err := newRunner(t, script.Config{}).Run(context.Background(), s)
	require.NoError(t, err)
	var out strings.Builder
	require.NoError(t, tr.Print(&out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "print:", lines[0])
	assert.Equal(t, "   0 insertKeyValue(1, a)", lines[1])
	assert.Equal(t, "   1 peekKeyValue(): [1 a]", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "   2 bulkPopKeys(true): InvalidArgumentValue: "), lines[3])
}
