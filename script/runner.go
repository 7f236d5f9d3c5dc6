// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package script

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"cloudeng.io/epqueue"
	"cloudeng.io/epqueue/binding"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"golang.org/x/sync/errgroup"
)

// ErrMismatch is returned when an operation's result or error does not
// match the one the script expects.
var ErrMismatch = errors.New("mismatch")

// Config represents the configuration of a Runner, typically read from
// the runner: section of a YAML configuration file.
type Config struct {
	// Order is the order used for queues created before a script's
	// first new operation, "asc" if not set.
	Order string `yaml:"order" json:"order"`
	// BulkStrategy is one of auto, heapify or siftup.
	BulkStrategy string `yaml:"bulk_strategy" json:"bulk_strategy"`
	SliceCap     int    `yaml:"slice_cap" json:"slice_cap"`
	// Concurrency bounds the number of scripts run concurrently by
	// RunAll, runtime.GOMAXPROCS(0) if not set.
	Concurrency int `yaml:"concurrency" json:"concurrency"`
	// Synchronized creates queues that are safe for concurrent use.
	Synchronized bool `yaml:"synchronized" json:"synchronized"`
}

// Runner executes scripts.
type Runner struct {
	order        string
	opts         []epqueue.Option
	concurrency  int
	synchronized bool
}

// NewRunner returns a Runner for the supplied configuration.
func (c Config) NewRunner() (*Runner, error) {
	r := &Runner{
		order:        c.Order,
		concurrency:  c.Concurrency,
		synchronized: c.Synchronized,
	}
	if len(r.order) == 0 {
		r.order = epqueue.AscendingToken
	}
	if _, err := epqueue.ParseOrder(r.order); err != nil {
		return nil, fmt.Errorf("runner: order: %w", err)
	}
	strategy, err := epqueue.ParseBulkStrategy(c.BulkStrategy)
	if err != nil {
		return nil, fmt.Errorf("runner: bulk_strategy: %w", err)
	}
	if c.SliceCap < 0 {
		return nil, fmt.Errorf("runner: slice_cap: %w: %v is negative", epqueue.ErrInvalidArgumentValue, c.SliceCap)
	}
	if r.concurrency <= 0 {
		r.concurrency = runtime.GOMAXPROCS(0)
	}
	r.opts = []epqueue.Option{
		epqueue.WithBulkStrategy(strategy),
		epqueue.WithSliceCap(c.SliceCap),
	}
	return r, nil
}

func (r *Runner) newQueue(args ...any) (*binding.Queue, error) {
	if r.synchronized {
		return binding.NewSynchronized(r.opts, args...)
	}
	return binding.NewWithOptions(r.opts, args...)
}

// Result is the outcome of a single operation.
type Result struct {
	Index int
	Op    Op
	Value any
	Err   error
}

// Transcript records the results of running a script and the queue
// that it left behind.
type Transcript struct {
	Name    string
	Results []Result
	Queue   *binding.Queue
}

// Print writes a human readable rendition of the transcript to w.
func (t Transcript) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s:\n", t.Name); err != nil {
		return err
	}
	for _, r := range t.Results {
		var err error
		switch {
		case r.Err != nil:
			_, err = fmt.Fprintf(w, "%4d %v: %v: %v\n", r.Index, r.Op, epqueue.KindOf(r.Err), r.Err)
		case r.Value != nil:
			_, err = fmt.Fprintf(w, "%4d %v: %v\n", r.Index, r.Op, r.Value)
		default:
			_, err = fmt.Fprintf(w, "%4d %v\n", r.Index, r.Op)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Run executes s against a queue of its own. All operations are run
// and every mismatch between an operation's outcome and the outcome s
// expects is returned as an error that wraps ErrMismatch. The context
// is checked before each operation.
func (r *Runner) Run(ctx context.Context, s Script) (Transcript, error) {
	ctx = ctxlog.ContextWith(ctx, "script", s.Name)
	logger := ctxlog.Logger(ctx)
	tr := Transcript{Name: s.Name}
	if err := s.Validate(); err != nil {
		return tr, err
	}
	q, err := r.newQueue(r.order)
	if err != nil {
		return tr, err
	}
	errs := &errors.M{}
	for i, op := range s.Ops {
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}
		var (
			value any
			err   error
		)
		if op.Op == opNew {
			var nq *binding.Queue
			if nq, err = r.newQueue(op.Args...); err == nil {
				q = nq
			}
		} else {
			value, err = operations[op.Op](q, op.Args)
		}
		if err != nil {
			value = nil
		}
		tr.Results = append(tr.Results, Result{Index: i, Op: op, Value: value, Err: err})
		logger.Debug("op", "index", i, "op", op.Op, "value", value, "err", err)
		if merr := check(op, value, err); merr != nil {
			logger.Warn("unexpected outcome", "index", i, "op", op.Op, "err", merr)
			errs.Append(fmt.Errorf("%s: ops[%d]: %v: %w", s.Name, i, op, merr))
		}
	}
	tr.Queue = q
	return tr, errs.Err()
}

func check(op Op, value any, err error) error {
	if len(op.Error) > 0 {
		want, _ := epqueue.ParseKind(op.Error)
		if got := epqueue.KindOf(err); got != want {
			return fmt.Errorf("%w: got error kind %v (%v), want %v", ErrMismatch, got, err, want)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: unexpected error: %v", ErrMismatch, err)
	}
	if op.Expect != nil && !equal(value, op.Expect) {
		return fmt.Errorf("%w: got %v, want %v", ErrMismatch, value, op.Expect)
	}
	return nil
}

// RunAll runs each script concurrently, with at most the configured
// number in flight, and returns their transcripts in the same order as
// scripts. Every script is run even if others fail; all of their errors
// are returned.
func (r *Runner) RunAll(ctx context.Context, scripts ...Script) ([]Transcript, error) {
	transcripts := make([]Transcript, len(scripts))
	errs := &errors.M{}
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, s := range scripts {
		g.Go(func() error {
			tr, err := r.Run(ctx, s)
			transcripts[i] = tr
			errs.Append(err)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return transcripts, err
	}
	return transcripts, errs.Err()
}
