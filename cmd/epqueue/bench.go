// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"cloudeng.io/epqueue"
	"cloudeng.io/logging/ctxlog"
)

type benchFlags struct {
	CommonFlags
	Size         int    `subcmd:"size,1000000,'number of keys to insert and remove'"`
	Distribution string `subcmd:"distribution,uniform,'key distribution: uniform or zipf'"`
	Seed         int64  `subcmd:"seed,1,'random number seed'"`
	Order        string `subcmd:"order,asc,'queue order: asc or desc'"`
}

type benchResult struct {
	name     string
	duration time.Duration
	n        int
}

func (br benchResult) String() string {
	per := time.Duration(0)
	if br.n > 0 {
		per = br.duration / time.Duration(br.n)
	}
	return fmt.Sprintf("%-28s %12v %10v/op", br.name, br.duration, per)
}

func benchCmd(ctx context.Context, values any, _ []string) error {
	fv := values.(*benchFlags)
	cfg, err := loadConfig(ctx, &fv.CommonFlags, RunnerFlags{})
	if err != nil {
		return err
	}
	ctx, _, done, err := setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()
	order, err := epqueue.ParseOrder(fv.Order)
	if err != nil {
		return err
	}
	keys, err := benchKeys(fv.Distribution, fv.Size, fv.Seed)
	if err != nil {
		return err
	}
	return bench(ctx, os.Stdout, order, keys)
}

func benchKeys(distribution string, n int, seed int64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: size %v is negative", epqueue.ErrInvalidArgumentValue, n)
	}
	rnd := rand.New(rand.NewSource(seed))
	keys := make([]float64, n)
	switch distribution {
	case "uniform":
		for i := range keys {
			keys[i] = rnd.Float64()
		}
	case "zipf":
		z := rand.NewZipf(rnd, 1.1, 1, uint64(max(n, 1)))
		for i := range keys {
			keys[i] = float64(z.Uint64())
		}
	default:
		return nil, fmt.Errorf("%w: unrecognised distribution %q", epqueue.ErrInvalidArgumentValue, distribution)
	}
	return keys, nil
}

func bench(ctx context.Context, out io.Writer, order epqueue.Order, keys []float64) error {
	logger := ctxlog.Logger(ctx)
	n := len(keys)
	var results []benchResult
	timeIt := func(name string, fn func() error) error {
		start := time.Now()
		if err := fn(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		br := benchResult{name: name, duration: time.Since(start), n: n}
		logger.Info("bench", "name", name, "keys", n, "duration", br.duration)
		results = append(results, br)
		return nil
	}
	filled := func(strategy epqueue.BulkStrategy) (*epqueue.Queue[struct{}], error) {
		q := epqueue.New[struct{}](order, epqueue.WithBulkStrategy(strategy))
		return q, q.BulkInsertKeys(keys)
	}

	if err := timeIt("insertKey", func() error {
		q := epqueue.New[struct{}](order)
		for _, k := range keys {
			if err := q.InsertKey(k); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	for _, s := range []epqueue.BulkStrategy{epqueue.BulkAuto, epqueue.BulkHeapify, epqueue.BulkSiftUp} {
		if err := timeIt("bulkInsertKeys/"+s.String(), func() error {
			_, err := filled(s)
			return err
		}); err != nil {
			return err
		}
	}

	q, err := filled(epqueue.BulkAuto)
	if err != nil {
		return err
	}
	if err := timeIt("popKey", func() error {
		for q.Len() > 0 {
			if _, err := q.PopKey(); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	if q, err = filled(epqueue.BulkAuto); err != nil {
		return err
	}
	if err := timeIt("bulkPopKeys", func() error {
		_, err := q.BulkPopKeys(n)
		return err
	}); err != nil {
		return err
	}
	if q, err = filled(epqueue.BulkAuto); err != nil {
		return err
	}
	if err := timeIt("bulkPopKeys/half", func() error {
		_, err := q.BulkPopKeys(n / 2)
		return err
	}); err != nil {
		return err
	}

	fmt.Fprintf(out, "%v keys, order %v\n", n, order)
	for _, r := range results {
		fmt.Fprintln(out, r)
	}
	return nil
}
