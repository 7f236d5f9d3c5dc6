// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epqueue

import "fmt"

// BulkStrategy determines how bulk insertions restore the heap invariant.
type BulkStrategy int

// Values for BulkStrategy.
const (
	// BulkAuto rebuilds the heap bottom-up when that requires fewer
	// comparisons than sifting up each new entry, and sifts up otherwise.
	BulkAuto BulkStrategy = iota
	// BulkHeapify always appends all new entries and then rebuilds the
	// heap bottom-up in O(n+m).
	BulkHeapify
	// BulkSiftUp always inserts new entries one at a time in O(m log(n+m)).
	BulkSiftUp
)

var bulkStrategyNames = []string{"auto", "heapify", "siftup"}

// String implements fmt.Stringer.
func (s BulkStrategy) String() string {
	if s >= 0 && int(s) < len(bulkStrategyNames) {
		return bulkStrategyNames[s]
	}
	return fmt.Sprintf("BulkStrategy(%d)", int(s))
}

// ParseBulkStrategy returns the BulkStrategy named by s; the empty string
// is treated as "auto".
func ParseBulkStrategy(s string) (BulkStrategy, error) {
	if s == "" {
		return BulkAuto, nil
	}
	for i, n := range bulkStrategyNames {
		if n == s {
			return BulkStrategy(i), nil
		}
	}
	return BulkAuto, fmt.Errorf("%w: unrecognised bulk strategy %q", ErrInvalidArgumentValue, s)
}

type options struct {
	sliceCap int
	strategy BulkStrategy
}

// Option represents the options that can be passed to New.
type Option func(*options)

// WithSliceCap sets the initial capacity of the slice used to hold
// the queue's entries.
func WithSliceCap(n int) Option {
	return func(o *options) {
		o.sliceCap = max(n, 0)
	}
}

// WithBulkStrategy sets the strategy used by the bulk insertion methods.
func WithBulkStrategy(s BulkStrategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}
