// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epqueue

import (
	"fmt"
	"math/bits"
	"slices"

	"cloudeng.io/epqueue/internal/heap"
)

// BulkInsertKeys inserts all of keys without associated values. If any
// key is NaN or infinite, ErrInvalidArgumentType is returned and the
// queue is left unchanged. An empty keys is a no-op.
func (q *Queue[V]) BulkInsertKeys(keys []float64) error {
	if err := validateKeys(keys); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	heapify := q.useHeapify(len(q.entries), len(keys))
	q.entries = slices.Grow(q.entries, len(keys))
	for _, k := range keys {
		q.appendEntry(entry[V]{key: k, seq: q.nextSeq(), kind: keyOnly}, heapify)
	}
	if heapify {
		heap.Init(q.entries, q.less)
	}
	return nil
}

// BulkInsertKeysValues inserts the pairs keys[i], values[i]. The two
// slices must be of the same length and all keys must be finite,
// otherwise ErrInvalidArgumentType is returned and the queue is left
// unchanged.
func (q *Queue[V]) BulkInsertKeysValues(keys []float64, values []V) error {
	if len(keys) != len(values) {
		return fmt.Errorf("%w: %d keys but %d values", ErrInvalidArgumentType, len(keys), len(values))
	}
	if err := validateKeys(keys); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	heapify := q.useHeapify(len(q.entries), len(keys))
	q.entries = slices.Grow(q.entries, len(keys))
	for i, k := range keys {
		q.appendEntry(entry[V]{key: k, seq: q.nextSeq(), kind: keyValue, value: values[i]}, heapify)
	}
	if heapify {
		heap.Init(q.entries, q.less)
	}
	return nil
}

func (q *Queue[V]) appendEntry(e entry[V], heapify bool) {
	q.entries = append(q.entries, e)
	if !heapify {
		heap.Up(q.entries, len(q.entries)-1, q.less)
	}
}

// useHeapify decides whether merging m new entries into a heap of n
// entries is cheaper with a bottom-up rebuild, O(n+m), than with m
// sift-ups, O(m log(n+m)).
func (q *Queue[V]) useHeapify(n, m int) bool {
	switch q.strategy {
	case BulkHeapify:
		return true
	case BulkSiftUp:
		return false
	}
	total := n + m
	return total <= m*bits.Len(uint(total))
}

// BulkPopKeys removes up to count entries from the front of the queue
// and returns their keys in the order that repeated calls to PopKey
// would have returned them. It returns an empty slice if count is zero
// or the queue is empty, and ErrInvalidArgumentType if count is negative.
func (q *Queue[V]) BulkPopKeys(count int) ([]float64, error) {
	n, err := q.drainCount(count)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	if n == len(q.entries) {
		for i, e := range q.drainAll() {
			out[i] = e.key
		}
		return out, nil
	}
	for i := range out {
		out[i] = q.pop().key
	}
	return out, nil
}

// BulkPopKeysValues is like BulkPopKeys but returns the projection of
// each removed entry.
func (q *Queue[V]) BulkPopKeysValues(count int) ([]Projection[V], error) {
	n, err := q.drainCount(count)
	if err != nil {
		return nil, err
	}
	out := make([]Projection[V], n)
	if n == len(q.entries) {
		for i, e := range q.drainAll() {
			out[i] = e.projection()
		}
		return out, nil
	}
	for i := range out {
		out[i] = q.pop().projection()
	}
	return out, nil
}

func (q *Queue[V]) drainCount(count int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: count %d is negative", ErrInvalidArgumentType, count)
	}
	return min(count, len(q.entries)), nil
}

// drainAll removes every entry from the queue and returns them in pop
// order. Sorting the storage in place avoids the sift-down per pop.
func (q *Queue[V]) drainAll() []entry[V] {
	all := q.entries
	slices.SortFunc(all, func(a, b entry[V]) int {
		switch {
		case q.less(a, b):
			return -1
		case q.less(b, a):
			return 1
		}
		return 0
	})
	q.entries = nil
	return all
}
