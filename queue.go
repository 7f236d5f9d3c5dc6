// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epqueue

import (
	"cloudeng.io/epqueue/internal/heap"
)

// Queue is a priority queue of float64 keys with optional values of
// type V. The zero value is not usable, use New or NewFromToken.
type Queue[V any] struct {
	order    Order
	strategy BulkStrategy
	seq      uint64
	entries  []entry[V]
	less     heap.LessFunc[entry[V]]
}

// New returns a new, empty, Queue with the specified order.
func New[V any](order Order, opts ...Option) *Queue[V] {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	q := &Queue[V]{
		order:    order,
		strategy: o.strategy,
		entries:  make([]entry[V], 0, o.sliceCap),
		less:     ascending[V],
	}
	if order == Descending {
		q.less = descending[V]
	}
	return q
}

// NewFromToken is like New except that the order is specified as one
// of the tokens accepted by ParseOrder.
func NewFromToken[V any](token string, opts ...Option) (*Queue[V], error) {
	order, err := ParseOrder(token)
	if err != nil {
		return nil, err
	}
	return New[V](order, opts...), nil
}

// Order returns the order of the queue.
func (q *Queue[V]) Order() Order {
	return q.order
}

// Len returns the number of entries in the queue.
func (q *Queue[V]) Len() int {
	return len(q.entries)
}

func (q *Queue[V]) nextSeq() uint64 {
	s := q.seq
	q.seq++
	return s
}

// InsertKey inserts key without an associated value. It returns
// ErrInvalidArgumentType if key is NaN or infinite.
func (q *Queue[V]) InsertKey(key float64) error {
	if err := validateKey(key); err != nil {
		return err
	}
	q.entries = heap.Push(q.entries, entry[V]{key: key, seq: q.nextSeq(), kind: keyOnly}, q.less)
	return nil
}

// InsertKeyValue inserts key with the associated value. It returns
// ErrInvalidArgumentType if key is NaN or infinite.
func (q *Queue[V]) InsertKeyValue(key float64, value V) error {
	if err := validateKey(key); err != nil {
		return err
	}
	q.entries = heap.Push(q.entries, entry[V]{key: key, seq: q.nextSeq(), kind: keyValue, value: value}, q.less)
	return nil
}

// PeekKey returns the key of the entry at the front of the queue without
// removing it.
func (q *Queue[V]) PeekKey() (float64, error) {
	if len(q.entries) == 0 {
		return 0, emptyQueue("peek")
	}
	return q.entries[0].key, nil
}

// PeekKeyValue returns the projection of the entry at the front of the
// queue without removing it.
func (q *Queue[V]) PeekKeyValue() (Projection[V], error) {
	if len(q.entries) == 0 {
		return Projection[V]{}, emptyQueue("peek")
	}
	return q.entries[0].projection(), nil
}

// PopKey removes the entry at the front of the queue and returns its key.
func (q *Queue[V]) PopKey() (float64, error) {
	if len(q.entries) == 0 {
		return 0, emptyQueue("pop")
	}
	return q.pop().key, nil
}

// PopKeyValue removes the entry at the front of the queue and returns
// its projection.
func (q *Queue[V]) PopKeyValue() (Projection[V], error) {
	if len(q.entries) == 0 {
		return Projection[V]{}, emptyQueue("pop")
	}
	return q.pop().projection(), nil
}

func (q *Queue[V]) pop() entry[V] {
	var e entry[V]
	q.entries, e = heap.Pop(q.entries, q.less)
	return e
}
