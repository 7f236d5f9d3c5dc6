// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package binding

import (
	"fmt"
	"io"
	"sync"

	"cloudeng.io/epqueue"
)

// Queue wraps an epqueue.Queue whose values are arbitrary host values.
type Queue struct {
	mu *sync.Mutex // nil unless created by NewSynchronized.
	q  *epqueue.Queue[any]
}

// New creates a queue from the host arguments to a constructor: exactly
// one order token, "asc" or "desc". A missing or non-string token is
// ErrInvalidArgumentType and an unrecognised string is
// ErrInvalidArgumentValue.
func New(args ...any) (*Queue, error) {
	return NewWithOptions(nil, args...)
}

// NewWithOptions is like New but passes opts to epqueue.New.
func NewWithOptions(opts []epqueue.Option, args ...any) (*Queue, error) {
	if err := checkArgs("new", args, 1, "order"); err != nil {
		return nil, err
	}
	order, err := ToOrder(args[0])
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	return &Queue{q: epqueue.New[any](order, opts...)}, nil
}

// NewSynchronized is like NewWithOptions but the returned queue may be
// used concurrently; each call holds a mutex for its duration.
func NewSynchronized(opts []epqueue.Option, args ...any) (*Queue, error) {
	q, err := NewWithOptions(opts, args...)
	if err != nil {
		return nil, err
	}
	q.mu = &sync.Mutex{}
	return q, nil
}

func (b *Queue) lock() {
	if b.mu != nil {
		b.mu.Lock()
	}
}

func (b *Queue) unlock() {
	if b.mu != nil {
		b.mu.Unlock()
	}
}

// Order returns the queue's order.
func (b *Queue) Order() epqueue.Order {
	return b.q.Order()
}

// Size returns the number of entries in the queue.
func (b *Queue) Size() int {
	b.lock()
	defer b.unlock()
	return b.q.Len()
}

// InsertKey inserts args[0] as a key without a value.
func (b *Queue) InsertKey(args ...any) error {
	if err := checkArgs("insertKey", args, 1, "key"); err != nil {
		return err
	}
	key, err := ToKey(args[0])
	if err != nil {
		return fmt.Errorf("insertKey: %w", err)
	}
	b.lock()
	defer b.unlock()
	return b.q.InsertKey(key)
}

// InsertKeyValue inserts args[0] as a key with args[1] as its value. If
// no value is supplied the entry is key only and is projected as (key,).
func (b *Queue) InsertKeyValue(args ...any) error {
	if err := checkArgs("insertKeyValue", args, 2, "key"); err != nil {
		return err
	}
	key, err := ToKey(args[0])
	if err != nil {
		return fmt.Errorf("insertKeyValue: %w", err)
	}
	b.lock()
	defer b.unlock()
	if len(args) == 1 {
		return b.q.InsertKey(key)
	}
	return b.q.InsertKeyValue(key, args[1])
}

// PeekKey returns the key at the front of the queue.
func (b *Queue) PeekKey() (float64, error) {
	b.lock()
	defer b.unlock()
	return b.q.PeekKey()
}

// PeekKeyValue returns the (key, value) or (key,) projection of the entry
// at the front of the queue.
func (b *Queue) PeekKeyValue() ([]any, error) {
	b.lock()
	defer b.unlock()
	p, err := b.q.PeekKeyValue()
	if err != nil {
		return nil, err
	}
	return p.Tuple(), nil
}

// PopKey removes the entry at the front of the queue and returns its key.
func (b *Queue) PopKey() (float64, error) {
	b.lock()
	defer b.unlock()
	return b.q.PopKey()
}

// PopKeyValue removes the entry at the front of the queue and returns its
// projection.
func (b *Queue) PopKeyValue() ([]any, error) {
	b.lock()
	defer b.unlock()
	p, err := b.q.PopKeyValue()
	if err != nil {
		return nil, err
	}
	return p.Tuple(), nil
}

// BulkInsertKeys inserts every element of args[0], a sequence of finite
// numbers, as a key only entry. If any element is invalid nothing is
// inserted.
func (b *Queue) BulkInsertKeys(args ...any) error {
	if err := checkArgs("bulkInsertKeys", args, 1, "keys"); err != nil {
		return err
	}
	keys, err := ToKeys(args[0])
	if err != nil {
		return fmt.Errorf("bulkInsertKeys: %w", err)
	}
	b.lock()
	defer b.unlock()
	return b.q.BulkInsertKeys(keys)
}

// BulkInsertKeysValues inserts the pairs args[0][i], args[1][i]. Both
// arguments must be sequences of the same length.
func (b *Queue) BulkInsertKeysValues(args ...any) error {
	if err := checkArgs("bulkInsertKeysValues", args, 2, "keys", "values"); err != nil {
		return err
	}
	values, err := ToSequence(args[1])
	if err != nil {
		return fmt.Errorf("bulkInsertKeysValues: values: %w", err)
	}
	keys, err := ToKeys(args[0])
	if err != nil {
		return fmt.Errorf("bulkInsertKeysValues: %w", err)
	}
	b.lock()
	defer b.unlock()
	if err := b.q.BulkInsertKeysValues(keys, values); err != nil {
		return fmt.Errorf("bulkInsertKeysValues: %w", err)
	}
	return nil
}

// BulkPopKeys removes up to args[0] entries and returns their keys.
func (b *Queue) BulkPopKeys(args ...any) ([]float64, error) {
	if err := checkArgs("bulkPopKeys", args, 1, "count"); err != nil {
		return nil, err
	}
	n, err := ToCount(args[0])
	if err != nil {
		return nil, fmt.Errorf("bulkPopKeys: %w", err)
	}
	b.lock()
	defer b.unlock()
	return b.q.BulkPopKeys(n)
}

// BulkPopKeysValues removes up to args[0] entries and returns their
// projections.
func (b *Queue) BulkPopKeysValues(args ...any) ([][]any, error) {
	if err := checkArgs("bulkPopKeysValues", args, 1, "count"); err != nil {
		return nil, err
	}
	n, err := ToCount(args[0])
	if err != nil {
		return nil, fmt.Errorf("bulkPopKeysValues: %w", err)
	}
	b.lock()
	defer b.unlock()
	ps, err := b.q.BulkPopKeysValues(n)
	if err != nil {
		return nil, err
	}
	out := make([][]any, len(ps))
	for i, p := range ps {
		out[i] = p.Tuple()
	}
	return out, nil
}

// Pretty writes the queue's heap as an indented tree to w.
func (b *Queue) Pretty(w io.Writer) error {
	b.lock()
	defer b.unlock()
	return b.q.Pretty(w)
}
