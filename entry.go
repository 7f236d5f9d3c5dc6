// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epqueue

import "fmt"

type entryKind uint8

const (
	keyOnly entryKind = iota
	keyValue
)

// entry is the unit stored in the heap. seq is assigned at insertion
// and used only to order entries with equal keys.
type entry[V any] struct {
	key   float64
	seq   uint64
	kind  entryKind
	value V
}

func (e entry[V]) projection() Projection[V] {
	return Projection[V]{key: e.key, kind: e.kind, value: e.value}
}

func ascending[V any](a, b entry[V]) bool {
	if a.key == b.key {
		return a.seq < b.seq
	}
	return a.key < b.key
}

func descending[V any](a, b entry[V]) bool {
	if a.key == b.key {
		return a.seq < b.seq
	}
	return a.key > b.key
}

// Projection is the view of an entry returned by the PeekKeyValue,
// PopKeyValue and BulkPopKeysValues methods. It is either the pair
// (key, value) for an entry inserted with a value, or the single
// element (key,) for an entry inserted without one.
type Projection[V any] struct {
	key   float64
	kind  entryKind
	value V
}

// KeyOnly returns the projection of an entry that has no value.
func KeyOnly[V any](key float64) Projection[V] {
	return Projection[V]{key: key, kind: keyOnly}
}

// KeyValue returns the projection of an entry that carries value.
func KeyValue[V any](key float64, value V) Projection[V] {
	return Projection[V]{key: key, kind: keyValue, value: value}
}

// Key returns the entry's key.
func (p Projection[V]) Key() float64 {
	return p.key
}

// Value returns the entry's value and true if it has one, or the zero
// value and false otherwise.
func (p Projection[V]) Value() (V, bool) {
	return p.value, p.kind == keyValue
}

// HasValue returns true if the entry was inserted with a value.
func (p Projection[V]) HasValue() bool {
	return p.kind == keyValue
}

// Len returns 2 for a (key, value) projection and 1 for a (key,)
// projection.
func (p Projection[V]) Len() int {
	if p.kind == keyValue {
		return 2
	}
	return 1
}

// Tuple returns the projection as a slice of length Len.
func (p Projection[V]) Tuple() []any {
	if p.kind == keyValue {
		return []any{p.key, p.value}
	}
	return []any{p.key}
}

// String implements fmt.Stringer.
func (p Projection[V]) String() string {
	if p.kind == keyValue {
		return fmt.Sprintf("(%v, %v)", p.key, p.value)
	}
	return fmt.Sprintf("(%v,)", p.key)
}
