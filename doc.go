// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package epqueue provides a priority queue keyed by finite float64 values
// that may optionally carry an opaque payload per entry. The queue is
// created in either Ascending (smallest key first) or Descending (largest
// key first) order and always exposes its extremal entry in O(1) time.
// Insertion and removal are O(log n); bulk insertion merges new entries
// using a bottom-up heap construction when that is cheaper than inserting
// them one at a time.
//
// Entries with equal keys are returned in the order in which they were
// inserted.
//
// All validation is performed before any mutation so that a failed call,
// including a failed bulk call, leaves the queue unchanged. Failures are
// classified into three kinds, ErrInvalidArgumentType,
// ErrInvalidArgumentValue and ErrEmptyQueue, which can be tested for using
// errors.Is or obtained via KindOf.
//
// A Queue is not safe for concurrent use; callers that need to share
// a queue between goroutines should either confine it to a single goroutine
// or use binding.NewSynchronized.
//
//	q := epqueue.New[string](epqueue.Ascending)
//	q.InsertKeyValue(2, "two")
//	q.InsertKey(1)
//	p, _ := q.PopKeyValue() // (1,)
//	p, _ = q.PopKeyValue()  // (2, two)
package epqueue
