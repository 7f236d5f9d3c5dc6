// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package binding provides a dynamically typed call surface over
// epqueue.Queue for use by language bindings, scripting and command line
// tools. Arguments are supplied as host values (any) and are validated
// before being passed to the queue, so that missing arguments, values of
// the wrong type and out of range values are all reported as one of the
// epqueue error kinds without mutating the queue.
//
// Each method accepts a fixed number of arguments; a missing required
// argument or a surplus argument is ErrInvalidArgumentType.
//
// Numeric arguments may be any of Go's integer or floating point types.
// Sequence arguments may be any slice or array; []float64 is accepted
// without conversion. Keys returned by BulkPopKeys are always a dense
// []float64 and projections are returned as []any of length 1, (key,), or
// 2, (key, value).
//
// The count argument to BulkPopKeys and BulkPopKeysValues is validated in
// three stages:
//
//  1. presence: a missing or nil count is ErrInvalidArgumentType.
//  2. kind: a non-numeric count, eg. a bool or string, is
//     ErrInvalidArgumentValue.
//  3. range: a negative, fractional or non-finite numeric count is
//     ErrInvalidArgumentType. Integral counts beyond math.MaxInt are
//     clamped to math.MaxInt.
package binding
