// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package script runs sequences of priority queue operations, read from
// YAML or JSON files, against the dynamically typed binding.Queue. Each
// operation may state the result or error kind it expects, which makes
// scripts usable both as regression tests and as reproducible examples.
//
// A script looks like:
//
//	name: round-trip
//	ops:
//	  - op: new
//	    args: [asc]
//	  - op: bulkInsertKeysValues
//	    args: [[2, 1], [A, B]]
//	  - op: popKeyValue
//	    expect: [1, B]
//	  - op: popKey
//	    expect: 2
//	  - op: popKey
//	    error: EmptyQueue
//
// Scripts are independent of each other and a Runner executes many of
// them concurrently, each with its own queue.
package script
