// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package binding

import "cloudeng.io/epqueue"

// Exception is the name of the host exception type that an error is
// translated to.
type Exception string

// Host exception types.
const (
	NoException Exception = ""
	TypeError   Exception = "TypeError"
	ValueError  Exception = "ValueError"
	IndexError  Exception = "IndexError"
	Error       Exception = "Error"
)

// ExceptionFor returns the host exception type for err.
func ExceptionFor(err error) Exception {
	switch epqueue.KindOf(err) {
	case epqueue.KindNone:
		return NoException
	case epqueue.KindInvalidArgumentType:
		return TypeError
	case epqueue.KindInvalidArgumentValue:
		return ValueError
	case epqueue.KindEmptyQueue:
		return IndexError
	}
	return Error
}
