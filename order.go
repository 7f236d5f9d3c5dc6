// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epqueue

import "fmt"

// Order determines if the queue returns its smallest (Ascending) or
// largest (Descending) key first.
type Order bool

// Values for Order.
const (
	Ascending  Order = false
	Descending Order = true
)

// The tokens accepted by ParseOrder.
const (
	AscendingToken  = "asc"
	DescendingToken = "desc"
)

// ParseOrder returns the Order represented by token, which must be
// exactly one of AscendingToken or DescendingToken.
func ParseOrder(token string) (Order, error) {
	switch token {
	case AscendingToken:
		return Ascending, nil
	case DescendingToken:
		return Descending, nil
	}
	return Ascending, fmt.Errorf("%w: order must be %q or %q, not %q", ErrInvalidArgumentValue, AscendingToken, DescendingToken, token)
}

// String implements fmt.Stringer and returns the token for o.
func (o Order) String() string {
	if o == Descending {
		return DescendingToken
	}
	return AscendingToken
}
