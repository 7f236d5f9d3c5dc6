// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides the slice based sift operations used by the
// priority queue. They follow the standard library's container/heap
// algorithms but are generic and take an explicit ordering function
// rather than requiring heap.Interface.
package heap

// LessFunc reports whether a must be closer to the root of the heap than b.
// It must implement a strict total order.
type LessFunc[T any] func(a, b T) bool

// Init establishes the heap invariant over all of h using Floyd's
// bottom-up construction, ie. in O(len(h)) time.
func Init[T any](h []T, less LessFunc[T]) {
	n := len(h)
	for i := n/2 - 1; i >= 0; i-- {
		down(h, i, n, less)
	}
}

// Push appends x to h and restores the heap invariant.
func Push[T any](h []T, x T, less LessFunc[T]) []T {
	h = append(h, x)
	up(h, len(h)-1, less)
	return h
}

// Pop removes the root of h, restores the heap invariant and returns
// the shortened slice and the removed item. The vacated slot is
// zeroed so that it does not retain any references. h must not be empty.
func Pop[T any](h []T, less LessFunc[T]) ([]T, T) {
	n := len(h) - 1
	h[0], h[n] = h[n], h[0]
	down(h, 0, n, less)
	x := h[n]
	var zero T
	h[n] = zero
	return h[:n], x
}

// Up restores the heap invariant for the item at index j by moving it
// towards the root.
func Up[T any](h []T, j int, less LessFunc[T]) {
	up(h, j, less)
}

// Invalid returns the index of the first item that is ordered before its
// parent, or -1 if h satisfies the heap invariant.
func Invalid[T any](h []T, less LessFunc[T]) int {
	for i := 1; i < len(h); i++ {
		if less(h[i], h[(i-1)/2]) {
			return i
		}
	}
	return -1
}

func up[T any](h []T, j int, less LessFunc[T]) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !less(h[j], h[i]) {
			break
		}
		h[i], h[j] = h[j], h[i]
		j = i
	}
}

func down[T any](h []T, i, n int, less LessFunc[T]) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && less(h[j2], h[j1]) {
			j = j2 // right child
		}
		if !less(h[j], h[i]) {
			break
		}
		h[i], h[j] = h[j], h[i]
		i = j
	}
}
