// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"cloudeng.io/epqueue/internal/heap"
)

func intLess(a, b int) bool { return a < b }

func uniformRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(100)
	}
	return r
}

func drain(t *testing.T, h []int) []int {
	t.Helper()
	var out []int
	for len(h) > 0 {
		var x int
		h, x = heap.Pop(h, intLess)
		if i := heap.Invalid(h, intLess); i >= 0 {
			t.Fatalf("heap inconsistent at %v: %v", i, h)
		}
		out = append(out, x)
	}
	return out
}

func TestInit(t *testing.T) {
	for n := 0; n < 70; n++ {
		h := uniformRand(int64(n), n)
		want := append([]int{}, h...)
		sort.Ints(want)
		heap.Init(h, intLess)
		if i := heap.Invalid(h, intLess); i >= 0 {
			t.Fatalf("n=%v: heap inconsistent at %v", n, i)
		}
		got := drain(t, h)
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("n=%v: got %v, want %v", n, got, want)
		}
	}
}

func TestPushPop(t *testing.T) {
	var h []int
	for _, v := range []int{5, 2, 7, 3, 3, 9, 0} {
		h = heap.Push(h, v, intLess)
		if i := heap.Invalid(h, intLess); i >= 0 {
			t.Fatalf("heap inconsistent at %v: %v", i, h)
		}
	}
	if got, want := drain(t, h), []int{0, 2, 3, 3, 5, 7, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPopZeroesSlot(t *testing.T) {
	type item struct {
		k int
		p *int
	}
	less := func(a, b item) bool { return a.k < b.k }
	v := 1
	h := []item{{k: 1, p: &v}, {k: 2, p: &v}}
	heap.Init(h, less)
	backing := h[:2]
	h, x := heap.Pop(h, less)
	if got, want := x.k, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if backing[1].p != nil {
		t.Errorf("popped slot was not zeroed")
	}
	if got, want := len(h), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestUp(t *testing.T) {
	h := []int{1, 3, 5}
	h = append(h, 0)
	heap.Up(h, len(h)-1, intLess)
	if got, want := h[0], 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
