// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epqueue_test

import (
	"math/rand"
	"testing"

	"cloudeng.io/epqueue"
)

func uniformKeys(seed int64, n int) []float64 {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]float64, n)
	for i := range r {
		r[i] = rnd.Float64() * 10000
	}
	return r
}

func zipfKeys(seed int64, n int) []float64 {
	rnd := rand.New(rand.NewSource(seed))     // #nosec: G404
	gen := rand.NewZipf(rnd, 3.0, 1.1, 1<<20) // many duplicates
	r := make([]float64, n)
	for i := range r {
		r[i] = float64(gen.Uint64())
	}
	return r
}

const benchSize = 100000

func benchmarkBulkInsert(b *testing.B, keys []float64, strategy epqueue.BulkStrategy) {
	for i := 0; i < b.N; i++ {
		q := epqueue.New[int](epqueue.Ascending, epqueue.WithBulkStrategy(strategy))
		if err := q.BulkInsertKeys(keys); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBulkInsertHeapify(b *testing.B) {
	benchmarkBulkInsert(b, uniformKeys(1, benchSize), epqueue.BulkHeapify)
}

func BenchmarkBulkInsertSiftUp(b *testing.B) {
	benchmarkBulkInsert(b, uniformKeys(1, benchSize), epqueue.BulkSiftUp)
}

func BenchmarkBulkInsertZipf(b *testing.B) {
	benchmarkBulkInsert(b, zipfKeys(1, benchSize), epqueue.BulkAuto)
}

func BenchmarkInsertKey(b *testing.B) {
	keys := uniformKeys(1, benchSize)
	for i := 0; i < b.N; i++ {
		q := epqueue.New[int](epqueue.Ascending)
		for _, k := range keys {
			if err := q.InsertKey(k); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkDrain(b *testing.B) {
	keys := uniformKeys(1, benchSize)
	b.Run("PopKey", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			q := epqueue.New[int](epqueue.Ascending)
			_ = q.BulkInsertKeys(keys)
			b.StartTimer()
			for q.Len() > 0 {
				_, _ = q.PopKey()
			}
		}
	})
	b.Run("BulkPopKeys", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			q := epqueue.New[int](epqueue.Ascending)
			_ = q.BulkInsertKeys(keys)
			b.StartTimer()
			_, _ = q.BulkPopKeys(q.Len())
		}
	})
}
