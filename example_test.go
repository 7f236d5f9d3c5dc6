// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epqueue_test

import (
	"fmt"
	"os"

	"cloudeng.io/epqueue"
)

func ExampleQueue() {
	q := epqueue.New[string](epqueue.Ascending)
	q.InsertKeyValue(2, "two")
	q.InsertKey(1)
	q.InsertKeyValue(2, "second two")
	for q.Len() > 0 {
		p, _ := q.PopKeyValue()
		fmt.Println(p)
	}
	// Output:
	// (1,)
	// (2, two)
	// (2, second two)
}

func ExampleQueue_BulkPopKeys() {
	q := epqueue.New[any](epqueue.Descending)
	q.BulkInsertKeys([]float64{12, 32, 25, 36, 13, 23})
	top, _ := q.BulkPopKeys(4)
	fmt.Println(top, q.Len())
	rest, _ := q.BulkPopKeys(10)
	fmt.Println(rest, q.Len())
	// Output:
	// [36 32 25 23] 2
	// [13 12] 0
}

func ExampleQueue_Pretty() {
	q := epqueue.New[any](epqueue.Ascending)
	q.BulkInsertKeys([]float64{2, 5, 3, 4, 3, 1, 7})
	q.Pretty(os.Stdout)
	// Output:
	//  - 1
	//      - 3
	//          - 4
	//          - 5
	//      - 2
	//          - 3
	//          - 7
}
