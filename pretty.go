// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epqueue

import (
	"fmt"
	"io"
	"strings"
)

// Pretty writes the heap to w as an indented tree with one entry per
// line and each child indented below its parent. Entries that carry
// a value are marked with a trailing '*'; values themselves are not
// printed.
func (q *Queue[V]) Pretty(w io.Writer) error {
	if len(q.entries) == 0 {
		return nil
	}
	return q.pretty(w, 0, 0)
}

func (q *Queue[V]) pretty(w io.Writer, i, level int) error {
	e := q.entries[i]
	mark := ""
	if e.kind == keyValue {
		mark = "*"
	}
	if _, err := fmt.Fprintf(w, "%s - %v%s\n", strings.Repeat("    ", level), e.key, mark); err != nil {
		return err
	}
	for c := 2*i + 1; c <= 2*i+2 && c < len(q.entries); c++ {
		if err := q.pretty(w, c, level+1); err != nil {
			return err
		}
	}
	return nil
}
