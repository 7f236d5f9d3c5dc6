// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package script

import (
	"reflect"
	"strings"

	"cloudeng.io/epqueue/binding"
)

// opNew replaces the script's queue with a new one and is handled by the
// runner rather than by an entry in operations.
const opNew = "new"

type operation func(q *binding.Queue, args []any) (any, error)

var operations = map[string]operation{
	"insertKey": func(q *binding.Queue, args []any) (any, error) {
		return nil, q.InsertKey(args...)
	},
	"insertKeyValue": func(q *binding.Queue, args []any) (any, error) {
		return nil, q.InsertKeyValue(args...)
	},
	"peekKey": func(q *binding.Queue, _ []any) (any, error) {
		return q.PeekKey()
	},
	"peekKeyValue": func(q *binding.Queue, _ []any) (any, error) {
		return q.PeekKeyValue()
	},
	"popKey": func(q *binding.Queue, _ []any) (any, error) {
		return q.PopKey()
	},
	"popKeyValue": func(q *binding.Queue, _ []any) (any, error) {
		return q.PopKeyValue()
	},
	"size": func(q *binding.Queue, _ []any) (any, error) {
		return q.Size(), nil
	},
	"bulkInsertKeys": func(q *binding.Queue, args []any) (any, error) {
		return nil, q.BulkInsertKeys(args...)
	},
	"bulkInsertKeysValues": func(q *binding.Queue, args []any) (any, error) {
		return nil, q.BulkInsertKeysValues(args...)
	},
	"bulkPopKeys": func(q *binding.Queue, args []any) (any, error) {
		return q.BulkPopKeys(args...)
	},
	"bulkPopKeysValues": func(q *binding.Queue, args []any) (any, error) {
		return q.BulkPopKeysValues(args...)
	},
	"dump": func(q *binding.Queue, _ []any) (any, error) {
		var out strings.Builder
		err := q.Pretty(&out)
		return out.String(), err
	},
}

// normalize converts all numbers in v to float64, all sequences to []any
// and all string keyed maps to map[string]any so that values decoded
// from YAML or JSON can be compared with those returned by a queue.
func normalize(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = normalize(iter.Value().Interface())
		}
		return out
	}
	return v
}

func equal(got, want any) bool {
	return reflect.DeepEqual(normalize(got), normalize(want))
}
