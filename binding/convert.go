// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package binding

import (
	"fmt"
	"math"
	"reflect"

	"cloudeng.io/epqueue"
	"cloudeng.io/errors"
)

// maxReportedElementErrors bounds the number of invalid sequence
// elements reported by a single call.
const maxReportedElementErrors = 8

func missing(op, name string) error {
	return fmt.Errorf("%s: missing %s: %w", op, name, epqueue.ErrInvalidArgumentType)
}

// checkArgs reports the first of required that is absent from args, or
// that args holds more than limit arguments.
func checkArgs(op string, args []any, limit int, required ...string) error {
	if len(args) < len(required) {
		return missing(op, required[len(args)])
	}
	if len(args) > limit {
		return fmt.Errorf("%s: %w: %d arguments supplied, at most %d accepted", op, epqueue.ErrInvalidArgumentType, len(args), limit)
	}
	return nil
}

// asNumber returns v as a float64 and true if v is one of Go's numeric
// types.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// ToKey converts v to a queue key. v must be a finite number.
func ToKey(v any) (float64, error) {
	k, ok := asNumber(v)
	if !ok {
		return 0, fmt.Errorf("%w: key must be a number, not %T", epqueue.ErrInvalidArgumentType, v)
	}
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return 0, fmt.Errorf("%w: key %v is not a finite number", epqueue.ErrInvalidArgumentType, k)
	}
	return k, nil
}

// ToSequence returns the elements of v, which must be a slice or array.
func ToSequence(v any) ([]any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: expected a sequence, not nil", epqueue.ErrInvalidArgumentType)
	}
	if s, ok := v.([]any); ok {
		return s, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("%w: expected a sequence, not %T", epqueue.ErrInvalidArgumentType, v)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// ToKeys converts v, a sequence of finite numbers, to a slice of keys.
// All elements are checked and every invalid element, up to a limit,
// is reported.
func ToKeys(v any) ([]float64, error) {
	if keys, ok := v.([]float64); ok {
		return keys, nil
	}
	seq, err := ToSequence(v)
	if err != nil {
		return nil, err
	}
	keys := make([]float64, len(seq))
	errs := &errors.M{}
	invalid := 0
	for i, e := range seq {
		k, err := ToKey(e)
		if err != nil {
			if invalid < maxReportedElementErrors {
				errs.Append(fmt.Errorf("keys[%d]: %w", i, err))
			}
			invalid++
			continue
		}
		keys[i] = k
	}
	if extra := invalid - maxReportedElementErrors; extra > 0 {
		errs.Append(fmt.Errorf("%w: %d further invalid keys", epqueue.ErrInvalidArgumentType, extra))
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// ToCount converts v to a non-negative count. See the package
// documentation for the order in which v is validated. Integral counts
// larger than math.MaxInt are clamped to math.MaxInt since a bulk pop
// never removes more than the queue holds.
func ToCount(v any) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: count must not be nil", epqueue.ErrInvalidArgumentType)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return 0, fmt.Errorf("%w: count %d is negative", epqueue.ErrInvalidArgumentType, n)
		}
		if n > math.MaxInt {
			return math.MaxInt, nil
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		if n > math.MaxInt {
			return math.MaxInt, nil
		}
		return int(n), nil
	case reflect.Float32, reflect.Float64:
	default:
		return 0, fmt.Errorf("%w: count must be a number, not %T", epqueue.ErrInvalidArgumentValue, v)
	}
	f := rv.Float()
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, fmt.Errorf("%w: count %v is not finite", epqueue.ErrInvalidArgumentType, f)
	case f < 0:
		return 0, fmt.Errorf("%w: count %v is negative", epqueue.ErrInvalidArgumentType, f)
	case f != math.Trunc(f):
		return 0, fmt.Errorf("%w: count %v is not an integer", epqueue.ErrInvalidArgumentType, f)
	case f >= math.MaxInt:
		return math.MaxInt, nil
	}
	return int(f), nil
}

// ToOrder converts v, which must be a string, to an epqueue.Order.
func ToOrder(v any) (epqueue.Order, error) {
	token, ok := v.(string)
	if !ok {
		return epqueue.Ascending, fmt.Errorf("%w: order must be a string, not %T", epqueue.ErrInvalidArgumentType, v)
	}
	return epqueue.ParseOrder(token)
}
