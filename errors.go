// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epqueue

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidArgumentType is returned for inputs of the wrong shape or
	// type, such as non-finite keys or mismatched bulk lengths.
	ErrInvalidArgumentType = errors.New("invalid argument type")
	// ErrInvalidArgumentValue is returned for correctly typed inputs with
	// a disallowed value, such as an unrecognised order token.
	ErrInvalidArgumentValue = errors.New("invalid argument value")
	// ErrEmptyQueue is returned when peeking or popping an empty queue.
	ErrEmptyQueue = errors.New("empty queue")
)

// Kind classifies the errors returned by this package.
type Kind int

// Values for Kind.
const (
	KindNone Kind = iota
	KindInvalidArgumentType
	KindInvalidArgumentValue
	KindEmptyQueue
	KindUnknown
)

var kindNames = map[Kind]string{
	KindNone:                 "None",
	KindInvalidArgumentType:  "InvalidArgumentType",
	KindInvalidArgumentValue: "InvalidArgumentValue",
	KindEmptyQueue:           "EmptyQueue",
	KindUnknown:              "Unknown",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the Kind whose String method returns name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unrecognised error kind: %q", name)
}

// KindOf returns the Kind of err, KindNone for a nil error and
// KindUnknown for errors not created by this package.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidArgumentType):
		return KindInvalidArgumentType
	case errors.Is(err, ErrInvalidArgumentValue):
		return KindInvalidArgumentValue
	case errors.Is(err, ErrEmptyQueue):
		return KindEmptyQueue
	}
	return KindUnknown
}

// maxReportedKeyErrors bounds the number of individual invalid keys
// reported by a failed bulk insertion.
const maxReportedKeyErrors = 8

func validateKey(key float64) error {
	if math.IsNaN(key) || math.IsInf(key, 0) {
		return fmt.Errorf("%w: key %v is not a finite number", ErrInvalidArgumentType, key)
	}
	return nil
}

// validateKeys checks every key before any mutation takes place and
// returns an errors.M describing the offending positions.
func validateKeys(keys []float64) error {
	errs := &errors.M{}
	invalid := 0
	for i, k := range keys {
		err := validateKey(k)
		if err == nil {
			continue
		}
		if invalid < maxReportedKeyErrors {
			errs.Append(fmt.Errorf("keys[%d]: %w", i, err))
		}
		invalid++
	}
	if extra := invalid - maxReportedKeyErrors; extra > 0 {
		errs.Append(fmt.Errorf("%w: %d further keys are not finite numbers", ErrInvalidArgumentType, extra))
	}
	return errs.Err()
}

func emptyQueue(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmptyQueue)
}
