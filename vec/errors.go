// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

import (
	"fmt"
	"strings"
)

// ErrorKind classifies vector engine errors.
type ErrorKind int

const (
	// IndexOutOfRange is raised by lane access with i >= N.
	IndexOutOfRange ErrorKind = iota
	// OverflowOrDivideByZero is returned by checked integer operations and
	// raised by strict-overflow arithmetic and integer division by zero.
	OverflowOrDivideByZero
	// NotNormalisable is returned by TryNormalize on zero-length or
	// non-finite input.
	NotNormalisable
	// NaNInput is raised by Min, Max, Clamp and the element reductions when
	// assertions are enabled.
	NaNInput
	// MinGreaterThanMax is raised by Clamp when assertions are enabled.
	MinGreaterThanMax
	// AliasingBorrow is returned by SplitMut on overlapping ranges.
	AliasingBorrow
	// MissingBackend is raised when no backend provides an operation for a
	// (T, N, A) triple.
	MissingBackend
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case OverflowOrDivideByZero:
		return "OverflowOrDivideByZero"
	case NotNormalisable:
		return "NotNormalisable"
	case NaNInput:
		return "NaNInput"
	case MinGreaterThanMax:
		return "MinGreaterThanMax"
	case AliasingBorrow:
		return "AliasingBorrow"
	case MissingBackend:
		return "MissingBackend"
	default:
		return "Unknown"
	}
}

// Error is the error type of the vector engine. Fatal errors are raised as
// panics carrying an *Error; recoverable ones are returned.
type Error struct {
	Kind ErrorKind
	// Op is the operation that failed, e.g. "Add" or "CheckedMul".
	Op string
	// Triple names the (T, N, A) instantiation, when known.
	Triple string
	// Lane is the failing lane, or -1.
	Lane int
	// Values holds the offending input values.
	Values []any
	// Detail is an optional free-form note.
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("vec: ")
	b.WriteString(e.Kind.String())
	if e.Op != "" {
		fmt.Fprintf(&b, " in %s", e.Op)
	}
	if e.Triple != "" {
		fmt.Fprintf(&b, " for %s", e.Triple)
	}
	if e.Lane >= 0 {
		fmt.Fprintf(&b, " at lane %d", e.Lane)
	}
	if len(e.Values) > 0 {
		fmt.Fprintf(&b, " (inputs %v)", e.Values)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrNotNormalisable) matches any NotNormalisable error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrIndexOutOfRange        = &Error{Kind: IndexOutOfRange, Lane: -1}
	ErrOverflowOrDivideByZero = &Error{Kind: OverflowOrDivideByZero, Lane: -1}
	ErrNotNormalisable        = &Error{Kind: NotNormalisable, Lane: -1}
	ErrNaNInput               = &Error{Kind: NaNInput, Lane: -1}
	ErrMinGreaterThanMax      = &Error{Kind: MinGreaterThanMax, Lane: -1}
	ErrAliasingBorrow         = &Error{Kind: AliasingBorrow, Lane: -1}
	ErrMissingBackend         = &Error{Kind: MissingBackend, Lane: -1}
)

func indexError(op string, i, n int) *Error {
	return &Error{
		Kind:   IndexOutOfRange,
		Op:     op,
		Lane:   i,
		Detail: fmt.Sprintf("length is %d", n),
	}
}

func overflowError[T Scalar](op, triple string, lane int, inputs ...T) *Error {
	values := make([]any, len(inputs))
	for i, v := range inputs {
		values[i] = v
	}
	return &Error{
		Kind:   OverflowOrDivideByZero,
		Op:     op,
		Triple: triple,
		Lane:   lane,
		Values: values,
	}
}
