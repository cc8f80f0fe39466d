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

// Package testutil holds floating-point comparison helpers shared by the
// tests of this module.
package testutil

import (
	"math"
	"testing"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float32ULPDiff returns the distance between a and b in units in the last
// place. Signed zeros are 0 ULP apart; NaN is infinitely far from everything.
func Float32ULPDiff(a, b float32) int64 {
	if a != a || b != b {
		return math.MaxInt64
	}
	return absDiff(ordered32(a), ordered32(b))
}

// Float64ULPDiff is Float32ULPDiff for float64.
func Float64ULPDiff(a, b float64) int64 {
	if a != a || b != b {
		return math.MaxInt64
	}
	oa, ob := ordered64(a), ordered64(b)
	if (oa < 0) != (ob < 0) {
		// Opposite signs: the distance is the sum of both distances to zero,
		// which may not fit.
		da, db := absDiff(oa, 0), absDiff(ob, 0)
		if da > math.MaxInt64-db {
			return math.MaxInt64
		}
		return da + db
	}
	return absDiff(oa, ob)
}

// ULPDiff dispatches to Float32ULPDiff or Float64ULPDiff by the width of T.
func ULPDiff[T constraints.Float](a, b T) int64 {
	if unsafe.Sizeof(a) == 4 {
		return Float32ULPDiff(float32(a), float32(b))
	}
	return Float64ULPDiff(float64(a), float64(b))
}

// RequireWithinULP fails t if got is more than ulps units in the last place
// away from want.
func RequireWithinULP[T constraints.Float](t *testing.T, name string, got, want T, ulps int64) {
	t.Helper()
	if d := ULPDiff(got, want); d > ulps {
		t.Fatalf("%s: got %v, want %v (%d ULP > %d)", name, got, want, d, ulps)
	}
}

// RequireSliceWithinULP fails t if got and want differ in length or any
// element pair is more than ulps apart.
func RequireSliceWithinULP[T constraints.Float](t *testing.T, name string, got, want []T, ulps int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length mismatch: got %d, want %d", name, len(got), len(want))
	}
	for i := range got {
		if d := ULPDiff(got[i], want[i]); d > ulps {
			t.Fatalf("%s: index %d: got %v, want %v (%d ULP > %d)", name, i, got[i], want[i], d, ulps)
		}
	}
}

// SameBits reports whether a and b have identical bit patterns, which tells
// signed zeros apart and equates identical NaNs.
func SameBits[T constraints.Float](a, b T) bool {
	if unsafe.Sizeof(a) == 4 {
		return math.Float32bits(float32(a)) == math.Float32bits(float32(b))
	}
	return math.Float64bits(float64(a)) == math.Float64bits(float64(b))
}

// Recover runs f and returns the value it panicked with, or nil.
func Recover(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}

func ordered32(f float32) int64 {
	u := math.Float32bits(f)
	if u&(1<<31) != 0 {
		return -int64(u &^ (1 << 31))
	}
	return int64(u)
}

func ordered64(f float64) int64 {
	u := math.Float64bits(f)
	if u&(1<<63) != 0 {
		return -int64(u &^ (1 << 63))
	}
	return int64(u)
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
