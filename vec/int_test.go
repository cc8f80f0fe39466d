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
	"errors"
	"math"
	"testing"
)

func TestCheckedArithmetic(t *testing.T) {
	a := New4[Aligned](int8(100), -100, 50, 7)
	b := New4[Aligned](int8(27), 28, 2, 0)

	if _, err := a.CheckedAdd(b); err != nil {
		t.Errorf("CheckedAdd: unexpected error %v", err)
	}
	tests := []struct {
		name string
		f    func() (Vec4[int8, Aligned], error)
		lane int
	}{
		{"CheckedAdd", func() (Vec4[int8, Aligned], error) { return a.CheckedAdd(b.With(0, 28)) }, 0},
		{"CheckedSub", func() (Vec4[int8, Aligned], error) { return a.CheckedSub(New4[Aligned](int8(0), 29, 0, 0)) }, 1},
		{"CheckedMul", func() (Vec4[int8, Aligned], error) { return a.CheckedMul(b) }, 0},
		{"CheckedDiv", func() (Vec4[int8, Aligned], error) { return a.CheckedDiv(b) }, 3},
		{"CheckedRem", func() (Vec4[int8, Aligned], error) { return a.CheckedRem(b) }, 3},
		{"CheckedDiv MinInt8/-1", func() (Vec4[int8, Aligned], error) {
			return Splat4[Aligned](int8(math.MinInt8)).CheckedDiv(Splat4[Aligned](int8(-1)))
		}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.f()
			var e *Error
			if !errors.As(err, &e) || e.Kind != OverflowOrDivideByZero {
				t.Fatalf("%s: got error %v, want OverflowOrDivideByZero", tt.name, err)
			}
			if e.Lane != tt.lane {
				t.Errorf("%s: failing lane %d, want %d", tt.name, e.Lane, tt.lane)
			}
			if len(e.Values) != 2 {
				t.Errorf("%s: got %d input values, want 2", tt.name, len(e.Values))
			}
		})
	}

	q, err := a.CheckedDiv(Splat4[Aligned](int8(-2)))
	if err != nil {
		t.Fatalf("CheckedDiv: unexpected error %v", err)
	}
	if got, want := q.ToArray(), [4]int8{-50, 50, -25, -3}; got != want {
		t.Errorf("CheckedDiv: got %v, want %v", got, want)
	}
}

func TestSaturatedArithmetic(t *testing.T) {
	a := New4[Packed](int8(120), -120, 50, -50)
	b := New4[Packed](int8(10), -10, 50, -50)
	if got, want := a.SaturatingAdd(b).ToArray(), [4]int8{127, -128, 100, -100}; got != want {
		t.Errorf("SaturatingAdd int8: got %v, want %v", got, want)
	}
	if got, want := a.SaturatingSub(b.Neg()).ToArray(), [4]int8{127, -128, 100, -100}; got != want {
		t.Errorf("SaturatingSub int8: got %v, want %v", got, want)
	}
	if got, want := a.SaturatingMul(Splat4[Packed](int8(-2))).ToArray(), [4]int8{-128, 127, -100, 100}; got != want {
		t.Errorf("SaturatingMul int8: got %v, want %v", got, want)
	}

	u := New3[Aligned](uint16(65000), 10, 300)
	w := New3[Aligned](uint16(1000), 20, 300)
	if got, want := u.SaturatingAdd(w).ToArray(), [3]uint16{65535, 30, 600}; got != want {
		t.Errorf("SaturatingAdd uint16: got %v, want %v", got, want)
	}
	if got, want := u.SaturatingSub(w).ToArray(), [3]uint16{64000, 0, 0}; got != want {
		t.Errorf("SaturatingSub uint16: got %v, want %v", got, want)
	}
	if got, want := u.SaturatingMul(w).ToArray(), [3]uint16{65535, 200, 65535}; got != want {
		t.Errorf("SaturatingMul uint16: got %v, want %v", got, want)
	}
}

func TestWrappingArithmetic(t *testing.T) {
	a := New2[Aligned](uint8(250), 3)
	b := New2[Aligned](uint8(10), 5)
	if got, want := a.WrappingAdd(b).ToArray(), [2]uint8{4, 8}; got != want {
		t.Errorf("WrappingAdd uint8: got %v, want %v", got, want)
	}
	if got, want := b.WrappingSub(a).ToArray(), [2]uint8{16, 2}; got != want {
		t.Errorf("WrappingSub uint8: got %v, want %v", got, want)
	}
	if got, want := a.WrappingMul(b).ToArray(), [2]uint8{196, 15}; got != want {
		t.Errorf("WrappingMul uint8: got %v, want %v", got, want)
	}
}

func TestIntegerOverflowPolicy(t *testing.T) {
	a := New2[Aligned](int64(math.MaxInt64), 1)
	b := New2[Aligned](int64(1), 1)
	ops := []struct {
		name string
		f    func()
	}{
		{"Add", func() { a.Add(b) }},
		{"Sub", func() { a.Neg().Sub(b.Add(b)) }},
		{"Mul", func() { a.Mul(b.Add(b)) }},
		{"ElementSum", func() { a.ElementSum() }},
		{"Neg", func() { Splat2[Aligned](int64(math.MinInt64)).Neg() }},
		{"Abs", func() { Splat2[Aligned](int64(math.MinInt64)).Abs() }},
		{"Shl", func() { b.Shl(Splat2[Aligned](int64(64))) }},
	}
	for _, tt := range ops {
		t.Run(tt.name, func(t *testing.T) {
			if overflowPolicy == OverflowStrict {
				e := requirePanicKind(t, OverflowOrDivideByZero, tt.f)
				if e.Op != tt.name {
					t.Errorf("%s: panic names op %q", tt.name, e.Op)
				}
				if e.Triple != "(int64, 2, Aligned)" {
					t.Errorf("%s: panic names triple %q", tt.name, e.Triple)
				}
			} else {
				requireNoPanic(t, tt.name, tt.f)
			}
		})
	}
	if overflowPolicy == OverflowWrapping {
		if got, want := a.Add(b).ToArray(), [2]int64{math.MinInt64, 2}; got != want {
			t.Errorf("Add (wrapping): got %v, want %v", got, want)
		}
		if got, want := b.Shl(Splat2[Aligned](int64(65))).ToArray(), [2]int64{2, 2}; got != want {
			t.Errorf("Shl by 65 (wrapping): got %v, want %v", got, want)
		}
	}
}

func TestIntegerDivideByZero(t *testing.T) {
	a := New3[Packed](uint32(1), 2, 3)
	z := New3[Packed](uint32(1), 0, 1)
	e := requirePanicKind(t, OverflowOrDivideByZero, func() { a.Div(z) })
	if e.Lane != 1 || e.Op != "Div" {
		t.Errorf("Div by zero: got op %q lane %d, want Div lane 1", e.Op, e.Lane)
	}
	requirePanicKind(t, OverflowOrDivideByZero, func() { a.Rem(z) })
	requirePanicKind(t, OverflowOrDivideByZero, func() { a.DivScalar(0) })
}

func TestIntegerEuclid(t *testing.T) {
	a := New4[Aligned](int32(7), -7, 7, -7)
	b := New4[Aligned](int32(2), 2, -2, -2)
	if got, want := a.Div(b).ToArray(), [4]int32{3, -3, -3, 3}; got != want {
		t.Errorf("Div: got %v, want %v", got, want)
	}
	if got, want := a.Rem(b).ToArray(), [4]int32{1, -1, 1, -1}; got != want {
		t.Errorf("Rem: got %v, want %v", got, want)
	}
	if got, want := a.DivEuclid(b).ToArray(), [4]int32{3, -4, -3, 4}; got != want {
		t.Errorf("DivEuclid: got %v, want %v", got, want)
	}
	if got, want := a.RemEuclid(b).ToArray(), [4]int32{1, 1, 1, 1}; got != want {
		t.Errorf("RemEuclid: got %v, want %v", got, want)
	}
}

func TestIntegerUnary(t *testing.T) {
	v := New4[Aligned](int16(-3), 0, 5, math.MinInt16+1)
	if got, want := v.Abs().ToArray(), [4]int16{3, 0, 5, math.MaxInt16}; got != want {
		t.Errorf("Abs: got %v, want %v", got, want)
	}
	if got, want := v.Signum().ToArray(), [4]int16{-1, 0, 1, -1}; got != want {
		t.Errorf("Signum: got %v, want %v", got, want)
	}
	if got, want := v.Not().ToArray(), [4]int16{2, -1, -6, math.MaxInt16 - 1}; got != want {
		t.Errorf("Not: got %v, want %v", got, want)
	}
	requirePanicKind(t, MissingBackend, func() { New2[Aligned](uint(1), 2).Neg() })
}

func TestBitwise(t *testing.T) {
	a := New4[Aligned](uint32(0xF0F0), 0xFF00, 1, 0x8000_0000)
	b := New4[Aligned](uint32(0x0FF0), 0x00FF, 3, 1)
	if got, want := a.And(b).ToArray(), [4]uint32{0x00F0, 0, 1, 0}; got != want {
		t.Errorf("And: got %#x, want %#x", got, want)
	}
	if got, want := a.Or(b).ToArray(), [4]uint32{0xFFF0, 0xFFFF, 3, 0x8000_0001}; got != want {
		t.Errorf("Or: got %#x, want %#x", got, want)
	}
	if got, want := a.Xor(b).ToArray(), [4]uint32{0xFF00, 0xFFFF, 2, 0x8000_0001}; got != want {
		t.Errorf("Xor: got %#x, want %#x", got, want)
	}
	s := New4[Aligned](uint32(1), 4, 31, 0)
	if got, want := a.Shl(s).ToArray(), [4]uint32{0x1E1E0, 0xFF000, 0x8000_0000, 0x8000_0000}; got != want {
		t.Errorf("Shl: got %#x, want %#x", got, want)
	}
	if got, want := a.Shr(s).ToArray(), [4]uint32{0x7878, 0xFF0, 0, 0x8000_0000}; got != want {
		t.Errorf("Shr: got %#x, want %#x", got, want)
	}
	n := New2[Aligned](int8(-128), -1)
	if got, want := n.Shr(Splat2[Aligned](int8(7))).ToArray(), [2]int8{-1, -1}; got != want {
		t.Errorf("Shr int8 is not arithmetic: got %v, want %v", got, want)
	}
}

func TestIntegerReductions(t *testing.T) {
	v := New4[Packed](int32(1), 2, 3, 4)
	if got := v.ElementSum(); got != 10 {
		t.Errorf("ElementSum: got %d, want 10", got)
	}
	if got := v.ElementProduct(); got != 24 {
		t.Errorf("ElementProduct: got %d, want 24", got)
	}
	if got := v.Dot(New4[Packed](int32(-1), 1, -1, 1)); got != 2 {
		t.Errorf("Dot: got %d, want 2", got)
	}
	if got, want := v.LengthSquared(), v.Dot(v); got != want || got != 30 {
		t.Errorf("LengthSquared: got %d, want %d", got, want)
	}
	if got := v.MinElement(); got != 1 {
		t.Errorf("MinElement: got %d, want 1", got)
	}
	requirePanicKind(t, MissingBackend, func() { v.Sqrt() })
	requirePanicKind(t, MissingBackend, func() { v.IsNormalized() })
}
