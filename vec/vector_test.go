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
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConstructors(t *testing.T) {
	if got, want := New4[Aligned](int32(1), 2, 3, 4).ToArray(), [4]int32{1, 2, 3, 4}; got != want {
		t.Errorf("New4: got %v, want %v", got, want)
	}
	if got, want := Splat3[Packed](uint8(7)).ToArray(), [3]uint8{7, 7, 7}; got != want {
		t.Errorf("Splat3: got %v, want %v", got, want)
	}
	sq := FromFn4[Aligned](func(i int) float64 { return float64(i * i) })
	if got, want := sq.ToArray(), [4]float64{0, 1, 4, 9}; got != want {
		t.Errorf("FromFn4: got %v, want %v", got, want)
	}
	if got := Zero2[Aligned, float32](); got != (Vec2[float32, Aligned]{}) {
		t.Errorf("Zero2: got %v, want zero value", got)
	}
	if got, want := One3[Packed, int16]().ToArray(), [3]int16{1, 1, 1}; got != want {
		t.Errorf("One3: got %v, want %v", got, want)
	}
}

func testRoundTrip[T Scalar](t *testing.T, name string, a [4]T) {
	t.Helper()
	a2, a3 := [2]T(a[:2]), [3]T(a[:3])
	if got := FromArray2[Aligned](a2).ToArray(); got != a2 {
		t.Errorf("%s Vec2 Aligned: got %v, want %v", name, got, a2)
	}
	if got := FromArray2[Packed](a2).ToArray(); got != a2 {
		t.Errorf("%s Vec2 Packed: got %v, want %v", name, got, a2)
	}
	if got := FromArray3[Aligned](a3).ToArray(); got != a3 {
		t.Errorf("%s Vec3 Aligned: got %v, want %v", name, got, a3)
	}
	if got := FromArray3[Packed](a3).ToArray(); got != a3 {
		t.Errorf("%s Vec3 Packed: got %v, want %v", name, got, a3)
	}
	if got := FromArray4[Aligned](a).ToArray(); got != a {
		t.Errorf("%s Vec4 Aligned: got %v, want %v", name, got, a)
	}
	if got := FromArray4[Packed](a).ToArray(); got != a {
		t.Errorf("%s Vec4 Packed: got %v, want %v", name, got, a)
	}
}

func TestRoundTrip(t *testing.T) {
	testRoundTrip(t, "float32", [4]float32{1.5, -2, float32(math.Inf(1)), 0})
	testRoundTrip(t, "float64", [4]float64{math.Pi, -0.0, 1e300, -1e-300})
	testRoundTrip(t, "int8", [4]int8{math.MinInt8, -1, 0, math.MaxInt8})
	testRoundTrip(t, "int64", [4]int64{math.MinInt64, -1, 0, math.MaxInt64})
	testRoundTrip(t, "uint16", [4]uint16{0, 1, 2, math.MaxUint16})
	testRoundTrip(t, "uintptr", [4]uintptr{0, 1, 2, 3})
	testRoundTrip(t, "bool", [4]bool{true, false, false, true})
}

func TestRealign(t *testing.T) {
	p := New3[Packed](float32(1), 2, 3)
	a := p.Align()
	if a.ToArray() != p.ToArray() {
		t.Errorf("Align: got %v, want %v", a, p)
	}
	if a.Unalign() != p {
		t.Errorf("Unalign(Align(v)): got %v, want %v", a.Unalign(), p)
	}
	if got := Realign3[Aligned](a); got != a {
		t.Errorf("Realign3 to the same alignment: got %v, want %v", got, a)
	}
	if got := Realign4[Packed](New4[Aligned](1, 2, 3, 4)); got != New4[Packed](1, 2, 3, 4) {
		t.Errorf("Realign4: got %v", got)
	}
}

func TestIndexing(t *testing.T) {
	v := New3[Aligned](10, 20, 30)
	for i, want := range []int{10, 20, 30} {
		if got := v.At(i); got != want {
			t.Errorf("At: lane %d: got %d, want %d", i, got, want)
		}
		got, err := v.Get(i)
		if err != nil || got != want {
			t.Errorf("Get: lane %d: got %d, %v, want %d", i, got, err, want)
		}
	}

	for _, i := range []int{-1, 3, 100} {
		if _, err := v.Get(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Get(%d): got error %v, want IndexOutOfRange", i, err)
		}
		e := requirePanicKind(t, IndexOutOfRange, func() { v.At(i) })
		if e.Lane != i {
			t.Errorf("At(%d) panic: lane %d", i, e.Lane)
		}
		requirePanicKind(t, IndexOutOfRange, func() { v.Set(i, 0) })
	}

	v.Set(1, 99)
	if got, want := v.ToArray(), [3]int{10, 99, 30}; got != want {
		t.Errorf("Set: got %v, want %v", got, want)
	}
	w := v.With(0, -1)
	if v.At(0) != 10 || w.At(0) != -1 {
		t.Errorf("With: got v=%v w=%v", v, w)
	}
	v.Swap(0, 2)
	if got, want := v.ToArray(), [3]int{30, 99, 10}; got != want {
		t.Errorf("Swap: got %v, want %v", got, want)
	}
	v.AsArray()[2] = 7
	if v.At(2) != 7 {
		t.Errorf("AsArray: write not visible, got %v", v)
	}
}

func TestIterators(t *testing.T) {
	v := New4[Packed](float64(1), 2, 3, 4)
	if got, want := slices.Collect(v.Values()), []float64{1, 2, 3, 4}; !cmp.Equal(got, want) {
		t.Errorf("Values: %s", cmp.Diff(want, got))
	}
	n := 0
	for i, x := range v.All() {
		if x != float64(i+1) {
			t.Errorf("All: lane %d: got %v, want %v", i, x, i+1)
		}
		n++
		if i == 1 {
			break
		}
	}
	if n != 2 {
		t.Errorf("All: early break visited %d lanes, want 2", n)
	}
	for _, p := range v.Refs() {
		*p *= 10
	}
	if got, want := v.ToArray(), [4]float64{10, 20, 30, 40}; got != want {
		t.Errorf("Refs: got %v, want %v", got, want)
	}
}

func TestMapZip(t *testing.T) {
	v := New3[Aligned](1, 2, 3)
	f := Map3(v, func(x int) float32 { return float32(x) / 2 })
	if got, want := f.ToArray(), [3]float32{0.5, 1, 1.5}; got != want {
		t.Errorf("Map3: got %v, want %v", got, want)
	}
	m := Zip3(v, f, func(a int, b float32) bool { return float32(a) > b })
	if got, want := m.ToArray(), [3]bool{true, true, true}; got != want {
		t.Errorf("Zip3: got %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  fmt.Stringer
		want string
	}{
		{"Vec2f", New2[Aligned](float32(1.5), -2), "[1.5 -2]"},
		{"Vec3i", New3[Packed](int32(1), 2, 3), "[1 2 3]"},
		{"Vec4b", New4[Aligned](true, false, true, false), "[true false true false]"},
		{"Mask2", MaskFromArray2[float64, Aligned]([2]bool{true, false}), "[true false]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.String(); got != tt.want {
				t.Errorf("String: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLanewiseFloat(t *testing.T) {
	a := New4[Aligned](float32(1), -2, 3.5, 8)
	b := New4[Aligned](float32(4), 0.5, -1, 2)
	tests := []struct {
		name string
		got  Vec4[float32, Aligned]
		op   func(x, y float32) float32
	}{
		{"Add", a.Add(b), func(x, y float32) float32 { return x + y }},
		{"Sub", a.Sub(b), func(x, y float32) float32 { return x - y }},
		{"Mul", a.Mul(b), func(x, y float32) float32 { return x * y }},
		{"Div", a.Div(b), func(x, y float32) float32 { return x / y }},
		{"Min", a.Min(b), func(x, y float32) float32 { return min(x, y) }},
		{"Max", a.Max(b), func(x, y float32) float32 { return max(x, y) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range 4 {
				want := tt.op(a.At(i), b.At(i))
				if got := tt.got.At(i); got != want {
					t.Errorf("%s float32: lane %d: got %v, want %v", tt.name, i, got, want)
				}
			}
		})
	}
	if got, want := a.Neg().ToArray(), [4]float32{-1, 2, -3.5, -8}; got != want {
		t.Errorf("Neg: got %v, want %v", got, want)
	}
	if got, want := a.MulScalar(2).ToArray(), [4]float32{2, -4, 7, 16}; got != want {
		t.Errorf("MulScalar: got %v, want %v", got, want)
	}
	if got, want := a.AddScalar(1).ToArray(), [4]float32{2, -1, 4.5, 9}; got != want {
		t.Errorf("AddScalar: got %v, want %v", got, want)
	}
}

func TestLanewisePacked(t *testing.T) {
	a := New3[Packed](1.0, 2.0, 3.0)
	b := New3[Packed](0.5, 0.25, 2.0)
	if got, want := a.Div(b).ToArray(), [3]float64{2, 8, 1.5}; got != want {
		t.Errorf("Div Packed: got %v, want %v", got, want)
	}
	if got, want := a.Sub(b).Align(), a.Align().Sub(b.Align()); got != want {
		t.Errorf("Sub: Packed %v and Aligned %v differ", got, want)
	}
}

func TestEquality(t *testing.T) {
	a := New3[Aligned](float32(1), 2, 3)
	if !a.Eq(a) || a.Ne(a) {
		t.Errorf("Eq: %v is not equal to itself", a)
	}
	if a.Eq(a.With(2, 4)) {
		t.Error("Eq: vectors differing in lane 2 compare equal")
	}
	n := a.With(0, float32(math.NaN()))
	if n.Eq(n) {
		t.Error("Eq: NaN lane compared equal")
	}
	z := New2[Aligned](float32(0), 0)
	nz := New2[Aligned](float32(math.Copysign(0, -1)), 0)
	if !z.Eq(nz) {
		t.Error("Eq: -0 and +0 compare unequal")
	}
}

func TestComparisons(t *testing.T) {
	a := New4[Aligned](int16(1), 5, -3, 7)
	b := New4[Aligned](int16(2), 5, -4, 7)
	tests := []struct {
		name string
		got  Mask4[int16, Aligned]
		want [4]bool
	}{
		{"CmpEq", a.CmpEq(b), [4]bool{false, true, false, true}},
		{"CmpNe", a.CmpNe(b), [4]bool{true, false, true, false}},
		{"CmpLt", a.CmpLt(b), [4]bool{true, false, false, false}},
		{"CmpLe", a.CmpLe(b), [4]bool{true, true, false, true}},
		{"CmpGt", a.CmpGt(b), [4]bool{false, false, true, false}},
		{"CmpGe", a.CmpGe(b), [4]bool{false, true, true, true}},
	}
	for _, tt := range tests {
		if got := tt.got.ToArray(); got != tt.want {
			t.Errorf("%s: %s", tt.name, cmp.Diff(tt.want, got))
		}
	}
}

func TestBoolVector(t *testing.T) {
	a := New4[Aligned](true, true, false, false)
	b := New4[Aligned](true, false, true, false)
	tests := []struct {
		name string
		got  [4]bool
		want [4]bool
	}{
		{"Not", a.Not().ToArray(), [4]bool{false, false, true, true}},
		{"And", a.And(b).ToArray(), [4]bool{true, false, false, false}},
		{"Or", a.Or(b).ToArray(), [4]bool{true, true, true, false}},
		{"Xor", a.Xor(b).ToArray(), [4]bool{false, true, true, false}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	requirePanicKind(t, MissingBackend, func() { a.Add(b) })
}

func TestGeometry(t *testing.T) {
	x := New3[Aligned](1.0, 0.0, 0.0)
	y := New3[Aligned](0.0, 1.0, 0.0)
	if got, want := x.Cross(y), New3[Aligned](0.0, 0.0, 1.0); got != want {
		t.Errorf("Cross(x, y): got %v, want %v", got, want)
	}
	a := New3[Packed](int32(2), 3, 4)
	b := New3[Packed](int32(5), 6, 7)
	if got, want := a.Cross(b).ToArray(), [3]int32{-3, 6, -3}; got != want {
		t.Errorf("Cross int32: got %v, want %v", got, want)
	}
	if d := a.Cross(b).Dot(a); d != 0 {
		t.Errorf("Cross is not orthogonal to its input: dot %d", d)
	}

	v := New2[Aligned](float32(3), 4)
	if got, want := v.Perp(), New2[Aligned](float32(-4), 3); got != want {
		t.Errorf("Perp: got %v, want %v", got, want)
	}
	if got := v.PerpDot(New2[Aligned](float32(1), 0)); got != -4 {
		t.Errorf("PerpDot: got %v, want -4", got)
	}

	if got, want := v.Extend(5), New3[Aligned](float32(3), 4, 5); got != want {
		t.Errorf("Extend: got %v, want %v", got, want)
	}
	if got := v.Extend(5).Extend(6).Truncate().Truncate(); got != v {
		t.Errorf("Truncate(Extend(v)): got %v, want %v", got, v)
	}
}
