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
	"strings"
	"testing"
)

func TestOptions(t *testing.T) {
	c := Options()
	if c.SIMD != simdCompiled || c.FMA != fmaPermitted || c.Overflow != overflowPolicy ||
		c.Assertions != assertions || c.Up != upAxis || c.ForwardSign != forwardSign {
		t.Errorf("Options: got %+v", c)
	}
	s := c.String()
	for _, key := range []string{"backend.simd=", "backend.fma=", "overflow.integer=", "assertions=", "axis.up=+", "axis.forward="} {
		if !strings.Contains(s, key) {
			t.Errorf("Config.String: %q lacks %q", s, key)
		}
	}
}

func TestConfigString(t *testing.T) {
	tests := []struct {
		c    Config
		want string
	}{
		{
			Config{SIMD: true, FMA: true, Overflow: OverflowStrict, Assertions: true, Up: AxisY, ForwardSign: -1},
			"backend.simd=true backend.fma=true overflow.integer=strict assertions=true axis.up=+y axis.forward=-z",
		},
		{
			Config{Overflow: OverflowWrapping, Up: AxisZ, ForwardSign: 1},
			"backend.simd=false backend.fma=false overflow.integer=wrapping assertions=false axis.up=+z axis.forward=+y",
		},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Config.String:\ngot  %s\nwant %s", got, tt.want)
		}
	}
}

func TestAxes(t *testing.T) {
	up := Up[Aligned, float32]()
	fwd := Forward[Aligned, float32]()
	right := Right[Aligned, float32]()
	if got := up.At(int(upAxis)); got != 1 {
		t.Errorf("Up: got %v, want +1 on axis %v", up, upAxis)
	}
	if got := fwd.At(int(forwardAxis(upAxis))); got != float32(forwardSign) {
		t.Errorf("Forward: got %v, want %d on axis %v", fwd, forwardSign, forwardAxis(upAxis))
	}
	if up.Dot(fwd) != 0 || up.Dot(right) != 0 || fwd.Dot(right) != 0 {
		t.Errorf("axes are not orthogonal: up %v forward %v right %v", up, fwd, right)
	}
	pairs := []struct {
		name string
		a, b Vec3[float32, Aligned]
	}{
		{"Down", Down[Aligned, float32](), up},
		{"Back", Back[Aligned, float32](), fwd},
		{"Left", Left[Aligned, float32](), right},
	}
	for _, p := range pairs {
		if p.a != p.b.Neg() {
			t.Errorf("%s: got %v, want %v", p.name, p.a, p.b.Neg())
		}
	}
	if got, want := Right[Packed, int8](), New3[Packed](int8(1), 0, 0); got != want {
		t.Errorf("Right: got %v, want %v", got, want)
	}
	// With the default convention the basis is right-handed: right x up = back.
	if upAxis == AxisY && forwardSign < 0 {
		if got := right.Cross(up); got != Back[Aligned, float32]() {
			t.Errorf("Right x Up: got %v, want Back", got)
		}
	}
}

func TestUnit(t *testing.T) {
	if got, want := Unit4[Packed, uint8](AxisW).ToArray(), [4]uint8{0, 0, 0, 1}; got != want {
		t.Errorf("Unit4(W): got %v, want %v", got, want)
	}
	if got, want := Unit3[Aligned, float64](AxisY).ToArray(), [3]float64{0, 1, 0}; got != want {
		t.Errorf("Unit3(Y): got %v, want %v", got, want)
	}
	requirePanicKind(t, IndexOutOfRange, func() { Unit3[Aligned, float64](AxisW) })
}

func TestShapes(t *testing.T) {
	tests := []struct {
		got     Shape
		padding int
		want    string
	}{
		{ShapeOf[Len2, Aligned](), PaddingOf[Len2, Aligned](), "(2, Aligned)"},
		{ShapeOf[Len3, Aligned](), PaddingOf[Len3, Aligned](), "(3, Aligned)"},
		{ShapeOf[Len3, Packed](), PaddingOf[Len3, Packed](), "(3, Packed)"},
		{ShapeOf[Len4, Packed](), PaddingOf[Len4, Packed](), "(4, Packed)"},
	}
	wantPadding := []int{0, 1, 0, 0}
	for i, tt := range tests {
		if tt.got.String() != tt.want || tt.padding != wantPadding[i] {
			t.Errorf("shape %d: got %v padding %d, want %s padding %d", i, tt.got, tt.padding, tt.want, wantPadding[i])
		}
	}
	for i, s := range shapes {
		if s.index() != i {
			t.Errorf("%v.index() = %d, want %d", s, s.index(), i)
		}
	}
}

func TestErrorFormat(t *testing.T) {
	err := overflowError("Add", "(int32, 3, Packed)", 0, int32(2147483647), int32(1))
	want := "vec: OverflowOrDivideByZero in Add for (int32, 3, Packed) at lane 0 (inputs [2147483647 1])"
	if got := err.Error(); got != want {
		t.Errorf("Error:\ngot  %s\nwant %s", got, want)
	}
	if got := indexError("At", 5, 3).Error(); got != "vec: IndexOutOfRange in At at lane 5: length is 3" {
		t.Errorf("Error: got %s", got)
	}
	if got := ErrNotNormalisable.Error(); got != "vec: NotNormalisable" {
		t.Errorf("sentinel Error: got %s", got)
	}
}

func TestErrorIs(t *testing.T) {
	sentinels := []error{
		ErrIndexOutOfRange, ErrOverflowOrDivideByZero, ErrNotNormalisable, ErrNaNInput,
		ErrMinGreaterThanMax, ErrAliasingBorrow, ErrMissingBackend,
	}
	for i := range sentinels {
		wrapped := fmt.Errorf("while testing: %w", &Error{Kind: ErrorKind(i), Op: "Op", Lane: 1})
		for j, o := range sentinels {
			if got := errors.Is(wrapped, o); got != (i == j) {
				t.Errorf("errors.Is(%v, %v) = %v", wrapped, o, got)
			}
		}
	}
	if errors.Is(ErrNaNInput, errors.New("vec: NaNInput")) {
		t.Error("errors.Is matched a foreign error with the same text")
	}
	if ErrorKind(42).String() != "Unknown" {
		t.Errorf("ErrorKind(42).String() = %q", ErrorKind(42).String())
	}
}
