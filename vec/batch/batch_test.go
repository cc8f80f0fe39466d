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

package batch

import (
	"errors"
	"math"
	"testing"

	"github.com/ajroetker/go-smallvec/internal/testutil"
	"github.com/ajroetker/go-smallvec/vec"
	"github.com/google/go-cmp/cmp"
)

func TestFlattenAliases(t *testing.T) {
	vs := []vec.Vec3fP{
		vec.New3[vec.Packed](float32(1), 2, 3),
		vec.New3[vec.Packed](float32(4), 5, 6),
	}
	flat := Flatten[float32](vs)
	if want := []float32{1, 2, 3, 4, 5, 6}; !cmp.Equal(flat, want) {
		t.Fatalf("Flatten: %s", cmp.Diff(want, flat))
	}
	flat[4] = 50
	if got := vs[1].Y(); got != 50 {
		t.Errorf("write through Flatten: vs[1].Y() = %v, want 50", got)
	}
	if Flatten[float32, vec.Vec3fP](nil) != nil {
		t.Error("Flatten(nil): want nil")
	}
}

func TestUnflatten(t *testing.T) {
	s := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	v2, err := Unflatten[vec.Vec2[int32, vec.Packed]](s)
	if err != nil {
		t.Fatalf("Unflatten Vec2: %v", err)
	}
	if len(v2) != 4 || v2[3] != vec.New2[vec.Packed](int32(7), 8) {
		t.Errorf("Unflatten Vec2: got %v", v2)
	}
	v4, err := Unflatten[vec.Vec4[int32, vec.Packed]](s)
	if err != nil || len(v4) != 2 {
		t.Fatalf("Unflatten Vec4: got %v, %v", v4, err)
	}
	v4[0].SetW(40)
	if s[3] != 40 {
		t.Errorf("write through Unflatten: s[3] = %d, want 40", s[3])
	}

	_, err = Unflatten[vec.Vec3[int32, vec.Packed]](s)
	if !errors.Is(err, vec.ErrIndexOutOfRange) {
		t.Errorf("Unflatten Vec3 of 8 lanes: got %v, want IndexOutOfRange", err)
	}
	if got, err := Unflatten[vec.Vec3[int32, vec.Packed]]([]int32{}); got != nil || err != nil {
		t.Errorf("Unflatten(empty): got %v, %v", got, err)
	}
}

func TestBlockKernels(t *testing.T) {
	a := Vec3s{vec.New3[vec.Packed](1.0, 2.0, 3.0), vec.New3[vec.Packed](-1.0, 0.5, 4.0)}
	b := Vec3s{vec.New3[vec.Packed](0.5, 0.5, 0.5), vec.New3[vec.Packed](2.0, 4.0, -1.0)}

	tests := []struct {
		name string
		run  func(dst Vec3s) error
		want func(i int) vec.Vec3[float64, vec.Packed]
	}{
		{
			"AddInPlace",
			func(dst Vec3s) error { copy(dst, a); return AddInPlace(dst, b) },
			func(i int) vec.Vec3[float64, vec.Packed] { return a[i].Add(b[i]) },
		},
		{
			"MulInPlace",
			func(dst Vec3s) error { copy(dst, a); return MulInPlace(dst, b) },
			func(i int) vec.Vec3[float64, vec.Packed] { return a[i].Mul(b[i]) },
		},
		{
			"Mul",
			func(dst Vec3s) error { return Mul(dst, a, b) },
			func(i int) vec.Vec3[float64, vec.Packed] { return a[i].Mul(b[i]) },
		},
		{
			"Scale",
			func(dst Vec3s) error { return Scale(dst, a, -2) },
			func(i int) vec.Vec3[float64, vec.Packed] { return a[i].MulScalar(-2) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make(Vec3s, len(a))
			if err := tt.run(dst); err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
			for i := range dst {
				if want := tt.want(i); dst[i] != want {
					t.Errorf("%s: vector %d: got %v, want %v", tt.name, i, dst[i], want)
				}
			}
		})
	}
}

func TestLengthMismatch(t *testing.T) {
	a := make(Vec4s, 3)
	b := make(Vec4s, 2)
	errs := map[string]error{
		"AddInPlace": AddInPlace(a, b),
		"MulInPlace": MulInPlace(a, b),
		"Mul":        Mul(a, a, b),
		"Scale":      Scale(b, a, 1),
		"Lengths2":   Lengths2(make([]float64, 1), make(Vec2s, 2)),
	}
	for name, err := range errs {
		var e *vec.Error
		if !errors.As(err, &e) || e.Kind != vec.IndexOutOfRange || e.Op != name {
			t.Errorf("%s: got %v, want an IndexOutOfRange error from %s", name, err, name)
		}
	}
}

func TestLengths2(t *testing.T) {
	vs := Vec2s{
		vec.New2[vec.Packed](3.0, 4.0),
		vec.New2[vec.Packed](-5.0, 12.0),
		vec.New2[vec.Packed](0.0, 0.0),
		vec.New2[vec.Packed](1e-3, math.Sqrt2),
	}
	lengths := make([]float64, len(vs))
	squares := make([]float64, len(vs))
	if err := Lengths2(lengths, vs); err != nil {
		t.Fatal(err)
	}
	if err := LengthsSquared2(squares, vs); err != nil {
		t.Fatal(err)
	}
	for i, v := range vs {
		if want := v.Length(); math.Abs(lengths[i]-want) > 1e-12*max(1, want) {
			t.Errorf("Lengths2: vector %d: got %v, want %v", i, lengths[i], want)
		}
		testutil.RequireWithinULP(t, "LengthsSquared2", squares[i], v.LengthSquared(), 2)
	}
}
