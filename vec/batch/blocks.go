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
	"fmt"

	"github.com/ajroetker/go-smallvec/vec"
	"github.com/cwbudde/algo-vecmath"
)

// Float64 vector slices over which the block kernels run.
type (
	Vec2s = []vec.Vec2[float64, vec.Packed]
	Vec3s = []vec.Vec3[float64, vec.Packed]
	Vec4s = []vec.Vec4[float64, vec.Packed]
)

func sameLength(op string, a, b int) error {
	if a != b {
		return &vec.Error{
			Kind:   vec.IndexOutOfRange,
			Op:     op,
			Lane:   -1,
			Detail: fmt.Sprintf("length mismatch: %d vs %d", a, b),
		}
	}
	return nil
}

// AddInPlace computes dst[i] += src[i] for every vector.
func AddInPlace[V Packed[float64]](dst, src []V) error {
	if err := sameLength("AddInPlace", len(dst), len(src)); err != nil {
		return err
	}
	vecmath.AddBlockInPlace(Flatten[float64](dst), Flatten[float64](src))
	return nil
}

// MulInPlace computes dst[i] *= src[i] lane-wise for every vector.
func MulInPlace[V Packed[float64]](dst, src []V) error {
	if err := sameLength("MulInPlace", len(dst), len(src)); err != nil {
		return err
	}
	vecmath.MulBlockInPlace(Flatten[float64](dst), Flatten[float64](src))
	return nil
}

// Mul computes dst[i] = a[i] * b[i] lane-wise for every vector.
func Mul[V Packed[float64]](dst, a, b []V) error {
	if err := sameLength("Mul", len(dst), len(a)); err != nil {
		return err
	}
	if err := sameLength("Mul", len(a), len(b)); err != nil {
		return err
	}
	vecmath.MulBlock(Flatten[float64](dst), Flatten[float64](a), Flatten[float64](b))
	return nil
}

// Scale computes dst[i] = src[i] * s for every vector.
func Scale[V Packed[float64]](dst, src []V, s float64) error {
	if err := sameLength("Scale", len(dst), len(src)); err != nil {
		return err
	}
	vecmath.ScaleBlock(Flatten[float64](dst), Flatten[float64](src), s)
	return nil
}

// Lengths2 stores the length of every vector of vs in dst.
func Lengths2(dst []float64, vs Vec2s) error {
	if err := sameLength("Lengths2", len(dst), len(vs)); err != nil {
		return err
	}
	x, y := deinterleave2(vs)
	vecmath.Magnitude(dst, x, y)
	return nil
}

// LengthsSquared2 stores the squared length of every vector of vs in dst.
func LengthsSquared2(dst []float64, vs Vec2s) error {
	if err := sameLength("LengthsSquared2", len(dst), len(vs)); err != nil {
		return err
	}
	x, y := deinterleave2(vs)
	vecmath.Power(dst, x, y)
	return nil
}

// deinterleave2 splits vs into its x and y lanes.
func deinterleave2(vs Vec2s) (x, y []float64) {
	x = make([]float64, len(vs))
	y = make([]float64, len(vs))
	for i, v := range vs {
		x[i], y[i] = v.X(), v.Y()
	}
	return x, y
}
