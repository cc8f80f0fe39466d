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

//go:build amd64 && goexperiment.simd && !vecnosimd

package vec

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-vecmath/cpu"
	xcpu "golang.org/x/sys/cpu"
)

// This file provides the archsimd backend of Aligned float32 and float64
// vectors. Only correctly rounded operations are accelerated, so results are
// bit-identical to the reference kernels; reductions store the lanes and sum
// them in the reference order.

// simdPriority ranks the archsimd backend above the reference kernels.
const simdPriority = 20

func init() {
	Register(simdFloat32())
	Register(simdFloat64())
}

func simdFloat32() *Backend[float32] {
	return &Backend[float32]{
		Name:     "avx2",
		Level:    cpu.SIMDAVX2,
		Priority: simdPriority,
		Shapes: ForEachShape(func(s Shape, o *Ops[float32]) {
			if !s.Aligned {
				return
			}
			n := s.N
			o.Add = func(a, b Lanes[float32]) Lanes[float32] { return store32(load32(a).Add(load32(b))) }
			o.Sub = func(a, b Lanes[float32]) Lanes[float32] { return store32(load32(a).Sub(load32(b))) }
			o.Mul = func(a, b Lanes[float32]) Lanes[float32] { return store32(load32(a).Mul(load32(b))) }
			o.Div = func(a, b Lanes[float32]) Lanes[float32] { return store32(load32(a).Div(load32(b))) }
			o.Sqrt = func(a Lanes[float32]) Lanes[float32] { return store32(load32(a).Sqrt()) }
			o.Dot = func(a, b Lanes[float32]) float32 {
				return pairwiseSum(store32(load32(a).Mul(load32(b))), n)
			}
			o.LengthSquared = func(a Lanes[float32]) float32 {
				v := load32(a)
				return pairwiseSum(store32(v.Mul(v)), n)
			}
			if fmaPermitted && xcpu.X86.HasFMA {
				o.MulAdd = func(a, b, c Lanes[float32]) Lanes[float32] {
					return store32(load32(a).MulAdd(load32(b), load32(c)))
				}
			}
		}),
	}
}

func simdFloat64() *Backend[float64] {
	return &Backend[float64]{
		Name:     "avx2",
		Level:    cpu.SIMDAVX2,
		Priority: simdPriority,
		Shapes: ForEachShape(func(s Shape, o *Ops[float64]) {
			if !s.Aligned {
				return
			}
			n := s.N
			o.Add = func(a, b Lanes[float64]) Lanes[float64] { return store64(load64(a).Add(load64(b))) }
			o.Sub = func(a, b Lanes[float64]) Lanes[float64] { return store64(load64(a).Sub(load64(b))) }
			o.Mul = func(a, b Lanes[float64]) Lanes[float64] { return store64(load64(a).Mul(load64(b))) }
			o.Div = func(a, b Lanes[float64]) Lanes[float64] { return store64(load64(a).Div(load64(b))) }
			o.Sqrt = func(a Lanes[float64]) Lanes[float64] { return store64(load64(a).Sqrt()) }
			o.Dot = func(a, b Lanes[float64]) float64 {
				return pairwiseSum(store64(load64(a).Mul(load64(b))), n)
			}
			o.LengthSquared = func(a Lanes[float64]) float64 {
				v := load64(a)
				return pairwiseSum(store64(v.Mul(v)), n)
			}
			if fmaPermitted && xcpu.X86.HasFMA {
				o.MulAdd = func(a, b, c Lanes[float64]) Lanes[float64] {
					return store64(load64(a).MulAdd(load64(b), load64(c)))
				}
			}
		}),
	}
}

// load32 widens the register form to a Float32x8. The upper half repeats the
// last lane, like the padding slots, so no lane can fault or produce a
// spurious exception value that differs from its neighbours.
func load32(a Lanes[float32]) archsimd.Float32x8 {
	buf := [8]float32{a[0], a[1], a[2], a[3], a[3], a[3], a[3], a[3]}
	return archsimd.LoadFloat32x8Slice(buf[:])
}

func store32(v archsimd.Float32x8) Lanes[float32] {
	var buf [8]float32
	v.StoreSlice(buf[:])
	return Lanes[float32](buf[:4])
}

func load64(a Lanes[float64]) archsimd.Float64x4 {
	return archsimd.LoadFloat64x4Slice(a[:])
}

func store64(v archsimd.Float64x4) Lanes[float64] {
	var r Lanes[float64]
	v.StoreSlice(r[:])
	return r
}
