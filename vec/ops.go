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

import "github.com/cwbudde/algo-vecmath/cpu"

// Ops is the kernel table of one backend for one (T, N, A) triple. Every
// field is optional: a nil field falls back to the next backend in priority
// order and finally to the reference kernels. Kernels read the first N lanes
// of their inputs; result slots past N are ignored.
type Ops[T Scalar] struct {
	// Eq reports whether all lanes are equal.
	Eq func(a, b Lanes[T]) bool

	Neg func(a Lanes[T]) Lanes[T]
	Add func(a, b Lanes[T]) Lanes[T]
	Sub func(a, b Lanes[T]) Lanes[T]
	Mul func(a, b Lanes[T]) Lanes[T]
	Div func(a, b Lanes[T]) Lanes[T]
	Rem func(a, b Lanes[T]) Lanes[T]

	// Bitwise operations, integers and bool only.
	Not func(a Lanes[T]) Lanes[T]
	And func(a, b Lanes[T]) Lanes[T]
	Or  func(a, b Lanes[T]) Lanes[T]
	Xor func(a, b Lanes[T]) Lanes[T]
	Shl func(a, b Lanes[T]) Lanes[T]
	Shr func(a, b Lanes[T]) Lanes[T]

	// Mask-producing comparisons.
	CmpEq func(a, b Lanes[T]) Bits
	CmpNe func(a, b Lanes[T]) Bits
	CmpLt func(a, b Lanes[T]) Bits
	CmpLe func(a, b Lanes[T]) Bits
	CmpGt func(a, b Lanes[T]) Bits
	CmpGe func(a, b Lanes[T]) Bits

	// Select picks t[i] where m[i] is set and f[i] elsewhere.
	Select func(m Bits, t, f Lanes[T]) Lanes[T]

	Min   func(a, b Lanes[T]) Lanes[T]
	Max   func(a, b Lanes[T]) Lanes[T]
	Clamp func(v, lo, hi Lanes[T]) Lanes[T]

	MinElement     func(a Lanes[T]) T
	MaxElement     func(a Lanes[T]) T
	ElementSum     func(a Lanes[T]) T
	ElementProduct func(a Lanes[T]) T
	Dot            func(a, b Lanes[T]) T
	LengthSquared  func(a Lanes[T]) T

	Abs       func(a Lanes[T]) Lanes[T]
	Signum    func(a Lanes[T]) Lanes[T]
	DivEuclid func(a, b Lanes[T]) Lanes[T]
	RemEuclid func(a, b Lanes[T]) Lanes[T]

	// Floating-point only.
	Copysign func(a, sign Lanes[T]) Lanes[T]
	Sqrt     func(a Lanes[T]) Lanes[T]
	Floor    func(a Lanes[T]) Lanes[T]
	Ceil     func(a Lanes[T]) Lanes[T]
	Round    func(a Lanes[T]) Lanes[T]
	Trunc    func(a Lanes[T]) Lanes[T]
	Fract    func(a Lanes[T]) Lanes[T]
	Recip    func(a Lanes[T]) Lanes[T]
	MulAdd   func(a, b, c Lanes[T]) Lanes[T]

	// Length is rounded once to T. Normalize divides by the unrounded length.
	// Both are reference kernels: a backend that overrides them must keep
	// them within 1 ULP.
	Length    func(a Lanes[T]) T
	Normalize func(a Lanes[T]) Lanes[T]

	Sin      func(a Lanes[T]) Lanes[T]
	Cos      func(a Lanes[T]) Lanes[T]
	Tan      func(a Lanes[T]) Lanes[T]
	Asin     func(a Lanes[T]) Lanes[T]
	Acos     func(a Lanes[T]) Lanes[T]
	Atan     func(a Lanes[T]) Lanes[T]
	Exp      func(a Lanes[T]) Lanes[T]
	Ln       func(a Lanes[T]) Lanes[T]
	IsNaN    func(a Lanes[T]) Bits
	IsFinite func(a Lanes[T]) Bits

	// Integer only. Checked kernels return the first failing lane, or -1.
	CheckedAdd    func(a, b Lanes[T]) (Lanes[T], int)
	CheckedSub    func(a, b Lanes[T]) (Lanes[T], int)
	CheckedMul    func(a, b Lanes[T]) (Lanes[T], int)
	CheckedDiv    func(a, b Lanes[T]) (Lanes[T], int)
	CheckedRem    func(a, b Lanes[T]) (Lanes[T], int)
	SaturatingAdd func(a, b Lanes[T]) Lanes[T]
	SaturatingSub func(a, b Lanes[T]) Lanes[T]
	SaturatingMul func(a, b Lanes[T]) Lanes[T]
	WrappingAdd   func(a, b Lanes[T]) Lanes[T]
	WrappingSub   func(a, b Lanes[T]) Lanes[T]
	WrappingMul   func(a, b Lanes[T]) Lanes[T]
}

// Backend is one implementation variant for a scalar type.
//
// Backends register with Register. When a scalar type's operations are first
// resolved, the registered backends whose Level is supported by the CPU are
// merged in descending Priority order: the first backend that supplies an
// operation for a shape wins. Suggested priorities follow the vecmath
// registries: reference 0, 128-bit SIMD 10, user overrides 100.
type Backend[T Scalar] struct {
	// Name identifies the backend in diagnostics, e.g. "reference".
	Name string

	// Level is the SIMD level the backend requires.
	Level cpu.SIMDLevel

	// Priority orders backends; higher wins.
	Priority int

	// Shapes holds the kernels per shape. Missing shapes contribute nothing.
	Shapes map[Shape]*Ops[T]
}

// ForEachShape returns a Shapes map with fill applied to a fresh Ops for
// every supported shape. It is a convenience for backends that serve all
// shapes from one kernel family.
func ForEachShape[T Scalar](fill func(s Shape, o *Ops[T])) map[Shape]*Ops[T] {
	m := make(map[Shape]*Ops[T], len(shapes))
	for _, s := range shapes {
		o := new(Ops[T])
		fill(s, o)
		m[s] = o
	}
	return m
}
