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
	"iter"
	"math"
)

// Vec3 is a three-lane vector over T with storage alignment A.
//
// The zero value is the zero vector. Vec3 values are comparable with == when T
// is, and copying one copies its lanes.
type Vec3[T Scalar, A Alignment] struct {
	lanes [3]T
}

// New3 returns the vector (x, y, z).
func New3[A Alignment, T Scalar](x, y, z T) Vec3[T, A] {
	return Vec3[T, A]{lanes: [3]T{x, y, z}}
}

// FromArray3 returns the vector holding the lanes of a.
func FromArray3[A Alignment, T Scalar](a [3]T) Vec3[T, A] {
	return Vec3[T, A]{lanes: a}
}

// Splat3 returns the vector with every lane set to x.
func Splat3[A Alignment, T Scalar](x T) Vec3[T, A] {
	var v Vec3[T, A]
	for i := range v.lanes {
		v.lanes[i] = x
	}
	return v
}

// FromFn3 returns the vector whose lane i is f(i).
func FromFn3[A Alignment, T Scalar](f func(i int) T) Vec3[T, A] {
	var v Vec3[T, A]
	for i := range v.lanes {
		v.lanes[i] = f(i)
	}
	return v
}

// Zero3 returns the zero vector.
func Zero3[A Alignment, T Scalar]() Vec3[T, A] {
	return Vec3[T, A]{}
}

// One3 returns the vector of ones.
func One3[A Alignment, T Numbers]() Vec3[T, A] {
	return Splat3[A, T](1)
}

// Map3 applies f to every lane.
func Map3[T, U Scalar, A Alignment](v Vec3[T, A], f func(T) U) Vec3[U, A] {
	var r Vec3[U, A]
	for i, x := range v.lanes {
		r.lanes[i] = f(x)
	}
	return r
}

// Zip3 combines the lanes of a and b pairwise.
func Zip3[T, U, R Scalar, A Alignment](a Vec3[T, A], b Vec3[U, A], f func(T, U) R) Vec3[R, A] {
	var r Vec3[R, A]
	for i := range r.lanes {
		r.lanes[i] = f(a.lanes[i], b.lanes[i])
	}
	return r
}

// Realign3 converts v to alignment A2. The semantic lanes are copied and
// the padding of the target form is re-initialised.
func Realign3[A2 Alignment, T Scalar, A Alignment](v Vec3[T, A]) Vec3[T, A2] {
	return Vec3[T, A2]{lanes: v.lanes}
}

func (v Vec3[T, A]) shape() Shape {
	return ShapeOf[Len3, A]()
}

func (v Vec3[T, A]) ops() *Ops[T] {
	return opsFor[T](v.shape())
}

// reg returns the register form, padding slots filled with the last lane.
func (v Vec3[T, A]) reg() Lanes[T] {
	return Lanes[T]{v.lanes[0], v.lanes[1], v.lanes[2], v.lanes[2]}
}

func from3[T Scalar, A Alignment](r Lanes[T]) Vec3[T, A] {
	return Vec3[T, A]{lanes: [3]T(r[:3])}
}

// Len returns 3.
func (v Vec3[T, A]) Len() int { return 3 }

// ToArray returns the lanes as an array.
func (v Vec3[T, A]) ToArray() [3]T { return v.lanes }

// AsArray returns a pointer to the semantic lanes.
func (v *Vec3[T, A]) AsArray() *[3]T { return &v.lanes }

// Values returns an iterator over the lanes in index order.
func (v Vec3[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.lanes {
			if !yield(x) {
				return
			}
		}
	}
}

// All returns an iterator over (index, lane) pairs.
func (v Vec3[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.lanes {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Refs returns an iterator over (index, pointer to lane) pairs, for updating
// lanes in place.
func (v *Vec3[T, A]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range v.lanes {
			if !yield(i, &v.lanes[i]) {
				return
			}
		}
	}
}

// At returns lane i. It panics with IndexOutOfRange if i is not in [0, 3).
func (v Vec3[T, A]) At(i int) T {
	if uint(i) >= 3 {
		panic(indexError("At", i, 3))
	}
	return v.lanes[i]
}

// Get returns lane i, or an IndexOutOfRange error.
func (v Vec3[T, A]) Get(i int) (T, error) {
	if uint(i) >= 3 {
		var zero T
		return zero, indexError("Get", i, 3)
	}
	return v.lanes[i], nil
}

// Set assigns lane i. It panics with IndexOutOfRange if i is not in [0, 3).
func (v *Vec3[T, A]) Set(i int, x T) {
	if uint(i) >= 3 {
		panic(indexError("Set", i, 3))
	}
	v.lanes[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v Vec3[T, A]) With(i int, x T) Vec3[T, A] {
	v.Set(i, x)
	return v
}

// Swap exchanges lanes i and j.
func (v *Vec3[T, A]) Swap(i, j int) {
	if uint(i) >= 3 {
		panic(indexError("Swap", i, 3))
	}
	if uint(j) >= 3 {
		panic(indexError("Swap", j, 3))
	}
	v.lanes[i], v.lanes[j] = v.lanes[j], v.lanes[i]
}

// Align returns v with Aligned storage.
func (v Vec3[T, A]) Align() Vec3[T, Aligned] { return Realign3[Aligned](v) }

// Unalign returns v with Packed storage.
func (v Vec3[T, A]) Unalign() Vec3[T, Packed] { return Realign3[Packed](v) }

// String formats v like its lane array, e.g. "[1 2 3]".
func (v Vec3[T, A]) String() string {
	return fmt.Sprint(v.lanes)
}

// Eq reports whether all lanes of v and w are equal.
func (v Vec3[T, A]) Eq(w Vec3[T, A]) bool { return v.ops().Eq(v.reg(), w.reg()) }

// Ne reports whether any lane of v and w differs.
func (v Vec3[T, A]) Ne(w Vec3[T, A]) bool { return !v.Eq(w) }

// Neg returns -v.
func (v Vec3[T, A]) Neg() Vec3[T, A] { return from3[T, A](v.ops().Neg(v.reg())) }

// Add returns v + w lane-wise.
func (v Vec3[T, A]) Add(w Vec3[T, A]) Vec3[T, A] { return from3[T, A](v.ops().Add(v.reg(), w.reg())) }

// Sub returns v - w lane-wise.
func (v Vec3[T, A]) Sub(w Vec3[T, A]) Vec3[T, A] { return from3[T, A](v.ops().Sub(v.reg(), w.reg())) }

// Mul returns v * w lane-wise.
func (v Vec3[T, A]) Mul(w Vec3[T, A]) Vec3[T, A] { return from3[T, A](v.ops().Mul(v.reg(), w.reg())) }

// Div returns v / w lane-wise. Integer division by zero panics with
// OverflowOrDivideByZero.
func (v Vec3[T, A]) Div(w Vec3[T, A]) Vec3[T, A] { return from3[T, A](v.ops().Div(v.reg(), w.reg())) }

// Rem returns v % w lane-wise, with the sign of v.
func (v Vec3[T, A]) Rem(w Vec3[T, A]) Vec3[T, A] { return from3[T, A](v.ops().Rem(v.reg(), w.reg())) }

// Not returns the bitwise complement of every lane.
func (v Vec3[T, A]) Not() Vec3[T, A] { return from3[T, A](v.ops().Not(v.reg())) }

// And returns the bitwise AND of every lane.
func (v Vec3[T, A]) And(w Vec3[T, A]) Vec3[T, A] { return from3[T, A](v.ops().And(v.reg(), w.reg())) }

// Or returns the bitwise OR of every lane.
func (v Vec3[T, A]) Or(w Vec3[T, A]) Vec3[T, A] { return from3[T, A](v.ops().Or(v.reg(), w.reg())) }

// Xor returns the bitwise XOR of every lane.
func (v Vec3[T, A]) Xor(w Vec3[T, A]) Vec3[T, A] { return from3[T, A](v.ops().Xor(v.reg(), w.reg())) }

// Shl shifts every lane of v left by the matching lane of w.
func (v Vec3[T, A]) Shl(w Vec3[T, A]) Vec3[T, A] { return from3[T, A](v.ops().Shl(v.reg(), w.reg())) }

// Shr shifts every lane of v right by the matching lane of w;
// signed lanes shift arithmetically.
func (v Vec3[T, A]) Shr(w Vec3[T, A]) Vec3[T, A] { return from3[T, A](v.ops().Shr(v.reg(), w.reg())) }

// AddScalar adds s to every lane.
func (v Vec3[T, A]) AddScalar(s T) Vec3[T, A] { return from3[T, A](v.ops().Add(v.reg(), splatLanes(s))) }

// SubScalar subtracts s from every lane.
func (v Vec3[T, A]) SubScalar(s T) Vec3[T, A] { return from3[T, A](v.ops().Sub(v.reg(), splatLanes(s))) }

// MulScalar multiplies every lane by s.
func (v Vec3[T, A]) MulScalar(s T) Vec3[T, A] { return from3[T, A](v.ops().Mul(v.reg(), splatLanes(s))) }

// DivScalar divides every lane by s.
func (v Vec3[T, A]) DivScalar(s T) Vec3[T, A] { return from3[T, A](v.ops().Div(v.reg(), splatLanes(s))) }

// RemScalar returns the remainder of every lane divided by s.
func (v Vec3[T, A]) RemScalar(s T) Vec3[T, A] { return from3[T, A](v.ops().Rem(v.reg(), splatLanes(s))) }

// CmpEq returns the mask of lanes where v == w.
func (v Vec3[T, A]) CmpEq(w Vec3[T, A]) Mask3[T, A] { return mask3From[T, A](v.ops().CmpEq(v.reg(), w.reg())) }

// CmpNe returns the mask of lanes where v != w.
func (v Vec3[T, A]) CmpNe(w Vec3[T, A]) Mask3[T, A] { return mask3From[T, A](v.ops().CmpNe(v.reg(), w.reg())) }

// CmpLt returns the mask of lanes where v < w.
func (v Vec3[T, A]) CmpLt(w Vec3[T, A]) Mask3[T, A] { return mask3From[T, A](v.ops().CmpLt(v.reg(), w.reg())) }

// CmpLe returns the mask of lanes where v <= w.
func (v Vec3[T, A]) CmpLe(w Vec3[T, A]) Mask3[T, A] { return mask3From[T, A](v.ops().CmpLe(v.reg(), w.reg())) }

// CmpGt returns the mask of lanes where v > w.
func (v Vec3[T, A]) CmpGt(w Vec3[T, A]) Mask3[T, A] { return mask3From[T, A](v.ops().CmpGt(v.reg(), w.reg())) }

// CmpGe returns the mask of lanes where v >= w.
func (v Vec3[T, A]) CmpGe(w Vec3[T, A]) Mask3[T, A] { return mask3From[T, A](v.ops().CmpGe(v.reg(), w.reg())) }

// Abs returns the absolute value of every lane.
func (v Vec3[T, A]) Abs() Vec3[T, A] { return from3[T, A](v.ops().Abs(v.reg())) }

// Signum returns the sign of every lane: 1 or -1 for floats, keeping the
// sign of zeros, and NaN for NaN; -1, 0 or 1 for integers.
func (v Vec3[T, A]) Signum() Vec3[T, A] { return from3[T, A](v.ops().Signum(v.reg())) }

// Copysign returns the magnitudes of v with the signs of s.
func (v Vec3[T, A]) Copysign(s Vec3[T, A]) Vec3[T, A] { return from3[T, A](v.ops().Copysign(v.reg(), s.reg())) }

// DivEuclid returns the Euclidean quotient, which rounds so that
// RemEuclid is non-negative.
func (v Vec3[T, A]) DivEuclid(w Vec3[T, A]) Vec3[T, A] {
	return from3[T, A](v.ops().DivEuclid(v.reg(), w.reg()))
}

// RemEuclid returns the least non-negative remainder of v / w.
func (v Vec3[T, A]) RemEuclid(w Vec3[T, A]) Vec3[T, A] {
	return from3[T, A](v.ops().RemEuclid(v.reg(), w.reg()))
}

// Sqrt returns the correctly rounded square root of every lane.
func (v Vec3[T, A]) Sqrt() Vec3[T, A] { return from3[T, A](v.ops().Sqrt(v.reg())) }

// Floor rounds every lane towards negative infinity.
func (v Vec3[T, A]) Floor() Vec3[T, A] { return from3[T, A](v.ops().Floor(v.reg())) }

// Ceil rounds every lane towards positive infinity.
func (v Vec3[T, A]) Ceil() Vec3[T, A] { return from3[T, A](v.ops().Ceil(v.reg())) }

// Round rounds every lane to the nearest integer, ties away from zero.
func (v Vec3[T, A]) Round() Vec3[T, A] { return from3[T, A](v.ops().Round(v.reg())) }

// Trunc rounds every lane towards zero.
func (v Vec3[T, A]) Trunc() Vec3[T, A] { return from3[T, A](v.ops().Trunc(v.reg())) }

// Fract returns v - v.Trunc().
func (v Vec3[T, A]) Fract() Vec3[T, A] { return from3[T, A](v.ops().Fract(v.reg())) }

// Recip returns 1 / v for every lane.
func (v Vec3[T, A]) Recip() Vec3[T, A] { return from3[T, A](v.ops().Recip(v.reg())) }

// Sin returns the sine of every lane, within 1 ULP of math.Sin.
func (v Vec3[T, A]) Sin() Vec3[T, A] { return from3[T, A](v.ops().Sin(v.reg())) }

// Cos returns the cosine of every lane.
func (v Vec3[T, A]) Cos() Vec3[T, A] { return from3[T, A](v.ops().Cos(v.reg())) }

// Tan returns the tangent of every lane.
func (v Vec3[T, A]) Tan() Vec3[T, A] { return from3[T, A](v.ops().Tan(v.reg())) }

// Asin returns the arcsine of every lane.
func (v Vec3[T, A]) Asin() Vec3[T, A] { return from3[T, A](v.ops().Asin(v.reg())) }

// Acos returns the arccosine of every lane.
func (v Vec3[T, A]) Acos() Vec3[T, A] { return from3[T, A](v.ops().Acos(v.reg())) }

// Atan returns the arctangent of every lane.
func (v Vec3[T, A]) Atan() Vec3[T, A] { return from3[T, A](v.ops().Atan(v.reg())) }

// Exp returns e raised to every lane. Under the fastmath tag the relative
// error is below 4e-6 for normal inputs.
func (v Vec3[T, A]) Exp() Vec3[T, A] { return from3[T, A](v.ops().Exp(v.reg())) }

// Ln returns the natural logarithm of every lane. Under the fastmath tag the
// absolute error is below 1.3e-5 for normal inputs.
func (v Vec3[T, A]) Ln() Vec3[T, A] { return from3[T, A](v.ops().Ln(v.reg())) }

// MulAdd returns v*b + c. With the backend.fma option on, every lane is
// rounded once.
func (v Vec3[T, A]) MulAdd(b, c Vec3[T, A]) Vec3[T, A] {
	return from3[T, A](v.ops().MulAdd(v.reg(), b.reg(), c.reg()))
}

// Min returns the lane-wise minimum. With assertions on, NaN lanes panic
// with NaNInput.
func (v Vec3[T, A]) Min(w Vec3[T, A]) Vec3[T, A] {
	a, b := v.reg(), w.reg()
	if assertions {
		assertNotNaN("Min", v.shape(), a, b)
	}
	return from3[T, A](v.ops().Min(a, b))
}

// Max returns the lane-wise maximum. With assertions on, NaN lanes panic
// with NaNInput.
func (v Vec3[T, A]) Max(w Vec3[T, A]) Vec3[T, A] {
	a, b := v.reg(), w.reg()
	if assertions {
		assertNotNaN("Max", v.shape(), a, b)
	}
	return from3[T, A](v.ops().Max(a, b))
}

// Clamp limits every lane to [lo, hi]. With assertions on, NaN lanes panic
// with NaNInput and lo > hi panics with MinGreaterThanMax.
func (v Vec3[T, A]) Clamp(lo, hi Vec3[T, A]) Vec3[T, A] {
	o := v.ops()
	a, l, h := v.reg(), lo.reg(), hi.reg()
	if assertions {
		s := v.shape()
		assertNotNaN("Clamp", s, a, l, h)
		assertOrdered("Clamp", s, o, l, h)
	}
	return from3[T, A](o.Clamp(a, l, h))
}

// MinElement returns the smallest lane.
func (v Vec3[T, A]) MinElement() T {
	a := v.reg()
	if assertions {
		assertNotNaN("MinElement", v.shape(), a)
	}
	return v.ops().MinElement(a)
}

// MaxElement returns the largest lane.
func (v Vec3[T, A]) MaxElement() T {
	a := v.reg()
	if assertions {
		assertNotNaN("MaxElement", v.shape(), a)
	}
	return v.ops().MaxElement(a)
}

// ElementSum returns the sum of the lanes. Float lanes are added as
// (x+y)+(z+w).
func (v Vec3[T, A]) ElementSum() T { return v.ops().ElementSum(v.reg()) }

// ElementProduct returns the product of the lanes.
func (v Vec3[T, A]) ElementProduct() T { return v.ops().ElementProduct(v.reg()) }

// Dot returns the dot product of v and w.
func (v Vec3[T, A]) Dot(w Vec3[T, A]) T { return v.ops().Dot(v.reg(), w.reg()) }

// LengthSquared returns v.Dot(v).
func (v Vec3[T, A]) LengthSquared() T { return v.ops().LengthSquared(v.reg()) }

// Length returns the Euclidean length of v. Float lengths are rounded once,
// so they are within 1 ULP of the exact value, and do not overflow or
// underflow unless the result does.
func (v Vec3[T, A]) Length() T { return v.ops().Length(v.reg()) }

// LengthRecip returns 1 / v.Length().
func (v Vec3[T, A]) LengthRecip() T { return v.ops().Recip(splatLanes(v.Length()))[0] }

// Distance returns the Euclidean distance between v and w.
func (v Vec3[T, A]) Distance(w Vec3[T, A]) T { return v.Sub(w).Length() }

// DistanceSquared returns the squared distance between v and w.
func (v Vec3[T, A]) DistanceSquared(w Vec3[T, A]) T {
	return v.Sub(w).LengthSquared()
}

// Normalize returns v / v.Length(). Every lane is within 1 ULP of the exact
// quotient, and the length of the result is within 1 ULP of 1. With
// assertions on, an input that cannot be normalised panics with
// NotNormalisable.
func (v Vec3[T, A]) Normalize() Vec3[T, A] {
	if assertions {
		n, err := v.TryNormalize()
		if err != nil {
			panic(err)
		}
		return n
	}
	return from3[T, A](v.ops().Normalize(v.reg()))
}

// TryNormalize returns v.Normalize(), or a NotNormalisable error when v has
// a non-finite lane or a length that is zero or overflows T.
func (v Vec3[T, A]) TryNormalize() (Vec3[T, A], error) {
	o := v.ops()
	l := o.Length(v.reg())
	var zero T
	if !o.IsFinite(v.reg()).all(3) || !o.IsFinite(splatLanes(l))[0] || l == zero {
		return Vec3[T, A]{}, &Error{
			Kind:   NotNormalisable,
			Op:     "TryNormalize",
			Triple: tripleName[T](v.shape()),
			Lane:   -1,
			Values: []any{v.lanes},
		}
	}
	return from3[T, A](o.Normalize(v.reg())), nil
}

// NormalizeOr returns the normalised v, or fallback when v cannot be
// normalised.
func (v Vec3[T, A]) NormalizeOr(fallback Vec3[T, A]) Vec3[T, A] {
	if n, err := v.TryNormalize(); err == nil {
		return n
	}
	return fallback
}

// IsNormalized reports whether v has unit length, within 2e-4 of the
// squared length.
func (v Vec3[T, A]) IsNormalized() bool {
	ls, ok := floatValue(v.LengthSquared())
	if !ok {
		panic(classError[T]("IsNormalized", v.shape()))
	}
	return math.Abs(ls-1) <= 2e-4
}

// IsFinite reports whether every lane is finite.
func (v Vec3[T, A]) IsFinite() bool { return v.ops().IsFinite(v.reg()).all(3) }

// IsNaN reports whether any lane is NaN.
func (v Vec3[T, A]) IsNaN() bool { return v.ops().IsNaN(v.reg()).first(3) >= 0 }

// IsNaNMask returns the mask of NaN lanes.
func (v Vec3[T, A]) IsNaNMask() Mask3[T, A] { return mask3From[T, A](v.ops().IsNaN(v.reg())) }

// Lerp interpolates linearly between v at s = 0 and w at s = 1.
func (v Vec3[T, A]) Lerp(w Vec3[T, A], s T) Vec3[T, A] {
	return v.Add(w.Sub(v).MulScalar(s))
}

// MoveTowards moves v towards target by at most d, without overshooting.
func (v Vec3[T, A]) MoveTowards(target Vec3[T, A], d T) Vec3[T, A] {
	a := target.Sub(v)
	l := a.Length()
	eps, ok := floatScalar[T](1e-4)
	if !ok {
		panic(classError[T]("MoveTowards", v.shape()))
	}
	o := v.ops()
	if o.CmpLe(splatLanes(l), splatLanes(d))[0] || o.CmpLe(splatLanes(l), splatLanes(eps))[0] {
		return target
	}
	return v.Add(a.DivScalar(l).MulScalar(d))
}

// CheckedAdd returns v + w, or an OverflowOrDivideByZero error naming the
// first lane that overflows.
func (v Vec3[T, A]) CheckedAdd(w Vec3[T, A]) (Vec3[T, A], error) {
	return v.checked("CheckedAdd", v.ops().CheckedAdd, w)
}

// CheckedSub returns v - w, or an OverflowOrDivideByZero error.
func (v Vec3[T, A]) CheckedSub(w Vec3[T, A]) (Vec3[T, A], error) {
	return v.checked("CheckedSub", v.ops().CheckedSub, w)
}

// CheckedMul returns v * w, or an OverflowOrDivideByZero error.
func (v Vec3[T, A]) CheckedMul(w Vec3[T, A]) (Vec3[T, A], error) {
	return v.checked("CheckedMul", v.ops().CheckedMul, w)
}

// CheckedDiv returns v / w, or an OverflowOrDivideByZero error on a zero
// divisor or overflow.
func (v Vec3[T, A]) CheckedDiv(w Vec3[T, A]) (Vec3[T, A], error) {
	return v.checked("CheckedDiv", v.ops().CheckedDiv, w)
}

// CheckedRem returns v % w, or an OverflowOrDivideByZero error.
func (v Vec3[T, A]) CheckedRem(w Vec3[T, A]) (Vec3[T, A], error) {
	return v.checked("CheckedRem", v.ops().CheckedRem, w)
}

func (v Vec3[T, A]) checked(op string, k func(a, b Lanes[T]) (Lanes[T], int), w Vec3[T, A]) (Vec3[T, A], error) {
	r, bad := k(v.reg(), w.reg())
	if bad >= 0 {
		return Vec3[T, A]{}, overflowError(op, tripleName[T](v.shape()), bad, v.lanes[bad], w.lanes[bad])
	}
	return from3[T, A](r), nil
}

// SaturatingAdd returns v + w, each lane clamped to the range of T.
func (v Vec3[T, A]) SaturatingAdd(w Vec3[T, A]) Vec3[T, A] {
	return from3[T, A](v.ops().SaturatingAdd(v.reg(), w.reg()))
}

// SaturatingSub returns v - w, clamped to the range of T.
func (v Vec3[T, A]) SaturatingSub(w Vec3[T, A]) Vec3[T, A] {
	return from3[T, A](v.ops().SaturatingSub(v.reg(), w.reg()))
}

// SaturatingMul returns v * w, clamped to the range of T.
func (v Vec3[T, A]) SaturatingMul(w Vec3[T, A]) Vec3[T, A] {
	return from3[T, A](v.ops().SaturatingMul(v.reg(), w.reg()))
}

// WrappingAdd returns v + w modulo 2^width.
func (v Vec3[T, A]) WrappingAdd(w Vec3[T, A]) Vec3[T, A] {
	return from3[T, A](v.ops().WrappingAdd(v.reg(), w.reg()))
}

// WrappingSub returns v - w modulo 2^width.
func (v Vec3[T, A]) WrappingSub(w Vec3[T, A]) Vec3[T, A] {
	return from3[T, A](v.ops().WrappingSub(v.reg(), w.reg()))
}

// WrappingMul returns v * w modulo 2^width.
func (v Vec3[T, A]) WrappingMul(w Vec3[T, A]) Vec3[T, A] {
	return from3[T, A](v.ops().WrappingMul(v.reg(), w.reg()))
}

// Mask3 is a three-lane boolean mask. It is produced by the comparisons of
// Vec3[T, A] and selects between vectors of exactly that type; T and A carry no
// data.
type Mask3[T Scalar, A Alignment] struct {
	bits [3]bool
}

// MaskFromArray3 returns the mask holding the lanes of a.
func MaskFromArray3[T Scalar, A Alignment](a [3]bool) Mask3[T, A] {
	return Mask3[T, A]{bits: a}
}

// MaskSplat3 returns the mask with every lane set to b.
func MaskSplat3[T Scalar, A Alignment](b bool) Mask3[T, A] {
	var m Mask3[T, A]
	for i := range m.bits {
		m.bits[i] = b
	}
	return m
}

// MaskFromFn3 returns the mask whose lane i is f(i).
func MaskFromFn3[T Scalar, A Alignment](f func(i int) bool) Mask3[T, A] {
	var m Mask3[T, A]
	for i := range m.bits {
		m.bits[i] = f(i)
	}
	return m
}

func mask3From[T Scalar, A Alignment](b Bits) Mask3[T, A] {
	return Mask3[T, A]{bits: [3]bool(b[:3])}
}

func (m Mask3[T, A]) reg() Bits {
	return Bits{m.bits[0], m.bits[1], m.bits[2], m.bits[2]}
}

// Len returns 3.
func (m Mask3[T, A]) Len() int { return 3 }

// ToArray returns the lanes as an array.
func (m Mask3[T, A]) ToArray() [3]bool { return m.bits }

// At returns lane i. It panics with IndexOutOfRange if i is not in [0, 3).
func (m Mask3[T, A]) At(i int) bool {
	if uint(i) >= 3 {
		panic(indexError("At", i, 3))
	}
	return m.bits[i]
}

// Get returns lane i, or an IndexOutOfRange error.
func (m Mask3[T, A]) Get(i int) (bool, error) {
	if uint(i) >= 3 {
		return false, indexError("Get", i, 3)
	}
	return m.bits[i], nil
}

// Set assigns lane i. It panics with IndexOutOfRange if i is not in [0, 3).
func (m *Mask3[T, A]) Set(i int, b bool) {
	if uint(i) >= 3 {
		panic(indexError("Set", i, 3))
	}
	m.bits[i] = b
}

// All reports whether every lane is set.
func (m Mask3[T, A]) All() bool { return m.reg().all(3) }

// Any reports whether some lane is set.
func (m Mask3[T, A]) Any() bool { return m.reg().first(3) >= 0 }

// None reports whether no lane is set.
func (m Mask3[T, A]) None() bool { return !m.Any() }

// Bitmask packs the mask into the low 3 bits, lane i at bit i.
func (m Mask3[T, A]) Bitmask() uint8 {
	var r uint8
	for i, b := range m.bits {
		if b {
			r |= 1 << i
		}
	}
	return r
}

// Not inverts every lane.
func (m Mask3[T, A]) Not() Mask3[T, A] {
	for i := range m.bits {
		m.bits[i] = !m.bits[i]
	}
	return m
}

// And returns the lanes set in both m and o.
func (m Mask3[T, A]) And(o Mask3[T, A]) Mask3[T, A] {
	for i := range m.bits {
		m.bits[i] = m.bits[i] && o.bits[i]
	}
	return m
}

// Or returns the lanes set in m or o.
func (m Mask3[T, A]) Or(o Mask3[T, A]) Mask3[T, A] {
	for i := range m.bits {
		m.bits[i] = m.bits[i] || o.bits[i]
	}
	return m
}

// Xor returns the lanes set in exactly one of m and o.
func (m Mask3[T, A]) Xor(o Mask3[T, A]) Mask3[T, A] {
	for i := range m.bits {
		m.bits[i] = m.bits[i] != o.bits[i]
	}
	return m
}

// Select returns the vector whose lane i is t[i] where lane i of m is set
// and f[i] elsewhere.
func (m Mask3[T, A]) Select(t, f Vec3[T, A]) Vec3[T, A] {
	return from3[T, A](t.ops().Select(m.reg(), t.reg(), f.reg()))
}

// String formats m like its lane array, e.g. "[true false]".
func (m Mask3[T, A]) String() string {
	return fmt.Sprint(m.bits)
}
