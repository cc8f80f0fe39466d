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

// Vec2 is a two-lane vector over T with storage alignment A.
//
// The zero value is the zero vector. Vec2 values are comparable with == when T
// is, and copying one copies its lanes.
type Vec2[T Scalar, A Alignment] struct {
	lanes [2]T
}

// New2 returns the vector (x, y).
func New2[A Alignment, T Scalar](x, y T) Vec2[T, A] {
	return Vec2[T, A]{lanes: [2]T{x, y}}
}

// FromArray2 returns the vector holding the lanes of a.
func FromArray2[A Alignment, T Scalar](a [2]T) Vec2[T, A] {
	return Vec2[T, A]{lanes: a}
}

// Splat2 returns the vector with every lane set to x.
func Splat2[A Alignment, T Scalar](x T) Vec2[T, A] {
	var v Vec2[T, A]
	for i := range v.lanes {
		v.lanes[i] = x
	}
	return v
}

// FromFn2 returns the vector whose lane i is f(i).
func FromFn2[A Alignment, T Scalar](f func(i int) T) Vec2[T, A] {
	var v Vec2[T, A]
	for i := range v.lanes {
		v.lanes[i] = f(i)
	}
	return v
}

// Zero2 returns the zero vector.
func Zero2[A Alignment, T Scalar]() Vec2[T, A] {
	return Vec2[T, A]{}
}

// One2 returns the vector of ones.
func One2[A Alignment, T Numbers]() Vec2[T, A] {
	return Splat2[A, T](1)
}

// Map2 applies f to every lane.
func Map2[T, U Scalar, A Alignment](v Vec2[T, A], f func(T) U) Vec2[U, A] {
	var r Vec2[U, A]
	for i, x := range v.lanes {
		r.lanes[i] = f(x)
	}
	return r
}

// Zip2 combines the lanes of a and b pairwise.
func Zip2[T, U, R Scalar, A Alignment](a Vec2[T, A], b Vec2[U, A], f func(T, U) R) Vec2[R, A] {
	var r Vec2[R, A]
	for i := range r.lanes {
		r.lanes[i] = f(a.lanes[i], b.lanes[i])
	}
	return r
}

// Realign2 converts v to alignment A2. The semantic lanes are copied and
// the padding of the target form is re-initialised.
func Realign2[A2 Alignment, T Scalar, A Alignment](v Vec2[T, A]) Vec2[T, A2] {
	return Vec2[T, A2]{lanes: v.lanes}
}

func (v Vec2[T, A]) shape() Shape {
	return ShapeOf[Len2, A]()
}

func (v Vec2[T, A]) ops() *Ops[T] {
	return opsFor[T](v.shape())
}

// reg returns the register form, padding slots filled with the last lane.
func (v Vec2[T, A]) reg() Lanes[T] {
	return Lanes[T]{v.lanes[0], v.lanes[1], v.lanes[1], v.lanes[1]}
}

func from2[T Scalar, A Alignment](r Lanes[T]) Vec2[T, A] {
	return Vec2[T, A]{lanes: [2]T(r[:2])}
}

// Len returns 2.
func (v Vec2[T, A]) Len() int { return 2 }

// ToArray returns the lanes as an array.
func (v Vec2[T, A]) ToArray() [2]T { return v.lanes }

// AsArray returns a pointer to the semantic lanes.
func (v *Vec2[T, A]) AsArray() *[2]T { return &v.lanes }

// Values returns an iterator over the lanes in index order.
func (v Vec2[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.lanes {
			if !yield(x) {
				return
			}
		}
	}
}

// All returns an iterator over (index, lane) pairs.
func (v Vec2[T, A]) All() iter.Seq2[int, T] {
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
func (v *Vec2[T, A]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range v.lanes {
			if !yield(i, &v.lanes[i]) {
				return
			}
		}
	}
}

// At returns lane i. It panics with IndexOutOfRange if i is not in [0, 2).
func (v Vec2[T, A]) At(i int) T {
	if uint(i) >= 2 {
		panic(indexError("At", i, 2))
	}
	return v.lanes[i]
}

// Get returns lane i, or an IndexOutOfRange error.
func (v Vec2[T, A]) Get(i int) (T, error) {
	if uint(i) >= 2 {
		var zero T
		return zero, indexError("Get", i, 2)
	}
	return v.lanes[i], nil
}

// Set assigns lane i. It panics with IndexOutOfRange if i is not in [0, 2).
func (v *Vec2[T, A]) Set(i int, x T) {
	if uint(i) >= 2 {
		panic(indexError("Set", i, 2))
	}
	v.lanes[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v Vec2[T, A]) With(i int, x T) Vec2[T, A] {
	v.Set(i, x)
	return v
}

// Swap exchanges lanes i and j.
func (v *Vec2[T, A]) Swap(i, j int) {
	if uint(i) >= 2 {
		panic(indexError("Swap", i, 2))
	}
	if uint(j) >= 2 {
		panic(indexError("Swap", j, 2))
	}
	v.lanes[i], v.lanes[j] = v.lanes[j], v.lanes[i]
}

// Align returns v with Aligned storage.
func (v Vec2[T, A]) Align() Vec2[T, Aligned] { return Realign2[Aligned](v) }

// Unalign returns v with Packed storage.
func (v Vec2[T, A]) Unalign() Vec2[T, Packed] { return Realign2[Packed](v) }

// String formats v like its lane array, e.g. "[1 2]".
func (v Vec2[T, A]) String() string {
	return fmt.Sprint(v.lanes)
}

// Eq reports whether all lanes of v and w are equal.
func (v Vec2[T, A]) Eq(w Vec2[T, A]) bool { return v.ops().Eq(v.reg(), w.reg()) }

// Ne reports whether any lane of v and w differs.
func (v Vec2[T, A]) Ne(w Vec2[T, A]) bool { return !v.Eq(w) }

// Neg returns -v.
func (v Vec2[T, A]) Neg() Vec2[T, A] { return from2[T, A](v.ops().Neg(v.reg())) }

// Add returns v + w lane-wise.
func (v Vec2[T, A]) Add(w Vec2[T, A]) Vec2[T, A] { return from2[T, A](v.ops().Add(v.reg(), w.reg())) }

// Sub returns v - w lane-wise.
func (v Vec2[T, A]) Sub(w Vec2[T, A]) Vec2[T, A] { return from2[T, A](v.ops().Sub(v.reg(), w.reg())) }

// Mul returns v * w lane-wise.
func (v Vec2[T, A]) Mul(w Vec2[T, A]) Vec2[T, A] { return from2[T, A](v.ops().Mul(v.reg(), w.reg())) }

// Div returns v / w lane-wise. Integer division by zero panics with
// OverflowOrDivideByZero.
func (v Vec2[T, A]) Div(w Vec2[T, A]) Vec2[T, A] { return from2[T, A](v.ops().Div(v.reg(), w.reg())) }

// Rem returns v % w lane-wise, with the sign of v.
func (v Vec2[T, A]) Rem(w Vec2[T, A]) Vec2[T, A] { return from2[T, A](v.ops().Rem(v.reg(), w.reg())) }

// Not returns the bitwise complement of every lane.
func (v Vec2[T, A]) Not() Vec2[T, A] { return from2[T, A](v.ops().Not(v.reg())) }

// And returns the bitwise AND of every lane.
func (v Vec2[T, A]) And(w Vec2[T, A]) Vec2[T, A] { return from2[T, A](v.ops().And(v.reg(), w.reg())) }

// Or returns the bitwise OR of every lane.
func (v Vec2[T, A]) Or(w Vec2[T, A]) Vec2[T, A] { return from2[T, A](v.ops().Or(v.reg(), w.reg())) }

// Xor returns the bitwise XOR of every lane.
func (v Vec2[T, A]) Xor(w Vec2[T, A]) Vec2[T, A] { return from2[T, A](v.ops().Xor(v.reg(), w.reg())) }

// Shl shifts every lane of v left by the matching lane of w.
func (v Vec2[T, A]) Shl(w Vec2[T, A]) Vec2[T, A] { return from2[T, A](v.ops().Shl(v.reg(), w.reg())) }

// Shr shifts every lane of v right by the matching lane of w;
// signed lanes shift arithmetically.
func (v Vec2[T, A]) Shr(w Vec2[T, A]) Vec2[T, A] { return from2[T, A](v.ops().Shr(v.reg(), w.reg())) }

// AddScalar adds s to every lane.
func (v Vec2[T, A]) AddScalar(s T) Vec2[T, A] { return from2[T, A](v.ops().Add(v.reg(), splatLanes(s))) }

// SubScalar subtracts s from every lane.
func (v Vec2[T, A]) SubScalar(s T) Vec2[T, A] { return from2[T, A](v.ops().Sub(v.reg(), splatLanes(s))) }

// MulScalar multiplies every lane by s.
func (v Vec2[T, A]) MulScalar(s T) Vec2[T, A] { return from2[T, A](v.ops().Mul(v.reg(), splatLanes(s))) }

// DivScalar divides every lane by s.
func (v Vec2[T, A]) DivScalar(s T) Vec2[T, A] { return from2[T, A](v.ops().Div(v.reg(), splatLanes(s))) }

// RemScalar returns the remainder of every lane divided by s.
func (v Vec2[T, A]) RemScalar(s T) Vec2[T, A] { return from2[T, A](v.ops().Rem(v.reg(), splatLanes(s))) }

// CmpEq returns the mask of lanes where v == w.
func (v Vec2[T, A]) CmpEq(w Vec2[T, A]) Mask2[T, A] { return mask2From[T, A](v.ops().CmpEq(v.reg(), w.reg())) }

// CmpNe returns the mask of lanes where v != w.
func (v Vec2[T, A]) CmpNe(w Vec2[T, A]) Mask2[T, A] { return mask2From[T, A](v.ops().CmpNe(v.reg(), w.reg())) }

// CmpLt returns the mask of lanes where v < w.
func (v Vec2[T, A]) CmpLt(w Vec2[T, A]) Mask2[T, A] { return mask2From[T, A](v.ops().CmpLt(v.reg(), w.reg())) }

// CmpLe returns the mask of lanes where v <= w.
func (v Vec2[T, A]) CmpLe(w Vec2[T, A]) Mask2[T, A] { return mask2From[T, A](v.ops().CmpLe(v.reg(), w.reg())) }

// CmpGt returns the mask of lanes where v > w.
func (v Vec2[T, A]) CmpGt(w Vec2[T, A]) Mask2[T, A] { return mask2From[T, A](v.ops().CmpGt(v.reg(), w.reg())) }

// CmpGe returns the mask of lanes where v >= w.
func (v Vec2[T, A]) CmpGe(w Vec2[T, A]) Mask2[T, A] { return mask2From[T, A](v.ops().CmpGe(v.reg(), w.reg())) }

// Abs returns the absolute value of every lane.
func (v Vec2[T, A]) Abs() Vec2[T, A] { return from2[T, A](v.ops().Abs(v.reg())) }

// Signum returns the sign of every lane: 1 or -1 for floats, keeping the
// sign of zeros, and NaN for NaN; -1, 0 or 1 for integers.
func (v Vec2[T, A]) Signum() Vec2[T, A] { return from2[T, A](v.ops().Signum(v.reg())) }

// Copysign returns the magnitudes of v with the signs of s.
func (v Vec2[T, A]) Copysign(s Vec2[T, A]) Vec2[T, A] { return from2[T, A](v.ops().Copysign(v.reg(), s.reg())) }

// DivEuclid returns the Euclidean quotient, which rounds so that
// RemEuclid is non-negative.
func (v Vec2[T, A]) DivEuclid(w Vec2[T, A]) Vec2[T, A] {
	return from2[T, A](v.ops().DivEuclid(v.reg(), w.reg()))
}

// RemEuclid returns the least non-negative remainder of v / w.
func (v Vec2[T, A]) RemEuclid(w Vec2[T, A]) Vec2[T, A] {
	return from2[T, A](v.ops().RemEuclid(v.reg(), w.reg()))
}

// Sqrt returns the correctly rounded square root of every lane.
func (v Vec2[T, A]) Sqrt() Vec2[T, A] { return from2[T, A](v.ops().Sqrt(v.reg())) }

// Floor rounds every lane towards negative infinity.
func (v Vec2[T, A]) Floor() Vec2[T, A] { return from2[T, A](v.ops().Floor(v.reg())) }

// Ceil rounds every lane towards positive infinity.
func (v Vec2[T, A]) Ceil() Vec2[T, A] { return from2[T, A](v.ops().Ceil(v.reg())) }

// Round rounds every lane to the nearest integer, ties away from zero.
func (v Vec2[T, A]) Round() Vec2[T, A] { return from2[T, A](v.ops().Round(v.reg())) }

// Trunc rounds every lane towards zero.
func (v Vec2[T, A]) Trunc() Vec2[T, A] { return from2[T, A](v.ops().Trunc(v.reg())) }

// Fract returns v - v.Trunc().
func (v Vec2[T, A]) Fract() Vec2[T, A] { return from2[T, A](v.ops().Fract(v.reg())) }

// Recip returns 1 / v for every lane.
func (v Vec2[T, A]) Recip() Vec2[T, A] { return from2[T, A](v.ops().Recip(v.reg())) }

// Sin returns the sine of every lane, within 1 ULP of math.Sin.
func (v Vec2[T, A]) Sin() Vec2[T, A] { return from2[T, A](v.ops().Sin(v.reg())) }

// Cos returns the cosine of every lane.
func (v Vec2[T, A]) Cos() Vec2[T, A] { return from2[T, A](v.ops().Cos(v.reg())) }

// Tan returns the tangent of every lane.
func (v Vec2[T, A]) Tan() Vec2[T, A] { return from2[T, A](v.ops().Tan(v.reg())) }

// Asin returns the arcsine of every lane.
func (v Vec2[T, A]) Asin() Vec2[T, A] { return from2[T, A](v.ops().Asin(v.reg())) }

// Acos returns the arccosine of every lane.
func (v Vec2[T, A]) Acos() Vec2[T, A] { return from2[T, A](v.ops().Acos(v.reg())) }

// Atan returns the arctangent of every lane.
func (v Vec2[T, A]) Atan() Vec2[T, A] { return from2[T, A](v.ops().Atan(v.reg())) }

// Exp returns e raised to every lane. Under the fastmath tag the relative
// error is below 4e-6 for normal inputs.
func (v Vec2[T, A]) Exp() Vec2[T, A] { return from2[T, A](v.ops().Exp(v.reg())) }

// Ln returns the natural logarithm of every lane. Under the fastmath tag the
// absolute error is below 1.3e-5 for normal inputs.
func (v Vec2[T, A]) Ln() Vec2[T, A] { return from2[T, A](v.ops().Ln(v.reg())) }

// MulAdd returns v*b + c. With the backend.fma option on, every lane is
// rounded once.
func (v Vec2[T, A]) MulAdd(b, c Vec2[T, A]) Vec2[T, A] {
	return from2[T, A](v.ops().MulAdd(v.reg(), b.reg(), c.reg()))
}

// Min returns the lane-wise minimum. With assertions on, NaN lanes panic
// with NaNInput.
func (v Vec2[T, A]) Min(w Vec2[T, A]) Vec2[T, A] {
	a, b := v.reg(), w.reg()
	if assertions {
		assertNotNaN("Min", v.shape(), a, b)
	}
	return from2[T, A](v.ops().Min(a, b))
}

// Max returns the lane-wise maximum. With assertions on, NaN lanes panic
// with NaNInput.
func (v Vec2[T, A]) Max(w Vec2[T, A]) Vec2[T, A] {
	a, b := v.reg(), w.reg()
	if assertions {
		assertNotNaN("Max", v.shape(), a, b)
	}
	return from2[T, A](v.ops().Max(a, b))
}

// Clamp limits every lane to [lo, hi]. With assertions on, NaN lanes panic
// with NaNInput and lo > hi panics with MinGreaterThanMax.
func (v Vec2[T, A]) Clamp(lo, hi Vec2[T, A]) Vec2[T, A] {
	o := v.ops()
	a, l, h := v.reg(), lo.reg(), hi.reg()
	if assertions {
		s := v.shape()
		assertNotNaN("Clamp", s, a, l, h)
		assertOrdered("Clamp", s, o, l, h)
	}
	return from2[T, A](o.Clamp(a, l, h))
}

// MinElement returns the smallest lane.
func (v Vec2[T, A]) MinElement() T {
	a := v.reg()
	if assertions {
		assertNotNaN("MinElement", v.shape(), a)
	}
	return v.ops().MinElement(a)
}

// MaxElement returns the largest lane.
func (v Vec2[T, A]) MaxElement() T {
	a := v.reg()
	if assertions {
		assertNotNaN("MaxElement", v.shape(), a)
	}
	return v.ops().MaxElement(a)
}

// ElementSum returns the sum of the lanes. Float lanes are added as
// (x+y)+(z+w).
func (v Vec2[T, A]) ElementSum() T { return v.ops().ElementSum(v.reg()) }

// ElementProduct returns the product of the lanes.
func (v Vec2[T, A]) ElementProduct() T { return v.ops().ElementProduct(v.reg()) }

// Dot returns the dot product of v and w.
func (v Vec2[T, A]) Dot(w Vec2[T, A]) T { return v.ops().Dot(v.reg(), w.reg()) }

// LengthSquared returns v.Dot(v).
func (v Vec2[T, A]) LengthSquared() T { return v.ops().LengthSquared(v.reg()) }

// Length returns the Euclidean length of v. Float lengths are rounded once,
// so they are within 1 ULP of the exact value, and do not overflow or
// underflow unless the result does.
func (v Vec2[T, A]) Length() T { return v.ops().Length(v.reg()) }

// LengthRecip returns 1 / v.Length().
func (v Vec2[T, A]) LengthRecip() T { return v.ops().Recip(splatLanes(v.Length()))[0] }

// Distance returns the Euclidean distance between v and w.
func (v Vec2[T, A]) Distance(w Vec2[T, A]) T { return v.Sub(w).Length() }

// DistanceSquared returns the squared distance between v and w.
func (v Vec2[T, A]) DistanceSquared(w Vec2[T, A]) T {
	return v.Sub(w).LengthSquared()
}

// Normalize returns v / v.Length(). Every lane is within 1 ULP of the exact
// quotient, and the length of the result is within 1 ULP of 1. With
// assertions on, an input that cannot be normalised panics with
// NotNormalisable.
func (v Vec2[T, A]) Normalize() Vec2[T, A] {
	if assertions {
		n, err := v.TryNormalize()
		if err != nil {
			panic(err)
		}
		return n
	}
	return from2[T, A](v.ops().Normalize(v.reg()))
}

// TryNormalize returns v.Normalize(), or a NotNormalisable error when v has
// a non-finite lane or a length that is zero or overflows T.
func (v Vec2[T, A]) TryNormalize() (Vec2[T, A], error) {
	o := v.ops()
	l := o.Length(v.reg())
	var zero T
	if !o.IsFinite(v.reg()).all(2) || !o.IsFinite(splatLanes(l))[0] || l == zero {
		return Vec2[T, A]{}, &Error{
			Kind:   NotNormalisable,
			Op:     "TryNormalize",
			Triple: tripleName[T](v.shape()),
			Lane:   -1,
			Values: []any{v.lanes},
		}
	}
	return from2[T, A](o.Normalize(v.reg())), nil
}

// NormalizeOr returns the normalised v, or fallback when v cannot be
// normalised.
func (v Vec2[T, A]) NormalizeOr(fallback Vec2[T, A]) Vec2[T, A] {
	if n, err := v.TryNormalize(); err == nil {
		return n
	}
	return fallback
}

// IsNormalized reports whether v has unit length, within 2e-4 of the
// squared length.
func (v Vec2[T, A]) IsNormalized() bool {
	ls, ok := floatValue(v.LengthSquared())
	if !ok {
		panic(classError[T]("IsNormalized", v.shape()))
	}
	return math.Abs(ls-1) <= 2e-4
}

// IsFinite reports whether every lane is finite.
func (v Vec2[T, A]) IsFinite() bool { return v.ops().IsFinite(v.reg()).all(2) }

// IsNaN reports whether any lane is NaN.
func (v Vec2[T, A]) IsNaN() bool { return v.ops().IsNaN(v.reg()).first(2) >= 0 }

// IsNaNMask returns the mask of NaN lanes.
func (v Vec2[T, A]) IsNaNMask() Mask2[T, A] { return mask2From[T, A](v.ops().IsNaN(v.reg())) }

// Lerp interpolates linearly between v at s = 0 and w at s = 1.
func (v Vec2[T, A]) Lerp(w Vec2[T, A], s T) Vec2[T, A] {
	return v.Add(w.Sub(v).MulScalar(s))
}

// MoveTowards moves v towards target by at most d, without overshooting.
func (v Vec2[T, A]) MoveTowards(target Vec2[T, A], d T) Vec2[T, A] {
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
func (v Vec2[T, A]) CheckedAdd(w Vec2[T, A]) (Vec2[T, A], error) {
	return v.checked("CheckedAdd", v.ops().CheckedAdd, w)
}

// CheckedSub returns v - w, or an OverflowOrDivideByZero error.
func (v Vec2[T, A]) CheckedSub(w Vec2[T, A]) (Vec2[T, A], error) {
	return v.checked("CheckedSub", v.ops().CheckedSub, w)
}

// CheckedMul returns v * w, or an OverflowOrDivideByZero error.
func (v Vec2[T, A]) CheckedMul(w Vec2[T, A]) (Vec2[T, A], error) {
	return v.checked("CheckedMul", v.ops().CheckedMul, w)
}

// CheckedDiv returns v / w, or an OverflowOrDivideByZero error on a zero
// divisor or overflow.
func (v Vec2[T, A]) CheckedDiv(w Vec2[T, A]) (Vec2[T, A], error) {
	return v.checked("CheckedDiv", v.ops().CheckedDiv, w)
}

// CheckedRem returns v % w, or an OverflowOrDivideByZero error.
func (v Vec2[T, A]) CheckedRem(w Vec2[T, A]) (Vec2[T, A], error) {
	return v.checked("CheckedRem", v.ops().CheckedRem, w)
}

func (v Vec2[T, A]) checked(op string, k func(a, b Lanes[T]) (Lanes[T], int), w Vec2[T, A]) (Vec2[T, A], error) {
	r, bad := k(v.reg(), w.reg())
	if bad >= 0 {
		return Vec2[T, A]{}, overflowError(op, tripleName[T](v.shape()), bad, v.lanes[bad], w.lanes[bad])
	}
	return from2[T, A](r), nil
}

// SaturatingAdd returns v + w, each lane clamped to the range of T.
func (v Vec2[T, A]) SaturatingAdd(w Vec2[T, A]) Vec2[T, A] {
	return from2[T, A](v.ops().SaturatingAdd(v.reg(), w.reg()))
}

// SaturatingSub returns v - w, clamped to the range of T.
func (v Vec2[T, A]) SaturatingSub(w Vec2[T, A]) Vec2[T, A] {
	return from2[T, A](v.ops().SaturatingSub(v.reg(), w.reg()))
}

// SaturatingMul returns v * w, clamped to the range of T.
func (v Vec2[T, A]) SaturatingMul(w Vec2[T, A]) Vec2[T, A] {
	return from2[T, A](v.ops().SaturatingMul(v.reg(), w.reg()))
}

// WrappingAdd returns v + w modulo 2^width.
func (v Vec2[T, A]) WrappingAdd(w Vec2[T, A]) Vec2[T, A] {
	return from2[T, A](v.ops().WrappingAdd(v.reg(), w.reg()))
}

// WrappingSub returns v - w modulo 2^width.
func (v Vec2[T, A]) WrappingSub(w Vec2[T, A]) Vec2[T, A] {
	return from2[T, A](v.ops().WrappingSub(v.reg(), w.reg()))
}

// WrappingMul returns v * w modulo 2^width.
func (v Vec2[T, A]) WrappingMul(w Vec2[T, A]) Vec2[T, A] {
	return from2[T, A](v.ops().WrappingMul(v.reg(), w.reg()))
}

// Mask2 is a two-lane boolean mask. It is produced by the comparisons of
// Vec2[T, A] and selects between vectors of exactly that type; T and A carry no
// data.
type Mask2[T Scalar, A Alignment] struct {
	bits [2]bool
}

// MaskFromArray2 returns the mask holding the lanes of a.
func MaskFromArray2[T Scalar, A Alignment](a [2]bool) Mask2[T, A] {
	return Mask2[T, A]{bits: a}
}

// MaskSplat2 returns the mask with every lane set to b.
func MaskSplat2[T Scalar, A Alignment](b bool) Mask2[T, A] {
	var m Mask2[T, A]
	for i := range m.bits {
		m.bits[i] = b
	}
	return m
}

// MaskFromFn2 returns the mask whose lane i is f(i).
func MaskFromFn2[T Scalar, A Alignment](f func(i int) bool) Mask2[T, A] {
	var m Mask2[T, A]
	for i := range m.bits {
		m.bits[i] = f(i)
	}
	return m
}

func mask2From[T Scalar, A Alignment](b Bits) Mask2[T, A] {
	return Mask2[T, A]{bits: [2]bool(b[:2])}
}

func (m Mask2[T, A]) reg() Bits {
	return Bits{m.bits[0], m.bits[1], m.bits[1], m.bits[1]}
}

// Len returns 2.
func (m Mask2[T, A]) Len() int { return 2 }

// ToArray returns the lanes as an array.
func (m Mask2[T, A]) ToArray() [2]bool { return m.bits }

// At returns lane i. It panics with IndexOutOfRange if i is not in [0, 2).
func (m Mask2[T, A]) At(i int) bool {
	if uint(i) >= 2 {
		panic(indexError("At", i, 2))
	}
	return m.bits[i]
}

// Get returns lane i, or an IndexOutOfRange error.
func (m Mask2[T, A]) Get(i int) (bool, error) {
	if uint(i) >= 2 {
		return false, indexError("Get", i, 2)
	}
	return m.bits[i], nil
}

// Set assigns lane i. It panics with IndexOutOfRange if i is not in [0, 2).
func (m *Mask2[T, A]) Set(i int, b bool) {
	if uint(i) >= 2 {
		panic(indexError("Set", i, 2))
	}
	m.bits[i] = b
}

// All reports whether every lane is set.
func (m Mask2[T, A]) All() bool { return m.reg().all(2) }

// Any reports whether some lane is set.
func (m Mask2[T, A]) Any() bool { return m.reg().first(2) >= 0 }

// None reports whether no lane is set.
func (m Mask2[T, A]) None() bool { return !m.Any() }

// Bitmask packs the mask into the low 2 bits, lane i at bit i.
func (m Mask2[T, A]) Bitmask() uint8 {
	var r uint8
	for i, b := range m.bits {
		if b {
			r |= 1 << i
		}
	}
	return r
}

// Not inverts every lane.
func (m Mask2[T, A]) Not() Mask2[T, A] {
	for i := range m.bits {
		m.bits[i] = !m.bits[i]
	}
	return m
}

// And returns the lanes set in both m and o.
func (m Mask2[T, A]) And(o Mask2[T, A]) Mask2[T, A] {
	for i := range m.bits {
		m.bits[i] = m.bits[i] && o.bits[i]
	}
	return m
}

// Or returns the lanes set in m or o.
func (m Mask2[T, A]) Or(o Mask2[T, A]) Mask2[T, A] {
	for i := range m.bits {
		m.bits[i] = m.bits[i] || o.bits[i]
	}
	return m
}

// Xor returns the lanes set in exactly one of m and o.
func (m Mask2[T, A]) Xor(o Mask2[T, A]) Mask2[T, A] {
	for i := range m.bits {
		m.bits[i] = m.bits[i] != o.bits[i]
	}
	return m
}

// Select returns the vector whose lane i is t[i] where lane i of m is set
// and f[i] elsewhere.
func (m Mask2[T, A]) Select(t, f Vec2[T, A]) Vec2[T, A] {
	return from2[T, A](t.ops().Select(m.reg(), t.reg(), f.reg()))
}

// String formats m like its lane array, e.g. "[true false]".
func (m Mask2[T, A]) String() string {
	return fmt.Sprint(m.bits)
}
