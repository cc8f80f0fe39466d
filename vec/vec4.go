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

// Vec4 is a four-lane vector over T with storage alignment A.
//
// The zero value is the zero vector. Vec4 values are comparable with == when T
// is, and copying one copies its lanes.
type Vec4[T Scalar, A Alignment] struct {
	lanes [4]T
}

// New4 returns the vector (x, y, z, w).
func New4[A Alignment, T Scalar](x, y, z, w T) Vec4[T, A] {
	return Vec4[T, A]{lanes: [4]T{x, y, z, w}}
}

// FromArray4 returns the vector holding the lanes of a.
func FromArray4[A Alignment, T Scalar](a [4]T) Vec4[T, A] {
	return Vec4[T, A]{lanes: a}
}

// Splat4 returns the vector with every lane set to x.
func Splat4[A Alignment, T Scalar](x T) Vec4[T, A] {
	var v Vec4[T, A]
	for i := range v.lanes {
		v.lanes[i] = x
	}
	return v
}

// FromFn4 returns the vector whose lane i is f(i).
func FromFn4[A Alignment, T Scalar](f func(i int) T) Vec4[T, A] {
	var v Vec4[T, A]
	for i := range v.lanes {
		v.lanes[i] = f(i)
	}
	return v
}

// Zero4 returns the zero vector.
func Zero4[A Alignment, T Scalar]() Vec4[T, A] {
	return Vec4[T, A]{}
}

// One4 returns the vector of ones.
func One4[A Alignment, T Numbers]() Vec4[T, A] {
	return Splat4[A, T](1)
}

// Map4 applies f to every lane.
func Map4[T, U Scalar, A Alignment](v Vec4[T, A], f func(T) U) Vec4[U, A] {
	var r Vec4[U, A]
	for i, x := range v.lanes {
		r.lanes[i] = f(x)
	}
	return r
}

// Zip4 combines the lanes of a and b pairwise.
func Zip4[T, U, R Scalar, A Alignment](a Vec4[T, A], b Vec4[U, A], f func(T, U) R) Vec4[R, A] {
	var r Vec4[R, A]
	for i := range r.lanes {
		r.lanes[i] = f(a.lanes[i], b.lanes[i])
	}
	return r
}

// Realign4 converts v to alignment A2. The semantic lanes are copied and
// the padding of the target form is re-initialised.
func Realign4[A2 Alignment, T Scalar, A Alignment](v Vec4[T, A]) Vec4[T, A2] {
	return Vec4[T, A2]{lanes: v.lanes}
}

func (v Vec4[T, A]) shape() Shape {
	return ShapeOf[Len4, A]()
}

func (v Vec4[T, A]) ops() *Ops[T] {
	return opsFor[T](v.shape())
}

// reg returns the register form, padding slots filled with the last lane.
func (v Vec4[T, A]) reg() Lanes[T] {
	return Lanes[T](v.lanes)
}

func from4[T Scalar, A Alignment](r Lanes[T]) Vec4[T, A] {
	return Vec4[T, A]{lanes: [4]T(r)}
}

// Len returns 4.
func (v Vec4[T, A]) Len() int { return 4 }

// ToArray returns the lanes as an array.
func (v Vec4[T, A]) ToArray() [4]T { return v.lanes }

// AsArray returns a pointer to the semantic lanes.
func (v *Vec4[T, A]) AsArray() *[4]T { return &v.lanes }

// Values returns an iterator over the lanes in index order.
func (v Vec4[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.lanes {
			if !yield(x) {
				return
			}
		}
	}
}

// All returns an iterator over (index, lane) pairs.
func (v Vec4[T, A]) All() iter.Seq2[int, T] {
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
func (v *Vec4[T, A]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range v.lanes {
			if !yield(i, &v.lanes[i]) {
				return
			}
		}
	}
}

// At returns lane i. It panics with IndexOutOfRange if i is not in [0, 4).
func (v Vec4[T, A]) At(i int) T {
	if uint(i) >= 4 {
		panic(indexError("At", i, 4))
	}
	return v.lanes[i]
}

// Get returns lane i, or an IndexOutOfRange error.
func (v Vec4[T, A]) Get(i int) (T, error) {
	if uint(i) >= 4 {
		var zero T
		return zero, indexError("Get", i, 4)
	}
	return v.lanes[i], nil
}

// Set assigns lane i. It panics with IndexOutOfRange if i is not in [0, 4).
func (v *Vec4[T, A]) Set(i int, x T) {
	if uint(i) >= 4 {
		panic(indexError("Set", i, 4))
	}
	v.lanes[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v Vec4[T, A]) With(i int, x T) Vec4[T, A] {
	v.Set(i, x)
	return v
}

// Swap exchanges lanes i and j.
func (v *Vec4[T, A]) Swap(i, j int) {
	if uint(i) >= 4 {
		panic(indexError("Swap", i, 4))
	}
	if uint(j) >= 4 {
		panic(indexError("Swap", j, 4))
	}
	v.lanes[i], v.lanes[j] = v.lanes[j], v.lanes[i]
}

// Align returns v with Aligned storage.
func (v Vec4[T, A]) Align() Vec4[T, Aligned] { return Realign4[Aligned](v) }

// Unalign returns v with Packed storage.
func (v Vec4[T, A]) Unalign() Vec4[T, Packed] { return Realign4[Packed](v) }

// String formats v like its lane array, e.g. "[1 2 3 4]".
func (v Vec4[T, A]) String() string {
	return fmt.Sprint(v.lanes)
}

// Eq reports whether all lanes of v and w are equal.
func (v Vec4[T, A]) Eq(w Vec4[T, A]) bool { return v.ops().Eq(v.reg(), w.reg()) }

// Ne reports whether any lane of v and w differs.
func (v Vec4[T, A]) Ne(w Vec4[T, A]) bool { return !v.Eq(w) }

// Neg returns -v.
func (v Vec4[T, A]) Neg() Vec4[T, A] { return from4[T, A](v.ops().Neg(v.reg())) }

// Add returns v + w lane-wise.
func (v Vec4[T, A]) Add(w Vec4[T, A]) Vec4[T, A] { return from4[T, A](v.ops().Add(v.reg(), w.reg())) }

// Sub returns v - w lane-wise.
func (v Vec4[T, A]) Sub(w Vec4[T, A]) Vec4[T, A] { return from4[T, A](v.ops().Sub(v.reg(), w.reg())) }

// Mul returns v * w lane-wise.
func (v Vec4[T, A]) Mul(w Vec4[T, A]) Vec4[T, A] { return from4[T, A](v.ops().Mul(v.reg(), w.reg())) }

// Div returns v / w lane-wise. Integer division by zero panics with
// OverflowOrDivideByZero.
func (v Vec4[T, A]) Div(w Vec4[T, A]) Vec4[T, A] { return from4[T, A](v.ops().Div(v.reg(), w.reg())) }

// Rem returns v % w lane-wise, with the sign of v.
func (v Vec4[T, A]) Rem(w Vec4[T, A]) Vec4[T, A] { return from4[T, A](v.ops().Rem(v.reg(), w.reg())) }

// Not returns the bitwise complement of every lane.
func (v Vec4[T, A]) Not() Vec4[T, A] { return from4[T, A](v.ops().Not(v.reg())) }

// And returns the bitwise AND of every lane.
func (v Vec4[T, A]) And(w Vec4[T, A]) Vec4[T, A] { return from4[T, A](v.ops().And(v.reg(), w.reg())) }

// Or returns the bitwise OR of every lane.
func (v Vec4[T, A]) Or(w Vec4[T, A]) Vec4[T, A] { return from4[T, A](v.ops().Or(v.reg(), w.reg())) }

// Xor returns the bitwise XOR of every lane.
func (v Vec4[T, A]) Xor(w Vec4[T, A]) Vec4[T, A] { return from4[T, A](v.ops().Xor(v.reg(), w.reg())) }

// Shl shifts every lane of v left by the matching lane of w.
func (v Vec4[T, A]) Shl(w Vec4[T, A]) Vec4[T, A] { return from4[T, A](v.ops().Shl(v.reg(), w.reg())) }

// Shr shifts every lane of v right by the matching lane of w;
// signed lanes shift arithmetically.
func (v Vec4[T, A]) Shr(w Vec4[T, A]) Vec4[T, A] { return from4[T, A](v.ops().Shr(v.reg(), w.reg())) }

// AddScalar adds s to every lane.
func (v Vec4[T, A]) AddScalar(s T) Vec4[T, A] { return from4[T, A](v.ops().Add(v.reg(), splatLanes(s))) }

// SubScalar subtracts s from every lane.
func (v Vec4[T, A]) SubScalar(s T) Vec4[T, A] { return from4[T, A](v.ops().Sub(v.reg(), splatLanes(s))) }

// MulScalar multiplies every lane by s.
func (v Vec4[T, A]) MulScalar(s T) Vec4[T, A] { return from4[T, A](v.ops().Mul(v.reg(), splatLanes(s))) }

// DivScalar divides every lane by s.
func (v Vec4[T, A]) DivScalar(s T) Vec4[T, A] { return from4[T, A](v.ops().Div(v.reg(), splatLanes(s))) }

// RemScalar returns the remainder of every lane divided by s.
func (v Vec4[T, A]) RemScalar(s T) Vec4[T, A] { return from4[T, A](v.ops().Rem(v.reg(), splatLanes(s))) }

// CmpEq returns the mask of lanes where v == w.
func (v Vec4[T, A]) CmpEq(w Vec4[T, A]) Mask4[T, A] { return mask4From[T, A](v.ops().CmpEq(v.reg(), w.reg())) }

// CmpNe returns the mask of lanes where v != w.
func (v Vec4[T, A]) CmpNe(w Vec4[T, A]) Mask4[T, A] { return mask4From[T, A](v.ops().CmpNe(v.reg(), w.reg())) }

// CmpLt returns the mask of lanes where v < w.
func (v Vec4[T, A]) CmpLt(w Vec4[T, A]) Mask4[T, A] { return mask4From[T, A](v.ops().CmpLt(v.reg(), w.reg())) }

// CmpLe returns the mask of lanes where v <= w.
func (v Vec4[T, A]) CmpLe(w Vec4[T, A]) Mask4[T, A] { return mask4From[T, A](v.ops().CmpLe(v.reg(), w.reg())) }

// CmpGt returns the mask of lanes where v > w.
func (v Vec4[T, A]) CmpGt(w Vec4[T, A]) Mask4[T, A] { return mask4From[T, A](v.ops().CmpGt(v.reg(), w.reg())) }

// CmpGe returns the mask of lanes where v >= w.
func (v Vec4[T, A]) CmpGe(w Vec4[T, A]) Mask4[T, A] { return mask4From[T, A](v.ops().CmpGe(v.reg(), w.reg())) }

// Abs returns the absolute value of every lane.
func (v Vec4[T, A]) Abs() Vec4[T, A] { return from4[T, A](v.ops().Abs(v.reg())) }

// Signum returns the sign of every lane: 1 or -1 for floats, keeping the
// sign of zeros, and NaN for NaN; -1, 0 or 1 for integers.
func (v Vec4[T, A]) Signum() Vec4[T, A] { return from4[T, A](v.ops().Signum(v.reg())) }

// Copysign returns the magnitudes of v with the signs of s.
func (v Vec4[T, A]) Copysign(s Vec4[T, A]) Vec4[T, A] { return from4[T, A](v.ops().Copysign(v.reg(), s.reg())) }

// DivEuclid returns the Euclidean quotient, which rounds so that
// RemEuclid is non-negative.
func (v Vec4[T, A]) DivEuclid(w Vec4[T, A]) Vec4[T, A] {
	return from4[T, A](v.ops().DivEuclid(v.reg(), w.reg()))
}

// RemEuclid returns the least non-negative remainder of v / w.
func (v Vec4[T, A]) RemEuclid(w Vec4[T, A]) Vec4[T, A] {
	return from4[T, A](v.ops().RemEuclid(v.reg(), w.reg()))
}

// Sqrt returns the correctly rounded square root of every lane.
func (v Vec4[T, A]) Sqrt() Vec4[T, A] { return from4[T, A](v.ops().Sqrt(v.reg())) }

// Floor rounds every lane towards negative infinity.
func (v Vec4[T, A]) Floor() Vec4[T, A] { return from4[T, A](v.ops().Floor(v.reg())) }

// Ceil rounds every lane towards positive infinity.
func (v Vec4[T, A]) Ceil() Vec4[T, A] { return from4[T, A](v.ops().Ceil(v.reg())) }

// Round rounds every lane to the nearest integer, ties away from zero.
func (v Vec4[T, A]) Round() Vec4[T, A] { return from4[T, A](v.ops().Round(v.reg())) }

// Trunc rounds every lane towards zero.
func (v Vec4[T, A]) Trunc() Vec4[T, A] { return from4[T, A](v.ops().Trunc(v.reg())) }

// Fract returns v - v.Trunc().
func (v Vec4[T, A]) Fract() Vec4[T, A] { return from4[T, A](v.ops().Fract(v.reg())) }

// Recip returns 1 / v for every lane.
func (v Vec4[T, A]) Recip() Vec4[T, A] { return from4[T, A](v.ops().Recip(v.reg())) }

// Sin returns the sine of every lane, within 1 ULP of math.Sin.
func (v Vec4[T, A]) Sin() Vec4[T, A] { return from4[T, A](v.ops().Sin(v.reg())) }

// Cos returns the cosine of every lane.
func (v Vec4[T, A]) Cos() Vec4[T, A] { return from4[T, A](v.ops().Cos(v.reg())) }

// Tan returns the tangent of every lane.
func (v Vec4[T, A]) Tan() Vec4[T, A] { return from4[T, A](v.ops().Tan(v.reg())) }

// Asin returns the arcsine of every lane.
func (v Vec4[T, A]) Asin() Vec4[T, A] { return from4[T, A](v.ops().Asin(v.reg())) }

// Acos returns the arccosine of every lane.
func (v Vec4[T, A]) Acos() Vec4[T, A] { return from4[T, A](v.ops().Acos(v.reg())) }

// Atan returns the arctangent of every lane.
func (v Vec4[T, A]) Atan() Vec4[T, A] { return from4[T, A](v.ops().Atan(v.reg())) }

// Exp returns e raised to every lane. Under the fastmath tag the relative
// error is below 4e-6 for normal inputs.
func (v Vec4[T, A]) Exp() Vec4[T, A] { return from4[T, A](v.ops().Exp(v.reg())) }

// Ln returns the natural logarithm of every lane. Under the fastmath tag the
// absolute error is below 1.3e-5 for normal inputs.
func (v Vec4[T, A]) Ln() Vec4[T, A] { return from4[T, A](v.ops().Ln(v.reg())) }

// MulAdd returns v*b + c. With the backend.fma option on, every lane is
// rounded once.
func (v Vec4[T, A]) MulAdd(b, c Vec4[T, A]) Vec4[T, A] {
	return from4[T, A](v.ops().MulAdd(v.reg(), b.reg(), c.reg()))
}

// Min returns the lane-wise minimum. With assertions on, NaN lanes panic
// with NaNInput.
func (v Vec4[T, A]) Min(w Vec4[T, A]) Vec4[T, A] {
	a, b := v.reg(), w.reg()
	if assertions {
		assertNotNaN("Min", v.shape(), a, b)
	}
	return from4[T, A](v.ops().Min(a, b))
}

// Max returns the lane-wise maximum. With assertions on, NaN lanes panic
// with NaNInput.
func (v Vec4[T, A]) Max(w Vec4[T, A]) Vec4[T, A] {
	a, b := v.reg(), w.reg()
	if assertions {
		assertNotNaN("Max", v.shape(), a, b)
	}
	return from4[T, A](v.ops().Max(a, b))
}

// Clamp limits every lane to [lo, hi]. With assertions on, NaN lanes panic
// with NaNInput and lo > hi panics with MinGreaterThanMax.
func (v Vec4[T, A]) Clamp(lo, hi Vec4[T, A]) Vec4[T, A] {
	o := v.ops()
	a, l, h := v.reg(), lo.reg(), hi.reg()
	if assertions {
		s := v.shape()
		assertNotNaN("Clamp", s, a, l, h)
		assertOrdered("Clamp", s, o, l, h)
	}
	return from4[T, A](o.Clamp(a, l, h))
}

// MinElement returns the smallest lane.
func (v Vec4[T, A]) MinElement() T {
	a := v.reg()
	if assertions {
		assertNotNaN("MinElement", v.shape(), a)
	}
	return v.ops().MinElement(a)
}

// MaxElement returns the largest lane.
func (v Vec4[T, A]) MaxElement() T {
	a := v.reg()
	if assertions {
		assertNotNaN("MaxElement", v.shape(), a)
	}
	return v.ops().MaxElement(a)
}

// ElementSum returns the sum of the lanes. Float lanes are added as
// (x+y)+(z+w).
func (v Vec4[T, A]) ElementSum() T { return v.ops().ElementSum(v.reg()) }

// ElementProduct returns the product of the lanes.
func (v Vec4[T, A]) ElementProduct() T { return v.ops().ElementProduct(v.reg()) }

// Dot returns the dot product of v and w.
func (v Vec4[T, A]) Dot(w Vec4[T, A]) T { return v.ops().Dot(v.reg(), w.reg()) }

// LengthSquared returns v.Dot(v).
func (v Vec4[T, A]) LengthSquared() T { return v.ops().LengthSquared(v.reg()) }

// Length returns the Euclidean length of v. Float lengths are rounded once,
// so they are within 1 ULP of the exact value, and do not overflow or
// underflow unless the result does.
func (v Vec4[T, A]) Length() T { return v.ops().Length(v.reg()) }

// LengthRecip returns 1 / v.Length().
func (v Vec4[T, A]) LengthRecip() T { return v.ops().Recip(splatLanes(v.Length()))[0] }

// Distance returns the Euclidean distance between v and w.
func (v Vec4[T, A]) Distance(w Vec4[T, A]) T { return v.Sub(w).Length() }

// DistanceSquared returns the squared distance between v and w.
func (v Vec4[T, A]) DistanceSquared(w Vec4[T, A]) T {
	return v.Sub(w).LengthSquared()
}

// Normalize returns v / v.Length(). Every lane is within 1 ULP of the exact
// quotient, and the length of the result is within 1 ULP of 1. With
// assertions on, an input that cannot be normalised panics with
// NotNormalisable.
func (v Vec4[T, A]) Normalize() Vec4[T, A] {
	if assertions {
		n, err := v.TryNormalize()
		if err != nil {
			panic(err)
		}
		return n
	}
	return from4[T, A](v.ops().Normalize(v.reg()))
}

// TryNormalize returns v.Normalize(), or a NotNormalisable error when v has
// a non-finite lane or a length that is zero or overflows T.
func (v Vec4[T, A]) TryNormalize() (Vec4[T, A], error) {
	o := v.ops()
	l := o.Length(v.reg())
	var zero T
	if !o.IsFinite(v.reg()).all(4) || !o.IsFinite(splatLanes(l))[0] || l == zero {
		return Vec4[T, A]{}, &Error{
			Kind:   NotNormalisable,
			Op:     "TryNormalize",
			Triple: tripleName[T](v.shape()),
			Lane:   -1,
			Values: []any{v.lanes},
		}
	}
	return from4[T, A](o.Normalize(v.reg())), nil
}

// NormalizeOr returns the normalised v, or fallback when v cannot be
// normalised.
func (v Vec4[T, A]) NormalizeOr(fallback Vec4[T, A]) Vec4[T, A] {
	if n, err := v.TryNormalize(); err == nil {
		return n
	}
	return fallback
}

// IsNormalized reports whether v has unit length, within 2e-4 of the
// squared length.
func (v Vec4[T, A]) IsNormalized() bool {
	ls, ok := floatValue(v.LengthSquared())
	if !ok {
		panic(classError[T]("IsNormalized", v.shape()))
	}
	return math.Abs(ls-1) <= 2e-4
}

// IsFinite reports whether every lane is finite.
func (v Vec4[T, A]) IsFinite() bool { return v.ops().IsFinite(v.reg()).all(4) }

// IsNaN reports whether any lane is NaN.
func (v Vec4[T, A]) IsNaN() bool { return v.ops().IsNaN(v.reg()).first(4) >= 0 }

// IsNaNMask returns the mask of NaN lanes.
func (v Vec4[T, A]) IsNaNMask() Mask4[T, A] { return mask4From[T, A](v.ops().IsNaN(v.reg())) }

// Lerp interpolates linearly between v at s = 0 and w at s = 1.
func (v Vec4[T, A]) Lerp(w Vec4[T, A], s T) Vec4[T, A] {
	return v.Add(w.Sub(v).MulScalar(s))
}

// MoveTowards moves v towards target by at most d, without overshooting.
func (v Vec4[T, A]) MoveTowards(target Vec4[T, A], d T) Vec4[T, A] {
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
func (v Vec4[T, A]) CheckedAdd(w Vec4[T, A]) (Vec4[T, A], error) {
	return v.checked("CheckedAdd", v.ops().CheckedAdd, w)
}

// CheckedSub returns v - w, or an OverflowOrDivideByZero error.
func (v Vec4[T, A]) CheckedSub(w Vec4[T, A]) (Vec4[T, A], error) {
	return v.checked("CheckedSub", v.ops().CheckedSub, w)
}

// CheckedMul returns v * w, or an OverflowOrDivideByZero error.
func (v Vec4[T, A]) CheckedMul(w Vec4[T, A]) (Vec4[T, A], error) {
	return v.checked("CheckedMul", v.ops().CheckedMul, w)
}

// CheckedDiv returns v / w, or an OverflowOrDivideByZero error on a zero
// divisor or overflow.
func (v Vec4[T, A]) CheckedDiv(w Vec4[T, A]) (Vec4[T, A], error) {
	return v.checked("CheckedDiv", v.ops().CheckedDiv, w)
}

// CheckedRem returns v % w, or an OverflowOrDivideByZero error.
func (v Vec4[T, A]) CheckedRem(w Vec4[T, A]) (Vec4[T, A], error) {
	return v.checked("CheckedRem", v.ops().CheckedRem, w)
}

func (v Vec4[T, A]) checked(op string, k func(a, b Lanes[T]) (Lanes[T], int), w Vec4[T, A]) (Vec4[T, A], error) {
	r, bad := k(v.reg(), w.reg())
	if bad >= 0 {
		return Vec4[T, A]{}, overflowError(op, tripleName[T](v.shape()), bad, v.lanes[bad], w.lanes[bad])
	}
	return from4[T, A](r), nil
}

// SaturatingAdd returns v + w, each lane clamped to the range of T.
func (v Vec4[T, A]) SaturatingAdd(w Vec4[T, A]) Vec4[T, A] {
	return from4[T, A](v.ops().SaturatingAdd(v.reg(), w.reg()))
}

// SaturatingSub returns v - w, clamped to the range of T.
func (v Vec4[T, A]) SaturatingSub(w Vec4[T, A]) Vec4[T, A] {
	return from4[T, A](v.ops().SaturatingSub(v.reg(), w.reg()))
}

// SaturatingMul returns v * w, clamped to the range of T.
func (v Vec4[T, A]) SaturatingMul(w Vec4[T, A]) Vec4[T, A] {
	return from4[T, A](v.ops().SaturatingMul(v.reg(), w.reg()))
}

// WrappingAdd returns v + w modulo 2^width.
func (v Vec4[T, A]) WrappingAdd(w Vec4[T, A]) Vec4[T, A] {
	return from4[T, A](v.ops().WrappingAdd(v.reg(), w.reg()))
}

// WrappingSub returns v - w modulo 2^width.
func (v Vec4[T, A]) WrappingSub(w Vec4[T, A]) Vec4[T, A] {
	return from4[T, A](v.ops().WrappingSub(v.reg(), w.reg()))
}

// WrappingMul returns v * w modulo 2^width.
func (v Vec4[T, A]) WrappingMul(w Vec4[T, A]) Vec4[T, A] {
	return from4[T, A](v.ops().WrappingMul(v.reg(), w.reg()))
}

// Mask4 is a four-lane boolean mask. It is produced by the comparisons of
// Vec4[T, A] and selects between vectors of exactly that type; T and A carry no
// data.
type Mask4[T Scalar, A Alignment] struct {
	bits [4]bool
}

// MaskFromArray4 returns the mask holding the lanes of a.
func MaskFromArray4[T Scalar, A Alignment](a [4]bool) Mask4[T, A] {
	return Mask4[T, A]{bits: a}
}

// MaskSplat4 returns the mask with every lane set to b.
func MaskSplat4[T Scalar, A Alignment](b bool) Mask4[T, A] {
	var m Mask4[T, A]
	for i := range m.bits {
		m.bits[i] = b
	}
	return m
}

// MaskFromFn4 returns the mask whose lane i is f(i).
func MaskFromFn4[T Scalar, A Alignment](f func(i int) bool) Mask4[T, A] {
	var m Mask4[T, A]
	for i := range m.bits {
		m.bits[i] = f(i)
	}
	return m
}

func mask4From[T Scalar, A Alignment](b Bits) Mask4[T, A] {
	return Mask4[T, A]{bits: [4]bool(b)}
}

func (m Mask4[T, A]) reg() Bits {
	return Bits(m.bits)
}

// Len returns 4.
func (m Mask4[T, A]) Len() int { return 4 }

// ToArray returns the lanes as an array.
func (m Mask4[T, A]) ToArray() [4]bool { return m.bits }

// At returns lane i. It panics with IndexOutOfRange if i is not in [0, 4).
func (m Mask4[T, A]) At(i int) bool {
	if uint(i) >= 4 {
		panic(indexError("At", i, 4))
	}
	return m.bits[i]
}

// Get returns lane i, or an IndexOutOfRange error.
func (m Mask4[T, A]) Get(i int) (bool, error) {
	if uint(i) >= 4 {
		return false, indexError("Get", i, 4)
	}
	return m.bits[i], nil
}

// Set assigns lane i. It panics with IndexOutOfRange if i is not in [0, 4).
func (m *Mask4[T, A]) Set(i int, b bool) {
	if uint(i) >= 4 {
		panic(indexError("Set", i, 4))
	}
	m.bits[i] = b
}

// All reports whether every lane is set.
func (m Mask4[T, A]) All() bool { return m.reg().all(4) }

// Any reports whether some lane is set.
func (m Mask4[T, A]) Any() bool { return m.reg().first(4) >= 0 }

// None reports whether no lane is set.
func (m Mask4[T, A]) None() bool { return !m.Any() }

// Bitmask packs the mask into the low 4 bits, lane i at bit i.
func (m Mask4[T, A]) Bitmask() uint8 {
	var r uint8
	for i, b := range m.bits {
		if b {
			r |= 1 << i
		}
	}
	return r
}

// Not inverts every lane.
func (m Mask4[T, A]) Not() Mask4[T, A] {
	for i := range m.bits {
		m.bits[i] = !m.bits[i]
	}
	return m
}

// And returns the lanes set in both m and o.
func (m Mask4[T, A]) And(o Mask4[T, A]) Mask4[T, A] {
	for i := range m.bits {
		m.bits[i] = m.bits[i] && o.bits[i]
	}
	return m
}

// Or returns the lanes set in m or o.
func (m Mask4[T, A]) Or(o Mask4[T, A]) Mask4[T, A] {
	for i := range m.bits {
		m.bits[i] = m.bits[i] || o.bits[i]
	}
	return m
}

// Xor returns the lanes set in exactly one of m and o.
func (m Mask4[T, A]) Xor(o Mask4[T, A]) Mask4[T, A] {
	for i := range m.bits {
		m.bits[i] = m.bits[i] != o.bits[i]
	}
	return m
}

// Select returns the vector whose lane i is t[i] where lane i of m is set
// and f[i] elsewhere.
func (m Mask4[T, A]) Select(t, f Vec4[T, A]) Vec4[T, A] {
	return from4[T, A](t.ops().Select(m.reg(), t.reg(), f.reg()))
}

// String formats m like its lane array, e.g. "[true false]".
func (m Mask4[T, A]) String() string {
	return fmt.Sprint(m.bits)
}
