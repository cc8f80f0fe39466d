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
	"unsafe"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// referenceInt builds the pure Go kernels of an integer type. Plain
// arithmetic follows the overflow policy of the build; Checked, Saturating and
// Wrapping kernels behave the same under both policies. Division and
// remainder by zero always panic.
func referenceInt[T Integers]() *Backend[T] {
	return &Backend[T]{
		Name:   referenceName,
		Level:  cpu.SIMDNone,
		Shapes: ForEachShape(fillInt[T]),
	}
}

// intRange describes the value range of an integer type.
type intRange[T Integers] struct {
	signed bool
	bits   uint
	lo, hi T
	negOne T
}

func rangeOf[T Integers]() intRange[T] {
	var zero T
	r := intRange[T]{
		bits:   uint(unsafe.Sizeof(zero)) * 8,
		negOne: zero - 1,
	}
	r.signed = r.negOne < zero
	if r.signed {
		r.lo = T(1) << (r.bits - 1)
		r.hi = ^r.lo
	} else {
		r.hi = ^zero
	}
	return r
}

// The methods below return the wrapped result and whether it is exact.

func (in intRange[T]) add(x, y T) (T, bool) {
	r := x + y
	if in.signed {
		return r, (y >= 0) == (r >= x)
	}
	return r, r >= x
}

func (in intRange[T]) sub(x, y T) (T, bool) {
	r := x - y
	if in.signed {
		return r, (y >= 0) == (r <= x)
	}
	return r, y <= x
}

func (in intRange[T]) mul(x, y T) (T, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	r := x * y
	if in.signed && ((x == in.negOne && y == in.lo) || (y == in.negOne && x == in.lo)) {
		return r, false
	}
	return r, r/y == x
}

func (in intRange[T]) div(x, y T) (T, bool) {
	if y == 0 {
		return 0, false
	}
	if in.signed && x == in.lo && y == in.negOne {
		return in.lo, false
	}
	return x / y, true
}

func (in intRange[T]) rem(x, y T) (T, bool) {
	if y == 0 {
		return 0, false
	}
	if in.signed && x == in.lo && y == in.negOne {
		return 0, false
	}
	return x % y, true
}

func (in intRange[T]) neg(x T) (T, bool) {
	return -x, !in.signed || x != in.lo
}

func (in intRange[T]) divEuclid(x, y T) (T, bool) {
	q, ok := in.div(x, y)
	if !ok {
		return q, false
	}
	if in.signed && x%y < 0 {
		if y > 0 {
			q--
		} else {
			q++
		}
	}
	return q, true
}

func (in intRange[T]) remEuclid(x, y T) (T, bool) {
	r, ok := in.rem(x, y)
	if !ok {
		return r, false
	}
	if r < 0 {
		if y < 0 {
			r -= y
		} else {
			r += y
		}
	}
	return r, true
}

func (in intRange[T]) saturatingAdd(x, y T) T {
	if r, ok := in.add(x, y); ok {
		return r
	}
	if in.signed && y < 0 {
		return in.lo
	}
	return in.hi
}

func (in intRange[T]) saturatingSub(x, y T) T {
	if r, ok := in.sub(x, y); ok {
		return r
	}
	if in.signed && y < 0 {
		return in.hi
	}
	return in.lo
}

func (in intRange[T]) saturatingMul(x, y T) T {
	if r, ok := in.mul(x, y); ok {
		return r
	}
	if in.signed && (x < 0) != (y < 0) {
		return in.lo
	}
	return in.hi
}

func fillInt[T Integers](s Shape, o *Ops[T]) {
	n := s.N
	in := rangeOf[T]()
	triple := tripleName[T](s)
	strict := overflowPolicy == OverflowStrict

	fail := func(op string, i int, v ...T) {
		panic(overflowError(op, triple, i, v...))
	}
	// policy applies the overflow policy to an exactness-reporting operation.
	// Zero divisors panic under either policy.
	policy := func(op string, f func(x, y T) (T, bool)) func(i int, x, y T) T {
		return func(i int, x, y T) T {
			r, ok := f(x, y)
			if !ok && (strict || y == 0) {
				fail(op, i, x, y)
			}
			return r
		}
	}
	checked := func(f func(x, y T) (T, bool)) func(a, b Lanes[T]) (Lanes[T], int) {
		return func(a, b Lanes[T]) (r Lanes[T], bad int) {
			bad = -1
			for i := range n {
				v, ok := f(a[i], b[i])
				if !ok && bad < 0 {
					bad = i
				}
				r[i] = v
			}
			return r, bad
		}
	}
	shift := func(op string, left bool) func(a, b Lanes[T]) Lanes[T] {
		return lanes2i(n, func(i int, x, y T) T {
			if y < 0 || uint64(y) >= uint64(in.bits) {
				if strict {
					fail(op, i, x, y)
				}
				y &= T(in.bits - 1)
			}
			if left {
				return x << y
			}
			return x >> y
		})
	}

	fillEquality(o, n)
	fillOrdered(o, n)

	o.Add = lanes2i(n, policy("Add", in.add))
	o.Sub = lanes2i(n, policy("Sub", in.sub))
	o.Mul = lanes2i(n, policy("Mul", in.mul))
	o.Div = lanes2i(n, policy("Div", in.div))
	o.Rem = lanes2i(n, policy("Rem", in.rem))
	o.DivEuclid = lanes2i(n, policy("DivEuclid", in.divEuclid))
	o.RemEuclid = lanes2i(n, policy("RemEuclid", in.remEuclid))

	o.Not = lanes1(n, func(x T) T { return ^x })
	o.And = lanes2(n, func(x, y T) T { return x & y })
	o.Or = lanes2(n, func(x, y T) T { return x | y })
	o.Xor = lanes2(n, func(x, y T) T { return x ^ y })
	o.Shl = shift("Shl", true)
	o.Shr = shift("Shr", false)

	sum := policy("ElementSum", in.add)
	o.ElementSum = fold(n, sum)
	o.ElementProduct = fold(n, policy("ElementProduct", in.mul))
	prod := policy("Dot", in.mul)
	acc := policy("Dot", in.add)
	o.Dot = func(a, b Lanes[T]) T {
		r := prod(0, a[0], b[0])
		for i := 1; i < n; i++ {
			r = acc(i, r, prod(i, a[i], b[i]))
		}
		return r
	}
	o.LengthSquared = func(a Lanes[T]) T { return o.Dot(a, a) }

	o.CheckedAdd = checked(in.add)
	o.CheckedSub = checked(in.sub)
	o.CheckedMul = checked(in.mul)
	o.CheckedDiv = checked(in.div)
	o.CheckedRem = checked(in.rem)
	o.SaturatingAdd = lanes2(n, in.saturatingAdd)
	o.SaturatingSub = lanes2(n, in.saturatingSub)
	o.SaturatingMul = lanes2(n, in.saturatingMul)
	o.WrappingAdd = lanes2(n, func(x, y T) T { return x + y })
	o.WrappingSub = lanes2(n, func(x, y T) T { return x - y })
	o.WrappingMul = lanes2(n, func(x, y T) T { return x * y })

	if !in.signed {
		return
	}
	negate := func(op string) func(i int, x T) T {
		return func(i int, x T) T {
			r, ok := in.neg(x)
			if !ok && strict {
				fail(op, i, x)
			}
			return r
		}
	}
	o.Neg = lanes1i(n, negate("Neg"))
	abs := negate("Abs")
	o.Abs = lanes1i(n, func(i int, x T) T {
		if x >= 0 {
			return x
		}
		return abs(i, x)
	})
	o.Signum = lanes1(n, func(x T) T {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return in.negOne
		default:
			return 0
		}
	})
}
