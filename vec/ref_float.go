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
	"math"
	"unsafe"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// referenceFloat builds the pure Go kernels of a floating-point type. Every
// kernel computes in float64 and rounds back to T, which is exact for the
// correctly rounded operations and within an ULP for the transcendentals,
// except Exp and Ln under the fastmath tag.
func referenceFloat[T Floats]() *Backend[T] {
	return &Backend[T]{
		Name:   referenceName,
		Level:  cpu.SIMDNone,
		Shapes: ForEachShape(func(s Shape, o *Ops[T]) { fillFloat(o, s.N) }),
	}
}

func fillFloat[T Floats](o *Ops[T], n int) {
	fillEquality(o, n)
	fillOrdered(o, n)

	o.Neg = lanes1(n, func(x T) T { return -x })
	o.Add = lanes2(n, func(x, y T) T { return x + y })
	o.Sub = lanes2(n, func(x, y T) T { return x - y })
	o.Mul = lanes2(n, func(x, y T) T { return x * y })
	o.Div = lanes2(n, func(x, y T) T { return x / y })
	o.Rem = lanes2(n, func(x, y T) T { return T(math.Mod(float64(x), float64(y))) })

	o.ElementSum = func(a Lanes[T]) T { return pairwiseSum(a, n) }
	o.ElementProduct = func(a Lanes[T]) T { return pairwiseProduct(a, n) }
	o.Dot = func(a, b Lanes[T]) T { return dot(a, b, n) }
	o.LengthSquared = func(a Lanes[T]) T { return dot(a, a, n) }

	o.Abs = lanes1(n, func(x T) T { return T(math.Abs(float64(x))) })
	o.Signum = lanes1(n, signum[T])
	o.Copysign = lanes2(n, func(x, sign T) T { return T(math.Copysign(float64(x), float64(sign))) })
	o.DivEuclid = lanes2(n, divEuclidFloat[T])
	o.RemEuclid = lanes2(n, remEuclidFloat[T])

	o.Sqrt = lanes1(n, func(x T) T { return T(math.Sqrt(float64(x))) })
	o.Floor = lanes1(n, func(x T) T { return T(math.Floor(float64(x))) })
	o.Ceil = lanes1(n, func(x T) T { return T(math.Ceil(float64(x))) })
	o.Round = lanes1(n, func(x T) T { return T(math.Round(float64(x))) })
	o.Trunc = lanes1(n, func(x T) T { return T(math.Trunc(float64(x))) })
	o.Fract = lanes1(n, func(x T) T { return x - T(math.Trunc(float64(x))) })
	o.Recip = lanes1(n, func(x T) T { return 1 / x })
	o.MulAdd = func(a, b, c Lanes[T]) (r Lanes[T]) {
		for i := range n {
			r[i] = mulAdd(a[i], b[i], c[i])
		}
		return r
	}
	o.Length = func(a Lanes[T]) T { return euclidLength(a, n) }
	o.Normalize = func(a Lanes[T]) Lanes[T] { return normalize(a, n) }

	o.Sin = lanes1(n, lift[T](math.Sin))
	o.Cos = lanes1(n, lift[T](math.Cos))
	o.Tan = lanes1(n, lift[T](math.Tan))
	o.Asin = lanes1(n, lift[T](math.Asin))
	o.Acos = lanes1(n, lift[T](math.Acos))
	o.Atan = lanes1(n, lift[T](math.Atan))
	o.Exp = lanes1(n, lift[T](mathExp))
	o.Ln = lanes1(n, lift[T](mathLog))

	o.IsNaN = test1(n, func(x T) bool { return x != x })
	o.IsFinite = test1(n, func(x T) bool {
		f := float64(x)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
}

func lift[T Floats](f func(float64) float64) func(T) T {
	return func(x T) T { return T(f(float64(x))) }
}

// pairwiseSum adds lanes as (a0+a1)+(a2+a3). The SIMD backends reduce in the
// same order, so both paths round identically.
func pairwiseSum[T Floats](a Lanes[T], n int) T {
	switch n {
	case 2:
		return a[0] + a[1]
	case 3:
		return (a[0] + a[1]) + a[2]
	default:
		return (a[0] + a[1]) + (a[2] + a[3])
	}
}

func pairwiseProduct[T Floats](a Lanes[T], n int) T {
	switch n {
	case 2:
		return a[0] * a[1]
	case 3:
		return (a[0] * a[1]) * a[2]
	default:
		return (a[0] * a[1]) * (a[2] * a[3])
	}
}

// dot rounds every product before summing; the conversion keeps the
// compiler from fusing the multiply into the adds.
func dot[T Floats](a, b Lanes[T], n int) T {
	var p Lanes[T]
	for i := range n {
		p[i] = T(a[i] * b[i])
	}
	return pairwiseSum(p, n)
}

// signum returns 1 or -1 with the sign of x, including for signed zeros, and
// NaN for NaN.
func signum[T Floats](x T) T {
	if x != x {
		return x
	}
	return T(math.Copysign(1, float64(x)))
}

func divEuclidFloat[T Floats](x, y T) T {
	q := T(math.Trunc(float64(x / y)))
	if T(math.Mod(float64(x), float64(y))) < 0 {
		if y > 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}

func remEuclidFloat[T Floats](x, y T) T {
	r := T(math.Mod(float64(x), float64(y)))
	if r < 0 {
		return r + T(math.Abs(float64(y)))
	}
	return r
}

// float32Overflow is the smallest float64 that rounds to +Inf as a float32.
// Go leaves out-of-range float conversions implementation-defined.
const float32Overflow = 0x1p128 - 0x1p103

// euclidLength returns the length of the first n lanes rounded once to T.
func euclidLength[T Floats](a Lanes[T], n int) T {
	if isFloat32[T]() {
		l := math.Sqrt(sumSquares64(a, n))
		if l >= float32Overflow {
			return T(math.Inf(1))
		}
		return T(l)
	}
	x := widen(a, n)
	hi, lo, e := scaledNorm(x[:n])
	return T(math.Ldexp(hi+lo, e))
}

// normalize divides the first n lanes by their unrounded length, so every
// lane is rounded once to T.
func normalize[T Floats](a Lanes[T], n int) (r Lanes[T]) {
	if isFloat32[T]() {
		l := math.Sqrt(sumSquares64(a, n))
		for i := range n {
			r[i] = T(float64(a[i]) / l)
		}
		return r
	}
	x := widen(a, n)
	hi, lo, e := scaledNorm(x[:n])
	for i := range n {
		y := math.Ldexp(x[i], -e)
		q := y / hi
		// y - q*hi is exact with FMA; the second term corrects for lo.
		q += (math.FMA(-q, hi, y) - q*lo) / hi
		r[i] = T(q)
	}
	return r
}

// sumSquares64 sums the squares of float32 lanes in float64, where every
// square is exact and the sum carries 29 guard bits.
func sumSquares64[T Floats](a Lanes[T], n int) float64 {
	var s float64
	for i := range n {
		f := float64(a[i])
		s += f * f
	}
	return s
}

func widen[T Floats](a Lanes[T], n int) (x [4]float64) {
	for i := range n {
		x[i] = float64(a[i])
	}
	return x
}

// scaledNorm returns the length of x as (hi+lo)*2^e, with hi+lo accurate
// to about 2^-100 relative. x is scaled by a power of two, which is exact,
// so that the largest lane lies in [0.5, 1) and no square overflows. The
// squares are split into value and error with FMA and summed with TwoSum.
// Non-finite and all-zero inputs fall back to the plain sum.
func scaledNorm(x []float64) (hi, lo float64, e int) {
	var m float64
	for _, v := range x {
		if a := math.Abs(v); a > m || a != a {
			m = a
		}
	}
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		var s float64
		for _, v := range x {
			s += v * v
		}
		return math.Sqrt(s), 0, 0
	}
	_, e = math.Frexp(m)
	var s, c float64
	for _, v := range x {
		y := math.Ldexp(v, -e)
		p := y * y
		pe := math.FMA(y, y, -p)
		t := s + p
		bp := t - s
		c += (s - (t - bp)) + (p - bp) + pe
		s = t
	}
	// Renormalise, then correct the square root by one Newton step.
	t := s + c
	c -= t - s
	hi = math.Sqrt(t)
	lo = (math.FMA(-hi, hi, t) + c) / (2 * hi)
	return hi, lo, e
}

func isFloat32[T Floats]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// mulAdd computes a*b+c. With fused multiply-add permitted it rounds once;
// otherwise the product is rounded to T before the add.
func mulAdd[T Floats](a, b, c T) T {
	if !fmaPermitted {
		return T(a*b) + c
	}
	if isFloat32[T]() {
		return T(fma32(float32(a), float32(b), float32(c)))
	}
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// fma32 computes a*b+c for float32 with a single rounding. The product is
// exact in float64; the sum is rounded to odd, which makes the final
// conversion to float32 round correctly.
func fma32(a, b, c float32) float32 {
	p := float64(float64(a) * float64(b))
	z := float64(c)
	s := p + z
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	// TwoSum: e is the exact rounding error of s.
	bb := s - p
	e := (p - (s - bb)) + (z - bb)
	bits := math.Float64bits(s)
	if e != 0 && bits&1 == 0 {
		if (e > 0) == (s > 0) {
			bits++
		} else {
			bits--
		}
		s = math.Float64frombits(bits)
	}
	return float32(s)
}
