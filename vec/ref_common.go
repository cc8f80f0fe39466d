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

// referenceName names the pure Go backend every built-in scalar type starts
// with.
const referenceName = "reference"

// The helpers below lift a per-lane function into a kernel over the first n
// lanes. Result slots past n are left zero.

func lanes1[T Scalar](n int, f func(x T) T) func(a Lanes[T]) Lanes[T] {
	return func(a Lanes[T]) (r Lanes[T]) {
		for i := range n {
			r[i] = f(a[i])
		}
		return r
	}
}

// lanes1i passes the lane index along, for kernels that report failures.
func lanes1i[T Scalar](n int, f func(i int, x T) T) func(a Lanes[T]) Lanes[T] {
	return func(a Lanes[T]) (r Lanes[T]) {
		for i := range n {
			r[i] = f(i, a[i])
		}
		return r
	}
}

func lanes2[T Scalar](n int, f func(x, y T) T) func(a, b Lanes[T]) Lanes[T] {
	return func(a, b Lanes[T]) (r Lanes[T]) {
		for i := range n {
			r[i] = f(a[i], b[i])
		}
		return r
	}
}

// lanes2i passes the lane index along, for kernels that report failures.
func lanes2i[T Scalar](n int, f func(i int, x, y T) T) func(a, b Lanes[T]) Lanes[T] {
	return func(a, b Lanes[T]) (r Lanes[T]) {
		for i := range n {
			r[i] = f(i, a[i], b[i])
		}
		return r
	}
}

func compare[T Scalar](n int, f func(x, y T) bool) func(a, b Lanes[T]) Bits {
	return func(a, b Lanes[T]) (m Bits) {
		for i := range n {
			m[i] = f(a[i], b[i])
		}
		return m
	}
}

func test1[T Scalar](n int, f func(x T) bool) func(a Lanes[T]) Bits {
	return func(a Lanes[T]) (m Bits) {
		for i := range n {
			m[i] = f(a[i])
		}
		return m
	}
}

// fold reduces the first n lanes left to right.
func fold[T Scalar](n int, f func(i int, acc, x T) T) func(a Lanes[T]) T {
	return func(a Lanes[T]) T {
		acc := a[0]
		for i := 1; i < n; i++ {
			acc = f(i, acc, a[i])
		}
		return acc
	}
}

// fillEquality installs the kernels every scalar class shares.
func fillEquality[T Scalar](o *Ops[T], n int) {
	o.Eq = func(a, b Lanes[T]) bool {
		for i := range n {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	o.CmpEq = compare(n, func(x, y T) bool { return x == y })
	o.CmpNe = compare(n, func(x, y T) bool { return x != y })
	o.Select = func(m Bits, t, f Lanes[T]) (r Lanes[T]) {
		for i := range n {
			if m[i] {
				r[i] = t[i]
			} else {
				r[i] = f[i]
			}
		}
		return r
	}
}

// fillOrdered installs the ordering kernels of the numeric classes. Min and
// Max follow the builtins, so a NaN operand yields NaN.
func fillOrdered[T Numbers](o *Ops[T], n int) {
	o.CmpLt = compare(n, func(x, y T) bool { return x < y })
	o.CmpLe = compare(n, func(x, y T) bool { return x <= y })
	o.CmpGt = compare(n, func(x, y T) bool { return x > y })
	o.CmpGe = compare(n, func(x, y T) bool { return x >= y })
	o.Min = lanes2(n, func(x, y T) T { return min(x, y) })
	o.Max = lanes2(n, func(x, y T) T { return max(x, y) })
	o.Clamp = func(v, lo, hi Lanes[T]) (r Lanes[T]) {
		for i := range n {
			r[i] = min(max(v[i], lo[i]), hi[i])
		}
		return r
	}
	o.MinElement = fold(n, func(_ int, acc, x T) T { return min(acc, x) })
	o.MaxElement = fold(n, func(_ int, acc, x T) T { return max(acc, x) })
}
