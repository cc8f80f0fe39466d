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

// Lanes is the register form every backend kernel works on: up to four lanes,
// where the slots past the vector length hold copies of the last semantic
// lane. Padding slots are always initialised and never observable through a
// vector.
type Lanes[T Scalar] [4]T

// Bits is the register form of a mask.
type Bits [4]bool

// loadLanes copies n semantic lanes and fills the remaining slots with the
// last one.
func loadLanes[T Scalar](src []T) (r Lanes[T]) {
	n := copy(r[:], src)
	for i := n; i < len(r); i++ {
		r[i] = src[n-1]
	}
	return r
}

// splatLanes sets every slot to x.
func splatLanes[T Scalar](x T) Lanes[T] {
	return Lanes[T]{x, x, x, x}
}

// all reports whether the first n bits are set.
func (b Bits) all(n int) bool {
	for i := 0; i < n; i++ {
		if !b[i] {
			return false
		}
	}
	return true
}

// first returns the index of the first set bit among the first n, or -1.
func (b Bits) first(n int) int {
	for i := 0; i < n; i++ {
		if b[i] {
			return i
		}
	}
	return -1
}

// hasNaN returns the first lane among the first n that is NaN, or -1. NaN is
// the only value not equal to itself, so the check is valid for every scalar.
func hasNaN[T Scalar](a Lanes[T], n int) int {
	for i := 0; i < n; i++ {
		if a[i] != a[i] {
			return i
		}
	}
	return -1
}
