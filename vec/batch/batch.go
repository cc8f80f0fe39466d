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

// Package batch provides zero-copy views of Packed vector slices as flat
// scalar slices, and block kernels over them.
//
// Packed vectors have exactly the layout of [N]T, so a []vec.Vec3[T, vec.Packed]
// is laid out like a []T of three times the length. The views alias the
// original storage: writes through one are visible through the other.
//
// The float64 block kernels run on github.com/cwbudde/algo-vecmath, which
// selects SIMD implementations for the CPU at run time.
package batch

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-smallvec/vec"
)

// Packed is satisfied by the Packed vector types over T.
type Packed[T vec.Scalar] interface {
	vec.Vec2[T, vec.Packed] | vec.Vec3[T, vec.Packed] | vec.Vec4[T, vec.Packed]
}

// lanesOf returns the number of lanes of V.
func lanesOf[T vec.Scalar, V Packed[T]]() int {
	var v V
	var t T
	return int(unsafe.Sizeof(v) / unsafe.Sizeof(t))
}

// Flatten returns the lanes of vs as one slice, without copying.
func Flatten[T vec.Scalar, V Packed[T]](vs []V) []T {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(vs))), len(vs)*lanesOf[T, V]())
}

// Unflatten returns s viewed as a slice of vectors, without copying. The
// length of s must be a multiple of the vector length.
func Unflatten[V Packed[T], T vec.Scalar](s []T) ([]V, error) {
	n := lanesOf[T, V]()
	if len(s)%n != 0 {
		return nil, &vec.Error{
			Kind:   vec.IndexOutOfRange,
			Op:     "Unflatten",
			Lane:   -1,
			Detail: fmt.Sprintf("length %d is not a multiple of %d", len(s), n),
		}
	}
	if len(s) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*V)(unsafe.Pointer(unsafe.SliceData(s))), len(s)/n), nil
}
