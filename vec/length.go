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

import "fmt"

// Length is a length witness. Only Len2, Len3 and Len4 satisfy it, so any
// other vector length fails to compile.
type Length interface {
	Len2 | Len3 | Len4

	// N returns the number of semantic lanes.
	N() int

	// Padding returns the number of padding slots added under Aligned storage.
	Padding() int

	// Stride returns next_pow2(N), the lane count of the aligned register form.
	Stride() int
}

// Len2 witnesses two-lane vectors.
type Len2 struct{}

func (Len2) N() int       { return 2 }
func (Len2) Padding() int { return 0 }
func (Len2) Stride() int  { return 2 }

// Len3 witnesses three-lane vectors.
type Len3 struct{}

func (Len3) N() int       { return 3 }
func (Len3) Padding() int { return 1 }
func (Len3) Stride() int  { return 4 }

// Len4 witnesses four-lane vectors.
type Len4 struct{}

func (Len4) N() int       { return 4 }
func (Len4) Padding() int { return 0 }
func (Len4) Stride() int  { return 4 }

// PaddingOf returns the number of padding slots of an (L, A) shape.
func PaddingOf[L Length, A Alignment]() int {
	if !IsAligned[A]() {
		return 0
	}
	var l L
	return l.Padding()
}

// Shape names an (N, A) pair. Backends provide one Ops table per shape.
type Shape struct {
	N       int
	Aligned bool
}

// ShapeOf returns the shape of an (L, A) pair.
func ShapeOf[L Length, A Alignment]() Shape {
	var l L
	return Shape{N: l.N(), Aligned: IsAligned[A]()}
}

// String returns the shape as "(N, Aligned)" or "(N, Packed)".
func (s Shape) String() string {
	if s.Aligned {
		return fmt.Sprintf("(%d, Aligned)", s.N)
	}
	return fmt.Sprintf("(%d, Packed)", s.N)
}

// shapes lists every supported shape, in table order.
var shapes = [...]Shape{
	{2, false}, {2, true},
	{3, false}, {3, true},
	{4, false}, {4, true},
}

func (s Shape) index() int {
	i := (s.N - 2) * 2
	if s.Aligned {
		i++
	}
	return i
}
