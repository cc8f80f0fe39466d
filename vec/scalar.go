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
	"reflect"

	"golang.org/x/exp/constraints"
)

// Floats is a constraint for floating-point scalars.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer scalars.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer scalars, uintptr included.
type UnsignedInts interface {
	constraints.Unsigned
}

// Integers is a constraint for all integer scalars.
type Integers interface {
	SignedInts | UnsignedInts
}

// Numbers is a constraint for scalars with arithmetic.
type Numbers interface {
	Integers | Floats
}

// SignedNumbers is a constraint for scalars with a negative range.
type SignedNumbers interface {
	SignedInts | Floats
}

// Scalar is the single gate through which a type becomes admissible as a
// vector lane. Built-in scalars are served by the package backends; named
// types must be registered (see RegisterFloat and friends) before use.
type Scalar interface {
	Numbers | ~bool
}

// floatValue converts a float scalar to float64. It reports false for
// scalars of any other kind.
func floatValue[T Scalar](x T) (float64, bool) {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// floatScalar converts f to a float scalar T. It reports false for scalars of
// any other kind.
func floatScalar[T Scalar](f float64) (T, bool) {
	var x T
	rv := reflect.ValueOf(&x).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(f)
		return x, true
	}
	return x, false
}
