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

// assertNotNaN panics with NaNInput if a semantic lane of any input is NaN.
func assertNotNaN[T Scalar](op string, s Shape, inputs ...Lanes[T]) {
	for _, in := range inputs {
		if i := hasNaN(in, s.N); i >= 0 {
			panic(&Error{
				Kind:   NaNInput,
				Op:     op,
				Triple: tripleName[T](s),
				Lane:   i,
				Values: []any{in[i]},
			})
		}
	}
}

// assertOrdered panics with MinGreaterThanMax if lo > hi in any semantic lane.
func assertOrdered[T Scalar](op string, s Shape, o *Ops[T], lo, hi Lanes[T]) {
	if i := o.CmpGt(lo, hi).first(s.N); i >= 0 {
		panic(&Error{
			Kind:   MinGreaterThanMax,
			Op:     op,
			Triple: tripleName[T](s),
			Lane:   i,
			Values: []any{lo[i], hi[i]},
		})
	}
}

// classError reports an operation outside the scalar class of T.
func classError[T Scalar](op string, s Shape) *Error {
	return missingBackendError[T](op, s, true)
}
