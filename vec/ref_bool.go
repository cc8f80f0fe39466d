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

import "github.com/cwbudde/algo-vecmath/cpu"

// referenceBool builds the kernels of a boolean type: equality, selection and
// the logical operations.
func referenceBool[T ~bool]() *Backend[T] {
	return &Backend[T]{
		Name:  referenceName,
		Level: cpu.SIMDNone,
		Shapes: ForEachShape(func(s Shape, o *Ops[T]) {
			n := s.N
			fillEquality(o, n)
			o.Not = lanes1(n, func(x T) T { return !x })
			o.And = lanes2(n, func(x, y T) T { return x && y })
			o.Or = lanes2(n, func(x, y T) T { return x || y })
			o.Xor = lanes2(n, func(x, y T) T { return x != y })
		}),
	}
}
