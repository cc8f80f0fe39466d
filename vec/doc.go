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

// Package vec provides fixed-length vectors of two, three and four lanes for
// graphics and geometry code, with backend dispatch per scalar type, length and
// storage alignment.
//
// A vector is a value type parameterised by its scalar type and an alignment
// tag:
//
//	a := vec.New3[vec.Aligned](float32(1), 2, 3)
//	b := vec.Splat3[vec.Aligned](float32(0.5))
//	c := a.Add(b).Normalize()
//
// Every operation routes through a backend resolved once per scalar type. The
// reference backend applies the scalar operation lane by lane; SIMD backends
// (built with GOEXPERIMENT=simd on amd64) override a subset of operations for
// Aligned vectors. Backend results on the semantic lanes match the reference
// bit for bit for integer and IEEE-754-exact float operations.
//
// Compile-time configuration uses build tags:
//
//	vecnosimd      disable SIMD backends
//	vecnofma       forbid fused multiply-add lowering in MulAdd
//	vecwrapping    integer arithmetic wraps instead of panicking on overflow
//	vecnoassert    drop precondition checks (NaN inputs, min > max)
//	veczup         +Z is Up instead of +Y
//	vecforwardpos  Forward points along the positive forward axis
//	fastmath       Exp and Ln use fast approximations
//
// Set VEC_NO_SIMD=1 to force the reference backend at startup.
package vec
