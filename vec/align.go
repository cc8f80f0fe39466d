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

// Alignment is the storage-alignment tag of a vector.
//
// Aligned vectors are eligible for SIMD backends; their register form is
// padded to a power-of-two lane count. Packed vectors always have exactly the
// layout of [N]T and only use backends at level SIMDNone.
type Alignment interface {
	Aligned | Packed

	// IsAligned reports whether the tag selects aligned storage.
	IsAligned() bool

	// String returns "Aligned" or "Packed".
	String() string
}

// Aligned selects aligned storage.
type Aligned struct{}

// IsAligned returns true.
func (Aligned) IsAligned() bool { return true }

// String returns "Aligned".
func (Aligned) String() string { return "Aligned" }

// Packed selects packed storage.
type Packed struct{}

// IsAligned returns false.
func (Packed) IsAligned() bool { return false }

// String returns "Packed".
func (Packed) String() string { return "Packed" }

// IsAligned reports whether A is the Aligned tag.
func IsAligned[A Alignment]() bool {
	var a A
	return a.IsAligned()
}
