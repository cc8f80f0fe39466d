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

// Aliases for the common instantiations. The short forms use Aligned storage,
// which is eligible for SIMD backends; the P-suffixed forms are Packed and
// have exactly the layout of [N]T.
type (
	Vec2f = Vec2[float32, Aligned]
	Vec3f = Vec3[float32, Aligned]
	Vec4f = Vec4[float32, Aligned]
	Vec2d = Vec2[float64, Aligned]
	Vec3d = Vec3[float64, Aligned]
	Vec4d = Vec4[float64, Aligned]
	Vec2i = Vec2[int32, Aligned]
	Vec3i = Vec3[int32, Aligned]
	Vec4i = Vec4[int32, Aligned]
	Vec2u = Vec2[uint32, Aligned]
	Vec3u = Vec3[uint32, Aligned]
	Vec4u = Vec4[uint32, Aligned]
	Vec2b = Vec2[bool, Aligned]
	Vec3b = Vec3[bool, Aligned]
	Vec4b = Vec4[bool, Aligned]

	Vec2fP = Vec2[float32, Packed]
	Vec3fP = Vec3[float32, Packed]
	Vec4fP = Vec4[float32, Packed]
	Vec2dP = Vec2[float64, Packed]
	Vec3dP = Vec3[float64, Packed]
	Vec4dP = Vec4[float64, Packed]
)
