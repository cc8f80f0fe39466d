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

// Direction constructors for the coordinate convention of the build. Up is
// +Y, or +Z under the veczup tag. Forward lies on the remaining axis of the
// pair: -Z when Y is up and -Y when Z is up, or the positive direction under
// the vecforwardpos tag. Right is always +X.

// Up returns the canonical up direction.
func Up[A Alignment, T SignedNumbers]() Vec3[T, A] {
	return unitAxis[A, T](upAxis, 1)
}

// Down returns -Up().
func Down[A Alignment, T SignedNumbers]() Vec3[T, A] {
	return unitAxis[A, T](upAxis, -1)
}

// Forward returns the canonical forward direction.
func Forward[A Alignment, T SignedNumbers]() Vec3[T, A] {
	return unitAxis[A, T](forwardAxis(upAxis), forwardSign)
}

// Back returns -Forward().
func Back[A Alignment, T SignedNumbers]() Vec3[T, A] {
	return unitAxis[A, T](forwardAxis(upAxis), -forwardSign)
}

// Right returns +X.
func Right[A Alignment, T SignedNumbers]() Vec3[T, A] {
	return unitAxis[A, T](AxisX, 1)
}

// Left returns -X.
func Left[A Alignment, T SignedNumbers]() Vec3[T, A] {
	return unitAxis[A, T](AxisX, -1)
}

// Unit3 returns the unit vector along axis, which must be X, Y or Z.
func Unit3[A Alignment, T Numbers](axis Axis) Vec3[T, A] {
	var v Vec3[T, A]
	v.Set(int(axis), 1)
	return v
}

// Unit4 returns the unit vector along axis.
func Unit4[A Alignment, T Numbers](axis Axis) Vec4[T, A] {
	var v Vec4[T, A]
	v.Set(int(axis), 1)
	return v
}

func unitAxis[A Alignment, T SignedNumbers](axis Axis, sign int) Vec3[T, A] {
	var v Vec3[T, A]
	v.lanes[axis] = T(sign)
	return v
}
