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

// Extend returns (x, y, z).
func (v Vec2[T, A]) Extend(z T) Vec3[T, A] {
	return New3[A](v.lanes[0], v.lanes[1], z)
}

// Extend returns (x, y, z, w).
func (v Vec3[T, A]) Extend(w T) Vec4[T, A] {
	return New4[A](v.lanes[0], v.lanes[1], v.lanes[2], w)
}

// Truncate drops the z lane.
func (v Vec3[T, A]) Truncate() Vec2[T, A] {
	return New2[A](v.lanes[0], v.lanes[1])
}

// Truncate drops the w lane.
func (v Vec4[T, A]) Truncate() Vec3[T, A] {
	return New3[A](v.lanes[0], v.lanes[1], v.lanes[2])
}

// Cross returns the cross product v × w.
func (v Vec3[T, A]) Cross(w Vec3[T, A]) Vec3[T, A] {
	o := v.ops()
	a, b := v.lanes, w.lanes
	yzx := func(l [3]T) Lanes[T] { return Lanes[T]{l[1], l[2], l[0], l[0]} }
	zxy := func(l [3]T) Lanes[T] { return Lanes[T]{l[2], l[0], l[1], l[1]} }
	return from3[T, A](o.Sub(o.Mul(yzx(a), zxy(b)), o.Mul(zxy(a), yzx(b))))
}

// Perp returns v rotated by 90 degrees counter-clockwise, (-y, x).
func (v Vec2[T, A]) Perp() Vec2[T, A] {
	r := v.ops().Neg(Lanes[T]{v.lanes[1], v.lanes[1], v.lanes[1], v.lanes[1]})
	return New2[A](r[0], v.lanes[0])
}

// PerpDot returns the dot product of v.Perp() and w, x*w.y - y*w.x.
func (v Vec2[T, A]) PerpDot(w Vec2[T, A]) T {
	o := v.ops()
	p := o.Mul(Lanes[T]{v.lanes[0], v.lanes[1], v.lanes[1], v.lanes[1]},
		Lanes[T]{w.lanes[1], w.lanes[0], w.lanes[0], w.lanes[0]})
	return o.Sub(splatLanes(p[0]), splatLanes(p[1]))[0]
}
