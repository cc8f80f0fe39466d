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
	"fmt"
	"strings"
	"unicode/utf8"
)

//go:generate go run ../cmd/vecgen -output swizzle_gen.go

// The named swizzles live in swizzle_gen.go. Reading swizzles such as XY or
// WZYX exist for every word over the axis letters of a vector; WithXY and
// SetXY exist for the words without repeated letters; XYMut and static
// disjoint groups such as XY_ZMut return pointers into the storage. The
// pointers address the semantic lanes of both Packed and Aligned vectors,
// since neither stores its padding.
//
// SplitMut is the dynamic counterpart of the static groups: it checks the
// requested ranges at run time and refuses overlapping ones.

// Range is a contiguous lane range [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// String returns the axis word of r, e.g. "yz".
func (r Range) String() string {
	if r.Lo < 0 || r.Hi > len(axisLetters) || r.Lo >= r.Hi {
		return fmt.Sprintf("[%d:%d]", r.Lo, r.Hi)
	}
	return axisLetters[r.Lo:r.Hi]
}

const axisLetters = "xyzw"

// ParseRange parses an axis word of consecutive ascending letters, such as
// "x", "yz" or "xyzw", into a Range. Letters may be upper or lower case.
func ParseRange(word string) (Range, error) {
	w := strings.ToLower(word)
	lo := strings.Index(axisLetters, w)
	if w == "" || lo < 0 {
		return Range{}, fmt.Errorf("vec: %q is not a contiguous axis range", word)
	}
	return Range{Lo: lo, Hi: lo + len(w)}, nil
}

// splitMut returns one sub-slice of lanes per range. The sub-slices have
// their capacity clipped, so appending to one never reaches another.
func splitMut[T Scalar](op string, lanes []T, ranges []Range) ([][]T, error) {
	n := len(lanes)
	for i, r := range ranges {
		if r.Lo < 0 || r.Hi > n || r.Lo >= r.Hi {
			return nil, &Error{
				Kind:   IndexOutOfRange,
				Op:     op,
				Lane:   max(r.Lo, r.Hi-1),
				Detail: fmt.Sprintf("range %v does not fit length %d", r, n),
			}
		}
		for j := range i {
			q := ranges[j]
			if r.Lo < q.Hi && q.Lo < r.Hi {
				return nil, &Error{
					Kind:   AliasingBorrow,
					Op:     op,
					Lane:   max(r.Lo, q.Lo),
					Detail: fmt.Sprintf("ranges %v and %v overlap", q, r),
				}
			}
		}
	}
	out := make([][]T, len(ranges))
	for i, r := range ranges {
		out[i] = lanes[r.Lo:r.Hi:r.Hi]
	}
	return out, nil
}

// SplitMut returns one mutable view per range, or an AliasingBorrow error if
// two ranges overlap.
func (v *Vec2[T, A]) SplitMut(ranges ...Range) ([][]T, error) {
	return splitMut("SplitMut", v.lanes[:], ranges)
}

// SplitMut returns one mutable view per range, or an AliasingBorrow error if
// two ranges overlap.
func (v *Vec3[T, A]) SplitMut(ranges ...Range) ([][]T, error) {
	return splitMut("SplitMut", v.lanes[:], ranges)
}

// SplitMut returns one mutable view per range, or an AliasingBorrow error if
// two ranges overlap.
func (v *Vec4[T, A]) SplitMut(ranges ...Range) ([][]T, error) {
	return splitMut("SplitMut", v.lanes[:], ranges)
}

// Swizzle returns the elements of lanes selected by an axis word such as
// "zyx". It is the run-time form of the named swizzles, e.g.
// with a := v.ToArray(), Swizzle(a[:], "zyx") holds the lanes of v.ZYX().
func Swizzle[T Scalar](lanes []T, word string) ([]T, error) {
	out := make([]T, 0, len(word))
	for i, c := range word {
		l := -1
		if c < utf8.RuneSelf {
			l = strings.IndexByte(axisLetters, byte(c)|0x20)
		}
		if l < 0 || l >= len(lanes) {
			return nil, swizzleError(word, i, c, l, len(lanes))
		}
		out = append(out, lanes[l])
	}
	return out, nil
}

// swizzleError reports the letter c at byte position i of word. l is the
// lane c names, or -1 if c is not an axis letter.
func swizzleError(word string, i int, c rune, l, n int) *Error {
	detail := fmt.Sprintf("letter %q at position %d of %q is not an axis letter", c, i, word)
	if l >= 0 {
		detail = fmt.Sprintf("letter %q at position %d of %q is past length %d", c, i, word, n)
	}
	return &Error{
		Kind:   IndexOutOfRange,
		Op:     "Swizzle",
		Lane:   l,
		Values: []any{string(c)},
		Detail: detail,
	}
}
