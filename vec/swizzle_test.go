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
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	readSwizzle  = regexp.MustCompile(`^[XYZW]{1,4}$`)
	writeSwizzle = regexp.MustCompile(`^(With|Set)([XYZW]{1,4})$`)
	mutSwizzle   = regexp.MustCompile(`^([XYZW]+(?:_[XYZW]+)*)Mut$`)
)

// lanesOf returns the lanes of a float32 scalar, vector or array value.
func lanesOf(t *testing.T, v reflect.Value) []float32 {
	t.Helper()
	switch v.Kind() {
	case reflect.Float32:
		return []float32{float32(v.Float())}
	case reflect.Array:
		out := make([]float32, v.Len())
		for i := range out {
			out[i] = float32(v.Index(i).Float())
		}
		return out
	case reflect.Struct:
		return lanesOf(t, v.MethodByName("ToArray").Call(nil)[0])
	}
	t.Fatalf("unexpected swizzle result kind %v", v.Kind())
	return nil
}

// argFor builds the argument of a With or Set swizzle: a scalar for one-letter
// words, otherwise a vector holding 100, 101, ...
func argFor(pt reflect.Type, k int) reflect.Value {
	if pt.Kind() == reflect.Float32 {
		return reflect.ValueOf(float32(100))
	}
	p := reflect.New(pt)
	for j := range k {
		p.MethodByName("Set").Call([]reflect.Value{reflect.ValueOf(j), reflect.ValueOf(float32(100 + j))})
	}
	return p.Elem()
}

func axisIndex(c byte) int { return strings.IndexByte(axisLetters, c|0x20) }

// testSwizzles checks every generated swizzle of the vector pointed to by vp
// against the run-time Swizzle, and returns the number of methods checked.
func testSwizzles(t *testing.T, vp any) int {
	t.Helper()
	pv := reflect.ValueOf(vp)
	orig := pv.Elem().Interface()
	base := lanesOf(t, pv.Elem())
	reset := func() { pv.Elem().Set(reflect.ValueOf(orig)) }

	checked := 0
	pt := pv.Type()
	for i := range pt.NumMethod() {
		m := pt.Method(i)
		name := m.Name
		switch {
		case readSwizzle.MatchString(name):
			got := lanesOf(t, pv.Method(i).Call(nil)[0])
			want, err := Swizzle(base, name)
			if err != nil {
				t.Fatalf("Swizzle(%q): %v", name, err)
			}
			if !cmp.Equal(got, want) {
				t.Errorf("%s: %s", name, cmp.Diff(want, got))
			}

		case writeSwizzle.MatchString(name):
			word := writeSwizzle.FindStringSubmatch(name)[2]
			want := append([]float32(nil), base...)
			for j := range len(word) {
				want[axisIndex(word[j])] = float32(100 + j)
			}
			arg := argFor(pv.Method(i).Type().In(0), len(word))
			out := pv.Method(i).Call([]reflect.Value{arg})
			var got []float32
			if strings.HasPrefix(name, "With") {
				got = lanesOf(t, out[0])
				if now := lanesOf(t, pv.Elem()); !cmp.Equal(now, base) {
					t.Errorf("%s modified its receiver: %v", name, now)
				}
			} else {
				got = lanesOf(t, pv.Elem())
				reset()
			}
			if !cmp.Equal(got, want) {
				t.Errorf("%s: %s", name, cmp.Diff(want, got))
			}

		case mutSwizzle.MatchString(name):
			groups := strings.Split(mutSwizzle.FindStringSubmatch(name)[1], "_")
			out := pv.Method(i).Call(nil)
			if len(out) != len(groups) {
				t.Fatalf("%s: got %d borrows, want %d", name, len(out), len(groups))
			}
			want := append([]float32(nil), base...)
			for g, p := range out {
				r, err := ParseRange(groups[g])
				if err != nil {
					t.Fatalf("%s: %v", name, err)
				}
				e := p.Elem()
				for j := r.Lo; j < r.Hi; j++ {
					x := float32(200 + 10*g + j)
					want[j] = x
					if e.Kind() == reflect.Array {
						e.Index(j - r.Lo).SetFloat(float64(x))
					} else {
						e.SetFloat(float64(x))
					}
				}
			}
			if got := lanesOf(t, pv.Elem()); !cmp.Equal(got, want) {
				t.Errorf("%s: %s", name, cmp.Diff(want, got))
			}
			reset()

		default:
			continue
		}
		checked++
	}
	return checked
}

func TestSwizzleConsistency(t *testing.T) {
	v2 := New2[Aligned](float32(1), 2)
	v3 := New3[Packed](float32(1), 2, 3)
	v4a := New4[Aligned](float32(1), 2, 3, 4)
	v4p := New4[Packed](float32(1), 2, 3, 4)
	tests := []struct {
		name string
		vp   any
		want int
	}{
		// reads + with/set + contiguous borrows + disjoint groups
		{"Vec2", &v2, 30 + 2*4 + 3 + 1},
		{"Vec3", &v3, 120 + 2*15 + 6 + 6},
		{"Vec4 Aligned", &v4a, 340 + 2*64 + 10 + 23},
		{"Vec4 Packed", &v4p, 340 + 2*64 + 10 + 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testSwizzles(t, tt.vp); got != tt.want {
				t.Errorf("checked %d swizzles, want %d", got, tt.want)
			}
		})
	}
}

func TestNoOverlappingBorrows(t *testing.T) {
	pt := reflect.TypeFor[*Vec4[float32, Aligned]]()
	for _, name := range []string{"XY_YZMut", "XYZ_ZWMut", "X_XMut", "YZ_XMut"} {
		if _, ok := pt.MethodByName(name); ok {
			t.Errorf("%s exists, but its borrows overlap or are out of order", name)
		}
	}
}

func TestSplitMut(t *testing.T) {
	v := New4[Aligned](1, 2, 3, 4)
	xy, _ := ParseRange("XY")
	zw, _ := ParseRange("zw")
	parts, err := v.SplitMut(zw, xy)
	if err != nil {
		t.Fatalf("SplitMut(zw, xy): %v", err)
	}
	parts[0][1] = 40
	parts[1][0] = 10
	if got, want := v.ToArray(), [4]int{10, 2, 3, 40}; got != want {
		t.Errorf("SplitMut writes: got %v, want %v", got, want)
	}
	if c := cap(parts[1]); c != 2 {
		t.Errorf("SplitMut: view capacity %d, want 2", c)
	}
	_ = append(parts[1], 99)
	if v.At(2) != 3 {
		t.Errorf("append to a view reached lane 2: %v", v)
	}

	tests := []struct {
		name   string
		ranges []Range
		kind   ErrorKind
	}{
		{"overlap", []Range{{0, 2}, {1, 3}}, AliasingBorrow},
		{"duplicate", []Range{{3, 4}, {3, 4}}, AliasingBorrow},
		{"past end", []Range{{3, 5}}, IndexOutOfRange},
		{"empty", []Range{{2, 2}}, IndexOutOfRange},
		{"negative", []Range{{-1, 1}}, IndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.SplitMut(tt.ranges...)
			var e *Error
			if !errors.As(err, &e) || e.Kind != tt.kind {
				t.Errorf("SplitMut(%v): got %v, want %v", tt.ranges, err, tt.kind)
			}
		})
	}

	v3 := New3[Packed](1, 2, 3)
	if _, err := v3.SplitMut(zw); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("SplitMut(zw) on Vec3: got %v, want IndexOutOfRange", err)
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		word string
		want Range
		ok   bool
	}{
		{"x", Range{0, 1}, true},
		{"yz", Range{1, 3}, true},
		{"XYZW", Range{0, 4}, true},
		{"w", Range{3, 4}, true},
		{"xz", Range{}, false},
		{"zy", Range{}, false},
		{"", Range{}, false},
		{"q", Range{}, false},
	}
	for _, tt := range tests {
		got, err := ParseRange(tt.word)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseRange(%q): got %v, %v, want %v", tt.word, got, err, tt.want)
		}
		if tt.ok && got.String() != strings.ToLower(tt.word) {
			t.Errorf("Range.String: got %q, want %q", got.String(), strings.ToLower(tt.word))
		}
	}
	if got := (Range{2, 9}).String(); got != "[2:9]" {
		t.Errorf("Range.String out of bounds: got %q", got)
	}
}

func TestSwizzleErrors(t *testing.T) {
	a := [3]int{1, 2, 3}
	if got, err := Swizzle(a[:], "zZx"); err != nil || !cmp.Equal(got, []int{3, 3, 1}) {
		t.Errorf("Swizzle(zZx): got %v, %v", got, err)
	}
	tests := []struct {
		word string
		lane int
		msg  string
	}{
		{"w", 3, `vec: IndexOutOfRange in Swizzle at lane 3 (inputs [w]): letter 'w' at position 0 of "w" is past length 3`},
		{"xq", -1, `vec: IndexOutOfRange in Swizzle (inputs [q]): letter 'q' at position 1 of "xq" is not an axis letter`},
		{"zy9", -1, `vec: IndexOutOfRange in Swizzle (inputs [9]): letter '9' at position 2 of "zy9" is not an axis letter`},
		{"xé", -1, `vec: IndexOutOfRange in Swizzle (inputs [é]): letter 'é' at position 1 of "xé" is not an axis letter`},
	}
	for _, tt := range tests {
		_, err := Swizzle(a[:], tt.word)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Swizzle(%q): got %v, want IndexOutOfRange", tt.word, err)
			continue
		}
		var e *Error
		if !errors.As(err, &e) || e.Lane != tt.lane {
			t.Errorf("Swizzle(%q): lane %d, want %d", tt.word, e.Lane, tt.lane)
		}
		if got := err.Error(); got != tt.msg {
			t.Errorf("Swizzle(%q): got %q, want %q", tt.word, got, tt.msg)
		}
	}
}
