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
	"math"
	"testing"
)

func TestMaskQueries(t *testing.T) {
	tests := []struct {
		bits           [4]bool
		all, any, none bool
		bitmask        uint8
	}{
		{[4]bool{false, false, false, false}, false, false, true, 0},
		{[4]bool{true, false, false, false}, false, true, false, 0b0001},
		{[4]bool{false, true, false, true}, false, true, false, 0b1010},
		{[4]bool{true, true, true, true}, true, true, false, 0b1111},
	}
	for _, tt := range tests {
		m := MaskFromArray4[float32, Aligned](tt.bits)
		if m.All() != tt.all || m.Any() != tt.any || m.None() != tt.none {
			t.Errorf("%v: All/Any/None = %v/%v/%v, want %v/%v/%v",
				m, m.All(), m.Any(), m.None(), tt.all, tt.any, tt.none)
		}
		if got := m.Bitmask(); got != tt.bitmask {
			t.Errorf("%v: Bitmask = %#b, want %#b", m, got, tt.bitmask)
		}
	}
}

func TestMaskLogic(t *testing.T) {
	a := MaskFromArray2[int32, Packed]([2]bool{true, false})
	b := MaskSplat2[int32, Packed](true)
	if got, want := a.And(b).ToArray(), [2]bool{true, false}; got != want {
		t.Errorf("And: got %v, want %v", got, want)
	}
	if got, want := a.Or(b).ToArray(), [2]bool{true, true}; got != want {
		t.Errorf("Or: got %v, want %v", got, want)
	}
	if got, want := a.Xor(b).ToArray(), [2]bool{false, true}; got != want {
		t.Errorf("Xor: got %v, want %v", got, want)
	}
	if got, want := a.Not().ToArray(), [2]bool{false, true}; got != want {
		t.Errorf("Not: got %v, want %v", got, want)
	}
	if a.ToArray() != [2]bool{true, false} {
		t.Errorf("Not modified its receiver: %v", a)
	}
}

func TestMaskLanes(t *testing.T) {
	m := MaskFromFn3[uint8, Aligned](func(i int) bool { return i != 1 })
	if m.Len() != 3 || !m.At(0) || m.At(1) || !m.At(2) {
		t.Errorf("MaskFromFn3: got %v", m)
	}
	m.Set(1, true)
	if !m.All() {
		t.Errorf("Set: got %v, want all set", m)
	}
	if _, err := m.Get(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Get(3): got %v, want IndexOutOfRange", err)
	}
	requirePanicKind(t, IndexOutOfRange, func() { m.At(-1) })
}

func TestSelectFromComparison(t *testing.T) {
	a := New4[Aligned](float64(1), 5, -2, 8)
	b := New4[Aligned](float64(3), 4, -2, 9)
	lt := a.CmpLt(b)
	if got, want := lt.Select(a, b), a.Min(b); got != want {
		t.Errorf("Select(CmpLt) = %v, want Min = %v", got, want)
	}
	if got, want := lt.Not().Select(a, b), New4[Aligned](float64(3), 5, -2, 9); got != want {
		t.Errorf("Select(!CmpLt) = %v, want %v", got, want)
	}
	if got := MaskSplat4[float64, Aligned](true).Select(a, b); got != a {
		t.Errorf("Select(all) = %v, want %v", got, a)
	}

	v := New3[Packed](1.0, math.NaN(), 3.0)
	clean := v.IsNaNMask().Select(Zero3[Packed, float64](), v)
	if got, want := clean.ToArray(), [3]float64{1, 0, 3}; got != want {
		t.Errorf("replace NaN lanes: got %v, want %v", got, want)
	}
}
