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

package testutil

import (
	"math"
	"testing"
)

func TestFloat32ULPDiff(t *testing.T) {
	one := float32(1)
	next := math.Nextafter32(one, 2)
	tests := []struct {
		name string
		a, b float32
		want int64
	}{
		{"equal", 1, 1, 0},
		{"adjacent", one, next, 1},
		{"signed zeros", 0, float32(math.Copysign(0, -1)), 0},
		{"across zero", math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32, 2},
		{"nan", float32(math.NaN()), 1, math.MaxInt64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float32ULPDiff(tt.a, tt.b); got != tt.want {
				t.Errorf("Float32ULPDiff(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFloat64ULPDiff(t *testing.T) {
	if got := Float64ULPDiff(1, math.Nextafter(1, 0)); got != 1 {
		t.Errorf("Float64ULPDiff adjacent = %d, want 1", got)
	}
	if got := Float64ULPDiff(math.Inf(1), math.Inf(-1)); got == 0 {
		t.Errorf("Float64ULPDiff(+Inf, -Inf) = 0, want > 0")
	}
	if got := ULPDiff(float32(2), float32(2)); got != 0 {
		t.Errorf("ULPDiff(2, 2) = %d, want 0", got)
	}
}

func TestSameBits(t *testing.T) {
	if SameBits(0.0, math.Copysign(0, -1)) {
		t.Error("SameBits(+0, -0) = true, want false")
	}
	if !SameBits(float32(1.5), float32(1.5)) {
		t.Error("SameBits(1.5, 1.5) = false, want true")
	}
}

func TestRecover(t *testing.T) {
	if r := Recover(func() {}); r != nil {
		t.Errorf("Recover(no panic) = %v, want nil", r)
	}
	if r := Recover(func() { panic("boom") }); r != "boom" {
		t.Errorf("Recover(panic) = %v, want boom", r)
	}
}
