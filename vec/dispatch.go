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
	"os"
	"strconv"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// DispatchLevel represents the SIMD instruction set the Aligned backends use.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go reference kernels only.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates the 256-bit archsimd kernels on an AVX2 CPU.
	DispatchAVX2
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the human-readable name of the current SIMD level.
var currentName string

// CurrentLevel returns the SIMD instruction set available to Aligned vectors.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current SIMD target,
// "avx2" or "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the VEC_NO_SIMD environment variable is set.
// When set, every shape uses the reference kernels regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("VEC_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// features returns the CPU features backend selection runs against.
// Forced features set through cpu.SetForcedFeatures are honoured, which is how
// tests pin a dispatch path. VEC_NO_SIMD restricts selection to SIMDNone
// backends.
func features() cpu.Features {
	f := cpu.DetectFeatures()
	if NoSimdEnv() {
		f.ForceGeneric = true
	}
	return f
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentName = "scalar"
}
