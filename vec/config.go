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

import "fmt"

// OverflowPolicy selects how integer arithmetic treats overflow.
type OverflowPolicy int

const (
	// OverflowStrict panics with OverflowOrDivideByZero at the step that
	// overflows.
	OverflowStrict OverflowPolicy = iota
	// OverflowWrapping wraps modulo 2^width.
	OverflowWrapping
)

// String returns "strict" or "wrapping".
func (p OverflowPolicy) String() string {
	if p == OverflowWrapping {
		return "wrapping"
	}
	return "strict"
}

// Axis names a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

// String returns the lowercase axis letter.
func (a Axis) String() string {
	return string("xyzw"[a])
}

// Config is the compile-time configuration of the package, as selected by
// build tags.
type Config struct {
	SIMD        bool
	FMA         bool
	Overflow    OverflowPolicy
	Assertions  bool
	Up          Axis
	ForwardSign int
}

// Options returns the configuration the package was compiled with.
func Options() Config {
	return Config{
		SIMD:        simdCompiled,
		FMA:         fmaPermitted,
		Overflow:    overflowPolicy,
		Assertions:  assertions,
		Up:          upAxis,
		ForwardSign: forwardSign,
	}
}

// String formats the configuration using the option names of the build
// surface, e.g. "backend.simd=true backend.fma=true overflow.integer=strict".
func (c Config) String() string {
	sign := "-"
	if c.ForwardSign > 0 {
		sign = "+"
	}
	return fmt.Sprintf("backend.simd=%t backend.fma=%t overflow.integer=%s assertions=%t axis.up=+%s axis.forward=%s%s",
		c.SIMD, c.FMA, c.Overflow, c.Assertions, c.Up, sign, forwardAxis(c.Up))
}

// forwardAxis returns the axis Forward lies on for a given up axis: Z when Y
// is up and Y when Z is up.
func forwardAxis(up Axis) Axis {
	if up == AxisZ {
		return AxisY
	}
	return AxisZ
}
