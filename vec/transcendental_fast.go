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

//go:build fastmath

package vec

import "github.com/meko-christian/algo-approx"

// Error bounds of the balanced approximations for normal inputs. Exp is a
// degree-5 polynomial after reduction by multiples of ln 2, so its relative
// error stays below 4e-6. Ln sums the atanh series to y^7 on [0.5, 1), so
// its absolute error stays below 1.3e-5. The worst case is at powers of two,
// Ln(1) included.
const (
	expRelError = 4e-6
	lnAbsError  = 1.3e-5
)

// mathExp computes e^x using fast approximation.
func mathExp(x float64) float64 {
	return approx.FastExpPrec(x, approx.PrecisionBalanced)
}

// mathLog computes ln(x) using fast approximation.
func mathLog(x float64) float64 {
	return approx.FastLogPrec(x, approx.PrecisionBalanced)
}
