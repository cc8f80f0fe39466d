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
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-smallvec/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestRounding(t *testing.T) {
	v := New4[Aligned](-1.5, -0.25, 0.5, 2.5)
	tests := []struct {
		name string
		got  Vec4[float64, Aligned]
		want [4]float64
	}{
		{"Floor", v.Floor(), [4]float64{-2, -1, 0, 2}},
		{"Ceil", v.Ceil(), [4]float64{-1, 0, 1, 3}},
		{"Round", v.Round(), [4]float64{-2, 0, 1, 3}},
		{"Trunc", v.Trunc(), [4]float64{-1, 0, 0, 2}},
		{"Fract", v.Fract(), [4]float64{-0.5, -0.25, 0.5, 0.5}},
		{"Abs", v.Abs(), [4]float64{1.5, 0.25, 0.5, 2.5}},
		{"Signum", v.Signum(), [4]float64{-1, -1, 1, 1}},
		{"Recip", v.Recip(), [4]float64{-1 / 1.5, -4, 2, 0.4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.ToArray(); got != tt.want {
				t.Errorf("%s: %s", tt.name, cmp.Diff(tt.want, got))
			}
		})
	}
}

func TestSignumSignedZero(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	v := New3[Packed](negZero, 0, float32(math.NaN()))
	s := v.Signum()
	if s.X() != -1 || s.Y() != 1 {
		t.Errorf("Signum: got %v, want [-1 1 NaN]", s)
	}
	if z := s.Z(); z == z {
		t.Errorf("Signum(NaN): got %v, want NaN", z)
	}
	if got := New2[Aligned](float32(3), -3).Copysign(New2[Aligned](negZero, 1)); got != New2[Aligned](float32(-3), 3) {
		t.Errorf("Copysign: got %v, want [-3 3]", got)
	}
}

func TestEuclid(t *testing.T) {
	a := New4[Aligned](7.0, -7.0, 7.0, -7.0)
	b := New4[Aligned](2.0, 2.0, -2.0, -2.0)
	if got, want := a.DivEuclid(b).ToArray(), [4]float64{3, -4, -3, 4}; got != want {
		t.Errorf("DivEuclid float64: got %v, want %v", got, want)
	}
	if got, want := a.RemEuclid(b).ToArray(), [4]float64{1, 1, 1, 1}; got != want {
		t.Errorf("RemEuclid float64: got %v, want %v", got, want)
	}
	// a == b*DivEuclid(a, b) + RemEuclid(a, b)
	if got := b.Mul(a.DivEuclid(b)).Add(a.RemEuclid(b)); got != a {
		t.Errorf("Euclidean identity: got %v, want %v", got, a)
	}
}

func TestReductions(t *testing.T) {
	v := New4[Packed](float32(1e8), 1, -1e8, 1)
	// Pairwise: (1e8+1) and (-1e8+1) both round away the 1. A left fold
	// would give 1.
	if got := v.ElementSum(); got != 0 {
		t.Errorf("ElementSum: got %v, want 0", got)
	}
	w := New3[Aligned](2.0, 3.0, 4.0)
	if got := w.ElementProduct(); got != 24 {
		t.Errorf("ElementProduct: got %v, want 24", got)
	}
	if got := w.MinElement(); got != 2 {
		t.Errorf("MinElement: got %v, want 2", got)
	}
	if got := w.MaxElement(); got != 4 {
		t.Errorf("MaxElement: got %v, want 4", got)
	}
	if got := w.Dot(New3[Aligned](1.0, -1.0, 0.5)); got != 1 {
		t.Errorf("Dot: got %v, want 1", got)
	}
	if got := w.DistanceSquared(New3[Aligned](2.0, 0.0, 0.0)); got != 25 {
		t.Errorf("DistanceSquared: got %v, want 25", got)
	}
	if got := w.Distance(New3[Aligned](2.0, 0.0, 0.0)); got != 5 {
		t.Errorf("Distance: got %v, want 5", got)
	}
}

func TestLengthSquaredIsDot(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		v := FromFn4[Aligned](func(int) float32 { return r.Float32()*200 - 100 })
		if ls, d := v.LengthSquared(), v.Dot(v); !testutil.SameBits(ls, d) {
			t.Fatalf("LengthSquared(%v) = %v, Dot = %v", v, ls, d)
		}
		p := v.Truncate().Unalign()
		if ls, d := p.LengthSquared(), p.Dot(p); !testutil.SameBits(ls, d) {
			t.Fatalf("LengthSquared(%v) = %v, Dot = %v", p, ls, d)
		}
	}
}

// exactLength returns the length of x to 200 bits.
func exactLength[T Floats](x []T) *big.Float {
	sum := new(big.Float).SetPrec(200)
	for _, v := range x {
		f := new(big.Float).SetPrec(200).SetFloat64(float64(v))
		sum.Add(sum, f.Mul(f, f))
	}
	return new(big.Float).SetPrec(200).Sqrt(sum)
}

// roundBig rounds b to the nearest T.
func roundBig[T Floats](b *big.Float) T {
	if isFloat32[T]() {
		f, _ := b.Float32()
		return T(f)
	}
	f, _ := b.Float64()
	return T(f)
}

func testNormalizeWithinULP[T Floats](t *testing.T, r *rand.Rand) {
	for i := range 5000 {
		// Odd iterations mix lane magnitudes over a wide exponent range.
		v := FromFn3[Aligned](func(int) T {
			x := r.NormFloat64()
			if i%2 == 1 {
				x = math.Ldexp(x, r.IntN(61)-30)
			}
			return T(x)
		})
		if v.LengthSquared() == 0 {
			continue
		}
		x := v.ToArray()
		l := exactLength(x[:])
		testutil.RequireWithinULP(t, "Length", v.Length(), roundBig[T](l), 1)

		n := v.Normalize()
		for j := range 3 {
			q := new(big.Float).SetPrec(200).SetFloat64(float64(x[j]))
			q.Quo(q, l)
			testutil.RequireWithinULP(t, "Normalize", n.At(j), roundBig[T](q), 1)
		}
		testutil.RequireWithinULP(t, "Length(Normalize)", n.Length(), 1, 1)
		if !n.IsNormalized() {
			t.Errorf("IsNormalized(Normalize(%v)) = false, length %v", v, n.Length())
		}
	}
}

func TestNormalizeWithinULP(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testNormalizeWithinULP[float32](t, rand.New(rand.NewPCG(3, 4))) })
	t.Run("float64", func(t *testing.T) { testNormalizeWithinULP[float64](t, rand.New(rand.NewPCG(5, 6))) })
}

func TestNormalizeExtremes(t *testing.T) {
	// Rounding the length to float32 before dividing leaves this input 2 ULP
	// short of unit length.
	v := New3[Aligned](float32(1.109408), 0.25698674, -0.8549618)
	testutil.RequireWithinULP(t, "Length(Normalize)", v.Normalize().Length(), 1, 1)

	third := float32(1 / math.Sqrt(3))
	n := New3[Packed](float32(1e30), 1e30, 1e30).Normalize()
	for i := range 3 {
		testutil.RequireWithinULP(t, "Normalize 1e30", n.At(i), third, 1)
	}

	huge := New2[Aligned](1e300, 1e300)
	x := huge.ToArray()
	testutil.RequireWithinULP(t, "Length 1e300", huge.Length(), roundBig[float64](exactLength(x[:])), 1)
	half := math.Sqrt2 / 2
	if got := huge.Normalize(); got.X() != got.Y() || testutil.Float64ULPDiff(got.X(), half) > 1 {
		t.Errorf("Normalize 1e300: got %v, want (%v, %v)", got, half, half)
	}

	tiny := New3[Aligned](3*math.SmallestNonzeroFloat64, 4*math.SmallestNonzeroFloat64, 0)
	if got, want := tiny.Length(), 5*math.SmallestNonzeroFloat64; got != want {
		t.Errorf("Length of subnormals: got %v, want %v", got, want)
	}
	n3 := tiny.Normalize()
	testutil.RequireWithinULP(t, "Normalize subnormal x", n3.X(), 0.6, 1)
	testutil.RequireWithinULP(t, "Normalize subnormal y", n3.Y(), 0.8, 1)
}

func TestTryNormalize(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	bad := []Vec3[float32, Aligned]{
		{},
		New3[Aligned](inf, 0, 0),
		New3[Aligned](nan, 1, 1),
		// The length overflows float32.
		New3[Aligned](float32(3e38), 3e38, 0),
	}
	fallback := Unit3[Aligned, float32](AxisX)
	for _, v := range bad {
		_, err := v.TryNormalize()
		if !errors.Is(err, ErrNotNormalisable) {
			t.Errorf("TryNormalize(%v): got %v, want NotNormalisable", v, err)
		}
		if got := v.NormalizeOr(fallback); got != fallback {
			t.Errorf("NormalizeOr(%v): got %v, want fallback", v, got)
		}
		if assertions {
			requirePanicKind(t, NotNormalisable, func() { v.Normalize() })
		}
	}

	n, err := New3[Aligned](float32(0), 0, 2).TryNormalize()
	if err != nil || n != New3[Aligned](float32(0), 0, 1) {
		t.Errorf("TryNormalize: got %v, %v", n, err)
	}
}

func TestNaNAssertions(t *testing.T) {
	nan := math.NaN()
	v := New2[Aligned](1.0, nan)
	w := New2[Aligned](0.0, 0.0)
	if !assertions {
		requireNoPanic(t, "Min", func() { v.Min(w) })
		return
	}
	tests := []struct {
		name string
		f    func()
	}{
		{"Min", func() { v.Min(w) }},
		{"Max", func() { w.Max(v) }},
		{"Clamp", func() { v.Clamp(w, w) }},
		{"MinElement", func() { v.MinElement() }},
		{"MaxElement", func() { v.MaxElement() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := requirePanicKind(t, NaNInput, tt.f)
			if e.Op != tt.name || e.Lane != 1 {
				t.Errorf("%s: got op %q lane %d, want lane 1", tt.name, e.Op, e.Lane)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	v := New4[Aligned](float32(-5), 0.5, 5, 1)
	lo := Splat4[Aligned](float32(0))
	hi := Splat4[Aligned](float32(1))
	if got, want := v.Clamp(lo, hi).ToArray(), [4]float32{0, 0.5, 1, 1}; got != want {
		t.Errorf("Clamp: got %v, want %v", got, want)
	}
	if assertions {
		e := requirePanicKind(t, MinGreaterThanMax, func() { v.Clamp(lo.With(2, 2), hi) })
		if e.Lane != 2 {
			t.Errorf("Clamp: got lane %d, want 2", e.Lane)
		}
	}
}

func TestPredicates(t *testing.T) {
	v := New3[Aligned](1.0, math.Inf(-1), math.NaN())
	if v.IsFinite() {
		t.Error("IsFinite: got true for a vector with Inf")
	}
	if !v.IsNaN() {
		t.Error("IsNaN: got false for a vector with NaN")
	}
	if got, want := v.IsNaNMask().ToArray(), [3]bool{false, false, true}; got != want {
		t.Errorf("IsNaNMask: got %v, want %v", got, want)
	}
	if w := v.Truncate(); w.IsNaN() || w.IsFinite() {
		t.Errorf("predicates on %v: IsNaN %v, IsFinite %v", w, w.IsNaN(), w.IsFinite())
	}
}

func TestTranscendentals(t *testing.T) {
	v := New4[Aligned](0.1, 0.5, -0.75, 0.9)
	tests := []struct {
		name string
		got  Vec4[float64, Aligned]
		f    func(float64) float64
		tol  float64
	}{
		{"Sqrt", v.Abs().Sqrt(), func(x float64) float64 { return math.Sqrt(math.Abs(x)) }, 1e-6},
		{"Sin", v.Sin(), math.Sin, 1e-6},
		{"Cos", v.Cos(), math.Cos, 1e-6},
		{"Tan", v.Tan(), math.Tan, 1e-6},
		{"Asin", v.Asin(), math.Asin, 1e-6},
		{"Acos", v.Acos(), math.Acos, 1e-6},
		{"Atan", v.Atan(), math.Atan, 1e-6},
		{"Exp", v.Exp(), math.Exp, max(1e-6, expRelError)},
		{"Ln", v.Abs().Ln(), func(x float64) float64 { return math.Log(math.Abs(x)) }, max(1e-6, lnAbsError)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range 4 {
				want := tt.f(v.At(i))
				if got := tt.got.At(i); math.Abs(got-want) > tt.tol*math.Max(1, math.Abs(want)) {
					t.Errorf("%s float64: lane %d: got %v, want %v", tt.name, i, got, want)
				}
			}
		})
	}
}

func TestExpLnErrorBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	expTol := max(expRelError, 0x1p-52)
	lnTol := max(lnAbsError, 0x1p-52)
	for range 2000 {
		x := FromFn4[Aligned](func(int) float64 { return r.Float64()*60 - 30 })
		got := x.Exp()
		for i := range 4 {
			want := math.Exp(x.At(i))
			if d := math.Abs(got.At(i)-want) / want; d > expTol {
				t.Fatalf("Exp: lane %d: got %v, want %v (relative error %g > %g)", i, got.At(i), want, d, expTol)
			}
		}

		y := FromFn4[Aligned](func(int) float64 { return math.Ldexp(1+r.Float64(), r.IntN(200)-100) })
		got = y.Ln()
		for i := range 4 {
			want := math.Log(y.At(i))
			if d := math.Abs(got.At(i) - want); d > lnTol {
				t.Fatalf("Ln: lane %d: got %v, want %v (error %g > %g)", i, got.At(i), want, d, lnTol)
			}
		}
	}
	if got := Splat2[Aligned](1.0).Ln().X(); math.Abs(got) > lnTol {
		t.Errorf("Ln(1): got %v, want 0 within %g", got, lnTol)
	}
}

// exactMulAdd returns a*b+c rounded once to float32.
func exactMulAdd(a, b, c float32) float32 {
	x := new(big.Float).SetPrec(200).SetFloat64(float64(a))
	x.Mul(x, new(big.Float).SetPrec(200).SetFloat64(float64(b)))
	x.Add(x, new(big.Float).SetPrec(200).SetFloat64(float64(c)))
	f, _ := x.Float32()
	return f
}

func TestMulAdd(t *testing.T) {
	a := New3[Aligned](float32(2), 3, 4)
	b := New3[Aligned](float32(0.5), -1, 2)
	c := New3[Aligned](float32(1), 1, -8)
	if got, want := a.MulAdd(b, c).ToArray(), [3]float32{2, -2, 0}; got != want {
		t.Errorf("MulAdd: got %v, want %v", got, want)
	}
	if !fmaPermitted {
		return
	}

	// Cases where the unfused product and sum round differently.
	e := float32(math.Nextafter32(1, 2) - 1)
	cases := [][3]float32{
		{1 + e, 1 - e, -1},
		{1 + e, 1 + e, -1},
		{0.1, 10, -1},
		{3, 1.0 / 3, -1},
	}
	r := rand.New(rand.NewPCG(5, 6))
	for range 2000 {
		cases = append(cases, [3]float32{
			float32(r.NormFloat64()), float32(r.NormFloat64()), float32(r.NormFloat64()),
		})
	}
	for _, tc := range cases {
		x := Splat2[Aligned](tc[0])
		got := x.MulAdd(Splat2[Aligned](tc[1]), Splat2[Aligned](tc[2])).X()
		if want := exactMulAdd(tc[0], tc[1], tc[2]); !testutil.SameBits(got, want) {
			t.Errorf("MulAdd(%v, %v, %v): got %v, want %v", tc[0], tc[1], tc[2], got, want)
		}
	}
}

func TestLerpMoveTowards(t *testing.T) {
	a := New2[Aligned](0.0, 0.0)
	b := New2[Aligned](10.0, 0.0)
	if got, want := a.Lerp(b, 0.25), New2[Aligned](2.5, 0.0); got != want {
		t.Errorf("Lerp: got %v, want %v", got, want)
	}
	if got, want := a.MoveTowards(b, 3), New2[Aligned](3.0, 0.0); got != want {
		t.Errorf("MoveTowards: got %v, want %v", got, want)
	}
	if got := a.MoveTowards(b, 30); got != b {
		t.Errorf("MoveTowards past the target: got %v, want %v", got, b)
	}
	if got := b.MoveTowards(b, 1); got != b {
		t.Errorf("MoveTowards onto itself: got %v, want %v", got, b)
	}
}

func TestLengthRecip(t *testing.T) {
	v := New4[Packed](float32(1), 1, 1, 1)
	if got := v.Length(); got != 2 {
		t.Errorf("Length: got %v, want 2", got)
	}
	if got := v.LengthRecip(); got != 0.5 {
		t.Errorf("LengthRecip: got %v, want 0.5", got)
	}
}
