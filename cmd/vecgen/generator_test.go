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

package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWords(t *testing.T) {
	tests := []struct {
		n, k, count int
		first, last string
	}{
		{2, 1, 2, "X", "Y"},
		{2, 4, 16, "XXXX", "YYYY"},
		{3, 2, 9, "XX", "ZZ"},
		{4, 3, 64, "XXX", "WWW"},
	}
	for _, tt := range tests {
		w := Words(tt.n, tt.k)
		if len(w) != tt.count || w[0].Name != tt.first || w[len(w)-1].Name != tt.last {
			t.Errorf("Words(%d, %d): got %d words %s..%s, want %d words %s..%s",
				tt.n, tt.k, len(w), w[0].Name, w[len(w)-1].Name, tt.count, tt.first, tt.last)
		}
	}
	wzyx := Words(4, 4)[slices.IndexFunc(Words(4, 4), func(s Swizzle) bool { return s.Name == "WZYX" })]
	if want := []int{3, 2, 1, 0}; !cmp.Equal(wzyx.Lanes, want) {
		t.Errorf("WZYX lanes: %s", cmp.Diff(want, wzyx.Lanes))
	}
}

func TestIsPermutation(t *testing.T) {
	tests := []struct {
		lanes []int
		want  bool
	}{
		{[]int{0}, true},
		{[]int{2, 0, 1}, true},
		{[]int{0, 0}, false},
		{[]int{3, 1, 3, 0}, false},
	}
	for _, tt := range tests {
		if got := (Swizzle{Lanes: tt.lanes}).IsPermutation(); got != tt.want {
			t.Errorf("IsPermutation(%v): got %v, want %v", tt.lanes, got, tt.want)
		}
	}
}

func TestRangesAndSplits(t *testing.T) {
	var names []string
	for _, r := range Ranges(3) {
		names = append(names, r.Name())
	}
	if want := []string{"X", "XY", "XYZ", "Y", "YZ", "Z"}; !cmp.Equal(names, want) {
		t.Errorf("Ranges(3): %s", cmp.Diff(want, names))
	}
	for n, want := range map[int]int{2: 1, 3: 6, 4: 23} {
		if got := len(Splits(n)); got != want {
			t.Errorf("len(Splits(%d)) = %d, want %d", n, got, want)
		}
	}
	for _, sp := range Splits(4) {
		for i := 1; i < len(sp); i++ {
			if sp[i].Lo < sp[i-1].Hi {
				t.Errorf("Splits(4): %v overlaps or is out of order", sp)
			}
		}
	}
}

// methodNames parses Go source and returns its method names.
func methodNames(t *testing.T, name string, src []byte) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, 0)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	out := map[string]bool{}
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Recv == nil {
			continue
		}
		recv := fd.Recv.List[0].Type
		if star, ok := recv.(*ast.StarExpr); ok {
			recv = star.X
		}
		base := recv.(*ast.IndexListExpr).X.(*ast.Ident).Name
		out[base+"."+fd.Name.Name] = true
	}
	return out
}

func TestGenerate(t *testing.T) {
	g := &Generator{Package: "vec"}
	src, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(string(src), "// Code generated by vecgen. DO NOT EDIT.") {
		t.Errorf("Generate: missing generated-code header")
	}
	methods := methodNames(t, "swizzle_gen.go", src)
	// reads 30+120+340, With/Set 2*(4+15+64), borrows 3+6+10, splits 1+6+23
	if got, want := len(methods), 490+166+19+30; got != want {
		t.Errorf("Generate: %d methods, want %d", got, want)
	}
	for _, m := range []string{
		"Vec2.YX", "Vec3.ZYX", "Vec4.WZYX", "Vec4.XXZZ", "Vec2.XXYY",
		"Vec3.WithXZ", "Vec4.SetWZYX", "Vec3.XYMut", "Vec4.XY_ZWMut", "Vec3.X_ZMut",
	} {
		if !methods[m] {
			t.Errorf("Generate: %s missing", m)
		}
	}
	for _, m := range []string{"Vec3.W", "Vec3.WithXX", "Vec4.XY_YZMut", "Vec4.XZMut"} {
		if methods[m] {
			t.Errorf("Generate: unexpected %s", m)
		}
	}
}

func TestCheckedInSwizzlesUpToDate(t *testing.T) {
	checkedIn, err := os.ReadFile("../../vec/swizzle_gen.go")
	if err != nil {
		t.Skipf("swizzle_gen.go not available: %v", err)
	}
	src, err := (&Generator{Package: "vec"}).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := methodNames(t, "swizzle_gen.go", src)
	got := methodNames(t, "vec/swizzle_gen.go", checkedIn)
	if !cmp.Equal(got, want) {
		t.Errorf("vec/swizzle_gen.go is stale, run go generate ./vec: %s", cmp.Diff(want, got))
	}
}
