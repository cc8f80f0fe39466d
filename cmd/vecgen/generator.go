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
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/tools/imports"
)

// axes is the swizzle alphabet, in lane order.
const axes = "xyzw"

// Swizzle is one named lane selection.
type Swizzle struct {
	// Name is the upper-case axis word, e.g. "WZYX".
	Name string
	// Lanes holds the source lane of every output lane.
	Lanes []int
}

// Range is a contiguous lane range [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Name returns the upper-case axis word of r, e.g. "YZ".
func (r Range) Name() string {
	return strings.ToUpper(axes[r.Lo:r.Hi])
}

// Len returns the number of lanes in r.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// Words returns every k-letter word over the first n axis letters, in
// lexicographic axis order.
func Words(n, k int) []Swizzle {
	var out []Swizzle
	idx := make([]int, k)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == k {
			lanes := append([]int(nil), idx...)
			var name strings.Builder
			for _, l := range lanes {
				name.WriteByte(axes[l] - 'a' + 'A')
			}
			out = append(out, Swizzle{Name: name.String(), Lanes: lanes})
			return
		}
		for l := range n {
			idx[pos] = l
			rec(pos + 1)
		}
	}
	rec(0)
	return out
}

// IsPermutation reports whether no source lane repeats, which is the
// condition for the With and Set forms.
func (s Swizzle) IsPermutation() bool {
	seen := 0
	for _, l := range s.Lanes {
		if seen&(1<<l) != 0 {
			return false
		}
		seen |= 1 << l
	}
	return true
}

// Ranges returns every contiguous lane range of an n-lane vector, ordered by
// start and then by length.
func Ranges(n int) []Range {
	var out []Range
	for lo := range n {
		for hi := lo + 1; hi <= n; hi++ {
			out = append(out, Range{lo, hi})
		}
	}
	return out
}

// Splits returns every sequence of two or more pairwise disjoint ranges in
// ascending lane order. Each becomes a static multi-borrow accessor.
func Splits(n int) [][]Range {
	var out [][]Range
	var rec func(from int, acc []Range)
	rec = func(from int, acc []Range) {
		if len(acc) >= 2 {
			out = append(out, append([]Range(nil), acc...))
		}
		for _, r := range Ranges(n) {
			if r.Lo >= from {
				rec(r.Hi, append(acc, r))
			}
		}
	}
	rec(0, nil)
	return out
}

// Generator emits the swizzle surface of the vec package.
type Generator struct {
	// Package is the package clause of the output.
	Package string
}

// Generate returns the formatted source of the swizzle file.
func (g *Generator) Generate() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by vecgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", g.Package)
	for n := 2; n <= 4; n++ {
		g.emitReads(&buf, n)
		g.emitWrites(&buf, n)
		g.emitMuts(&buf, n)
	}
	formatted, err := imports.Process("swizzle_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format swizzles: %w", err)
	}
	return formatted, nil
}

func vecType(n int) string {
	return fmt.Sprintf("Vec%d[T, A]", n)
}

func laneList(recv string, lanes []int) string {
	parts := make([]string, len(lanes))
	for i, l := range lanes {
		parts[i] = fmt.Sprintf("%s.lanes[%d]", recv, l)
	}
	return strings.Join(parts, ", ")
}

func (g *Generator) emitReads(buf *bytes.Buffer, n int) {
	fmt.Fprintf(buf, "\n// Read swizzles of Vec%d.\n\n", n)
	for k := 1; k <= 4; k++ {
		for _, s := range Words(n, k) {
			if k == 1 {
				fmt.Fprintf(buf, "func (v %s) %s() T { return v.lanes[%d] }\n", vecType(n), s.Name, s.Lanes[0])
				continue
			}
			fmt.Fprintf(buf, "func (v %s) %s() %s { return %s{lanes: [%d]T{%s}} }\n",
				vecType(n), s.Name, vecType(k), vecType(k), k, laneList("v", s.Lanes))
		}
	}
}

func (g *Generator) emitWrites(buf *bytes.Buffer, n int) {
	fmt.Fprintf(buf, "\n// With and Set forms of the repetition-free swizzles of Vec%d.\n", n)
	for k := 1; k <= min(n, 4); k++ {
		for _, s := range Words(n, k) {
			if !s.IsPermutation() {
				continue
			}
			param, src := "w "+vecType(k), laneList("w", seq(k))
			if k == 1 {
				param, src = "x T", "x"
			}
			dst := laneList("v", s.Lanes)
			fmt.Fprintf(buf, "\nfunc (v %s) With%s(%s) %s {\n\t%s = %s\n\treturn v\n}\n",
				vecType(n), s.Name, param, vecType(n), dst, src)
			fmt.Fprintf(buf, "\nfunc (v *%s) Set%s(%s) {\n\t%s = %s\n}\n",
				vecType(n), s.Name, param, dst, src)
		}
	}
}

func (g *Generator) emitMuts(buf *bytes.Buffer, n int) {
	fmt.Fprintf(buf, "\n// Borrowing accessors of the contiguous ranges of Vec%d.\n\n", n)
	for _, r := range Ranges(n) {
		fmt.Fprintf(buf, "func (v *%s) %sMut() %s { return %s }\n",
			vecType(n), r.Name(), borrowType(r), borrow(r))
	}
	splits := Splits(n)
	if len(splits) == 0 {
		return
	}
	fmt.Fprintf(buf, "\n// Disjoint multi-range borrows of Vec%d.\n\n", n)
	for _, sp := range splits {
		names := make([]string, len(sp))
		types := make([]string, len(sp))
		values := make([]string, len(sp))
		for i, r := range sp {
			names[i] = r.Name()
			types[i] = borrowType(r)
			values[i] = borrow(r)
		}
		fmt.Fprintf(buf, "func (v *%s) %sMut() (%s) { return %s }\n",
			vecType(n), strings.Join(names, "_"), strings.Join(types, ", "), strings.Join(values, ", "))
	}
}

func borrowType(r Range) string {
	if r.Len() == 1 {
		return "*T"
	}
	return fmt.Sprintf("*[%d]T", r.Len())
}

func borrow(r Range) string {
	if r.Len() == 1 {
		return fmt.Sprintf("&v.lanes[%d]", r.Lo)
	}
	return fmt.Sprintf("(*[%d]T)(v.lanes[%d:%d])", r.Len(), r.Lo, r.Hi)
}

func seq(k int) []int {
	s := make([]int, k)
	for i := range s {
		s[i] = i
	}
	return s
}
